package reversal

import "github.com/katalvlaran/algopat/core"

// Reverse flips the Next direction of the whole list and returns the new
// head (the former tail). Nil input yields nil.
// Complexity: O(n) time, O(1) space.
func Reverse(head *core.ListNode) *core.ListNode {
	var prev *core.ListNode
	for head != nil {
		next := head.Next
		head.Next = prev
		prev = head
		head = next
	}

	return prev
}

// ReverseBetween reverses the nodes at 1-indexed positions [left, right]
// inclusive and returns the possibly-new head. Returns ErrBadRange when
// left < 1, right < left, or right exceeds the list length.
//
// Splice invariant: before any pointer changes, capture the node preceding
// the run (before) and remember the run's first node (start) — after the
// in-run reversal, before.Next must be the run's new head and start (now the
// run's tail) must point at the node that followed the run.
// Complexity: O(n) time, O(1) space.
func ReverseBetween(head *core.ListNode, left, right int) (*core.ListNode, error) {
	if left < 1 || right < left {
		return nil, ErrBadRange
	}

	// 1) Walk to the node immediately preceding the run; the dummy head
	//    covers left == 1.
	dummy := &core.ListNode{Next: head}
	before := dummy
	for i := 1; i < left; i++ {
		before = before.Next
		if before == nil {
			return nil, ErrBadRange
		}
	}
	// 2) Probe that the run fits before touching any pointer, so an invalid
	//    range never leaves the list half-reversed.
	probe := before.Next
	for i := left; i <= right; i++ {
		if probe == nil {
			return nil, ErrBadRange
		}
		probe = probe.Next
	}

	// 3) Reverse the run of right-left+1 nodes.
	start := before.Next // becomes the run's tail after reversal
	var prev *core.ListNode
	n := start
	for i := left; i <= right; i++ {
		next := n.Next
		n.Next = prev
		prev = n
		n = next
	}

	// 4) Re-splice per the invariant: prev is the run's new head, n is the
	//    node that originally followed the run.
	before.Next = prev
	start.Next = n

	return dummy.Next, nil
}

// ReverseKGroup reverses consecutive groups of k nodes each and returns the
// possibly-new head. A trailing group shorter than k keeps its original
// order unless WithTailReversal() is given. Returns ErrBadGroupSize when
// k < 1; k == 1 returns the list unchanged.
// Complexity: O(n) time, O(1) space — every node is visited a constant
// number of times (one counting pass and one reversal pass per group).
func ReverseKGroup(head *core.ListNode, k int, opts ...Option) (*core.ListNode, error) {
	// 1) Build and validate options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if k < 1 {
		return nil, ErrBadGroupSize
	}
	if k == 1 || head == nil {
		return head, nil
	}

	dummy := &core.ListNode{Next: head}
	before := dummy // node preceding the current group

	for {
		// 2) Count whether k nodes remain from before.Next.
		probe := before.Next
		remaining := 0
		for probe != nil && remaining < k {
			probe = probe.Next
			remaining++
		}

		size := k
		if remaining < k {
			// Incomplete trailing group: stop, or reverse it whole if the
			// tail policy says so.
			if !cfg.ReverseTail || remaining == 0 {
				break
			}
			size = remaining
		}

		// 3) Reverse exactly size nodes and re-splice, same invariant as
		//    ReverseBetween.
		start := before.Next
		var prev *core.ListNode
		n := start
		for i := 0; i < size; i++ {
			next := n.Next
			n.Next = prev
			prev = n
			n = next
		}
		before.Next = prev
		start.Next = n

		// 4) The group's old head is its new tail — the anchor for the next
		//    group.
		before = start
		if size < k {
			break
		}
	}

	return dummy.Next, nil
}
