package core

import "errors"

// Sentinel errors for core node operations.
var (
	// ErrCycleDetected indicates ToSlice was asked to linearize a cyclic list.
	ErrCycleDetected = errors.New("core: list contains a cycle")

	// ErrBadCyclePos indicates FromSliceWithCycle received an entry index
	// outside [0, len(vals)).
	ErrBadCyclePos = errors.New("core: cycle position out of range")

	// ErrBadLevelOrder indicates a level-order tree encoding carries more
	// values than the decoded tree has child slots for.
	ErrBadLevelOrder = errors.New("core: malformed level-order encoding")
)

// ListNode is a singly-linked list node: an integer value plus exclusive
// ownership of the next node. A nil *ListNode is the empty list.
type ListNode struct {
	// Val is the payload carried by this node.
	Val int

	// Next is the owned successor, or nil at the tail.
	Next *ListNode
}

// FromSlice builds an acyclic list containing vals in order and returns its
// head, or nil for an empty slice.
// Complexity: O(n) time, O(n) space.
func FromSlice(vals []int) *ListNode {
	// Dummy head avoids a special case for the first node.
	dummy := &ListNode{}
	tail := dummy
	for _, v := range vals {
		tail.Next = &ListNode{Val: v}
		tail = tail.Next
	}

	return dummy.Next
}

// FromSliceWithCycle builds a list containing vals and, if pos >= 0, links
// the tail back to the node at index pos, producing the standard cycle
// fixture. pos < 0 yields an acyclic list (identical to FromSlice).
// Returns ErrBadCyclePos when pos >= len(vals).
// Complexity: O(n).
func FromSliceWithCycle(vals []int, pos int) (*ListNode, error) {
	if pos >= len(vals) {
		return nil, ErrBadCyclePos
	}

	head := FromSlice(vals)
	if pos < 0 || head == nil {
		return head, nil
	}

	// Locate the entry node and the tail in one walk.
	var entry, tail *ListNode
	i := 0
	for n := head; n != nil; n = n.Next {
		if i == pos {
			entry = n
		}
		tail = n
		i++
	}
	tail.Next = entry

	return head, nil
}

// ToSlice linearizes head into a fresh slice. It refuses cyclic lists with
// ErrCycleDetected rather than walking forever; the check is Floyd's
// two-cursor scan, so no extra bookkeeping is allocated.
// Complexity: O(n) time, O(1) extra space beyond the result.
func ToSlice(head *ListNode) ([]int, error) {
	if hasCycle(head) {
		return nil, ErrCycleDetected
	}

	var out []int
	for n := head; n != nil; n = n.Next {
		out = append(out, n.Val)
	}

	return out, nil
}

// Len returns the number of nodes reachable from head. The caller must not
// pass a cyclic list; use ToSlice when cyclicity is uncertain.
// Complexity: O(n).
func Len(head *ListNode) int {
	n := 0
	for ; head != nil; head = head.Next {
		n++
	}

	return n
}

// Equal reports whether two acyclic lists hold the same values in the same
// order.
// Complexity: O(min(n, m)).
func Equal(a, b *ListNode) bool {
	for a != nil && b != nil {
		if a.Val != b.Val {
			return false
		}
		a, b = a.Next, b.Next
	}

	return a == nil && b == nil
}

// hasCycle is the minimal Floyd scan used to guard ToSlice. The full family
// (entry detection, midpoints) lives in package floyd.
func hasCycle(head *ListNode) bool {
	slow, fast := head, head
	for fast != nil && fast.Next != nil {
		slow = slow.Next
		fast = fast.Next.Next
		if slow == fast {
			return true
		}
	}

	return false
}
