package floyd

import (
	"errors"

	"github.com/katalvlaran/algopat/core"
)

// ErrBadIndex indicates RemoveNthFromEnd received n < 1 or n greater than
// the list length.
var ErrBadIndex = errors.New("floyd: index from end out of range")

// HasCycle reports whether following Next from head ever revisits a node.
// Two cursors advance at speeds 1 and 2; inside a cycle the fast cursor
// gains one node per iteration on the slow one, so they must meet.
// Complexity: O(n) time, O(1) space.
func HasCycle(head *core.ListNode) bool {
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

// CycleEntry returns the node at which the cycle begins, or nil for an
// acyclic list.
//
// After the cursors meet, let L be the head→entry distance and M the
// entry→meeting distance. The meeting point satisfies L ≡ -M (mod cycle
// length), so a cursor restarted at head and the cursor left at the meeting
// point, both stepping once per iteration, coincide exactly at the entry.
// Complexity: O(n) time, O(1) space.
func CycleEntry(head *core.ListNode) *core.ListNode {
	// 1) Detection pass, identical to HasCycle but keeping the meeting node.
	slow, fast := head, head
	for {
		if fast == nil || fast.Next == nil {
			return nil
		}
		slow = slow.Next
		fast = fast.Next.Next
		if slow == fast {
			break
		}
	}

	// 2) Reset walk: head and meeting point advance in lockstep.
	slow = head
	for slow != fast {
		slow = slow.Next
		fast = fast.Next
	}

	return slow
}

// Middle returns the middle node of an acyclic list; for even length it
// returns the second of the two middles. Nil for an empty list.
// Complexity: O(n) time, O(1) space.
func Middle(head *core.ListNode) *core.ListNode {
	slow, fast := head, head
	for fast != nil && fast.Next != nil {
		slow = slow.Next
		fast = fast.Next.Next
	}

	return slow
}

// RemoveNthFromEnd removes the n-th node counted from the end (n=1 is the
// tail) and returns the possibly-new head. A dummy head lets removal of the
// first node share the general path. Returns ErrBadIndex when n < 1 or n
// exceeds the list length.
// Complexity: O(n) time, O(1) space, single pass after the gap is opened.
func RemoveNthFromEnd(head *core.ListNode, n int) (*core.ListNode, error) {
	if n < 1 {
		return nil, ErrBadIndex
	}

	dummy := &core.ListNode{Next: head}

	// 1) Open a gap of n nodes between leader and follower.
	leader := dummy
	for i := 0; i < n; i++ {
		leader = leader.Next
		if leader == nil {
			return nil, ErrBadIndex
		}
	}

	// 2) Advance both until the leader reaches the tail; the follower then
	//    sits immediately before the victim.
	follower := dummy
	for leader.Next != nil {
		leader = leader.Next
		follower = follower.Next
	}

	// 3) Unlink.
	follower.Next = follower.Next.Next

	return dummy.Next, nil
}

// IsPalindrome reports whether the list reads the same forwards and
// backwards. It reverses the back half in place for the comparison and
// restores the original links before returning on every path.
// Complexity: O(n) time, O(1) space.
func IsPalindrome(head *core.ListNode) bool {
	if head == nil || head.Next == nil {
		return true
	}

	// 1) Find the node before the midpoint so the halves can be split.
	slow, fast := head, head
	var beforeMid *core.ListNode
	for fast != nil && fast.Next != nil {
		beforeMid = slow
		slow = slow.Next
		fast = fast.Next.Next
	}

	// 2) Reverse the back half (starting at slow, the second middle).
	second := reverse(slow)
	beforeMid.Next = nil

	// 3) Compare; the back half is never shorter than the front half.
	same := true
	for a, b := head, second; a != nil; a, b = a.Next, b.Next {
		if a.Val != b.Val {
			same = false

			break
		}
	}

	// 4) Restore: un-reverse the back half and re-splice.
	beforeMid.Next = reverse(second)

	return same
}

// reverse is the plain three-pointer reversal used internally; the exported
// family lives in package reversal.
func reverse(head *core.ListNode) *core.ListNode {
	var prev *core.ListNode
	for head != nil {
		head.Next, prev, head = prev, head, head.Next
	}

	return prev
}
