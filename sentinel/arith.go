package sentinel

import "github.com/katalvlaran/algopat/core"

// AddTwoNumbers adds two non-negative integers stored as least-significant-
// digit-first lists and returns the sum in the same representation. Fresh
// nodes are allocated; the inputs are left untouched. Example:
// [2,4,3] + [5,6,4] = [7,0,8] (342 + 465 = 807).
// Complexity: O(max(n,m)) time and space.
func AddTwoNumbers(a, b *core.ListNode) *core.ListNode {
	dummy := &core.ListNode{}
	tail := dummy
	carry := 0

	// Keep emitting digits while any input digit or a carry remains. The
	// loop condition makes the trailing-carry node ([5]+[5] → [0,1]) fall
	// out of the same path as every other digit.
	for a != nil || b != nil || carry != 0 {
		sum := carry
		if a != nil {
			sum += a.Val
			a = a.Next
		}
		if b != nil {
			sum += b.Val
			b = b.Next
		}
		carry = sum / 10
		tail.Next = &core.ListNode{Val: sum % 10}
		tail = tail.Next
	}

	return dummy.Next
}

// Partition rearranges head so that every node with value < pivot precedes
// every node with value ≥ pivot, preserving the original relative order
// inside both groups. Two dummy heads collect the groups; the "less" chain
// is then spliced in front of the "rest" chain.
// Complexity: O(n) time, O(1) extra space.
func Partition(head *core.ListNode, pivot int) *core.ListNode {
	lessDummy := &core.ListNode{}
	restDummy := &core.ListNode{}
	lessTail, restTail := lessDummy, restDummy

	for n := head; n != nil; n = n.Next {
		if n.Val < pivot {
			lessTail.Next = n
			lessTail = n
		} else {
			restTail.Next = n
			restTail = n
		}
	}

	// Terminate the rest chain before splicing; its last node may still
	// point at a node that moved into the less chain.
	restTail.Next = nil
	lessTail.Next = restDummy.Next

	return lessDummy.Next
}

// RemoveValues drops every node whose value equals val, reusing the
// surviving nodes. The dummy head makes removal of a leading run of matches
// indistinguishable from removal anywhere else.
// Complexity: O(n) time, O(1) extra space.
func RemoveValues(head *core.ListNode, val int) *core.ListNode {
	dummy := &core.ListNode{Next: head}
	tail := dummy

	for tail.Next != nil {
		if tail.Next.Val == val {
			tail.Next = tail.Next.Next
		} else {
			tail = tail.Next
		}
	}

	return dummy.Next
}
