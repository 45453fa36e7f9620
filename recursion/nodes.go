package recursion

import "github.com/katalvlaran/algopat/core"

// SwapPairs swaps every two adjacent nodes and returns the new head; an odd
// trailing node stays in place. The recursion swaps one pair and trusts the
// recursive call for the rest of the list.
// Complexity: O(n) time, O(n) stack depth (n/2 frames).
func SwapPairs(head *core.ListNode) *core.ListNode {
	if head == nil || head.Next == nil {
		return head
	}

	second := head.Next
	head.Next = SwapPairs(second.Next)
	second.Next = head

	return second
}

// MaxDepth returns the number of nodes on the longest root-to-leaf path;
// the empty tree has depth 0.
// Complexity: O(n) time, stack depth bounded by tree height.
func MaxDepth(root *core.TreeNode) int {
	if root == nil {
		return 0
	}

	l := MaxDepth(root.Left)
	r := MaxDepth(root.Right)
	if l > r {
		return l + 1
	}

	return r + 1
}

// Invert mirrors the tree in place — every node's children are swapped —
// and returns the same root for chaining.
// Complexity: O(n).
func Invert(root *core.TreeNode) *core.TreeNode {
	if root == nil {
		return nil
	}

	root.Left, root.Right = Invert(root.Right), Invert(root.Left)

	return root
}

// CopyRandomList deep-copies a random-pointer list. Pass one builds clones
// and records the old→new association in a map; pass two wires Next and
// Random on the clones by looking their targets up in the map, so a Random
// reference to any node — forward, backward, or self — lands on the
// corresponding clone.
// Complexity: O(n) time and space.
func CopyRandomList(head *core.RandomNode) *core.RandomNode {
	if head == nil {
		return nil
	}

	clones := make(map[*core.RandomNode]*core.RandomNode)
	for n := head; n != nil; n = n.Next {
		clones[n] = &core.RandomNode{Val: n.Val}
	}
	for n := head; n != nil; n = n.Next {
		clones[n].Next = clones[n.Next]     // nil maps to nil
		clones[n].Random = clones[n.Random] // non-owning, still nil-safe
	}

	return clones[head]
}

// Flatten splices every child level of a multilevel doubly-linked list
// immediately after its parent node, depth first, repairing Prev links and
// clearing Child pointers. The result is a single-level list containing
// every node exactly once.
// Complexity: O(n) time — each node is visited a constant number of times;
// stack depth bounded by the nesting depth.
func Flatten(head *core.MultiNode) *core.MultiNode {
	if head == nil {
		return nil
	}
	flattenLevel(head)

	return head
}

// flattenLevel flattens the level starting at head and returns its final
// tail after all child splices.
func flattenLevel(head *core.MultiNode) *core.MultiNode {
	n := head
	tail := head
	for n != nil {
		next := n.Next
		if n.Child != nil {
			// Recursively flatten the child level, then splice it between n
			// and next.
			childHead := n.Child
			childTail := flattenLevel(childHead)

			n.Child = nil
			n.Next = childHead
			childHead.Prev = n

			childTail.Next = next
			if next != nil {
				next.Prev = childTail
			}
			tail = childTail
		} else {
			tail = n
		}
		n = next
	}

	return tail
}
