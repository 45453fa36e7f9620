package sentinel

import (
	"container/heap"

	"github.com/katalvlaran/algopat/core"
)

// MergeTwo merges two sorted lists into one sorted list, reusing the input
// nodes. The merge is stable: on equal values, nodes from a precede nodes
// from b.
// Complexity: O(n+m) time, O(1) extra space.
func MergeTwo(a, b *core.ListNode) *core.ListNode {
	// 1) Dummy head: the result's first node is whichever input starts lower,
	//    unknown until the first comparison.
	dummy := &core.ListNode{}
	tail := dummy

	// 2) Attach the smaller head, advance that input, repeat.
	for a != nil && b != nil {
		if a.Val <= b.Val {
			tail.Next = a
			a = a.Next
		} else {
			tail.Next = b
			b = b.Next
		}
		tail = tail.Next
	}

	// 3) One input is exhausted; splice the remainder of the other.
	if a != nil {
		tail.Next = a
	} else {
		tail.Next = b
	}

	return dummy.Next
}

// MergeK merges k sorted lists into one sorted list, reusing the input
// nodes. It keeps the current head of every non-empty list in a min-heap and
// repeatedly extracts the minimum, pushing that node's successor back.
//
// Complexity:
//
//   - Time:  O(N log k) for N total nodes — each node is pushed and popped
//     once, each heap operation costs O(log k).
//   - Space: O(k) for the heap.
func MergeK(lists []*core.ListNode) *core.ListNode {
	// 1) Seed the heap with each non-nil head.
	pq := make(listPQ, 0, len(lists))
	for _, h := range lists {
		if h != nil {
			pq = append(pq, h)
		}
	}
	heap.Init(&pq)

	// 2) Repeatedly extract the minimum head and attach it to the tail; its
	//    successor (if any) re-enters the heap as that list's new head.
	dummy := &core.ListNode{}
	tail := dummy
	for pq.Len() > 0 {
		n := heap.Pop(&pq).(*core.ListNode)
		if n.Next != nil {
			heap.Push(&pq, n.Next)
		}
		tail.Next = n
		tail = n
	}

	// 3) Terminate the result; the last extracted node may still point into
	//    its former list.
	tail.Next = nil

	return dummy.Next
}

// listPQ is a min-heap of list heads ordered by node value ascending. Same
// container/heap discipline as a lazy priority queue: the heap never holds
// more than one node per input list.
type listPQ []*core.ListNode

// Len returns the number of heads in the heap.
func (pq listPQ) Len() int { return len(pq) }

// Less orders by node value: smaller value, higher priority.
func (pq listPQ) Less(i, j int) bool { return pq[i].Val < pq[j].Val }

// Swap swaps two heads in the heap.
func (pq listPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x onto the heap. Called by heap.Push; x must be *core.ListNode.
func (pq *listPQ) Push(x interface{}) { *pq = append(*pq, x.(*core.ListNode)) }

// Pop removes and returns the minimum head. Called by heap.Pop.
func (pq *listPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
