// Package sentinel collects the dummy-head family of linked-list exercises:
// every routine here builds or rearranges a list whose eventual first element
// is not known in advance, so construction starts from a placeholder node and
// attachment happens through a moving tail.
//
// The contract (shared by every routine):
//
//   - Allocate one placeholder (dummy) node before real construction begins.
//   - Attach nodes only through a tail cursor that starts at the placeholder.
//   - Return the placeholder's successor — never the placeholder itself.
//
// This eliminates the separate code path for "the result is currently
// empty": merging, filtering, digit arithmetic and stable partitioning all
// reduce to one uniform append loop.
//
// Operations:
//
//   - MergeTwo:     stable merge of two sorted lists, O(n+m).
//   - MergeK:       merge of k sorted lists via a min-heap over the current
//     heads, O(N log k) for N total nodes.
//   - AddTwoNumbers: ripple-carry addition of two least-significant-digit-
//     first lists, O(max(n,m)).
//   - Partition:    stable partition around a pivot value — everything < pivot
//     (original relative order) before everything ≥ pivot, O(n).
//   - RemoveValues: drop every node carrying a given value, O(n).
//
// Degenerate inputs (nil heads, empty list slices) are expected, not errors:
// each routine simply returns the natural empty result. Inputs are consumed —
// the routines re-splice the caller's nodes rather than allocating copies,
// except AddTwoNumbers, which builds fresh digit nodes.
package sentinel
