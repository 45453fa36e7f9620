// Package core defines the node primitives shared by every algorithm family
// in algopat — singly-linked lists, binary trees, multilevel doubly-linked
// lists, and random-pointer lists — together with slice-based builders and
// comparison helpers used by tests and examples.
//
// Overview:
//
//   - ListNode is the workhorse: an integer value plus ownership of the next
//     node. Lists are acyclic unless a fixture explicitly builds a cycle via
//     FromSliceWithCycle.
//   - TreeNode is a plain binary tree node; builders speak the familiar
//     level-order encoding with NilMarker standing in for absent children.
//   - MultiNode adds Prev and an optional Child level (flattening exercises).
//   - RandomNode adds a non-owning Random reference to any node of the same
//     list (deep-copy exercises).
//
// Every structure is created ad hoc, mutated only within a single call's
// stack frame, and discarded when the caller lets go of it. Nothing in this
// package persists state, locks, or performs I/O.
//
// Error handling (sentinel errors):
//
//   - ErrCycleDetected:
//     Returned by ToSlice when asked to linearize a cyclic list. ToSlice
//     runs Floyd's two-cursor check before walking, so it never loops.
//   - ErrBadCyclePos:
//     Returned by FromSliceWithCycle when the requested entry index is
//     outside the list.
//   - ErrBadLevelOrder:
//     Returned by TreeFromLevelOrder when the encoding holds more values
//     than the decoded tree has child slots for.
//
// Expected degenerate inputs (empty slices, nil heads) are not errors: the
// builders return nil heads and the helpers treat nil as the empty sequence.
package core
