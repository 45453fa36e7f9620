// Package floyd collects the fast/slow pointer family of linked-list
// exercises, named for Floyd's two-cursor cycle detection.
//
// Overview:
//
//   - HasCycle advances one cursor a step and another two steps per
//     iteration; the cursors coincide iff following Next from the head
//     revisits a node. One pass, O(1) extra space.
//   - CycleEntry locates the node where the cycle begins: after the cursors
//     meet, reset one to the head and advance both one step at a time — they
//     coincide at the entry. The invariant behind the reset walk: at the
//     meeting point, distance-from-head ≡ distance-remaining-to-entry
//     (mod cycle length).
//   - Middle returns the list's midpoint (the second middle for even
//     length) by running the same two cursors until the fast one exhausts.
//   - RemoveNthFromEnd keeps two cursors n apart so that when the leader
//     falls off the tail, the follower sits just before the victim.
//   - IsPalindrome combines Middle with an in-place reversal of the back
//     half, compares the halves, and restores the list before returning.
//
// Edge cases (per contract): an empty list or a single node without a
// self-reference reports "no cycle" immediately, without advancing either
// cursor past the guard condition.
//
// Error handling:
//
//   - ErrBadIndex: RemoveNthFromEnd received n < 1 or n exceeding the list
//     length. A missing target is a broken precondition here, not an
//     expected "not found" outcome, so it fails fast.
//
// All other routines return sentinel values (nil, false) for degenerate
// inputs.
package floyd
