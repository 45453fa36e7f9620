// Package reversal implements in-place linked-list reversal: full-list,
// positional-range, and fixed-group-size variants.
//
// Overview:
//
//   - Reverse flips the Next direction of the whole list with the classic
//     three-pointer walk. O(n) time, O(1) space.
//   - ReverseBetween reverses the run bounded by 1-indexed positions
//     [left, right] and re-splices it: the node before the run must end up
//     pointing at the run's new head, and the run's new tail must point at
//     the node that originally followed the run. Both boundary nodes are
//     captured before any pointer is touched.
//   - ReverseKGroup reverses consecutive groups of exactly k nodes. By
//     default a trailing group shorter than k is left untouched (the classic
//     contract); WithTailReversal() makes the trailing group reverse too —
//     the policy is configuration, not a hard-coded choice.
//
// Error handling (sentinel errors):
//
//   - ErrBadRange:     ReverseBetween received left < 1, right < left, or
//     right beyond the list length.
//   - ErrBadGroupSize: ReverseKGroup received k < 1.
//
// Properties worth knowing:
//
//   - Reversal is an involution: reversing twice (with identical arguments)
//     restores the original sequence, for every variant.
//   - All variants re-link the caller's nodes; no node is allocated beyond
//     one dummy head per call.
package reversal
