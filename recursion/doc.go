// Package recursion collects the direct-recursion and memoized-recursion
// exercises: numeric recurrences with an explicit cache, recursive list
// surgery, tree recursion, and the two deep-structure transformations
// (random-pointer deep copy and multilevel flattening).
//
// Memoization discipline (numeric recurrences):
//
//   - The cache is a plain map keyed by the recursive parameter, local to
//     one top-level call — no cross-call state, no eviction policy needed,
//     since entries are bounded by the input.
//   - The cache is checked before recursing and populated before returning.
//
// Operations:
//
//   - Fibonacci, ClimbStairs: memoized recurrences, O(n) time after
//     memoization, O(n) stack depth.
//   - SwapPairs: recursive pairwise node swap, O(n).
//   - MaxDepth, Invert: textbook tree recursion, O(n), stack depth bounded
//     by tree height.
//   - CopyRandomList: deep copy of a random-pointer list via an old→new map
//     in two passes; the copy shares no nodes with the original.
//   - Flatten: multilevel doubly-linked list flattening — each child level
//     is spliced immediately after its parent node, Prev links repaired,
//     Child pointers cleared.
//
// Error handling:
//
//   - ErrNegativeInput: Fibonacci and ClimbStairs reject n < 0 — a broken
//     precondition, per the fail-fast rule for contractual violations.
package recursion
