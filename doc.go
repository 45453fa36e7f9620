// Package algopat is a curated, pattern-organized catalog of the classic
// data-structure-and-algorithm exercises — linked-list surgery, two-pointer
// tricks, divide-and-conquer, backtracking and recursive search.
//
// 🚀 What is algopat?
//
//	A pure-Go reference library of self-contained textbook algorithms:
//		• Shared primitives: list, tree, multilevel and random-pointer nodes
//		• Dummy-head construction: merges, digit arithmetic, stable partition
//		• Fast/slow pointers: Floyd cycle detection, midpoints, nth-from-end
//		• In-place reversal: full, ranged, and k-group with a tail policy
//		• Recursion & memoization: Fibonacci, stairs, deep copies, flattening
//		• Divide & conquer: binary search, merge/quick sort, medians, closest pair
//		• Backtracking: N-Queens, Sudoku, word search, combinatorics
//		• Tries: prefix queries and wildcard matching
//
// ✨ Why choose algopat?
//
//   - Beginner-friendly – every routine is one function with one job
//   - Rock-solid contracts – sentinel errors for broken preconditions,
//     sentinel values (nil, -1) for expected "not found" outcomes
//   - Pure Go – no cgo, no hidden deps
//   - Honest complexity notes – including the pedagogical O(n log n)
//     alternatives kept strictly for pattern study
//
// Everything is organized under flat, single-purpose subpackages:
//
//	core/      — ListNode, TreeNode, MultiNode, RandomNode + builders
//	sentinel/  — dummy-head list construction (merge, add, partition, filter)
//	floyd/     — fast/slow pointer algorithms (cycles, midpoints, palindromes)
//	reversal/  — in-place list reversal (full, between, k-group)
//	recursion/ — direct recursion and memoized recursion
//	dnc/       — divide-and-conquer numeric and array routines
//	backtrack/ — constraint-enumeration search
//	trie/      — prefix tree and wildcard dictionary
//
// Quick ASCII example:
//
//	1 → 2 → 3 → 4 → 5        reversal.ReverseKGroup(head, 2)
//	2 → 1 → 4 → 3 → 5        (trailing group of one left untouched)
//
// No routine here performs I/O, spawns goroutines, or keeps state across
// calls: each is a synchronous function over caller-supplied structures.
//
//	go get github.com/katalvlaran/algopat
package algopat
