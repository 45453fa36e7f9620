// Package trie implements a lowercase-ASCII prefix tree and a wildcard word
// dictionary built on it.
//
// Overview:
//
//   - Trie stores words over 'a'–'z' in nodes carrying a fixed 26-slot child
//     array plus a terminal flag. Insert, Search, and StartsWith each walk
//     one node per input byte: O(len) time, no hashing, no allocation on
//     lookups.
//   - WordDictionary adds pattern matching: '.' in a pattern matches any
//     single letter, resolved by recursive fan-out over the 26 children at
//     the wildcard position — the recursive-search pattern in its purest
//     form.
//
// Error handling:
//
//   - ErrBadRune: Insert and AddWord reject bytes outside 'a'–'z' (a broken
//     precondition — the structure cannot index them). Queries are gentler:
//     a byte no inserted word can contain simply fails to match, so Search,
//     StartsWith, and Match return false rather than an error.
//
// Both structures grow monotonically: there is no delete, matching the
// exercises they demonstrate.
package trie
