// Package backtrack collects the constraint-enumeration exercises: N-Queens,
// Sudoku, grid word search, and the combinatorial generators (permutations,
// combinations, subsets, combination sums).
//
// The discipline shared by every routine:
//
//   - Build the candidate solution incrementally.
//   - Enumerate the legal next choices given the current partial state, and
//     check constraints BEFORE recursing into a branch — invalid branches are
//     pruned early, never discovered at completion.
//   - After the recursive call returns, undo the choice (restore the board
//     cell, the used flag, the partial slice) before trying the next one, on
//     every exit path.
//
// A partial state is accepted as a solution when it reaches the completion
// condition: all rows hold a queen, all cells hold a digit, the word is
// fully matched, the target sum is hit exactly.
//
// Error handling (sentinel errors):
//
//   - ErrBadSize:    N-Queens or Combinations received a nonsensical size.
//   - ErrBadBoard:   a grid input is empty, ragged, or (Sudoku) not 9×9 or
//     inconsistent in its given digits.
//   - ErrUnsolvable: SolveSudoku exhausted every assignment; the board is
//     restored to its input state before returning.
//
// An unsolvable puzzle is an error because SolveSudoku mutates in place and
// promises a solved board on nil return; by contrast, a word absent from the
// grid or an empty solution set is an expected outcome reported by value.
//
// Determinism: every generator emits solutions in a fixed order (choices are
// tried in ascending index/column order), so tests can compare exact output.
package backtrack
