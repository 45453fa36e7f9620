package backtrack

import "errors"

var (
	// ErrBadSize indicates a size argument outside the meaningful range
	// (N-Queens n < 1, Combinations with k < 0, n < 0, or k > n).
	ErrBadSize = errors.New("backtrack: size out of range")

	// ErrBadBoard indicates an empty or ragged grid, or a Sudoku board that
	// is not 9×9 or whose given digits already conflict.
	ErrBadBoard = errors.New("backtrack: malformed board")

	// ErrUnsolvable indicates no assignment satisfies the Sudoku constraints;
	// the board is left exactly as it was passed in.
	ErrUnsolvable = errors.New("backtrack: puzzle has no solution")
)
