package backtrack

// visited marks a cell as part of the current path; no letter uses this
// byte, so restoration is unambiguous.
const visited = 0

// Exist reports whether word can be traced in board by starting at any cell
// and moving to horizontally or vertically adjacent cells, using each cell
// at most once per path. The visited mark is written into the cell before
// recursing and restored on every way out, so the board is unchanged when
// Exist returns. An empty word matches trivially.
//
// Returns ErrBadBoard for an empty or ragged grid.
// Complexity: O(R·C·3^len(word)) worst case — after the first step, at most
// three unvisited neighbors remain per cell.
func Exist(board [][]byte, word string) (bool, error) {
	if len(board) == 0 || len(board[0]) == 0 {
		return false, ErrBadBoard
	}
	width := len(board[0])
	for _, row := range board {
		if len(row) != width {
			return false, ErrBadBoard
		}
	}

	if word == "" {
		return true, nil
	}

	for r := range board {
		for c := range board[r] {
			if trace(board, word, r, c) {
				return true, nil
			}
		}
	}

	return false, nil
}

// trace tries to match word starting at (r, c). All three constraints are
// checked before recursing: in bounds, character match, and not already on
// this path (the visited mark fails the character match).
func trace(board [][]byte, word string, r, c int) bool {
	if r < 0 || r >= len(board) || c < 0 || c >= len(board[0]) {
		return false
	}
	if board[r][c] != word[0] {
		return false
	}
	if len(word) == 1 {
		return true
	}

	// Mark, explore the four neighbors, restore.
	board[r][c] = visited
	rest := word[1:]
	found := trace(board, rest, r-1, c) ||
		trace(board, rest, r+1, c) ||
		trace(board, rest, r, c-1) ||
		trace(board, rest, r, c+1)
	board[r][c] = word[0]

	return found
}
