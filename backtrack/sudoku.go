package backtrack

// Empty is the byte marking an unfilled Sudoku cell.
const Empty = '.'

// SolveSudoku fills board in place so every row, column, and 3×3 box holds
// the digits '1'–'9' exactly once, honoring the given digits. Empty cells
// contain Empty ('.').
//
// Returns ErrBadBoard when the board is not 9×9, holds a byte outside
// {'1'..'9', '.'}, or its given digits already conflict; ErrUnsolvable when
// no completion exists. On any error the board is exactly as passed in —
// every trial digit is undone on backtrack, so failed searches leave no
// residue.
// Complexity: exponential in the number of empty cells; O(1) per constraint
// check via row/column/box used-flag tables.
func SolveSudoku(board [][]byte) error {
	s := &sudoku{board: board}
	if err := s.init(); err != nil {
		return err
	}
	if !s.solve(0, 0) {
		return ErrUnsolvable
	}

	return nil
}

// sudoku is the mutable search context: the board plus one used-flag table
// per constraint family, indexed [unit][digit-1].
type sudoku struct {
	board [][]byte
	rows  [9][9]bool
	cols  [9][9]bool
	boxes [9][9]bool
}

// init validates shape and given digits, seeding the used-flag tables.
func (s *sudoku) init() error {
	if len(s.board) != 9 {
		return ErrBadBoard
	}
	for r := 0; r < 9; r++ {
		if len(s.board[r]) != 9 {
			return ErrBadBoard
		}
		for c := 0; c < 9; c++ {
			b := s.board[r][c]
			if b == Empty {
				continue
			}
			if b < '1' || b > '9' {
				return ErrBadBoard
			}
			d := int(b - '1')
			box := (r/3)*3 + c/3
			if s.rows[r][d] || s.cols[c][d] || s.boxes[box][d] {
				return ErrBadBoard // a given digit repeats within a unit
			}
			s.rows[r][d], s.cols[c][d], s.boxes[box][d] = true, true, true
		}
	}

	return nil
}

// solve fills cells in row-major order. Returns true once past the last
// cell; false propagates a dead end up to the nearest untried digit.
func (s *sudoku) solve(r, c int) bool {
	if c == 9 {
		r, c = r+1, 0
	}
	if r == 9 {
		return true
	}
	if s.board[r][c] != Empty {
		return s.solve(r, c+1)
	}

	box := (r/3)*3 + c/3
	for d := 0; d < 9; d++ {
		// Constraint check before recursing.
		if s.rows[r][d] || s.cols[c][d] || s.boxes[box][d] {
			continue
		}

		// Apply.
		s.board[r][c] = byte('1' + d)
		s.rows[r][d], s.cols[c][d], s.boxes[box][d] = true, true, true

		if s.solve(r, c+1) {
			return true
		}

		// Undo, including the cell itself.
		s.board[r][c] = Empty
		s.rows[r][d], s.cols[c][d], s.boxes[box][d] = false, false, false
	}

	return false
}
