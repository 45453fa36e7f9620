package backtrack

// NQueens returns every placement of n non-attacking queens on an n×n board,
// one board per solution, each row rendered as a string of '.' with a single
// 'Q'. Solutions appear in ascending column order of the first row's queen.
// Returns ErrBadSize for n < 1. Known counts: n=1 → 1, n=2 → 0, n=3 → 0,
// n=4 → 2.
// Complexity: O(n!) branches in the worst case; conflict checks are O(1)
// via column/diagonal sets.
func NQueens(n int) ([][]string, error) {
	if n < 1 {
		return nil, ErrBadSize
	}

	q := &queens{
		n:     n,
		cols:  make([]bool, n),
		diag:  make([]bool, 2*n-1), // row+col
		anti:  make([]bool, 2*n-1), // row-col+n-1
		place: make([]int, n),
	}
	q.solve(0)

	return q.boards, nil
}

// CountNQueens returns only the number of solutions for n queens.
// Returns ErrBadSize for n < 1.
func CountNQueens(n int) (int, error) {
	boards, err := NQueens(n)
	if err != nil {
		return 0, err
	}

	return len(boards), nil
}

// queens is the mutable search context: one used-flag set per constraint
// family, and the column placement of each decided row.
type queens struct {
	n      int
	cols   []bool // column occupied
	diag   []bool // ↘ diagonal occupied, indexed row+col
	anti   []bool // ↙ diagonal occupied, indexed row-col+n-1
	place  []int  // place[row] = column of that row's queen
	boards [][]string
}

// solve places a queen in every column of row that no earlier queen attacks,
// recursing row by row; a full board is recorded when row == n.
func (q *queens) solve(row int) {
	if row == q.n {
		q.boards = append(q.boards, q.render())

		return
	}

	for col := 0; col < q.n; col++ {
		d, a := row+col, row-col+q.n-1
		// Constraint check before recursing: prune attacked columns and
		// diagonals without descending into them.
		if q.cols[col] || q.diag[d] || q.anti[a] {
			continue
		}

		// Apply the choice.
		q.cols[col], q.diag[d], q.anti[a] = true, true, true
		q.place[row] = col

		q.solve(row + 1)

		// Undo the choice before trying the next column.
		q.cols[col], q.diag[d], q.anti[a] = false, false, false
	}
}

// render draws the current complete placement as n strings of n cells.
func (q *queens) render() []string {
	board := make([]string, q.n)
	row := make([]byte, q.n)
	for r := 0; r < q.n; r++ {
		for c := range row {
			row[c] = '.'
		}
		row[q.place[r]] = 'Q'
		board[r] = string(row)
	}

	return board
}
