// Package backtrack_test provides runnable examples for the backtracking
// family.
package backtrack_test

import (
	"fmt"

	"github.com/katalvlaran/algopat/backtrack"
)

// ExampleNQueens demonstrates the two solutions of the four-queens puzzle.
func ExampleNQueens() {
	boards, err := backtrack.NQueens(4)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	for i, board := range boards {
		fmt.Printf("solution %d:\n", i+1)
		for _, row := range board {
			fmt.Println(row)
		}
	}
	// Output:
	// solution 1:
	// .Q..
	// ...Q
	// Q...
	// ..Q.
	// solution 2:
	// ..Q.
	// Q...
	// ...Q
	// .Q..
}

// ExampleCombinationSum demonstrates enumerating the ways to pay 7 with
// coins of 2, 3, 6 and 7 (unlimited reuse).
func ExampleCombinationSum() {
	for _, combo := range backtrack.CombinationSum([]int{2, 3, 6, 7}, 7) {
		fmt.Println(combo)
	}
	// Output:
	// [2 2 3]
	// [7]
}
