package recursion

import "errors"

// ErrNegativeInput indicates a recurrence was asked for a negative index.
var ErrNegativeInput = errors.New("recursion: input must be non-negative")

// Fibonacci returns the n-th Fibonacci number (F(0)=0, F(1)=1) via memoized
// recursion: the cache is consulted before recursing and filled before
// returning, so each index is computed once. Returns ErrNegativeInput for
// n < 0.
// Complexity: O(n) time, O(n) space for the cache and the recursion stack.
func Fibonacci(n int) (int, error) {
	if n < 0 {
		return 0, ErrNegativeInput
	}

	memo := make(map[int]int, n)

	return fib(n, memo), nil
}

func fib(n int, memo map[int]int) int {
	if n < 2 {
		return n
	}
	if v, ok := memo[n]; ok {
		return v
	}

	v := fib(n-1, memo) + fib(n-2, memo)
	memo[n] = v

	return v
}

// ClimbStairs returns the number of distinct ways to climb n steps taking 1
// or 2 at a time — the same recurrence as Fibonacci, shifted: ways(0)=1,
// ways(1)=1. Returns ErrNegativeInput for n < 0.
// Complexity: O(n) time, O(n) space.
func ClimbStairs(n int) (int, error) {
	if n < 0 {
		return 0, ErrNegativeInput
	}

	memo := make(map[int]int, n)

	return climb(n, memo), nil
}

func climb(n int, memo map[int]int) int {
	if n < 2 {
		return 1
	}
	if v, ok := memo[n]; ok {
		return v
	}

	v := climb(n-1, memo) + climb(n-2, memo)
	memo[n] = v

	return v
}
