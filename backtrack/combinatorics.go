package backtrack

import "sort"

// Permutations returns every ordering of vals, in the order produced by
// trying unused elements ascending by index. Duplicate input values yield
// duplicate permutations (the input is treated as a sequence, not a set).
// The empty input has exactly one permutation: the empty one.
// Complexity: O(n·n!) time and output.
func Permutations(vals []int) [][]int {
	used := make([]bool, len(vals))
	current := make([]int, 0, len(vals))
	var out [][]int

	var recurse func()
	recurse = func() {
		if len(current) == len(vals) {
			out = append(out, append([]int{}, current...))

			return
		}
		for i, v := range vals {
			if used[i] {
				continue
			}
			used[i] = true
			current = append(current, v)

			recurse()

			current = current[:len(current)-1]
			used[i] = false
		}
	}
	recurse()

	return out
}

// Combinations returns every k-element subset of {1, …, n} in ascending
// lexicographic order. Choice exclusion is by index progression: each level
// only considers values greater than the last chosen one, so no subset is
// generated twice. Returns ErrBadSize for n < 0, k < 0, or k > n.
// Complexity: O(k·C(n,k)) time and output.
func Combinations(n, k int) ([][]int, error) {
	if n < 0 || k < 0 || k > n {
		return nil, ErrBadSize
	}

	current := make([]int, 0, k)
	var out [][]int

	var recurse func(start int)
	recurse = func(start int) {
		if len(current) == k {
			out = append(out, append([]int{}, current...))

			return
		}
		// Prune: not enough values left to reach k.
		for v := start; v <= n-(k-len(current))+1; v++ {
			current = append(current, v)
			recurse(v + 1)
			current = current[:len(current)-1]
		}
	}
	recurse(1)

	return out, nil
}

// Subsets returns all 2^n subsets of vals, each element independently
// included or skipped, in index-progression order (the empty set first).
// Complexity: O(n·2^n) time and output.
func Subsets(vals []int) [][]int {
	current := make([]int, 0, len(vals))
	var out [][]int

	var recurse func(start int)
	recurse = func(start int) {
		out = append(out, append([]int{}, current...))
		for i := start; i < len(vals); i++ {
			current = append(current, vals[i])
			recurse(i + 1)
			current = current[:len(current)-1]
		}
	}
	recurse(0)

	return out
}

// CombinationSum returns every multiset of candidates summing exactly to
// target; each candidate may be reused any number of times. Candidates are
// deduplicated and sorted first, so results are deterministic and the search
// prunes as soon as the smallest remaining candidate overshoots. Only
// positive candidates and a non-negative target make sense; zero target
// yields the single empty combination.
// Complexity: exponential in target/min(candidates).
func CombinationSum(candidates []int, target int) [][]int {
	// Sort a private copy; reuse-with-index-progression needs a fixed order.
	sorted := append([]int{}, candidates...)
	sort.Ints(sorted)
	uniq := make([]int, 0, len(sorted))
	for _, v := range sorted {
		if v <= 0 {
			continue // non-positive candidates would recurse forever
		}
		if len(uniq) > 0 && v == uniq[len(uniq)-1] {
			continue
		}
		uniq = append(uniq, v)
	}

	current := []int{}
	var out [][]int

	var recurse func(start, remaining int)
	recurse = func(start, remaining int) {
		if remaining == 0 {
			out = append(out, append([]int{}, current...))

			return
		}
		for i := start; i < len(uniq); i++ {
			if uniq[i] > remaining {
				break // sorted: every later candidate overshoots too
			}
			current = append(current, uniq[i])
			recurse(i, remaining-uniq[i]) // i, not i+1: reuse allowed
			current = current[:len(current)-1]
		}
	}
	recurse(0, target)

	return out
}
