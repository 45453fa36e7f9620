package dnc

// BinarySearch returns an index i with sorted[i] == target, or NotFound.
// The input must be sorted ascending. The recursion halves an inclusive
// [low, high] range and never reads outside it; which index is returned for
// duplicated targets is unspecified beyond sorted[i] == target.
// Complexity: O(log n) time and stack depth.
func BinarySearch(sorted []int, target int) int {
	return search(sorted, target, 0, len(sorted)-1)
}

func search(sorted []int, target, low, high int) int {
	if low > high {
		return NotFound
	}

	mid := low + (high-low)/2 // avoids overflow of low+high
	switch {
	case sorted[mid] == target:
		return mid
	case sorted[mid] < target:
		return search(sorted, target, mid+1, high)
	default:
		return search(sorted, target, low, mid-1)
	}
}
