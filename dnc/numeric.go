package dnc

import "math"

// MaxValue returns the maximum of vals via divide and conquer: split, take
// each half's maximum, keep the larger. A linear scan does the same in one
// pass — the recursive form is kept for the pattern, with the same O(n)
// total work but O(log n) stack depth. Empty input is a precondition
// violation (ErrEmptyInput).
func MaxValue(vals []int) (int, error) {
	if len(vals) == 0 {
		return 0, ErrEmptyInput
	}

	return maxRange(vals, 0, len(vals)-1), nil
}

func maxRange(vals []int, low, high int) int {
	if low == high {
		return vals[low]
	}

	mid := low + (high-low)/2
	l := maxRange(vals, low, mid)
	r := maxRange(vals, mid+1, high)
	if l > r {
		return l
	}

	return r
}

// MaxSubarray returns the largest sum over all non-empty contiguous
// subarrays of vals, via the cross-middle divide and conquer: the answer is
// the best of (left half, right half, best sum crossing the middle). Kadane's
// scan solves this in O(n); the O(n log n) recursion is kept for the
// pattern. Empty input returns ErrEmptyInput.
func MaxSubarray(vals []int) (int, error) {
	if len(vals) == 0 {
		return 0, ErrEmptyInput
	}

	return maxSub(vals, 0, len(vals)-1), nil
}

func maxSub(vals []int, low, high int) int {
	if low == high {
		return vals[low]
	}

	mid := low + (high-low)/2
	left := maxSub(vals, low, mid)
	right := maxSub(vals, mid+1, high)
	cross := maxCrossing(vals, low, mid, high)

	best := left
	if right > best {
		best = right
	}
	if cross > best {
		best = cross
	}

	return best
}

// maxCrossing finds the best sum of any subarray that straddles the middle:
// the best suffix ending at mid plus the best prefix starting at mid+1.
func maxCrossing(vals []int, low, mid, high int) int {
	leftBest := math.MinInt
	sum := 0
	for i := mid; i >= low; i-- {
		sum += vals[i]
		if sum > leftBest {
			leftBest = sum
		}
	}

	rightBest := math.MinInt
	sum = 0
	for i := mid + 1; i <= high; i++ {
		sum += vals[i]
		if sum > rightBest {
			rightBest = sum
		}
	}

	return leftBest + rightBest
}

// MedianSorted returns the median of the combined values of two individually
// sorted arrays without merging them. It binary-searches the partition index
// of the shorter array for the cut where every left-side element ≤ every
// right-side element across both arrays; the median then falls out of the
// four boundary elements. Both arrays empty returns ErrEmptyInput.
// Complexity: O(log min(n, m)) time.
func MedianSorted(a, b []int) (float64, error) {
	// Keep a as the shorter array so the partition search space is minimal.
	if len(a) > len(b) {
		a, b = b, a
	}
	n, m := len(a), len(b)
	if n+m == 0 {
		return 0, ErrEmptyInput
	}

	half := (n + m + 1) / 2
	low, high := 0, n
	for low <= high {
		// i elements of a and j elements of b on the left side.
		i := low + (high-low)/2
		j := half - i

		aLeft, aRight := boundary(a, i)
		bLeft, bRight := boundary(b, j)

		switch {
		case aLeft > bRight:
			high = i - 1 // too many a-elements on the left
		case bLeft > aRight:
			low = i + 1 // too few a-elements on the left
		default:
			// Valid cut: max(left side) and min(right side) bracket the median.
			leftMax := aLeft
			if bLeft > leftMax {
				leftMax = bLeft
			}
			if (n+m)%2 == 1 {
				return float64(leftMax), nil
			}
			rightMin := aRight
			if bRight < rightMin {
				rightMin = bRight
			}

			return (float64(leftMax) + float64(rightMin)) / 2, nil
		}
	}

	// Unreachable for sorted inputs; the cut always exists.
	return 0, ErrEmptyInput
}

// boundary returns the elements on either side of cutting arr after i
// elements, using ±infinity stand-ins at the ends.
func boundary(arr []int, i int) (left, right int) {
	left = math.MinInt
	if i > 0 {
		left = arr[i-1]
	}
	right = math.MaxInt
	if i < len(arr) {
		right = arr[i]
	}

	return left, right
}
