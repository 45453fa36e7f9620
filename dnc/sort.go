package dnc

// MergeSort returns a sorted copy of vals; the input is left untouched.
// Split to size ≤ 1, recombine with a stable linear merge into a buffer
// sized to the two halves.
// Complexity: O(n log n) time always, O(n) extra space.
func MergeSort(vals []int) []int {
	if len(vals) <= 1 {
		// Copy even the base case so the result never aliases the input.
		out := make([]int, len(vals))
		copy(out, vals)

		return out
	}

	mid := len(vals) / 2
	left := MergeSort(vals[:mid])
	right := MergeSort(vals[mid:])

	return mergeHalves(left, right)
}

// mergeHalves performs the stable linear recombination: on ties the element
// from the left half wins, preserving original relative order.
func mergeHalves(left, right []int) []int {
	out := make([]int, 0, len(left)+len(right))
	i, j := 0, 0
	for i < len(left) && j < len(right) {
		if left[i] <= right[j] {
			out = append(out, left[i])
			i++
		} else {
			out = append(out, right[j])
			j++
		}
	}
	out = append(out, left[i:]...)
	out = append(out, right[j:]...)

	return out
}

// QuickSort sorts vals in place around a last-element pivot.
//
// Known risk, by contract: the fixed pivot choice degrades to O(n²) time and
// O(n) stack depth on adversarial input (already sorted or reverse sorted).
// Expected complexity on random input is O(n log n) time, O(log n) stack.
func QuickSort(vals []int) {
	quick(vals, 0, len(vals)-1)
}

func quick(vals []int, low, high int) {
	if low >= high {
		return
	}

	p := partition(vals, low, high)
	quick(vals, low, p-1)
	quick(vals, p+1, high)
}

// partition rearranges vals[low..high] around the pivot vals[high]: lesser
// elements first, then the pivot at its final index, which is returned.
func partition(vals []int, low, high int) int {
	pivot := vals[high]
	i := low
	for j := low; j < high; j++ {
		if vals[j] < pivot {
			vals[i], vals[j] = vals[j], vals[i]
			i++
		}
	}
	vals[i], vals[high] = vals[high], vals[i]

	return i
}
