// Package dnc collects the divide-and-conquer exercises: recursive binary
// search, the two classic sorts, the cross-middle maximum-subarray, the
// partition-based median of two sorted arrays, and closest pair of points.
//
// Overview:
//
//   - BinarySearch recursively narrows an inclusive [low, high] range by
//     comparing the target to the midpoint; it never examines an element
//     outside the shrinking range. Returns NotFound (-1) for a miss —
//     an expected outcome, not an error.
//   - MergeSort splits to size ≤ 1 and recombines with a stable linear
//     merge into a temporary buffer. O(n log n) always; input untouched.
//   - QuickSort partitions in place around a last-element pivot.
//     O(n log n) expected, O(log n) expected stack depth — but O(n²) on
//     adversarial (already sorted) input. That degradation is a documented
//     property of the pivot choice, deliberately left unmitigated.
//   - MaxValue and MaxSubarray are the pedagogical O(n log n) forms of
//     problems with trivial O(n) scans; they exist to show the
//     split/recurse/combine pattern, not as performance advice.
//   - MedianSorted binary-searches the partition index of the shorter array
//     until every left-side element ≤ every right-side element across both
//     arrays, then derives the median from the four boundary values — no
//     merging. O(log min(n, m)).
//   - ClosestPair sorts by x, recurses on the halves, and checks the strip
//     around the dividing line sorted by y. O(n log² n) with the in-recursion
//     strip sort used here.
//
// Error handling (sentinel errors):
//
//   - ErrEmptyInput:   MaxValue/MaxSubarray/MedianSorted over nothing —
//     a precondition violation, failed fast at the boundary.
//   - ErrTooFewPoints: ClosestPair needs at least two points.
//
// A missed search target is NOT an error: BinarySearch signals it with the
// NotFound sentinel value.
package dnc
