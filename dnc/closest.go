package dnc

import (
	"math"
	"sort"
)

// ClosestPair returns the smallest Euclidean distance between any two of the
// given points. Divide and conquer: sort by x, recurse on the halves, then
// check the vertical strip around the dividing line — inside the strip,
// points sorted by y need comparing only against a constant number of
// successors. Returns ErrTooFewPoints for fewer than two points.
// Complexity: O(n log² n) time (the strip is re-sorted per level), O(n)
// extra space. The input slice is not modified.
func ClosestPair(points []Point) (float64, error) {
	if len(points) < 2 {
		return 0, ErrTooFewPoints
	}

	px := make([]Point, len(points))
	copy(px, points)
	sort.Slice(px, func(i, j int) bool { return px[i].X < px[j].X })

	return closest(px), nil
}

func closest(px []Point) float64 {
	n := len(px)
	if n <= 3 {
		// Brute force the base case.
		best := math.Inf(1)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if d := dist(px[i], px[j]); d < best {
					best = d
				}
			}
		}

		return best
	}

	mid := n / 2
	midX := px[mid].X
	best := math.Min(closest(px[:mid]), closest(px[mid:]))

	// Collect the strip of points within best of the dividing line.
	strip := make([]Point, 0, n)
	for _, p := range px {
		if math.Abs(p.X-midX) < best {
			strip = append(strip, p)
		}
	}
	sort.Slice(strip, func(i, j int) bool { return strip[i].Y < strip[j].Y })

	// Within the strip, any closer pair lies within best vertically, so the
	// inner loop terminates after a bounded number of iterations.
	for i := 0; i < len(strip); i++ {
		for j := i + 1; j < len(strip) && strip[j].Y-strip[i].Y < best; j++ {
			if d := dist(strip[i], strip[j]); d < best {
				best = d
			}
		}
	}

	return best
}

func dist(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}
