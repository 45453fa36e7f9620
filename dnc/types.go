package dnc

import "errors"

// NotFound is the sentinel index BinarySearch returns for a missing target.
const NotFound = -1

// Sentinel errors for precondition violations.
var (
	// ErrEmptyInput indicates an aggregate (maximum, median) was requested
	// over no elements.
	ErrEmptyInput = errors.New("dnc: input must not be empty")

	// ErrTooFewPoints indicates ClosestPair received fewer than two points.
	ErrTooFewPoints = errors.New("dnc: need at least two points")
)

// Point is a point in the plane, used by ClosestPair.
type Point struct {
	X float64
	Y float64
}
