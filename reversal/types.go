package reversal

import "errors"

// Sentinel errors returned by the reversal routines.
var (
	// ErrBadRange indicates ReverseBetween received an invalid 1-indexed
	// range: left < 1, right < left, or right beyond the list length.
	ErrBadRange = errors.New("reversal: range out of bounds")

	// ErrBadGroupSize indicates ReverseKGroup received k < 1.
	ErrBadGroupSize = errors.New("reversal: group size must be at least 1")
)

// Options configures ReverseKGroup.
//
// ReverseTail – whether a trailing group shorter than k is reversed as well.
// The default (false) leaves an incomplete trailing group untouched.
type Options struct {
	ReverseTail bool // reverse the incomplete trailing group too
}

// Option represents a functional option for configuring ReverseKGroup.
type Option func(*Options)

// WithTailReversal makes ReverseKGroup reverse a trailing group even when
// fewer than k nodes remain. Without it, the trailing group keeps its
// original order.
func WithTailReversal() Option {
	return func(o *Options) {
		o.ReverseTail = true
	}
}

// DefaultOptions returns the Options ReverseKGroup starts from before
// applying functional options.
//
// Defaults:
//   - ReverseTail: false (incomplete trailing group left untouched).
func DefaultOptions() Options {
	return Options{ReverseTail: false}
}
