// Package engine implements the transform core behind the fftx facade:
// plan construction, the forward/inverse butterfly passes, the internal
// spectrum layout and its reordering, and frequency-domain convolution.
//
// The facade consumes the engine only through Plan and the package-level
// query helpers; everything else is implementation detail.
package engine

import "errors"

// Kind selects between a real and a complex transform plan.
type Kind int

const (
	Real Kind = iota
	Complex
)

// String returns a human-readable name for the transform kind.
func (k Kind) String() string {
	switch k {
	case Real:
		return "real"
	case Complex:
		return "complex"
	default:
		return "unknown"
	}
}

// Direction selects between the forward and the inverse pass. For Reorder,
// Forward converts internal layout to canonical order and Backward converts
// canonical order to internal layout.
type Direction int

const (
	Forward Direction = iota
	Backward
)

// ErrUnsupportedLength is returned by NewPlan when the requested length is
// not a power of two or is below the minimum for the transform kind.
var ErrUnsupportedLength = errors.New("engine: unsupported transform length")

// MinLength returns the smallest transform length supported for a kind.
func MinLength(kind Kind) int {
	if kind == Real {
		return 2
	}

	return 1
}

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// NextPowerOfTwo returns the smallest power of two >= n, without floating
// point rounding. n <= 1 yields 1.
func NextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
