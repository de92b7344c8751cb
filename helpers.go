package fftx

import (
	"unsafe"

	"github.com/cwbudde/fftx/internal/engine"
)

// MinLength returns the smallest supported transform length for an element
// type: 2 for real transforms, 1 for complex transforms.
func MinLength[T Value]() int {
	return engine.MinLength(KindOf[T]())
}

// IsPowerOfTwo reports whether n is a positive power of two. All supported
// transform lengths are powers of two.
func IsPowerOfTwo(n int) bool {
	return engine.IsPowerOfTwo(n)
}

// NextPowerOfTwo returns the smallest power of two >= n, computed without
// floating point rounding.
func NextPowerOfTwo(n int) int {
	return engine.NextPowerOfTwo(n)
}

// SIMDSize returns the vector width of the host CPU in lanes of T's scalar
// type, or 1 when no vector unit is detected.
func SIMDSize[T Value]() int {
	var zero T

	lanes := engine.SIMDWidth()

	scalar := unsafe.Sizeof(zero)
	if KindOf[T]() == KindComplex {
		scalar /= 2
	}

	if scalar == 8 && lanes > 1 {
		lanes /= 2
	}

	return lanes
}

// SIMDArch returns a human-readable identifier for the active vector code
// path, e.g. "avx2", "neon", or "generic-<arch>".
func SIMDArch() string {
	return engine.SIMDArch()
}
