package fftx

import (
	"math"
	"math/cmplx"
	"math/rand"
	"testing"
)

// Shared test helpers used across the package tests.

func assertApproxC128Tolf(t *testing.T, got, want complex128, tol float64, format string, args ...any) {
	t.Helper()

	if cmplx.Abs(got-want) > tol {
		t.Fatalf(format+": got %v want %v (diff=%v)", append(args, got, want, cmplx.Abs(got-want))...)
	}
}

func assertApproxF64Tolf(t *testing.T, got, want, tol float64, format string, args ...any) {
	t.Helper()

	if math.Abs(got-want) > tol {
		t.Fatalf(format+": got %v want %v (diff=%v)", append(args, got, want, math.Abs(got-want))...)
	}
}

// naiveDFT computes the unnormalized DFT by direct summation.
func naiveDFT(x []complex128) []complex128 {
	n := len(x)
	out := make([]complex128, n)

	for k := range n {
		var sum complex128

		for j := range n {
			angle := -2 * math.Pi * float64(k) * float64(j) / float64(n)
			sum += x[j] * cmplx.Exp(complex(0, angle))
		}

		out[k] = sum
	}

	return out
}

// naiveCircularConvolve computes the circular convolution by direct
// summation.
func naiveCircularConvolve(a, b []float64) []float64 {
	n := len(a)
	out := make([]float64, n)

	for k := range n {
		var sum float64

		for j := range n {
			sum += a[j] * b[(k-j+n)%n]
		}

		out[k] = sum
	}

	return out
}

func naiveCircularConvolveC128(a, b []complex128) []complex128 {
	n := len(a)
	out := make([]complex128, n)

	for k := range n {
		var sum complex128

		for j := range n {
			sum += a[j] * b[(k-j+n)%n]
		}

		out[k] = sum
	}

	return out
}

// unpackRealSpectrum expands the half spectrum of a length-n real transform
// (DC and Nyquist packed into bin 0) to the full n-bin spectrum using
// conjugate symmetry.
func unpackRealSpectrum(spec []complex128, n int) []complex128 {
	full := make([]complex128, n)
	full[0] = complex(real(spec[0]), 0)
	full[n/2] = complex(imag(spec[0]), 0)

	for k := 1; k < n/2; k++ {
		full[k] = spec[k]
		full[n-k] = complex(real(spec[k]), -imag(spec[k]))
	}

	return full
}

func randFloat64s(rng *rand.Rand, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = rng.Float64()*2 - 1
	}

	return out
}

func randComplex128s(rng *rand.Rand, n int) []complex128 {
	out := make([]complex128, n)
	for i := range out {
		out[i] = complex(rng.Float64()*2-1, rng.Float64()*2-1)
	}

	return out
}
