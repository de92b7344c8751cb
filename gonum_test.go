package fftx

import (
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/dsp/fourier"
)

// Cross-checks against an independent FFT implementation.

func TestRealSpectrumMatchesGonum(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(41))

	for _, n := range []int{8, 64, 512} {
		fft, err := NewReal64(n)
		if err != nil {
			t.Fatalf("NewReal64(%d): %v", n, err)
		}

		input := randFloat64s(rng, n)
		spectrum := make([]complex128, n/2)
		fft.Forward(input, spectrum)

		ref := fourier.NewFFT(n)
		want := ref.Coefficients(nil, input)

		// Bin 0 packs complex(DC, Nyquist); gonum keeps them as the
		// first and last of its n/2+1 bins.
		assertApproxF64Tolf(t, real(spectrum[0]), real(want[0]), 1e-9*float64(n), "n=%d DC", n)
		assertApproxF64Tolf(t, imag(spectrum[0]), real(want[n/2]), 1e-9*float64(n), "n=%d Nyquist", n)

		for k := 1; k < n/2; k++ {
			assertApproxC128Tolf(t, spectrum[k], want[k], 1e-9*float64(n), "n=%d bin %d", n, k)
		}
	}
}

func TestReal32SpectrumMatchesGonum(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(43))

	for _, n := range []int{8, 64, 256} {
		fft, err := NewReal32(n)
		if err != nil {
			t.Fatalf("NewReal32(%d): %v", n, err)
		}

		// Round the reference input through float32 so both
		// implementations transform the same samples.
		input := make([]float32, n)
		ref := make([]float64, n)
		for i := range input {
			input[i] = float32(rng.Float64()*2 - 1)
			ref[i] = float64(input[i])
		}

		spectrum := make([]complex64, n/2)
		fft.Forward(input, spectrum)

		want := fourier.NewFFT(n).Coefficients(nil, ref)

		tol := 1e-4 * float64(n)
		assertApproxF64Tolf(t, float64(real(spectrum[0])), real(want[0]), tol, "n=%d DC", n)
		assertApproxF64Tolf(t, float64(imag(spectrum[0])), real(want[n/2]), tol, "n=%d Nyquist", n)

		for k := 1; k < n/2; k++ {
			assertApproxC128Tolf(t, complex128(spectrum[k]), want[k], tol, "n=%d bin %d", n, k)
		}
	}
}

func TestComplex64SpectrumMatchesGonum(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(44))

	for _, n := range []int{4, 64, 256} {
		fft, err := NewComplex64(n)
		if err != nil {
			t.Fatalf("NewComplex64(%d): %v", n, err)
		}

		input := make([]complex64, n)
		ref := make([]complex128, n)
		for i := range input {
			input[i] = complex(float32(rng.Float64()*2-1), float32(rng.Float64()*2-1))
			ref[i] = complex128(input[i])
		}

		spectrum := make([]complex64, n)
		fft.Forward(input, spectrum)

		want := fourier.NewCmplxFFT(n).Coefficients(nil, ref)

		tol := 1e-4 * float64(n)
		for k := range want {
			assertApproxC128Tolf(t, complex128(spectrum[k]), want[k], tol, "n=%d bin %d", n, k)
		}
	}
}

func TestComplexSpectrumMatchesGonum(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(42))

	for _, n := range []int{4, 64, 512} {
		fft, err := NewComplex128(n)
		if err != nil {
			t.Fatalf("NewComplex128(%d): %v", n, err)
		}

		input := randComplex128s(rng, n)
		spectrum := make([]complex128, n)
		fft.Forward(input, spectrum)

		ref := fourier.NewCmplxFFT(n)
		want := ref.Coefficients(nil, input)

		for k := range want {
			assertApproxC128Tolf(t, spectrum[k], want[k], 1e-9*float64(n), "n=%d bin %d", n, k)
		}
	}
}
