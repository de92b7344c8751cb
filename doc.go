// Package fftx provides a generic, type-safe facade over a fast Fourier
// transform engine for float32, float64, complex64, and complex128 data.
//
// A facade instance owns a precomputed plan for one transform length and,
// for large real transforms, a reusable work buffer; repeated transforms of
// that length pay no setup cost. The element type decides the transform kind: float element types
// run real transforms with half-size spectra, complex element types run
// full complex transforms.
//
//	fft, err := fftx.NewReal64(1024)
//	if err != nil {
//	    // length not supported
//	}
//
//	values := fft.ValueVector()
//	spectrum := fft.SpectrumVector()
//	fft.Forward(values, spectrum)
//
// Transforms are unnormalized: Inverse(Forward(x)) equals Len()*x, so a
// round trip is typically followed by a division by Len().
//
// # Spectrum layouts
//
// Forward and Inverse use the canonical bin order, with the real-transform
// convention that bin 0 packs the DC component in its real part and the
// Nyquist component in its imaginary part.
//
// ForwardToInternalLayout and InverseFromInternalLayout keep the spectrum
// in an engine-chosen bin order and skip the reordering pass. That layout
// is opaque but self-consistent: it round-trips, Convolve and
// ConvolveAccumulate operate on it directly, and ReorderSpectrum converts
// it to canonical order when needed. Frequency-domain convolution of long
// signals is the intended use:
//
//	fft.ForwardToInternalLayout(a, specA)
//	fft.ForwardToInternalLayout(b, specB)
//	fft.Convolve(specA, specB, specAB, 1.0/float64(fft.Len()))
//	fft.InverseFromInternalLayout(specAB, ab)
//
// # Concurrency
//
// A facade instance is not safe for concurrent use: PrepareLength replaces
// the plan and every transform shares the instance's work buffer. Distinct
// instances share nothing and may be used from different goroutines.
package fftx
