package fftx

import "github.com/cwbudde/fftx/internal/mem"

// The factories return uninitialized slices sized for the current length
// and kind, aligned for the engine's vector loads. They are a convenience;
// every operation accepts any correctly sized slice of sufficient
// alignment.

// ValueVector returns an aligned time-domain buffer of Len() elements.
func (f *FFT[T, S, C]) ValueVector() []T {
	return mem.AllocAligned[T](f.length)
}

// SpectrumVector returns an aligned canonical-spectrum buffer of
// SpectrumLen() complex bins.
func (f *FFT[T, S, C]) SpectrumVector() []C {
	return mem.AllocAligned[C](f.SpectrumLen())
}

// InternalLayoutVector returns an aligned internal-layout buffer of
// InternalLayoutLen() scalars.
func (f *FFT[T, S, C]) InternalLayoutVector() []S {
	return mem.AllocAligned[S](f.InternalLayoutLen())
}

// AllocValue returns an aligned slice of n elements of a value type. The
// slice is garbage collected like any other; there is no free.
func AllocValue[T Value](n int) []T {
	return mem.AllocAligned[T](n)
}

// AllocScalar returns an aligned slice of n scalars.
func AllocScalar[S Float](n int) []S {
	return mem.AllocAligned[S](n)
}

// AllocComplex returns an aligned slice of n complex values.
func AllocComplex[C Complex](n int) []C {
	return mem.AllocAligned[C](n)
}
