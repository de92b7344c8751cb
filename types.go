package fftx

import (
	"github.com/cwbudde/fftx/internal/engine"
	"github.com/cwbudde/fftx/internal/fftypes"
)

// Value is a type constraint for the time-domain element types a transform
// can be instantiated with. The canonical definition is in internal/fftypes.
type Value = fftypes.Value

// Float is a type constraint for the scalar types of real samples and
// internal-layout spectra. The canonical definition is in internal/fftypes.
type Float = fftypes.Float

// Complex is a type constraint for the complex types of canonical spectra.
// The canonical definition is in internal/fftypes.
type Complex = fftypes.Complex

// Kind identifies whether a transform is real or complex. The kind is
// derived from the element type: complex element types yield complex
// transforms, float element types yield real transforms.
type Kind = engine.Kind

const (
	KindReal    Kind = engine.Real
	KindComplex Kind = engine.Complex
)

// KindOf returns the transform kind for an element type.
func KindOf[T Value]() Kind {
	var zero T

	switch any(zero).(type) {
	case float32, float64:
		return KindReal
	case complex64, complex128:
		return KindComplex
	default:
		panic("fftx: unsupported element type")
	}
}
