// Package fftypes holds the type constraints shared by the public API and
// the transform engine.
package fftypes

// Float is the constraint for the scalar types the engine computes with.
type Float interface {
	float32 | float64
}

// Complex is the constraint for the complex types the engine computes with.
type Complex interface {
	complex64 | complex128
}

// Value is the constraint for the time-domain element types a transform
// facade can be instantiated with. Real element types yield real
// transforms, complex element types yield complex transforms. The set is
// closed: the per-type dispatch switches exhaustively over it.
type Value interface {
	float32 | float64 | complex64 | complex128
}
