package fftx

import "errors"

// ErrInvalidLength is returned when a transform length is not supported:
// it must be a positive power of two, at least MinLength for the element
// type, or zero to disable the transform.
var ErrInvalidLength = errors.New("fftx: invalid transform length")
