package fftx

import (
	"fmt"
	"unsafe"

	"github.com/cwbudde/fftx/internal/engine"
	"github.com/cwbudde/fftx/internal/mem"
)

// DefaultStackThreshold is the transform length, in scalars, up to which no
// heap work buffer is allocated and the engine uses its own transient
// working memory. Larger real transforms get a preallocated aligned work
// buffer; complex transforms run in place and never hold one.
const DefaultStackThreshold = 4096

// Option configures a transform at construction time.
type Option func(*config)

type config struct {
	stackThreshold int
}

// WithStackThreshold overrides DefaultStackThreshold. Real-transform
// lengths above the threshold use a heap-allocated work buffer that is
// reused across calls; lengths at or below it leave working memory to the
// engine.
func WithStackThreshold(n int) Option {
	return func(c *config) {
		c.stackThreshold = n
	}
}

// FFT is a transform facade for element type T with scalar type S and
// complex type C. It owns a plan for the current length and, for real
// transforms above the stack threshold, an aligned work buffer; both are
// rebuilt by PrepareLength and only then.
//
// The three type parameters must be consistent: S the scalar of T, C the
// complex type of twice S's width. Use the four constructors (NewReal32,
// NewReal64, NewComplex64, NewComplex128) rather than spelling the triple;
// an inconsistent instantiation panics in New.
//
// An FFT instance is not safe for concurrent use. Distinct instances are
// fully independent and may be used from different goroutines.
type FFT[T Value, S Float, C Complex] struct {
	length         int
	stackThreshold int
	kind           Kind
	plan           *engine.Plan[C]
	work           []C // real-transform scratch, held only above the stack threshold
}

// Real32 is a real transform over float32 samples.
type Real32 = FFT[float32, float32, complex64]

// Real64 is a real transform over float64 samples.
type Real64 = FFT[float64, float64, complex128]

// Complex64 is a complex transform over complex64 samples.
type Complex64 = FFT[complex64, float32, complex64]

// Complex128 is a complex transform over complex128 samples.
type Complex128 = FFT[complex128, float64, complex128]

// New builds a transform facade for the given length, preparing the plan
// and work buffer. The length must be zero (disabled) or a supported
// transform length; anything else returns ErrInvalidLength.
//
// New panics if the type triple is inconsistent: C must be exactly twice as
// wide as S, and T must coincide with S (real transforms) or C (complex
// transforms). This is a property of the instantiation, not of the input.
func New[T Value, S Float, C Complex](length int, opts ...Option) (*FFT[T, S, C], error) {
	checkTypeTriple[T, S, C]()

	cfg := config{stackThreshold: DefaultStackThreshold}
	for _, opt := range opts {
		opt(&cfg)
	}

	f := &FFT[T, S, C]{
		stackThreshold: cfg.stackThreshold,
		kind:           KindOf[T](),
	}

	if err := f.PrepareLength(length); err != nil {
		return nil, err
	}

	return f, nil
}

// NewReal32 builds a real transform over float32 samples.
func NewReal32(length int, opts ...Option) (*Real32, error) {
	return New[float32, float32, complex64](length, opts...)
}

// NewReal64 builds a real transform over float64 samples.
func NewReal64(length int, opts ...Option) (*Real64, error) {
	return New[float64, float64, complex128](length, opts...)
}

// NewComplex64 builds a complex transform over complex64 samples.
func NewComplex64(length int, opts ...Option) (*Complex64, error) {
	return New[complex64, float32, complex64](length, opts...)
}

// NewComplex128 builds a complex transform over complex128 samples.
func NewComplex128(length int, opts ...Option) (*Complex128, error) {
	return New[complex128, float64, complex128](length, opts...)
}

// PrepareLength rebuilds the plan and work buffer for newLength. It is a
// no-op when neither the length nor the heap decision changes. A length of
// zero disables the transform: the plan is dropped and no work buffer is
// held; any transform call on a disabled instance is a caller error.
//
// Preparing a length is the only operation that mutates the facade;
// transforms and convolutions never do.
func (f *FFT[T, S, C]) PrepareLength(newLength int) error {
	if newLength < 0 {
		return fmt.Errorf("fftx: prepare length %d: %w", newLength, ErrInvalidLength)
	}

	useHeap := f.kind == KindReal && newLength > f.stackThreshold
	wasHeap := f.work != nil

	if useHeap == wasHeap && newLength == f.length && (f.plan != nil || newLength == 0) {
		return nil
	}

	var plan *engine.Plan[C]

	if newLength > 0 {
		p, err := engine.NewPlan[C](newLength, f.kind)
		if err != nil {
			return fmt.Errorf("fftx: prepare length %d: %w: %w", newLength, ErrInvalidLength, err)
		}

		plan = p
	}

	f.length = newLength
	f.plan = plan
	f.work = nil

	if useHeap && plan != nil {
		f.work = mem.AllocAligned[C](plan.Points())
	}

	return nil
}

// Len returns the current transform length in time-domain elements.
func (f *FFT[T, S, C]) Len() int {
	return f.length
}

// Kind returns the transform kind derived from the element type.
func (f *FFT[T, S, C]) Kind() Kind {
	return f.kind
}

// IsComplexTransform reports whether the element type is complex.
func (f *FFT[T, S, C]) IsComplexTransform() bool {
	return f.kind == KindComplex
}

// IsDoubleScalar reports whether the transform computes in float64
// precision.
func (f *FFT[T, S, C]) IsDoubleScalar() bool {
	var s S
	return unsafe.Sizeof(s) == 8
}

// SpectrumLen returns the number of complex bins of a canonical spectrum:
// Len() for complex transforms, Len()/2 for real transforms (DC and
// Nyquist share bin 0, see Forward).
func (f *FFT[T, S, C]) SpectrumLen() int {
	if f.kind == KindComplex {
		return f.length
	}

	return f.length / 2
}

// InternalLayoutLen returns the size, in scalars, of an internal-layout
// spectrum: 2*Len() for complex transforms, Len() for real transforms.
func (f *FFT[T, S, C]) InternalLayoutLen() int {
	if f.kind == KindComplex {
		return 2 * f.length
	}

	return f.length
}

// Forward computes the forward transform of input into spectrum, in
// canonical bin order, and returns spectrum.
//
// Transforms are not scaled: Inverse(Forward(x)) == Len()*x. Callers
// typically divide by Len() after the inverse.
//
// Canonical order for a complex transform of length N: bin k in 0..N/2-1 is
// frequency k, bin k in N/2..N-1 is the negative frequency k-N. For a real
// transform the spectrum has N/2 bins; bin k in 1..N/2-1 is frequency k and
// bin 0 packs the two purely real boundary components as
// complex(DC, Nyquist).
//
// input and output may alias through view reinterpretation.
func (f *FFT[T, S, C]) Forward(input []T, spectrum []C) []C {
	f.plan.TransformOrdered(f.valueView(input), spectrum, f.work, engine.Forward)
	return spectrum
}

// Inverse computes the inverse transform of a canonical-order spectrum into
// output and returns output. It is the exact unnormalized adjoint of
// Forward under the same bin packing.
func (f *FFT[T, S, C]) Inverse(spectrum []C, output []T) []T {
	f.plan.TransformOrdered(spectrum, f.valueView(output), f.work, engine.Backward)
	return output
}

// ForwardToInternalLayout computes the forward transform with the spectrum
// left in the engine's internal layout, omitting the canonical reordering
// pass. The result feeds Convolve, ConvolveAccumulate,
// InverseFromInternalLayout, or ReorderSpectrum; its bin order is opaque.
func (f *FFT[T, S, C]) ForwardToInternalLayout(input []T, spectrum []S) []S {
	f.plan.Transform(f.valueView(input), f.internalView(spectrum), f.work, engine.Forward)
	return spectrum
}

// InverseFromInternalLayout computes the inverse transform of an
// internal-layout spectrum produced by ForwardToInternalLayout, again
// omitting the reordering pass.
func (f *FFT[T, S, C]) InverseFromInternalLayout(spectrum []S, output []T) []T {
	f.plan.Transform(f.internalView(spectrum), f.valueView(output), f.work, engine.Backward)
	return output
}

// ReorderSpectrum converts an internal-layout spectrum into canonical bin
// order without recomputation. internal and canonical must not alias.
func (f *FFT[T, S, C]) ReorderSpectrum(internal []S, canonical []C) {
	f.plan.Reorder(f.internalView(internal), canonical, engine.Forward)
}

// Convolve multiplies two internal-layout spectra bin-wise, scales the
// products, and writes them to ab: ab = a*b*scaling. All three spectra must
// be in internal layout; applying this to canonical spectra silently
// computes the wrong result. a, b, and ab may alias.
func (f *FFT[T, S, C]) Convolve(a, b, ab []S, scaling S) []S {
	f.plan.Convolve(f.internalView(a), f.internalView(b), f.internalView(ab), float64(scaling), false)
	return ab
}

// ConvolveAccumulate is Convolve with accumulation: ab += a*b*scaling.
func (f *FFT[T, S, C]) ConvolveAccumulate(a, b, ab []S, scaling S) []S {
	f.plan.Convolve(f.internalView(a), f.internalView(b), f.internalView(ab), float64(scaling), true)
	return ab
}

// points returns the number of complex points of the engine buffers.
func (f *FFT[T, S, C]) points() int {
	if f.kind == KindComplex {
		return f.length
	}

	return f.length / 2
}

// valueView reinterprets a time-domain buffer as the engine's complex
// points: pairwise (even, odd) packing for real transforms, the identity
// for complex transforms.
func (f *FFT[T, S, C]) valueView(s []T) []C {
	return viewAsComplex[T, C](s, f.points())
}

// internalView reinterprets an internal-layout scalar buffer as complex
// bins.
func (f *FFT[T, S, C]) internalView(s []S) []C {
	return viewAsComplex[S, C](s, f.points())
}

// viewAsComplex reinterprets the storage of s as points complex values.
// The element sizes are validated so a short buffer panics instead of
// reading out of bounds.
func viewAsComplex[E any, C Complex](s []E, points int) []C {
	if points == 0 {
		return nil
	}

	var (
		ze E
		zc C
	)

	if uintptr(len(s))*unsafe.Sizeof(ze) < uintptr(points)*unsafe.Sizeof(zc) {
		panic("fftx: buffer shorter than the transform requires")
	}

	return unsafe.Slice((*C)(unsafe.Pointer(&s[0])), points)
}

// checkTypeTriple validates the (T, S, C) instantiation. The complex type
// must be exactly twice as wide as the scalar type, and the element type
// must coincide with the scalar (real kind) or the complex (complex kind)
// type; every view reinterpretation in this package relies on it.
func checkTypeTriple[T Value, S Float, C Complex]() {
	var (
		t T
		s S
		c C
	)

	if unsafe.Sizeof(c) != 2*unsafe.Sizeof(s) {
		panic("fftx: complex type must be twice the width of the scalar type")
	}

	switch KindOf[T]() {
	case KindReal:
		if unsafe.Sizeof(t) != unsafe.Sizeof(s) {
			panic("fftx: scalar type does not match the element type")
		}
	case KindComplex:
		if unsafe.Sizeof(t) != unsafe.Sizeof(c) {
			panic("fftx: complex type does not match the element type")
		}
	}
}
