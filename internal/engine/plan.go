package engine

import (
	"math"

	"github.com/cwbudde/fftx/internal/fftypes"
)

// Plan holds the precomputed state for one (length, kind) pair: twiddle
// factors for both directions, the bit-reversal table that defines the
// internal spectrum layout, and the recombination weights of the real
// transform. A Plan is immutable after construction and therefore safe to
// share between goroutines; the transform methods themselves only mutate
// their output and work arguments.
//
// Complex plans operate on n complex points. Real plans operate on n/2
// packed complex points: the n real time-domain samples reinterpreted as
// consecutive (even, odd) pairs.
type Plan[C fftypes.Complex] struct {
	n      int  // transform length in time-domain elements
	kind   Kind
	points int // complex points per buffer: n for Complex, n/2 for Real

	fwd []C   // e^(-2*pi*i*k/points)
	inv []C   // e^(+2*pi*i*k/points)
	rev []int // bit-reversal permutation of 0..points-1

	// Real-transform recombination weights, indexed by canonical bin.
	// vf[k] = -0.5*i * e^(-2*pi*i*k/n), vi[k] = i * e^(+2*pi*i*k/n).
	vf []C
	vi []C
}

// NewPlan builds a plan for a length-n transform of the given kind.
// n must be a power of two and at least MinLength(kind).
func NewPlan[C fftypes.Complex](n int, kind Kind) (*Plan[C], error) {
	if n < MinLength(kind) || !IsPowerOfTwo(n) {
		return nil, ErrUnsupportedLength
	}

	points := n
	if kind == Real {
		points = n / 2
	}

	p := &Plan[C]{
		n:      n,
		kind:   kind,
		points: points,
		fwd:    make([]C, points),
		inv:    make([]C, points),
		rev:    bitReversalIndices(points),
	}

	for k := range points {
		angle := -2 * math.Pi * float64(k) / float64(points)
		p.fwd[k] = complexFromFloat64[C](math.Cos(angle), math.Sin(angle))
		p.inv[k] = complexFromFloat64[C](math.Cos(angle), -math.Sin(angle))
	}

	if kind == Real {
		p.vf = make([]C, points)
		p.vi = make([]C, points)

		for k := range points {
			theta := 2 * math.Pi * float64(k) / float64(n)
			sin, cos := math.Sin(theta), math.Cos(theta)
			p.vf[k] = complexFromFloat64[C](-0.5*sin, -0.5*cos)
			p.vi[k] = complexFromFloat64[C](-sin, cos)
		}
	}

	return p, nil
}

// Len returns the transform length in time-domain elements.
func (p *Plan[C]) Len() int {
	return p.n
}

// Kind returns the transform kind the plan was built for.
func (p *Plan[C]) Kind() Kind {
	return p.kind
}

// Points returns the number of complex points the plan's buffers hold.
func (p *Plan[C]) Points() int {
	return p.points
}

// bitReversalIndices returns the bit-reversal permutation for size n
// (a power of two). The permutation is an involution.
func bitReversalIndices(n int) []int {
	bits := 0
	for v := n; v > 1; v >>= 1 {
		bits++
	}

	rev := make([]int, n)
	for i := range n {
		r := 0
		v := i

		for range bits {
			r = r<<1 | v&1
			v >>= 1
		}

		rev[i] = r
	}

	return rev
}
