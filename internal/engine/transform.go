package engine

// TransformOrdered runs a forward or inverse transform with the spectrum in
// canonical order. Buffers hold Points() complex values; in and out may be
// the same slice. work is optional scratch of at least Points() values; when
// nil or too short the engine uses its own transient memory.
//
// Transforms are unnormalized in both directions: an inverse of a forward
// yields the input scaled by Len().
func (p *Plan[C]) TransformOrdered(in, out, work []C, dir Direction) {
	in, out = in[:p.points], out[:p.points]

	if p.kind == Complex {
		copyIfDistinct(out, in)

		if dir == Forward {
			forwardDIF(out, p.fwd)
			permuteBitrev(out, p.rev)
		} else {
			permuteBitrev(out, p.rev)
			inverseDIT(out, p.inv)
		}

		return
	}

	if dir == Forward {
		copyIfDistinct(out, in)
		forwardDIF(out, p.fwd)

		wk := p.scratch(work)
		copy(wk, out)
		p.recombineForward(out, wk, false)

		return
	}

	wk := p.scratch(work)
	p.recombineInverse(wk, in, false)
	copy(out, wk)
	inverseDIT(out, p.inv)
}

// Transform runs a forward or inverse transform with the spectrum in the
// engine's internal layout, omitting the reordering that TransformOrdered
// performs. A forward Transform must be inverted by a backward Transform or
// first converted with Reorder. Buffer and work conventions match
// TransformOrdered.
func (p *Plan[C]) Transform(in, out, work []C, dir Direction) {
	in, out = in[:p.points], out[:p.points]

	if p.kind == Complex {
		copyIfDistinct(out, in)

		if dir == Forward {
			forwardDIF(out, p.fwd)
		} else {
			inverseDIT(out, p.inv)
		}

		return
	}

	if dir == Forward {
		copyIfDistinct(out, in)
		forwardDIF(out, p.fwd)

		wk := p.scratch(work)
		copy(wk, out)
		p.recombineForward(out, wk, true)

		return
	}

	wk := p.scratch(work)
	p.recombineInverse(wk, in, true)
	copy(out, wk)
	inverseDIT(out, p.inv)
}

// Reorder converts a spectrum between internal layout (Forward: input) and
// canonical order without recomputation. The layout permutation is an
// involution, so both directions apply the same gather; the direction is
// part of the engine contract and kept for symmetry with the transforms.
// in and out must not alias.
func (p *Plan[C]) Reorder(in, out []C, dir Direction) {
	_ = dir

	for i, r := range p.rev {
		out[i] = in[r]
	}
}

// recombineForward derives the real-transform half spectrum from the
// bit-reversed output zrev of the packed half-size complex transform.
// Bin 0 packs (DC, Nyquist). With toInternal the bins are scattered to
// their internal-layout positions instead of canonical order.
func (p *Plan[C]) recombineForward(dst, zrev []C, toInternal bool) {
	h := p.points
	half := complexFromFloat64[C](0.5, 0)

	dst[0] = foldDCNyquist(zrev[0])

	for k := 1; k < h; k++ {
		zk := zrev[p.rev[k]]
		zm := conj(zrev[p.rev[h-k]])

		x := (zk+zm)*half + p.vf[k]*(zk-zm)

		if toInternal {
			dst[p.rev[k]] = x
		} else {
			dst[k] = x
		}
	}
}

// recombineInverse rebuilds the packed half-size spectrum, scaled by two,
// from a real-transform half spectrum, writing it in bit-reversed order so
// the inverse butterfly passes can consume it directly. With fromInternal
// the source bins are gathered from their internal-layout positions.
func (p *Plan[C]) recombineInverse(dst, src []C, fromInternal bool) {
	h := p.points

	dst[0] = foldDCNyquist(src[0])

	for k := 1; k < h; k++ {
		var xk, xm C

		if fromInternal {
			xk = src[p.rev[k]]
			xm = conj(src[p.rev[h-k]])
		} else {
			xk = src[k]
			xm = conj(src[h-k])
		}

		dst[p.rev[k]] = (xk + xm) + p.vi[k]*(xk-xm)
	}
}

// scratch returns work when it is large enough, otherwise a transient
// buffer. Callers below the facade's stack threshold pass nil.
func (p *Plan[C]) scratch(work []C) []C {
	if len(work) >= p.points {
		return work[:p.points]
	}

	return make([]C, p.points)
}

// copyIfDistinct copies in to out unless they share a first element.
// Partially overlapping buffers are a caller contract violation.
func copyIfDistinct[C any](out, in []C) {
	if len(in) == 0 || len(out) == 0 || &out[0] != &in[0] {
		copy(out, in)
	}
}
