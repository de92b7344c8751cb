package engine

// Convolve multiplies two internal-layout spectra bin by bin, scales the
// products, and writes (accumulate false) or adds (accumulate true) them
// into ab. a, b, and ab may alias each other.
//
// For real plans the first bin holds the (DC, Nyquist) pair, whose
// components are real and multiply independently; all other bins are
// ordinary complex products. The bin permutation of the internal layout is
// irrelevant here because the operation is element-wise.
func (p *Plan[C]) Convolve(a, b, ab []C, scaling float64, accumulate bool) {
	sc := complexFromFloat64[C](scaling, 0)
	start := 0

	if p.kind == Real {
		v := dcNyquistProduct(a[0], b[0], scaling)

		if accumulate {
			ab[0] += v
		} else {
			ab[0] = v
		}

		start = 1
	}

	if accumulate {
		for i := start; i < p.points; i++ {
			ab[i] += a[i] * b[i] * sc
		}

		return
	}

	for i := start; i < p.points; i++ {
		ab[i] = a[i] * b[i] * sc
	}
}

// dcNyquistProduct multiplies the packed (DC, Nyquist) bins of a and b
// component-wise and scales the result.
func dcNyquistProduct[C any](a, b C, scaling float64) C {
	switch av := any(a).(type) {
	case complex64:
		bv := any(b).(complex64)
		s := float32(scaling)

		return any(complex(real(av)*real(bv)*s, imag(av)*imag(bv)*s)).(C)
	case complex128:
		bv := any(b).(complex128)

		return any(complex(real(av)*real(bv)*scaling, imag(av)*imag(bv)*scaling)).(C)
	default:
		panic("engine: unsupported complex type")
	}
}
