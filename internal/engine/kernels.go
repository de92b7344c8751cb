package engine

import "github.com/cwbudde/fftx/internal/fftypes"

// forwardDIF runs the decimation-in-frequency butterfly passes in place.
// Natural-order input, bit-reversed output. tw holds e^(-2*pi*i*k/len(x)).
func forwardDIF[C fftypes.Complex](x, tw []C) {
	n := len(x)

	for span := n / 2; span >= 1; span >>= 1 {
		stride := n / (span * 2)

		for base := 0; base < n; base += span * 2 {
			tj := 0

			for j := base; j < base+span; j++ {
				u, v := x[j], x[j+span]
				x[j] = u + v
				x[j+span] = (u - v) * tw[tj]
				tj += stride
			}
		}
	}
}

// inverseDIT runs the decimation-in-time butterfly passes in place.
// Bit-reversed input, natural-order output, unnormalized. tw holds
// e^(+2*pi*i*k/len(x)).
func inverseDIT[C fftypes.Complex](x, tw []C) {
	n := len(x)

	for span := 1; span < n; span <<= 1 {
		stride := n / (span * 2)

		for base := 0; base < n; base += span * 2 {
			tj := 0

			for j := base; j < base+span; j++ {
				u := x[j]
				v := x[j+span] * tw[tj]
				x[j] = u + v
				x[j+span] = u - v
				tj += stride
			}
		}
	}
}

// permuteBitrev applies the bit-reversal permutation in place. The
// permutation is an involution, so one pass of ordered swaps suffices.
func permuteBitrev[C fftypes.Complex](x []C, rev []int) {
	for i, r := range rev {
		if r > i {
			x[i], x[r] = x[r], x[i]
		}
	}
}

// complexFromFloat64 builds a complex number of type C from float64 parts.
func complexFromFloat64[C fftypes.Complex](re, im float64) C {
	var zero C

	switch any(zero).(type) {
	case complex64:
		return any(complex(float32(re), float32(im))).(C)
	case complex128:
		return any(complex(re, im)).(C)
	default:
		panic("engine: unsupported complex type")
	}
}

// conj returns the complex conjugate of z. The real/imag builtins do not
// accept type-parameter operands, hence the type switch.
func conj[C fftypes.Complex](z C) C {
	switch v := any(z).(type) {
	case complex64:
		return any(complex(real(v), -imag(v))).(C)
	case complex128:
		return any(complex(real(v), -imag(v))).(C)
	default:
		panic("engine: unsupported complex type")
	}
}

// foldDCNyquist maps (re, im) to (re+im, re-im). Applied to the bin-0 value
// of the packed half-size transform it yields the (DC, Nyquist) pair; applied
// to a (DC, Nyquist) pair it yields twice the bin-0 value, which is exactly
// the factor the unnormalized inverse needs.
func foldDCNyquist[C fftypes.Complex](z C) C {
	switch v := any(z).(type) {
	case complex64:
		return any(complex(real(v)+imag(v), real(v)-imag(v))).(C)
	case complex128:
		return any(complex(real(v)+imag(v), real(v)-imag(v))).(C)
	default:
		panic("engine: unsupported complex type")
	}
}
