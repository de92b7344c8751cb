package engine

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// SIMDWidth returns the widest usable vector width of the host CPU in
// float32 lanes, or 1 when no vector unit is detected.
func SIMDWidth() int {
	switch {
	case cpu.X86.HasAVX512:
		return 16
	case cpu.X86.HasAVX2:
		return 8
	case cpu.X86.HasSSE2, cpu.ARM64.HasASIMD:
		return 4
	default:
		return 1
	}
}

// SIMDArch returns a human-readable identifier for the active vector
// code path of the host CPU.
func SIMDArch() string {
	switch {
	case cpu.X86.HasAVX512:
		return "avx512"
	case cpu.X86.HasAVX2:
		return "avx2"
	case cpu.X86.HasSSE2:
		return "sse2"
	case cpu.ARM64.HasASIMD:
		return "neon"
	default:
		return "generic-" + runtime.GOARCH
	}
}
