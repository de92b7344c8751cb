// Package mem provides aligned slice allocation for the transform engine.
//
// The engine's vectorized loops assume that buffers start on a cache-line
// boundary. Go's allocator gives no such guarantee, so allocation
// over-allocates a byte slice and returns a view starting at the first
// aligned offset. The returned slice keeps the backing array alive; there
// is no explicit free.
package mem

import "unsafe"

// Alignment is the boundary, in bytes, that all engine buffers start on.
// 64 bytes covers a cache line and the widest vector unit in use.
const Alignment = 64

// AllocAligned returns an uninitialized slice of n elements of type E whose
// first element is Alignment-byte aligned. n <= 0 returns nil.
func AllocAligned[E any](n int) []E {
	if n <= 0 {
		return nil
	}

	var zero E
	size := int(unsafe.Sizeof(zero))

	raw := make([]byte, n*size+Alignment-1)
	addr := uintptr(unsafe.Pointer(&raw[0]))
	offset := int((Alignment - addr%Alignment) % Alignment)

	return unsafe.Slice((*E)(unsafe.Pointer(&raw[offset])), n)
}

// IsAligned reports whether the first element of s sits on an
// Alignment-byte boundary. An empty slice is considered aligned.
func IsAligned[E any](s []E) bool {
	if len(s) == 0 {
		return true
	}

	return uintptr(unsafe.Pointer(&s[0]))%Alignment == 0
}
