package gl

import (
	"fmt"
	"unsafe"
)

// cString returns a NUL-terminated copy of s for entry points that take a
// C string without an explicit length.
func cString(s string) []byte {
	b := make([]byte, len(s)+1)
	copy(b, s)
	return b
}

// goString decodes exactly n bytes of buf as UTF-8, discarding the unused
// tail. Drivers report lengths excluding the trailing NUL.
func goString(buf []byte, n int) string {
	if n < 0 {
		n = 0
	}
	if n > len(buf) {
		n = len(buf)
	}
	return string(buf[:n])
}

// bytePtrToString decodes a NUL-terminated driver string such as the
// result of glGetString.
func bytePtrToString(p *byte) string {
	if p == nil {
		return ""
	}
	var n int
	for ptr := unsafe.Pointer(p); *(*byte)(ptr) != 0; ptr = unsafe.Add(ptr, 1) {
		n++
	}
	return string(unsafe.Slice(p, n))
}

// sliceCount derives the element count passed to a pointer-and-count entry
// point from the length of a flat slice. The call name is only used for
// the panic message. Empty slices are rejected: forwarding a zero-length
// slice would hand the driver an invalid base address.
func sliceCount(call string, n, arity int) int32 {
	if n == 0 {
		panic(fmt.Sprintf("gl: %s called with an empty slice", call))
	}
	if n%arity != 0 {
		panic(fmt.Sprintf("gl: %s called with %d values, not a multiple of %d", call, n, arity))
	}
	return int32(n / arity)
}
