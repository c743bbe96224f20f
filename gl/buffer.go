package gl

import (
	"runtime"
	"unsafe"
)

// GenBuffer reserves a buffer name. The name is not a buffer object until
// it is first bound.
func (f *Functions) GenBuffer() Buffer {
	var b uint32
	f.n.GenBuffers(1, unsafe.Pointer(&b))
	return Buffer{b}
}

// CreateBuffer creates an initialized buffer object without binding it.
func (f *Functions) CreateBuffer() Buffer {
	var b uint32
	f.n.CreateBuffers(1, unsafe.Pointer(&b))
	return Buffer{b}
}

func (f *Functions) DeleteBuffer(b Buffer) {
	f.n.DeleteBuffers(1, unsafe.Pointer(&b.V))
}

func (f *Functions) BindBuffer(target Enum, b Buffer) {
	f.n.BindBuffer(uint32(target), b.V)
}

func (f *Functions) BindBufferBase(target Enum, index int, b Buffer) {
	f.n.BindBufferBase(uint32(target), uint32(index), b.V)
}

func (f *Functions) BindBufferRange(target Enum, index int, b Buffer, offset, size int) {
	f.n.BindBufferRange(uint32(target), uint32(index), b.V, uintptr(offset), uintptr(size))
}

// BufferData uploads src to the bound buffer. An empty src allocates
// nothing and passes a nil pointer, which the driver accepts for
// size-zero stores.
func (f *Functions) BufferData(target Enum, src []byte, usage Enum) {
	var p unsafe.Pointer
	if len(src) > 0 {
		p = unsafe.Pointer(&src[0])
	}
	f.n.BufferData(uint32(target), uintptr(len(src)), p, uint32(usage))
	runtime.KeepAlive(src)
}

// BufferDataSize allocates size bytes of undefined content.
func (f *Functions) BufferDataSize(target Enum, size int, usage Enum) {
	f.n.BufferData(uint32(target), uintptr(size), nil, uint32(usage))
}

func (f *Functions) BufferSubData(target Enum, offset int, src []byte) {
	if len(src) == 0 {
		return
	}
	f.n.BufferSubData(uint32(target), uintptr(offset), uintptr(len(src)), unsafe.Pointer(&src[0]))
	runtime.KeepAlive(src)
}

// BufferStorage creates the bound buffer's immutable store with the byte
// length derived from src.
func (f *Functions) BufferStorage(target Enum, src []byte, flags Enum) {
	c := sliceCount("BufferStorage", len(src), 1)
	f.n.BufferStorage(uint32(target), uintptr(c), unsafe.Pointer(&src[0]), uint32(flags))
	runtime.KeepAlive(src)
}

// BufferStorageSize creates an immutable store of undefined content.
func (f *Functions) BufferStorageSize(target Enum, size int, flags Enum) {
	f.n.BufferStorage(uint32(target), uintptr(size), nil, uint32(flags))
}

func (f *Functions) NamedBufferData(b Buffer, src []byte, usage Enum) {
	var p unsafe.Pointer
	if len(src) > 0 {
		p = unsafe.Pointer(&src[0])
	}
	f.n.NamedBufferData(b.V, uintptr(len(src)), p, uint32(usage))
	runtime.KeepAlive(src)
}

func (f *Functions) NamedBufferSubData(b Buffer, offset int, src []byte) {
	if len(src) == 0 {
		return
	}
	f.n.NamedBufferSubData(b.V, uintptr(offset), uintptr(len(src)), unsafe.Pointer(&src[0]))
	runtime.KeepAlive(src)
}

func (f *Functions) NamedBufferStorage(b Buffer, src []byte, flags Enum) {
	c := sliceCount("NamedBufferStorage", len(src), 1)
	f.n.NamedBufferStorage(b.V, uintptr(c), unsafe.Pointer(&src[0]), uint32(flags))
	runtime.KeepAlive(src)
}

func (f *Functions) NamedBufferStorageSize(b Buffer, size int, flags Enum) {
	f.n.NamedBufferStorage(b.V, uintptr(size), nil, uint32(flags))
}

func (f *Functions) GetBufferSubData(target Enum, offset int, dst []byte) {
	if len(dst) == 0 {
		return
	}
	f.n.GetBufferSubData(uint32(target), uintptr(offset), uintptr(len(dst)), unsafe.Pointer(&dst[0]))
	runtime.KeepAlive(dst)
}

func (f *Functions) CopyBufferSubData(readTarget, writeTarget Enum, readOffset, writeOffset, size int) {
	f.n.CopyBufferSubData(uint32(readTarget), uint32(writeTarget), uintptr(readOffset), uintptr(writeOffset), uintptr(size))
}

// MapBufferRange exposes the mapped range as a byte slice over driver
// memory. The slice is only valid until the matching UnmapBuffer.
func (f *Functions) MapBufferRange(target Enum, offset, length int, access Enum) []byte {
	p := f.n.MapBufferRange(uint32(target), uintptr(offset), uintptr(length), uint32(access))
	if p == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(p)), length)
}

func (f *Functions) MapNamedBufferRange(b Buffer, offset, length int, access Enum) []byte {
	p := f.n.MapNamedBufferRange(b.V, uintptr(offset), uintptr(length), uint32(access))
	if p == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(p)), length)
}

func (f *Functions) UnmapBuffer(target Enum) bool {
	return f.n.UnmapBuffer(uint32(target))
}

func (f *Functions) UnmapNamedBuffer(b Buffer) bool {
	return f.n.UnmapNamedBuffer(b.V)
}
