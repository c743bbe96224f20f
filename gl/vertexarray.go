package gl

import "unsafe"

// GenVertexArray reserves a vertex array name.
func (f *Functions) GenVertexArray() VertexArray {
	var a uint32
	f.n.GenVertexArrays(1, unsafe.Pointer(&a))
	return VertexArray{a}
}

// CreateVertexArray creates an initialized vertex array object without
// binding it.
func (f *Functions) CreateVertexArray() VertexArray {
	var a uint32
	f.n.CreateVertexArrays(1, unsafe.Pointer(&a))
	return VertexArray{a}
}

func (f *Functions) DeleteVertexArray(a VertexArray) {
	f.n.DeleteVertexArrays(1, unsafe.Pointer(&a.V))
}

func (f *Functions) BindVertexArray(a VertexArray) {
	f.n.BindVertexArray(a.V)
}

func (f *Functions) EnableVertexAttribArray(a Attrib) {
	f.n.EnableVertexAttribArray(uint32(a))
}

func (f *Functions) DisableVertexAttribArray(a Attrib) {
	f.n.DisableVertexAttribArray(uint32(a))
}

func (f *Functions) EnableVertexArrayAttrib(v VertexArray, a Attrib) {
	f.n.EnableVertexArrayAttrib(v.V, uint32(a))
}

// VertexAttribPointer interprets offset as a byte offset into the bound
// ARRAY_BUFFER, never as a client pointer.
func (f *Functions) VertexAttribPointer(dst Attrib, size int, ty Enum, normalized bool, stride, offset int) {
	f.n.VertexAttribPointer(uint32(dst), int32(size), uint32(ty), normalized, int32(stride), uintptr(offset))
}

func (f *Functions) VertexAttribIPointer(dst Attrib, size int, ty Enum, stride, offset int) {
	f.n.VertexAttribIPointer(uint32(dst), int32(size), uint32(ty), int32(stride), uintptr(offset))
}

func (f *Functions) VertexAttribDivisor(a Attrib, divisor int) {
	f.n.VertexAttribDivisor(uint32(a), uint32(divisor))
}

func (f *Functions) VertexArrayVertexBuffer(v VertexArray, bindingIndex int, b Buffer, offset, stride int) {
	f.n.VertexArrayVertexBuffer(v.V, uint32(bindingIndex), b.V, uintptr(offset), int32(stride))
}

func (f *Functions) VertexArrayElementBuffer(v VertexArray, b Buffer) {
	f.n.VertexArrayElementBuffer(v.V, b.V)
}

func (f *Functions) VertexArrayAttribFormat(v VertexArray, a Attrib, size int, ty Enum, normalized bool, relativeOffset int) {
	f.n.VertexArrayAttribFormat(v.V, uint32(a), int32(size), uint32(ty), normalized, uint32(relativeOffset))
}

func (f *Functions) VertexArrayAttribBinding(v VertexArray, a Attrib, bindingIndex int) {
	f.n.VertexArrayAttribBinding(v.V, uint32(a), uint32(bindingIndex))
}
