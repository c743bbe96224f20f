package gl

import (
	"encoding/binary"
	"unsafe"
)

// Indirect command records are consumed by the GPU from buffer memory
// instead of immediate arguments. Field order and widths are dictated
// bit-for-bit by the OpenGL specification and must not be altered.

// DrawArraysIndirectCommand is the record read by DrawArraysIndirect and
// MultiDrawArraysIndirect.
type DrawArraysIndirectCommand struct {
	Count         uint32
	InstanceCount uint32
	First         uint32
	BaseInstance  uint32
}

// DrawElementsIndirectCommand is the record read by DrawElementsIndirect
// and MultiDrawElementsIndirect.
type DrawElementsIndirectCommand struct {
	Count         uint32
	InstanceCount uint32
	FirstIndex    uint32
	BaseVertex    int32
	BaseInstance  uint32
}

// DispatchIndirectCommand is the record read by DispatchComputeIndirect.
type DispatchIndirectCommand struct {
	NumGroupsX uint32
	NumGroupsY uint32
	NumGroupsZ uint32
}

const (
	DrawArraysIndirectCommandSize   = 16
	DrawElementsIndirectCommandSize = 20
	DispatchIndirectCommandSize     = 12
)

// The in-memory layout must match the wire layout so that slices of
// commands can be uploaded to indirect buffers as-is.
var (
	_ [DrawArraysIndirectCommandSize]byte   = [unsafe.Sizeof(DrawArraysIndirectCommand{})]byte{}
	_ [DrawElementsIndirectCommandSize]byte = [unsafe.Sizeof(DrawElementsIndirectCommand{})]byte{}
	_ [DispatchIndirectCommandSize]byte     = [unsafe.Sizeof(DispatchIndirectCommand{})]byte{}
)

// Encode appends the record to dst in the layout the GPU reads.
func (c DrawArraysIndirectCommand) Encode(dst []byte) []byte {
	dst = binary.LittleEndian.AppendUint32(dst, c.Count)
	dst = binary.LittleEndian.AppendUint32(dst, c.InstanceCount)
	dst = binary.LittleEndian.AppendUint32(dst, c.First)
	dst = binary.LittleEndian.AppendUint32(dst, c.BaseInstance)
	return dst
}

// DecodeDrawArraysIndirectCommand reads a record from the start of src.
func DecodeDrawArraysIndirectCommand(src []byte) DrawArraysIndirectCommand {
	return DrawArraysIndirectCommand{
		Count:         binary.LittleEndian.Uint32(src[0:]),
		InstanceCount: binary.LittleEndian.Uint32(src[4:]),
		First:         binary.LittleEndian.Uint32(src[8:]),
		BaseInstance:  binary.LittleEndian.Uint32(src[12:]),
	}
}

// Encode appends the record to dst in the layout the GPU reads.
func (c DrawElementsIndirectCommand) Encode(dst []byte) []byte {
	dst = binary.LittleEndian.AppendUint32(dst, c.Count)
	dst = binary.LittleEndian.AppendUint32(dst, c.InstanceCount)
	dst = binary.LittleEndian.AppendUint32(dst, c.FirstIndex)
	dst = binary.LittleEndian.AppendUint32(dst, uint32(c.BaseVertex))
	dst = binary.LittleEndian.AppendUint32(dst, c.BaseInstance)
	return dst
}

// DecodeDrawElementsIndirectCommand reads a record from the start of src.
func DecodeDrawElementsIndirectCommand(src []byte) DrawElementsIndirectCommand {
	return DrawElementsIndirectCommand{
		Count:         binary.LittleEndian.Uint32(src[0:]),
		InstanceCount: binary.LittleEndian.Uint32(src[4:]),
		FirstIndex:    binary.LittleEndian.Uint32(src[8:]),
		BaseVertex:    int32(binary.LittleEndian.Uint32(src[12:])),
		BaseInstance:  binary.LittleEndian.Uint32(src[16:]),
	}
}

// Encode appends the record to dst in the layout the GPU reads.
func (c DispatchIndirectCommand) Encode(dst []byte) []byte {
	dst = binary.LittleEndian.AppendUint32(dst, c.NumGroupsX)
	dst = binary.LittleEndian.AppendUint32(dst, c.NumGroupsY)
	dst = binary.LittleEndian.AppendUint32(dst, c.NumGroupsZ)
	return dst
}

// DecodeDispatchIndirectCommand reads a record from the start of src.
func DecodeDispatchIndirectCommand(src []byte) DispatchIndirectCommand {
	return DispatchIndirectCommand{
		NumGroupsX: binary.LittleEndian.Uint32(src[0:]),
		NumGroupsY: binary.LittleEndian.Uint32(src[4:]),
		NumGroupsZ: binary.LittleEndian.Uint32(src[8:]),
	}
}
