package gl

func (f *Functions) DrawArrays(mode Enum, first, count int) {
	f.n.DrawArrays(uint32(mode), int32(first), int32(count))
}

func (f *Functions) DrawElements(mode Enum, count int, ty Enum, offset int) {
	f.n.DrawElements(uint32(mode), int32(count), uint32(ty), uintptr(offset))
}

func (f *Functions) DrawArraysInstanced(mode Enum, first, count, instanceCount int) {
	f.n.DrawArraysInstanced(uint32(mode), int32(first), int32(count), int32(instanceCount))
}

func (f *Functions) DrawElementsInstanced(mode Enum, count int, ty Enum, offset, instanceCount int) {
	f.n.DrawElementsInstanced(uint32(mode), int32(count), uint32(ty), uintptr(offset), int32(instanceCount))
}

func (f *Functions) DrawElementsBaseVertex(mode Enum, count int, ty Enum, offset, baseVertex int) {
	f.n.DrawElementsBaseVertex(uint32(mode), int32(count), uint32(ty), uintptr(offset), int32(baseVertex))
}

// DrawArraysIndirect sources its parameters from the buffer bound to
// DRAW_INDIRECT_BUFFER at the given byte offset.
func (f *Functions) DrawArraysIndirect(mode Enum, offset int) {
	f.n.DrawArraysIndirect(uint32(mode), uintptr(offset))
}

func (f *Functions) DrawElementsIndirect(mode, ty Enum, offset int) {
	f.n.DrawElementsIndirect(uint32(mode), uint32(ty), uintptr(offset))
}

func (f *Functions) MultiDrawArraysIndirect(mode Enum, offset, drawCount, stride int) {
	f.n.MultiDrawArraysIndirect(uint32(mode), uintptr(offset), int32(drawCount), int32(stride))
}

func (f *Functions) MultiDrawElementsIndirect(mode, ty Enum, offset, drawCount, stride int) {
	f.n.MultiDrawElementsIndirect(uint32(mode), uint32(ty), uintptr(offset), int32(drawCount), int32(stride))
}

func (f *Functions) DispatchCompute(x, y, z int) {
	f.n.DispatchCompute(uint32(x), uint32(y), uint32(z))
}

func (f *Functions) DispatchComputeIndirect(offset int) {
	f.n.DispatchComputeIndirect(uintptr(offset))
}
