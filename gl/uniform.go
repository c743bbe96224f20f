package gl

import (
	"runtime"
	"unsafe"
)

func (f *Functions) Uniform1i(dst Uniform, v int) {
	f.n.Uniform1i(dst.V, int32(v))
}

func (f *Functions) Uniform1f(dst Uniform, v float32) {
	f.n.Uniform1f(dst.V, v)
}

func (f *Functions) Uniform2f(dst Uniform, v0, v1 float32) {
	f.n.Uniform2f(dst.V, v0, v1)
}

func (f *Functions) Uniform3f(dst Uniform, v0, v1, v2 float32) {
	f.n.Uniform3f(dst.V, v0, v1, v2)
}

func (f *Functions) Uniform4f(dst Uniform, v0, v1, v2, v3 float32) {
	f.n.Uniform4f(dst.V, v0, v1, v2, v3)
}

func (f *Functions) Uniform1iv(dst Uniform, v []int32) {
	count := sliceCount("Uniform1iv", len(v), 1)
	f.n.Uniform1iv(dst.V, count, unsafe.Pointer(&v[0]))
	runtime.KeepAlive(v)
}

func (f *Functions) Uniform1fv(dst Uniform, v []float32) {
	count := sliceCount("Uniform1fv", len(v), 1)
	f.n.Uniform1fv(dst.V, count, unsafe.Pointer(&v[0]))
	runtime.KeepAlive(v)
}

func (f *Functions) Uniform2fv(dst Uniform, v []float32) {
	count := sliceCount("Uniform2fv", len(v), 2)
	f.n.Uniform2fv(dst.V, count, unsafe.Pointer(&v[0]))
	runtime.KeepAlive(v)
}

func (f *Functions) Uniform3fv(dst Uniform, v []float32) {
	count := sliceCount("Uniform3fv", len(v), 3)
	f.n.Uniform3fv(dst.V, count, unsafe.Pointer(&v[0]))
	runtime.KeepAlive(v)
}

func (f *Functions) Uniform4fv(dst Uniform, v []float32) {
	count := sliceCount("Uniform4fv", len(v), 4)
	f.n.Uniform4fv(dst.V, count, unsafe.Pointer(&v[0]))
	runtime.KeepAlive(v)
}

func (f *Functions) UniformMatrix2fv(dst Uniform, transpose bool, v []float32) {
	count := sliceCount("UniformMatrix2fv", len(v), 4)
	f.n.UniformMatrix2fv(dst.V, count, transpose, unsafe.Pointer(&v[0]))
	runtime.KeepAlive(v)
}

func (f *Functions) UniformMatrix3fv(dst Uniform, transpose bool, v []float32) {
	count := sliceCount("UniformMatrix3fv", len(v), 9)
	f.n.UniformMatrix3fv(dst.V, count, transpose, unsafe.Pointer(&v[0]))
	runtime.KeepAlive(v)
}

func (f *Functions) UniformMatrix4fv(dst Uniform, transpose bool, v []float32) {
	count := sliceCount("UniformMatrix4fv", len(v), 16)
	f.n.UniformMatrix4fv(dst.V, count, transpose, unsafe.Pointer(&v[0]))
	runtime.KeepAlive(v)
}

func (f *Functions) ProgramUniform1i(p Program, dst Uniform, v int) {
	f.n.ProgramUniform1i(p.V, dst.V, int32(v))
}

func (f *Functions) ProgramUniform1f(p Program, dst Uniform, v float32) {
	f.n.ProgramUniform1f(p.V, dst.V, v)
}

func (f *Functions) ProgramUniform4f(p Program, dst Uniform, v0, v1, v2, v3 float32) {
	f.n.ProgramUniform4f(p.V, dst.V, v0, v1, v2, v3)
}

func (f *Functions) ProgramUniformMatrix4fv(p Program, dst Uniform, transpose bool, v []float32) {
	count := sliceCount("ProgramUniformMatrix4fv", len(v), 16)
	f.n.ProgramUniformMatrix4fv(p.V, dst.V, count, transpose, unsafe.Pointer(&v[0]))
	runtime.KeepAlive(v)
}
