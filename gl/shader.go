package gl

import (
	"runtime"
	"unsafe"
)

func (f *Functions) CreateShader(ty Enum) Shader {
	return Shader{f.n.CreateShader(uint32(ty))}
}

func (f *Functions) DeleteShader(s Shader) {
	f.n.DeleteShader(s.V)
}

// ShaderSource replaces the source of s. The string is passed with an
// explicit byte length, so it need not be NUL-terminated. An empty
// string panics, matching the empty-slice rejection elsewhere.
func (f *Functions) ShaderSource(s Shader, src string) {
	if src == "" {
		panic("gl: ShaderSource called with an empty string")
	}
	buf := []byte(src)
	ptr := unsafe.Pointer(&buf[0])
	length := int32(len(buf))
	f.n.ShaderSource(s.V, 1, unsafe.Pointer(&ptr), unsafe.Pointer(&length))
	runtime.KeepAlive(buf)
}

func (f *Functions) CompileShader(s Shader) {
	f.n.CompileShader(s.V)
}

func (f *Functions) GetShaderi(s Shader, pname Enum) int {
	f.n.GetShaderiv(s.V, uint32(pname), unsafe.Pointer(&f.ints[0]))
	return int(f.ints[0])
}

func (f *Functions) GetShaderInfoLog(s Shader) string {
	n := f.GetShaderi(s, INFO_LOG_LENGTH)
	if n == 0 {
		return ""
	}
	buf := make([]byte, n)
	var length int32
	f.n.GetShaderInfoLog(s.V, int32(len(buf)), unsafe.Pointer(&length), unsafe.Pointer(&buf[0]))
	return goString(buf, int(length))
}

func (f *Functions) GetShaderSource(s Shader) string {
	n := f.GetShaderi(s, SHADER_SOURCE_LENGTH)
	if n == 0 {
		return ""
	}
	buf := make([]byte, n)
	var length int32
	f.n.GetShaderSource(s.V, int32(len(buf)), unsafe.Pointer(&length), unsafe.Pointer(&buf[0]))
	return goString(buf, int(length))
}

func (f *Functions) CreateProgram() Program {
	return Program{f.n.CreateProgram()}
}

func (f *Functions) DeleteProgram(p Program) {
	f.n.DeleteProgram(p.V)
}

func (f *Functions) AttachShader(p Program, s Shader) {
	f.n.AttachShader(p.V, s.V)
}

func (f *Functions) DetachShader(p Program, s Shader) {
	f.n.DetachShader(p.V, s.V)
}

func (f *Functions) LinkProgram(p Program) {
	f.n.LinkProgram(p.V)
}

func (f *Functions) ValidateProgram(p Program) {
	f.n.ValidateProgram(p.V)
}

func (f *Functions) UseProgram(p Program) {
	f.n.UseProgram(p.V)
}

func (f *Functions) ProgramParameteri(p Program, pname Enum, value int) {
	f.n.ProgramParameteri(p.V, uint32(pname), int32(value))
}

func (f *Functions) GetProgrami(p Program, pname Enum) int {
	f.n.GetProgramiv(p.V, uint32(pname), unsafe.Pointer(&f.ints[0]))
	return int(f.ints[0])
}

func (f *Functions) GetProgramInfoLog(p Program) string {
	n := f.GetProgrami(p, INFO_LOG_LENGTH)
	if n == 0 {
		return ""
	}
	buf := make([]byte, n)
	var length int32
	f.n.GetProgramInfoLog(p.V, int32(len(buf)), unsafe.Pointer(&length), unsafe.Pointer(&buf[0]))
	return goString(buf, int(length))
}

// GetUniformLocation returns the location of the named uniform, or an
// invalid Uniform when the name is not an active uniform of p.
func (f *Functions) GetUniformLocation(p Program, name string) Uniform {
	buf := cString(name)
	loc := f.n.GetUniformLocation(p.V, unsafe.Pointer(&buf[0]))
	runtime.KeepAlive(buf)
	return Uniform{loc}
}

func (f *Functions) GetAttribLocation(p Program, name string) (Attrib, bool) {
	buf := cString(name)
	loc := f.n.GetAttribLocation(p.V, unsafe.Pointer(&buf[0]))
	runtime.KeepAlive(buf)
	if loc < 0 {
		return 0, false
	}
	return Attrib(loc), true
}

func (f *Functions) BindAttribLocation(p Program, a Attrib, name string) {
	buf := cString(name)
	f.n.BindAttribLocation(p.V, uint32(a), unsafe.Pointer(&buf[0]))
	runtime.KeepAlive(buf)
}

func (f *Functions) BindFragDataLocation(p Program, color int, name string) {
	buf := cString(name)
	f.n.BindFragDataLocation(p.V, uint32(color), unsafe.Pointer(&buf[0]))
	runtime.KeepAlive(buf)
}

func (f *Functions) GetUniformBlockIndex(p Program, name string) uint32 {
	buf := cString(name)
	idx := f.n.GetUniformBlockIndex(p.V, unsafe.Pointer(&buf[0]))
	runtime.KeepAlive(buf)
	return idx
}

func (f *Functions) UniformBlockBinding(p Program, uniformBlockIndex uint32, uniformBlockBinding uint32) {
	f.n.UniformBlockBinding(p.V, uniformBlockIndex, uniformBlockBinding)
}

// GetActiveUniform describes the active uniform at index. size is the
// array length of the uniform, ty its GL type.
func (f *Functions) GetActiveUniform(p Program, index int) (name string, size int, ty Enum) {
	bufSize := f.GetProgrami(p, ACTIVE_UNIFORM_MAX_LENGTH)
	if bufSize == 0 {
		bufSize = 1
	}
	buf := make([]byte, bufSize)
	var length, sz int32
	var xtype uint32
	f.n.GetActiveUniform(p.V, uint32(index), int32(len(buf)), unsafe.Pointer(&length), unsafe.Pointer(&sz), unsafe.Pointer(&xtype), unsafe.Pointer(&buf[0]))
	return goString(buf, int(length)), int(sz), Enum(xtype)
}

func (f *Functions) GetActiveAttrib(p Program, index int) (name string, size int, ty Enum) {
	bufSize := f.GetProgrami(p, ACTIVE_ATTRIBUTE_MAX_LENGTH)
	if bufSize == 0 {
		bufSize = 1
	}
	buf := make([]byte, bufSize)
	var length, sz int32
	var xtype uint32
	f.n.GetActiveAttrib(p.V, uint32(index), int32(len(buf)), unsafe.Pointer(&length), unsafe.Pointer(&sz), unsafe.Pointer(&xtype), unsafe.Pointer(&buf[0]))
	return goString(buf, int(length)), int(sz), Enum(xtype)
}

func (f *Functions) GenProgramPipeline() Pipeline {
	var p uint32
	f.n.GenProgramPipelines(1, unsafe.Pointer(&p))
	return Pipeline{p}
}

func (f *Functions) DeleteProgramPipeline(p Pipeline) {
	f.n.DeleteProgramPipelines(1, unsafe.Pointer(&p.V))
}

func (f *Functions) BindProgramPipeline(p Pipeline) {
	f.n.BindProgramPipeline(p.V)
}

func (f *Functions) UseProgramStages(pipeline Pipeline, stages Enum, p Program) {
	f.n.UseProgramStages(pipeline.V, uint32(stages), p.V)
}
