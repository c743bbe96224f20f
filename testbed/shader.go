package testbed

import (
	"fmt"

	"github.com/spaghettifunk/opal/gl"
)

// Shader is a linked program with a uniform location cache.
type Shader struct {
	f             *gl.Functions
	program       gl.Program
	locationCache map[string]gl.Uniform
}

// NewShader compiles and links a vertex/fragment pair. Compile and link
// failures carry the driver's info log.
func NewShader(f *gl.Functions, vertexSrc, fragmentSrc string) (*Shader, error) {
	vert, err := compile(f, gl.VERTEX_SHADER, vertexSrc)
	if err != nil {
		return nil, err
	}
	defer f.DeleteShader(vert)

	frag, err := compile(f, gl.FRAGMENT_SHADER, fragmentSrc)
	if err != nil {
		return nil, err
	}
	defer f.DeleteShader(frag)

	program := f.CreateProgram()
	f.AttachShader(program, vert)
	f.AttachShader(program, frag)
	f.LinkProgram(program)
	f.DetachShader(program, vert)
	f.DetachShader(program, frag)

	if f.GetProgrami(program, gl.LINK_STATUS) == gl.FALSE {
		log := f.GetProgramInfoLog(program)
		f.DeleteProgram(program)
		return nil, fmt.Errorf("testbed: linking program: %s", log)
	}

	return &Shader{
		f:             f,
		program:       program,
		locationCache: make(map[string]gl.Uniform),
	}, nil
}

func compile(f *gl.Functions, shaderType gl.Enum, src string) (gl.Shader, error) {
	shader := f.CreateShader(shaderType)
	f.ShaderSource(shader, src)
	f.CompileShader(shader)
	if f.GetShaderi(shader, gl.COMPILE_STATUS) == gl.FALSE {
		log := f.GetShaderInfoLog(shader)
		f.DeleteShader(shader)
		return gl.Shader{}, fmt.Errorf("testbed: compiling shader: %s", log)
	}
	return shader, nil
}

func (s *Shader) Program() gl.Program { return s.program }

func (s *Shader) Begin() { s.f.UseProgram(s.program) }
func (s *Shader) End()   { s.f.UseProgram(gl.Program{}) }

func (s *Shader) uniformLocation(name string) gl.Uniform {
	location, ok := s.locationCache[name]
	if !ok {
		location = s.f.GetUniformLocation(s.program, name)
		s.locationCache[name] = location
	}
	return location
}

func (s *Shader) UniformInt(name string, v int) {
	location := s.uniformLocation(name)
	if !location.Valid() {
		return
	}
	s.f.Uniform1i(location, v)
}

func (s *Shader) UniformFloat32(name string, v float32) {
	location := s.uniformLocation(name)
	if !location.Valid() {
		return
	}
	s.f.Uniform1f(location, v)
}

func (s *Shader) UniformMatrix(name string, m [16]float32) {
	location := s.uniformLocation(name)
	if !location.Valid() {
		return
	}
	s.f.UniformMatrix4fv(location, false, m[:])
}

func (s *Shader) Destroy() {
	s.f.DeleteProgram(s.program)
	s.program = gl.Program{}
}
