package registry

import (
	"fmt"
	"strings"
)

// scalarTypes maps registry scalar types to the Go types the gl package
// traffics in. GLboolean maps to bool on both dispatch paths: purego
// marshals it directly and the windows emitter lowers it through btou.
var scalarTypes = map[string]string{
	"GLenum":       "uint32",
	"GLbitfield":   "uint32",
	"GLboolean":    "bool",
	"GLbyte":       "int8",
	"GLubyte":      "uint8",
	"GLchar":       "byte",
	"GLshort":      "int16",
	"GLushort":     "uint16",
	"GLint":        "int32",
	"GLuint":       "uint32",
	"GLsizei":      "int32",
	"GLfloat":      "float32",
	"GLclampf":     "float32",
	"GLdouble":     "float64",
	"GLclampd":     "float64",
	"GLint64":      "int64",
	"GLuint64":     "uint64",
	"GLintptr":     "uintptr",
	"GLsizeiptr":   "uintptr",
	"GLsync":       "uintptr",
	"GLDEBUGPROC":  "uintptr",
	"GLuint64EXT":  "uint64",
	"GLhalf":       "uint16",
	"GLfixed":      "int32",
	"void":         "",
	"unsigned int": "uint32",
}

// goType maps a cleaned C type to its Go shape. Pointer parameters
// default to unsafe.Pointer; buffer-offset parameters that the API
// types as pointers are overridden to uintptr per glgen.toml.
func goType(ctype string) (string, error) {
	if strings.Contains(ctype, "*") {
		switch {
		case strings.Contains(ctype, "GLubyte"):
			// glGetString and friends return static driver strings.
			return "*byte", nil
		default:
			return "unsafe.Pointer", nil
		}
	}
	base := strings.TrimPrefix(ctype, "const ")
	if t, ok := scalarTypes[base]; ok {
		return t, nil
	}
	return "", fmt.Errorf("registry: no Go mapping for C type %q", ctype)
}

// goReturnType maps a command return type. Pointer returns become
// uintptr (glMapBufferRange) except driver strings, which stay *byte.
func goReturnType(ctype string) (string, error) {
	if ctype == "" {
		return "", nil
	}
	if strings.Contains(ctype, "*") {
		if strings.Contains(ctype, "GLubyte") {
			return "*byte", nil
		}
		return "uintptr", nil
	}
	return goType(ctype)
}

// goCommand is a Command lowered to Go types, ready for the templates.
type goCommand struct {
	GLName    string // glGenBuffers
	GoName    string // GenBuffers
	FieldName string // genBuffers
	Params    []goParam
	Ret       string
}

type goParam struct {
	Name string
	Type string
}

// reserved renames parameter names that collide with Go keywords or
// with the wrapper receiver. The registry uses C names like "type", and
// the sized gen/delete commands call their count "n".
var reserved = map[string]string{
	"type":   "xtype",
	"string": "xstring",
	"func":   "xfunc",
	"range":  "xrange",
	"map":    "xmap",
	"n":      "num",
}

func lowerCommand(cmd Command, overrides map[string]string) (goCommand, error) {
	gc := goCommand{
		GLName:    cmd.Name,
		GoName:    strings.TrimPrefix(cmd.Name, "gl"),
		FieldName: fieldName(strings.TrimPrefix(cmd.Name, "gl")),
	}
	ret, err := goReturnType(cmd.Ret)
	if err != nil {
		return gc, fmt.Errorf("%s: %w", cmd.Name, err)
	}
	gc.Ret = ret
	for _, p := range cmd.Params {
		name := p.Name
		if r, ok := reserved[name]; ok {
			name = r
		}
		ty, err := goType(p.CType)
		if err != nil {
			return gc, fmt.Errorf("%s: param %s: %w", cmd.Name, p.Name, err)
		}
		if o, ok := overrides[cmd.Name+"."+p.Name]; ok {
			ty = o
		}
		gc.Params = append(gc.Params, goParam{Name: name, Type: ty})
	}
	return gc, nil
}

// fieldName lowers a wrapper name to its struct field name, GenBuffers
// to genBuffers.
func fieldName(goName string) string {
	if goName == "" {
		return goName
	}
	return strings.ToLower(goName[:1]) + goName[1:]
}
