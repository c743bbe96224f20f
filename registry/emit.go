package registry

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"
)

const generatedHeader = "// Code generated by the registry generator (mage generate); DO NOT EDIT.\n"

// Generate runs the whole pipeline: load glgen.toml, parse the
// registry, resolve the configured selection, and rewrite the generated
// files under cfg.Out. Output depends only on the config and the
// registry, so regeneration is diff-stable.
func Generate(configPath string) error {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		return err
	}
	reg, err := ParseFile(cfg.Registry)
	if err != nil {
		return err
	}
	iface, err := reg.Resolve(Selection{
		API:        cfg.API,
		Version:    cfg.Version,
		Profile:    cfg.Profile,
		Extensions: cfg.Extensions,
	})
	if err != nil {
		return err
	}

	enums, err := buildEnumGroups(cfg, reg, iface)
	if err != nil {
		return err
	}
	cmds, err := buildCommandGroups(cfg, reg, iface)
	if err != nil {
		return err
	}

	files := map[string]*template.Template{
		"enums.go":          enumsTmpl,
		"native_unix.go":    unixTmpl,
		"native_windows.go": windowsTmpl,
	}
	data := emitData{Enums: enums, Commands: cmds}
	for name, tmpl := range files {
		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, data); err != nil {
			return fmt.Errorf("registry: emitting %s: %w", name, err)
		}
		path := filepath.Join(cfg.Out, name)
		if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("registry: %w", err)
		}
	}
	return nil
}

type emitData struct {
	Enums    []emitEnumGroup
	Commands []emitCommandGroup
}

type emitEnumGroup struct {
	Section string
	Enums   []emitEnum
}

type emitEnum struct {
	Name  string // GL_ prefix stripped, padded to the group width
	Value string
}

type emitCommandGroup struct {
	Section  string
	Commands []goCommand
}

func buildEnumGroups(cfg *Config, reg *Registry, iface *Interface) ([]emitEnumGroup, error) {
	out := make([]emitEnumGroup, 0, len(cfg.Enums))
	for _, g := range cfg.Enums {
		eg := emitEnumGroup{Section: g.Section}
		width := 0
		for _, name := range g.Names {
			if n := len(strings.TrimPrefix(name, "GL_")); n > width {
				width = n
			}
		}
		for _, name := range g.Names {
			if !iface.Enums[name] {
				return nil, fmt.Errorf("registry: enum %s is not part of %s %s %s", name, cfg.API, cfg.Version, cfg.Profile)
			}
			value, ok := reg.Enums[name]
			if !ok {
				return nil, fmt.Errorf("registry: enum %s has no value in the registry", name)
			}
			short := strings.TrimPrefix(name, "GL_")
			eg.Enums = append(eg.Enums, emitEnum{
				Name:  short + strings.Repeat(" ", width-len(short)),
				Value: value,
			})
		}
		out = append(out, eg)
	}
	return out, nil
}

func buildCommandGroups(cfg *Config, reg *Registry, iface *Interface) ([]emitCommandGroup, error) {
	overrides := cfg.overrideMap()
	out := make([]emitCommandGroup, 0, len(cfg.Commands))
	for _, g := range cfg.Commands {
		cg := emitCommandGroup{Section: g.Section}
		for _, name := range g.Names {
			if !iface.Commands[name] {
				return nil, fmt.Errorf("registry: command %s is not part of %s %s %s", name, cfg.API, cfg.Version, cfg.Profile)
			}
			cmd, ok := reg.Commands[name]
			if !ok {
				return nil, fmt.Errorf("registry: command %s has no prototype in the registry", name)
			}
			gc, err := lowerCommand(cmd, overrides)
			if err != nil {
				return nil, err
			}
			cg.Commands = append(cg.Commands, gc)
		}
		out = append(out, cg)
	}
	return out, nil
}

// sig renders a Go parameter list, folding consecutive parameters of
// the same type the way gofmt keeps them: "first, count int32".
func sig(params []goParam) string {
	var b strings.Builder
	for i, p := range params {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.Name)
		if i == len(params)-1 || params[i+1].Type != p.Type {
			b.WriteString(" " + p.Type)
		}
	}
	return b.String()
}

func callArgs(params []goParam) string {
	names := make([]string, len(params))
	for i, p := range params {
		names[i] = p.Name
	}
	return strings.Join(names, ", ")
}

// funcType renders the unix struct field type for a command.
func funcType(c goCommand) string {
	types := make([]string, len(c.Params))
	for i, p := range c.Params {
		types[i] = p.Type
	}
	s := "func(" + strings.Join(types, ", ") + ")"
	if c.Ret != "" {
		s += " " + c.Ret
	}
	return s
}

// syscallArgs lowers each parameter to the uintptr word SyscallN
// passes: floats through their bit pattern, bools through 0/1.
func syscallArgs(params []goParam) string {
	var b strings.Builder
	for _, p := range params {
		b.WriteString(", ")
		switch p.Type {
		case "uintptr":
			b.WriteString(p.Name)
		case "float32":
			b.WriteString("f32(" + p.Name + ")")
		case "bool":
			b.WriteString("btou(" + p.Name + ")")
		default:
			b.WriteString("uintptr(" + p.Name + ")")
		}
	}
	return b.String()
}

// syscallRet converts the returned word back to the command's type.
func syscallRet(c goCommand) string {
	switch c.Ret {
	case "uintptr":
		return "r"
	case "bool":
		return "r != 0"
	case "*byte":
		return "(*byte)(unsafe.Pointer(r))"
	default:
		return c.Ret + "(r)"
	}
}

// pad aligns struct field names within a group.
func padField(cmds []goCommand, name string) string {
	width := 0
	for _, c := range cmds {
		if len(c.FieldName) > width {
			width = len(c.FieldName)
		}
	}
	return name + strings.Repeat(" ", width-len(name))
}

var tmplFuncs = template.FuncMap{
	"sig":         sig,
	"callArgs":    callArgs,
	"funcType":    funcType,
	"syscallArgs": syscallArgs,
	"syscallRet":  syscallRet,
	"padField":    padField,
}

var enumsTmpl = template.Must(template.New("enums").Funcs(tmplFuncs).Parse(generatedHeader + `
package gl

// Enum values are fixed by the OpenGL registry and cross the driver ABI
// unchanged.
const (
{{- range $i, $g := .Enums}}
{{- if $i}}
{{end}}	// {{$g.Section}}
{{- range $g.Enums}}
	{{.Name}} = {{.Value}}
{{- end}}
{{- end}}
)
`))

var unixTmpl = template.Must(template.New("unix").Funcs(tmplFuncs).Parse(generatedHeader + `
//go:build darwin || freebsd || linux

package gl

import (
	"runtime"
	"unsafe"

	"github.com/ebitengine/purego"
)

// native holds the resolved entry points of the current context's
// driver, bound by symbol name through purego.
type native struct {
{{- range $i, $g := .Commands}}
{{- if $i}}
{{end}}
{{- range $g.Commands}}
	{{padField $g.Commands .FieldName}} {{funcType .}}
{{- end}}
{{- end}}
}

func openLibrary() (string, uintptr, error) {
	var names []string
	switch runtime.GOOS {
	case "darwin":
		names = []string{"/System/Library/Frameworks/OpenGL.framework/OpenGL"}
	default:
		names = []string{"libGL.so.1", "libGL.so"}
	}
	var lastErr error
	for _, name := range names {
		handle, err := purego.Dlopen(name, purego.RTLD_LAZY|purego.RTLD_GLOBAL)
		if err == nil {
			return name, handle, nil
		}
		lastErr = err
	}
	return names[0], 0, lastErr
}

// loadNative resolves every entry point and reports every symbol that the
// driver does not export, either directly or through glXGetProcAddressARB.
func loadNative() (*native, error) {
	libname, handle, err := openLibrary()
	if err != nil {
		return nil, &MissingEntryPointsError{Library: libname, Err: err}
	}

	var getProcAddress func(name *byte) uintptr
	if addr, err := purego.Dlsym(handle, "glXGetProcAddressARB"); err == nil && addr != 0 {
		purego.RegisterFunc(&getProcAddress, addr)
	}

	n := &native{}
	var missing []string
	resolve := func(dst interface{}, name string) {
		addr, err := purego.Dlsym(handle, name)
		if (err != nil || addr == 0) && getProcAddress != nil {
			cname := cString(name)
			addr = getProcAddress(&cname[0])
		}
		if addr == 0 {
			missing = append(missing, name)
			return
		}
		purego.RegisterFunc(dst, addr)
	}

{{- range .Commands}}
{{- range .Commands}}
	resolve(&n.{{.FieldName}}, "{{.GLName}}")
{{- end}}
{{- end}}

	if len(missing) > 0 {
		return nil, &MissingEntryPointsError{Library: libname, Names: missing}
	}
	return n, nil
}

// newDebugTrampoline wraps fn in a C callable the driver can invoke.
func newDebugTrampoline(fn func(source, gltype, id, severity uint32, length int32, message *byte)) uintptr {
	return purego.NewCallback(func(source, gltype, id, severity uint32, length int32, message *byte, userParam unsafe.Pointer) uintptr {
		fn(source, gltype, id, severity, length, message)
		return 0
	})
}
{{range .Commands}}{{range .Commands}}
func (n *native) {{.GoName}}({{sig .Params}}) {{if .Ret}}{{.Ret}} {{end}}{
	{{if .Ret}}return {{end}}n.{{.FieldName}}({{callArgs .Params}})
}
{{end}}{{end}}`))

var windowsTmpl = template.Must(template.New("windows").Funcs(tmplFuncs).Parse(generatedHeader + `
//go:build windows

package gl

import (
	"math"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

// native holds the resolved entry point addresses of the current
// context's driver. GL 1.1 symbols come straight from opengl32.dll,
// everything newer through wglGetProcAddress.
type native struct {
{{- range $i, $g := .Commands}}
{{- if $i}}
{{end}}
{{- range $g.Commands}}
	{{padField $g.Commands .FieldName}} uintptr
{{- end}}
{{- end}}
}

// loadNative resolves every entry point and reports every symbol that
// neither wglGetProcAddress nor opengl32.dll can supply. It must run on
// the thread whose context is current: wglGetProcAddress resolves against
// the current context's driver.
func loadNative() (*native, error) {
	opengl32 := windows.NewLazySystemDLL("opengl32.dll")
	if err := opengl32.Load(); err != nil {
		return nil, &MissingEntryPointsError{Library: "opengl32.dll", Err: err}
	}
	wglGetProcAddress := opengl32.NewProc("wglGetProcAddress")

	n := &native{}
	var missing []string
	resolve := func(dst *uintptr, name string) {
		cname := cString(name)
		addr, _, _ := wglGetProcAddress.Call(uintptr(unsafe.Pointer(&cname[0])))
		// wgl reports failure with small sentinel values, not just zero.
		switch addr {
		case 0, 1, 2, 3, ^uintptr(0):
			proc := opengl32.NewProc(name)
			if err := proc.Find(); err != nil {
				missing = append(missing, name)
				return
			}
			addr = proc.Addr()
		}
		*dst = addr
	}

{{- range .Commands}}
{{- range .Commands}}
	resolve(&n.{{.FieldName}}, "{{.GLName}}")
{{- end}}
{{- end}}

	if len(missing) > 0 {
		return nil, &MissingEntryPointsError{Library: "opengl32.dll", Names: missing}
	}
	return n, nil
}

// newDebugTrampoline wraps fn in a C callable the driver can invoke.
func newDebugTrampoline(fn func(source, gltype, id, severity uint32, length int32, message *byte)) uintptr {
	return syscall.NewCallback(func(source, gltype, id, severity, length, message, userParam uintptr) uintptr {
		fn(uint32(source), uint32(gltype), uint32(id), uint32(severity), int32(length), (*byte)(unsafe.Pointer(message)))
		return 0
	})
}

func f32(v float32) uintptr {
	return uintptr(math.Float32bits(v))
}

func btou(v bool) uintptr {
	if v {
		return 1
	}
	return 0
}
{{range .Commands}}{{range .Commands}}
func (n *native) {{.GoName}}({{sig .Params}}) {{if .Ret}}{{.Ret}} {{end}}{
	{{if .Ret}}r, _, _ := syscall.SyscallN(n.{{.FieldName}}{{syscallArgs .Params}})
	return {{syscallRet .}}{{else}}syscall.SyscallN(n.{{.FieldName}}{{syscallArgs .Params}}){{end}}
}
{{end}}{{end}}`))
