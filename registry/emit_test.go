package registry

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"text/template"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoType(t *testing.T) {
	cases := []struct {
		ctype string
		want  string
	}{
		{"GLenum", "uint32"},
		{"const GLenum", "uint32"},
		{"GLsizei", "int32"},
		{"GLboolean", "bool"},
		{"GLsizeiptr", "uintptr"},
		{"const void *", "unsafe.Pointer"},
		{"const GLfloat *", "unsafe.Pointer"},
		{"const GLubyte *", "*byte"},
	}
	for _, c := range cases {
		got, err := goType(c.ctype)
		require.NoError(t, err, c.ctype)
		assert.Equal(t, c.want, got, c.ctype)
	}

	_, err := goType("GLhandleARB")
	assert.Error(t, err)
}

func TestGoReturnType(t *testing.T) {
	got, err := goReturnType("")
	require.NoError(t, err)
	assert.Equal(t, "", got)

	got, err = goReturnType("void *")
	require.NoError(t, err)
	assert.Equal(t, "uintptr", got)

	got, err = goReturnType("const GLubyte *")
	require.NoError(t, err)
	assert.Equal(t, "*byte", got)

	got, err = goReturnType("GLenum")
	require.NoError(t, err)
	assert.Equal(t, "uint32", got)
}

func TestLowerCommand(t *testing.T) {
	reg := parseFixture(t)

	gc, err := lowerCommand(reg.Commands["glGenBuffers"], nil)
	require.NoError(t, err)
	assert.Equal(t, "GenBuffers", gc.GoName)
	assert.Equal(t, "genBuffers", gc.FieldName)
	require.Len(t, gc.Params, 2)

	// "n" collides with the wrapper receiver.
	assert.Equal(t, goParam{Name: "num", Type: "int32"}, gc.Params[0])
	assert.Equal(t, goParam{Name: "buffers", Type: "unsafe.Pointer"}, gc.Params[1])
}

func TestLowerCommandOverrides(t *testing.T) {
	reg := parseFixture(t)
	overrides := map[string]string{"glDrawElements.indices": "uintptr"}

	gc, err := lowerCommand(reg.Commands["glDrawElements"], overrides)
	require.NoError(t, err)
	require.Len(t, gc.Params, 4)

	// "type" is a keyword; the override retypes the buffer offset.
	assert.Equal(t, goParam{Name: "xtype", Type: "uint32"}, gc.Params[2])
	assert.Equal(t, goParam{Name: "indices", Type: "uintptr"}, gc.Params[3])
}

func TestSig(t *testing.T) {
	params := []goParam{
		{Name: "mode", Type: "uint32"},
		{Name: "first", Type: "int32"},
		{Name: "count", Type: "int32"},
	}
	assert.Equal(t, "mode uint32, first, count int32", sig(params))
	assert.Equal(t, "", sig(nil))
}

func TestFuncType(t *testing.T) {
	gc := goCommand{
		Params: []goParam{{Name: "cap", Type: "uint32"}},
	}
	assert.Equal(t, "func(uint32)", funcType(gc))

	gc.Ret = "bool"
	assert.Equal(t, "func(uint32) bool", funcType(gc))
}

func TestSyscallArgs(t *testing.T) {
	params := []goParam{
		{Name: "target", Type: "uint32"},
		{Name: "value", Type: "float32"},
		{Name: "normalized", Type: "bool"},
		{Name: "offset", Type: "uintptr"},
	}
	assert.Equal(t, ", uintptr(target), f32(value), btou(normalized), offset", syscallArgs(params))
}

func TestSyscallRet(t *testing.T) {
	assert.Equal(t, "r", syscallRet(goCommand{Ret: "uintptr"}))
	assert.Equal(t, "r != 0", syscallRet(goCommand{Ret: "bool"}))
	assert.Equal(t, "(*byte)(unsafe.Pointer(r))", syscallRet(goCommand{Ret: "*byte"}))
	assert.Equal(t, "uint32(r)", syscallRet(goCommand{Ret: "uint32"}))
}

const fixtureConfig = `registry = %q
api = "gl"
version = "4.6"
profile = "core"
extensions = ["GL_KHR_debug"]
out = %q

[[enums]]
section = "Booleans."
names = ["GL_FALSE", "GL_TRUE"]

[[enums]]
section = "Capabilities."
names = ["GL_CULL_FACE", "GL_DEBUG_OUTPUT"]

[[commands]]
section = "State."
names = ["glEnable", "glGetError", "glGetString"]

[[commands]]
section = "Buffers and drawing."
names = ["glGenBuffers", "glBufferData", "glDrawElements", "glMapBufferRange"]

[[override]]
command = "glDrawElements"
param = "indices"
type = "uintptr"
`

func writeFixtureConfig(t *testing.T) (configPath, outDir string) {
	t.Helper()
	dir := t.TempDir()
	xmlPath := filepath.Join(dir, "gl.xml")
	require.NoError(t, os.WriteFile(xmlPath, []byte(fixtureXML), 0o644))
	outDir = filepath.Join(dir, "gl")
	require.NoError(t, os.Mkdir(outDir, 0o755))
	configPath = filepath.Join(dir, "glgen.toml")
	cfg := []byte(fmt.Sprintf(fixtureConfig, xmlPath, outDir))
	require.NoError(t, os.WriteFile(configPath, cfg, 0o644))
	return configPath, outDir
}

func TestGenerate(t *testing.T) {
	configPath, outDir := writeFixtureConfig(t)

	require.NoError(t, Generate(configPath))

	enums, err := os.ReadFile(filepath.Join(outDir, "enums.go"))
	require.NoError(t, err)
	assert.Contains(t, string(enums), "// Code generated by the registry generator (mage generate); DO NOT EDIT.")
	assert.Contains(t, string(enums), "// Booleans.")
	assert.Contains(t, string(enums), "CULL_FACE    = 0x0B44")
	assert.Contains(t, string(enums), "DEBUG_OUTPUT = 0x92E0")

	unix, err := os.ReadFile(filepath.Join(outDir, "native_unix.go"))
	require.NoError(t, err)
	assert.Contains(t, string(unix), "getString func(uint32) *byte")
	assert.Contains(t, string(unix), `resolve(&n.drawElements, "glDrawElements")`)
	assert.Contains(t, string(unix),
		"func (n *native) DrawElements(mode uint32, count int32, xtype uint32, indices uintptr) {")
	assert.Contains(t, string(unix),
		"func (n *native) MapBufferRange(target uint32, offset, length uintptr, access uint32) uintptr {")

	win, err := os.ReadFile(filepath.Join(outDir, "native_windows.go"))
	require.NoError(t, err)
	assert.Contains(t, string(win), "drawElements   uintptr")
	assert.Contains(t, string(win),
		"syscall.SyscallN(n.drawElements, uintptr(mode), uintptr(count), uintptr(xtype), indices)")
	assert.Contains(t, string(win), "return (*byte)(unsafe.Pointer(r))")
}

func TestGenerateIsDeterministic(t *testing.T) {
	configPath, outDir := writeFixtureConfig(t)

	require.NoError(t, Generate(configPath))
	first, err := os.ReadFile(filepath.Join(outDir, "native_unix.go"))
	require.NoError(t, err)

	require.NoError(t, Generate(configPath))
	second, err := os.ReadFile(filepath.Join(outDir, "native_unix.go"))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

// TestRegenerationIsNoOp re-emits the committed gl files from glgen.toml
// and requires byte-identical output, so a generator or template change
// that drifts from what is checked in fails here instead of as a surprise
// rewrite on the next mage generate.
func TestRegenerationIsNoOp(t *testing.T) {
	xmlPath := filepath.Join("..", "gl.xml")
	if _, err := os.Stat(xmlPath); err != nil {
		t.Skip("gl.xml not present; run mage generate to fetch it")
	}

	cfg, err := LoadConfig(filepath.Join("..", "glgen.toml"))
	require.NoError(t, err)
	reg, err := ParseFile(xmlPath)
	require.NoError(t, err)
	iface, err := reg.Resolve(Selection{
		API:        cfg.API,
		Version:    cfg.Version,
		Profile:    cfg.Profile,
		Extensions: cfg.Extensions,
	})
	require.NoError(t, err)

	enums, err := buildEnumGroups(cfg, reg, iface)
	require.NoError(t, err)
	cmds, err := buildCommandGroups(cfg, reg, iface)
	require.NoError(t, err)
	data := emitData{Enums: enums, Commands: cmds}

	files := map[string]*template.Template{
		"enums.go":          enumsTmpl,
		"native_unix.go":    unixTmpl,
		"native_windows.go": windowsTmpl,
	}
	for name, tmpl := range files {
		var buf bytes.Buffer
		require.NoError(t, tmpl.Execute(&buf, data))
		committed, err := os.ReadFile(filepath.Join("..", cfg.Out, name))
		require.NoError(t, err)
		assert.Equal(t, string(committed), buf.String(), name)
	}
}

func TestGenerateRejectsUnknownEnum(t *testing.T) {
	dir := t.TempDir()
	xmlPath := filepath.Join(dir, "gl.xml")
	require.NoError(t, os.WriteFile(xmlPath, []byte(fixtureXML), 0o644))
	outDir := filepath.Join(dir, "gl")
	require.NoError(t, os.Mkdir(outDir, 0o755))
	configPath := filepath.Join(dir, "glgen.toml")
	cfg := fmt.Sprintf(`registry = %q
api = "gl"
version = "4.6"
profile = "core"
out = %q

[[enums]]
section = "Bad."
names = ["GL_QUADS"]

[[commands]]
section = "State."
names = ["glEnable"]
`, xmlPath, outDir)
	require.NoError(t, os.WriteFile(configPath, []byte(cfg), 0o644))

	err := Generate(configPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GL_QUADS")
}
