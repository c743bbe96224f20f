package gl

import (
	"runtime"
	"strings"
	"unsafe"
)

// Functions is the resolved entry-point surface of the current context.
// Every method forwards straight to the driver; the convenience shapes
// (slices, strings) only remove pointer plumbing and never outlive the
// call.
type Functions struct {
	n *native

	// Scratch cache for single-value queries.
	ints   [4]int32
	int64s [1]int64

	debugCB uintptr
}

// New resolves every entry point against the current context's driver.
// It must be called on the thread that owns the context and fails with a
// *MissingEntryPointsError naming every symbol the driver does not
// provide.
func New() (*Functions, error) {
	n, err := loadNative()
	if err != nil {
		return nil, err
	}
	return &Functions{n: n}, nil
}

func (f *Functions) Enable(cap Enum) {
	f.n.Enable(uint32(cap))
}

func (f *Functions) Disable(cap Enum) {
	f.n.Disable(uint32(cap))
}

func (f *Functions) IsEnabled(cap Enum) bool {
	return f.n.IsEnabled(uint32(cap))
}

func (f *Functions) BlendFunc(sfactor, dfactor Enum) {
	f.n.BlendFunc(uint32(sfactor), uint32(dfactor))
}

func (f *Functions) BlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha Enum) {
	f.n.BlendFuncSeparate(uint32(srcRGB), uint32(dstRGB), uint32(srcAlpha), uint32(dstAlpha))
}

func (f *Functions) BlendEquation(mode Enum) {
	f.n.BlendEquation(uint32(mode))
}

func (f *Functions) BlendColor(red, green, blue, alpha float32) {
	f.n.BlendColor(red, green, blue, alpha)
}

func (f *Functions) DepthFunc(fn Enum) {
	f.n.DepthFunc(uint32(fn))
}

func (f *Functions) DepthMask(mask bool) {
	f.n.DepthMask(mask)
}

func (f *Functions) ColorMask(red, green, blue, alpha bool) {
	f.n.ColorMask(red, green, blue, alpha)
}

func (f *Functions) StencilFunc(fn Enum, ref int32, mask uint32) {
	f.n.StencilFunc(uint32(fn), ref, mask)
}

func (f *Functions) StencilOp(fail, zfail, zpass Enum) {
	f.n.StencilOp(uint32(fail), uint32(zfail), uint32(zpass))
}

func (f *Functions) StencilMask(mask uint32) {
	f.n.StencilMask(mask)
}

func (f *Functions) CullFace(mode Enum) {
	f.n.CullFace(uint32(mode))
}

func (f *Functions) FrontFace(mode Enum) {
	f.n.FrontFace(uint32(mode))
}

func (f *Functions) PolygonMode(face, mode Enum) {
	f.n.PolygonMode(uint32(face), uint32(mode))
}

func (f *Functions) PolygonOffset(factor, units float32) {
	f.n.PolygonOffset(factor, units)
}

func (f *Functions) LineWidth(width float32) {
	f.n.LineWidth(width)
}

func (f *Functions) PointSize(size float32) {
	f.n.PointSize(size)
}

func (f *Functions) Viewport(x, y, width, height int) {
	f.n.Viewport(int32(x), int32(y), int32(width), int32(height))
}

func (f *Functions) Scissor(x, y, width, height int32) {
	f.n.Scissor(x, y, width, height)
}

func (f *Functions) ClearColor(red, green, blue, alpha float32) {
	f.n.ClearColor(red, green, blue, alpha)
}

func (f *Functions) ClearDepthf(d float32) {
	f.n.ClearDepthf(d)
}

func (f *Functions) ClearStencil(s int32) {
	f.n.ClearStencil(s)
}

func (f *Functions) Clear(mask Enum) {
	f.n.Clear(uint32(mask))
}

func (f *Functions) Finish() {
	f.n.Finish()
}

func (f *Functions) Flush() {
	f.n.Flush()
}

func (f *Functions) PixelStorei(pname Enum, param int32) {
	f.n.PixelStorei(uint32(pname), param)
}

func (f *Functions) MemoryBarrier(barriers Enum) {
	f.n.MemoryBarrier(uint32(barriers))
}

func (f *Functions) GetError() Enum {
	return Enum(f.n.GetError())
}

func (f *Functions) GetString(pname Enum) string {
	if runtime.GOOS == "darwin" && pname == EXTENSIONS {
		// The macOS core profile rejects glGetString(GL_EXTENSIONS).
		// Join glGetStringi(GL_EXTENSIONS, i) instead.
		var exts []string
		nexts := f.GetInteger(NUM_EXTENSIONS)
		for i := 0; i < nexts; i++ {
			exts = append(exts, f.GetStringi(EXTENSIONS, i))
		}
		return strings.Join(exts, " ")
	}
	return bytePtrToString(f.n.GetString(uint32(pname)))
}

func (f *Functions) GetStringi(pname Enum, index int) string {
	return bytePtrToString(f.n.GetStringi(uint32(pname), uint32(index)))
}

func (f *Functions) GetInteger(pname Enum) int {
	f.n.GetIntegerv(uint32(pname), unsafe.Pointer(&f.ints[0]))
	return int(f.ints[0])
}

// GetInteger4 reads four-component state such as VIEWPORT.
func (f *Functions) GetInteger4(pname Enum) [4]int32 {
	f.n.GetIntegerv(uint32(pname), unsafe.Pointer(&f.ints[0]))
	return f.ints
}

func (f *Functions) GetInteger64(pname Enum) int64 {
	f.n.GetInteger64v(uint32(pname), unsafe.Pointer(&f.int64s[0]))
	return f.int64s[0]
}

func (f *Functions) GetFloat(pname Enum) float32 {
	var v float32
	f.n.GetFloatv(uint32(pname), unsafe.Pointer(&v))
	return v
}

// GetBinding reads an object binding such as CURRENT_PROGRAM.
func (f *Functions) GetBinding(pname Enum) Object {
	return Object{uint32(f.GetInteger(pname))}
}
