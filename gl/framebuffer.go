package gl

import (
	"runtime"
	"unsafe"
)

func (f *Functions) GenFramebuffer() Framebuffer {
	var fb uint32
	f.n.GenFramebuffers(1, unsafe.Pointer(&fb))
	return Framebuffer{fb}
}

func (f *Functions) CreateFramebuffer() Framebuffer {
	var fb uint32
	f.n.CreateFramebuffers(1, unsafe.Pointer(&fb))
	return Framebuffer{fb}
}

func (f *Functions) DeleteFramebuffer(fb Framebuffer) {
	f.n.DeleteFramebuffers(1, unsafe.Pointer(&fb.V))
}

func (f *Functions) BindFramebuffer(target Enum, fb Framebuffer) {
	f.n.BindFramebuffer(uint32(target), fb.V)
}

func (f *Functions) CheckFramebufferStatus(target Enum) Enum {
	return Enum(f.n.CheckFramebufferStatus(uint32(target)))
}

func (f *Functions) CheckNamedFramebufferStatus(fb Framebuffer, target Enum) Enum {
	return Enum(f.n.CheckNamedFramebufferStatus(fb.V, uint32(target)))
}

func (f *Functions) FramebufferTexture2D(target, attachment, texTarget Enum, t Texture, level int) {
	f.n.FramebufferTexture2D(uint32(target), uint32(attachment), uint32(texTarget), t.V, int32(level))
}

func (f *Functions) NamedFramebufferTexture(fb Framebuffer, attachment Enum, t Texture, level int) {
	f.n.NamedFramebufferTexture(fb.V, uint32(attachment), t.V, int32(level))
}

func (f *Functions) FramebufferRenderbuffer(target, attachment, rbTarget Enum, rb Renderbuffer) {
	f.n.FramebufferRenderbuffer(uint32(target), uint32(attachment), uint32(rbTarget), rb.V)
}

func (f *Functions) GenRenderbuffer() Renderbuffer {
	var rb uint32
	f.n.GenRenderbuffers(1, unsafe.Pointer(&rb))
	return Renderbuffer{rb}
}

func (f *Functions) DeleteRenderbuffer(rb Renderbuffer) {
	f.n.DeleteRenderbuffers(1, unsafe.Pointer(&rb.V))
}

func (f *Functions) BindRenderbuffer(target Enum, rb Renderbuffer) {
	f.n.BindRenderbuffer(uint32(target), rb.V)
}

func (f *Functions) RenderbufferStorage(target, internalFormat Enum, width, height int) {
	f.n.RenderbufferStorage(uint32(target), uint32(internalFormat), int32(width), int32(height))
}

func (f *Functions) RenderbufferStorageMultisample(target Enum, samples int, internalFormat Enum, width, height int) {
	f.n.RenderbufferStorageMultisample(uint32(target), int32(samples), uint32(internalFormat), int32(width), int32(height))
}

func (f *Functions) BlitFramebuffer(srcX0, srcY0, srcX1, srcY1, dstX0, dstY0, dstX1, dstY1 int, mask Enum, filter Enum) {
	f.n.BlitFramebuffer(int32(srcX0), int32(srcY0), int32(srcX1), int32(srcY1), int32(dstX0), int32(dstY0), int32(dstX1), int32(dstY1), uint32(mask), uint32(filter))
}

func (f *Functions) InvalidateFramebuffer(target Enum, attachments ...Enum) {
	if len(attachments) == 0 {
		return
	}
	f.n.InvalidateFramebuffer(uint32(target), int32(len(attachments)), unsafe.Pointer(&attachments[0]))
	runtime.KeepAlive(attachments)
}

func (f *Functions) DrawBuffers(bufs []Enum) {
	if len(bufs) == 0 {
		return
	}
	f.n.DrawBuffers(int32(len(bufs)), unsafe.Pointer(&bufs[0]))
	runtime.KeepAlive(bufs)
}

func (f *Functions) ReadBuffer(src Enum) {
	f.n.ReadBuffer(uint32(src))
}

func (f *Functions) ClearBufferfv(buffer Enum, drawBuffer int, values []float32) {
	if len(values) == 0 {
		panic("gl: ClearBufferfv called with an empty slice")
	}
	f.n.ClearBufferfv(uint32(buffer), int32(drawBuffer), unsafe.Pointer(&values[0]))
	runtime.KeepAlive(values)
}

func (f *Functions) GetFramebufferAttachmentParameteri(target, attachment, pname Enum) int {
	f.n.GetFramebufferAttachmentParameteriv(uint32(target), uint32(attachment), uint32(pname), unsafe.Pointer(&f.ints[0]))
	return int(f.ints[0])
}

func (f *Functions) GetRenderbufferParameteri(target, pname Enum) int {
	f.n.GetRenderbufferParameteriv(uint32(target), uint32(pname), unsafe.Pointer(&f.ints[0]))
	return int(f.ints[0])
}
