package gl

import (
	"runtime"
	"unsafe"
)

// GenTexture reserves a texture name. The name is not a texture object
// until it is first bound.
func (f *Functions) GenTexture() Texture {
	var t uint32
	f.n.GenTextures(1, unsafe.Pointer(&t))
	return Texture{t}
}

// CreateTexture creates an initialized texture object for target without
// binding it.
func (f *Functions) CreateTexture(target Enum) Texture {
	var t uint32
	f.n.CreateTextures(uint32(target), 1, unsafe.Pointer(&t))
	return Texture{t}
}

func (f *Functions) DeleteTexture(t Texture) {
	f.n.DeleteTextures(1, unsafe.Pointer(&t.V))
}

func (f *Functions) BindTexture(target Enum, t Texture) {
	f.n.BindTexture(uint32(target), t.V)
}

func (f *Functions) ActiveTexture(texture Enum) {
	f.n.ActiveTexture(uint32(texture))
}

func (f *Functions) BindTextureUnit(unit int, t Texture) {
	f.n.BindTextureUnit(uint32(unit), t.V)
}

func (f *Functions) TexImage2D(target Enum, level, internalFormat, width, height int, format, ty Enum, data []byte) {
	var p unsafe.Pointer
	if len(data) > 0 {
		p = unsafe.Pointer(&data[0])
	}
	f.n.TexImage2D(uint32(target), int32(level), int32(internalFormat), int32(width), int32(height), 0, uint32(format), uint32(ty), p)
	runtime.KeepAlive(data)
}

func (f *Functions) TexSubImage2D(target Enum, level, x, y, width, height int, format, ty Enum, data []byte) {
	if len(data) == 0 {
		return
	}
	f.n.TexSubImage2D(uint32(target), int32(level), int32(x), int32(y), int32(width), int32(height), uint32(format), uint32(ty), unsafe.Pointer(&data[0]))
	runtime.KeepAlive(data)
}

func (f *Functions) TexStorage2D(target Enum, levels int, internalFormat Enum, width, height int) {
	f.n.TexStorage2D(uint32(target), int32(levels), uint32(internalFormat), int32(width), int32(height))
}

func (f *Functions) TextureStorage2D(t Texture, levels int, internalFormat Enum, width, height int) {
	f.n.TextureStorage2D(t.V, int32(levels), uint32(internalFormat), int32(width), int32(height))
}

func (f *Functions) TextureSubImage2D(t Texture, level, x, y, width, height int, format, ty Enum, data []byte) {
	if len(data) == 0 {
		return
	}
	f.n.TextureSubImage2D(t.V, int32(level), int32(x), int32(y), int32(width), int32(height), uint32(format), uint32(ty), unsafe.Pointer(&data[0]))
	runtime.KeepAlive(data)
}

func (f *Functions) GenerateMipmap(target Enum) {
	f.n.GenerateMipmap(uint32(target))
}

func (f *Functions) GenerateTextureMipmap(t Texture) {
	f.n.GenerateTextureMipmap(t.V)
}

func (f *Functions) TexParameteri(target, pname Enum, param int) {
	f.n.TexParameteri(uint32(target), uint32(pname), int32(param))
}

func (f *Functions) TexParameterf(target, pname Enum, param float32) {
	f.n.TexParameterf(uint32(target), uint32(pname), param)
}

func (f *Functions) TextureParameteri(t Texture, pname Enum, param int) {
	f.n.TextureParameteri(t.V, uint32(pname), int32(param))
}

func (f *Functions) ReadPixels(x, y, width, height int, format, ty Enum, data []byte) {
	if len(data) == 0 {
		return
	}
	f.n.ReadPixels(int32(x), int32(y), int32(width), int32(height), uint32(format), uint32(ty), unsafe.Pointer(&data[0]))
	runtime.KeepAlive(data)
}

func (f *Functions) GenSampler() Sampler {
	var s uint32
	f.n.GenSamplers(1, unsafe.Pointer(&s))
	return Sampler{s}
}

func (f *Functions) DeleteSampler(s Sampler) {
	f.n.DeleteSamplers(1, unsafe.Pointer(&s.V))
}

func (f *Functions) BindSampler(unit int, s Sampler) {
	f.n.BindSampler(uint32(unit), s.V)
}

func (f *Functions) SamplerParameteri(s Sampler, pname Enum, param int) {
	f.n.SamplerParameteri(s.V, uint32(pname), int32(param))
}

func (f *Functions) SamplerParameterf(s Sampler, pname Enum, param float32) {
	f.n.SamplerParameterf(s.V, uint32(pname), param)
}
