package testbed

import (
	"fmt"
	"image"
	_ "image/png"
	"os"

	"golang.org/x/image/draw"

	"github.com/spaghettifunk/opal/gl"
)

// maxTextureSize bounds uploaded textures; larger images are scaled
// down so the demo never depends on driver limits.
const maxTextureSize = 1024

// Texture is an uploaded 2D RGBA texture.
type Texture struct {
	f      *gl.Functions
	Path   string
	ID     gl.Texture
	Width  int
	Height int
}

// LoadTexture decodes, scales and uploads an image file.
func LoadTexture(f *gl.Functions, path string) (*Texture, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("testbed: texture %q not found on disk: %w", path, err)
	}
	defer file.Close()

	m, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("testbed: unable to decode texture %q: %w", path, err)
	}

	rgba := toBoundedRGBA(m, maxTextureSize)

	t := &Texture{
		f:      f,
		Path:   path,
		Width:  rgba.Rect.Dx(),
		Height: rgba.Rect.Dy(),
	}
	t.upload(rgba)
	return t, nil
}

// toBoundedRGBA converts to RGBA, scaling down when either dimension
// exceeds bound.
func toBoundedRGBA(m image.Image, bound int) *image.RGBA {
	b := m.Bounds()
	w, h := b.Dx(), b.Dy()
	if w > bound || h > bound {
		if w >= h {
			h = h * bound / w
			w = bound
		} else {
			w = w * bound / h
			h = bound
		}
	}
	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(rgba, rgba.Bounds(), m, b, draw.Src, nil)
	return rgba
}

func (t *Texture) upload(rgba *image.RGBA) {
	f := t.f
	t.ID = f.GenTexture()
	f.ActiveTexture(gl.TEXTURE0)
	f.BindTexture(gl.TEXTURE_2D, t.ID)
	f.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	f.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	f.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	f.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	f.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, t.Width, t.Height, gl.RGBA, gl.UNSIGNED_BYTE, rgba.Pix)
	f.GenerateMipmap(gl.TEXTURE_2D)
}

func (t *Texture) Bind(unit int) {
	t.f.ActiveTexture(gl.TEXTURE0 + gl.Enum(unit))
	t.f.BindTexture(gl.TEXTURE_2D, t.ID)
}

func (t *Texture) Destroy() {
	t.f.DeleteTexture(t.ID)
	t.ID = gl.Texture{}
}
