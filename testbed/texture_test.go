package testbed

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToBoundedRGBAKeepsSmallImages(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 64, 32))

	rgba := toBoundedRGBA(src, 1024)

	assert.Equal(t, 64, rgba.Rect.Dx())
	assert.Equal(t, 32, rgba.Rect.Dy())
}

func TestToBoundedRGBAScalesWide(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2048, 512))

	rgba := toBoundedRGBA(src, 1024)

	assert.Equal(t, 1024, rgba.Rect.Dx())
	assert.Equal(t, 256, rgba.Rect.Dy())
}

func TestToBoundedRGBAScalesTall(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 100, 4000))

	rgba := toBoundedRGBA(src, 1024)

	assert.Equal(t, 25, rgba.Rect.Dx())
	assert.Equal(t, 1024, rgba.Rect.Dy())
}

func TestToBoundedRGBAPreservesColor(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			src.Set(x, y, color.NRGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}

	rgba := toBoundedRGBA(src, 1024)

	require.Equal(t, 4, rgba.Rect.Dx())
	r, g, b, a := rgba.At(2, 2).RGBA()
	assert.Equal(t, uint32(200), r>>8)
	assert.Equal(t, uint32(100), g>>8)
	assert.Equal(t, uint32(50), b>>8)
	assert.Equal(t, uint32(255), a>>8)
}
