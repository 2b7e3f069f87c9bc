package graphics

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

func sampleImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	img.Set(0, 0, color.NRGBA{255, 0, 0, 255})
	img.Set(2, 1, color.NRGBA{0, 0, 255, 255})
	return img
}

func TestDecodeImage(t *testing.T) {
	tests := []struct {
		name   string
		encode func(*bytes.Buffer, image.Image) error
	}{
		{"png", func(b *bytes.Buffer, m image.Image) error { return png.Encode(b, m) }},
		{"bmp", func(b *bytes.Buffer, m image.Image) error { return bmp.Encode(b, m) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, tt.encode(&buf, sampleImage()))

			rgba, err := DecodeImage(&buf)
			require.NoError(t, err)
			assert.Equal(t, image.Rect(0, 0, 3, 2), rgba.Bounds())
			assert.Equal(t, color.RGBA{255, 0, 0, 255}, rgba.RGBAAt(0, 0))
			assert.Equal(t, color.RGBA{0, 0, 255, 255}, rgba.RGBAAt(2, 1))
		})
	}
}

func TestDecodeImageRejectsGarbage(t *testing.T) {
	_, err := DecodeImage(bytes.NewReader([]byte("not an image")))
	assert.ErrorIs(t, err, image.ErrFormat)
}

func TestToRGBAMovesOrigin(t *testing.T) {
	src := image.NewRGBA(image.Rect(10, 10, 14, 12))
	src.SetRGBA(10, 10, color.RGBA{1, 2, 3, 4})

	out := toRGBA(src)
	assert.Equal(t, image.Rect(0, 0, 4, 2), out.Rect)
	assert.Equal(t, color.RGBA{1, 2, 3, 4}, out.RGBAAt(0, 0))

	packed := image.NewRGBA(image.Rect(0, 0, 2, 2))
	assert.Same(t, packed, toRGBA(packed))
}

func TestCheckerboard(t *testing.T) {
	a := color.RGBA{255, 255, 255, 255}
	b := color.RGBA{0, 0, 0, 255}
	img := Checkerboard(8, 8, 4, a, b)

	assert.Equal(t, a, img.RGBAAt(0, 0))
	assert.Equal(t, a, img.RGBAAt(3, 3))
	assert.Equal(t, b, img.RGBAAt(4, 0))
	assert.Equal(t, b, img.RGBAAt(0, 4))
	assert.Equal(t, a, img.RGBAAt(7, 7))

	tiny := Checkerboard(2, 1, 0, a, b)
	assert.Equal(t, b, tiny.RGBAAt(1, 0), "cell size is at least one pixel")
}

func TestTextureCache(t *testing.T) {
	loads := 0
	c := newTextureCache(func(path string) (*Texture, error) {
		if path == "missing.png" {
			return nil, errors.New("no such file")
		}
		loads++
		return &Texture{Width: loads}, nil
	})

	first, err := c.Get("a.png")
	require.NoError(t, err)
	again, err := c.Get("a.png")
	require.NoError(t, err)
	assert.Same(t, first, again)
	assert.Equal(t, 1, loads)

	_, err = c.Get("b.png")
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())

	_, err = c.Get("missing.png")
	assert.Error(t, err)
	assert.Equal(t, 2, c.Len(), "failed loads are not cached")

	c.Delete()
	assert.Equal(t, 0, c.Len())
}
