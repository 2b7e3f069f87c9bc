package streaming

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSquareOriginInside(t *testing.T) {
	for step := range 100 {
		o := SquareOrigin(texSize, float32(step)*0.13)
		assert.GreaterOrEqual(t, o.X, 0)
		assert.GreaterOrEqual(t, o.Y, 0)
		assert.LessOrEqual(t, o.X+squareSize, texSize)
		assert.LessOrEqual(t, o.Y+squareSize, texSize)
	}
}

func TestFillFrame(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, texSize, texSize))
	FillFrame(img, 0)

	o := SquareOrigin(texSize, 0)
	assert.Equal(t, squareColor, img.RGBAAt(o.X, o.Y))
	assert.Equal(t, squareColor, img.RGBAAt(o.X+squareSize-1, o.Y+squareSize-1))
	assert.Equal(t, color.RGBA{0, 0, 96, 255}, img.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{10, 20, 96, 255}, img.RGBAAt(10, 20))
}

func TestFillFrameChangesOverTime(t *testing.T) {
	a := image.NewRGBA(image.Rect(0, 0, texSize, texSize))
	b := image.NewRGBA(image.Rect(0, 0, texSize, texSize))
	FillFrame(a, 0)
	FillFrame(b, 1)
	assert.NotEqual(t, a.Pix, b.Pix)
}
