// Package streaming fills a texture on the CPU every frame and draws it
// scaled to the window.
package streaming

import (
	"image"
	"image/color"

	"github.com/chewxy/math32"

	"hello-gfx/internal/app"
	"hello-gfx/internal/demos/demokit"
	"hello-gfx/internal/graphics"
)

const (
	texSize    = 256
	squareSize = 32
)

var squareColor = color.RGBA{255, 220, 0, 255}

type Demo struct {
	demokit.Canvas2D
	ctx *app.Context
	tex *graphics.StreamingTexture
}

func New(ctx *app.Context) (app.Demo, error) {
	c, err := demokit.NewCanvas2D(ctx)
	if err != nil {
		return nil, err
	}
	return &Demo{Canvas2D: c, ctx: ctx, tex: graphics.NewStreamingTexture(texSize, texSize)}, nil
}

func (d *Demo) Iterate(f app.Frame) app.Result {
	FillFrame(d.tex.Pixels(), float32(f.Elapsed))
	d.tex.Upload()

	w, h := d.ctx.Size()
	side := float32(min(w, h))
	dst := graphics.Rect{X: (float32(w) - side) / 2, Y: (float32(h) - side) / 2, W: side, H: side}

	d.R.SetDrawColor(color.RGBA{A: 255})
	d.R.Clear()
	d.R.Texture(d.tex.Texture, nil, dst)
	return app.Continue
}

func (d *Demo) Close() error {
	d.tex.Delete()
	return d.Canvas2D.Close()
}

// SquareOrigin is the top-left corner of the moving square at t seconds for
// an image of the given size. It travels a circle around the centre.
func SquareOrigin(size int, t float32) image.Point {
	c := float32(size-squareSize) / 2
	r := c * 0.8
	return image.Pt(int(c+r*math32.Cos(t)), int(c+r*math32.Sin(t)))
}

// FillFrame writes a gradient background with the square on top.
func FillFrame(img *image.RGBA, t float32) {
	b := img.Bounds()
	shift := uint8(int(t*64) & 0xff)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			img.SetRGBA(x, y, color.RGBA{uint8(x) + shift, uint8(y), 96, 255})
		}
	}

	o := SquareOrigin(b.Dx(), t)
	sq := image.Rect(o.X, o.Y, o.X+squareSize, o.Y+squareSize).Intersect(b)
	for y := sq.Min.Y; y < sq.Max.Y; y++ {
		for x := sq.Min.X; x < sq.Max.X; x++ {
			img.SetRGBA(x, y, squareColor)
		}
	}
}
