// Package rectangle bounces a filled rectangle off the window edges.
package rectangle

import (
	"image/color"

	"hello-gfx/internal/app"
	"hello-gfx/internal/demos/demokit"
	"hello-gfx/internal/graphics"
)

type Demo struct {
	demokit.Canvas2D
	ctx *app.Context
	box demokit.Bouncer
}

func New(ctx *app.Context) (app.Demo, error) {
	c, err := demokit.NewCanvas2D(ctx)
	if err != nil {
		return nil, err
	}
	return &Demo{
		Canvas2D: c,
		ctx:      ctx,
		box: demokit.Bouncer{
			Rect: graphics.Rect{X: 100, Y: 100, W: 120, H: 80},
			VX:   240,
			VY:   180,
		},
	}, nil
}

func (d *Demo) Iterate(f app.Frame) app.Result {
	w, h := d.ctx.Size()
	d.box.Step(float32(f.Delta), w, h)

	r := d.R
	r.SetDrawColor(color.RGBA{32, 32, 48, 255})
	r.Clear()
	r.SetDrawColor(color.RGBA{0, 160, 255, 255})
	r.FillRect(d.box.Rect)
	r.SetDrawColor(color.RGBA{255, 255, 255, 255})
	r.Rect(d.box.Rect)
	r.Flush()
	return app.Continue
}
