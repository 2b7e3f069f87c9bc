// Package lines draws a rotating star of lines.
package lines

import (
	"image/color"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"hello-gfx/internal/app"
	"hello-gfx/internal/demos/demokit"
)

const (
	spokes = 24
	// radians per second
	spinSpeed = 0.5
)

type Demo struct {
	demokit.Canvas2D
	ctx *app.Context
}

func New(ctx *app.Context) (app.Demo, error) {
	c, err := demokit.NewCanvas2D(ctx)
	if err != nil {
		return nil, err
	}
	return &Demo{Canvas2D: c, ctx: ctx}, nil
}

func (d *Demo) Iterate(f app.Frame) app.Result {
	w, h := d.ctx.Size()
	r := d.R

	r.SetDrawColor(color.RGBA{A: 255})
	r.Clear()

	cx, cy := float32(w)/2, float32(h)/2
	radius := min(cx, cy) * 0.9
	angle := float32(f.Elapsed) * spinSpeed

	segs := Star(cx, cy, radius, spokes, angle)
	for i := 0; i+1 < len(segs); i += 2 {
		r.SetDrawColor(SpokeColor(i/2, spokes))
		r.Line(segs[i][0], segs[i][1], segs[i+1][0], segs[i+1][1])
	}

	// frame around the star
	r.SetDrawColor(color.RGBA{255, 255, 255, 255})
	r.Lines([]mgl32.Vec2{
		{cx - radius, cy - radius}, {cx + radius, cy - radius},
		{cx + radius, cy + radius}, {cx - radius, cy + radius},
		{cx - radius, cy - radius},
	})
	r.Flush()
	return app.Continue
}

// Star returns line segments as endpoint pairs: n spokes from (cx, cy) out
// to radius, the first at angle radians.
func Star(cx, cy, radius float32, n int, angle float32) []mgl32.Vec2 {
	segs := make([]mgl32.Vec2, 0, 2*n)
	for i := range n {
		a := angle + 2*math32.Pi*float32(i)/float32(n)
		segs = append(segs,
			mgl32.Vec2{cx, cy},
			mgl32.Vec2{cx + radius*math32.Cos(a), cy + radius*math32.Sin(a)},
		)
	}
	return segs
}

// SpokeColor spreads spokes across a red to blue ramp.
func SpokeColor(i, n int) color.RGBA {
	if n <= 1 {
		return color.RGBA{255, 0, 0, 255}
	}
	t := float32(i) / float32(n-1)
	return color.RGBA{uint8(255 * (1 - t)), 64, uint8(255 * t), 255}
}
