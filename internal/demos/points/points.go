// Package points draws a field of points drifting sideways at random speeds.
package points

import (
	"image/color"
	"math/rand/v2"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"hello-gfx/internal/app"
	"hello-gfx/internal/demos/demokit"
)

const (
	count    = 500
	minSpeed = 30.0 // pixels per second
	maxSpeed = 60.0
)

// Field is a set of points moving right and wrapping at the right edge.
type Field struct {
	Points []mgl32.Vec2
	Speeds []float32
	width  float32
	height float32
}

// NewField scatters n points over a width x height area.
func NewField(n, width, height int, rng *rand.Rand) *Field {
	f := &Field{
		Points: make([]mgl32.Vec2, n),
		Speeds: make([]float32, n),
		width:  float32(width),
		height: float32(height),
	}
	for i := range n {
		f.Points[i] = mgl32.Vec2{rng.Float32() * f.width, rng.Float32() * f.height}
		f.Speeds[i] = minSpeed + rng.Float32()*(maxSpeed-minSpeed)
	}
	return f
}

// Step moves every point by its speed times dt, wrapping x into [0, width).
func (f *Field) Step(dt float32) {
	if dt <= 0 || f.width <= 0 {
		return
	}
	for i := range f.Points {
		x := f.Points[i][0] + f.Speeds[i]*dt
		x = math32.Mod(x, f.width)
		if x < 0 {
			x += f.width
		}
		f.Points[i][0] = x
	}
}

// Resize rescales point positions to a new area.
func (f *Field) Resize(width, height int) {
	if f.width > 0 && f.height > 0 {
		sx := float32(width) / f.width
		sy := float32(height) / f.height
		for i := range f.Points {
			f.Points[i] = mgl32.Vec2{f.Points[i][0] * sx, f.Points[i][1] * sy}
		}
	}
	f.width, f.height = float32(width), float32(height)
}

type Demo struct {
	demokit.Canvas2D
	field *Field
}

func New(ctx *app.Context) (app.Demo, error) {
	c, err := demokit.NewCanvas2D(ctx)
	if err != nil {
		return nil, err
	}
	w, h := ctx.Size()
	rng := rand.New(rand.NewPCG(uint64(w), uint64(h)))
	return &Demo{Canvas2D: c, field: NewField(count, w, h, rng)}, nil
}

func (d *Demo) HandleEvent(ev app.Event) app.Result {
	if rs, ok := ev.(app.ResizeEvent); ok {
		d.field.Resize(rs.Width, rs.Height)
	}
	return d.Canvas2D.HandleEvent(ev)
}

func (d *Demo) Iterate(f app.Frame) app.Result {
	d.field.Step(float32(f.Delta))

	d.R.SetDrawColor(color.RGBA{A: 255})
	d.R.Clear()
	d.R.SetDrawColor(color.RGBA{255, 255, 255, 255})
	d.R.Points(d.field.Points)
	d.R.Flush()
	return app.Continue
}
