// Package firstwindow opens a window and cycles its clear colour.
package firstwindow

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/gl/v4.1-core/gl"

	"hello-gfx/internal/app"
	"hello-gfx/internal/demos/demokit"
)

type Demo struct{}

func New(ctx *app.Context) (app.Demo, error) {
	ctx.Logger.Info("first window ready")
	return &Demo{}, nil
}

func (d *Demo) HandleEvent(ev app.Event) app.Result {
	return demokit.QuitResult(ev)
}

func (d *Demo) Iterate(f app.Frame) app.Result {
	r, g, b := ClearColor(float32(f.Elapsed))
	gl.ClearColor(r, g, b, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)
	return app.Continue
}

func (d *Demo) Close() error { return nil }

// ClearColor returns the background at t seconds: three sine waves a third
// of a period apart, each in [0, 1].
func ClearColor(t float32) (r, g, b float32) {
	const third = 2 * math32.Pi / 3
	r = 0.5 + 0.5*math32.Sin(t)
	g = 0.5 + 0.5*math32.Sin(t+third)
	b = 0.5 + 0.5*math32.Sin(t+2*third)
	return r, g, b
}
