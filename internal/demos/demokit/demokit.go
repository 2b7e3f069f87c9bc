// Package demokit holds the pieces several demos share: quit handling, a
// bouncing rectangle and a fly-camera controller.
package demokit

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"hello-gfx/internal/app"
	"hello-gfx/internal/graphics"
)

// QuitResult ends the demo successfully on a QuitEvent.
func QuitResult(ev app.Event) app.Result {
	if _, ok := ev.(app.QuitEvent); ok {
		return app.Success
	}
	return app.Continue
}

// NewCanvas creates a 2D renderer sized to the current framebuffer.
func NewCanvas(ctx *app.Context) (*graphics.Renderer2D, error) {
	w, h := ctx.Size()
	return graphics.NewRenderer2D(ctx.Config.Shaders.Dir, w, h)
}

// Canvas2D is embedded by the 2D demos: it owns a Renderer2D, keeps it sized
// to the framebuffer and ends the demo on quit.
type Canvas2D struct {
	R *graphics.Renderer2D
}

func NewCanvas2D(ctx *app.Context) (Canvas2D, error) {
	r, err := NewCanvas(ctx)
	if err != nil {
		return Canvas2D{}, err
	}
	return Canvas2D{R: r}, nil
}

func (c Canvas2D) HandleEvent(ev app.Event) app.Result {
	if rs, ok := ev.(app.ResizeEvent); ok {
		c.R.Resize(rs.Width, rs.Height)
	}
	return QuitResult(ev)
}

func (c Canvas2D) Close() error {
	c.R.Delete()
	return nil
}

// ClearDepth clears colour and depth for the 3D demos.
func ClearDepth(r, g, b float32) {
	gl.ClearColor(r, g, b, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}
