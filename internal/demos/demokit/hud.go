package demokit

import (
	"fmt"
	"image/color"

	"github.com/go-gl/gl/v4.1-core/gl"

	"hello-gfx/internal/camera"
	"hello-gfx/internal/graphics"
)

// FPSCounter averages the frame rate over half-second windows.
type FPSCounter struct {
	frames int
	acc    float64
	value  float64
}

func (c *FPSCounter) Tick(dt float64) {
	c.frames++
	c.acc += dt
	if c.acc >= 0.5 {
		c.value = float64(c.frames) / c.acc
		c.frames = 0
		c.acc = 0
	}
}

func (c *FPSCounter) FPS() float64 { return c.value }

// HUDLines describes the camera state for an on-screen overlay.
func HUDLines(cam *camera.Camera, fps float64, captured bool) []string {
	p := cam.Position
	cursor := "free"
	if captured {
		cursor = "captured"
	}
	return []string{
		fmt.Sprintf("fps %.0f", fps),
		fmt.Sprintf("pos %.2f %.2f %.2f", p.X(), p.Y(), p.Z()),
		fmt.Sprintf("yaw %.1f  pitch %.1f  fov %.1f", cam.Yaw(), cam.Pitch(), cam.Zoom()),
		fmt.Sprintf("cursor %s (Tab)  Esc quits", cursor),
	}
}

// CrosshairLines returns the horizontal and vertical strokes (x1, y1, x2, y2)
// of a crosshair of half-length size centred in a width x height viewport.
func CrosshairLines(width, height int, size float32) [2][4]float32 {
	cx, cy := float32(width)/2, float32(height)/2
	return [2][4]float32{
		{cx - size, cy, cx + size, cy},
		{cx, cy - size, cx, cy + size},
	}
}

// DrawCrosshair queues a white crosshair on r and flushes it over the scene.
func DrawCrosshair(r *graphics.Renderer2D, width, height int) {
	gl.Disable(gl.DEPTH_TEST)
	r.SetDrawColor(color.RGBA{255, 255, 255, 220})
	for _, l := range CrosshairLines(width, height, 8) {
		r.Line(l[0], l[1], l[2], l[3])
	}
	r.Flush()
}
