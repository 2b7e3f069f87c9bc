package demokit

import "hello-gfx/internal/graphics"

// Bouncer moves a rectangle at a constant velocity in pixels per second and
// reflects it off the bounds it is stepped with.
type Bouncer struct {
	Rect   graphics.Rect
	VX, VY float32
}

// Step advances by dt seconds inside a width x height area. The rectangle
// never ends a step outside the area unless it is larger than the area.
func (b *Bouncer) Step(dt float32, width, height int) {
	if dt <= 0 {
		return
	}
	b.Rect.X += b.VX * dt
	b.Rect.Y += b.VY * dt
	b.Rect.X, b.VX = reflect(b.Rect.X, b.VX, float32(width)-b.Rect.W)
	b.Rect.Y, b.VY = reflect(b.Rect.Y, b.VY, float32(height)-b.Rect.H)
}

// reflect keeps pos within [0, limit], turning v away from the wall it hit.
func reflect(pos, v, limit float32) (float32, float32) {
	if limit <= 0 {
		return 0, v
	}
	switch {
	case pos < 0:
		return -pos, abs(v)
	case pos > limit:
		return max(2*limit-pos, 0), -abs(v)
	}
	return pos, v
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
