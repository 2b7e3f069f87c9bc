package graphics

import (
	"image"
	"image/color"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Rect is an axis-aligned rectangle in pixels, top-left origin.
type Rect struct {
	X, Y, W, H float32
}

// shapeFloats is the vertex size of a 2D shape: xy plus rgba.
const shapeFloats = 6

// run is a sequence of vertices sharing one primitive mode.
type run struct {
	mode  uint32
	verts []float32
}

// shapeBatch collects coloured 2D primitives in submission order. Adjacent
// primitives of the same mode share a run so they draw in one call.
type shapeBatch struct {
	runs []run
}

func (b *shapeBatch) add(mode uint32, c color.RGBA, pts ...mgl32.Vec2) {
	if len(b.runs) == 0 || b.runs[len(b.runs)-1].mode != mode {
		b.runs = append(b.runs, run{mode: mode})
	}
	r := &b.runs[len(b.runs)-1]
	cr, cg, cb, ca := normColor(c)
	for _, p := range pts {
		r.verts = append(r.verts, p[0], p[1], cr, cg, cb, ca)
	}
}

func (b *shapeBatch) point(c color.RGBA, x, y float32) {
	// sample at the pixel centre
	b.add(gl.POINTS, c, mgl32.Vec2{x + 0.5, y + 0.5})
}

func (b *shapeBatch) line(c color.RGBA, x1, y1, x2, y2 float32) {
	b.add(gl.LINES, c, mgl32.Vec2{x1 + 0.5, y1 + 0.5}, mgl32.Vec2{x2 + 0.5, y2 + 0.5})
}

// polyline joins consecutive points, like SDL_RenderLines.
func (b *shapeBatch) polyline(c color.RGBA, pts []mgl32.Vec2) {
	for i := 1; i < len(pts); i++ {
		b.line(c, pts[i-1][0], pts[i-1][1], pts[i][0], pts[i][1])
	}
}

func (b *shapeBatch) outline(c color.RGBA, r Rect) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	x0, y0 := r.X, r.Y
	x1, y1 := r.X+r.W-1, r.Y+r.H-1
	b.polyline(c, []mgl32.Vec2{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}, {x0, y0}})
}

func (b *shapeBatch) fill(c color.RGBA, r Rect) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	x0, y0 := r.X, r.Y
	x1, y1 := r.X+r.W, r.Y+r.H
	b.add(gl.TRIANGLES, c,
		mgl32.Vec2{x0, y0}, mgl32.Vec2{x0, y1}, mgl32.Vec2{x1, y1},
		mgl32.Vec2{x0, y0}, mgl32.Vec2{x1, y1}, mgl32.Vec2{x1, y0},
	)
}

func (b *shapeBatch) empty() bool { return len(b.runs) == 0 }

func (b *shapeBatch) reset() {
	b.runs = b.runs[:0]
}

func normColor(c color.RGBA) (r, g, b, a float32) {
	return float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, float32(c.A) / 255
}

// spriteQuad returns two triangles (x, y, u, v per vertex) drawing the src
// region of a texW x texH texture into dst. A nil src means the whole texture.
func spriteQuad(texW, texH int, src *image.Rectangle, dst Rect) []float32 {
	u0, v0, u1, v1 := float32(0), float32(0), float32(1), float32(1)
	if src != nil && texW > 0 && texH > 0 {
		u0 = float32(src.Min.X) / float32(texW)
		v0 = float32(src.Min.Y) / float32(texH)
		u1 = float32(src.Max.X) / float32(texW)
		v1 = float32(src.Max.Y) / float32(texH)
	}
	x0, y0 := dst.X, dst.Y
	x1, y1 := dst.X+dst.W, dst.Y+dst.H
	return []float32{
		x0, y0, u0, v0,
		x0, y1, u0, v1,
		x1, y1, u1, v1,

		x0, y0, u0, v0,
		x1, y1, u1, v1,
		x1, y0, u1, v0,
	}
}

// pixelProjection maps pixel coordinates with a top-left origin to clip space.
func pixelProjection(width, height int) mgl32.Mat4 {
	return mgl32.Ortho(0, float32(width), float32(height), 0, -1, 1)
}
