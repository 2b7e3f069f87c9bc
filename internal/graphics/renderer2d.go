package graphics

import (
	"image"
	"image/color"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Renderer2D draws coloured points, lines, rectangles and textures in pixel
// coordinates with a top-left origin. Shapes are batched until Flush, a
// texture draw or Clear; the current draw colour applies to shapes added
// after it is set.
type Renderer2D struct {
	shape  *Shader
	sprite *Shader

	shapeVAO  uint32
	shapeVBO  uint32
	spriteVAO uint32
	spriteVBO uint32

	color      color.RGBA
	projection mgl32.Mat4
	batch      shapeBatch
}

// NewRenderer2D compiles the 2D programs from shaderDir (empty for the
// embedded sources) and sets up a viewport of width x height pixels.
func NewRenderer2D(shaderDir string, width, height int) (*Renderer2D, error) {
	shape, err := LoadProgram(shaderDir, ProgramShape2D)
	if err != nil {
		return nil, err
	}
	sprite, err := LoadProgram(shaderDir, ProgramSprite)
	if err != nil {
		shape.Delete()
		return nil, err
	}

	r := &Renderer2D{
		shape:  shape,
		sprite: sprite,
		color:  color.RGBA{A: 255},
	}
	r.setupShapeVAO()
	r.setupSpriteVAO()
	r.Resize(width, height)
	return r, nil
}

func (r *Renderer2D) setupShapeVAO() {
	gl.GenVertexArrays(1, &r.shapeVAO)
	gl.BindVertexArray(r.shapeVAO)
	gl.GenBuffers(1, &r.shapeVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.shapeVBO)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, shapeFloats*4, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 4, gl.FLOAT, false, shapeFloats*4, 2*4)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
}

func (r *Renderer2D) setupSpriteVAO() {
	gl.GenVertexArrays(1, &r.spriteVAO)
	gl.BindVertexArray(r.spriteVAO)
	gl.GenBuffers(1, &r.spriteVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.spriteVBO)
	// Allocate room for one quad (6 verts, 4 floats per vert)
	gl.BufferData(gl.ARRAY_BUFFER, 6*4*4, nil, gl.DYNAMIC_DRAW)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 4, gl.FLOAT, false, 4*4, 0)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
}

// Resize updates the pixel projection after a framebuffer size change.
func (r *Renderer2D) Resize(width, height int) {
	r.projection = pixelProjection(width, height)
}

func (r *Renderer2D) SetDrawColor(c color.RGBA) { r.color = c }

func (r *Renderer2D) DrawColor() color.RGBA { return r.color }

// Clear discards pending shapes and fills the framebuffer with the draw colour.
func (r *Renderer2D) Clear() {
	r.batch.reset()
	cr, cg, cb, ca := normColor(r.color)
	gl.ClearColor(cr, cg, cb, ca)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

func (r *Renderer2D) Point(x, y float32) {
	r.batch.point(r.color, x, y)
}

func (r *Renderer2D) Points(pts []mgl32.Vec2) {
	for _, p := range pts {
		r.batch.point(r.color, p[0], p[1])
	}
}

func (r *Renderer2D) Line(x1, y1, x2, y2 float32) {
	r.batch.line(r.color, x1, y1, x2, y2)
}

// Lines draws a connected polyline through pts.
func (r *Renderer2D) Lines(pts []mgl32.Vec2) {
	r.batch.polyline(r.color, pts)
}

// Rect draws the outline of rect.
func (r *Renderer2D) Rect(rect Rect) {
	r.batch.outline(r.color, rect)
}

func (r *Renderer2D) FillRect(rect Rect) {
	r.batch.fill(r.color, rect)
}

// Texture draws the src region of tex (nil for all of it) stretched to dst.
// Pending shapes are flushed first so ordering is preserved.
func (r *Renderer2D) Texture(tex *Texture, src *image.Rectangle, dst Rect) {
	r.Flush()
	verts := spriteQuad(tex.Width, tex.Height, src, dst)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	r.sprite.Use()
	r.sprite.SetMat4("projection", r.projection)
	r.sprite.SetInt("image", 0)
	tex.Bind(0)

	gl.BindVertexArray(r.spriteVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.spriteVBO)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(verts)*4, gl.Ptr(verts))
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
	gl.BindVertexArray(0)

	gl.Disable(gl.BLEND)
}

// Flush draws and discards the pending shapes.
func (r *Renderer2D) Flush() {
	if r.batch.empty() {
		return
	}

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	r.shape.Use()
	r.shape.SetMat4("projection", r.projection)
	gl.BindVertexArray(r.shapeVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.shapeVBO)
	gl.PointSize(1)
	gl.LineWidth(1)

	for _, rn := range r.batch.runs {
		// Deterministic orphan to avoid GPU stalls on dynamic updates
		size := len(rn.verts) * 4
		gl.BufferData(gl.ARRAY_BUFFER, size, nil, gl.STREAM_DRAW)
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, size, gl.Ptr(rn.verts))
		gl.DrawArrays(rn.mode, 0, int32(len(rn.verts)/shapeFloats))
	}

	gl.BindVertexArray(0)
	gl.Disable(gl.BLEND)
	r.batch.reset()
}

// Delete cleans up OpenGL resources
func (r *Renderer2D) Delete() {
	r.shape.Delete()
	r.sprite.Delete()
	gl.DeleteVertexArrays(1, &r.shapeVAO)
	gl.DeleteBuffers(1, &r.shapeVBO)
	gl.DeleteVertexArrays(1, &r.spriteVAO)
	gl.DeleteBuffers(1, &r.spriteVBO)
}
