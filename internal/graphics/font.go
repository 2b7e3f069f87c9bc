package graphics

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Glyph describes a single character's placement and metrics within the atlas
type Glyph struct {
	// Pixel coordinates of the glyph in the atlas texture (top-left origin)
	AtlasX float32
	AtlasY float32
	// Glyph bitmap size in pixels
	Width  float32
	Height float32
	// Bearing (offset from baseline) in pixels
	BearingX float32
	BearingY float32
	// Advance in pixels
	Advance float32
}

// FontAtlas is a single-channel glyph atlas and its per-glyph metadata.
type FontAtlas struct {
	Image      *image.Alpha
	Glyphs     map[rune]Glyph
	LineHeight float32
}

// ASCII returns the printable ASCII range 32..126.
func ASCII() []rune {
	runes := make([]rune, 0, 127-32)
	for r := rune(32); r <= 126; r++ {
		runes = append(runes, r)
	}
	return runes
}

// NewFace returns the embedded Go Regular face at size pixels.
func NewFace(size float64) (font.Face, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, fmt.Errorf("new face: %w", err)
	}
	return face, nil
}

// BakeAtlas renders runes from face into rows of an atlasW-wide image.
// Glyphs the face lacks are skipped.
func BakeAtlas(face font.Face, runes []rune, atlasW int) *FontAtlas {
	const padding = 1

	// First pass: measure to size the atlas
	offsetX, offsetY, rowHeight := 0, 0, 0
	for _, r := range runes {
		dr, _, _, _, ok := face.Glyph(fixed.P(0, 0), r)
		if !ok || dr.Empty() {
			continue
		}
		if offsetX+dr.Dx() > atlasW {
			offsetX = 0
			offsetY += rowHeight + padding
			rowHeight = 0
		}
		offsetX += dr.Dx() + padding
		rowHeight = max(rowHeight, dr.Dy())
	}
	atlasH := max(offsetY+rowHeight, 1)

	atlas := &FontAtlas{
		Image:      image.NewAlpha(image.Rect(0, 0, atlasW, atlasH)),
		Glyphs:     make(map[rune]Glyph, len(runes)),
		LineHeight: float32(face.Metrics().Height.Ceil()),
	}

	// Second pass: render each glyph into the atlas and record metrics
	offsetX, offsetY, rowHeight = 0, 0, 0
	for _, r := range runes {
		dr, mask, maskp, advance, ok := face.Glyph(fixed.P(0, 0), r)
		if !ok {
			continue
		}
		g := Glyph{
			BearingX: float32(dr.Min.X),
			BearingY: float32(-dr.Min.Y),
			Advance:  float32(advance.Round()),
		}
		if dr.Empty() || mask == nil {
			// Space or non-drawable glyph; still record advance
			atlas.Glyphs[r] = g
			continue
		}

		gw, gh := dr.Dx(), dr.Dy()
		if offsetX+gw > atlasW {
			offsetX = 0
			offsetY += rowHeight + padding
			rowHeight = 0
		}

		dst := image.Rect(offsetX, offsetY, offsetX+gw, offsetY+gh)
		draw.Draw(atlas.Image, dst, mask, maskp, draw.Src)

		g.AtlasX, g.AtlasY = float32(offsetX), float32(offsetY)
		g.Width, g.Height = float32(gw), float32(gh)
		atlas.Glyphs[r] = g

		offsetX += gw + padding
		rowHeight = max(rowHeight, gh)
	}
	return atlas
}

// Measure returns the width and tallest glyph height of text at scale.
// Missing glyphs advance like a space.
func (a *FontAtlas) Measure(text string, scale float32) (width, height float32) {
	for _, r := range text {
		g, ok := a.Glyphs[r]
		if !ok {
			width += a.Glyphs[' '].Advance * scale
			continue
		}
		width += g.Advance * scale
		height = max(height, g.Height*scale)
	}
	return width, height
}

// vertices builds two triangles per glyph (x, y, u, v) with the baseline at y.
func (a *FontAtlas) vertices(text string, x, y, scale float32) []float32 {
	aw := float32(a.Image.Rect.Dx())
	ah := float32(a.Image.Rect.Dy())

	verts := make([]float32, 0, len(text)*6*4)
	for _, r := range text {
		g, ok := a.Glyphs[r]
		if !ok {
			// Skip missing glyphs
			x += a.Glyphs[' '].Advance * scale
			continue
		}
		if g.Width > 0 && g.Height > 0 {
			xPos := x + g.BearingX*scale
			yPos := y - g.BearingY*scale
			w := g.Width * scale
			h := g.Height * scale

			u0, v0 := g.AtlasX/aw, g.AtlasY/ah
			u1, v1 := (g.AtlasX+g.Width)/aw, (g.AtlasY+g.Height)/ah

			verts = append(verts,
				xPos, yPos+h, u0, v1,
				xPos, yPos, u0, v0,
				xPos+w, yPos, u1, v0,

				xPos, yPos+h, u0, v1,
				xPos+w, yPos, u1, v0,
				xPos+w, yPos+h, u1, v1,
			)
		}
		x += g.Advance * scale
	}
	return verts
}

// TextRenderer draws strings from a baked atlas in pixel coordinates.
type TextRenderer struct {
	atlas      *FontAtlas
	texture    uint32
	shader     *Shader
	projection mgl32.Mat4
	vao        uint32
	vbo        uint32
}

// NewTextRenderer bakes the ASCII set of the embedded face at size pixels
// and prepares a width x height pixel projection.
func NewTextRenderer(shaderDir string, size float64, width, height int) (*TextRenderer, error) {
	face, err := NewFace(size)
	if err != nil {
		return nil, err
	}
	defer func() { _ = face.Close() }()

	shader, err := LoadProgram(shaderDir, ProgramFont)
	if err != nil {
		return nil, err
	}

	tr := &TextRenderer{
		atlas:  BakeAtlas(face, ASCII(), 512),
		shader: shader,
	}
	tr.upload()
	tr.initGL()
	tr.Resize(width, height)
	return tr, nil
}

// upload sends the atlas to OpenGL as GL_RED
func (tr *TextRenderer) upload() {
	img := tr.atlas.Image
	gl.GenTextures(1, &tr.texture)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, tr.texture)
	// Ensure tight byte alignment for single-channel upload
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RED, int32(img.Rect.Dx()), int32(img.Rect.Dy()), 0, gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

func (tr *TextRenderer) initGL() {
	gl.GenVertexArrays(1, &tr.vao)
	gl.GenBuffers(1, &tr.vbo)
	gl.BindVertexArray(tr.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, tr.vbo)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 4, gl.FLOAT, false, 4*4, 0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
}

func (tr *TextRenderer) Resize(width, height int) {
	tr.projection = pixelProjection(width, height)
}

func (tr *TextRenderer) Atlas() *FontAtlas { return tr.atlas }

// Draw renders text with its baseline starting at (x, y).
func (tr *TextRenderer) Draw(text string, x, y, scale float32, color mgl32.Vec3) {
	tr.draw(tr.atlas.vertices(text, x, y, scale), color)
}

// DrawLines draws multiple lines of text in a single pass to minimize GL
// state changes, each lineStep pixels below the previous one.
func (tr *TextRenderer) DrawLines(lines []string, x, yStart, lineStep, scale float32, color mgl32.Vec3) {
	var verts []float32
	y := yStart
	for _, line := range lines {
		verts = append(verts, tr.atlas.vertices(line, x, y, scale)...)
		y += lineStep
	}
	tr.draw(verts, color)
}

func (tr *TextRenderer) Measure(text string, scale float32) (float32, float32) {
	return tr.atlas.Measure(text, scale)
}

func (tr *TextRenderer) draw(verts []float32, color mgl32.Vec3) {
	if len(verts) == 0 {
		return
	}
	gl.Disable(gl.DEPTH_TEST)

	tr.shader.Use()
	tr.shader.SetVec3("textColor", color)
	tr.shader.SetMat4("projection", tr.projection)
	tr.shader.SetInt("text", 0)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, tr.texture)
	gl.BindVertexArray(tr.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, tr.vbo)

	// Deterministic orphan to avoid GPU stalls on dynamic updates
	size := len(verts) * 4
	gl.BufferData(gl.ARRAY_BUFFER, size, nil, gl.DYNAMIC_DRAW)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, size, gl.Ptr(verts))
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(verts)/4))

	gl.BindVertexArray(0)
	gl.Disable(gl.BLEND)
}

// Delete cleans up OpenGL resources
func (tr *TextRenderer) Delete() {
	tr.shader.Delete()
	gl.DeleteTextures(1, &tr.texture)
	gl.DeleteVertexArrays(1, &tr.vao)
	gl.DeleteBuffers(1, &tr.vbo)
}
