package graphics

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/png"
	"io"
	"os"

	"github.com/go-gl/gl/v4.1-core/gl"
	_ "golang.org/x/image/bmp"
)

// Texture is a 2D RGBA texture.
type Texture struct {
	ID            uint32
	Width, Height int
}

// LoadTexture loads a 2D texture from a PNG or BMP file
func LoadTexture(path string) (*Texture, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open texture: %w", err)
	}
	defer file.Close()

	rgba, err := DecodeImage(file)
	if err != nil {
		return nil, fmt.Errorf("texture %s: %w", path, err)
	}
	return NewTextureFromImage(rgba), nil
}

// DecodeImage decodes a PNG or BMP stream into tightly packed RGBA.
func DecodeImage(r io.Reader) (*image.RGBA, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return toRGBA(img), nil
}

// toRGBA copies img into an RGBA image whose bounds start at the origin.
func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) && rgba.Stride == 4*rgba.Rect.Dx() {
		return rgba
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return rgba
}

// NewTextureFromImage uploads img with nearest filtering and edge clamping.
func NewTextureFromImage(img image.Image) *Texture {
	rgba := toRGBA(img)
	t := &Texture{Width: rgba.Rect.Dx(), Height: rgba.Rect.Dy()}

	gl.GenTextures(1, &t.ID)
	gl.BindTexture(gl.TEXTURE_2D, t.ID)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)

	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		gl.RGBA,
		int32(t.Width),
		int32(t.Height),
		0,
		gl.RGBA,
		gl.UNSIGNED_BYTE,
		gl.Ptr(rgba.Pix),
	)

	gl.BindTexture(gl.TEXTURE_2D, 0)
	return t
}

// Bind binds the texture to the given texture unit.
func (t *Texture) Bind(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, t.ID)
}

func (t *Texture) Delete() {
	if t.ID != 0 {
		gl.DeleteTextures(1, &t.ID)
		t.ID = 0
	}
}

// StreamingTexture is a texture whose pixels are written on the CPU and
// re-uploaded with Upload.
type StreamingTexture struct {
	*Texture
	pixels *image.RGBA
}

func NewStreamingTexture(width, height int) *StreamingTexture {
	pixels := image.NewRGBA(image.Rect(0, 0, width, height))
	return &StreamingTexture{
		Texture: NewTextureFromImage(pixels),
		pixels:  pixels,
	}
}

// Pixels returns the CPU-side buffer. Changes are visible after Upload.
func (s *StreamingTexture) Pixels() *image.RGBA { return s.pixels }

// Upload copies the CPU-side buffer into the texture.
func (s *StreamingTexture) Upload() {
	gl.BindTexture(gl.TEXTURE_2D, s.ID)
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, int32(s.Width), int32(s.Height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(s.pixels.Pix))
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

// Checkerboard returns a width x height image of cell-sized squares
// alternating between a and b, starting with a at the top-left.
func Checkerboard(width, height, cell int, a, b color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	if cell < 1 {
		cell = 1
	}
	for y := range height {
		for x := range width {
			c := a
			if (x/cell+y/cell)%2 == 1 {
				c = b
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}
