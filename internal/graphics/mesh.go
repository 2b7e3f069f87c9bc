package graphics

import (
	"errors"
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// ErrVertexLayout is returned when vertex data does not fit the attribute sizes.
var ErrVertexLayout = errors.New("vertex data does not match attribute layout")

// Mesh is a VAO/VBO pair holding interleaved float32 vertex data.
type Mesh struct {
	vao   uint32
	vbo   uint32
	count int32

	// Mode is the primitive type passed to glDrawArrays.
	Mode uint32
}

// NewMesh uploads vertices and enables one attribute per entry in sizes,
// at locations 0, 1, ... in order. Each size is a float count per vertex.
func NewMesh(vertices []float32, sizes ...int32) (*Mesh, error) {
	stride, count, err := vertexLayout(len(vertices), sizes)
	if err != nil {
		return nil, err
	}

	m := &Mesh{count: count, Mode: gl.TRIANGLES}
	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	var offset uintptr
	for i, size := range sizes {
		gl.EnableVertexAttribArray(uint32(i))
		gl.VertexAttribPointerWithOffset(uint32(i), size, gl.FLOAT, false, stride*4, offset)
		offset += uintptr(size) * 4
	}

	// unbind to reduce accidental state changes
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	return m, nil
}

// vertexLayout returns the stride in floats and the vertex count.
func vertexLayout(n int, sizes []int32) (stride, count int32, err error) {
	if len(sizes) == 0 {
		return 0, 0, fmt.Errorf("%w: no attributes", ErrVertexLayout)
	}
	for _, s := range sizes {
		if s < 1 || s > 4 {
			return 0, 0, fmt.Errorf("%w: attribute size %d", ErrVertexLayout, s)
		}
		stride += s
	}
	if n == 0 || n%int(stride) != 0 {
		return 0, 0, fmt.Errorf("%w: %d floats with stride %d", ErrVertexLayout, n, stride)
	}
	return stride, int32(n / int(stride)), nil
}

// Count is the number of vertices.
func (m *Mesh) Count() int32 { return m.count }

func (m *Mesh) Draw() {
	gl.BindVertexArray(m.vao)
	gl.DrawArrays(m.Mode, 0, m.count)
	gl.BindVertexArray(0)
}

// Delete cleans up OpenGL resources
func (m *Mesh) Delete() {
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
		m.vao = 0
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
		m.vbo = 0
	}
}

// TriangleVertices is a single triangle in NDC with a colour per corner
// (position xyz, colour rgb).
var TriangleVertices = []float32{
	-0.5, -0.5, 0.0, 1.0, 0.0, 0.0,
	0.5, -0.5, 0.0, 0.0, 1.0, 0.0,
	0.0, 0.5, 0.0, 0.0, 0.0, 1.0,
}

// CubeVertices is a unit cube centred on the origin, 36 vertices with
// position xyz and colour rgb. Faces wind counter-clockwise seen from
// outside and each face has one colour.
var CubeVertices = []float32{
	// back
	-0.5, -0.5, -0.5, 1.0, 0.3, 0.3,
	-0.5, 0.5, -0.5, 1.0, 0.3, 0.3,
	0.5, 0.5, -0.5, 1.0, 0.3, 0.3,
	-0.5, -0.5, -0.5, 1.0, 0.3, 0.3,
	0.5, 0.5, -0.5, 1.0, 0.3, 0.3,
	0.5, -0.5, -0.5, 1.0, 0.3, 0.3,
	// front
	-0.5, -0.5, 0.5, 0.3, 1.0, 0.3,
	0.5, -0.5, 0.5, 0.3, 1.0, 0.3,
	0.5, 0.5, 0.5, 0.3, 1.0, 0.3,
	-0.5, -0.5, 0.5, 0.3, 1.0, 0.3,
	0.5, 0.5, 0.5, 0.3, 1.0, 0.3,
	-0.5, 0.5, 0.5, 0.3, 1.0, 0.3,
	// left
	-0.5, -0.5, -0.5, 0.3, 0.3, 1.0,
	-0.5, -0.5, 0.5, 0.3, 0.3, 1.0,
	-0.5, 0.5, 0.5, 0.3, 0.3, 1.0,
	-0.5, -0.5, -0.5, 0.3, 0.3, 1.0,
	-0.5, 0.5, 0.5, 0.3, 0.3, 1.0,
	-0.5, 0.5, -0.5, 0.3, 0.3, 1.0,
	// right
	0.5, -0.5, -0.5, 1.0, 1.0, 0.3,
	0.5, 0.5, -0.5, 1.0, 1.0, 0.3,
	0.5, 0.5, 0.5, 1.0, 1.0, 0.3,
	0.5, -0.5, -0.5, 1.0, 1.0, 0.3,
	0.5, 0.5, 0.5, 1.0, 1.0, 0.3,
	0.5, -0.5, 0.5, 1.0, 1.0, 0.3,
	// bottom
	-0.5, -0.5, -0.5, 1.0, 0.3, 1.0,
	0.5, -0.5, -0.5, 1.0, 0.3, 1.0,
	0.5, -0.5, 0.5, 1.0, 0.3, 1.0,
	-0.5, -0.5, -0.5, 1.0, 0.3, 1.0,
	0.5, -0.5, 0.5, 1.0, 0.3, 1.0,
	-0.5, -0.5, 0.5, 1.0, 0.3, 1.0,
	// top
	-0.5, 0.5, -0.5, 0.3, 1.0, 1.0,
	-0.5, 0.5, 0.5, 0.3, 1.0, 1.0,
	0.5, 0.5, 0.5, 0.3, 1.0, 1.0,
	-0.5, 0.5, -0.5, 0.3, 1.0, 1.0,
	0.5, 0.5, 0.5, 0.3, 1.0, 1.0,
	0.5, 0.5, -0.5, 0.3, 1.0, 1.0,
}
