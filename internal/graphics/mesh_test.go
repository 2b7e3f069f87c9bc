package graphics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVertexLayout(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		sizes   []int32
		stride  int32
		count   int32
		wantErr bool
	}{
		{"pos+colour", 36 * 6, []int32{3, 3}, 6, 36, false},
		{"pos only", 6, []int32{2}, 2, 3, false},
		{"ragged", 7, []int32{3, 3}, 0, 0, true},
		{"empty data", 0, []int32{3}, 0, 0, true},
		{"no attributes", 6, nil, 0, 0, true},
		{"bad size", 10, []int32{5}, 0, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stride, count, err := vertexLayout(tt.n, tt.sizes)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrVertexLayout)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.stride, stride)
			assert.Equal(t, tt.count, count)
		})
	}
}

func TestCubeVertices(t *testing.T) {
	require.Len(t, CubeVertices, 36*6)
	for i := 0; i < len(CubeVertices); i += 6 {
		for j := 0; j < 3; j++ {
			v := CubeVertices[i+j]
			assert.True(t, v == 0.5 || v == -0.5, "vertex %d component %d = %v", i/6, j, v)
		}
	}
}

func TestCubeFacesWindOutward(t *testing.T) {
	for tri := 0; tri < 12; tri++ {
		var p [3][3]float32
		for k := 0; k < 3; k++ {
			base := (tri*3 + k) * 6
			p[k] = [3]float32{CubeVertices[base], CubeVertices[base+1], CubeVertices[base+2]}
		}
		e1 := [3]float32{p[1][0] - p[0][0], p[1][1] - p[0][1], p[1][2] - p[0][2]}
		e2 := [3]float32{p[2][0] - p[0][0], p[2][1] - p[0][1], p[2][2] - p[0][2]}
		n := [3]float32{
			e1[1]*e2[2] - e1[2]*e2[1],
			e1[2]*e2[0] - e1[0]*e2[2],
			e1[0]*e2[1] - e1[1]*e2[0],
		}
		var c [3]float32
		for k := 0; k < 3; k++ {
			c[0] += p[k][0] / 3
			c[1] += p[k][1] / 3
			c[2] += p[k][2] / 3
		}
		dot := n[0]*c[0] + n[1]*c[1] + n[2]*c[2]
		assert.Greater(t, dot, float32(0), "triangle %d faces inward", tri)
	}
}

func TestTriangleVertices(t *testing.T) {
	_, count, err := vertexLayout(len(TriangleVertices), []int32{3, 3})
	require.NoError(t, err)
	assert.Equal(t, int32(3), count)
}
