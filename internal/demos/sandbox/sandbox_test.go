package sandbox

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestModelMatrixStartsAtIdentity(t *testing.T) {
	assert.True(t, ModelMatrix(0).ApproxEqual(mgl32.Ident4()))
}

func TestModelMatrixSpinsAboutAxis(t *testing.T) {
	m := ModelMatrix(1.7)
	// points on the axis do not move
	p := m.Mul4x1(spinAxis.Vec4(1)).Vec3()
	assert.True(t, p.ApproxEqualThreshold(spinAxis, 1e-5), "axis moved to %v", p)

	// a full turn takes 360/spinRate seconds
	full := ModelMatrix(360 / spinRate)
	assert.True(t, full.ApproxEqualThreshold(mgl32.Ident4(), 1e-4))
}
