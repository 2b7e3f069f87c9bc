package firstwindow

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
)

func TestClearColorRange(t *testing.T) {
	for step := range 200 {
		r, g, b := ClearColor(float32(step) * 0.1)
		for _, c := range []float32{r, g, b} {
			assert.GreaterOrEqual(t, c, float32(0))
			assert.LessOrEqual(t, c, float32(1))
		}
	}
}

func TestClearColorPhases(t *testing.T) {
	r, g, b := ClearColor(0)
	assert.InDelta(t, 0.5, r, 1e-6)
	assert.InDelta(t, 0.5+0.5*math32.Sin(2*math32.Pi/3), g, 1e-6)
	assert.InDelta(t, 0.5+0.5*math32.Sin(4*math32.Pi/3), b, 1e-6)

	// the channels rotate: green at t is red a third of a period later
	r2, _, _ := ClearColor(2 * math32.Pi / 3)
	assert.InDelta(t, g, r2, 1e-5)
}
