package lines

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStar(t *testing.T) {
	segs := Star(100, 50, 10, 4, 0)
	require.Len(t, segs, 8)

	for i := 0; i < len(segs); i += 2 {
		assert.Equal(t, float32(100), segs[i][0])
		assert.Equal(t, float32(50), segs[i][1])
		assert.InDelta(t, 10, segs[i+1].Sub(segs[i]).Len(), 1e-4)
	}
	// first spoke points along +x, second along +y (downwards on screen)
	assert.InDelta(t, 110, segs[1][0], 1e-4)
	assert.InDelta(t, 60, segs[3][1], 1e-4)
}

func TestStarRotates(t *testing.T) {
	a := Star(0, 0, 1, 3, 0)
	b := Star(0, 0, 1, 3, 0.5)
	assert.NotEqual(t, a[1], b[1])
	assert.Empty(t, Star(0, 0, 1, 0, 0))
}

func TestSpokeColor(t *testing.T) {
	assert.Equal(t, color.RGBA{255, 64, 0, 255}, SpokeColor(0, 5))
	assert.Equal(t, color.RGBA{0, 64, 255, 255}, SpokeColor(4, 5))
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, SpokeColor(0, 1))
}
