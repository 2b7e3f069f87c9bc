package demokit

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hello-gfx/internal/camera"
)

func TestFPSCounter(t *testing.T) {
	var c FPSCounter
	assert.Zero(t, c.FPS())

	for range 31 {
		c.Tick(1.0 / 60)
	}
	assert.InDelta(t, 60, c.FPS(), 0.5)

	for range 10 {
		c.Tick(0.1)
	}
	assert.InDelta(t, 10, c.FPS(), 0.5)
}

func TestHUDLines(t *testing.T) {
	cam := camera.New(mgl32.Vec3{1, 2.5, -3})
	lines := HUDLines(cam, 59.7, true)
	require.Len(t, lines, 4)
	assert.Equal(t, "fps 60", lines[0])
	assert.Equal(t, "pos 1.00 2.50 -3.00", lines[1])
	assert.Equal(t, "yaw -90.0  pitch 0.0  fov 45.0", lines[2])
	assert.Contains(t, lines[3], "captured")

	assert.Contains(t, HUDLines(cam, 0, false)[3], "free")
}

func TestCrosshairLines(t *testing.T) {
	lines := CrosshairLines(800, 600, 8)
	assert.Equal(t, [4]float32{392, 300, 408, 300}, lines[0])
	assert.Equal(t, [4]float32{400, 292, 400, 308}, lines[1])
}
