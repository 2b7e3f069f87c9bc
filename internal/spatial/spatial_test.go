package spatial

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoxAround(t *testing.T) {
	b := BoxAround(mgl32.Vec3{2, 0, -6}, 1, 3, 1)
	assert.Equal(t, mgl32.Vec3{1.5, 0, -6.5}, b.Min)
	assert.Equal(t, mgl32.Vec3{2.5, 3, -5.5}, b.Max)

	assert.True(t, b.Contains(mgl32.Vec3{2, 1, -6}))
	assert.True(t, b.Contains(b.Min), "min is inclusive")
	assert.False(t, b.Contains(b.Max), "max is exclusive")

	big := b.Inflate(1)
	assert.Equal(t, mgl32.Vec3{0.5, -1, -7.5}, big.Min)
	assert.Equal(t, mgl32.Vec3{3.5, 4, -4.5}, big.Max)
}

func TestRaycast(t *testing.T) {
	boxes := []AABB{
		{Min: mgl32.Vec3{5, -1, -1}, Max: mgl32.Vec3{6, 1, 1}},
		{Min: mgl32.Vec3{-1, 5, -1}, Max: mgl32.Vec3{1, 6, 1}},
	}
	start := mgl32.Vec3{0, 0, 0}

	res := Raycast(start, mgl32.Vec3{1, 0, 0}, MinReachDistance, 10, boxes)
	require.True(t, res.Hit)
	assert.Equal(t, 0, res.Index)
	assert.InDelta(t, 5, res.Distance, 0.021)
	assert.InDelta(t, 5, res.Point.X(), 0.021)

	res = Raycast(start, mgl32.Vec3{0, 2, 0}, MinReachDistance, 10, boxes)
	require.True(t, res.Hit, "direction is normalized")
	assert.Equal(t, 1, res.Index)
	assert.InDelta(t, 5, res.Distance, 0.021)

	res = Raycast(start, mgl32.Vec3{1, 0, 0}, MinReachDistance, 4, boxes)
	assert.False(t, res.Hit, "out of reach")
	assert.Equal(t, -1, res.Index)

	res = Raycast(start, mgl32.Vec3{0, 0, 1}, MinReachDistance, 10, boxes)
	assert.False(t, res.Hit)

	res = Raycast(start, mgl32.Vec3{}, MinReachDistance, 10, boxes)
	assert.False(t, res.Hit, "zero direction")
}

func TestRaycastSkipsMinDistance(t *testing.T) {
	boxes := []AABB{{Min: mgl32.Vec3{-1, -1, -1}, Max: mgl32.Vec3{1, 1, 1}}}
	res := Raycast(mgl32.Vec3{}, mgl32.Vec3{1, 0, 0}, 0.5, 10, boxes)
	require.True(t, res.Hit)
	assert.GreaterOrEqual(t, res.Distance, float32(0.5))

	res = Raycast(mgl32.Vec3{}, mgl32.Vec3{1, 0, 0}, 2, 10, boxes)
	assert.False(t, res.Hit, "the box ends before minDist")
}

func TestRaycastPrefersLowerIndexOnOverlap(t *testing.T) {
	b := AABB{Min: mgl32.Vec3{2, -1, -1}, Max: mgl32.Vec3{3, 1, 1}}
	res := Raycast(mgl32.Vec3{}, mgl32.Vec3{1, 0, 0}, 0, 10, []AABB{b, b})
	require.True(t, res.Hit)
	assert.Equal(t, 0, res.Index)
}

func TestFrustum(t *testing.T) {
	proj := mgl32.Perspective(mgl32.DegToRad(60), 1, 0.1, 100)
	view := mgl32.LookAtV(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 1, 0})
	f := NewFrustum(proj.Mul4(view))

	unit := func(x, y, z float32) AABB {
		return AABB{Min: mgl32.Vec3{x - 0.5, y - 0.5, z - 0.5}, Max: mgl32.Vec3{x + 0.5, y + 0.5, z + 0.5}}
	}

	tests := []struct {
		name string
		box  AABB
		want bool
	}{
		{"ahead", unit(0, 0, -10), true},
		{"behind", unit(0, 0, 10), false},
		{"far left", unit(-50, 0, -10), false},
		{"far right", unit(50, 0, -10), false},
		{"above", unit(0, 50, -10), false},
		{"below", unit(0, -50, -10), false},
		{"beyond far plane", unit(0, 0, -200), false},
		{"straddles near plane", unit(0, 0, 0), true},
		{"large box around viewer", AABB{Min: mgl32.Vec3{-100, -100, -100}, Max: mgl32.Vec3{100, 100, 100}}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, f.Intersects(tc.box))
		})
	}
}

func BenchmarkRaycast(b *testing.B) {
	var boxes []AABB
	for i := range 81 {
		base := mgl32.Vec3{float32(i%9)*4 - 16, 0, float32(i/9)*4 - 16}
		boxes = append(boxes, BoxAround(base, 1, 2, 1))
	}
	start := mgl32.Vec3{0, 1, 20}
	dir := mgl32.Vec3{0, 0, -1}
	b.ResetTimer()
	for b.Loop() {
		_ = Raycast(start, dir, MinReachDistance, MaxReachDistance, boxes)
	}
}
