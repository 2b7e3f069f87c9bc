package spatial

import (
	"github.com/go-gl/mathgl/mgl32"
)

const (
	MinReachDistance = 0.1
	MaxReachDistance = 40.0

	rayStep = 0.02
)

// RaycastResult is the first box a ray entered.
type RaycastResult struct {
	Index    int
	Point    mgl32.Vec3
	Distance float32
	Hit      bool
}

// Raycast marches from start along direction in fixed steps between minDist
// and maxDist and reports the first box containing a sample point. When
// boxes overlap the lowest index wins. direction need not be normalized.
func Raycast(start, direction mgl32.Vec3, minDist, maxDist float32, boxes []AABB) RaycastResult {
	if direction.Len() == 0 || len(boxes) == 0 {
		return RaycastResult{Index: -1}
	}
	dir := direction.Normalize()
	steps := int(maxDist / rayStep)

	for i := 0; i <= steps; i++ {
		dist := float32(i) * rayStep
		if dist < minDist {
			continue
		}
		pos := start.Add(dir.Mul(dist))
		for idx, b := range boxes {
			if b.Contains(pos) {
				return RaycastResult{Index: idx, Point: pos, Distance: dist, Hit: true}
			}
		}
	}
	return RaycastResult{Index: -1}
}
