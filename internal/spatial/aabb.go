// Package spatial has the box, ray and view-volume tests the 3D demos use
// for picking and culling.
package spatial

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// AABB is an axis-aligned box. Min is inclusive and Max exclusive.
type AABB struct {
	Min, Max mgl32.Vec3
}

// BoxAround returns the box of the given size with its bottom face centred
// on base.
func BoxAround(base mgl32.Vec3, width, height, depth float32) AABB {
	return AABB{
		Min: mgl32.Vec3{base.X() - width/2, base.Y(), base.Z() - depth/2},
		Max: mgl32.Vec3{base.X() + width/2, base.Y() + height, base.Z() + depth/2},
	}
}

func (b AABB) Contains(p mgl32.Vec3) bool {
	return p.X() >= b.Min.X() && p.X() < b.Max.X() &&
		p.Y() >= b.Min.Y() && p.Y() < b.Max.Y() &&
		p.Z() >= b.Min.Z() && p.Z() < b.Max.Z()
}

// Inflate grows the box by margin on every side.
func (b AABB) Inflate(margin float32) AABB {
	m := mgl32.Vec3{margin, margin, margin}
	return AABB{Min: b.Min.Sub(m), Max: b.Max.Add(m)}
}

type plane struct {
	a, b, c, d float32
}

func (p plane) normalize() plane {
	l := math32.Sqrt(p.a*p.a + p.b*p.b + p.c*p.c)
	if l == 0 {
		return p
	}
	return plane{p.a / l, p.b / l, p.c / l, p.d / l}
}

// Frustum is the view volume of a projection*view matrix.
type Frustum struct {
	planes [6]plane
}

// NewFrustum extracts the six clip planes (left, right, bottom, top, near,
// far) from clip.
func NewFrustum(clip mgl32.Mat4) Frustum {
	// mgl32 matrices are column-major
	r0 := [4]float32{clip[0], clip[4], clip[8], clip[12]}
	r1 := [4]float32{clip[1], clip[5], clip[9], clip[13]}
	r2 := [4]float32{clip[2], clip[6], clip[10], clip[14]}
	r3 := [4]float32{clip[3], clip[7], clip[11], clip[15]}

	combine := func(row [4]float32, sign float32) plane {
		return plane{
			r3[0] + sign*row[0],
			r3[1] + sign*row[1],
			r3[2] + sign*row[2],
			r3[3] + sign*row[3],
		}.normalize()
	}

	return Frustum{planes: [6]plane{
		combine(r0, 1), combine(r0, -1),
		combine(r1, 1), combine(r1, -1),
		combine(r2, 1), combine(r2, -1),
	}}
}

// Intersects reports whether any part of b may be inside the frustum. It is
// conservative: boxes near a corner can pass without being visible.
func (f Frustum) Intersects(b AABB) bool {
	for _, p := range f.planes {
		// Positive vertex: the corner furthest along the plane normal
		px := b.Max.X()
		if p.a < 0 {
			px = b.Min.X()
		}
		py := b.Max.Y()
		if p.b < 0 {
			py = b.Min.Y()
		}
		pz := b.Max.Z()
		if p.c < 0 {
			pz = b.Min.Z()
		}
		if p.a*px+p.b*py+p.c*pz+p.d < 0 {
			return false
		}
	}
	return true
}
