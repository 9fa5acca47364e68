package physics

import "github.com/go-gl/mathgl/mgl32"

// Box is anything with a local-space bounding box. The intersector places it
// in the world with a separate offset so shapes don't need to know where they are.
type Box interface {
	LocalMin() mgl32.Vec3
	LocalMax() mgl32.Vec3
}

type AABB struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// NewAABBFromCenter creates an AABB from a center point and full size dimensions.
func NewAABBFromCenter(center, size mgl32.Vec3) AABB {
	half := size.Mul(0.5)
	return AABB{
		Min: center.Sub(half),
		Max: center.Add(half),
	}
}

func (a AABB) LocalMin() mgl32.Vec3 { return a.Min }

func (a AABB) LocalMax() mgl32.Vec3 { return a.Max }

// Contains reports whether p lies inside the box, faces included.
func (a AABB) Contains(p mgl32.Vec3) bool {
	return p.X() >= a.Min.X() && p.X() <= a.Max.X() &&
		p.Y() >= a.Min.Y() && p.Y() <= a.Max.Y() &&
		p.Z() >= a.Min.Z() && p.Z() <= a.Max.Z()
}

// Translate returns the box moved by offset.
func (a AABB) Translate(offset mgl32.Vec3) AABB {
	return AABB{Min: a.Min.Add(offset), Max: a.Max.Add(offset)}
}
