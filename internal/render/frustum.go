package render

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Frustum holds the six clip planes of a camera (left, right, bottom, top,
// near, far) for culling blocks when instancing is unavailable.
type Frustum struct {
	planes [6]plane
}

// plane is ax + by + cz + d = 0 with a unit normal.
type plane struct {
	normal   rl.Vector3
	distance float32
}

// ExtractFrustum derives the planes from the camera's view-projection matrix
// (Gribb/Hartmann).
func ExtractFrustum(camera rl.Camera3D, aspect float32) Frustum {
	view := rl.GetCameraMatrix(camera)
	proj := rl.MatrixPerspective(camera.Fovy*rl.Deg2rad, aspect, 0.01, 1000.0)
	vp := rl.MatrixMultiply(view, proj)

	// rows of the combined matrix
	r1 := [4]float32{vp.M0, vp.M4, vp.M8, vp.M12}
	r2 := [4]float32{vp.M1, vp.M5, vp.M9, vp.M13}
	r3 := [4]float32{vp.M2, vp.M6, vp.M10, vp.M14}
	r4 := [4]float32{vp.M3, vp.M7, vp.M11, vp.M15}

	var f Frustum
	for i, row := range [3][4]float32{r1, r2, r3} {
		f.planes[2*i] = planeFrom(r4, row, 1)
		f.planes[2*i+1] = planeFrom(r4, row, -1)
	}
	return f
}

func planeFrom(r4, row [4]float32, sign float32) plane {
	p := plane{
		normal: rl.Vector3{
			X: r4[0] + sign*row[0],
			Y: r4[1] + sign*row[1],
			Z: r4[2] + sign*row[2],
		},
		distance: r4[3] + sign*row[3],
	}
	length := rl.Vector3Length(p.normal)
	if length == 0 {
		return p
	}
	p.normal = rl.Vector3Scale(p.normal, 1/length)
	p.distance /= length
	return p
}

// ContainsSphere reports whether the sphere is at least partly inside.
func (f *Frustum) ContainsSphere(center rl.Vector3, radius float32) bool {
	for _, p := range f.planes {
		if rl.Vector3DotProduct(p.normal, center)+p.distance < -radius {
			return false
		}
	}
	return true
}
