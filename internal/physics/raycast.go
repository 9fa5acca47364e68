package physics

import "github.com/go-gl/mathgl/mgl32"

// RayHit is where a traced segment first enters a box.
type RayHit struct {
	// Fraction of the traced segment, in [0, 1].
	Fraction float32
	Point    mgl32.Vec3
}

// RayIntersect traces the segment origin -> origin+direction*maxLength against
// box placed at boxPos, using the slab method. The segment is clipped one axis
// at a time and the test stops at the first axis that empties the interval.
func RayIntersect(origin, direction mgl32.Vec3, maxLength float32, box Box, boxPos mgl32.Vec3) (RayHit, bool) {
	end := origin.Add(direction.Mul(maxLength))
	boxMin := box.LocalMin().Add(boxPos)
	boxMax := box.LocalMax().Add(boxPos)

	fLow := float32(0)
	fHigh := float32(1)

	for axis := 0; axis < 3; axis++ {
		var ok bool
		fLow, fHigh, ok = clipAxis(origin[axis], end[axis], boxMin[axis], boxMax[axis], fLow, fHigh)
		if !ok {
			return RayHit{}, false
		}
	}

	point := origin.Add(end.Sub(origin).Mul(fLow))
	return RayHit{Fraction: fLow, Point: point}, true
}

// clipAxis narrows [fLow, fHigh] to the part of the segment between the two
// planes lo and hi on one axis.
func clipAxis(start, stop, lo, hi, fLow, fHigh float32) (float32, float32, bool) {
	delta := stop - start

	// Segment parallel to the slab: either always inside it or never.
	if delta == 0 {
		if start < lo || start > hi {
			return fLow, fHigh, false
		}
		return fLow, fHigh, true
	}

	tEnter := (lo - start) / delta
	tExit := (hi - start) / delta
	if tEnter > tExit {
		tEnter, tExit = tExit, tEnter
	}

	if tEnter > fLow {
		fLow = tEnter
	}
	if tExit < fHigh {
		fHigh = tExit
	}

	if fLow > fHigh {
		return fLow, fHigh, false
	}
	return fLow, fHigh, true
}
