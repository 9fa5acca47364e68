package world

import (
	"errors"
	"math"

	"blockcraft/internal/physics"
	"blockcraft/internal/voxel"

	"github.com/go-gl/mathgl/mgl32"
)

var ErrInvalidRay = errors.New("world: ray origin and direction must be finite and direction non-zero")

// DefaultFaceTolerance is how close to the face plane a hit must land, as a
// fraction of half a block, to count as touching that face.
const DefaultFaceTolerance float32 = 0.99

// Hit is the block a ray landed on. It is a copy taken at query time.
type Hit struct {
	Block    voxel.Block
	Pos      voxel.Coord
	Point    mgl32.Vec3
	Fraction float32
}

// Targeter finds the block a view ray points at within reach.
type Targeter struct {
	Grid *voxel.Grid
	// Reach is the neighborhood radius, in cells.
	Reach int
	// Tolerance is the face tolerance used by Face and PlacementCoord.
	Tolerance float32

	candidates []voxel.Cell
}

// ValidateRay rejects non-finite input and zero-length directions.
func ValidateRay(origin, direction mgl32.Vec3) error {
	for i := 0; i < 3; i++ {
		if !finite(origin[i]) || !finite(direction[i]) {
			return ErrInvalidRay
		}
	}
	if direction.X() == 0 && direction.Y() == 0 && direction.Z() == 0 {
		return ErrInvalidRay
	}
	return nil
}

func finite(v float32) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// RayLength is how far, in world units, a targeting ray is traced. One cell
// of slack covers blocks the cube query returns near its edge.
func (t *Targeter) RayLength() float32 {
	return float32(t.Reach+1) * voxel.DIM
}

// FindTargetedBlock returns the closest solid block hit by the ray. Ties on
// fraction keep the first candidate in neighborhood order, which is
// ascending (x, y, z).
func (t *Targeter) FindTargetedBlock(origin, direction mgl32.Vec3) (Hit, bool, error) {
	if err := ValidateRay(origin, direction); err != nil {
		return Hit{}, false, err
	}

	center := voxel.CoordFromWorld(origin)
	t.candidates = t.Grid.AppendNeighborhood(t.candidates[:0], center, t.Reach)
	rayLen := t.RayLength()

	var closest Hit
	found := false
	for _, cell := range t.candidates {
		rh, ok := physics.RayIntersect(origin, direction, rayLen, cell.Block, cell.Pos.WorldPos())
		if !ok {
			continue
		}
		if !found || rh.Fraction < closest.Fraction {
			closest = Hit{Block: cell.Block, Pos: cell.Pos, Point: rh.Point, Fraction: rh.Fraction}
			found = true
		}
	}
	return closest, found, nil
}

// Face returns which face of the hit block the hit point lies on: the first
// axis, in x, y, z order, whose normalized local component reaches tolerance,
// and the sign of that component. ok is false for hits not on any face.
func Face(h Hit, tolerance float32) (axis int, sign int, ok bool) {
	local := h.Point.Sub(h.Pos.WorldPos()).Mul(2 / voxel.DIM)
	for i := 0; i < 3; i++ {
		v := local[i]
		if float32(math.Abs(float64(v))) < tolerance {
			continue
		}
		if v < 0 {
			return i, -1, true
		}
		return i, 1, true
	}
	return 0, 0, false
}

// PlacementCoord returns the cell next to the hit face. Stepping below zero
// is refused here; stepping past the upper bound is left to the grid, which
// ignores out-of-range writes.
func PlacementCoord(h Hit, tolerance float32) (voxel.Coord, bool) {
	axis, sign, ok := Face(h, tolerance)
	if !ok {
		return voxel.Coord{}, false
	}
	cur := h.Pos.Axis(axis)
	if sign < 0 {
		if cur <= 0 {
			return voxel.Coord{}, false
		}
		return h.Pos.WithAxis(axis, cur-1), true
	}
	return h.Pos.WithAxis(axis, cur+1), true
}

// RemovalCoord is the cell a break action clears: the hit block itself.
func RemovalCoord(h Hit) voxel.Coord {
	return h.Pos
}
