package world

import (
	"fmt"

	"blockcraft/internal/config"
	"blockcraft/internal/engine"
	"blockcraft/internal/voxel"

	"github.com/go-gl/mathgl/mgl32"
)

// Action is what a player interaction does to the targeted block.
type Action int

const (
	// ActionBreak removes the targeted block (primary interact).
	ActionBreak Action = iota
	// ActionPlace puts a block against the targeted face (secondary interact).
	ActionPlace
)

func (a Action) String() string {
	switch a {
	case ActionBreak:
		return "break"
	case ActionPlace:
		return "place"
	default:
		return fmt.Sprintf("Action(%d)", int(a))
	}
}

// World owns the block grid and keeps the instance mirror in step with it.
// Every mutation goes through AddBlock or RemoveBlock so observers see it.
type World struct {
	grid     *voxel.Grid
	mirror   *Mirror
	targeter *Targeter

	placeID uint32

	BlockAdded   engine.EventWithArg[voxel.Coord]
	BlockRemoved engine.EventWithArg[voxel.Coord]
}

// New builds a world from cfg. buffer receives instance uploads and may be
// nil when nothing is rendered.
func New(cfg config.WorldConfig, buffer InstanceBuffer) *World {
	tolerance := cfg.FaceTolerance
	if tolerance <= 0 {
		tolerance = DefaultFaceTolerance
	}

	grid := voxel.NewGrid(cfg.Capacity)
	w := &World{
		grid:   grid,
		mirror: NewMirror(buffer),
		targeter: &Targeter{
			Grid:      grid,
			Reach:     cfg.ReachDistance,
			Tolerance: tolerance,
		},
		placeID: cfg.PlaceBlockID,
	}

	w.BlockAdded.AddListener(w.mirror.OnBlockAdded)
	w.BlockRemoved.AddListener(w.mirror.OnBlockRemoved)
	return w
}

func (w *World) Capacity() int {
	return w.grid.Capacity()
}

// Block returns the block at c for read-only inspection.
func (w *World) Block(c voxel.Coord) (voxel.Block, error) {
	return w.grid.Block(c)
}

// Neighborhood exposes the grid's cube query.
func (w *World) Neighborhood(center voxel.Coord, radius int) []voxel.Cell {
	return w.grid.Neighborhood(center, radius)
}

// AddBlock writes b at c. Writes outside the grid are dropped silently; the
// result reports whether the grid changed.
func (w *World) AddBlock(b voxel.Block, c voxel.Coord) bool {
	if !w.grid.AddBlock(b, c) {
		return false
	}
	if b.IsSolid() {
		w.BlockAdded.Invoke(c)
	} else {
		w.BlockRemoved.Invoke(c)
	}
	return true
}

// RemoveBlock clears c. Coordinates outside the grid are ignored.
func (w *World) RemoveBlock(c voxel.Coord) bool {
	if !w.grid.RemoveBlock(c) {
		return false
	}
	w.BlockRemoved.Invoke(c)
	return true
}

// FindTargetedBlock returns the closest block within reach along the ray.
func (w *World) FindTargetedBlock(origin, direction mgl32.Vec3) (Hit, bool, error) {
	return w.targeter.FindTargetedBlock(origin, direction)
}

// Target resolves the cell an action would affect without changing anything.
func (w *World) Target(action Action, origin, direction mgl32.Vec3) (voxel.Coord, bool, error) {
	hit, ok, err := w.FindTargetedBlock(origin, direction)
	if err != nil || !ok {
		return voxel.Coord{}, false, err
	}

	switch action {
	case ActionBreak:
		return RemovalCoord(hit), true, nil
	case ActionPlace:
		c, ok := PlacementCoord(hit, w.targeter.Tolerance)
		return c, ok, nil
	default:
		return voxel.Coord{}, false, fmt.Errorf("world: unknown action %v", action)
	}
}

// Interact targets along the ray and applies action. It returns the affected
// cell and whether the grid changed.
func (w *World) Interact(action Action, origin, direction mgl32.Vec3) (voxel.Coord, bool, error) {
	c, ok, err := w.Target(action, origin, direction)
	if err != nil || !ok {
		return voxel.Coord{}, false, err
	}

	var changed bool
	if action == ActionPlace {
		changed = w.AddBlock(voxel.NewSolid(w.placeID), c)
	} else {
		changed = w.RemoveBlock(c)
	}
	return c, changed, nil
}

// Translations returns the mirrored block translations, syncing the instance
// buffer first if needed.
func (w *World) Translations() []mgl32.Vec3 {
	return w.mirror.Snapshot()
}

func (w *World) Mirror() *Mirror {
	return w.mirror
}

func (w *World) SolidCount() int {
	return w.mirror.Len()
}

func (w *World) Reach() int {
	return w.targeter.Reach
}

func (w *World) FaceTolerance() float32 {
	return w.targeter.Tolerance
}
