package world

import (
	"cmp"
	"slices"

	"blockcraft/internal/voxel"

	"github.com/go-gl/mathgl/mgl32"
)

// InstanceBuffer receives the full list of block translations whenever the
// mirror syncs. The renderer implements it on top of its GPU transform array.
type InstanceBuffer interface {
	Write(translations []mgl32.Vec3)
}

// Mirror keeps a sorted list of world-space translations, one per solid
// block, and pushes it to an InstanceBuffer lazily.
type Mirror struct {
	translations []mgl32.Vec3
	buffer       InstanceBuffer
	dirty        bool
	uploads      int
}

// NewMirror creates an empty mirror. buffer may be nil for headless use.
func NewMirror(buffer InstanceBuffer) *Mirror {
	return &Mirror{buffer: buffer, dirty: true}
}

// Translation is the world-space offset of the block at c.
func Translation(c voxel.Coord) mgl32.Vec3 {
	return c.WorldPos()
}

func compareTranslation(a, b mgl32.Vec3) int {
	if c := cmp.Compare(a.X(), b.X()); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Y(), b.Y()); c != 0 {
		return c
	}
	return cmp.Compare(a.Z(), b.Z())
}

// OnBlockAdded inserts the translation for c, or overwrites it in place if
// it is already present.
func (m *Mirror) OnBlockAdded(c voxel.Coord) {
	t := Translation(c)
	i, found := slices.BinarySearchFunc(m.translations, t, compareTranslation)
	if found {
		m.translations[i] = t
	} else {
		m.translations = slices.Insert(m.translations, i, t)
	}
	m.dirty = true
}

// OnBlockRemoved drops the translation for c. Unknown coordinates are ignored.
func (m *Mirror) OnBlockRemoved(c voxel.Coord) {
	t := Translation(c)
	i, found := slices.BinarySearchFunc(m.translations, t, compareTranslation)
	if !found {
		return
	}
	m.translations = slices.Delete(m.translations, i, i+1)
	m.dirty = true
}

// Snapshot syncs the instance buffer if anything changed since the last
// sync and returns the current translations. Callers must not modify the
// returned slice.
func (m *Mirror) Snapshot() []mgl32.Vec3 {
	if m.dirty && len(m.translations) > 0 {
		if m.buffer != nil {
			m.buffer.Write(m.translations)
		}
		m.uploads++
		m.dirty = false
	}
	return m.translations
}

// Contains reports whether the translation for c is mirrored.
func (m *Mirror) Contains(c voxel.Coord) bool {
	_, found := slices.BinarySearchFunc(m.translations, Translation(c), compareTranslation)
	return found
}

func (m *Mirror) Len() int {
	return len(m.translations)
}

func (m *Mirror) Dirty() bool {
	return m.dirty
}

// Uploads counts the syncs performed so far.
func (m *Mirror) Uploads() int {
	return m.uploads
}
