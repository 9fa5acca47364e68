package terrain

import (
	"math"

	"blockcraft/internal/config"
	"blockcraft/internal/voxel"

	"github.com/aquilax/go-perlin"
)

// Block ids written by Generate.
const (
	FillID    uint32 = 1
	SurfaceID uint32 = 2
)

// Placer is the part of the world Generate writes through.
type Placer interface {
	AddBlock(b voxel.Block, c voxel.Coord) bool
}

// Heightmap samples column heights from Perlin noise.
type Heightmap struct {
	noise     *perlin.Perlin
	base      int
	amplitude float64
	scale     float64
}

func NewHeightmap(cfg config.TerrainConfig) *Heightmap {
	return &Heightmap{
		noise:     perlin.NewPerlin(cfg.Alpha, cfg.Beta, cfg.Octaves, cfg.Seed),
		base:      cfg.BaseHeight,
		amplitude: cfg.Amplitude,
		scale:     cfg.Scale,
	}
}

// Height returns the column height at (x, z), clamped to [1, limit].
func (h *Heightmap) Height(x, z, limit int) int {
	// Noise2D is roughly in [-1, 1]; shift it to [0, 1].
	n := (h.noise.Noise2D(float64(x)*h.scale, float64(z)*h.scale) + 1) / 2
	height := h.base + int(math.Round(n*h.amplitude))
	return max(1, min(height, limit))
}

// Generate fills a capacity-sized square of columns from the heightmap and
// returns how many blocks were written. The top block of each column gets
// SurfaceID, everything below it FillID.
func Generate(p Placer, capacity int, cfg config.TerrainConfig) int {
	if capacity <= 0 {
		return 0
	}
	hm := NewHeightmap(cfg)

	placed := 0
	for x := 0; x < capacity; x++ {
		for z := 0; z < capacity; z++ {
			height := hm.Height(x, z, capacity)
			for y := 0; y < height; y++ {
				id := FillID
				if y == height-1 {
					id = SurfaceID
				}
				if p.AddBlock(voxel.NewSolid(id), voxel.Coord{X: x, Y: y, Z: z}) {
					placed++
				}
			}
		}
	}
	return placed
}
