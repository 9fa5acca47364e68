// Headless benchmark for block targeting and instance mirror churn
package main

import (
	"flag"
	"fmt"
	"math"
	"math/rand"
	"time"

	"blockcraft/internal/config"
	"blockcraft/internal/voxel"
	"blockcraft/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

// countingBuffer stands in for the GPU instance buffer.
type countingBuffer struct {
	writes    int
	instances int
}

func (b *countingBuffer) Write(translations []mgl32.Vec3) {
	b.writes++
	b.instances += len(translations)
}

func main() {
	capacity := flag.Int("capacity", 32, "grid side length in cells")
	fill := flag.Float64("fill", 0.3, "fraction of cells initially solid")
	queries := flag.Int("queries", 100000, "targeting queries and churn operations")
	seed := flag.Int64("seed", 42, "random seed")
	reach := flag.Int("reach", 4, "reach distance in cells")
	flag.Parse()

	cfg := config.Default()
	cfg.World.Capacity = *capacity
	cfg.World.ReachDistance = *reach
	if err := cfg.Validate(); err != nil {
		fmt.Printf("invalid flags: %v\n", err)
		return
	}

	rng := rand.New(rand.NewSource(*seed))
	buf := &countingBuffer{}
	w := world.New(cfg.World, buf)

	filled := fillWorld(w, rng, *fill)
	fmt.Printf("grid %d^3, %d solid (%.0f%%), reach %d\n\n", *capacity, filled, *fill*100, *reach)

	benchTargeting(w, rng, *queries)
	benchChurn(w, rng, buf, *queries)
}

func fillWorld(w *world.World, rng *rand.Rand, ratio float64) int {
	n := w.Capacity()
	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			for z := 0; z < n; z++ {
				if rng.Float64() < ratio {
					w.AddBlock(voxel.NewSolid(uint32(rng.Intn(4))), voxel.Coord{X: x, Y: y, Z: z})
				}
			}
		}
	}
	w.Translations()
	return w.SolidCount()
}

func randomRay(rng *rand.Rand, capacity int) (mgl32.Vec3, mgl32.Vec3) {
	extent := float32(capacity) * voxel.DIM
	origin := mgl32.Vec3{rng.Float32() * extent, rng.Float32() * extent, rng.Float32() * extent}

	theta := rng.Float64() * 2 * math.Pi
	phi := math.Acos(2*rng.Float64() - 1)
	dir := mgl32.Vec3{
		float32(math.Sin(phi) * math.Cos(theta)),
		float32(math.Cos(phi)),
		float32(math.Sin(phi) * math.Sin(theta)),
	}
	return origin, dir
}

func benchTargeting(w *world.World, rng *rand.Rand, queries int) {
	if queries <= 0 {
		return
	}
	type ray struct{ origin, dir mgl32.Vec3 }
	rays := make([]ray, queries)
	for i := range rays {
		rays[i].origin, rays[i].dir = randomRay(rng, w.Capacity())
	}

	// Warm up
	for _, r := range rays[:min(len(rays), 1000)] {
		w.FindTargetedBlock(r.origin, r.dir)
	}

	start := time.Now()
	hits := 0
	for _, r := range rays {
		if _, ok, _ := w.FindTargetedBlock(r.origin, r.dir); ok {
			hits++
		}
	}
	elapsed := time.Since(start)

	fmt.Printf("targeting: %d queries in %v | %v/query | %.1f%% hit\n",
		queries, elapsed.Round(time.Microsecond), (elapsed / time.Duration(queries)).Round(time.Nanosecond),
		100*float64(hits)/float64(queries))
}

func benchChurn(w *world.World, rng *rand.Rand, buf *countingBuffer, ops int) {
	if ops <= 0 {
		return
	}
	const batch = 64
	n := w.Capacity()
	writesBefore := buf.writes

	start := time.Now()
	for i := 0; i < ops; i++ {
		c := voxel.Coord{X: rng.Intn(n), Y: rng.Intn(n), Z: rng.Intn(n)}
		if rng.Intn(2) == 0 {
			w.AddBlock(voxel.NewSolid(0), c)
		} else {
			w.RemoveBlock(c)
		}
		if i%batch == batch-1 {
			w.Translations()
		}
	}
	w.Translations()
	elapsed := time.Since(start)

	fmt.Printf("churn:     %d ops in %v | %v/op | %d uploads | %d solid\n",
		ops, elapsed.Round(time.Microsecond), (elapsed / time.Duration(ops)).Round(time.Nanosecond),
		buf.writes-writesBefore, w.SolidCount())
}
