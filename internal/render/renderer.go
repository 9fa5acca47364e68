package render

import (
	"log"
	"os"

	"blockcraft/internal/assets"
	"blockcraft/internal/config"
	"blockcraft/internal/voxel"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

// Renderer draws every block with a single instanced draw call. It is the
// upload target of the world's instance mirror: Write replaces the transform
// array, DrawBlocks submits it.
type Renderer struct {
	Shader     rl.Shader
	assets     *assets.Library
	mesh       rl.Mesh
	material   rl.Material
	transforms []rl.Matrix
	instanced  bool
	uploads    int
}

func NewRenderer(lib *assets.Library) *Renderer {
	return &Renderer{assets: lib}
}

// Initialize loads the instancing shader and builds the block material.
// Without shader files it falls back to per-block DrawMesh calls.
func (r *Renderer) Initialize(cfg config.AssetsConfig) {
	if fileExists(cfg.ShaderVS) && fileExists(cfg.ShaderFS) {
		r.Shader = rl.LoadShader(cfg.ShaderVS, cfg.ShaderFS)
		r.Shader.UpdateLocation(rl.ShaderLocMatrixMvp, rl.GetShaderLocation(r.Shader, "mvp"))
		r.Shader.UpdateLocation(rl.ShaderLocMatrixModel, rl.GetShaderLocationAttrib(r.Shader, "instanceTransform"))
		r.instanced = r.Shader.ID > 0
	}
	if r.instanced {
		log.Printf("Renderer: instanced shader %s + %s", cfg.ShaderVS, cfg.ShaderFS)
	} else {
		r.Shader = rl.LoadShader("", "")
		log.Println("Renderer: instancing shader unavailable, drawing blocks one by one")
	}

	r.mesh = r.assets.BlockMesh()
	r.material = r.assets.BlockMaterial(r.Shader)
}

// Write rebuilds the per-instance transforms from block translations.
func (r *Renderer) Write(translations []mgl32.Vec3) {
	r.transforms = r.transforms[:0]
	for _, t := range translations {
		r.transforms = append(r.transforms, rl.MatrixTranslate(t.X(), t.Y(), t.Z()))
	}
	r.uploads++
}

// blockRadius bounds a block for frustum tests.
const blockRadius = voxel.DIM * 0.8661

// DrawBlocks draws the first count uploaded instances. Must be called
// between BeginMode3D and EndMode3D. The frustum is only consulted on the
// per-block path; a nil frustum draws everything.
func (r *Renderer) DrawBlocks(count int, frustum *Frustum) {
	count = min(count, len(r.transforms))
	if count == 0 {
		return
	}
	if r.instanced {
		rl.DrawMeshInstanced(r.mesh, r.material, r.transforms[:count], count)
		return
	}
	for _, m := range r.transforms[:count] {
		if frustum != nil && !frustum.ContainsSphere(rl.Vector3{X: m.M12, Y: m.M13, Z: m.M14}, blockRadius) {
			continue
		}
		rl.DrawMesh(r.mesh, r.material, m)
	}
}

// DrawHighlight outlines the block at c.
func (r *Renderer) DrawHighlight(c voxel.Coord) {
	p := c.WorldPos()
	size := voxel.DIM * 1.01
	rl.DrawCubeWires(rl.Vector3{X: p.X(), Y: p.Y(), Z: p.Z()}, size, size, size, rl.Black)
}

func (r *Renderer) Uploads() int {
	return r.uploads
}

func (r *Renderer) Unload() {
	rl.UnloadShader(r.Shader)
}

func fileExists(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
