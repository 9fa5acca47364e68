package assets

import (
	"log"
	"os"

	"blockcraft/internal/config"
	"blockcraft/internal/voxel"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Color name mapping for config values
var colorByName = map[string]rl.Color{
	"Red":       rl.Red,
	"Blue":      rl.Blue,
	"Green":     rl.Green,
	"Purple":    rl.Purple,
	"Orange":    rl.Orange,
	"Yellow":    rl.Yellow,
	"Gold":      rl.Gold,
	"White":     rl.White,
	"Gray":      rl.Gray,
	"LightGray": rl.LightGray,
	"DarkGray":  rl.DarkGray,
	"Black":     rl.Black,
	"Pink":      rl.Pink,
	"Maroon":    rl.Maroon,
	"Brown":     rl.Brown,
	"Beige":     rl.Beige,
	"SkyBlue":   rl.SkyBlue,
	"DarkBlue":  rl.DarkBlue,
	"Lime":      rl.Lime,
	"DarkGreen": rl.DarkGreen,
}

// LookupColor returns a raylib color from a name string
func LookupColor(name string) rl.Color {
	if c, ok := colorByName[name]; ok {
		return c
	}
	return rl.White
}

// Library holds the GPU resources shared by every block: one cube mesh, its
// texture and tint. It is built once after the window exists and passed to
// whatever draws blocks.
type Library struct {
	BlockModel   rl.Model
	BlockTexture rl.Texture2D
	BlockColor   rl.Color

	hasTexture bool
}

// Load builds the library. A missing mesh file falls back to a generated
// cube of edge voxel.DIM; a missing texture leaves blocks untextured.
func Load(cfg config.AssetsConfig) *Library {
	lib := &Library{BlockColor: LookupColor(cfg.BlockColor)}

	if fileExists(cfg.BlockMesh) {
		lib.BlockModel = rl.LoadModel(cfg.BlockMesh)
		log.Printf("Assets: loaded block mesh %s", cfg.BlockMesh)
	} else {
		lib.BlockModel = rl.LoadModelFromMesh(rl.GenMeshCube(voxel.DIM, voxel.DIM, voxel.DIM))
		log.Printf("Assets: %q not found, using generated cube", cfg.BlockMesh)
	}

	if fileExists(cfg.BlockTexture) {
		lib.BlockTexture = rl.LoadTexture(cfg.BlockTexture)
		rl.SetTextureFilter(lib.BlockTexture, rl.FilterPoint)
		lib.hasTexture = lib.BlockTexture.ID > 0
	}
	if lib.hasTexture {
		log.Printf("Assets: loaded block texture %s", cfg.BlockTexture)
	}

	return lib
}

// BlockMesh is the mesh drawn once per block instance.
func (l *Library) BlockMesh() rl.Mesh {
	return *l.BlockModel.Meshes
}

// BlockMaterial returns a material for the block mesh using shader.
func (l *Library) BlockMaterial(shader rl.Shader) rl.Material {
	mat := rl.LoadMaterialDefault()
	mat.Shader = shader
	mat.Maps.Color = l.BlockColor
	if l.hasTexture {
		mat.Maps.Texture = l.BlockTexture
	}
	return mat
}

func (l *Library) Unload() {
	rl.UnloadModel(l.BlockModel)
	if l.hasTexture {
		rl.UnloadTexture(l.BlockTexture)
	}
}

func fileExists(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
