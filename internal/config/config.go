package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// EnvPath names the environment variable consulted when Load gets no path.
const EnvPath = "BLOCKCRAFT_CONFIG"

var ErrInvalid = errors.New("invalid config")

type Config struct {
	Window  WindowConfig  `yaml:"window"`
	World   WorldConfig   `yaml:"world"`
	Terrain TerrainConfig `yaml:"terrain"`
	Camera  CameraConfig  `yaml:"camera"`
	Assets  AssetsConfig  `yaml:"assets"`
}

type WindowConfig struct {
	Width     int32  `yaml:"width"`
	Height    int32  `yaml:"height"`
	Title     string `yaml:"title"`
	TargetFPS int32  `yaml:"target_fps"`
	SkyColor  string `yaml:"sky_color"`
}

type WorldConfig struct {
	// Capacity is the side of the block cube, in cells.
	Capacity int `yaml:"capacity"`
	// ReachDistance is how far, in cells, the player can interact.
	ReachDistance int `yaml:"reach_distance"`
	// FaceTolerance is how close to 1 a normalized hit component must be to
	// count as lying on a face.
	FaceTolerance float32 `yaml:"face_tolerance"`
	// PlaceBlockID is the material id given to placed blocks.
	PlaceBlockID uint32 `yaml:"place_block_id"`
	// SpawnBlock places one block at the origin when terrain is disabled.
	SpawnBlock bool `yaml:"spawn_block"`
}

type TerrainConfig struct {
	Enabled    bool    `yaml:"enabled"`
	Seed       int64   `yaml:"seed"`
	BaseHeight int     `yaml:"base_height"`
	Amplitude  float64 `yaml:"amplitude"`
	Scale      float64 `yaml:"scale"`
	Alpha      float64 `yaml:"alpha"`
	Beta       float64 `yaml:"beta"`
	Octaves    int32   `yaml:"octaves"`
}

type CameraConfig struct {
	Position  [3]float32 `yaml:"position"`
	FOV       float32    `yaml:"fov"`
	MoveSpeed float32    `yaml:"move_speed"`
	LookSpeed float32    `yaml:"look_speed"`
}

type AssetsConfig struct {
	BlockMesh    string `yaml:"block_mesh"`
	BlockTexture string `yaml:"block_texture"`
	BlockColor   string `yaml:"block_color"`
	ShaderVS     string `yaml:"shader_vs"`
	ShaderFS     string `yaml:"shader_fs"`
}

// Default returns the built-in configuration: a 16 cell world holding one
// block at the origin, reach 4.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Width:     640,
			Height:    480,
			Title:     "blockcraft",
			TargetFPS: 60,
			SkyColor:  "SkyBlue",
		},
		World: WorldConfig{
			Capacity:      16,
			ReachDistance: 4,
			FaceTolerance: 0.99,
			PlaceBlockID:  0,
			SpawnBlock:    true,
		},
		Terrain: TerrainConfig{
			Enabled:    false,
			Seed:       1,
			BaseHeight: 2,
			Amplitude:  4,
			Scale:      0.08,
			Alpha:      2,
			Beta:       2,
			Octaves:    3,
		},
		Camera: CameraConfig{
			Position:  [3]float32{0, 0, 6},
			FOV:       75,
			MoveSpeed: 6,
			LookSpeed: 0.003,
		},
		Assets: AssetsConfig{
			BlockMesh:    "assets/models/cube.obj",
			BlockTexture: "assets/textures/blocks.png",
			BlockColor:   "White",
			ShaderVS:     "assets/shaders/blocks_instanced.vs",
			ShaderFS:     "assets/shaders/blocks_instanced.fs",
		},
	}
}

// Load reads a YAML config on top of Default. An empty path falls back to
// $BLOCKCRAFT_CONFIG; if that is unset too, the defaults are returned.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = os.Getenv(EnvPath)
		if path == "" {
			return cfg, nil
		}
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the values the world and renderer rely on.
func (c Config) Validate() error {
	switch {
	case c.World.Capacity <= 0:
		return fmt.Errorf("%w: world.capacity must be positive, got %d", ErrInvalid, c.World.Capacity)
	case c.World.ReachDistance < 0:
		return fmt.Errorf("%w: world.reach_distance must not be negative, got %d", ErrInvalid, c.World.ReachDistance)
	case c.World.FaceTolerance <= 0 || c.World.FaceTolerance > 1 || math.IsNaN(float64(c.World.FaceTolerance)):
		return fmt.Errorf("%w: world.face_tolerance must be in (0, 1], got %v", ErrInvalid, c.World.FaceTolerance)
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size must be positive, got %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.Terrain.Enabled && c.Terrain.Octaves <= 0:
		return fmt.Errorf("%w: terrain.octaves must be positive, got %d", ErrInvalid, c.Terrain.Octaves)
	case c.Terrain.Enabled && c.Terrain.Scale <= 0:
		return fmt.Errorf("%w: terrain.scale must be positive, got %v", ErrInvalid, c.Terrain.Scale)
	}
	return nil
}
