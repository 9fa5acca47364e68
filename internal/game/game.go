package game

import (
	"log"
	"time"

	"blockcraft/internal/assets"
	"blockcraft/internal/camera"
	"blockcraft/internal/config"
	"blockcraft/internal/render"
	"blockcraft/internal/terrain"
	"blockcraft/internal/voxel"
	"blockcraft/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Game struct {
	Config   *config.Config
	World    *world.World
	Camera   *camera.FreeCam
	Renderer *render.Renderer
	Assets   *assets.Library
	HUD      *render.HUD

	cursorFree bool

	// Debug timing (ms)
	updateMs float64
	drawMs   float64
}

func New(cfg *config.Config) *Game {
	return &Game{Config: cfg}
}

func (g *Game) Run() {
	cfg := g.Config

	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagMsaa4xHint)
	rl.InitWindow(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(cfg.Window.TargetFPS)
	rl.DisableCursor()

	// GPU resources need the OpenGL context
	g.Assets = assets.Load(cfg.Assets)
	defer g.Assets.Unload()

	g.Renderer = render.NewRenderer(g.Assets)
	g.Renderer.Initialize(cfg.Assets)
	defer g.Renderer.Unload()

	g.World = world.New(cfg.World, g.Renderer)
	g.populate()

	pos := cfg.Camera.Position
	g.Camera = camera.New(rl.Vector3{X: pos[0], Y: pos[1], Z: pos[2]}, cfg.Camera.FOV, cfg.Camera.MoveSpeed, cfg.Camera.LookSpeed)
	g.HUD = render.NewHUD(cfg.Camera.FOV)

	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()
	}
}

func (g *Game) populate() {
	cfg := g.Config
	if cfg.Terrain.Enabled {
		start := time.Now()
		n := terrain.Generate(g.World, cfg.World.Capacity, cfg.Terrain)
		log.Printf("Generated terrain: %d blocks in %v", n, time.Since(start))
		return
	}
	if cfg.World.SpawnBlock {
		g.World.AddBlock(voxel.NewSolid(0), voxel.Coord{})
		log.Println("Spawned block at", voxel.Coord{})
	}
}

func (g *Game) Update() {
	updateStart := time.Now()
	deltaTime := rl.GetFrameTime()

	if rl.IsKeyPressed(rl.KeyTab) {
		g.cursorFree = !g.cursorFree
		if g.cursorFree {
			rl.EnableCursor()
		} else {
			rl.DisableCursor()
		}
	}

	g.Camera.FOV = g.HUD.FOV
	if !g.cursorFree {
		g.Camera.Update(deltaTime)

		// IsMouseButtonPressed only fires on the press transition
		if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
			g.interact(world.ActionBreak)
		}
		if rl.IsMouseButtonPressed(rl.MouseRightButton) {
			g.interact(world.ActionPlace)
		}
	}

	g.updateMs = float64(time.Since(updateStart).Microseconds()) / 1000.0
}

func (g *Game) interact(action world.Action) {
	origin, dir := g.Camera.Ray()
	c, changed, err := g.World.Interact(action, origin, dir)
	if err != nil {
		log.Printf("Interact %v: %v", action, err)
		return
	}
	if changed {
		log.Printf("%v %v (%d blocks)", action, c, g.World.SolidCount())
	}
}

func (g *Game) Draw() {
	camera := g.Camera.GetRaylibCamera()
	origin, dir := g.Camera.Ray()

	// Snapshot uploads to the renderer when the world changed
	count := len(g.World.Translations())

	stats := render.Stats{Blocks: count, Uploads: g.Renderer.Uploads()}
	stats.Target, stats.Targeted, _ = g.World.Target(world.ActionBreak, origin, dir)
	stats.Place, stats.CanPlace, _ = g.World.Target(world.ActionPlace, origin, dir)

	rl.BeginDrawing()
	rl.ClearBackground(assets.LookupColor(g.Config.Window.SkyColor))

	drawStart := time.Now()
	rl.BeginMode3D(camera)
	frustum := render.ExtractFrustum(camera, float32(rl.GetScreenWidth())/float32(rl.GetScreenHeight()))
	g.Renderer.DrawBlocks(count, &frustum)
	if stats.Targeted && g.HUD.ShowHighlight {
		g.Renderer.DrawHighlight(stats.Target)
	}
	rl.EndMode3D()
	g.drawMs = float64(time.Since(drawStart).Microseconds()) / 1000.0

	g.HUD.Draw(stats, g.cursorFree)
	rl.EndDrawing()
}
