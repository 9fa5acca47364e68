package render

import (
	"fmt"

	"blockcraft/internal/voxel"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	colorPanel  = rl.NewColor(24, 24, 32, 200)
	colorAccent = rl.NewColor(108, 99, 255, 255)
	colorText   = rl.NewColor(230, 230, 240, 255)
)

// Stats is what the HUD reports each frame.
type Stats struct {
	Blocks   int
	Uploads  int
	Target   voxel.Coord
	Targeted bool
	Place    voxel.Coord
	CanPlace bool
}

// HUD draws the crosshair and a small settings panel. The panel is only
// interactive while the cursor is released.
type HUD struct {
	ShowHighlight bool
	ShowStats     bool
	FOV           float32
}

func NewHUD(fov float32) *HUD {
	h := &HUD{ShowHighlight: true, ShowStats: true, FOV: fov}
	initStyle()
	return h
}

func initStyle() {
	gui.SetStyle(gui.DEFAULT, gui.BACKGROUND_COLOR, gui.NewColorPropertyValue(colorPanel))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_PRESSED, gui.NewColorPropertyValue(colorAccent))
	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_FOCUSED, gui.NewColorPropertyValue(colorAccent))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(colorText))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 15)
}

// Draw renders the overlay. Call after EndMode3D.
func (h *HUD) Draw(stats Stats, cursorFree bool) {
	h.drawCrosshair()

	rl.DrawText("WASD to fly, LMB break, RMB place, Tab for cursor", 10, 10, 18, rl.DarkGray)
	rl.DrawFPS(10, 34)

	if h.ShowStats {
		rl.DrawText(fmt.Sprintf("Blocks:  %d", stats.Blocks), 10, 60, 16, rl.Black)
		rl.DrawText(fmt.Sprintf("Uploads: %d", stats.Uploads), 10, 80, 16, rl.Black)
		target := "none"
		if stats.Targeted {
			target = stats.Target.String()
		}
		rl.DrawText("Target:  "+target, 10, 100, 16, rl.Black)
		if stats.CanPlace {
			rl.DrawText("Place:   "+stats.Place.String(), 10, 120, 16, rl.Black)
		}
	}

	if cursorFree {
		h.drawPanel()
	}
}

func (h *HUD) drawCrosshair() {
	cx := int32(rl.GetScreenWidth() / 2)
	cy := int32(rl.GetScreenHeight() / 2)
	rl.DrawLine(cx-8, cy, cx+8, cy, rl.White)
	rl.DrawLine(cx, cy-8, cx, cy+8, rl.White)
}

func (h *HUD) drawPanel() {
	x := float32(rl.GetScreenWidth()) - 220
	y := float32(10)
	rl.DrawRectangleRec(rl.Rectangle{X: x, Y: y, Width: 210, Height: 100}, colorPanel)
	rl.DrawRectangleLinesEx(rl.Rectangle{X: x, Y: y, Width: 210, Height: 100}, 1, colorAccent)

	h.ShowHighlight = gui.CheckBox(rl.Rectangle{X: x + 10, Y: y + 10, Width: 16, Height: 16}, "Highlight target", h.ShowHighlight)
	h.ShowStats = gui.CheckBox(rl.Rectangle{X: x + 10, Y: y + 34, Width: 16, Height: 16}, "Show stats", h.ShowStats)
	h.FOV = gui.Slider(rl.Rectangle{X: x + 40, Y: y + 62, Width: 120, Height: 16}, "FOV", fmt.Sprintf("%.0f", h.FOV), h.FOV, 45, 110)
}
