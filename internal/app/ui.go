package app

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/philipparndt/gowire/pkg/camera"
	"github.com/philipparndt/gowire/pkg/viewer"
)

var keyHelp = []string{
	"Home: Reset view",
	"T / B: Top / bottom view",
	"1-4: Front / back / left / right view",
	"H: Toggle HUD",
	"D: Toggle depth shading",
	"F1: Toggle this help",
}

// helpLines lists the pointer bindings of the active settings, then the keys
func helpLines(settings camera.Settings) []string {
	lines := []string{"Controls:"}
	for _, hint := range viewer.ControlHints(settings) {
		lines = append(lines, "  "+hint)
	}
	for _, key := range keyHelp {
		lines = append(lines, "  "+key)
	}
	return lines
}

// drawUI draws the text overlay
func (app *App) drawUI(frame viewer.Frame) {
	y := int32(10)
	lineHeight := int32(20)

	if app.View.showHUD {
		for _, line := range viewer.StatusLines(app.Controls.State(), frame) {
			rl.DrawText(line, 10, y, 16, rl.White)
			y += lineHeight
		}

		if stats := app.Scene.stats; stats != nil {
			rl.DrawText(fmt.Sprintf("shapes %d  corners %d", stats.ShapeCount, stats.CornerCount), 10, y, 16, rl.LightGray)
			y += lineHeight
		}
		y += lineHeight
	}

	if app.View.showHelp {
		for i, line := range helpLines(app.Controls.Settings()) {
			col := rl.LightGray
			size := int32(14)
			if i == 0 {
				col = rl.Yellow
				size = 16
			}
			rl.DrawText(line, 10, y, size, col)
			y += lineHeight
		}
	}

	if app.UI.message != "" && time.Now().Before(app.UI.messageUntil) {
		width := rl.MeasureText(app.UI.message, 18)
		rl.DrawText(app.UI.message, int32(rl.GetScreenWidth())-width-10, 10, 18, rl.Yellow)
	}

	rl.DrawText(fmt.Sprintf("FPS: %d", rl.GetFPS()), 10, int32(rl.GetScreenHeight())-30, 20, rl.Lime)
}
