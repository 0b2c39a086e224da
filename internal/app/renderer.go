package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/philipparndt/gowire/pkg/viewer"
)

// buildFrame projects the scene for the current window size
func (app *App) buildFrame(width, height int32) viewer.Frame {
	aspect := 1.0
	if height > 0 {
		aspect = float64(width) / float64(height)
	}
	return viewer.BuildFrame(app.Controls.Transform(), app.Scene.shapes, app.Scene.projection, aspect)
}

// drawFrame draws every segment as a screen-space line
func (app *App) drawFrame(frame viewer.Frame, width, height int32) {
	w, h := float64(width), float64(height)
	for _, seg := range frame.Segments {
		x1, y1, z1 := frame.ToScreen(seg.From, w, h)
		x2, y2, z2 := frame.ToScreen(seg.To, w, h)

		if !viewer.InDepthRange(z1, z2) {
			continue
		}

		col := seg.Color.RGBA()
		if app.View.depthShading {
			col = viewer.Shade(col, (z1+z2)/2)
		}
		rl.DrawLineV(
			rl.NewVector2(float32(x1), float32(y1)),
			rl.NewVector2(float32(x2), float32(y2)),
			rl.NewColor(col.R, col.G, col.B, col.A),
		)
	}
}
