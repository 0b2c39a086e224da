package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/philipparndt/gowire/pkg/camera"
)

var mouseButtons = []struct {
	raylib rl.MouseButton
	button camera.Button
}{
	{rl.MouseButtonLeft, camera.ButtonLeft},
	{rl.MouseButtonMiddle, camera.ButtonMiddle},
	{rl.MouseButtonRight, camera.ButtonRight},
}

var presetKeys = []struct {
	key    int32
	preset camera.Preset
}{
	{rl.KeyT, camera.PresetTop},
	{rl.KeyB, camera.PresetBottom},
	{rl.KeyOne, camera.PresetFront},
	{rl.KeyTwo, camera.PresetBack},
	{rl.KeyThree, camera.PresetLeft},
	{rl.KeyFour, camera.PresetRight},
}

// handleInput feeds this tick's mouse and keyboard events into the camera
func (app *App) handleInput() {
	mouse := rl.GetMousePosition()
	x, y := float64(mouse.X), float64(mouse.Y)

	for _, b := range mouseButtons {
		if rl.IsMouseButtonPressed(b.raylib) {
			app.Controls.HandlePointerDown(b.button, x, y)
		}
		if rl.IsMouseButtonReleased(b.raylib) {
			app.Controls.HandlePointerUp(b.button)
		}
	}
	if app.Controls.Dragging() {
		app.Controls.HandlePointerMove(x, y)
	}

	// raylib reports scrolling up as positive, which zooms in
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		app.Controls.HandleWheel(-float64(wheel))
	}

	if rl.IsKeyPressed(rl.KeyHome) {
		app.Controls.Reset()
	}
	for _, k := range presetKeys {
		if rl.IsKeyPressed(k.key) {
			app.Controls.SetView(k.preset)
		}
	}

	if rl.IsKeyPressed(rl.KeyH) {
		app.View.showHUD = !app.View.showHUD
	}
	if rl.IsKeyPressed(rl.KeyD) {
		app.View.depthShading = !app.View.depthShading
	}
	if rl.IsKeyPressed(rl.KeyF1) {
		app.View.showHelp = !app.View.showHelp
	}
}
