// Package app is the raylib desktop viewer.
package app

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Run opens the viewer on the scene at path, or on the demo scene when path
// is empty, and blocks until the window is closed.
func Run(path string) error {
	s, err := loadScene(path)
	if err != nil {
		return err
	}
	v, err := s.Setup()
	if err != nil {
		return err
	}

	app := &App{
		Controls: v.Controls,
		View: ViewSettings{
			showHUD:      true,
			showHelp:     true,
			depthShading: true,
		},
		FileWatch: FileWatchState{sourceFile: path},
	}
	app.setScene(v)

	if path != "" {
		if err := app.setupFileWatcher(); err != nil {
			fmt.Printf("Warning: Failed to set up file watching: %v\n", err)
			fmt.Println("Auto-reload will not be available")
		} else {
			defer app.FileWatch.fileWatcher.Close()
		}
	}

	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagWindowHighdpi | rl.FlagMsaa4xHint)
	rl.InitWindow(1400, 900, "gowire")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	for !rl.WindowShouldClose() {
		app.applyLoadedScene()
		app.handleInput()

		width, height := int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight())
		frame := app.buildFrame(width, height)

		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(25, 25, 25, 255))
		app.drawFrame(frame, width, height)
		app.drawUI(frame)
		rl.EndDrawing()
	}
	return nil
}
