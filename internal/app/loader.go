package app

import (
	"fmt"
	"time"

	"github.com/philipparndt/gowire/pkg/analysis"
	"github.com/philipparndt/gowire/pkg/scene"
	"github.com/philipparndt/gowire/pkg/watcher"
)

// loadScene reads path, or returns the demo scene when path is empty
func loadScene(path string) (*scene.Scene, error) {
	if path == "" {
		return scene.Default(), nil
	}
	s, err := scene.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load scene: %w", err)
	}
	return s, nil
}

// setupFileWatcher reloads the scene whenever the source file changes
func (app *App) setupFileWatcher() error {
	fw, err := watcher.WatchScene(app.FileWatch.sourceFile, func(s *scene.Scene, err error) {
		app.FileWatch.mu.Lock()
		defer app.FileWatch.mu.Unlock()
		app.FileWatch.loadedScene = s
		app.FileWatch.loadErr = err
	})
	if err != nil {
		return fmt.Errorf("failed to watch %s: %w", app.FileWatch.sourceFile, err)
	}

	fmt.Printf("Watching file for changes: %s\n", app.FileWatch.sourceFile)
	app.FileWatch.fileWatcher = fw
	return nil
}

// applyLoadedScene swaps in a reloaded scene. Must be called on the main thread.
// The camera keeps its current view; a broken file keeps the last good scene.
func (app *App) applyLoadedScene() {
	app.FileWatch.mu.Lock()
	s, loadErr := app.FileWatch.loadedScene, app.FileWatch.loadErr
	app.FileWatch.loadedScene, app.FileWatch.loadErr = nil, nil
	app.FileWatch.mu.Unlock()

	if loadErr != nil {
		fmt.Printf("Error reloading scene: %v\n", loadErr)
		app.notify("Reload failed, see console")
		return
	}
	if s == nil {
		return
	}

	v, err := s.Setup()
	if err != nil {
		fmt.Printf("Error reloading scene: %v\n", err)
		app.notify("Reload failed, see console")
		return
	}

	state := app.Controls.State()
	app.Controls = v.Controls
	app.Controls.SetState(state)
	app.setScene(v)

	fmt.Printf("Scene reloaded: %d shape(s)\n", len(v.Shapes))
	app.notify("Scene reloaded")
}

func (app *App) setScene(v *scene.Viewer) {
	app.Scene.shapes = v.Shapes
	app.Scene.projection = v.Projection
	app.Scene.stats = analysis.AnalyzeShapes(v.Shapes)
}

func (app *App) notify(message string) {
	app.UI.message = message
	app.UI.messageUntil = time.Now().Add(2 * time.Second)
}
