package app

import (
	"sync"
	"time"

	"github.com/philipparndt/gowire/pkg/analysis"
	"github.com/philipparndt/gowire/pkg/camera"
	"github.com/philipparndt/gowire/pkg/scene"
	"github.com/philipparndt/gowire/pkg/shape"
	"github.com/philipparndt/gowire/pkg/viewer"
	"github.com/philipparndt/gowire/pkg/watcher"
)

// SceneData holds what is currently on screen
type SceneData struct {
	shapes     []shape.Shape
	projection viewer.Projection
	stats      *analysis.MeasurementResult
}

// ViewSettings holds display toggles
type ViewSettings struct {
	showHUD      bool
	showHelp     bool
	depthShading bool
}

// FileWatchState holds file watching and reload state. The watcher callback
// runs on its own goroutine, so everything it touches sits behind mu.
type FileWatchState struct {
	sourceFile  string
	fileWatcher *watcher.FileWatcher

	mu          sync.Mutex
	loadedScene *scene.Scene
	loadErr     error
}

// UIState holds transient overlay state
type UIState struct {
	message      string
	messageUntil time.Time
}

// App is the raylib frontend
type App struct {
	Controls  *camera.Controls
	Scene     SceneData
	View      ViewSettings
	FileWatch FileWatchState
	UI        UIState
}
