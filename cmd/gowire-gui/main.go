package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/gowire/pkg/analysis"
	"github.com/philipparndt/gowire/pkg/camera"
	"github.com/philipparndt/gowire/pkg/scene"
	"github.com/philipparndt/gowire/pkg/shape"
	"github.com/philipparndt/gowire/pkg/viewer"
	"github.com/philipparndt/gowire/pkg/watcher"
)

type App struct {
	window      fyne.Window
	view        *viewer.SceneView
	sceneFile   string
	fileWatcher *watcher.FileWatcher
	cameraLabel *widget.Label
	sceneLabel  *widget.Label
	helpLabel   *widget.Label
}

var presetKeys = map[fyne.KeyName]camera.Preset{
	fyne.KeyT: camera.PresetTop,
	fyne.KeyB: camera.PresetBottom,
	fyne.Key1: camera.PresetFront,
	fyne.Key2: camera.PresetBack,
	fyne.Key3: camera.PresetLeft,
	fyne.Key4: camera.PresetRight,
}

func main() {
	a := app.New()
	w := a.NewWindow("gowire")

	appInstance := &App{
		window:      w,
		cameraLabel: widget.NewLabel(""),
		sceneLabel:  widget.NewLabel(""),
		helpLabel:   widget.NewLabel(""),
	}

	s := scene.Default()
	if len(os.Args) > 1 {
		loaded, err := scene.Load(os.Args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading scene: %v\n", err)
			os.Exit(1)
		}
		s = loaded
		appInstance.sceneFile = os.Args[1]
	}

	v, err := s.Setup()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	appInstance.setupMainUI(v)

	if appInstance.sceneFile != "" {
		if err := appInstance.setupFileWatcher(); err != nil {
			fmt.Printf("Warning: Failed to set up file watching: %v\n", err)
		} else {
			defer appInstance.fileWatcher.Close()
		}
	}

	w.Resize(fyne.NewSize(1200, 800))
	w.ShowAndRun()
}

func (a *App) setupMainUI(v *scene.Viewer) {
	a.view = viewer.NewSceneView(v.Shapes, v.Controls, v.Projection)
	a.view.SetOnChange(a.updateCameraInfo)
	a.updateCameraInfo(v.Controls.State())
	a.updateSceneInfo(v.Shapes)

	viewButtons := container.NewGridWithColumns(3)
	for _, p := range camera.Presets {
		viewButtons.Add(widget.NewButton(string(p), func() {
			a.view.SetView(p)
		}))
	}
	resetButton := widget.NewButton("Reset View", func() {
		a.view.ResetView()
	})

	a.helpLabel.Wrapping = fyne.TextWrapWord
	a.updateHelp(v.Controls.Settings())

	infoPanel := container.NewVBox(
		widget.NewLabel("Scene:"),
		widget.NewSeparator(),
		a.sceneLabel,
		widget.NewSeparator(),
		widget.NewLabel("Camera:"),
		widget.NewSeparator(),
		a.cameraLabel,
		widget.NewSeparator(),
		viewButtons,
		resetButton,
		widget.NewSeparator(),
		a.helpLabel,
	)

	infoScroll := container.NewVScroll(infoPanel)
	infoScroll.SetMinSize(fyne.NewSize(300, 0))

	content := container.NewBorder(nil, nil, nil, infoScroll, a.view)
	a.window.SetContent(content)

	a.window.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		if ev.Name == fyne.KeyHome {
			a.view.ResetView()
			return
		}
		if p, ok := presetKeys[ev.Name]; ok {
			a.view.SetView(p)
		}
	})

	a.view.Render(800, 600)
}

func (a *App) updateHelp(settings camera.Settings) {
	text := "Instructions:\n"
	for _, hint := range viewer.ControlHints(settings) {
		text += "• " + hint + "\n"
	}
	a.helpLabel.SetText(text + "• Home resets, T/B top/bottom, 1-4 side views")
}

func (a *App) updateCameraInfo(s camera.State) {
	a.cameraLabel.SetText(fmt.Sprintf(
		"Target: %s\nDistance: %.3f\nPitch: %.1f°\nYaw: %.1f°\nZoom: %.2f",
		analysis.FormatVector(s.Target), s.Distance, s.Pitch, s.Yaw, s.Zoom,
	))
}

func (a *App) updateSceneInfo(shapes []shape.Shape) {
	result := analysis.AnalyzeShapes(shapes)
	a.sceneLabel.SetText(fmt.Sprintf(
		"Shapes: %d\nCorners: %d\nEdges: %d\n\nDimensions:\n  X: %.2f\n  Y: %.2f\n  Z: %.2f",
		result.ShapeCount,
		result.CornerCount,
		result.EdgeCount,
		result.Dimensions.X,
		result.Dimensions.Y,
		result.Dimensions.Z,
	))
}

// setupFileWatcher swaps in the scene file whenever it is saved. Shapes,
// camera tuning and projection are taken from the file; the camera keeps its
// current view.
func (a *App) setupFileWatcher() error {
	fw, err := watcher.WatchScene(a.sceneFile, func(s *scene.Scene, err error) {
		var v *scene.Viewer
		if err == nil {
			v, err = s.Setup()
		}
		fyne.Do(func() {
			if err != nil {
				dialog.ShowError(fmt.Errorf("failed to reload scene: %w", err), a.window)
				return
			}
			a.view.SetScene(v.Shapes, v.Controls, v.Projection)
			a.updateSceneInfo(v.Shapes)
			a.updateHelp(v.Controls.Settings())
			a.updateCameraInfo(v.Controls.State())
		})
	})
	if err != nil {
		return err
	}
	fmt.Printf("Watching file for changes: %s\n", a.sceneFile)
	a.fileWatcher = fw
	return nil
}
