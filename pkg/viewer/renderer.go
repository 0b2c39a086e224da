package viewer

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/philipparndt/gowire/pkg/camera"
	"github.com/philipparndt/gowire/pkg/shape"
)

// SceneView is a fyne widget that draws the wireframe scene and feeds mouse
// input into the camera controls.
type SceneView struct {
	widget.BaseWidget
	controls   *camera.Controls
	projection Projection
	shapes     []shape.Shape
	options    RasterOptions
	lines      []*canvas.Line
	width      float64
	height     float64
	onChange   func(camera.State)
}

var (
	_ desktop.Mouseable = (*SceneView)(nil)
	_ desktop.Hoverable = (*SceneView)(nil)
	_ fyne.Scrollable   = (*SceneView)(nil)
)

// NewSceneView creates a view of shapes seen through controls
func NewSceneView(shapes []shape.Shape, controls *camera.Controls, projection Projection) *SceneView {
	v := &SceneView{
		controls:   controls,
		projection: projection,
		shapes:     shapes,
		options:    DefaultRasterOptions(),
	}
	v.ExtendBaseWidget(v)
	return v
}

// SetOnChange registers a callback invoked after every camera change
func (v *SceneView) SetOnChange(callback func(camera.State)) {
	v.onChange = callback
}

// SetShapes swaps the scene content, e.g. after the scene file was reloaded
func (v *SceneView) SetShapes(shapes []shape.Shape) {
	v.shapes = shapes
	v.Render(v.width, v.height)
}

// SetScene swaps the content, the controls and the projection together, e.g.
// after the scene file was reloaded. The current camera state carries over
// into the new controls, clamped to their settings.
func (v *SceneView) SetScene(shapes []shape.Shape, controls *camera.Controls, projection Projection) {
	v.controls.Cancel()
	controls.SetState(v.controls.State())
	v.controls = controls
	v.projection = projection
	v.shapes = shapes
	v.Render(v.width, v.height)
}

// Controls returns the camera controls driven by this view
func (v *SceneView) Controls() *camera.Controls {
	return v.controls
}

// Frame builds the frame for the current widget size
func (v *SceneView) Frame() Frame {
	aspect := 1.0
	if v.height > 0 {
		aspect = v.width / v.height
	}
	return BuildFrame(v.controls.Transform(), v.shapes, v.projection, aspect)
}

// Render rebuilds the line objects for the given size
func (v *SceneView) Render(width, height float64) {
	v.width = width
	v.height = height
	v.lines = v.lines[:0]

	if width > 0 && height > 0 {
		frame := v.Frame()
		for _, seg := range frame.Segments {
			x1, y1, z1 := frame.ToScreen(seg.From, width, height)
			x2, y2, z2 := frame.ToScreen(seg.To, width, height)
			if !InDepthRange(z1, z2) {
				continue
			}

			var col color.Color = seg.Color.RGBA()
			if v.options.DepthShading {
				col = Shade(seg.Color.RGBA(), (z1+z2)/2)
			}
			line := canvas.NewLine(col)
			line.StrokeWidth = 1
			line.Position1 = fyne.NewPos(float32(x1), float32(y1))
			line.Position2 = fyne.NewPos(float32(x2), float32(y2))
			v.lines = append(v.lines, line)
		}
	}

	v.Refresh()
}

func (v *SceneView) changed() {
	v.Render(v.width, v.height)
	if v.onChange != nil {
		v.onChange(v.controls.State())
	}
}

// buttonFromDesktop maps fyne mouse buttons to camera buttons
func buttonFromDesktop(b desktop.MouseButton) (camera.Button, bool) {
	switch b {
	case desktop.MouseButtonPrimary:
		return camera.ButtonLeft, true
	case desktop.MouseButtonTertiary:
		return camera.ButtonMiddle, true
	case desktop.MouseButtonSecondary:
		return camera.ButtonRight, true
	default:
		return 0, false
	}
}

// wheelDelta converts a fyne scroll to one wheel step. fyne reports scrolling
// up as positive, which zooms in, so the sign flips.
func wheelDelta(dy float32) float64 {
	switch {
	case dy > 0:
		return -1
	case dy < 0:
		return 1
	default:
		return 0
	}
}

// MouseDown starts an orbit or pan gesture
func (v *SceneView) MouseDown(event *desktop.MouseEvent) {
	if b, ok := buttonFromDesktop(event.Button); ok {
		v.controls.HandlePointerDown(b, float64(event.Position.X), float64(event.Position.Y))
	}
}

// MouseUp ends the gesture of the released button
func (v *SceneView) MouseUp(event *desktop.MouseEvent) {
	if b, ok := buttonFromDesktop(event.Button); ok {
		v.controls.HandlePointerUp(b)
	}
}

// MouseIn is required by desktop.Hoverable
func (v *SceneView) MouseIn(*desktop.MouseEvent) {}

// MouseMoved applies drags to the camera
func (v *SceneView) MouseMoved(event *desktop.MouseEvent) {
	dragging := v.controls.Dragging()
	v.controls.HandlePointerMove(float64(event.Position.X), float64(event.Position.Y))
	if dragging {
		v.changed()
	}
}

// MouseOut drops an active gesture
func (v *SceneView) MouseOut() {
	v.controls.Cancel()
}

// Scrolled handles scroll events for zooming
func (v *SceneView) Scrolled(event *fyne.ScrollEvent) {
	delta := wheelDelta(event.Scrolled.DY)
	if delta == 0 {
		return
	}
	v.controls.HandleWheel(delta)
	v.changed()
}

// SetView switches to a preset view
func (v *SceneView) SetView(p camera.Preset) {
	if v.controls.SetView(p) {
		v.changed()
	}
}

// ResetView returns to the initial view
func (v *SceneView) ResetView() {
	v.controls.Reset()
	v.changed()
}

// CreateRenderer creates the renderer for the widget
func (v *SceneView) CreateRenderer() fyne.WidgetRenderer {
	return &sceneViewRenderer{view: v}
}

// sceneViewRenderer implements fyne.WidgetRenderer
type sceneViewRenderer struct {
	view    *SceneView
	objects []fyne.CanvasObject
}

func (r *sceneViewRenderer) Layout(size fyne.Size) {
	if float64(size.Width) == r.view.width && float64(size.Height) == r.view.height {
		return
	}
	r.view.Render(float64(size.Width), float64(size.Height))
}

func (r *sceneViewRenderer) MinSize() fyne.Size {
	return fyne.NewSize(400, 300)
}

func (r *sceneViewRenderer) Refresh() {
	r.objects = r.objects[:0]
	for _, line := range r.view.lines {
		r.objects = append(r.objects, line)
	}
	canvas.Refresh(r.view)
}

func (r *sceneViewRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *sceneViewRenderer) Destroy() {}
