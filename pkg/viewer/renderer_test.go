package viewer

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"

	"github.com/philipparndt/gowire/pkg/camera"
)

func TestButtonFromDesktop(t *testing.T) {
	cases := []struct {
		in       desktop.MouseButton
		expected camera.Button
	}{
		{desktop.MouseButtonPrimary, camera.ButtonLeft},
		{desktop.MouseButtonSecondary, camera.ButtonRight},
		{desktop.MouseButtonTertiary, camera.ButtonMiddle},
	}
	for _, c := range cases {
		b, ok := buttonFromDesktop(c.in)
		assert.True(t, ok)
		assert.Equal(t, c.expected, b)
	}
}

func TestWheelDelta(t *testing.T) {
	assert.Equal(t, -1.0, wheelDelta(10))
	assert.Equal(t, 1.0, wheelDelta(-0.5))
	assert.Equal(t, 0.0, wheelDelta(0))
}

func mouseEvent(x, y float32, button desktop.MouseButton) *desktop.MouseEvent {
	ev := &desktop.MouseEvent{Button: button}
	ev.Position = fyne.NewPos(x, y)
	return ev
}

func TestSceneViewOrbitAndZoom(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	controls := camera.NewControls(camera.DefaultState(), camera.DefaultSettings())
	view := NewSceneView(testShapes(), controls, DefaultProjection())
	view.Render(400, 300)
	assert.Len(t, view.lines, 20)

	var changes int
	view.SetOnChange(func(camera.State) { changes++ })

	view.MouseDown(mouseEvent(100, 100, desktop.MouseButtonSecondary))
	view.MouseMoved(mouseEvent(110, 100, desktop.MouseButtonSecondary))
	view.MouseUp(mouseEvent(110, 100, desktop.MouseButtonSecondary))
	assert.InDelta(t, 26, controls.State().Yaw, 1e-12)

	view.MouseMoved(mouseEvent(300, 300, 0))
	assert.InDelta(t, 26, controls.State().Yaw, 1e-12)

	view.Scrolled(&fyne.ScrollEvent{Scrolled: fyne.NewDelta(0, -1)})
	assert.InDelta(t, 1.1, controls.State().Zoom, 1e-12)
	assert.Equal(t, 2, changes)

	view.SetView(camera.PresetTop)
	assert.Equal(t, 89.0, controls.State().Pitch)

	view.SetShapes(nil)
	assert.Empty(t, view.lines)
}

func TestSceneViewCullsBeyondDepthRange(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	controls := camera.NewControls(camera.State{Distance: 30, Zoom: 1}, camera.DefaultSettings())
	view := NewSceneView(testShapes(), controls, DefaultProjection())
	view.Render(400, 300)
	assert.Empty(t, view.lines)
}

func TestSceneViewSetSceneKeepsState(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	view := NewSceneView(nil, camera.NewControls(camera.DefaultState(), camera.DefaultSettings()), DefaultProjection())
	view.Render(400, 300)
	view.MouseDown(mouseEvent(100, 100, desktop.MouseButtonSecondary))
	view.MouseMoved(mouseEvent(110, 100, desktop.MouseButtonSecondary))
	before := view.Controls().State()

	settings := camera.DefaultSettings()
	settings.OrbitButton = camera.ButtonLeft
	settings.PanButton = camera.ButtonRight
	settings.MaxZoom = 0.5
	next := camera.NewControls(camera.DefaultState(), settings)
	projection := Projection{BaseSize: 4, Near: -20, Far: 20}

	view.SetScene(testShapes(), next, projection)
	assert.Same(t, next, view.Controls())
	assert.Equal(t, projection, view.projection)
	assert.Len(t, view.lines, 20)

	after := next.State()
	assert.Equal(t, before.Yaw, after.Yaw)
	assert.Equal(t, before.Pitch, after.Pitch)
	assert.Equal(t, 0.5, after.Zoom)

	// the new bindings are live: left now orbits
	view.MouseDown(mouseEvent(100, 100, desktop.MouseButtonPrimary))
	view.MouseMoved(mouseEvent(110, 100, desktop.MouseButtonPrimary))
	assert.InDelta(t, after.Yaw-4, next.State().Yaw, 1e-12)
}
