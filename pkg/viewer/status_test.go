package viewer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/philipparndt/gowire/pkg/camera"
)

func TestStatusLines(t *testing.T) {
	s := camera.DefaultState()
	f := BuildFrame(s.Transform(), testShapes(), DefaultProjection(), 1)

	lines := StatusLines(s, f)
	assert.Equal(t, []string{
		"yaw 30.0  pitch 20.0",
		"distance 5.00  zoom 1.00",
		"target (0.00, 0.00, 0.00)",
		"edges 20",
	}, lines)
}

func TestControlHints(t *testing.T) {
	assert.Equal(t, []string{
		"Right Drag: Orbit",
		"Middle Drag: Pan",
		"Mouse Wheel: Zoom",
	}, ControlHints(camera.DefaultSettings()))

	settings := camera.DefaultSettings()
	settings.OrbitButton = camera.ButtonLeft
	settings.PanButton = camera.ButtonRight
	assert.Equal(t, []string{
		"Left Drag: Orbit",
		"Right Drag: Pan",
		"Mouse Wheel: Zoom",
	}, ControlHints(settings))

	settings.PanButton = camera.ButtonLeft
	assert.Equal(t, []string{
		"Left Drag: Orbit",
		"Mouse Wheel: Zoom",
	}, ControlHints(settings))
}
