// Package camera turns pointer drags and wheel steps into an orbit camera
// looking at a target.
package camera

import (
	"math"

	"github.com/philipparndt/gowire/pkg/geometry"
)

// Preset is a named view direction
type Preset string

const (
	PresetFront  Preset = "front"
	PresetBack   Preset = "back"
	PresetLeft   Preset = "left"
	PresetRight  Preset = "right"
	PresetTop    Preset = "top"
	PresetBottom Preset = "bottom"
)

// Presets lists every named view
var Presets = []Preset{PresetFront, PresetBack, PresetLeft, PresetRight, PresetTop, PresetBottom}

// Controls owns the camera state and the transient drag state. It is not
// safe for concurrent use; input handlers and the frame loop share one goroutine.
type Controls struct {
	settings Settings
	initial  State
	state    State

	orbiting bool
	panning  bool
	lastX    float64
	lastY    float64
}

// NewControls creates controls starting at initial
func NewControls(initial State, settings Settings) *Controls {
	initial = initial.Clamp(settings)
	return &Controls{
		settings: settings,
		initial:  initial,
		state:    initial,
	}
}

// Settings returns the tuning in use
func (c *Controls) Settings() Settings {
	return c.settings
}

// State returns a copy of the current camera state
func (c *Controls) State() State {
	return c.state
}

// SetState replaces the camera state, clamped to the limits
func (c *Controls) SetState(s State) {
	c.state = s.Clamp(c.settings)
}

// Transform derives the current pose
func (c *Controls) Transform() Transform {
	return c.state.Transform()
}

// Dragging reports whether an orbit or pan gesture is active
func (c *Controls) Dragging() bool {
	return c.orbiting || c.panning
}

// HandlePointerDown starts the gesture bound to button. Other buttons are ignored.
func (c *Controls) HandlePointerDown(button Button, x, y float64) {
	switch button {
	case c.settings.OrbitButton:
		c.orbiting = true
	case c.settings.PanButton:
		c.panning = true
	default:
		return
	}
	c.lastX, c.lastY = x, y
}

// HandlePointerMove applies the drag since the last pointer position.
// Orbit wins when both gestures are somehow active.
func (c *Controls) HandlePointerMove(x, y float64) {
	dx := x - c.lastX
	dy := y - c.lastY
	c.lastX, c.lastY = x, y

	switch {
	case c.orbiting:
		c.state = c.state.Orbit(dx, dy, c.settings)
	case c.panning:
		c.state = c.state.Pan(dx, dy, c.settings)
	}
}

// HandlePointerUp ends the gesture bound to button
func (c *Controls) HandlePointerUp(button Button) {
	switch button {
	case c.settings.OrbitButton:
		c.orbiting = false
	case c.settings.PanButton:
		c.panning = false
	}
}

// Cancel drops any active gesture, e.g. when the pointer leaves the window
func (c *Controls) Cancel() {
	c.orbiting = false
	c.panning = false
}

// HandleWheel zooms by one wheel delta; positive values widen the view
func (c *Controls) HandleWheel(deltaY float64) {
	c.state = c.state.ZoomBy(deltaY, c.settings)
}

// Reset returns to the initial view
func (c *Controls) Reset() {
	c.Cancel()
	c.state = c.initial
}

// SetView turns the camera to a named direction around the initial target.
// Distance and zoom are kept.
func (c *Controls) SetView(p Preset) bool {
	s := c.state
	s.Target = c.initial.Target
	switch p {
	case PresetFront:
		s.Pitch, s.Yaw = 0, 0
	case PresetBack:
		s.Pitch, s.Yaw = 0, 180
	case PresetLeft:
		s.Pitch, s.Yaw = 0, -90
	case PresetRight:
		s.Pitch, s.Yaw = 0, 90
	case PresetTop:
		s.Pitch, s.Yaw = c.settings.PitchLimit, 0
	case PresetBottom:
		s.Pitch, s.Yaw = -c.settings.PitchLimit, 0
	default:
		return false
	}
	c.state = s.Clamp(c.settings)
	return true
}

// fitMargin leaves some room between the fitted box and the view border
const fitMargin = 1.1

// FitBounds centers the orbit on the box, backs off to twice its largest
// dimension and zooms so the box's bounding sphere fills the view height.
// baseSize is the visible half height at zoom 1. The fitted view also
// becomes the one Reset returns to.
func (c *Controls) FitBounds(bbox geometry.BoundingBox, baseSize float64) {
	if bbox.IsEmpty() {
		return
	}
	distance := math.Max(bbox.MaxDimension()*2, 1)

	c.state.Target = bbox.Center()
	c.state.Distance = distance
	if baseSize > 0 {
		radius := bbox.Diagonal() / 2
		c.state.Zoom = clamp(radius*fitMargin/baseSize, c.settings.MinZoom, c.settings.MaxZoom)
	}
	c.initial.Target = c.state.Target
	c.initial.Distance = distance
	c.initial.Zoom = c.state.Zoom
}
