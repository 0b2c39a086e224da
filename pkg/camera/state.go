package camera

import (
	"errors"
	"fmt"
	"math"

	"github.com/philipparndt/gowire/pkg/geometry"
)

// WorldUp is the fixed up vector; the camera never rolls.
var WorldUp = geometry.NewVector3(0, 1, 0)

// State is the orbit camera: a target, a distance from it, pitch and yaw in
// degrees, and the orthographic zoom factor. Transitions return a new State.
type State struct {
	Target   geometry.Vector3
	Distance float64
	Pitch    float64
	Yaw      float64
	Zoom     float64
}

// Transform is the camera pose derived from a State
type Transform struct {
	Position geometry.Vector3
	Target   geometry.Vector3
	Up       geometry.Vector3
	Zoom     float64
}

// DefaultState looks at the origin from slightly above and to the side
func DefaultState() State {
	return State{
		Target:   geometry.NewVector3(0, 0, 0),
		Distance: 5,
		Pitch:    20,
		Yaw:      30,
		Zoom:     1,
	}
}

// Validate reports a state that cannot produce a view: non-finite values or
// a distance that is not positive
func (s State) Validate() error {
	if !finite(s.Target.X, s.Target.Y, s.Target.Z, s.Distance, s.Pitch, s.Yaw, s.Zoom) {
		return errors.New("camera values must be finite")
	}
	if s.Distance <= 0 {
		return fmt.Errorf("camera distance %v must be positive", s.Distance)
	}
	return nil
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// Clamp brings pitch and zoom back inside the configured limits
func (s State) Clamp(cfg Settings) State {
	s.Pitch = clamp(s.Pitch, -cfg.PitchLimit, cfg.PitchLimit)
	s.Zoom = clamp(s.Zoom, cfg.MinZoom, cfg.MaxZoom)
	return s
}

// Orbit rotates around the target by a drag of (dx, dy) pixels. Yaw is left
// unbounded; pitch is clamped short of the poles.
func (s State) Orbit(dx, dy float64, cfg Settings) State {
	s.Yaw -= dx * cfg.OrbitSensitivity
	s.Pitch -= dy * cfg.OrbitSensitivity
	s.Pitch = clamp(s.Pitch, -cfg.PitchLimit, cfg.PitchLimit)
	return s
}

// Pan moves the target in the horizontal right axis and world up by a drag
// of (dx, dy) pixels. Speed grows with distance so the motion feels constant on screen.
func (s State) Pan(dx, dy float64, cfg Settings) State {
	yaw := degToRad(s.Yaw)
	right := geometry.NewVector3(math.Cos(yaw), 0, -math.Sin(yaw))
	speed := s.Distance * cfg.PanFactor

	s.Target = s.Target.
		Add(right.Mul(-dx * speed)).
		Add(WorldUp.Mul(dy * speed))
	return s
}

// ZoomBy scales the zoom multiplicatively by 1 + deltaY*sensitivity, then clamps.
// A multiplier at or below zero lands on MinZoom.
func (s State) ZoomBy(deltaY float64, cfg Settings) State {
	s.Zoom *= 1 + deltaY*cfg.ZoomSensitivity
	s.Zoom = clamp(s.Zoom, cfg.MinZoom, cfg.MaxZoom)
	return s
}

// Eye returns the camera position on the orbit sphere
func (s State) Eye() geometry.Vector3 {
	pitch := degToRad(s.Pitch)
	yaw := degToRad(s.Yaw)
	offset := geometry.NewVector3(
		math.Cos(pitch)*math.Sin(yaw),
		math.Sin(pitch),
		math.Cos(pitch)*math.Cos(yaw),
	)
	return s.Target.Add(offset.Mul(s.Distance))
}

// Transform derives the pose. It is recomputed on every call.
func (s State) Transform() Transform {
	return Transform{
		Position: s.Eye(),
		Target:   s.Target,
		Up:       WorldUp,
		Zoom:     s.Zoom,
	}
}

// View returns the look-at matrix for the pose
func (t Transform) View() geometry.Mat4 {
	return geometry.LookAt(t.Position, t.Target, t.Up)
}
