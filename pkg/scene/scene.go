// Package scene describes what the viewer shows: the shapes, the initial
// camera and its tuning, and the projection volume.
package scene

import (
	"errors"
	"fmt"
	"math"

	"github.com/philipparndt/gowire/pkg/camera"
	"github.com/philipparndt/gowire/pkg/geometry"
	"github.com/philipparndt/gowire/pkg/shape"
	"github.com/philipparndt/gowire/pkg/viewer"
)

// ErrInvalidScene wraps every validation failure
var ErrInvalidScene = errors.New("invalid scene")

// Scene is the decoded scene file. Omitted values fall back to defaults.
type Scene struct {
	Camera     CameraConfig     `yaml:"camera,omitempty" toml:"camera,omitempty" json:"camera"`
	Projection ProjectionConfig `yaml:"projection,omitempty" toml:"projection,omitempty" json:"projection"`
	Shapes     []ShapeConfig    `yaml:"shapes,omitempty" toml:"shapes,omitempty" json:"shapes"`
}

// CameraConfig sets the initial view and the input tuning
type CameraConfig struct {
	Target   []float64 `yaml:"target,omitempty" toml:"target,omitempty" json:"target,omitempty"`
	Distance *float64  `yaml:"distance,omitempty" toml:"distance,omitempty" json:"distance,omitempty"`
	Pitch    *float64  `yaml:"pitch,omitempty" toml:"pitch,omitempty" json:"pitch,omitempty"`
	Yaw      *float64  `yaml:"yaw,omitempty" toml:"yaw,omitempty" json:"yaw,omitempty"`
	Zoom     *float64  `yaml:"zoom,omitempty" toml:"zoom,omitempty" json:"zoom,omitempty"`
	Fit      bool      `yaml:"fit,omitempty" toml:"fit,omitempty" json:"fit,omitempty"` // Center on the shapes' bounds

	OrbitSensitivity *float64 `yaml:"orbit_sensitivity,omitempty" toml:"orbit_sensitivity,omitempty" json:"orbit_sensitivity,omitempty"`
	ZoomSensitivity  *float64 `yaml:"zoom_sensitivity,omitempty" toml:"zoom_sensitivity,omitempty" json:"zoom_sensitivity,omitempty"`
	PanFactor        *float64 `yaml:"pan_factor,omitempty" toml:"pan_factor,omitempty" json:"pan_factor,omitempty"`
	MinZoom          *float64 `yaml:"min_zoom,omitempty" toml:"min_zoom,omitempty" json:"min_zoom,omitempty"`
	MaxZoom          *float64 `yaml:"max_zoom,omitempty" toml:"max_zoom,omitempty" json:"max_zoom,omitempty"`
	PitchLimit       *float64 `yaml:"pitch_limit,omitempty" toml:"pitch_limit,omitempty" json:"pitch_limit,omitempty"`
	OrbitButton      string   `yaml:"orbit_button,omitempty" toml:"orbit_button,omitempty" json:"orbit_button,omitempty"`
	PanButton        string   `yaml:"pan_button,omitempty" toml:"pan_button,omitempty" json:"pan_button,omitempty"`
}

// ProjectionConfig overrides the orthographic volume
type ProjectionConfig struct {
	BaseSize *float64 `yaml:"base_size,omitempty" toml:"base_size,omitempty" json:"base_size,omitempty"`
	Near     *float64 `yaml:"near,omitempty" toml:"near,omitempty" json:"near,omitempty"`
	Far      *float64 `yaml:"far,omitempty" toml:"far,omitempty" json:"far,omitempty"`
}

// ShapeConfig describes one solid
type ShapeConfig struct {
	Type        string    `yaml:"type" toml:"type" json:"type"`
	Position    []float64 `yaml:"position,omitempty" toml:"position,omitempty" json:"position,omitempty"`
	Scale       []float64 `yaml:"scale,omitempty" toml:"scale,omitempty" json:"scale,omitempty"`
	Radius      *float64  `yaml:"radius,omitempty" toml:"radius,omitempty" json:"radius,omitempty"`
	Color       []float64 `yaml:"color,omitempty" toml:"color,omitempty" json:"color,omitempty"`
	LatSegments int       `yaml:"lat_segments,omitempty" toml:"lat_segments,omitempty" json:"lat_segments,omitempty"`
	LonSegments int       `yaml:"lon_segments,omitempty" toml:"lon_segments,omitempty" json:"lon_segments,omitempty"`
}

func ptr(v float64) *float64 { return &v }

// Default returns the demo scene: a cube, a pyramid and a globe side by side
func Default() *Scene {
	return &Scene{
		Camera: CameraConfig{Zoom: ptr(2)},
		Shapes: []ShapeConfig{
			{Type: "cube", Position: []float64{-3, 0, 0}, Scale: []float64{2, 2, 2}, Color: []float64{1, 0.5, 0, 1}},
			{Type: "pyramid", Position: []float64{0, 0, 0}, Scale: []float64{2, 2, 2}, Color: []float64{0.2, 0.8, 0.9, 1}},
			{Type: "sphere", Position: []float64{3, 0, 0}, Radius: ptr(1), LatSegments: 12, LonSegments: 24},
		},
	}
}

func finite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func vector(name string, values []float64, fallback geometry.Vector3) (geometry.Vector3, error) {
	if values == nil {
		return fallback, nil
	}
	v, err := geometry.Vector3FromSlice(values)
	if err != nil {
		return geometry.Vector3{}, fmt.Errorf("%s: %w", name, err)
	}
	if !v.IsFinite() {
		return geometry.Vector3{}, fmt.Errorf("%s: non-finite component in %v", name, values)
	}
	return v, nil
}

func colorOf(values []float64) (shape.Color, error) {
	switch len(values) {
	case 0:
		return shape.DefaultColor, nil
	case 3:
		values = append(values[:3:3], 1)
	case 4:
	default:
		return shape.Color{}, fmt.Errorf("color needs 3 or 4 components, got %d", len(values))
	}
	if !finite(values...) {
		return shape.Color{}, fmt.Errorf("color: non-finite component in %v", values)
	}
	return shape.Color{values[0], values[1], values[2], values[3]}.Clamp(), nil
}

// Build validates the shape entries and generates the shapes
func (s *Scene) Build() ([]shape.Shape, error) {
	shapes := make([]shape.Shape, 0, len(s.Shapes))
	for i, cfg := range s.Shapes {
		sh, err := cfg.build()
		if err != nil {
			return nil, fmt.Errorf("%w: shape %d (%s): %w", ErrInvalidScene, i, cfg.Type, err)
		}
		shapes = append(shapes, sh)
	}
	return shapes, nil
}

func (c ShapeConfig) build() (shape.Shape, error) {
	position, err := vector("position", c.Position, geometry.Vector3{})
	if err != nil {
		return nil, err
	}
	scale, err := vector("scale", c.Scale, geometry.NewVector3(1, 1, 1))
	if err != nil {
		return nil, err
	}
	if scale.X < 0 || scale.Y < 0 || scale.Z < 0 {
		return nil, fmt.Errorf("scale %v must not be negative", scale)
	}
	col, err := colorOf(c.Color)
	if err != nil {
		return nil, err
	}

	radius := 1.0
	if c.Radius != nil {
		radius = *c.Radius
	}
	if !finite(radius) || radius < 0 {
		return nil, fmt.Errorf("radius %v must be a non-negative number", radius)
	}
	if c.LatSegments < 0 || c.LonSegments < 0 {
		return nil, fmt.Errorf("segment counts must not be negative")
	}

	base := shape.Base{Position: position, Radius: radius, Scale: scale, Color: col}
	return shape.New(shape.Kind(c.Type), base, c.LatSegments, c.LonSegments)
}

// Settings returns the camera tuning with the scene's overrides applied
func (s *Scene) Settings() (camera.Settings, error) {
	settings := camera.DefaultSettings()
	c := s.Camera

	overrides := []struct {
		src *float64
		dst *float64
	}{
		{c.OrbitSensitivity, &settings.OrbitSensitivity},
		{c.ZoomSensitivity, &settings.ZoomSensitivity},
		{c.PanFactor, &settings.PanFactor},
		{c.MinZoom, &settings.MinZoom},
		{c.MaxZoom, &settings.MaxZoom},
		{c.PitchLimit, &settings.PitchLimit},
	}
	for _, o := range overrides {
		if o.src != nil {
			*o.dst = *o.src
		}
	}

	var err error
	if c.OrbitButton != "" {
		if settings.OrbitButton, err = camera.ParseButton(c.OrbitButton); err != nil {
			return settings, fmt.Errorf("%w: orbit_button: %w", ErrInvalidScene, err)
		}
	}
	if c.PanButton != "" {
		if settings.PanButton, err = camera.ParseButton(c.PanButton); err != nil {
			return settings, fmt.Errorf("%w: pan_button: %w", ErrInvalidScene, err)
		}
	}
	if settings.OrbitButton == settings.PanButton {
		return settings, fmt.Errorf("%w: orbit and pan share the %s button", ErrInvalidScene, settings.OrbitButton)
	}
	if err := settings.Validate(); err != nil {
		return settings, fmt.Errorf("%w: %w", ErrInvalidScene, err)
	}
	return settings, nil
}

// InitialState returns the starting camera state with the scene's overrides applied
func (s *Scene) InitialState() (camera.State, error) {
	state := camera.DefaultState()
	c := s.Camera

	target, err := vector("target", c.Target, state.Target)
	if err != nil {
		return state, fmt.Errorf("%w: camera %w", ErrInvalidScene, err)
	}
	state.Target = target

	for _, o := range []struct {
		src *float64
		dst *float64
	}{
		{c.Distance, &state.Distance},
		{c.Pitch, &state.Pitch},
		{c.Yaw, &state.Yaw},
		{c.Zoom, &state.Zoom},
	} {
		if o.src != nil {
			*o.dst = *o.src
		}
	}

	if !finite(state.Distance, state.Pitch, state.Yaw, state.Zoom) {
		return state, fmt.Errorf("%w: camera values must be finite", ErrInvalidScene)
	}
	if state.Distance <= 0 {
		return state, fmt.Errorf("%w: camera distance %v must be positive", ErrInvalidScene, state.Distance)
	}
	return state, nil
}

// ProjectionVolume returns the projection volume with the scene's overrides applied
func (s *Scene) ProjectionVolume() (viewer.Projection, error) {
	p := viewer.DefaultProjection()
	c := s.Projection
	if c.BaseSize != nil {
		p.BaseSize = *c.BaseSize
	}
	if c.Near != nil {
		p.Near = *c.Near
	}
	if c.Far != nil {
		p.Far = *c.Far
	}
	if !finite(p.BaseSize, p.Near, p.Far) || p.BaseSize <= 0 {
		return p, fmt.Errorf("%w: projection base size %v must be positive", ErrInvalidScene, p.BaseSize)
	}
	if p.Near == p.Far {
		return p, fmt.Errorf("%w: projection near and far must differ", ErrInvalidScene)
	}
	return p, nil
}

// Viewer bundles everything a frontend needs to start drawing
type Viewer struct {
	Shapes     []shape.Shape
	Controls   *camera.Controls
	Projection viewer.Projection
}

// Setup builds the shapes, the camera controls and the projection
func (s *Scene) Setup() (*Viewer, error) {
	shapes, err := s.Build()
	if err != nil {
		return nil, err
	}
	settings, err := s.Settings()
	if err != nil {
		return nil, err
	}
	state, err := s.InitialState()
	if err != nil {
		return nil, err
	}
	projection, err := s.ProjectionVolume()
	if err != nil {
		return nil, err
	}

	controls := camera.NewControls(state, settings)
	if s.Camera.Fit {
		bbox := Bounds(shapes)
		controls.FitBounds(bbox, projection.BaseSize)
		if !bbox.IsEmpty() {
			projection = projection.CoverDepth(controls.State().Distance, bbox.Diagonal()/2)
		}
	}
	return &Viewer{Shapes: shapes, Controls: controls, Projection: projection}, nil
}

// Bounds returns the box around every corner of every shape
func Bounds(shapes []shape.Shape) geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for _, s := range shapes {
		bbox.Union(geometry.BoundsOf(s.Corners()))
	}
	return bbox
}
