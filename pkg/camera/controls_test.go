package camera

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipparndt/gowire/pkg/geometry"
)

func newTestControls() *Controls {
	return NewControls(DefaultState(), DefaultSettings())
}

func TestOrbitClampsPitch(t *testing.T) {
	c := newTestControls()
	require.Equal(t, 20.0, c.State().Pitch)

	c.HandlePointerDown(ButtonRight, 100, 100)
	c.HandlePointerMove(100, -1000)

	assert.Equal(t, 89.0, c.State().Pitch)

	c.HandlePointerMove(100, 5000)
	assert.Equal(t, -89.0, c.State().Pitch)
}

func TestOrbitPitchStaysInRange(t *testing.T) {
	c := newTestControls()
	rng := rand.New(rand.NewSource(7))

	c.HandlePointerDown(ButtonRight, 0, 0)
	x, y := 0.0, 0.0
	for i := 0; i < 1000; i++ {
		x += rng.Float64()*800 - 400
		y += rng.Float64()*800 - 400
		c.HandlePointerMove(x, y)

		pitch := c.State().Pitch
		if pitch < -89 || pitch > 89 {
			t.Fatalf("pitch %v escaped [-89, 89] after %d moves", pitch, i)
		}
	}
}

func TestOrbitDeltas(t *testing.T) {
	c := newTestControls()

	c.HandlePointerDown(ButtonRight, 10, 10)
	c.HandlePointerMove(20, 15)

	s := c.State()
	assert.InDelta(t, 30-10*0.4, s.Yaw, 1e-12)
	assert.InDelta(t, 20-5*0.4, s.Pitch, 1e-12)
}

func TestYawUnbounded(t *testing.T) {
	c := newTestControls()

	c.HandlePointerDown(ButtonRight, 0, 0)
	c.HandlePointerMove(-2000, 0)

	assert.InDelta(t, 30+800.0, c.State().Yaw, 1e-9)
}

func TestMoveWithoutGestureDoesNothing(t *testing.T) {
	c := newTestControls()
	before := c.State()

	c.HandlePointerMove(500, 500)
	c.HandlePointerDown(ButtonLeft, 0, 0)
	c.HandlePointerMove(100, 100)

	assert.Equal(t, before, c.State())
	assert.False(t, c.Dragging())
}

func TestPointerUpEndsGesture(t *testing.T) {
	c := newTestControls()

	c.HandlePointerDown(ButtonRight, 0, 0)
	assert.True(t, c.Dragging())
	c.HandlePointerUp(ButtonRight)
	assert.False(t, c.Dragging())

	before := c.State()
	c.HandlePointerMove(300, 300)
	assert.Equal(t, before, c.State())
}

func TestPanMovesTargetInViewPlane(t *testing.T) {
	initial := DefaultState()
	initial.Yaw = 0
	initial.Distance = 10
	c := NewControls(initial, DefaultSettings())

	c.HandlePointerDown(ButtonMiddle, 0, 0)
	c.HandlePointerMove(50, 25)

	speed := 10 * 0.002
	expected := geometry.NewVector3(-50*speed, 25*speed, 0)
	assert.True(t, c.State().Target.ApproxEqual(expected, 1e-12), "target %v", c.State().Target)
	assert.Equal(t, initial.Pitch, c.State().Pitch)
}

func TestPanRightAxisFollowsYaw(t *testing.T) {
	s := DefaultState()
	s.Yaw = 90
	s.Distance = 1

	moved := s.Pan(-1, 0, DefaultSettings())

	// at yaw 90 the right axis is -Z
	assert.InDelta(t, 0, moved.Target.X, 1e-12)
	assert.InDelta(t, -0.002, moved.Target.Z, 1e-12)
}

func TestOrbitTakesPrecedence(t *testing.T) {
	c := newTestControls()

	c.HandlePointerDown(ButtonMiddle, 0, 0)
	c.HandlePointerDown(ButtonRight, 0, 0)
	c.HandlePointerMove(10, 0)

	assert.Equal(t, DefaultState().Target, c.State().Target)
	assert.InDelta(t, 26, c.State().Yaw, 1e-12)
}

func TestZoomClamp(t *testing.T) {
	c := newTestControls()
	require.Equal(t, 1.0, c.State().Zoom)

	c.HandleWheel(-50)
	assert.Equal(t, 0.1, c.State().Zoom)

	for i := 0; i < 100; i++ {
		c.HandleWheel(3)
	}
	assert.Equal(t, 10.0, c.State().Zoom)
}

func TestZoomMultiplicative(t *testing.T) {
	c := newTestControls()

	c.HandleWheel(1)
	assert.InDelta(t, 1.1, c.State().Zoom, 1e-12)
	c.HandleWheel(-1)
	assert.InDelta(t, 1.1*0.9, c.State().Zoom, 1e-12)
}

func TestTransformEye(t *testing.T) {
	s := State{Target: geometry.NewVector3(1, 2, 3), Distance: 4, Zoom: 2}

	tr := s.Transform()
	assert.True(t, tr.Position.ApproxEqual(geometry.NewVector3(1, 2, 7), 1e-12), "eye %v", tr.Position)
	assert.Equal(t, WorldUp, tr.Up)
	assert.Equal(t, 2.0, tr.Zoom)

	s.Pitch = 90
	s.Yaw = 45
	assert.True(t, s.Eye().ApproxEqual(geometry.NewVector3(1, 6, 3), 1e-12))
}

func TestTransformDistanceInvariant(t *testing.T) {
	c := newTestControls()
	c.HandlePointerDown(ButtonRight, 0, 0)

	for i := 0; i < 20; i++ {
		c.HandlePointerMove(float64(i*37), float64(-i*53))
		tr := c.Transform()
		assert.InDelta(t, 5, tr.Position.Distance(tr.Target), 1e-9)
	}
}

func TestViewNeverNaN(t *testing.T) {
	c := newTestControls()
	c.HandlePointerDown(ButtonRight, 0, 0)
	c.HandlePointerMove(0, -10000)

	view := c.Transform().View()
	for i, v := range view {
		if math.IsNaN(v) {
			t.Fatalf("view[%d] is NaN at the pitch limit", i)
		}
	}
}

func TestPresets(t *testing.T) {
	c := newTestControls()
	c.HandlePointerDown(ButtonMiddle, 0, 0)
	c.HandlePointerMove(100, 100)
	c.HandlePointerUp(ButtonMiddle)

	require.True(t, c.SetView(PresetTop))
	assert.Equal(t, 89.0, c.State().Pitch)
	assert.Equal(t, DefaultState().Target, c.State().Target)

	require.True(t, c.SetView(PresetBottom))
	assert.Equal(t, -89.0, c.State().Pitch)

	require.True(t, c.SetView(PresetRight))
	assert.Equal(t, 90.0, c.State().Yaw)
	eye := c.Transform().Position
	assert.InDelta(t, 5, eye.X, 1e-12)

	assert.False(t, c.SetView("diagonal"))
}

func TestResetAndFitBounds(t *testing.T) {
	c := newTestControls()
	c.HandleWheel(5)
	c.Reset()
	assert.Equal(t, DefaultState(), c.State())

	bbox := geometry.BoundsOf([]geometry.Vector3{
		geometry.NewVector3(2, 2, 2),
		geometry.NewVector3(6, 4, 3),
	})
	c.FitBounds(bbox, 2)
	fitted := math.Sqrt(21) / 2 * 1.1 / 2
	assert.Equal(t, geometry.NewVector3(4, 3, 2.5), c.State().Target)
	assert.Equal(t, 8.0, c.State().Distance)
	assert.InDelta(t, fitted, c.State().Zoom, 1e-12)

	c.HandleWheel(2)
	c.Reset()
	assert.Equal(t, geometry.NewVector3(4, 3, 2.5), c.State().Target)
	assert.InDelta(t, fitted, c.State().Zoom, 1e-12)

	c.FitBounds(geometry.NewBoundingBox(), 2)
	assert.Equal(t, 8.0, c.State().Distance)
}

func TestFitBoundsZoomRange(t *testing.T) {
	huge := geometry.BoundsOf([]geometry.Vector3{
		geometry.NewVector3(-100, -100, -100),
		geometry.NewVector3(100, 100, 100),
	})
	c := newTestControls()
	c.FitBounds(huge, 2)
	assert.Equal(t, 10.0, c.State().Zoom)
	assert.Equal(t, 400.0, c.State().Distance)

	tiny := geometry.BoundsOf([]geometry.Vector3{
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(0.01, 0.01, 0.01),
	})
	c.FitBounds(tiny, 2)
	assert.Equal(t, 0.1, c.State().Zoom)
	assert.Equal(t, 1.0, c.State().Distance)

	c = newTestControls()
	c.FitBounds(tiny, 0)
	assert.Equal(t, 1.0, c.State().Zoom)
}

func TestNewControlsClampsInitial(t *testing.T) {
	s := DefaultState()
	s.Pitch = 120
	s.Zoom = 50

	c := NewControls(s, DefaultSettings())
	assert.Equal(t, 89.0, c.State().Pitch)
	assert.Equal(t, 10.0, c.State().Zoom)
}

func TestSettingsValidate(t *testing.T) {
	assert.NoError(t, DefaultSettings().Validate())

	s := DefaultSettings()
	s.PitchLimit = 90
	s.MinZoom = 0
	assert.Error(t, s.Validate())

	s = DefaultSettings()
	s.MaxZoom = 0.05
	assert.Error(t, s.Validate())
}

func TestSettingsValidateRejectsNonFinite(t *testing.T) {
	fields := map[string]func(*Settings, float64){
		"orbit sensitivity": func(s *Settings, v float64) { s.OrbitSensitivity = v },
		"zoom sensitivity":  func(s *Settings, v float64) { s.ZoomSensitivity = v },
		"pan factor":        func(s *Settings, v float64) { s.PanFactor = v },
		"min zoom":          func(s *Settings, v float64) { s.MinZoom = v },
		"max zoom":          func(s *Settings, v float64) { s.MaxZoom = v },
		"pitch limit":       func(s *Settings, v float64) { s.PitchLimit = v },
	}
	for name, set := range fields {
		for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
			s := DefaultSettings()
			set(&s, v)
			assert.Error(t, s.Validate(), "%s = %v", name, v)
		}
	}
}

func TestStateValidate(t *testing.T) {
	assert.NoError(t, DefaultState().Validate())

	s := DefaultState()
	s.Pitch = math.NaN()
	assert.Error(t, s.Validate())

	s = DefaultState()
	s.Zoom = math.Inf(1)
	assert.Error(t, s.Validate())

	s = DefaultState()
	s.Target.X = math.NaN()
	assert.Error(t, s.Validate())

	s = DefaultState()
	s.Distance = 0
	assert.Error(t, s.Validate())
}

func TestParseButton(t *testing.T) {
	for _, b := range []Button{ButtonLeft, ButtonMiddle, ButtonRight} {
		parsed, err := ParseButton(b.String())
		require.NoError(t, err)
		assert.Equal(t, b, parsed)
	}
	_, err := ParseButton("fourth")
	assert.Error(t, err)
}
