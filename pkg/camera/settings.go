package camera

import (
	"errors"
	"fmt"
	"math"
)

// Button identifies a pointer button as reported by the input adapter
type Button int

const (
	ButtonLeft Button = iota
	ButtonMiddle
	ButtonRight
)

func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonMiddle:
		return "middle"
	case ButtonRight:
		return "right"
	default:
		return fmt.Sprintf("button(%d)", int(b))
	}
}

// ParseButton converts "left", "middle" or "right" to a Button
func ParseButton(name string) (Button, error) {
	switch name {
	case "left":
		return ButtonLeft, nil
	case "middle":
		return ButtonMiddle, nil
	case "right":
		return ButtonRight, nil
	default:
		return 0, fmt.Errorf("unknown button %q", name)
	}
}

// Settings holds the input tuning of the camera. The defaults are the felt
// behavior users are used to; changing them changes feel, not correctness.
type Settings struct {
	OrbitSensitivity float64 // Degrees per pixel of drag
	ZoomSensitivity  float64 // Relative zoom change per wheel unit
	PanFactor        float64 // Pan speed per pixel, multiplied by the orbit distance
	MinZoom          float64
	MaxZoom          float64
	PitchLimit       float64 // Degrees; must stay below 90 to keep the view basis defined
	OrbitButton      Button
	PanButton        Button
}

// DefaultSettings returns the stock tuning
func DefaultSettings() Settings {
	return Settings{
		OrbitSensitivity: 0.4,
		ZoomSensitivity:  0.1,
		PanFactor:        0.002,
		MinZoom:          0.1,
		MaxZoom:          10,
		PitchLimit:       89,
		OrbitButton:      ButtonRight,
		PanButton:        ButtonMiddle,
	}
}

// Validate reports settings that would break the camera invariants
func (s Settings) Validate() error {
	var errs []error
	if !finite(s.OrbitSensitivity, s.ZoomSensitivity, s.PanFactor, s.MinZoom, s.MaxZoom, s.PitchLimit) {
		errs = append(errs, errors.New("tuning values must be finite"))
	}
	if s.PitchLimit <= 0 || s.PitchLimit >= 90 {
		errs = append(errs, fmt.Errorf("pitch limit %v must be in (0, 90)", s.PitchLimit))
	}
	if s.MinZoom <= 0 {
		errs = append(errs, fmt.Errorf("min zoom %v must be positive", s.MinZoom))
	}
	if s.MaxZoom < s.MinZoom {
		errs = append(errs, fmt.Errorf("max zoom %v is below min zoom %v", s.MaxZoom, s.MinZoom))
	}
	if s.OrbitSensitivity < 0 || s.ZoomSensitivity < 0 || s.PanFactor < 0 {
		errs = append(errs, errors.New("sensitivities must not be negative"))
	}
	return errors.Join(errs...)
}

func finite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
