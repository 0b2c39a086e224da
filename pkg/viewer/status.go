package viewer

import (
	"fmt"
	"strings"

	"github.com/philipparndt/gowire/pkg/camera"
)

// StatusLines describes the camera and frame for an on-screen overlay
func StatusLines(s camera.State, f Frame) []string {
	return []string{
		fmt.Sprintf("yaw %.1f  pitch %.1f", s.Yaw, s.Pitch),
		fmt.Sprintf("distance %.2f  zoom %.2f", s.Distance, s.Zoom),
		fmt.Sprintf("target (%.2f, %.2f, %.2f)", s.Target.X, s.Target.Y, s.Target.Z),
		fmt.Sprintf("edges %d", len(f.Segments)),
	}
}

// ControlHints describes the pointer bindings of the given settings. Pan is
// left out when it shares the orbit button, since orbit wins that press.
func ControlHints(settings camera.Settings) []string {
	hints := []string{fmt.Sprintf("%s Drag: Orbit", buttonLabel(settings.OrbitButton))}
	if settings.PanButton != settings.OrbitButton {
		hints = append(hints, fmt.Sprintf("%s Drag: Pan", buttonLabel(settings.PanButton)))
	}
	return append(hints, "Mouse Wheel: Zoom")
}

func buttonLabel(b camera.Button) string {
	name := b.String()
	return strings.ToUpper(name[:1]) + name[1:]
}
