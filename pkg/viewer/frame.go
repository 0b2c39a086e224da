package viewer

import (
	"math"

	"github.com/philipparndt/gowire/pkg/camera"
	"github.com/philipparndt/gowire/pkg/geometry"
	"github.com/philipparndt/gowire/pkg/shape"
)

// Projection describes the orthographic view volume. BaseSize is the half
// height of the visible area at zoom 1; Near and Far bound camera-space depth.
type Projection struct {
	BaseSize float64
	Near     float64
	Far      float64
}

// DefaultProjection returns a half height of 2 and a depth range of [-10, 10]
func DefaultProjection() Projection {
	return Projection{
		BaseSize: 2,
		Near:     -10,
		Far:      10,
	}
}

// HalfExtents returns the visible half width and half height. Zoom scales the
// visible world area directly instead of moving the camera.
func (p Projection) HalfExtents(zoom, aspect float64) (halfWidth, halfHeight float64) {
	halfHeight = p.BaseSize * zoom
	return halfHeight * aspect, halfHeight
}

// Matrix returns the projection for the given zoom and width/height aspect
func (p Projection) Matrix(zoom, aspect float64) geometry.Mat4 {
	halfWidth, halfHeight := p.HalfExtents(zoom, aspect)
	return geometry.OrthoSymmetric(halfWidth, halfHeight, p.Near, p.Far)
}

// CoverDepth widens Near and Far so a sphere of the given radius centered
// distance units in front of the camera lies inside the depth range, with one
// unit to spare on each side. A range that already covers it is unchanged.
func (p Projection) CoverDepth(distance, radius float64) Projection {
	if p.Near > p.Far {
		return p
	}
	p.Near = math.Min(p.Near, distance-radius-1)
	p.Far = math.Max(p.Far, distance+radius+1)
	return p
}

// InDepthRange reports whether a segment with clip depths z1 and z2 can reach
// the visible depth range. Segments entirely in front of the near plane or
// behind the far plane are culled by every renderer.
func InDepthRange(z1, z2 float64) bool {
	if z1 < -1 && z2 < -1 {
		return false
	}
	return !(z1 > 1 && z2 > 1)
}

// Segment is one drawn edge in camera space
type Segment struct {
	From  geometry.Vector3
	To    geometry.Vector3
	Color shape.Color
	Shape int // Index into the shapes passed to BuildFrame
}

// Frame is everything a line-list draw call needs for one tick
type Frame struct {
	Camera     camera.Transform
	View       geometry.Mat4
	Projection geometry.Mat4
	Vertices   []float32 // Camera-space xyz, two vertices per edge
	Colors     []float32 // RGBA per vertex
	Segments   []Segment
}

// BuildFrame transforms every edge of every shape into camera space and
// flattens them into a vertex buffer in line-list order.
func BuildFrame(t camera.Transform, shapes []shape.Shape, proj Projection, aspect float64) Frame {
	if aspect <= 0 {
		aspect = 1
	}

	view := geometry.LookAt(t.Position, t.Target, t.Up)
	frame := Frame{
		Camera:     t,
		View:       view,
		Projection: proj.Matrix(t.Zoom, aspect),
	}

	for i, s := range shapes {
		corners := s.Corners()
		col := s.Attributes().Color
		for _, e := range s.EdgeIndices() {
			from := view.TransformPoint(corners[e[0]])
			to := view.TransformPoint(corners[e[1]])
			frame.Segments = append(frame.Segments, Segment{From: from, To: to, Color: col, Shape: i})
			frame.Vertices = append(frame.Vertices,
				float32(from.X), float32(from.Y), float32(from.Z),
				float32(to.X), float32(to.Y), float32(to.Z),
			)
			for j := 0; j < 2; j++ {
				frame.Colors = append(frame.Colors,
					float32(col[0]), float32(col[1]), float32(col[2]), float32(col[3]))
			}
		}
	}
	return frame
}

// VertexCount returns the number of vertices in the buffer
func (f Frame) VertexCount() int {
	return len(f.Vertices) / 3
}

// ToScreen projects a camera-space point to pixel coordinates with y pointing
// down. depth is the clip-space z: -1 at the near plane, 1 at the far plane.
func (f Frame) ToScreen(p geometry.Vector3, width, height float64) (x, y, depth float64) {
	clip := f.Projection.TransformPoint(p)
	x = (clip.X + 1) / 2 * width
	y = (1 - clip.Y) / 2 * height
	return x, y, clip.Z
}

// Unproject maps a pixel back to the world point on the plane through the
// camera target facing the viewer.
func (f Frame) Unproject(screenX, screenY, width, height float64) (geometry.Vector3, bool) {
	viewProj := f.Projection.Mul(f.View)
	inv, ok := viewProj.Inverse()
	if !ok {
		return geometry.Vector3{}, false
	}

	targetDepth := viewProj.TransformPoint(f.Camera.Target).Z
	ndc := geometry.NewVector3(
		2*screenX/width-1,
		1-2*screenY/height,
		targetDepth,
	)
	return inv.TransformPoint(ndc), true
}
