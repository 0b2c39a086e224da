package viewer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipparndt/gowire/pkg/camera"
	"github.com/philipparndt/gowire/pkg/geometry"
	"github.com/philipparndt/gowire/pkg/shape"
)

func frontTransform(zoom float64) camera.Transform {
	return camera.State{
		Target:   geometry.NewVector3(0, 0, 0),
		Distance: 5,
		Zoom:     zoom,
	}.Transform()
}

func testShapes() []shape.Shape {
	cube := shape.NewCube(geometry.NewVector3(0, 0, 0), geometry.NewVector3(2, 2, 2))
	cube.Color = shape.Color{1, 0.5, 0, 1}
	pyramid := shape.NewPyramid(geometry.NewVector3(3, 0, 0), geometry.NewVector3(2, 2, 2))
	return []shape.Shape{cube, pyramid}
}

func TestBuildFrameBuffers(t *testing.T) {
	frame := BuildFrame(frontTransform(1), testShapes(), DefaultProjection(), 1)

	require.Len(t, frame.Segments, 12+8)
	assert.Equal(t, 2*len(frame.Segments), frame.VertexCount())
	assert.Len(t, frame.Vertices, 3*frame.VertexCount())
	assert.Len(t, frame.Colors, 4*frame.VertexCount())

	assert.Equal(t, float32(1), frame.Colors[0])
	assert.Equal(t, float32(0.5), frame.Colors[1])
	assert.Equal(t, 0, frame.Segments[0].Shape)
	assert.Equal(t, 1, frame.Segments[12].Shape)
	assert.Equal(t, float32(1), frame.Colors[4*24])
}

func TestBuildFrameCameraSpace(t *testing.T) {
	frame := BuildFrame(frontTransform(1), testShapes(), DefaultProjection(), 1)

	// first cube edge runs from (-1,-1,-1) to (1,-1,-1); the eye sits at z=5
	first := frame.Segments[0]
	assert.True(t, first.From.ApproxEqual(geometry.NewVector3(-1, -1, -6), 1e-9), "from %v", first.From)
	assert.True(t, first.To.ApproxEqual(geometry.NewVector3(1, -1, -6), 1e-9), "to %v", first.To)
	assert.InDelta(t, -6, frame.Vertices[2], 1e-6)
}

func TestProjectionZoomScalesExtent(t *testing.T) {
	p := DefaultProjection()

	halfWidth, halfHeight := p.HalfExtents(1, 16.0/9.0)
	assert.InDelta(t, 2*16.0/9.0, halfWidth, 1e-12)
	assert.Equal(t, 2.0, halfHeight)

	_, zoomed := p.HalfExtents(3, 1)
	assert.Equal(t, 6.0, zoomed)

	m := p.Matrix(2, 2)
	edge := m.TransformPoint(geometry.NewVector3(8, 4, 0))
	assert.True(t, edge.ApproxEqual(geometry.NewVector3(1, 1, 0), 1e-12), "edge %v", edge)
}

func TestToScreen(t *testing.T) {
	frame := BuildFrame(frontTransform(1), nil, DefaultProjection(), 2)

	x, y, _ := frame.ToScreen(geometry.NewVector3(0, 0, -5), 200, 100)
	assert.InDelta(t, 100, x, 1e-9)
	assert.InDelta(t, 50, y, 1e-9)

	x, y, depth := frame.ToScreen(geometry.NewVector3(4, 2, -5), 200, 100)
	assert.InDelta(t, 200, x, 1e-9)
	assert.InDelta(t, 0, y, 1e-9)
	assert.InDelta(t, 0.5, depth, 1e-9)
}

func TestUnproject(t *testing.T) {
	tr := camera.State{Target: geometry.NewVector3(1, 2, 0), Distance: 5, Pitch: 30, Yaw: -40, Zoom: 1.5}.Transform()
	frame := BuildFrame(tr, nil, DefaultProjection(), 1.5)

	world, ok := frame.Unproject(150, 50, 300, 100)
	require.True(t, ok)
	assert.True(t, world.ApproxEqual(tr.Target, 1e-9), "center pixel should unproject to the target, got %v", world)

	point := geometry.NewVector3(1.5, 2.5, 0.2)
	sx, sy, _ := frame.ToScreen(frame.View.TransformPoint(point), 300, 100)
	back, ok := frame.Unproject(sx, sy, 300, 100)
	require.True(t, ok)

	// the result lies on the same view ray as the original point
	viewBack := frame.View.TransformPoint(back)
	viewPoint := frame.View.TransformPoint(point)
	assert.InDelta(t, viewPoint.X, viewBack.X, 1e-9)
	assert.InDelta(t, viewPoint.Y, viewBack.Y, 1e-9)
}

func TestBuildFrameDefaultsAspect(t *testing.T) {
	a := BuildFrame(frontTransform(1), nil, DefaultProjection(), 0)
	b := BuildFrame(frontTransform(1), nil, DefaultProjection(), 1)

	assert.Equal(t, b.Projection, a.Projection)
}

func TestInDepthRange(t *testing.T) {
	assert.True(t, InDepthRange(0, 0.5))
	assert.True(t, InDepthRange(-3, 0))
	assert.True(t, InDepthRange(-2, 2))
	assert.False(t, InDepthRange(-1.5, -1.1))
	assert.False(t, InDepthRange(1.1, 4))
}

func TestCoverDepth(t *testing.T) {
	p := DefaultProjection()
	assert.Equal(t, p, p.CoverDepth(5, 2))

	covered := p.CoverDepth(40, 17)
	assert.Equal(t, -10.0, covered.Near)
	assert.Equal(t, 58.0, covered.Far)

	// a sphere at distance 40 with radius 17 sits inside [-1, 1] clip depth
	m := covered.Matrix(1, 1)
	assert.InDelta(t, 0, m.TransformPoint(geometry.NewVector3(0, 0, -(40+17+1))).Z-1, 1e-12)
	assert.Less(t, m.TransformPoint(geometry.NewVector3(0, 0, -(40+17))).Z, 1.0)

	inverted := Projection{BaseSize: 2, Near: 10, Far: -10}
	assert.Equal(t, inverted, inverted.CoverDepth(40, 17))
}
