package shape

import "github.com/philipparndt/gowire/pkg/geometry"

// Cube is an axis-aligned box spanning position ± scale/2
type Cube struct {
	Base
}

// NewCube creates a box centered on position with the given full extents
func NewCube(position, scale geometry.Vector3) *Cube {
	b := NewBase(position)
	b.Scale = scale
	return &Cube{Base: b}
}

// Kind returns KindCube
func (c *Cube) Kind() Kind { return KindCube }

// Corners returns the bottom face (-z) as 0-3 and the top face (+z) as 4-7,
// both wound the same way.
func (c *Cube) Corners() []geometry.Vector3 {
	hx, hy, hz := c.halfExtents()
	p := c.Position
	return []geometry.Vector3{
		{X: p.X - hx, Y: p.Y - hy, Z: p.Z - hz},
		{X: p.X + hx, Y: p.Y - hy, Z: p.Z - hz},
		{X: p.X + hx, Y: p.Y + hy, Z: p.Z - hz},
		{X: p.X - hx, Y: p.Y + hy, Z: p.Z - hz},
		{X: p.X - hx, Y: p.Y - hy, Z: p.Z + hz},
		{X: p.X + hx, Y: p.Y - hy, Z: p.Z + hz},
		{X: p.X + hx, Y: p.Y + hy, Z: p.Z + hz},
		{X: p.X - hx, Y: p.Y + hy, Z: p.Z + hz},
	}
}

// EdgeIndices returns the 12 box edges
func (c *Cube) EdgeIndices() []Edge {
	return CubeEdges()
}

// CubeEdges returns the box topology for the corner order of Cube.Corners
func CubeEdges() []Edge {
	return []Edge{
		{0, 1}, {1, 2}, {2, 3}, {3, 0}, // bottom
		{4, 5}, {5, 6}, {6, 7}, {7, 4}, // top
		{0, 4}, {1, 5}, {2, 6}, {3, 7}, // vertical
	}
}
