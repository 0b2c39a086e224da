package shape

import "github.com/philipparndt/gowire/pkg/geometry"

// Pyramid has a square base in the +z half-extent plane and its apex at -z
type Pyramid struct {
	Base
}

// NewPyramid creates a pyramid centered on position with the given full extents
func NewPyramid(position, scale geometry.Vector3) *Pyramid {
	b := NewBase(position)
	b.Scale = scale
	return &Pyramid{Base: b}
}

// Kind returns KindPyramid
func (p *Pyramid) Kind() Kind { return KindPyramid }

// Corners returns the base as 0-3 (same winding as the cube's top face) and the apex as 4
func (p *Pyramid) Corners() []geometry.Vector3 {
	hx, hy, hz := p.halfExtents()
	c := p.Position
	return []geometry.Vector3{
		{X: c.X - hx, Y: c.Y - hy, Z: c.Z + hz},
		{X: c.X + hx, Y: c.Y - hy, Z: c.Z + hz},
		{X: c.X + hx, Y: c.Y + hy, Z: c.Z + hz},
		{X: c.X - hx, Y: c.Y + hy, Z: c.Z + hz},
		{X: c.X, Y: c.Y, Z: c.Z - hz},
	}
}

// EdgeIndices returns the 4 base edges and the 4 lateral edges
func (p *Pyramid) EdgeIndices() []Edge {
	return PyramidEdges()
}

// PyramidApex is the corner index of the apex
const PyramidApex = 4

// PyramidEdges returns the pyramid topology for the corner order of Pyramid.Corners
func PyramidEdges() []Edge {
	return []Edge{
		{0, 1}, {1, 2}, {2, 3}, {3, 0},
		{0, PyramidApex}, {1, PyramidApex}, {2, PyramidApex}, {3, PyramidApex},
	}
}
