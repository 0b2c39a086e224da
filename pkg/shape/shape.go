// Package shape generates the corner lists and edge topology of the
// wireframe solids the viewer draws.
package shape

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"github.com/philipparndt/gowire/pkg/geometry"
)

// ErrUnknownKind is returned by New for an unsupported shape kind
var ErrUnknownKind = errors.New("unknown shape kind")

// Kind names a shape variant
type Kind string

const (
	KindCube    Kind = "cube"
	KindPyramid Kind = "pyramid"
	KindSphere  Kind = "sphere"
)

// Kinds lists every supported variant
var Kinds = []Kind{KindCube, KindPyramid, KindSphere}

// Edge is a pair of indices into a shape's corner list
type Edge [2]int

// Color is an RGBA color with components in [0, 1]
type Color [4]float64

// DefaultColor is opaque white
var DefaultColor = Color{1, 1, 1, 1}

// Clamp limits every component to [0, 1]
func (c Color) Clamp() Color {
	for i, v := range c {
		c[i] = math.Max(0, math.Min(1, v))
	}
	return c
}

// RGBA converts the color for image rasterization
func (c Color) RGBA() color.RGBA {
	c = c.Clamp()
	return color.RGBA{
		R: uint8(math.Round(c[0] * 255)),
		G: uint8(math.Round(c[1] * 255)),
		B: uint8(math.Round(c[2] * 255)),
		A: uint8(math.Round(c[3] * 255)),
	}
}

// Shape is a wireframe solid: an ordered corner list plus the index pairs
// that connect them. The edge topology only makes sense against the corner
// order of the same variant.
type Shape interface {
	Kind() Kind
	Attributes() Base
	Corners() []geometry.Vector3
	EdgeIndices() []Edge
}

// Base holds the attributes every shape carries
type Base struct {
	Position geometry.Vector3 // Center
	Radius   float64          // Only used by curved shapes
	Scale    geometry.Vector3 // Per-axis extent multiplier
	Color    Color
}

// NewBase creates attributes with unit scale and the default color
func NewBase(position geometry.Vector3) Base {
	return Base{
		Position: position,
		Scale:    geometry.NewVector3(1, 1, 1),
		Color:    DefaultColor,
	}
}

// Attributes returns a copy of the shared attributes
func (b Base) Attributes() Base {
	return b
}

// PositionArray returns the position in GL uniform layout
func (b Base) PositionArray() [3]float32 {
	return [3]float32{float32(b.Position.X), float32(b.Position.Y), float32(b.Position.Z)}
}

// ScaleArray returns the scale in GL uniform layout
func (b Base) ScaleArray() [3]float32 {
	return [3]float32{float32(b.Scale.X), float32(b.Scale.Y), float32(b.Scale.Z)}
}

// ColorArray returns the color in GL uniform layout
func (b Base) ColorArray() [4]float32 {
	return [4]float32{float32(b.Color[0]), float32(b.Color[1]), float32(b.Color[2]), float32(b.Color[3])}
}

// halfExtents returns scale/2 per axis
func (b Base) halfExtents() (hx, hy, hz float64) {
	return b.Scale.X / 2, b.Scale.Y / 2, b.Scale.Z / 2
}

// New builds a shape of the given kind. lat and lon only apply to spheres;
// zero selects the default segment counts.
func New(kind Kind, base Base, lat, lon int) (Shape, error) {
	switch kind {
	case KindCube:
		return &Cube{Base: base}, nil
	case KindPyramid:
		return &Pyramid{Base: base}, nil
	case KindSphere:
		if lat == 0 {
			lat = DefaultLatSegments
		}
		if lon == 0 {
			lon = DefaultLonSegments
		}
		return &Sphere{Base: base, LatSegments: lat, LonSegments: lon}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

// Segments resolves a shape's topology into world-space line segments
func Segments(s Shape) [][2]geometry.Vector3 {
	corners := s.Corners()
	edges := s.EdgeIndices()
	segments := make([][2]geometry.Vector3, 0, len(edges))
	for _, e := range edges {
		segments = append(segments, [2]geometry.Vector3{corners[e[0]], corners[e[1]]})
	}
	return segments
}
