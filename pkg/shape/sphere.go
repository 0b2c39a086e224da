package shape

import (
	"math"

	"github.com/philipparndt/gowire/pkg/geometry"
)

const (
	DefaultLatSegments = 12
	DefaultLonSegments = 24

	minLatSegments = 2
	minLonSegments = 3
)

// Sphere is a wireframe globe: two poles joined by latitude rings.
// Per-axis scale turns it into an ellipsoid.
type Sphere struct {
	Base
	LatSegments int
	LonSegments int
}

// NewSphere creates a globe with the given segment counts
func NewSphere(position geometry.Vector3, radius float64, scale geometry.Vector3, lat, lon int) *Sphere {
	b := NewBase(position)
	b.Radius = radius
	b.Scale = scale
	return &Sphere{Base: b, LatSegments: lat, LonSegments: lon}
}

// Kind returns KindSphere
func (s *Sphere) Kind() Kind { return KindSphere }

// segments returns the segment counts raised to the smallest non-degenerate globe
func (s *Sphere) segments() (lat, lon int) {
	return max(s.LatSegments, minLatSegments), max(s.LonSegments, minLonSegments)
}

// Corners returns the top pole, (lat-1) rings of lon points from top to
// bottom, then the bottom pole.
func (s *Sphere) Corners() []geometry.Vector3 {
	lat, lon := s.segments()
	c := s.Position
	rx := s.Radius * s.Scale.X
	ry := s.Radius * s.Scale.Y
	rz := s.Radius * s.Scale.Z

	corners := make([]geometry.Vector3, 0, SphereCornerCount(lat, lon))
	corners = append(corners, geometry.NewVector3(c.X, c.Y, c.Z+rz))

	for i := 1; i < lat; i++ {
		theta := float64(i) * math.Pi / float64(lat)
		sinTheta, cosTheta := math.Sin(theta), math.Cos(theta)
		for j := 0; j < lon; j++ {
			phi := float64(j) * 2 * math.Pi / float64(lon)
			sinPhi, cosPhi := math.Sin(phi), math.Cos(phi)
			corners = append(corners, geometry.NewVector3(
				c.X+rx*sinTheta*cosPhi,
				c.Y+ry*sinTheta*sinPhi,
				c.Z+rz*cosTheta,
			))
		}
	}

	corners = append(corners, geometry.NewVector3(c.X, c.Y, c.Z-rz))
	return corners
}

// EdgeIndices returns the globe topology for the sphere's segment counts
func (s *Sphere) EdgeIndices() []Edge {
	return SphereEdges(s.segments())
}

// SphereCornerCount returns 1 + (lat-1)*lon + 1
func SphereCornerCount(lat, lon int) int {
	return (lat-1)*lon + 2
}

// SpherePoleBottom returns the index of the bottom pole, the last corner
func SpherePoleBottom(lat, lon int) int {
	return (lat-1)*lon + 1
}

// SphereEdges builds the globe topology: the top pole fans to the first ring,
// each ring closes on itself, and each ring point links to the same longitude
// on the next ring, or to the bottom pole for the last ring.
func SphereEdges(lat, lon int) []Edge {
	const poleTop = 0
	poleBottom := SpherePoleBottom(lat, lon)
	rings := lat - 1

	edges := make([]Edge, 0, lon+2*rings*lon)
	for j := 0; j < lon; j++ {
		edges = append(edges, Edge{poleTop, 1 + j})
	}

	for r := 0; r < rings; r++ {
		ringStart := 1 + r*lon
		for j := 0; j < lon; j++ {
			curr := ringStart + j
			next := ringStart + (j+1)%lon
			edges = append(edges, Edge{curr, next})

			if r < rings-1 {
				edges = append(edges, Edge{curr, curr + lon})
			} else {
				edges = append(edges, Edge{curr, poleBottom})
			}
		}
	}
	return edges
}
