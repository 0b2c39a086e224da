// Package analysis measures wireframe shapes: edge lengths, extents and
// topology sanity.
package analysis

import (
	"fmt"
	"math"
	"sort"

	"github.com/philipparndt/gowire/pkg/geometry"
	"github.com/philipparndt/gowire/pkg/shape"
)

// EdgeInfo contains information about one edge of a shape
type EdgeInfo struct {
	Start   geometry.Vector3
	End     geometry.Vector3
	Length  float64
	ShapeID int
	Indices shape.Edge
}

// MeasurementResult contains the measurements of a set of shapes
type MeasurementResult struct {
	BoundingBox   geometry.BoundingBox
	Dimensions    geometry.Vector3
	ShapeCount    int
	CornerCount   int
	EdgeCount     int
	MinEdgeLength float64
	MaxEdgeLength float64
	AvgEdgeLength float64
	TotalLength   float64
	AllEdges      []EdgeInfo
}

// AnalyzeShape measures a single shape
func AnalyzeShape(s shape.Shape) *MeasurementResult {
	return AnalyzeShapes([]shape.Shape{s})
}

// AnalyzeShapes measures every edge of every shape. ShapeID is the index in shapes.
func AnalyzeShapes(shapes []shape.Shape) *MeasurementResult {
	result := &MeasurementResult{
		BoundingBox: geometry.NewBoundingBox(),
		ShapeCount:  len(shapes),
		AllEdges:    make([]EdgeInfo, 0),
	}

	minLength := math.MaxFloat64
	maxLength := 0.0

	for id, s := range shapes {
		corners := s.Corners()
		result.CornerCount += len(corners)
		result.BoundingBox.Union(geometry.BoundsOf(corners))

		for _, e := range s.EdgeIndices() {
			if !inRange(e, len(corners)) {
				continue
			}
			start, end := corners[e[0]], corners[e[1]]
			length := start.Distance(end)

			result.AllEdges = append(result.AllEdges, EdgeInfo{
				Start:   start,
				End:     end,
				Length:  length,
				ShapeID: id,
				Indices: e,
			})

			result.TotalLength += length
			minLength = math.Min(minLength, length)
			maxLength = math.Max(maxLength, length)
		}
	}

	result.Dimensions = result.BoundingBox.Size()
	result.EdgeCount = len(result.AllEdges)
	if result.EdgeCount > 0 {
		result.MinEdgeLength = minLength
		result.MaxEdgeLength = maxLength
		result.AvgEdgeLength = result.TotalLength / float64(result.EdgeCount)
	}

	return result
}

func inRange(e shape.Edge, n int) bool {
	return e[0] >= 0 && e[0] < n && e[1] >= 0 && e[1] < n
}

// FindEdgesByLength finds all edges within a length range
func FindEdgesByLength(result *MeasurementResult, minLength, maxLength float64) []EdgeInfo {
	var edges []EdgeInfo
	for _, edge := range result.AllEdges {
		if edge.Length >= minLength && edge.Length <= maxLength {
			edges = append(edges, edge)
		}
	}
	return edges
}

// FindLongestEdges returns the N longest edges
func FindLongestEdges(result *MeasurementResult, count int) []EdgeInfo {
	return sortedEdges(result, count, func(a, b float64) bool { return a > b })
}

// FindShortestEdges returns the N shortest edges
func FindShortestEdges(result *MeasurementResult, count int) []EdgeInfo {
	return sortedEdges(result, count, func(a, b float64) bool { return a < b })
}

func sortedEdges(result *MeasurementResult, count int, less func(a, b float64) bool) []EdgeInfo {
	edges := make([]EdgeInfo, len(result.AllEdges))
	copy(edges, result.AllEdges)

	sort.SliceStable(edges, func(i, j int) bool {
		return less(edges[i].Length, edges[j].Length)
	})

	count = max(0, min(count, len(edges)))
	return edges[:count]
}

// TopologyIssue describes one defect in a shape's edge list
type TopologyIssue struct {
	Edge    int // Index into EdgeIndices, -1 for corner issues
	Corner  int // Offending corner index, -1 if not applicable
	Message string
}

func (i TopologyIssue) String() string {
	return i.Message
}

// ValidateTopology reports edges that point outside the corner list,
// degenerate self-loops, duplicate edges and corners no edge touches.
// A well-formed shape returns nil.
func ValidateTopology(s shape.Shape) []TopologyIssue {
	corners := s.Corners()
	used := make([]bool, len(corners))
	seen := make(map[shape.Edge]int)

	var issues []TopologyIssue
	for i, e := range s.EdgeIndices() {
		if !inRange(e, len(corners)) {
			issues = append(issues, TopologyIssue{
				Edge:    i,
				Corner:  -1,
				Message: fmt.Sprintf("edge %d %v is out of range for %d corners", i, e, len(corners)),
			})
			continue
		}
		if e[0] == e[1] {
			issues = append(issues, TopologyIssue{
				Edge:    i,
				Corner:  e[0],
				Message: fmt.Sprintf("edge %d connects corner %d to itself", i, e[0]),
			})
		}

		key := e
		if key[0] > key[1] {
			key[0], key[1] = key[1], key[0]
		}
		if first, ok := seen[key]; ok {
			issues = append(issues, TopologyIssue{
				Edge:    i,
				Corner:  -1,
				Message: fmt.Sprintf("edge %d duplicates edge %d %v", i, first, e),
			})
		} else {
			seen[key] = i
		}

		used[e[0]] = true
		used[e[1]] = true
	}

	for c, ok := range used {
		if !ok {
			issues = append(issues, TopologyIssue{
				Edge:    -1,
				Corner:  c,
				Message: fmt.Sprintf("corner %d is not connected", c),
			})
		}
	}
	return issues
}

// Degrees returns how many edges touch each corner
func Degrees(s shape.Shape) []int {
	degrees := make([]int, len(s.Corners()))
	for _, e := range s.EdgeIndices() {
		if inRange(e, len(degrees)) {
			degrees[e[0]]++
			degrees[e[1]]++
		}
	}
	return degrees
}

// FormatMeasurement formats a measurement with appropriate units
func FormatMeasurement(value float64, unit string) string {
	if unit == "" {
		unit = "units"
	}
	return fmt.Sprintf("%.6f %s", value, unit)
}

// FormatVector formats a 3D vector
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}
