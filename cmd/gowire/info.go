package main

import (
	"fmt"

	"github.com/philipparndt/gowire/pkg/analysis"
	"github.com/philipparndt/gowire/pkg/shape"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info [scene]",
	Short: "Display general information about a scene",
	Long:  "Show the shapes of a scene with their corner and edge counts, the overall bounds and edge statistics.",
	Args:  cobra.MaximumNArgs(1),
	Run:   runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) {
	s, name := loadSceneArg(args)
	v := setupScene(s)
	result := analysis.AnalyzeShapes(v.Shapes)

	fmt.Println("Scene Information")
	fmt.Println("=================")
	fmt.Printf("File: %s\n\n", name)

	fmt.Println("Shapes:")
	for i, sh := range v.Shapes {
		attrs := sh.Attributes()
		detail := ""
		if sphere, ok := sh.(*shape.Sphere); ok {
			detail = fmt.Sprintf(" radius %.3f, %dx%d segments", attrs.Radius, sphere.LatSegments, sphere.LonSegments)
		}
		fmt.Printf("  %d: %-8s at %s scale %s, %d corners, %d edges%s\n",
			i, sh.Kind(),
			analysis.FormatVector(attrs.Position),
			analysis.FormatVector(attrs.Scale),
			len(sh.Corners()), len(sh.EdgeIndices()), detail)
	}
	fmt.Println()

	fmt.Println("Scene Statistics:")
	fmt.Printf("  Shapes: %d\n", result.ShapeCount)
	fmt.Printf("  Corners: %d\n", result.CornerCount)
	fmt.Printf("  Edges: %d\n", result.EdgeCount)
	fmt.Printf("  Total edge length: %.6f units\n\n", result.TotalLength)

	if result.BoundingBox.IsEmpty() {
		fmt.Println("Bounding Box: empty")
		return
	}
	fmt.Println("Bounding Box:")
	fmt.Printf("  Min: %s\n", analysis.FormatVector(result.BoundingBox.Min))
	fmt.Printf("  Max: %s\n", analysis.FormatVector(result.BoundingBox.Max))
	fmt.Printf("  Center: %s\n\n", analysis.FormatVector(result.BoundingBox.Center()))

	fmt.Println("Dimensions:")
	fmt.Printf("  Width (X): %.6f units\n", result.Dimensions.X)
	fmt.Printf("  Depth (Y): %.6f units\n", result.Dimensions.Y)
	fmt.Printf("  Height (Z): %.6f units\n", result.Dimensions.Z)
	fmt.Printf("  Diagonal: %.6f units\n\n", result.BoundingBox.Diagonal())

	fmt.Println("Edge Lengths:")
	fmt.Printf("  Minimum: %.6f units\n", result.MinEdgeLength)
	fmt.Printf("  Maximum: %.6f units\n", result.MaxEdgeLength)
	fmt.Printf("  Average: %.6f units\n\n", result.AvgEdgeLength)

	state := v.Controls.State()
	fmt.Println("Camera:")
	fmt.Printf("  Target: %s\n", analysis.FormatVector(state.Target))
	fmt.Printf("  Distance: %.3f  Pitch: %.1f  Yaw: %.1f  Zoom: %.2f\n",
		state.Distance, state.Pitch, state.Yaw, state.Zoom)
}
