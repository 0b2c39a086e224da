package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/gowire/pkg/analysis"
	"github.com/philipparndt/gowire/pkg/geometry"
	"github.com/philipparndt/gowire/pkg/shape"
	"github.com/spf13/cobra"
)

var (
	topologyLat int
	topologyLon int
)

var topologyCmd = &cobra.Command{
	Use:       "topology <cube|pyramid|sphere>",
	Short:     "Print the corner order and edge list of a shape generator",
	Long:      "Generate a unit shape at the origin and list its corners, its edges as index pairs and the degree of every corner. Exits non-zero if the topology is inconsistent.",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{string(shape.KindCube), string(shape.KindPyramid), string(shape.KindSphere)},
	Run:       runTopology,
}

func init() {
	rootCmd.AddCommand(topologyCmd)

	topologyCmd.Flags().IntVar(&topologyLat, "lat", shape.DefaultLatSegments, "Sphere latitude segments")
	topologyCmd.Flags().IntVar(&topologyLon, "lon", shape.DefaultLonSegments, "Sphere longitude segments")
}

func runTopology(cmd *cobra.Command, args []string) {
	base := shape.NewBase(geometry.Vector3{})
	base.Radius = 1
	sh, err := shape.New(shape.Kind(args[0]), base, topologyLat, topologyLon)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	corners := sh.Corners()
	edges := sh.EdgeIndices()
	degrees := analysis.Degrees(sh)

	fmt.Printf("%s: %d corners, %d edges\n\n", sh.Kind(), len(corners), len(edges))

	fmt.Println("Corners:")
	for i, c := range corners {
		fmt.Printf("  %3d %-35s degree %d\n", i, analysis.FormatVector(c), degrees[i])
	}
	fmt.Println()

	fmt.Println("Edges:")
	for i, e := range edges {
		fmt.Printf("  %3d %3d-%d\n", i, e[0], e[1])
	}

	if issues := analysis.ValidateTopology(sh); len(issues) > 0 {
		fmt.Println()
		for _, issue := range issues {
			fmt.Fprintf(os.Stderr, "Topology issue: %s\n", issue)
		}
		os.Exit(1)
	}
}
