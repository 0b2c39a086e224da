package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/gowire/pkg/scene"
	"github.com/philipparndt/gowire/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gowire",
	Short: "A CLI tool for inspecting and rendering wireframe scenes",
	Long: `gowire reads scene files describing cubes, pyramids and spheres
(.yaml, .toml or .json) and reports their topology, measures their edges,
or renders them to PNG through the same orbit camera the viewers use.
Commands that take a scene fall back to the built-in demo scene.`,
	Version: version.GetFullVersion(),
}

// loadSceneArg loads the scene named by the first argument, or the demo scene
func loadSceneArg(args []string) (*scene.Scene, string) {
	if len(args) == 0 {
		return scene.Default(), "(demo scene)"
	}
	s, err := scene.Load(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading scene: %v\n", err)
		os.Exit(1)
	}
	return s, args[0]
}

func setupScene(s *scene.Scene) *scene.Viewer {
	v, err := s.Setup()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return v
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
