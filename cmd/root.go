package cmd

import (
	"fmt"
	"os"

	"github.com/philipparndt/gowire/internal/app"
	"github.com/philipparndt/gowire/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:     "gowire-raylib [scene]",
	Short:   "Interactive wireframe viewer",
	Long:    `gowire-raylib opens a scene file (.yaml, .toml or .json) in an orbiting wireframe view and reloads it on change. Without a file the demo scene is shown.`,
	Args:    cobra.MaximumNArgs(1),
	Version: version.GetFullVersion(),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) == 1 {
			path = args[0]
		}
		return app.Run(path)
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
