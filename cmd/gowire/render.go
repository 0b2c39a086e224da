package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/philipparndt/gowire/pkg/camera"
	"github.com/philipparndt/gowire/pkg/scene"
	"github.com/philipparndt/gowire/pkg/viewer"
	"github.com/philipparndt/gowire/pkg/watcher"
	"github.com/spf13/cobra"
)

var (
	renderOutput  string
	renderWidth   int
	renderHeight  int
	renderYaw     float64
	renderPitch   float64
	renderZoom    float64
	renderView    string
	renderHUD     bool
	renderShading bool
	renderWatch   bool
)

var renderCmd = &cobra.Command{
	Use:   "render [scene]",
	Short: "Render a scene to a PNG image",
	Long: `Render the wireframe of a scene as seen from its initial camera.
--yaw, --pitch and --zoom override the scene's camera, --view turns it to a
named direction. With --watch the image is re-rendered whenever the scene
file changes, until interrupted.`,
	Args: cobra.MaximumNArgs(1),
	Run:  runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "scene.png", "Output PNG file")
	renderCmd.Flags().IntVar(&renderWidth, "width", 800, "Image width in pixels")
	renderCmd.Flags().IntVar(&renderHeight, "height", 600, "Image height in pixels")
	renderCmd.Flags().Float64Var(&renderYaw, "yaw", 0, "Camera yaw in degrees")
	renderCmd.Flags().Float64Var(&renderPitch, "pitch", 0, "Camera pitch in degrees")
	renderCmd.Flags().Float64Var(&renderZoom, "zoom", 1, "Camera zoom")
	renderCmd.Flags().StringVar(&renderView, "view", "", "Preset view: front, back, left, right, top or bottom")
	renderCmd.Flags().BoolVar(&renderHUD, "hud", false, "Draw the camera status in the corner")
	renderCmd.Flags().BoolVar(&renderShading, "shading", true, "Dim lines with depth")
	renderCmd.Flags().BoolVarP(&renderWatch, "watch", "w", false, "Re-render when the scene file changes")
}

func runRender(cmd *cobra.Command, args []string) {
	if renderWidth <= 0 || renderHeight <= 0 {
		fmt.Fprintf(os.Stderr, "Error: image size %dx%d must be positive\n", renderWidth, renderHeight)
		os.Exit(1)
	}
	if renderWatch && len(args) == 0 {
		fmt.Fprintln(os.Stderr, "Error: --watch needs a scene file")
		os.Exit(1)
	}

	s, name := loadSceneArg(args)
	if err := renderScene(cmd, s); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Rendered %s to %s\n", name, renderOutput)

	if !renderWatch {
		return
	}

	fw, err := watcher.WatchScene(args[0], func(s *scene.Scene, err error) {
		if err == nil {
			err = renderScene(cmd, s)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		fmt.Printf("Re-rendered %s to %s\n", name, renderOutput)
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer fw.Close()

	fmt.Printf("Watching %s for changes, press Ctrl+C to stop\n", name)
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig
}

// renderScene draws s with the command-line camera overrides applied
func renderScene(cmd *cobra.Command, s *scene.Scene) error {
	v, err := s.Setup()
	if err != nil {
		return err
	}

	state, err := cameraOverrides(v.Controls.State(), cmd.Flags().Changed)
	if err != nil {
		return err
	}
	v.Controls.SetState(state)

	if renderView != "" && !v.Controls.SetView(camera.Preset(renderView)) {
		return fmt.Errorf("unknown view %q (expected one of %v)", renderView, camera.Presets)
	}

	aspect := float64(renderWidth) / float64(renderHeight)
	frame := viewer.BuildFrame(v.Controls.Transform(), v.Shapes, v.Projection, aspect)

	opts := viewer.DefaultRasterOptions()
	opts.DepthShading = renderShading
	if renderHUD {
		opts.HUD = viewer.StatusLines(v.Controls.State(), frame)
	}

	img := viewer.Rasterize(frame, renderWidth, renderHeight, opts)
	if err := viewer.SavePNG(renderOutput, img); err != nil {
		return fmt.Errorf("failed to write %s: %w", renderOutput, err)
	}
	return nil
}

// cameraOverrides applies the --yaw, --pitch and --zoom flags that were set
// on the command line to state
func cameraOverrides(state camera.State, changed func(name string) bool) (camera.State, error) {
	if changed("yaw") {
		state.Yaw = renderYaw
	}
	if changed("pitch") {
		state.Pitch = renderPitch
	}
	if changed("zoom") {
		state.Zoom = renderZoom
	}
	if err := state.Validate(); err != nil {
		return state, fmt.Errorf("invalid camera override: %w", err)
	}
	return state, nil
}
