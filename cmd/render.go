package cmd

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/ilan-segal/raytracer/pkg/renderer"
	"github.com/ilan-segal/raytracer/pkg/scene"
)

var (
	renderSceneName string
	renderSceneFile string
	renderOutput    string
	renderWorkers   int
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a scene to a PNG file",
	Long: `Render a built-in scene (--scene) or a JSON scene document
(--file) to a PNG file. Without --output the image is written to
<output dir>/<scene>_<timestamp>.png.`,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVar(&renderSceneName, "scene", "default",
		fmt.Sprintf("built-in scene to render (one of %v)", scene.ListScenes()))
	renderCmd.Flags().StringVar(&renderSceneFile, "file", "",
		"JSON scene document to render (overrides --scene)")
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "",
		"output PNG path")
	renderCmd.Flags().IntVar(&renderWorkers, "workers", 0,
		"number of parallel workers (0 = CPU count)")
}

func runRender(cmd *cobra.Command, args []string) error {
	selectedScene, sceneName, err := selectScene()
	if err != nil {
		return err
	}

	rendererConfig := cfg.RendererConfig()
	if renderWorkers > 0 {
		rendererConfig.NumWorkers = renderWorkers
	}

	rend := renderer.New(selectedScene, cfg.TracerConfig(), rendererConfig, renderer.NewDefaultLogger())
	img, stats, err := rend.Render(cmd.Context())
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	output := renderOutput
	if output == "" {
		timestamp := time.Now().Format("20060102_150405")
		output = filepath.Join(cfg.Output.Dir, fmt.Sprintf("%s_%s.png", sceneName, timestamp))
	}
	if err := renderer.WritePNG(img, output); err != nil {
		return err
	}

	fmt.Printf("Rendered %dx%d in %v, saved as %s\n", stats.Width, stats.Height, stats.Elapsed, output)
	return nil
}

// selectScene resolves the scene to render: a file when given,
// otherwise a built-in by name.
func selectScene() (*scene.Scene, string, error) {
	if renderSceneFile != "" {
		s, err := scene.LoadScene(renderSceneFile)
		if err != nil {
			return nil, "", err
		}
		name := filepath.Base(renderSceneFile)
		return s, name[:len(name)-len(filepath.Ext(name))], nil
	}

	s, err := scene.GetScene(renderSceneName)
	if err != nil {
		return nil, "", err
	}
	return s, renderSceneName, nil
}
