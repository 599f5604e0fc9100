package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ilan-segal/raytracer/pkg/renderer"
	"github.com/ilan-segal/raytracer/pkg/scene"
	"github.com/ilan-segal/raytracer/web/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve renders over HTTP",
	Long: `Start an HTTP server exposing GET /api/render (PNG of a named
built-in scene), GET /api/scenes and GET /api/health.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		srv := server.NewServer(servePort, cfg, renderer.NewDefaultLogger())
		return srv.Start()
	},
}

var scenesCmd = &cobra.Command{
	Use:   "scenes",
	Short: "List the built-in scenes",
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range scene.ListScenes() {
			fmt.Println(name)
		}
	},
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 8080, "port to listen on")
}
