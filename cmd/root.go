// Package cmd implements the raytracer command-line interface.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ilan-segal/raytracer/pkg/config"
)

const (
	appName = "raytracer"
	version = "v1.0.0"
)

var (
	cfgFile string
	cfg     *config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   appName,
	Short: "A recursive ray tracer for sphere-and-plane scenes",
	Long: `Renders static 3D scenes (camera, point lights, spheres, planes)
to PNG images by recursive ray tracing, with Blinn-Phong shading,
binary shadows and depth-bounded mirror reflection.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return err
		}
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default: raytracer.yaml in the working directory)")

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(scenesCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("%s %s\n", appName, version)
	},
}
