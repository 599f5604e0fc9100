package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ilan-segal/raytracer/pkg/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a default config file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "raytracer.yaml"
		if len(args) == 1 {
			path = args[0]
		}
		if err := config.DefaultConfig().Save(path); err != nil {
			return err
		}
		fmt.Printf("Wrote default config to %s\n", path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("trace:\n")
		fmt.Printf("  shadow_epsilon: %g\n", cfg.Trace.ShadowEpsilon)
		fmt.Printf("  reflection_epsilon: %g\n", cfg.Trace.ReflectionEpsilon)
		fmt.Printf("  max_bounces: %d\n", cfg.Trace.MaxBounces)
		fmt.Printf("render:\n")
		fmt.Printf("  workers: %d\n", cfg.Render.Workers)
		fmt.Printf("  band_height: %d\n", cfg.Render.BandHeight)
		fmt.Printf("output:\n")
		fmt.Printf("  dir: %s\n", cfg.Output.Dir)
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}
