// Package config carries the tunable settings of the renderer: the
// tracing epsilons and bounce ceiling, worker scheduling, and output
// location. Settings come from defaults, an optional YAML config file,
// and RAYTRACER_* environment variables, in increasing precedence.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/ilan-segal/raytracer/pkg/renderer"
	"github.com/ilan-segal/raytracer/pkg/tracer"
)

// Config represents the application configuration
type Config struct {
	Trace  TraceConfig  `yaml:"trace" mapstructure:"trace"`
	Render RenderConfig `yaml:"render" mapstructure:"render"`
	Output OutputConfig `yaml:"output" mapstructure:"output"`
}

// TraceConfig contains the numeric policy of the tracing pipeline
type TraceConfig struct {
	ShadowEpsilon     float64 `yaml:"shadow_epsilon" mapstructure:"shadow_epsilon"`
	ReflectionEpsilon float64 `yaml:"reflection_epsilon" mapstructure:"reflection_epsilon"`
	MaxBounces        int     `yaml:"max_bounces" mapstructure:"max_bounces"`
}

// RenderConfig contains worker scheduling settings
type RenderConfig struct {
	Workers    int `yaml:"workers" mapstructure:"workers"`
	BandHeight int `yaml:"band_height" mapstructure:"band_height"`
}

// OutputConfig contains output settings
type OutputConfig struct {
	Dir string `yaml:"dir" mapstructure:"dir"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	traceDefaults := tracer.DefaultConfig()
	renderDefaults := renderer.DefaultConfig()
	return &Config{
		Trace: TraceConfig{
			ShadowEpsilon:     traceDefaults.ShadowEpsilon,
			ReflectionEpsilon: traceDefaults.ReflectionEpsilon,
			MaxBounces:        traceDefaults.MaxBounces,
		},
		Render: RenderConfig{
			Workers:    renderDefaults.NumWorkers,
			BandHeight: renderDefaults.BandHeight,
		},
		Output: OutputConfig{
			Dir: "output",
		},
	}
}

// Load reads configuration from the given file (or, when empty, from
// raytracer.yaml in the working directory if present), applying
// RAYTRACER_* environment variable overrides on top of defaults.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("trace.shadow_epsilon", defaults.Trace.ShadowEpsilon)
	v.SetDefault("trace.reflection_epsilon", defaults.Trace.ReflectionEpsilon)
	v.SetDefault("trace.max_bounces", defaults.Trace.MaxBounces)
	v.SetDefault("render.workers", defaults.Render.Workers)
	v.SetDefault("render.band_height", defaults.Render.BandHeight)
	v.SetDefault("output.dir", defaults.Output.Dir)

	v.SetEnvPrefix("RAYTRACER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", cfgFile, err)
		}
	} else {
		v.SetConfigName("raytracer")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			// A missing default config file is fine; defaults apply
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

// Save writes the configuration as YAML, creating parent directories
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// TracerConfig converts the trace section to the tracer's config type
func (c *Config) TracerConfig() tracer.Config {
	return tracer.Config{
		ShadowEpsilon:     c.Trace.ShadowEpsilon,
		ReflectionEpsilon: c.Trace.ReflectionEpsilon,
		MaxBounces:        c.Trace.MaxBounces,
	}
}

// RendererConfig converts the render section to the renderer's config type
func (c *Config) RendererConfig() renderer.Config {
	return renderer.Config{
		NumWorkers: c.Render.Workers,
		BandHeight: c.Render.BandHeight,
	}
}
