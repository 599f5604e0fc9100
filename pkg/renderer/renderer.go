// Package renderer drives the per-pixel rendering loop: it splits the
// image into bands of rows, renders them on a fixed-size worker pool,
// and assembles the display-encoded result into an image.RGBA.
package renderer

import (
	"context"
	"image"
	"image/color"
	"math"
	"runtime"
	"sync"
	"time"

	"github.com/ilan-segal/raytracer/pkg/core"
	"github.com/ilan-segal/raytracer/pkg/scene"
	"github.com/ilan-segal/raytracer/pkg/tracer"
)

// Config contains scheduling configuration for the renderer
type Config struct {
	NumWorkers int // Number of parallel workers (0 = use CPU count)
	BandHeight int // Rows per work unit (0 = default)
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		NumWorkers: 0,
		BandHeight: 16,
	}
}

// Renderer renders a scene to an image using a pool of workers.
// Every pixel is a deterministic function of (pixel coordinate, scene),
// so any worker schedule produces the identical image.
type Renderer struct {
	scene  *scene.Scene
	tracer *tracer.Tracer
	config Config
	logger core.Logger
}

// bandTask is one work unit: a half-open range of image rows
type bandTask struct {
	yStart, yEnd int
}

// New creates a renderer for the given scene
func New(s *scene.Scene, tracerConfig tracer.Config, config Config, logger core.Logger) *Renderer {
	if logger == nil {
		logger = NewDefaultLogger()
	}
	return &Renderer{
		scene:  s,
		tracer: tracer.New(s, tracerConfig),
		config: config,
		logger: logger,
	}
}

// Render renders every pixel of the scene's camera grid and returns the
// display-encoded image. The context is checked between bands, so a
// caller can abandon a long render; on cancellation the partial image
// is discarded and ctx.Err() is returned.
func (r *Renderer) Render(ctx context.Context) (*image.RGBA, RenderStats, error) {
	width := r.scene.Camera.ScreenColumns
	height := r.scene.Camera.ScreenRows

	numWorkers := r.config.NumWorkers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	bandHeight := r.config.BandHeight
	if bandHeight <= 0 {
		bandHeight = DefaultConfig().BandHeight
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	luminance := make([]float64, width*height)

	tasks := make(chan bandTask, (height+bandHeight-1)/bandHeight)
	for y := 0; y < height; y += bandHeight {
		tasks <- bandTask{yStart: y, yEnd: min(y+bandHeight, height)}
	}
	close(tasks)

	r.logger.Printf("Rendering %dx%d with %d workers\n", width, height, numWorkers)
	startTime := time.Now()

	var wg sync.WaitGroup
	for worker := 0; worker < numWorkers; worker++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for task := range tasks {
				if ctx.Err() != nil {
					return
				}
				r.renderBand(img, luminance, task)
			}
		}()
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, RenderStats{}, err
	}

	stats := newRenderStats(width, height, luminance, time.Since(startTime))
	r.logger.Printf("Render completed in %v (mean luminance %.4f, σ %.4f)\n",
		stats.Elapsed, stats.MeanLuminance, stats.StdDevLuminance)

	return img, stats, nil
}

// renderBand renders rows [yStart, yEnd). Bands are disjoint, so
// workers write to the shared image and luminance buffer without locks.
func (r *Renderer) renderBand(img *image.RGBA, luminance []float64, task bandTask) {
	width := r.scene.Camera.ScreenColumns
	for y := task.yStart; y < task.yEnd; y++ {
		for x := 0; x < width; x++ {
			colour := r.tracer.Trace(r.scene.Camera.Ray(x, y), 0, 0)
			img.SetRGBA(x, y, EncodeColour(colour))
			luminance[y*width+x] = colour.Luminance()
		}
	}
}

// EncodeColour maps a linear color to an 8-bit display color:
// each channel is clamp(round(value*255), 0, 255).
func EncodeColour(colour core.Vec3) color.RGBA {
	return color.RGBA{
		R: encodeChannel(colour.X),
		G: encodeChannel(colour.Y),
		B: encodeChannel(colour.Z),
		A: 255,
	}
}

func encodeChannel(value float64) uint8 {
	scaled := math.Round(value * 255)
	if scaled < 0 {
		return 0
	}
	if scaled > 255 {
		return 255
	}
	return uint8(scaled)
}
