package renderer

import (
	"time"

	"gonum.org/v1/gonum/stat"
)

// RenderStats contains statistics about a completed render
type RenderStats struct {
	Width           int
	Height          int
	TotalPixels     int
	MeanLuminance   float64 // Mean pixel luminance of the linear image
	StdDevLuminance float64 // Spread of pixel luminance
	Elapsed         time.Duration
}

func newRenderStats(width, height int, luminance []float64, elapsed time.Duration) RenderStats {
	stats := RenderStats{
		Width:       width,
		Height:      height,
		TotalPixels: width * height,
		Elapsed:     elapsed,
	}
	if len(luminance) > 0 {
		stats.MeanLuminance = stat.Mean(luminance, nil)
	}
	if len(luminance) > 1 {
		stats.StdDevLuminance = stat.StdDev(luminance, nil)
	}
	return stats
}
