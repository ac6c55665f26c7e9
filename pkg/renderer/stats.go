package renderer

import "time"

// RenderStats describes a finished render
type RenderStats struct {
	TotalPixels int           // Pixels traced
	Tiles       int           // Tiles the image was split into
	Workers     int           // Tiles rendered concurrently
	MaxDepth    int           // Recursion budget per primary ray
	Duration    time.Duration // Wall-clock render time
}

// PixelsPerMillisecond returns the render throughput
func (s RenderStats) PixelsPerMillisecond() float64 {
	ms := float64(s.Duration) / float64(time.Millisecond)
	if ms <= 0 {
		return 0
	}
	return float64(s.TotalPixels) / ms
}
