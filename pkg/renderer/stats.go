package renderer

import "time"

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels int           // Number of pixels written to the sink
	Rows        int           // Number of rows rendered
	Workers     int           // Number of goroutines that shaded rows
	Rays        RayStats      // Rays cast, by kind
	RenderTime  time.Duration // Wall-clock time of the render
}

// RaysPerPixel returns the average number of rays of all kinds per pixel
func (rs RenderStats) RaysPerPixel() float64 {
	if rs.TotalPixels == 0 {
		return 0
	}
	return float64(rs.Rays.Total()) / float64(rs.TotalPixels)
}
