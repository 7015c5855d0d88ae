package renderer

import (
	"fmt"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Render shades every pixel of the scene on the calling goroutine in row-major
// order and writes each color to sink exactly once. It panics if the frame is
// not wider than it is tall.
func Render(s *scene.Scene, sink PixelSink) RayStats {
	rt := NewRaytracer(s)

	var rays RayStats
	for y := uint32(0); y < s.Height; y++ {
		colors, rowRays := rt.RenderRow(y)
		for x, c := range colors {
			sink.PutPixel(uint32(x), y, c)
		}
		rays = rays.Add(rowRays)
	}

	return rays
}

// Renderer renders validated scenes, optionally spreading rows over a worker pool
type Renderer struct {
	scene   *scene.Scene
	options Options
	logger  core.Logger
}

// NewRenderer validates the scene and creates a renderer for it
func NewRenderer(s *scene.Scene, options Options, logger core.Logger) (*Renderer, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSceneNotValid, err)
	}

	return &Renderer{
		scene:   s,
		options: options,
		logger:  logger,
	}, nil
}

// Render shades the whole frame into sink
func (r *Renderer) Render(sink PixelSink) (RenderStats, error) {
	if sink == nil {
		return RenderStats{}, ErrNoSink
	}

	startTime := time.Now()
	stats := RenderStats{
		TotalPixels: int(r.scene.Width) * int(r.scene.Height),
		Rows:        int(r.scene.Height),
		Workers:     1,
	}

	r.logger.Infof("rendering %dx%d frame with %d elements and %d lights",
		r.scene.Width, r.scene.Height, len(r.scene.Elements), len(r.scene.Lights))

	if r.options.Workers < 2 {
		stats.Rays = Render(r.scene, sink)
	} else {
		stats.Rays, stats.Workers = r.renderParallel(sink)
	}

	stats.RenderTime = time.Since(startTime)
	r.logger.Infof("frame complete in %v (%d rays, %.2f per pixel)",
		stats.RenderTime, stats.Rays.Total(), stats.RaysPerPixel())

	return stats, nil
}

// renderParallel distributes rows over a worker pool and writes the results to
// sink from this goroutine as they arrive
func (r *Renderer) renderParallel(sink PixelSink) (RayStats, int) {
	pool := NewWorkerPool(r.scene, r.options.Workers)
	pool.Start()

	r.logger.Debugf("submitting %d rows to %d workers", r.scene.Height, pool.GetNumWorkers())
	for y := uint32(0); y < r.scene.Height; y++ {
		pool.SubmitTask(RowTask{Y: y})
	}

	var rays RayStats
	for i := uint32(0); i < r.scene.Height; i++ {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		for x, c := range result.Colors {
			sink.PutPixel(uint32(x), result.Y, c)
		}
		rays = rays.Add(result.Rays)
	}

	pool.Stop()
	return rays, pool.GetNumWorkers()
}
