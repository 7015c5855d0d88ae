package renderer

import (
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

func TestWorkerPool_RendersEveryRow(t *testing.T) {
	s := scene.NewSingleSphereScene()
	s.Width, s.Height = 40, 10

	pool := NewWorkerPool(s, 3)
	if pool.GetNumWorkers() != 3 {
		t.Errorf("Expected 3 workers, got %d", pool.GetNumWorkers())
	}
	pool.Start()

	for y := uint32(0); y < s.Height; y++ {
		pool.SubmitTask(RowTask{Y: y})
	}

	seen := make(map[uint32]bool)
	for i := uint32(0); i < s.Height; i++ {
		result, ok := pool.GetResult()
		if !ok {
			t.Fatal("Result queue closed early")
		}
		if seen[result.Y] {
			t.Errorf("Row %d returned twice", result.Y)
		}
		seen[result.Y] = true

		if len(result.Colors) != int(s.Width) {
			t.Errorf("Row %d: expected %d colors, got %d", result.Y, s.Width, len(result.Colors))
		}
		if result.Rays.Primary != int64(s.Width) {
			t.Errorf("Row %d: expected %d primary rays, got %d", result.Y, s.Width, result.Rays.Primary)
		}
	}

	pool.Stop()
	if _, ok := pool.GetResult(); ok {
		t.Error("Expected result queue to be closed after Stop")
	}
}

func TestWorkerPool_DefaultsToCPUCount(t *testing.T) {
	pool := NewWorkerPool(scene.NewSingleSphereScene(), 0)
	if pool.GetNumWorkers() < 1 {
		t.Errorf("Expected at least one worker, got %d", pool.GetNumWorkers())
	}
}
