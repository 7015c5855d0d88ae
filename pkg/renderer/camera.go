package renderer

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Camera generates primary rays from the origin looking down -z
type Camera struct {
	width  float64
	height float64
	scaleX float64 // aspect * tan(fov/2)
	scaleY float64 // tan(fov/2)
}

// NewCamera creates a camera for the scene's frame. The aspect-ratio math assumes
// landscape frames, so width <= height panics.
func NewCamera(s *scene.Scene) *Camera {
	if s.Width <= s.Height {
		panic(fmt.Sprintf("renderer: camera requires width > height, got %dx%d", s.Width, s.Height))
	}

	fovAdjustment := math.Tan(mgl64.DegToRad(s.FOV) / 2.0)
	return &Camera{
		width:  float64(s.Width),
		height: float64(s.Height),
		scaleX: s.AspectRatio() * fovAdjustment,
		scaleY: fovAdjustment,
	}
}

// GetRay returns the primary ray through the center of pixel (x, y). Row 0 is
// the top of the image.
func (c *Camera) GetRay(x, y uint32) core.Ray {
	sensorX := ((float64(x)+0.5)/c.width)*2.0 - 1.0
	sensorY := 1.0 - ((float64(y)+0.5)/c.height)*2.0

	direction := core.NewVec3(sensorX*c.scaleX, sensorY*c.scaleY, -1.0).Normalize()
	return core.NewRay(core.NewVec3(0, 0, 0), direction)
}

// PrimeRay returns the primary ray for pixel (x, y) of the scene's frame
func PrimeRay(x, y uint32, s *scene.Scene) core.Ray {
	return NewCamera(s).GetRay(x, y)
}
