package scene

import (
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
)

// unitTolerance is how far a stored normal or light direction may stray from unit length
const unitTolerance = 1e-6

// maxMagnitude bounds every coordinate, radius, weight and intensity so that the
// squared lengths formed while intersecting stay finite
const maxMagnitude = 1e100

// Scene contains everything needed to render a frame. It is built once and must not
// be mutated while a render is in progress.
type Scene struct {
	Width    uint32
	Height   uint32
	FOV      float64 // Field of view in degrees
	Elements []geometry.Element
	Lights   []lights.Light
}

// Intersection is the nearest hit found by Trace. Element is borrowed from the
// scene and Index is its position in Scene.Elements.
type Intersection struct {
	Distance float64
	Index    int
	Element  geometry.Element
}

// NewIntersection creates an intersection record. A non-finite or negative distance
// means an element's intersection routine is broken, so it panics.
func NewIntersection(distance float64, index int, element geometry.Element) Intersection {
	if math.IsNaN(distance) || math.IsInf(distance, 0) || distance < 0 {
		panic(fmt.Sprintf("scene: intersection distance must be finite and non-negative, got %v", distance))
	}
	return Intersection{Distance: distance, Index: index, Element: element}
}

// Trace returns the nearest element hit by the ray. It serves both camera and
// shadow rays.
func (s *Scene) Trace(ray core.Ray) (Intersection, bool) {
	var closest Intersection
	hitAnything := false

	for i, element := range s.Elements {
		surface := element.Surface()
		if err := surface.Validate(); err != nil {
			return fmt.Errorf("element %d (%s): %w", i, element.Type(), err)
		}
		if !inRange(surface.Diffuse, surface.Specular) || !colorInRange(surface.Color) {
			return fmt.Errorf("element %d (%s) surface: %w", i, element.Type(), ErrNonFinite)
		}
		switch e := element.(type) {
		case *geometry.Sphere:
			if !inRange(e.Radius) || !vecInRange(e.Center) {
				return fmt.Errorf("element %d (sphere): %w", i, ErrNonFinite)
			}
			if !(e.Radius > 0) {
				return fmt.Errorf("element %d (sphere): %w", i, ErrInvalidRadius)
			}
		case *geometry.Plane:
			if !vecInRange(e.Origin) {
				return fmt.Errorf("element %d (plane): %w", i, ErrNonFinite)
			}
			if !isUnit(e.Normal) {
				return fmt.Errorf("element %d (plane): %w", i, ErrNotUnitLength)
			}
		}
	}

	for i, light := range s.Lights {
		if !colorInRange(light.Color()) {
			return fmt.Errorf("light %d (%s): %w", i, light.Type(), ErrNonFinite)
		}
		switch l := light.(type) {
		case *lights.DirectionalLight:
			if !inRange(l.Power) {
				return fmt.Errorf("light %d (directional): %w", i, ErrNonFinite)
			}
			if !isUnit(l.Direction) {
				return fmt.Errorf("light %d (directional): %w", i, ErrNotUnitLength)
			}
		case *lights.SphericalLight:
			if !inRange(l.Power) || !vecInRange(l.Position) {
				return fmt.Errorf("light %d (spherical): %w", i, ErrNonFinite)
			}
		}
	}

	return nil
}

// GetPrimitiveCount returns the number of elements in the scene
func (s *Scene) GetPrimitiveCount() int {
	return len(s.Elements)
}

// isUnit is false for NaN vectors, which is what normalizing a zero vector gives
func isUnit(v core.Vec3) bool {
	return math.Abs(v.Len()-1) <= unitTolerance
}

// inRange is false for NaN, infinities and values beyond maxMagnitude
func inRange(values ...float64) bool {
	for _, v := range values {
		if !(math.Abs(v) <= maxMagnitude) {
			return false
		}
	}
	return true
}

func vecInRange(v core.Vec3) bool {
	return inRange(v[0], v[1], v[2])
}

func colorInRange(c core.Color) bool {
	return inRange(c[0], c[1], c[2], c[3])
}
