package lights

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// SphericalLight is a point light radiating equally in all directions
type SphericalLight struct {
	Position core.Vec3
	Tint     core.Color
	Power    float64 // Radiant intensity, not pre-normalized
}

// NewSphericalLight creates a new point light
func NewSphericalLight(position core.Vec3, color core.Color, intensity float64) *SphericalLight {
	return &SphericalLight{
		Position: position,
		Tint:     color,
		Power:    intensity,
	}
}

func (sl *SphericalLight) Type() LightType { return LightTypeSpherical }

func (sl *SphericalLight) light() {}

func (sl *SphericalLight) DirectionFrom(hitPoint core.Vec3) core.Vec3 {
	return sl.Position.Sub(hitPoint).Normalize()
}

func (sl *SphericalLight) Distance(hitPoint core.Vec3) float64 {
	return sl.Position.Sub(hitPoint).Len()
}

// Intensity spreads the stored power over a sphere of radius d: I / (4π·d²)
func (sl *SphericalLight) Intensity(hitPoint core.Vec3) float64 {
	toLight := sl.Position.Sub(hitPoint)
	r2 := toLight.Dot(toLight)
	return sl.Power / (4 * math.Pi * r2)
}

func (sl *SphericalLight) Color() core.Color {
	return sl.Tint
}
