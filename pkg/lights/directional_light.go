package lights

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// DirectionalLight is an infinitely distant light whose rays all travel along Direction
type DirectionalLight struct {
	Direction core.Vec3 // Unit direction the light travels in
	Tint      core.Color
	Power     float64
}

// NewDirectionalLight creates a directional light; direction is normalized
func NewDirectionalLight(direction core.Vec3, color core.Color, intensity float64) *DirectionalLight {
	return &DirectionalLight{
		Direction: direction.Normalize(),
		Tint:      color,
		Power:     intensity,
	}
}

func (dl *DirectionalLight) Type() LightType { return LightTypeDirectional }

func (dl *DirectionalLight) light() {}

// DirectionFrom is the reverse of the travel direction, the same at every point
func (dl *DirectionalLight) DirectionFrom(_ core.Vec3) core.Vec3 {
	return dl.Direction.Mul(-1)
}

// Distance is infinite so any occluder shadows the point
func (dl *DirectionalLight) Distance(_ core.Vec3) float64 {
	return math.Inf(1)
}

// Intensity does not fall off
func (dl *DirectionalLight) Intensity(_ core.Vec3) float64 {
	return dl.Power
}

func (dl *DirectionalLight) Color() core.Color {
	return dl.Tint
}
