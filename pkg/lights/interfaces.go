package lights

import "github.com/df07/go-whitted-raytracer/pkg/core"

type LightType string

const (
	LightTypeDirectional LightType = "directional"
	LightTypeSpherical   LightType = "spherical"
)

// Light is a source evaluated once per hit point by the shading engine.
// The set is closed: only *DirectionalLight and *SphericalLight implement it.
type Light interface {
	Type() LightType

	// DirectionFrom returns the unit direction FROM the hit point TO the light
	DirectionFrom(hitPoint core.Vec3) core.Vec3

	// Distance returns how far the light is from the hit point. Occluders further
	// away than this do not shadow the point.
	Distance(hitPoint core.Vec3) float64

	// Intensity returns the incident intensity arriving at the hit point
	Intensity(hitPoint core.Vec3) float64

	Color() core.Color

	light()
}
