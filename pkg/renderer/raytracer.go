package renderer

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

const (
	// MaxDepth is the deepest reflection level that is still shaded
	MaxDepth = 10

	// ShadowBias offsets secondary ray origins along the normal so they do not
	// re-hit the surface they start on
	ShadowBias = 1e-13
)

// RayStats counts the rays cast while shading
type RayStats struct {
	Primary    int64
	Shadow     int64
	Reflection int64
}

// Add returns the sum of two counters
func (rs RayStats) Add(other RayStats) RayStats {
	return RayStats{
		Primary:    rs.Primary + other.Primary,
		Shadow:     rs.Shadow + other.Shadow,
		Reflection: rs.Reflection + other.Reflection,
	}
}

// Total returns the number of rays of every kind
func (rs RayStats) Total() int64 {
	return rs.Primary + rs.Shadow + rs.Reflection
}

// Raytracer shades rays against a read-only scene. A Raytracer keeps ray counters,
// so each goroutine needs its own.
type Raytracer struct {
	scene  *scene.Scene
	camera *Camera
	stats  RayStats
}

// NewRaytracer creates a new raytracer
func NewRaytracer(s *scene.Scene) *Raytracer {
	return &Raytracer{
		scene:  s,
		camera: NewCamera(s),
	}
}

// CastRay returns the color seen along ray at the given reflection depth
func CastRay(s *scene.Scene, ray core.Ray, depth int) core.Color {
	rt := &Raytracer{scene: s}
	return rt.CastRay(ray, depth)
}

// CastRay returns the color seen along ray at the given reflection depth
func (rt *Raytracer) CastRay(ray core.Ray, depth int) core.Color {
	if depth > MaxDepth {
		return core.Black
	}

	hit, isHit := rt.scene.Trace(ray)
	if !isHit {
		return core.Black
	}

	hitPoint := ray.At(hit.Distance)
	normal := hit.Element.SurfaceNormal(hitPoint)
	surface := hit.Element.Surface()
	biasedOrigin := hitPoint.Add(normal.Mul(ShadowBias))

	color := core.Black
	for _, light := range rt.scene.Lights {
		if surface.HasDiffuse() {
			color = color.Accumulate(rt.calculateDiffuseColor(surface, light, hitPoint, biasedOrigin, normal))
		}

		if surface.HasSpecular() {
			color = color.Accumulate(rt.calculateSpecularColor(surface, ray, biasedOrigin, normal, depth))
		}
	}

	return color
}

// calculateDiffuseColor evaluates the Lambertian term for one light, casting a
// shadow ray to decide whether the light reaches the hit point
func (rt *Raytracer) calculateDiffuseColor(surface material.Surface, light lights.Light, hitPoint, biasedOrigin, normal core.Vec3) core.Color {
	directionToLight := light.DirectionFrom(hitPoint)
	shadowRay := core.NewRay(biasedOrigin, directionToLight)
	rt.stats.Shadow++

	// Occluders beyond the light do not cast a shadow
	lightIntensity := 0.0
	occluder, blocked := rt.scene.Trace(shadowRay)
	if !blocked || occluder.Distance > light.Distance(hitPoint) {
		lightIntensity = light.Intensity(hitPoint)
	}

	lightPower := math.Max(0, normal.Dot(directionToLight)) * lightIntensity
	return surface.EvaluateDiffuse(light.Color(), lightPower)
}

// calculateSpecularColor follows the mirror reflection one level deeper
func (rt *Raytracer) calculateSpecularColor(surface material.Surface, ray core.Ray, biasedOrigin, normal core.Vec3, depth int) core.Color {
	reflectionRay := core.NewRay(biasedOrigin, core.Reflect(ray.Direction, normal))
	rt.stats.Reflection++

	return surface.EvaluateSpecular(rt.CastRay(reflectionRay, depth+1))
}

// RenderPixel shades the primary ray through pixel (x, y)
func (rt *Raytracer) RenderPixel(x, y uint32) core.Color {
	rt.stats.Primary++
	return rt.CastRay(rt.camera.GetRay(x, y), 0)
}

// RenderRow shades every pixel of row y and returns the colors together with the
// rays cast for them
func (rt *Raytracer) RenderRow(y uint32) ([]core.Color, RayStats) {
	rt.stats = RayStats{}

	colors := make([]core.Color, rt.scene.Width)
	for x := uint32(0); x < rt.scene.Width; x++ {
		colors[x] = rt.RenderPixel(x, y)
	}

	return colors, rt.stats
}

// Stats returns the rays counted since the last RenderRow started
func (rt *Raytracer) Stats() RayStats {
	return rt.stats
}
