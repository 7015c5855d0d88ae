package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// parallelEpsilon rejects rays that are nearly parallel to a plane or approach it from behind
const parallelEpsilon = 1e-6

// Plane represents an infinite single-sided plane. It is visible to rays travelling
// along Normal, and shades with the opposite of Normal.
type Plane struct {
	Origin   core.Vec3 // A point on the plane
	Normal   core.Vec3 // Unit normal
	Material material.Surface
}

// NewPlane creates a new plane
func NewPlane(origin, normal core.Vec3, surface material.Surface) *Plane {
	return &Plane{
		Origin:   origin,
		Normal:   normal.Normalize(),
		Material: surface,
	}
}

func (p *Plane) Type() ElementType { return ElementTypePlane }

func (p *Plane) Surface() material.Surface { return p.Material }

func (p *Plane) element() {}

// Intersect tests if a ray hits the plane
func (p *Plane) Intersect(ray core.Ray) (float64, bool) {
	denom := p.Normal.Dot(ray.Direction)
	if denom <= parallelEpsilon {
		return 0, false
	}

	// t = (point_on_plane - ray_origin) · normal / (ray_direction · normal)
	distance := p.Origin.Sub(ray.Origin).Dot(p.Normal) / denom
	if !(distance >= 0) || math.IsInf(distance, 1) {
		return 0, false
	}
	return distance, true
}

// SurfaceNormal is always the negated stored normal, whichever side is hit
func (p *Plane) SurfaceNormal(_ core.Vec3) core.Vec3 {
	return p.Normal.Mul(-1)
}
