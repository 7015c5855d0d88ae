package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material material.Surface
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, surface material.Surface) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: surface,
	}
}

func (s *Sphere) Type() ElementType { return ElementTypeSphere }

func (s *Sphere) Surface() material.Surface { return s.Material }

func (s *Sphere) element() {}

// Intersect tests the ray against the sphere by projecting the center onto the ray
func (s *Sphere) Intersect(ray core.Ray) (float64, bool) {
	// Vector from ray origin to sphere center
	l := s.Center.Sub(ray.Origin)
	adj := l.Dot(ray.Direction)

	// Squared distance from the center to the ray's line
	d2 := l.Dot(l) - adj*adj
	radius2 := s.Radius * s.Radius
	if d2 > radius2 {
		return 0, false
	}

	thc := math.Sqrt(radius2 - d2)
	t0 := adj - thc
	t1 := adj + thc

	// Sphere is entirely behind the ray origin
	if t0 < 0 && t1 < 0 {
		return 0, false
	}

	// Origin inside the sphere: only the exit point is in front
	t := t0
	if t0 < 0 {
		t = t1
	}
	// Overflow in the squared terms is reported as a miss
	if math.IsNaN(t) || math.IsInf(t, 0) {
		return 0, false
	}
	return t, true
}

// SurfaceNormal returns the outward normal at hitPoint
func (s *Sphere) SurfaceNormal(hitPoint core.Vec3) core.Vec3 {
	return hitPoint.Sub(s.Center).Normalize()
}
