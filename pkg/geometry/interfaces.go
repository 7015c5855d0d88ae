package geometry

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

type ElementType string

const (
	ElementTypeSphere ElementType = "sphere"
	ElementTypePlane  ElementType = "plane"
)

// Element is a primitive that can be placed in a scene. The set of elements is
// closed: only *Sphere and *Plane implement it.
type Element interface {
	Type() ElementType

	// Intersect returns the distance along the ray to the nearest forward hit
	Intersect(ray core.Ray) (float64, bool)

	// SurfaceNormal returns the unit shading normal at a point on the surface
	SurfaceNormal(hitPoint core.Vec3) core.Vec3

	// Surface returns the shading parameters
	Surface() material.Surface

	element()
}
