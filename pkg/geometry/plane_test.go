package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestPlane_Intersect_BasicIntersection(t *testing.T) {
	// Ground plane at y=-0.5, visible from above
	plane := NewPlane(core.NewVec3(0, -0.5, 0), core.NewVec3(0, -1, 0), testSurface)

	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))

	distance, isHit := plane.Intersect(ray)
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}

	expectedT := 1.5
	if math.Abs(distance-expectedT) > 1e-9 {
		t.Errorf("Expected t=%f, got t=%f", expectedT, distance)
	}
}

func TestPlane_Intersect_ParallelRay(t *testing.T) {
	normals := []core.Vec3{
		core.NewVec3(0, 1, 0),
		core.NewVec3(0, -1, 0),
		core.NewVec3(0, 0, -1),
		core.NewVec3(1, 1, 0).Normalize(),
	}
	origins := []core.Vec3{
		core.NewVec3(0, 0, 0),
		core.NewVec3(0, 3, 0),
		core.NewVec3(-2, 1, 5),
	}

	for _, normal := range normals {
		plane := NewPlane(core.NewVec3(0, 1, 0), normal, testSurface)

		// Any direction perpendicular to the normal is parallel to the plane
		helper := core.NewVec3(0, 0, 1)
		if math.Abs(normal.Dot(helper)) > 0.9 {
			helper = core.NewVec3(1, 0, 0)
		}
		parallel := normal.Cross(helper).Normalize()

		for _, origin := range origins {
			for _, dir := range []core.Vec3{parallel, parallel.Mul(-1)} {
				if distance, isHit := plane.Intersect(core.NewRay(origin, dir)); isHit {
					t.Errorf("Normal %v: expected miss for parallel ray %v, got hit at t=%f", normal, dir, distance)
				}
			}
		}
	}
}

func TestPlane_Intersect_BehindRay(t *testing.T) {
	plane := NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, -1, 0), testSurface)

	// Ray starts underneath the plane and travels away from it
	ray := core.NewRay(core.NewVec3(0, -1, 0), core.NewVec3(0, -1, 0))

	if distance, isHit := plane.Intersect(ray); isHit {
		t.Errorf("Expected miss for intersection behind ray, but got hit at t=%f", distance)
	}
}

func TestPlane_Intersect_BackFaceRejected(t *testing.T) {
	// Visible from above only
	plane := NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, -1, 0), testSurface)

	ray := core.NewRay(core.NewVec3(0, -1, 0), core.NewVec3(0, 1, 0))

	if distance, isHit := plane.Intersect(ray); isHit {
		t.Errorf("Expected back face to be rejected, but got hit at t=%f", distance)
	}
}

func TestPlane_SurfaceNormal_AlwaysNegated(t *testing.T) {
	plane := NewPlane(core.NewVec3(0, 0, -20), core.NewVec3(0, 0, -1), testSurface)

	points := []core.Vec3{
		core.NewVec3(0, 0, -20),
		core.NewVec3(5, -3, -20),
		core.NewVec3(0, 0, 10), // off the plane, still the same normal
	}

	expected := core.NewVec3(0, 0, 1)
	for _, p := range points {
		if normal := plane.SurfaceNormal(p); normal != expected {
			t.Errorf("At %v expected normal %v, got %v", p, expected, normal)
		}
	}
}

func TestNewPlane_NormalizesNormal(t *testing.T) {
	plane := NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, -3, 0), testSurface)

	if math.Abs(plane.Normal.Len()-1) > 1e-12 {
		t.Errorf("Expected unit normal, got %v", plane.Normal)
	}
}

func TestPlane_Intersect_OverflowIsMiss(t *testing.T) {
	plane := NewPlane(core.NewVec3(0, 0, -1e308), core.NewVec3(0, 0, -1), testSurface)
	// Nearly parallel but above the epsilon, so the distance overflows
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, -1e-5).Normalize())

	if distance, isHit := plane.Intersect(ray); isHit {
		t.Errorf("Expected overflow to be reported as a miss, got hit at t=%g", distance)
	}
}
