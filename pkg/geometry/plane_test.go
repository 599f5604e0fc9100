package geometry

import (
	"math"
	"testing"

	"github.com/ilan-segal/raytracer/pkg/core"
)

func TestPlane_Hit_Perpendicular(t *testing.T) {
	plane := NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))
	ray := core.NewRay(core.NewVec3(0, 0, 3), core.NewVec3(0, 0, -1))

	hit, ok := plane.Hit(ray, 0, math.Inf(1))
	if !ok {
		t.Fatal("Expected hit, but got miss")
	}
	if math.Abs(hit.T-3.0) > tolerance {
		t.Errorf("Expected t=3, got t=%f", hit.T)
	}
	if hit.Normal != core.NewVec3(0, 0, 1) {
		t.Errorf("Expected stored normal (0,0,1), got %v", hit.Normal)
	}
}

func TestPlane_Hit_Parallel(t *testing.T) {
	// A ray parallel to the plane never intersects, regardless of origin
	plane := NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))

	origins := []core.Vec3{
		core.NewVec3(0, 0, 1),  // above
		core.NewVec3(0, 0, -1), // below
		core.NewVec3(0, 0, 0),  // exactly on the plane
	}
	for _, origin := range origins {
		ray := core.NewRay(origin, core.NewVec3(1, 0, 0))
		if hit, ok := plane.Hit(ray, 0, math.Inf(1)); ok {
			t.Errorf("Expected miss for parallel ray from %v, got hit at t=%f", origin, hit.T)
		}
	}
}

func TestPlane_Hit_Behind(t *testing.T) {
	// The plane is behind the ray origin, so t is negative and excluded
	plane := NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))
	ray := core.NewRay(core.NewVec3(0, 0, 3), core.NewVec3(0, 0, 1))

	if hit, ok := plane.Hit(ray, 0, math.Inf(1)); ok {
		t.Errorf("Expected miss for plane behind ray, got hit at t=%f", hit.T)
	}
}

func TestPlane_Hit_BackFaceNormalNotFlipped(t *testing.T) {
	// Hitting the plane from behind still reports the stored normal
	plane := NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))
	ray := core.NewRay(core.NewVec3(0, 0, -3), core.NewVec3(0, 0, 1))

	hit, ok := plane.Hit(ray, 0, math.Inf(1))
	if !ok {
		t.Fatal("Expected hit from behind, but got miss")
	}
	if hit.Normal != core.NewVec3(0, 0, 1) {
		t.Errorf("Expected unflipped normal (0,0,1), got %v", hit.Normal)
	}
}

func TestPlane_Hit_Oblique(t *testing.T) {
	plane := NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))
	ray := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(1, 0, -1))

	hit, ok := plane.Hit(ray, 0, math.Inf(1))
	if !ok {
		t.Fatal("Expected hit, but got miss")
	}
	expectedPoint := core.NewVec3(1, 0, 0)
	if hit.Point.Subtract(expectedPoint).Length() > tolerance {
		t.Errorf("Expected hit point %v, got %v", expectedPoint, hit.Point)
	}
}

func TestNewPlane_NormalizesNormal(t *testing.T) {
	plane := NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 5))
	if math.Abs(plane.Normal.Length()-1) > tolerance {
		t.Errorf("Expected unit normal, got length %f", plane.Normal.Length())
	}
}
