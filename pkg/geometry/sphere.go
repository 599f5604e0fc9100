package geometry

import (
	"math"

	"github.com/ilan-segal/raytracer/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	Centre core.Vec3
	Radius float64
}

// NewSphere creates a new sphere
func NewSphere(centre core.Vec3, radius float64) *Sphere {
	return &Sphere{Centre: centre, Radius: radius}
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (*Hit, bool) {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(s.Centre)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.LengthSquared()
	b := 2 * ray.Direction.Dot(oc)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := b*b - 4*a*c

	// No intersection if discriminant is negative
	if discriminant < 0 {
		return nil, false
	}

	// A tangent ray (discriminant == 0) yields the double root -b/(2a)
	sqrtD := math.Sqrt(discriminant)

	// Try the closer root first; if it is out of range, try the farther
	// one. A ray originating inside the sphere has one negative and one
	// positive root, so the exit point is still found.
	root := (-b - sqrtD) / (2 * a)
	if root < tMin || root > tMax {
		root = (-b + sqrtD) / (2 * a)
		if root < tMin || root > tMax {
			return nil, false
		}
	}

	point := ray.At(root)
	return &Hit{
		T:      root,
		Point:  point,
		Normal: point.Subtract(s.Centre).Normalize(),
	}, true
}
