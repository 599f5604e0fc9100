package geometry

import "github.com/ilan-segal/raytracer/pkg/core"

// Plane represents an infinite plane defined by a point and normal
type Plane struct {
	Point  core.Vec3 // A point on the plane
	Normal core.Vec3 // Unit normal
}

// NewPlane creates a new plane. The normal is normalized so shading can
// use it directly as the surface normal.
func NewPlane(point, normal core.Vec3) *Plane {
	return &Plane{Point: point, Normal: normal.Normalize()}
}

// Hit tests if a ray intersects with the plane
func (p *Plane) Hit(ray core.Ray, tMin, tMax float64) (*Hit, bool) {
	// A ray parallel to the plane never intersects it
	denom := ray.Direction.Dot(p.Normal)
	if denom == 0 {
		return nil, false
	}

	t := p.Point.Subtract(ray.Origin).Dot(p.Normal) / denom
	if t < tMin || t > tMax {
		return nil, false
	}

	// The stored normal is reported as-is, never flipped toward the
	// ray; back-facing planes are not treated specially.
	return &Hit{
		T:      t,
		Point:  ray.At(t),
		Normal: p.Normal,
	}, true
}
