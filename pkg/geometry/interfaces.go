package geometry

import "github.com/ilan-segal/raytracer/pkg/core"

// Hit records a ray-surface intersection. Hits are transient values
// that live only for the duration of one shading computation.
type Hit struct {
	T      float64   // Ray parameter at the intersection
	Point  core.Vec3 // Hit point: origin + t*direction
	Normal core.Vec3 // Unit outward normal at the hit point
}

// Shape interface for objects that can be hit by rays.
// Hit returns the nearest intersection with tMin <= t <= tMax, if any.
// tMin is the caller's self-intersection guard: shadow and reflection
// rays originate on a surface and pass a small positive epsilon so
// floating-point error cannot register a spurious hit at t ≈ 0.
type Shape interface {
	Hit(ray core.Ray, tMin, tMax float64) (*Hit, bool)
}
