// Package tracer implements the recursive ray-tracing pipeline:
// nearest-hit resolution across the scene, the ambient/diffuse/specular
// shading model with per-light shadow rays, and depth-bounded mirror
// reflection. Tracers hold only read-only state and are safe for
// concurrent use from multiple rendering goroutines.
package tracer

import (
	"math"

	"github.com/ilan-segal/raytracer/pkg/core"
	"github.com/ilan-segal/raytracer/pkg/geometry"
	"github.com/ilan-segal/raytracer/pkg/material"
	"github.com/ilan-segal/raytracer/pkg/scene"
)

// Config contains the numeric policy of the tracing pipeline
type Config struct {
	// ShadowEpsilon is the minimum ray parameter for shadow rays.
	// Shadow rays originate exactly on a surface, so a small positive
	// minimum distance is needed to avoid self-intersection acne. It
	// trades acne artifacts against missed shadows from very nearby
	// occluders.
	ShadowEpsilon float64

	// ReflectionEpsilon is the minimum ray parameter for reflection
	// rays, which also originate on a surface.
	ReflectionEpsilon float64

	// MaxBounces is the reflection recursion ceiling. It is the only
	// cycle breaker: two facing perfect mirrors would otherwise recurse
	// without bound.
	MaxBounces int
}

// DefaultConfig returns the standard tracing constants
func DefaultConfig() Config {
	return Config{
		ShadowEpsilon:     0.1,
		ReflectionEpsilon: 1e-4,
		MaxBounces:        10,
	}
}

// Tracer computes the color seen along rays cast into a scene
type Tracer struct {
	scene  *scene.Scene
	config Config
}

// New creates a tracer for the given scene
func New(s *scene.Scene, config Config) *Tracer {
	return &Tracer{scene: s, config: config}
}

// Trace returns the linear RGB color seen along ray, considering hits
// with parameter t >= tMin. Components may exceed 1.0; clamping happens
// only at display encoding. depth counts reflection bounces already
// performed and starts at 0 for primary rays.
func (rt *Tracer) Trace(ray core.Ray, tMin float64, depth int) core.Vec3 {
	hit, mat, ok := rt.nearestHit(ray, tMin)
	if !ok {
		return rt.scene.Background
	}

	colour := rt.shade(hit, mat, ray)

	if mat.KReflect != 0 && depth < rt.config.MaxBounces {
		reflected := core.NewRay(hit.Point, ray.Direction.Reflect(hit.Normal))
		colour = colour.Add(rt.Trace(reflected, rt.config.ReflectionEpsilon, depth+1).Multiply(mat.KReflect))
	}

	return colour
}

// nearestHit scans every object in the scene and returns the hit with
// the smallest parameter t >= tMin, along with the object's material.
// At exactly equal t the last examined object in scene order wins;
// which object wins a tie is not part of the contract.
func (rt *Tracer) nearestHit(ray core.Ray, tMin float64) (*geometry.Hit, material.Material, bool) {
	var closest *geometry.Hit
	var closestMaterial material.Material
	closestSoFar := math.Inf(1)

	for _, object := range rt.scene.Objects {
		if hit, ok := object.Shape.Hit(ray, tMin, closestSoFar); ok {
			closest = hit
			closestMaterial = object.Material
			closestSoFar = hit.T
		}
	}

	return closest, closestMaterial, closest != nil
}

// shade computes the local (non-reflective) color at a hit point:
// the ambient term plus a diffuse and specular contribution from every
// light the point can see.
func (rt *Tracer) shade(hit *geometry.Hit, mat material.Material, ray core.Ray) core.Vec3 {
	colour := rt.scene.AmbientLight.MultiplyVec(mat.Colour).Multiply(mat.KAmbient)

	for _, light := range rt.scene.Lights {
		lightDir := light.Pos.Subtract(hit.Point).Normalize()
		if rt.occluded(hit.Point, lightDir) {
			continue
		}

		// Diffuse: Lambertian falloff with the angle to the light
		diffuse := clamp01(hit.Normal.Dot(lightDir))
		colour = colour.Add(light.Colour.MultiplyVec(mat.Colour).Multiply(mat.KDiffuse * diffuse))

		// Specular: Blinn-Phong half-vector between the light and the
		// viewer. The viewer is wherever this ray originated, which is
		// correct for both camera rays and reflection bounces.
		view := ray.Origin.Subtract(hit.Point).Normalize()
		half := lightDir.Add(view).Normalize()
		specular := math.Pow(clamp01(half.Dot(hit.Normal)), mat.Shine)
		colour = colour.Add(light.Colour.Multiply(mat.KSpecular * specular))
	}

	return colour
}

// occluded reports whether anything blocks the path from point toward a
// light. Shadowing is binary: any hit past the shadow epsilon fully
// occludes, even an occluder beyond the light itself.
func (rt *Tracer) occluded(point, lightDir core.Vec3) bool {
	shadowRay := core.NewRay(point, lightDir)
	_, _, hitAnything := rt.nearestHit(shadowRay, rt.config.ShadowEpsilon)
	return hitAnything
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
