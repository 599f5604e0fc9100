// Package scene holds the immutable in-memory description of what to
// render: a camera, point lights, shaped objects with materials, a
// global ambient term and a background color. A Scene is constructed
// once (from a built-in constructor or the JSON loader), is read-only
// for the duration of the render, and is safely shared across all
// concurrent pixel computations.
package scene

import (
	"github.com/ilan-segal/raytracer/pkg/core"
	"github.com/ilan-segal/raytracer/pkg/geometry"
	"github.com/ilan-segal/raytracer/pkg/material"
)

// LightSource is a point light with a per-channel intensity.
// There is no area and no falloff with distance.
type LightSource struct {
	Colour core.Vec3
	Pos    core.Vec3
}

// SceneObject pairs one shape with one material
type SceneObject struct {
	Shape    geometry.Shape
	Material material.Material
}

// Scene contains all the elements needed for rendering
type Scene struct {
	Camera       Camera
	AmbientLight core.Vec3     // Global ambient term
	Background   core.Vec3     // Color returned when a ray hits nothing
	Lights       []LightSource // Order is irrelevant to the output
	Objects      []SceneObject // Order only breaks exact-t ties
}
