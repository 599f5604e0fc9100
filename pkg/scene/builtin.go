package scene

import (
	"fmt"
	"sort"

	"github.com/ilan-segal/raytracer/pkg/core"
	"github.com/ilan-segal/raytracer/pkg/geometry"
	"github.com/ilan-segal/raytracer/pkg/material"
)

// builtinScenes maps scene names to constructors, available to the CLI
// and the web server without a scene file.
var builtinScenes = map[string]func() *Scene{
	"default":    NewDefaultScene,
	"sphere":     NewSphereScene,
	"mirror-box": NewMirrorBoxScene,
}

// ListScenes returns the names of the built-in scenes in sorted order
func ListScenes() []string {
	names := make([]string, 0, len(builtinScenes))
	for name := range builtinScenes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetScene returns the built-in scene with the given name
func GetScene(name string) (*Scene, error) {
	constructor, ok := builtinScenes[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q (available: %v)", name, ListScenes())
	}
	return constructor(), nil
}

// NewDefaultScene creates a scene with colored spheres and a mirror
// sphere resting on a ground plane, lit by two point lights.
func NewDefaultScene() *Scene {
	red := material.Material{
		Colour:    core.NewVec3(0.9, 0.2, 0.2),
		KAmbient:  1.0,
		KDiffuse:  0.8,
		KSpecular: 0.5,
		Shine:     30,
	}
	green := material.Material{
		Colour:    core.NewVec3(0.2, 0.8, 0.3),
		KAmbient:  1.0,
		KDiffuse:  0.8,
		KSpecular: 0.3,
		Shine:     10,
	}
	mirror := material.Material{
		Colour:    core.NewVec3(0.9, 0.9, 0.9),
		KAmbient:  0.2,
		KDiffuse:  0.1,
		KSpecular: 0.8,
		KReflect:  0.8,
		Shine:     200,
	}
	ground := material.Matte(core.NewVec3(0.6, 0.6, 0.6), 1.0, 0.9)

	return &Scene{
		Camera: Camera{
			Position:       core.NewVec3(0, -6, 1.5),
			Direction:      core.NewVec3(0, 1, -0.15),
			ScreenDistance: 1,
			ScreenWidth:    1.6,
			ScreenHeight:   0.9,
			ScreenColumns:  800,
			ScreenRows:     450,
		},
		AmbientLight: core.NewVec3(0.1, 0.1, 0.1),
		Background:   core.NewVec3(0.05, 0.07, 0.12),
		Lights: []LightSource{
			{Colour: core.NewVec3(1, 1, 1), Pos: core.NewVec3(-4, -4, 6)},
			{Colour: core.NewVec3(0.4, 0.35, 0.3), Pos: core.NewVec3(5, -2, 4)},
		},
		Objects: []SceneObject{
			{Shape: geometry.NewSphere(core.NewVec3(-1.5, 0.5, 1), 1), Material: red},
			{Shape: geometry.NewSphere(core.NewVec3(1.5, 0, 1), 1), Material: green},
			{Shape: geometry.NewSphere(core.NewVec3(0, 2.5, 1.2), 1.2), Material: mirror},
			{Shape: geometry.NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1)), Material: ground},
		},
	}
}

// NewSphereScene creates a single white-lit sphere that fills the
// frame: the camera looks down -Y at a unit sphere at the origin.
func NewSphereScene() *Scene {
	white := material.Material{
		Colour:    core.NewVec3(1, 1, 1),
		KAmbient:  1.0,
		KDiffuse:  0.9,
		KSpecular: 0.2,
		Shine:     20,
	}

	return &Scene{
		Camera: Camera{
			Position:       core.NewVec3(0, 5, 0),
			Direction:      core.NewVec3(0, -1, 0),
			ScreenDistance: 1,
			ScreenWidth:    0.8,
			ScreenHeight:   0.8,
			ScreenColumns:  200,
			ScreenRows:     200,
		},
		AmbientLight: core.NewVec3(0.1, 0.1, 0.1),
		Lights: []LightSource{
			// Above and behind the camera, so brightness falls off from
			// the center of the frame toward the silhouette
			{Colour: core.NewVec3(1, 1, 1), Pos: core.NewVec3(0, 6, 3)},
		},
		Objects: []SceneObject{
			{Shape: geometry.NewSphere(core.NewVec3(0, 0, 0), 1), Material: white},
		},
	}
}

// NewMirrorBoxScene creates two facing perfect mirrors with a diffuse
// sphere between them. Rays bounce between the mirrors until the depth
// ceiling cuts them off, so this scene exercises recursion termination.
func NewMirrorBoxScene() *Scene {
	perfectMirror := material.Mirror(1.0)
	blue := material.Material{
		Colour:    core.NewVec3(0.3, 0.4, 0.9),
		KAmbient:  1.0,
		KDiffuse:  0.8,
		KSpecular: 0.4,
		Shine:     50,
	}

	return &Scene{
		Camera: Camera{
			Position:       core.NewVec3(0, -5, 0),
			Direction:      core.NewVec3(0.2, 1, 0),
			ScreenDistance: 1,
			ScreenWidth:    1.2,
			ScreenHeight:   1.2,
			ScreenColumns:  400,
			ScreenRows:     400,
		},
		AmbientLight: core.NewVec3(0.15, 0.15, 0.15),
		Background:   core.NewVec3(0.02, 0.02, 0.02),
		Lights: []LightSource{
			{Colour: core.NewVec3(1, 1, 1), Pos: core.NewVec3(0, -3, 4)},
		},
		Objects: []SceneObject{
			{Shape: geometry.NewSphere(core.NewVec3(0, 0, 0), 0.8), Material: blue},
			{Shape: geometry.NewPlane(core.NewVec3(-2, 0, 0), core.NewVec3(1, 0, 0)), Material: perfectMirror},
			{Shape: geometry.NewPlane(core.NewVec3(2, 0, 0), core.NewVec3(-1, 0, 0)), Material: perfectMirror},
		},
	}
}
