// Package material defines the surface description used by the shading
// model: a base colour plus ambient, diffuse, specular and reflection
// coefficients. Materials are small value types owned by exactly one
// scene object and are never mutated after scene construction.
package material

import "github.com/ilan-segal/raytracer/pkg/core"

// Material describes how a surface responds to light.
// Coefficients are conceptually in [0,1] and Shine ≥ 0, but values are
// not validated; out-of-range inputs simply produce out-of-range linear
// colors, which are clamped at display encoding.
type Material struct {
	Colour    core.Vec3 // Base RGB color
	KAmbient  float64   // Ambient reflectance
	KDiffuse  float64   // Diffuse reflectance
	KSpecular float64   // Specular reflectance
	KReflect  float64   // Mirror reflectivity; 0 disables reflection rays
	Shine     float64   // Specular exponent
}

// Matte returns a material with no specular or mirror response
func Matte(colour core.Vec3, kAmbient, kDiffuse float64) Material {
	return Material{Colour: colour, KAmbient: kAmbient, KDiffuse: kDiffuse}
}

// Mirror returns a material whose color comes entirely from reflection
func Mirror(kReflect float64) Material {
	return Material{Colour: core.NewVec3(1, 1, 1), KReflect: kReflect}
}
