package scene

import "github.com/ilan-segal/raytracer/pkg/core"

// DefaultWorldUp is the world-up vector used when a camera does not set
// its own: the unit Z axis.
var DefaultWorldUp = core.NewVec3(0, 0, 1)

// Camera maps pixel coordinates to primary rays using a position, a
// view direction and a viewport placed ScreenDistance along it.
type Camera struct {
	Position       core.Vec3
	Direction      core.Vec3 // Normalized by the camera, not the caller
	ScreenDistance float64
	ScreenWidth    float64
	ScreenHeight   float64
	ScreenColumns  int
	ScreenRows     int

	// WorldUp orients the viewport basis. The zero value selects
	// DefaultWorldUp. If Direction is parallel to WorldUp the cross
	// product degenerates to the zero vector and the basis collapses;
	// the camera does not special-case this, callers must choose a
	// non-parallel up vector.
	WorldUp core.Vec3
}

// Basis returns the viewport basis: u along the view direction,
// v to the right, w up the screen.
func (c *Camera) Basis() (u, v, w core.Vec3) {
	up := c.WorldUp
	if up == (core.Vec3{}) {
		up = DefaultWorldUp
	}
	u = c.Direction.Normalize()
	v = u.Cross(up)
	w = v.Cross(u)
	return u, v, w
}

// Ray returns the primary ray through pixel (x, y). Row 0 is the top of
// the image. The returned direction is not normalized; downstream
// intersection math is direction-length-agnostic.
func (c *Camera) Ray(x, y int) core.Ray {
	// Center of screen is the origin of screen space
	xScreen := float64(x-c.ScreenColumns/2) / float64(c.ScreenColumns) * c.ScreenWidth * 0.5
	yScreen := float64(y-c.ScreenRows/2) / float64(c.ScreenRows) * c.ScreenHeight * -0.5

	u, v, w := c.Basis()
	direction := u.Multiply(c.ScreenDistance).
		Add(v.Multiply(xScreen)).
		Add(w.Multiply(yScreen))

	return core.NewRay(c.Position, direction)
}
