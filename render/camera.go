// Package render keeps the game engine's view of a scene table up to date
// and resolves which objects lie under the pointer.
package render

import (
	"math"

	"github.com/mokiat/gomath/dprec"
)

const (
	minPolar    = 0.05
	maxPolar    = math.Pi - 0.05
	minDistance = 2.0
	maxDistance = 60.0

	orbitSpeed = 0.01 // radians per pixel
	zoomFactor = 0.9  // per scroll unit
)

// Camera orbits around a target point. Azimuth is measured around the Y
// axis starting at +Z, Polar from the +Y axis.
type Camera struct {
	Target   dprec.Vec3
	Distance float64
	Azimuth  float64
	Polar    float64
	FoV      float64 // vertical, in degrees
}

func DefaultCamera() Camera {
	return Camera{
		Target:   dprec.ZeroVec3(),
		Distance: 12,
		Azimuth:  0,
		Polar:    math.Pi / 2.4,
		FoV:      75,
	}
}

// Orbit rotates the camera by a pointer drag of dx, dy pixels.
func (c *Camera) Orbit(dx, dy float64) {
	c.Azimuth -= dx * orbitSpeed
	c.Polar = max(minPolar, min(maxPolar, c.Polar-dy*orbitSpeed))
}

// Zoom moves the camera closer for positive amounts and away for negative.
func (c *Camera) Zoom(amount float64) {
	c.Distance = max(minDistance, min(maxDistance, c.Distance*math.Pow(zoomFactor, amount)))
}

func (c Camera) Eye() dprec.Vec3 {
	sinPolar := math.Sin(c.Polar)
	return dprec.Vec3Sum(c.Target, dprec.NewVec3(
		c.Distance*sinPolar*math.Sin(c.Azimuth),
		c.Distance*math.Cos(c.Polar),
		c.Distance*sinPolar*math.Cos(c.Azimuth),
	))
}

// Rotation orients an engine camera, which looks down its local -Z axis,
// from the eye towards the target.
func (c Camera) Rotation() dprec.Quat {
	return dprec.QuatProd(
		dprec.RotationQuat(dprec.Radians(c.Azimuth), dprec.BasisYVec3()),
		dprec.RotationQuat(dprec.Radians(c.Polar-math.Pi/2), dprec.BasisXVec3()),
	)
}

// Matrix is the camera's world transform.
func (c Camera) Matrix() dprec.Mat4 {
	return dprec.TRSMat4(c.Eye(), c.Rotation(), dprec.NewVec3(1, 1, 1))
}
