package renderer

import (
	"math"

	"github.com/geomray/go-ray-geometry/pkg/core"
)

// Camera generates primary rays for the preview renderer. It is a plain
// pinhole model with a shutter interval: each ray carries a time stamp
// uniform in [Time0, Time1] so moving shapes smear across the exposure.
type Camera struct {
	origin          core.Point3
	lowerLeftCorner core.Point3
	horizontal      core.Vec3
	vertical        core.Vec3
	time0, time1    float64
}

// CameraOptions configures a camera
type CameraOptions struct {
	LookFrom     core.Point3
	LookAt       core.Point3
	VUp          core.Vec3
	VFovDeg      float64 // Vertical field of view in degrees
	AspectRatio  float64
	Time0, Time1 float64 // Shutter open/close
}

// NewCamera creates a pinhole camera from viewing parameters
func NewCamera(opts CameraOptions) *Camera {
	theta := core.DegreesToRadians(opts.VFovDeg)
	h := math.Tan(theta / 2)
	viewportHeight := 2.0 * h
	viewportWidth := opts.AspectRatio * viewportHeight

	w := opts.LookFrom.Subtract(opts.LookAt).Normalize()
	u := opts.VUp.Cross(w).Normalize()
	v := w.Cross(u)

	origin := opts.LookFrom
	horizontal := u.Multiply(viewportWidth)
	vertical := v.Multiply(viewportHeight)
	lowerLeft := origin.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(w)

	return &Camera{
		origin:          origin,
		lowerLeftCorner: lowerLeft,
		horizontal:      horizontal,
		vertical:        vertical,
		time0:           opts.Time0,
		time1:           opts.Time1,
	}
}

// GetRay returns the ray through viewport coordinates (s, t) in [0,1]²,
// stamped with a time drawn from the shutter interval
func (c *Camera) GetRay(s, t float64, sampler core.Sampler) core.Ray {
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(c.origin)
	time := c.time0
	if c.time1 > c.time0 {
		time = sampler.Float64Range(c.time0, c.time1)
	}
	return core.NewRayAt(c.origin, direction, time)
}
