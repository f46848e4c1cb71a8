package geometry

import (
	"github.com/geomray/go-ray-geometry/pkg/core"
)

// MovingSphere is a sphere whose center moves linearly from Center0 at
// Time0 to Center1 at Time1. Construction requires Time0 != Time1.
type MovingSphere struct {
	Center0, Center1 core.Point3
	Time0, Time1     float64
	Radius           float64
	Material         core.MaterialID
}

// NewMovingSphere creates a sphere animated between two keyframe centers
func NewMovingSphere(center0, center1 core.Point3, time0, time1, radius float64, material core.MaterialID) *MovingSphere {
	return &MovingSphere{
		Center0:  center0,
		Center1:  center1,
		Time0:    time0,
		Time1:    time1,
		Radius:   radius,
		Material: material,
	}
}

// Center returns the interpolated center at the given time
func (s *MovingSphere) Center(time float64) core.Point3 {
	frac := (time - s.Time0) / (s.Time1 - s.Time0)
	return s.Center0.Add(s.Center1.Subtract(s.Center0).Multiply(frac))
}

// Hit tests if a ray intersects the sphere at the ray's time stamp
func (s *MovingSphere) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	return sphereHit(ray, s.Center(ray.Time), s.Radius, s.Material, tMin, tMax)
}

// BoundingBox returns a box containing the sphere across [time0, time1]:
// the union of the boxes at the interval's endpoint centers
func (s *MovingSphere) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	radius := core.NewVec3(s.Radius, s.Radius, s.Radius)
	box0 := core.NewAABB(
		s.Center(time0).Subtract(radius),
		s.Center(time0).Add(radius),
	)
	box1 := core.NewAABB(
		s.Center(time1).Subtract(radius),
		s.Center(time1).Add(radius),
	)
	return core.SurroundingBox(box0, box1), true
}
