package geometry

import (
	"math"

	"github.com/geomray/go-ray-geometry/pkg/core"
)

// Sphere represents a static sphere shape
type Sphere struct {
	Center   core.Point3
	Radius   float64
	Material core.MaterialID
}

// NewSphere creates a new sphere
func NewSphere(center core.Point3, radius float64, material core.MaterialID) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: material,
	}
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	return sphereHit(ray, s.Center, s.Radius, s.Material, tMin, tMax)
}

// sphereHit solves |O + tD - C|² = r² in the half-b form shared by
// Sphere and MovingSphere
func sphereHit(ray core.Ray, center core.Point3, radius float64, material core.MaterialID, tMin, tMax float64) (*core.HitRecord, bool) {
	oc := ray.Origin.Subtract(center)
	a := ray.Direction.LengthSquared()
	halfB := oc.Dot(ray.Direction)
	c := oc.LengthSquared() - radius*radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return nil, false
	}
	sqrtD := math.Sqrt(discriminant)

	// Find the nearest root in (tMin, tMax]. The checks are phrased so a
	// NaN root (degenerate zero-length direction) fails them.
	root := (-halfB - sqrtD) / a
	if !(root > tMin && root <= tMax) {
		root = (-halfB + sqrtD) / a
		if !(root > tMin && root <= tMax) {
			return nil, false
		}
	}

	rec := &core.HitRecord{
		T:        root,
		Point:    ray.At(root),
		Material: material,
	}
	outwardNormal := rec.Point.Subtract(center).Multiply(1.0 / radius)
	rec.U, rec.V = sphereUV(outwardNormal)
	rec.SetFaceNormal(ray, outwardNormal)

	return rec, true
}

// sphereUV maps a point on the unit sphere to [0,1]² surface coordinates.
// theta is the angle up from -Y, phi the angle around Y starting at -X.
func sphereUV(p core.Point3) (u, v float64) {
	theta := math.Acos(-p.Y)
	phi := math.Atan2(-p.Z, p.X) + math.Pi
	return phi / (2 * math.Pi), theta / math.Pi
}

// BoundingBox returns the axis-aligned bounding box for this sphere
func (s *Sphere) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	radius := core.NewVec3(s.Radius, s.Radius, s.Radius)
	return core.NewAABB(
		s.Center.Subtract(radius),
		s.Center.Add(radius),
	), true
}
