package geometry

import (
	"math"

	"github.com/geomray/go-ray-geometry/pkg/core"
)

// ConstantMedium is a homogeneous, isotropic participating medium filling
// an arbitrary closed boundary shape. Unlike every other shape, its Hit
// is probabilistic: a scatter point is sampled from the exponential
// free-path distribution along the chord the ray cuts through the
// boundary, so the result varies draw to draw.
//
// The sampler passed at construction is consulted on every Hit call.
// When queries run on multiple goroutines, give each worker its own
// medium sampler or a thread-safe source.
type ConstantMedium struct {
	boundary      core.Hittable
	negInvDensity float64
	phase         core.MaterialID
	sampler       core.Sampler
}

// NewConstantMedium wraps a closed boundary shape with a medium of the
// given density whose scatter events carry the phase-function material
func NewConstantMedium(boundary core.Hittable, density float64, phase core.MaterialID, sampler core.Sampler) *ConstantMedium {
	return &ConstantMedium{
		boundary:      boundary,
		negInvDensity: -1.0 / density,
		phase:         phase,
		sampler:       sampler,
	}
}

// Hit finds the chord the ray cuts through the boundary, samples an
// exponential free-path distance, and reports a scatter point if the
// path ends inside the chord
func (m *ConstantMedium) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	// Entry over the unrestricted range, exit from just past entry.
	// Works for rays starting inside the boundary too.
	rec1, isHit := m.boundary.Hit(ray, math.Inf(-1), math.Inf(1))
	if !isHit {
		return nil, false
	}
	rec2, isHit := m.boundary.Hit(ray, rec1.T+1e-4, math.Inf(1))
	if !isHit {
		return nil, false
	}

	t1, t2 := rec1.T, rec2.T
	if t1 < tMin {
		t1 = tMin
	}
	if t2 > tMax {
		t2 = tMax
	}
	if t1 >= t2 {
		return nil, false
	}
	if t1 < 0 {
		t1 = 0
	}

	rayLength := ray.Direction.Length()
	distanceInsideBoundary := (t2 - t1) * rayLength
	hitDistance := m.negInvDensity * math.Log(m.sampler.Float64())

	if hitDistance > distanceInsideBoundary {
		return nil, false
	}

	t := t1 + hitDistance/rayLength
	return &core.HitRecord{
		T:     t,
		Point: ray.At(t),
		// Arbitrary for an isotropic medium
		Normal:    core.NewVec3(1, 0, 0),
		FrontFace: true,
		Material:  m.phase,
	}, true
}

// BoundingBox is the boundary's box
func (m *ConstantMedium) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return m.boundary.BoundingBox(time0, time1)
}
