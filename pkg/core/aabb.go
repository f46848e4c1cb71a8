package core

import "math"

// AABB represents an axis-aligned bounding box
type AABB struct {
	Min Point3 // Minimum corner
	Max Point3 // Maximum corner
}

// NewAABB creates a new AABB from min and max points
func NewAABB(min, max Point3) AABB {
	return AABB{Min: min, Max: max}
}

// Hit tests if a ray intersects this AABB within [tMin, tMax] using the
// slab method. A zero direction component divides to ±Inf, which the
// interval comparisons handle without a special case; a ray parallel to
// a slab it sits outside of yields an empty interval and a miss.
func (aabb AABB) Hit(ray Ray, tMin, tMax float64) bool {
	for axis := 0; axis < 3; axis++ {
		invD := 1.0 / ray.Direction.Axis(axis)
		t0 := (aabb.Min.Axis(axis) - ray.Origin.Axis(axis)) * invD
		t1 := (aabb.Max.Axis(axis) - ray.Origin.Axis(axis)) * invD
		if invD < 0 {
			t0, t1 = t1, t0
		}
		if t0 > tMin {
			tMin = t0
		}
		if t1 < tMax {
			tMax = t1
		}
		if tMax <= tMin {
			return false
		}
	}
	return true
}

// SurroundingBox returns the smallest AABB containing both boxes.
// Componentwise min/max, so it is associative and commutative.
func SurroundingBox(a, b AABB) AABB {
	small := NewVec3(
		math.Min(a.Min.X, b.Min.X),
		math.Min(a.Min.Y, b.Min.Y),
		math.Min(a.Min.Z, b.Min.Z),
	)
	big := NewVec3(
		math.Max(a.Max.X, b.Max.X),
		math.Max(a.Max.Y, b.Max.Y),
		math.Max(a.Max.Z, b.Max.Z),
	)
	return AABB{Min: small, Max: big}
}

// Center returns the center point of the AABB
func (aabb AABB) Center() Point3 {
	return aabb.Min.Add(aabb.Max).Multiply(0.5)
}

// Size returns the extent of the AABB along each axis
func (aabb AABB) Size() Vec3 {
	return aabb.Max.Subtract(aabb.Min)
}

// Contains returns true if the point lies inside or on the AABB
func (aabb AABB) Contains(p Point3) bool {
	return p.X >= aabb.Min.X && p.X <= aabb.Max.X &&
		p.Y >= aabb.Min.Y && p.Y <= aabb.Max.Y &&
		p.Z >= aabb.Min.Z && p.Z <= aabb.Max.Z
}

// IsValid returns true if min <= max on all axes
func (aabb AABB) IsValid() bool {
	return aabb.Min.X <= aabb.Max.X &&
		aabb.Min.Y <= aabb.Max.Y &&
		aabb.Min.Z <= aabb.Max.Z
}
