package geometry

import (
	"github.com/geomray/go-ray-geometry/pkg/core"
)

// Box is a closed axis-aligned box composed of six rectangles
type Box struct {
	Min, Max core.Point3
	Material core.MaterialID
	sides    *HittableList
}

// NewBox creates an axis-aligned box spanning [min, max]
func NewBox(min, max core.Point3, material core.MaterialID) *Box {
	sides := NewHittableList(
		NewXYRect(min.X, max.X, min.Y, max.Y, max.Z, material),
		NewXYRect(min.X, max.X, min.Y, max.Y, min.Z, material),
		NewXZRect(min.X, max.X, min.Z, max.Z, max.Y, material),
		NewXZRect(min.X, max.X, min.Z, max.Z, min.Y, material),
		NewYZRect(min.Y, max.Y, min.Z, max.Z, max.X, material),
		NewYZRect(min.Y, max.Y, min.Z, max.Z, min.X, material),
	)
	return &Box{Min: min, Max: max, Material: material, sides: sides}
}

// Hit delegates to a linear scan over the six faces
func (b *Box) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	return b.sides.Hit(ray, tMin, tMax)
}

// BoundingBox returns the box's own extent
func (b *Box) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return core.NewAABB(b.Min, b.Max), true
}
