package geometry

import (
	"github.com/geomray/go-ray-geometry/pkg/core"
)

// rectPad is the half-thickness given to a rectangle's bounding box
// along its plane normal. A true zero-thickness box can fail the slab
// test, so the box is padded slightly instead.
const rectPad = 1e-4

// XYRect is an axis-aligned rectangle in the plane z = K,
// bounded by [X0,X1] x [Y0,Y1]
type XYRect struct {
	X0, X1, Y0, Y1, K float64
	Material          core.MaterialID
}

// NewXYRect creates a rectangle in the plane z = k
func NewXYRect(x0, x1, y0, y1, k float64, material core.MaterialID) *XYRect {
	return &XYRect{X0: x0, X1: x1, Y0: y0, Y1: y1, K: k, Material: material}
}

// Hit tests if a ray crosses the rectangle. A ray parallel to the plane
// divides to ±Inf (or NaN when its origin lies in the plane) here and is
// rejected by the range check below; no explicit zero test.
func (r *XYRect) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	t := (r.K - ray.Origin.Z) / ray.Direction.Z
	if !(t > tMin && t <= tMax) {
		return nil, false
	}
	x := ray.Origin.X + t*ray.Direction.X
	y := ray.Origin.Y + t*ray.Direction.Y
	if x < r.X0 || x > r.X1 || y < r.Y0 || y > r.Y1 {
		return nil, false
	}

	rec := &core.HitRecord{
		T:        t,
		Point:    ray.At(t),
		U:        (x - r.X0) / (r.X1 - r.X0),
		V:        (y - r.Y0) / (r.Y1 - r.Y0),
		Material: r.Material,
	}
	rec.SetFaceNormal(ray, core.NewVec3(0, 0, 1))
	return rec, true
}

// BoundingBox returns the rectangle's box, padded along Z
func (r *XYRect) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return core.NewAABB(
		core.NewVec3(r.X0, r.Y0, r.K-rectPad),
		core.NewVec3(r.X1, r.Y1, r.K+rectPad),
	), true
}

// XZRect is an axis-aligned rectangle in the plane y = K,
// bounded by [X0,X1] x [Z0,Z1]
type XZRect struct {
	X0, X1, Z0, Z1, K float64
	Material          core.MaterialID
}

// NewXZRect creates a rectangle in the plane y = k
func NewXZRect(x0, x1, z0, z1, k float64, material core.MaterialID) *XZRect {
	return &XZRect{X0: x0, X1: x1, Z0: z0, Z1: z1, K: k, Material: material}
}

// Hit tests if a ray crosses the rectangle
func (r *XZRect) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	t := (r.K - ray.Origin.Y) / ray.Direction.Y
	if !(t > tMin && t <= tMax) {
		return nil, false
	}
	x := ray.Origin.X + t*ray.Direction.X
	z := ray.Origin.Z + t*ray.Direction.Z
	if x < r.X0 || x > r.X1 || z < r.Z0 || z > r.Z1 {
		return nil, false
	}

	rec := &core.HitRecord{
		T:        t,
		Point:    ray.At(t),
		U:        (x - r.X0) / (r.X1 - r.X0),
		V:        (z - r.Z0) / (r.Z1 - r.Z0),
		Material: r.Material,
	}
	rec.SetFaceNormal(ray, core.NewVec3(0, 1, 0))
	return rec, true
}

// BoundingBox returns the rectangle's box, padded along Y
func (r *XZRect) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return core.NewAABB(
		core.NewVec3(r.X0, r.K-rectPad, r.Z0),
		core.NewVec3(r.X1, r.K+rectPad, r.Z1),
	), true
}

// YZRect is an axis-aligned rectangle in the plane x = K,
// bounded by [Y0,Y1] x [Z0,Z1]
type YZRect struct {
	Y0, Y1, Z0, Z1, K float64
	Material          core.MaterialID
}

// NewYZRect creates a rectangle in the plane x = k
func NewYZRect(y0, y1, z0, z1, k float64, material core.MaterialID) *YZRect {
	return &YZRect{Y0: y0, Y1: y1, Z0: z0, Z1: z1, K: k, Material: material}
}

// Hit tests if a ray crosses the rectangle
func (r *YZRect) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	t := (r.K - ray.Origin.X) / ray.Direction.X
	if !(t > tMin && t <= tMax) {
		return nil, false
	}
	y := ray.Origin.Y + t*ray.Direction.Y
	z := ray.Origin.Z + t*ray.Direction.Z
	if y < r.Y0 || y > r.Y1 || z < r.Z0 || z > r.Z1 {
		return nil, false
	}

	rec := &core.HitRecord{
		T:        t,
		Point:    ray.At(t),
		U:        (y - r.Y0) / (r.Y1 - r.Y0),
		V:        (z - r.Z0) / (r.Z1 - r.Z0),
		Material: r.Material,
	}
	rec.SetFaceNormal(ray, core.NewVec3(1, 0, 0))
	return rec, true
}

// BoundingBox returns the rectangle's box, padded along X
func (r *YZRect) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return core.NewAABB(
		core.NewVec3(r.K-rectPad, r.Y0, r.Z0),
		core.NewVec3(r.K+rectPad, r.Y1, r.Z1),
	), true
}
