package geometry

import (
	"math"

	"github.com/geomray/go-ray-geometry/pkg/core"
)

// Translate rigidly offsets a wrapped shape. The ray is moved into the
// shape's local space instead of moving the shape's geometry.
type Translate struct {
	Offset core.Vec3
	inner  core.Hittable
}

// NewTranslate wraps a shape with a rigid spatial offset
func NewTranslate(inner core.Hittable, offset core.Vec3) *Translate {
	return &Translate{Offset: offset, inner: inner}
}

// Hit intersects the child with the offset-subtracted ray and shifts the
// resulting point back. Translation leaves directions unchanged, but the
// face classification is recomputed against the moved ray so it stays
// consistent with the stored normal.
func (t *Translate) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	movedRay := core.NewRayAt(ray.Origin.Subtract(t.Offset), ray.Direction, ray.Time)

	rec, isHit := t.inner.Hit(movedRay, tMin, tMax)
	if !isHit {
		return nil, false
	}

	rec.Point = rec.Point.Add(t.Offset)
	rec.SetFaceNormal(movedRay, rec.Normal)

	return rec, true
}

// BoundingBox shifts the child's box by the offset
func (t *Translate) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	box, ok := t.inner.BoundingBox(time0, time1)
	if !ok {
		return core.AABB{}, false
	}
	return core.NewAABB(box.Min.Add(t.Offset), box.Max.Add(t.Offset)), true
}

// RotateY rigidly rotates a wrapped shape about the world Y axis.
// The trig values and the world-space bounding box are precomputed at
// construction; queries only rotate the ray in and the hit back out.
type RotateY struct {
	sinTheta, cosTheta float64
	hasBox             bool
	bbox               core.AABB
	inner              core.Hittable
}

// NewRotateY wraps a shape with a rotation of angle degrees about Y.
// The world box is built by rotating all eight corners of the child's
// box; hasBox stays false when the child is unbounded.
func NewRotateY(inner core.Hittable, angleDegrees float64) *RotateY {
	radians := core.DegreesToRadians(angleDegrees)
	r := &RotateY{
		sinTheta: math.Sin(radians),
		cosTheta: math.Cos(radians),
		inner:    inner,
	}

	box, ok := inner.BoundingBox(0, 1)
	r.hasBox = ok
	if !ok {
		return r
	}

	min := core.NewVec3(math.Inf(1), math.Inf(1), math.Inf(1))
	max := core.NewVec3(math.Inf(-1), math.Inf(-1), math.Inf(-1))

	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				x := float64(i)*box.Max.X + float64(1-i)*box.Min.X
				y := float64(j)*box.Max.Y + float64(1-j)*box.Min.Y
				z := float64(k)*box.Max.Z + float64(1-k)*box.Min.Z

				newX := r.cosTheta*x + r.sinTheta*z
				newZ := -r.sinTheta*x + r.cosTheta*z

				min.X = math.Min(min.X, newX)
				min.Y = math.Min(min.Y, y)
				min.Z = math.Min(min.Z, newZ)
				max.X = math.Max(max.X, newX)
				max.Y = math.Max(max.Y, y)
				max.Z = math.Max(max.Z, newZ)
			}
		}
	}

	r.bbox = core.NewAABB(min, max)
	return r
}

// rotateToLocal applies the inverse (negative-angle) rotation
func (r *RotateY) rotateToLocal(v core.Vec3) core.Vec3 {
	return core.NewVec3(
		r.cosTheta*v.X-r.sinTheta*v.Z,
		v.Y,
		r.sinTheta*v.X+r.cosTheta*v.Z,
	)
}

// rotateToWorld applies the forward rotation
func (r *RotateY) rotateToWorld(v core.Vec3) core.Vec3 {
	return core.NewVec3(
		r.cosTheta*v.X+r.sinTheta*v.Z,
		v.Y,
		-r.sinTheta*v.X+r.cosTheta*v.Z,
	)
}

// Hit rotates the ray into the child's frame, intersects, then rotates
// the point and normal back to world space. Face orientation is
// recomputed against the rotated ray.
func (r *RotateY) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	rotatedRay := core.NewRayAt(
		r.rotateToLocal(ray.Origin),
		r.rotateToLocal(ray.Direction),
		ray.Time,
	)

	rec, isHit := r.inner.Hit(rotatedRay, tMin, tMax)
	if !isHit {
		return nil, false
	}

	rec.Point = r.rotateToWorld(rec.Point)
	rec.SetFaceNormal(rotatedRay, r.rotateToWorld(rec.Normal))

	return rec, true
}

// BoundingBox returns the precomputed world-space box
func (r *RotateY) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return r.bbox, r.hasBox
}
