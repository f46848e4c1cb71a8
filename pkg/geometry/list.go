package geometry

import (
	"github.com/geomray/go-ray-geometry/pkg/core"
)

// HittableList is an unordered collection of shapes intersected by
// linear scan. It doubles as the brute-force reference the BVH is
// checked against.
type HittableList struct {
	Objects []core.Hittable
}

// NewHittableList creates a list from the given shapes
func NewHittableList(objects ...core.Hittable) *HittableList {
	return &HittableList{Objects: objects}
}

// Add appends a shape to the list
func (l *HittableList) Add(objects ...core.Hittable) {
	l.Objects = append(l.Objects, objects...)
}

// Clear removes all shapes from the list
func (l *HittableList) Clear() {
	l.Objects = nil
}

// Hit scans the list once, shrinking the upper bound to the closest hit
// so far, and returns the globally nearest intersection
func (l *HittableList) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	var closest *core.HitRecord
	closestSoFar := tMax

	for _, object := range l.Objects {
		if rec, isHit := object.Hit(ray, tMin, closestSoFar); isHit {
			closestSoFar = rec.T
			closest = rec
		}
	}

	return closest, closest != nil
}

// BoundingBox unions every member's box. It returns false when the list
// is empty or any member is unbounded, since either makes the
// collection's bound undefined.
func (l *HittableList) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	if len(l.Objects) == 0 {
		return core.AABB{}, false
	}

	var box core.AABB
	first := true
	for _, object := range l.Objects {
		objectBox, ok := object.BoundingBox(time0, time1)
		if !ok {
			return core.AABB{}, false
		}
		if first {
			box = objectBox
			first = false
		} else {
			box = core.SurroundingBox(box, objectBox)
		}
	}

	return box, true
}
