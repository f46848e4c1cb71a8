package geometry

import (
	"math"
	"testing"

	"github.com/geomray/go-ray-geometry/pkg/core"
)

func TestHittableListClosestHit(t *testing.T) {
	// Three spheres stacked along the ray; the scan must return the nearest
	list := NewHittableList(
		NewSphere(core.NewVec3(0, 0, 10), 1, core.MaterialID(1)),
		NewSphere(core.NewVec3(0, 0, 4), 1, core.MaterialID(2)),
		NewSphere(core.NewVec3(0, 0, 7), 1, core.MaterialID(3)),
	)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))

	rec, isHit := list.Hit(ray, 0.001, math.Inf(1))
	if !isHit {
		t.Fatal("expected hit")
	}
	if rec.T != 3 {
		t.Errorf("T = %v, want 3", rec.T)
	}
	if rec.Material != core.MaterialID(2) {
		t.Errorf("Material = %v, want 2", rec.Material)
	}
}

func TestHittableListMiss(t *testing.T) {
	list := NewHittableList(
		NewSphere(core.NewVec3(0, 10, 0), 1, core.MaterialNone),
	)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))

	if _, isHit := list.Hit(ray, 0.001, math.Inf(1)); isHit {
		t.Error("expected miss")
	}

	if _, isHit := NewHittableList().Hit(ray, 0.001, math.Inf(1)); isHit {
		t.Error("empty list should never hit")
	}
}

func TestHittableListAddAndClear(t *testing.T) {
	list := NewHittableList()
	list.Add(NewSphere(core.NewVec3(0, 0, 5), 1, core.MaterialNone))
	if len(list.Objects) != 1 {
		t.Fatalf("len = %d, want 1", len(list.Objects))
	}
	list.Clear()
	if len(list.Objects) != 0 {
		t.Fatalf("len after Clear = %d, want 0", len(list.Objects))
	}
}

// unboundedShape is a stand-in for an infinite primitive
type unboundedShape struct{}

func (unboundedShape) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	return nil, false
}

func (unboundedShape) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return core.AABB{}, false
}

func TestHittableListBoundingBox(t *testing.T) {
	list := NewHittableList(
		NewSphere(core.NewVec3(0, 0, 0), 1, core.MaterialNone),
		NewSphere(core.NewVec3(5, 0, 0), 1, core.MaterialNone),
	)

	box, ok := list.BoundingBox(0, 1)
	if !ok {
		t.Fatal("expected bounding box")
	}
	if !vec3Equal(box.Min, core.NewVec3(-1, -1, -1), epsilon) {
		t.Errorf("Min = %v, want (-1,-1,-1)", box.Min)
	}
	if !vec3Equal(box.Max, core.NewVec3(6, 1, 1), epsilon) {
		t.Errorf("Max = %v, want (6,1,1)", box.Max)
	}
}

func TestHittableListBoundingBoxUndefined(t *testing.T) {
	if _, ok := NewHittableList().BoundingBox(0, 1); ok {
		t.Error("empty list must have no bounding box")
	}

	withUnbounded := NewHittableList(
		NewSphere(core.NewVec3(0, 0, 0), 1, core.MaterialNone),
		unboundedShape{},
	)
	if _, ok := withUnbounded.BoundingBox(0, 1); ok {
		t.Error("a list with an unbounded member must have no bounding box")
	}
}
