package geometry

import (
	"math"
	"testing"

	"github.com/geomray/go-ray-geometry/pkg/core"
)

func TestXYRectHit(t *testing.T) {
	rect := NewXYRect(-1, 1, -2, 2, 3, core.MaterialID(1))

	rec, isHit := rect.Hit(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1)), 0.001, math.Inf(1))
	if !isHit {
		t.Fatal("expected hit")
	}
	if rec.T != 3 {
		t.Errorf("T = %v, want 3", rec.T)
	}
	if !vec3Equal(rec.Normal, core.NewVec3(0, 0, -1), epsilon) {
		t.Errorf("Normal = %v, want (0,0,-1)", rec.Normal)
	}
	if rec.FrontFace {
		t.Error("ray along +Z hits the back of a +Z-normal rect")
	}
	if rec.U != 0.5 || rec.V != 0.5 {
		t.Errorf("UV = (%v, %v), want (0.5, 0.5)", rec.U, rec.V)
	}

	// Outside the 2D extent
	miss := core.NewRay(core.NewVec3(5, 0, 0), core.NewVec3(0, 0, 1))
	if _, isHit := rect.Hit(miss, 0.001, math.Inf(1)); isHit {
		t.Error("expected miss outside extent")
	}
}

func TestXZRectHit(t *testing.T) {
	rect := NewXZRect(0, 4, 0, 4, 1, core.MaterialNone)

	rec, isHit := rect.Hit(core.NewRay(core.NewVec3(1, 5, 3), core.NewVec3(0, -1, 0)), 0.001, math.Inf(1))
	if !isHit {
		t.Fatal("expected hit")
	}
	if rec.T != 4 {
		t.Errorf("T = %v, want 4", rec.T)
	}
	if !vec3Equal(rec.Normal, core.NewVec3(0, 1, 0), epsilon) {
		t.Errorf("Normal = %v, want (0,1,0)", rec.Normal)
	}
	if !rec.FrontFace {
		t.Error("downward ray onto a +Y rect is a front face hit")
	}
	if rec.U != 0.25 || rec.V != 0.75 {
		t.Errorf("UV = (%v, %v), want (0.25, 0.75)", rec.U, rec.V)
	}
}

func TestYZRectHit(t *testing.T) {
	rect := NewYZRect(-1, 1, -1, 1, 2, core.MaterialNone)

	rec, isHit := rect.Hit(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0)), 0.001, math.Inf(1))
	if !isHit {
		t.Fatal("expected hit")
	}
	if rec.T != 2 {
		t.Errorf("T = %v, want 2", rec.T)
	}
	if !vec3Equal(rec.Normal, core.NewVec3(-1, 0, 0), epsilon) {
		t.Errorf("Normal = %v, want (-1,0,0)", rec.Normal)
	}
}

func TestRectParallelRayRejected(t *testing.T) {
	rect := NewXYRect(-1, 1, -1, 1, 0, core.MaterialNone)

	tests := []struct {
		name string
		ray  core.Ray
	}{
		// Direction Z is zero: t divides to ±Inf
		{"parallel off plane", core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(1, 0, 0))},
		// Origin in the plane too: t is 0/0 = NaN
		{"parallel in plane", core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, isHit := rect.Hit(tt.ray, 0.001, math.Inf(1)); isHit {
				t.Error("expected degenerate ray to be rejected")
			}
		})
	}
}

func TestRectBoundingBoxPadded(t *testing.T) {
	tests := []struct {
		name string
		rect core.Hittable
		// Axis the plane normal lies along
		axis int
		k    float64
	}{
		{"XY", NewXYRect(0, 1, 0, 1, 5, core.MaterialNone), 2, 5},
		{"XZ", NewXZRect(0, 1, 0, 1, 5, core.MaterialNone), 1, 5},
		{"YZ", NewYZRect(0, 1, 0, 1, 5, core.MaterialNone), 0, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			box, ok := tt.rect.BoundingBox(0, 1)
			if !ok {
				t.Fatal("expected bounding box")
			}
			thickness := box.Max.Axis(tt.axis) - box.Min.Axis(tt.axis)
			if thickness <= 0 {
				t.Error("box must not be zero-thickness along the plane normal")
			}
			if math.Abs(thickness-2*rectPad) > epsilon {
				t.Errorf("thickness = %v, want %v", thickness, 2*rectPad)
			}
			center := (box.Max.Axis(tt.axis) + box.Min.Axis(tt.axis)) / 2
			if math.Abs(center-tt.k) > epsilon {
				t.Errorf("box centered at %v, want %v", center, tt.k)
			}
		})
	}
}
