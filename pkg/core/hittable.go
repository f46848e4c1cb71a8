package core

// MaterialID is an opaque handle into the material table owned by the
// scene. The geometry core never resolves it; it only carries it from
// the shape that was hit to whoever asked.
type MaterialID uint32

// MaterialNone is the zero handle, meaning no material assigned
const MaterialNone MaterialID = 0

// HitRecord contains information about a ray-shape intersection.
// A record is built fresh for every successful hit and replaced
// wholesale, never patched field by field across calls.
type HitRecord struct {
	Point     Point3     // Point of intersection
	Normal    Vec3       // Unit normal, oriented against the incoming ray
	T         float64    // Parameter t along the ray
	U, V      float64    // Surface coordinates in [0,1]²
	FrontFace bool       // Whether the ray hit the front face
	Material  MaterialID // Material of the hit shape
}

// SetFaceNormal sets the normal vector and determines front/back face.
// The stored normal always points into the half-space the ray came from.
func (h *HitRecord) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// Hittable is the contract every shape implements. The set of
// implementations is fixed: Sphere, MovingSphere, the three axis
// rectangles, Box, Translate, RotateY, ConstantMedium, BVHNode and
// HittableList; all intersection code dispatches through this interface.
type Hittable interface {
	// Hit returns the nearest intersection with t in (tMin, tMax], or
	// false if the ray misses. A miss is the ordinary outcome, not an
	// error.
	Hit(ray Ray, tMin, tMax float64) (*HitRecord, bool)

	// BoundingBox returns a box containing the shape over [time0, time1],
	// or false if the shape is unbounded.
	BoundingBox(time0, time1 float64) (AABB, bool)
}

// Logger interface for geometry diagnostics
type Logger interface {
	Printf(format string, args ...interface{})
}

// NopLogger discards all output
type NopLogger struct{}

// Printf implements Logger
func (NopLogger) Printf(format string, args ...interface{}) {}
