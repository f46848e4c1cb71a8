package scene

import (
	"fmt"

	"github.com/geomray/go-ray-geometry/pkg/core"
	"github.com/geomray/go-ray-geometry/pkg/geometry"
)

// Scene is an assembled primitive set ready for querying: the root
// Hittable (usually a BVH), camera hints for the preview renderer, and
// the material table the opaque handles resolve against. Once assembled
// a scene is read-only and safe to share across concurrent callers.
type Scene struct {
	Root      core.Hittable
	World     *geometry.HittableList // Brute-force view of the same shapes
	Materials *MaterialRegistry
	Camera    CameraConfig
	Time0     float64
	Time1     float64
}

// CameraConfig holds the viewing parameters a scene recommends
type CameraConfig struct {
	LookFrom core.Point3
	LookAt   core.Point3
	VUp      core.Vec3
	VFovDeg  float64
}

// MaterialRegistry maps human-readable material names to the opaque
// handles the geometry carries. The geometry core never looks inside a
// handle; resolution happens here, at the scene boundary.
type MaterialRegistry struct {
	names map[core.MaterialID]string
	ids   map[string]core.MaterialID
	next  core.MaterialID
}

// NewMaterialRegistry creates an empty registry
func NewMaterialRegistry() *MaterialRegistry {
	return &MaterialRegistry{
		names: make(map[core.MaterialID]string),
		ids:   make(map[string]core.MaterialID),
		next:  core.MaterialNone + 1,
	}
}

// Register returns the handle for a material name, allocating one on
// first use
func (r *MaterialRegistry) Register(name string) core.MaterialID {
	if id, ok := r.ids[name]; ok {
		return id
	}
	id := r.next
	r.next++
	r.ids[name] = id
	r.names[id] = name
	return id
}

// Name resolves a handle back to its material name
func (r *MaterialRegistry) Name(id core.MaterialID) (string, bool) {
	name, ok := r.names[id]
	return name, ok
}

// Build assembles a named demo scene. The sampler drives both BVH axis
// selection and any media in the scene, so a fixed seed reproduces the
// exact same tree and scatter behavior.
func Build(name string, sampler core.Sampler, logger core.Logger) (*Scene, error) {
	switch name {
	case "cornell":
		return NewCornellSmokeScene(sampler, logger), nil
	case "spheres":
		return NewSphereFieldScene(sampler, logger), nil
	default:
		return nil, fmt.Errorf("unknown scene %q", name)
	}
}

// NewCornellSmokeScene builds a Cornell box holding two rotated,
// translated boxes filled with participating media. Exercises the
// rectangle kinds, Box, Translate, RotateY and ConstantMedium.
func NewCornellSmokeScene(sampler core.Sampler, logger core.Logger) *Scene {
	materials := NewMaterialRegistry()
	red := materials.Register("red")
	white := materials.Register("white")
	green := materials.Register("green")
	light := materials.Register("light")
	smoke := materials.Register("smoke")
	fog := materials.Register("fog")

	world := geometry.NewHittableList(
		geometry.NewYZRect(0, 555, 0, 555, 555, green),
		geometry.NewYZRect(0, 555, 0, 555, 0, red),
		geometry.NewXZRect(113, 443, 127, 432, 554, light),
		geometry.NewXZRect(0, 555, 0, 555, 555, white),
		geometry.NewXZRect(0, 555, 0, 555, 0, white),
		geometry.NewXYRect(0, 555, 0, 555, 555, white),
	)

	// Media draw from their sampler on every query; lock it so the
	// assembled scene stays safe for parallel render workers
	mediaSampler := core.NewLockedSampler(sampler)

	var tall core.Hittable = geometry.NewBox(
		core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), white)
	tall = geometry.NewRotateY(tall, 15)
	tall = geometry.NewTranslate(tall, core.NewVec3(265, 0, 295))
	world.Add(geometry.NewConstantMedium(tall, 0.01, smoke, mediaSampler))

	var short core.Hittable = geometry.NewBox(
		core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), white)
	short = geometry.NewRotateY(short, -18)
	short = geometry.NewTranslate(short, core.NewVec3(130, 0, 65))
	world.Add(geometry.NewConstantMedium(short, 0.01, fog, mediaSampler))

	return &Scene{
		Root:      geometry.NewBVH(world.Objects, 0, 1, sampler, logger),
		World:     world,
		Materials: materials,
		Camera: CameraConfig{
			LookFrom: core.NewVec3(278, 278, -800),
			LookAt:   core.NewVec3(278, 278, 0),
			VUp:      core.NewVec3(0, 1, 0),
			VFovDeg:  40,
		},
		Time0: 0,
		Time1: 1,
	}
}

// NewSphereFieldScene builds a ground plane rectangle under a grid of
// static and moving spheres. Exercises Sphere, MovingSphere and a BVH
// deep enough to matter.
func NewSphereFieldScene(sampler core.Sampler, logger core.Logger) *Scene {
	materials := NewMaterialRegistry()
	ground := materials.Register("ground")
	matte := materials.Register("matte")
	metal := materials.Register("metal")
	glass := materials.Register("glass")

	world := geometry.NewHittableList(
		geometry.NewXZRect(-20, 20, -20, 20, 0, ground),
	)

	for a := -5; a < 5; a++ {
		for b := -5; b < 5; b++ {
			center := core.NewVec3(
				float64(a)+0.9*sampler.Float64(),
				0.2,
				float64(b)+0.9*sampler.Float64(),
			)
			choose := sampler.Float64()
			switch {
			case choose < 0.6:
				// Matte spheres bob upward over the shutter interval
				center1 := center.Add(core.NewVec3(0, sampler.Float64Range(0, 0.5), 0))
				world.Add(geometry.NewMovingSphere(center, center1, 0, 1, 0.2, matte))
			case choose < 0.85:
				world.Add(geometry.NewSphere(center, 0.2, metal))
			default:
				world.Add(geometry.NewSphere(center, 0.2, glass))
			}
		}
	}

	world.Add(
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, glass),
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, matte),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, metal),
	)

	return &Scene{
		Root:      geometry.NewBVH(world.Objects, 0, 1, sampler, logger),
		World:     world,
		Materials: materials,
		Camera: CameraConfig{
			LookFrom: core.NewVec3(13, 2, 3),
			LookAt:   core.NewVec3(0, 0, 0),
			VUp:      core.NewVec3(0, 1, 0),
			VFovDeg:  20,
		},
		Time0: 0,
		Time1: 1,
	}
}
