package renderer

import (
	"image"
	"image/color"
	"math"
	"math/rand"
	"runtime"
	"sync"

	"github.com/geomray/go-ray-geometry/pkg/core"
)

// ShadingMode selects what the preview visualizes
type ShadingMode string

const (
	// ShadeNormal colors each pixel by the hit normal mapped to RGB
	ShadeNormal ShadingMode = "normal"
	// ShadeDepth colors each pixel by hit distance, near = bright
	ShadeDepth ShadingMode = "depth"
)

// Options configures a preview render
type Options struct {
	Width, Height   int
	SamplesPerPixel int
	Mode            ShadingMode
	Seed            int64
	Workers         int // 0 means GOMAXPROCS
	TMin, TMax      float64
}

// Preview renders a geometry-only visualization of a shape tree: no
// materials, no light transport, just the nearest intersection per ray
// shaded by normal or depth. The tree is shared read-only between
// workers; each worker owns its sampler, so renders are deterministic
// for a fixed seed and worker-row assignment.
type Preview struct {
	root   core.Hittable
	camera *Camera
	opts   Options
}

// NewPreview creates a preview renderer over an assembled shape tree
func NewPreview(root core.Hittable, camera *Camera, opts Options) *Preview {
	if opts.SamplesPerPixel <= 0 {
		opts.SamplesPerPixel = 4
	}
	if opts.Workers <= 0 {
		opts.Workers = runtime.GOMAXPROCS(0)
	}
	if opts.TMin == 0 {
		opts.TMin = 0.001
	}
	if opts.TMax == 0 {
		opts.TMax = math.Inf(1)
	}
	if opts.Mode == "" {
		opts.Mode = ShadeNormal
	}
	return &Preview{root: root, camera: camera, opts: opts}
}

// Render traces the full image, splitting rows across workers
func (p *Preview) Render() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.opts.Width, p.opts.Height))

	rows := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < p.opts.Workers; w++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			sampler := core.NewRandomSampler(rand.New(rand.NewSource(p.opts.Seed + int64(workerID))))
			for y := range rows {
				p.renderRow(img, y, sampler)
			}
		}(w)
	}

	for y := 0; y < p.opts.Height; y++ {
		rows <- y
	}
	close(rows)
	wg.Wait()

	return img
}

func (p *Preview) renderRow(img *image.RGBA, y int, sampler core.Sampler) {
	for x := 0; x < p.opts.Width; x++ {
		var sum core.Color
		for s := 0; s < p.opts.SamplesPerPixel; s++ {
			u := (float64(x) + sampler.Float64()) / float64(p.opts.Width-1)
			v := (float64(y) + sampler.Float64()) / float64(p.opts.Height-1)
			ray := p.camera.GetRay(u, v, sampler)
			sum = sum.Add(p.shade(ray, sampler))
		}
		c := sum.Multiply(1.0 / float64(p.opts.SamplesPerPixel))
		// Image rows run top to bottom, viewport v runs bottom to top
		img.SetRGBA(x, p.opts.Height-1-y, color.RGBA{
			R: floatToByte(c.X),
			G: floatToByte(c.Y),
			B: floatToByte(c.Z),
			A: 255,
		})
	}
}

func (p *Preview) shade(ray core.Ray, sampler core.Sampler) core.Color {
	rec, isHit := p.root.Hit(ray, p.opts.TMin, p.opts.TMax)
	if !isHit {
		return backgroundColor(ray)
	}

	switch p.opts.Mode {
	case ShadeDepth:
		// Exponential falloff keeps distant geometry visible
		brightness := math.Exp(-0.05 * rec.T)
		return core.NewVec3(brightness, brightness, brightness)
	default:
		n := rec.Normal
		return core.NewVec3(n.X+1, n.Y+1, n.Z+1).Multiply(0.5)
	}
}

// backgroundColor returns the familiar white-to-blue vertical gradient
func backgroundColor(ray core.Ray) core.Color {
	unit := ray.Direction.Normalize()
	t := 0.5 * (unit.Y + 1.0)
	white := core.NewVec3(1, 1, 1)
	blue := core.NewVec3(0.5, 0.7, 1.0)
	return white.Multiply(1 - t).Add(blue.Multiply(t))
}

func floatToByte(f float64) uint8 {
	if f < 0 {
		f = 0
	}
	if f > 1 {
		f = 1
	}
	return uint8(f * 255.999)
}
