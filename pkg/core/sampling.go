package core

import (
	"math/rand"
	"sync"
)

// Sampler provides the uniform random draws used by BVH construction and
// participating-medium free-path sampling.
// Can be swapped out for a fixed-seed source to make tests reproducible.
type Sampler interface {
	// Float64 returns a uniform value in [0, 1)
	Float64() float64
	// Float64Range returns a uniform value in [min, max)
	Float64Range(min, max float64) float64
	// IntRange returns a uniform integer in [min, max] inclusive
	IntRange(min, max int) int
}

// RandomSampler wraps a standard Go random generator
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// Float64 returns a random float64 in [0, 1)
func (r *RandomSampler) Float64() float64 {
	return r.random.Float64()
}

// Float64Range returns a random float64 in [min, max)
func (r *RandomSampler) Float64Range(min, max float64) float64 {
	return min + (max-min)*r.random.Float64()
}

// IntRange returns a random integer in [min, max] inclusive
func (r *RandomSampler) IntRange(min, max int) int {
	return min + r.random.Intn(max-min+1)
}

// LockedSampler serializes access to an underlying sampler so it can be
// shared by concurrent callers. Media queried from parallel render
// workers need this (or a per-worker sampler); everything else in the
// geometry core draws random numbers at build time only.
type LockedSampler struct {
	mu    sync.Mutex
	inner Sampler
}

// NewLockedSampler wraps a sampler with a mutex
func NewLockedSampler(inner Sampler) *LockedSampler {
	return &LockedSampler{inner: inner}
}

// Float64 returns a random float64 in [0, 1)
func (l *LockedSampler) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inner.Float64()
}

// Float64Range returns a random float64 in [min, max)
func (l *LockedSampler) Float64Range(min, max float64) float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inner.Float64Range(min, max)
}

// IntRange returns a random integer in [min, max] inclusive
func (l *LockedSampler) IntRange(min, max int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inner.IntRange(min, max)
}

// RandomVec3 generates a vector with components uniform in [0, 1)
func RandomVec3(sampler Sampler) Vec3 {
	return NewVec3(sampler.Float64(), sampler.Float64(), sampler.Float64())
}

// RandomVec3Range generates a vector with components uniform in [min, max)
func RandomVec3Range(sampler Sampler, min, max float64) Vec3 {
	return NewVec3(
		sampler.Float64Range(min, max),
		sampler.Float64Range(min, max),
		sampler.Float64Range(min, max),
	)
}

// RandomInUnitSphere generates a random point inside the unit sphere
// using rejection sampling
func RandomInUnitSphere(sampler Sampler) Vec3 {
	for {
		p := RandomVec3Range(sampler, -1, 1)
		if p.LengthSquared() < 1 {
			return p
		}
	}
}

// RandomUnitVector generates a uniform random direction on the unit sphere
func RandomUnitVector(sampler Sampler) Vec3 {
	return RandomInUnitSphere(sampler).Normalize()
}

// RandomInHemisphere generates a random point in the unit hemisphere
// around the given normal
func RandomInHemisphere(sampler Sampler, normal Vec3) Vec3 {
	inUnitSphere := RandomInUnitSphere(sampler)
	if inUnitSphere.Dot(normal) > 0 {
		return inUnitSphere
	}
	return inUnitSphere.Negate()
}

// RandomInUnitDisk generates a random point in the unit disk in the
// z = 0 plane (for depth of field)
func RandomInUnitDisk(sampler Sampler) Vec3 {
	for {
		p := NewVec3(sampler.Float64Range(-1, 1), sampler.Float64Range(-1, 1), 0)
		if p.LengthSquared() < 1 {
			return p
		}
	}
}
