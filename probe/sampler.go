package probe

import (
	"math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"
)

// MaxElevation bounds sampled directions to a forward-facing cone of ±45°
// around the basis forward axis, approximating a natural viewing cone.
const MaxElevation = math.Pi / 4

// ShellSampler draws pseudo-random points from a bounded spherical shell:
// a forward-facing angular cone crossed with a [min, max] distance band.
type ShellSampler struct {
	rng *rand.Rand
}

// NewShellSampler creates a sampler seeded for reproducible draws.
func NewShellSampler(seed uint64) *ShellSampler {
	return &ShellSampler{
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Sample returns center + direction*distance where distance is uniform in
// [minDist, maxDist] and direction is drawn from the sampling cone rotated
// into the given basis. Pass mgl64.QuatIdent() to sample unrotated around a
// fixed center.
func (s *ShellSampler) Sample(center mgl64.Vec3, basis mgl64.Quat, minDist, maxDist float64) mgl64.Vec3 {
	dir := basis.Rotate(s.direction())
	dist := minDist + s.rng.Float64()*(maxDist-minDist)
	return center.Add(dir.Mul(dist))
}

// direction converts uniform (theta, phi) draws to a unit vector with +Z
// forward: azimuth theta in [0, 2π), elevation phi in [-π/4, π/4].
func (s *ShellSampler) direction() mgl64.Vec3 {
	theta := s.rng.Float64() * 2 * math.Pi
	phi := (s.rng.Float64()*2 - 1) * MaxElevation

	return mgl64.Vec3{
		math.Sin(phi) * math.Cos(theta),
		math.Sin(phi) * math.Sin(theta),
		math.Cos(phi),
	}
}

// Float64 exposes the sampler's random stream for auxiliary draws that should
// share the seed, such as per-marker colors.
func (s *ShellSampler) Float64() float64 {
	return s.rng.Float64()
}
