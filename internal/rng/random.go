// Package rng implements the seeded random source the sampler draws
// from. Every operation is specified exactly (including the
// consume-and-discard rule callers must honor for PRNG-stream
// preservation) so two runs with the same seed produce identical
// trajectories.
package rng

import (
	"crypto/rand"
	"encoding/binary"
	"math"
	mrand "math/rand"
	"os"
	"time"
)

// Source is a seeded generator exposing exactly the four primitives
// the sampler needs: uniform, edge-weighted, truncated-Gaussian, and
// a fair coin flip. It is not safe for concurrent use — Milo runs one
// trajectory per process, single-threaded.
type Source struct {
	seed int64
	r    *mrand.Rand
}

// New returns a Source seeded with s. Call New(GenerateSeed()) when
// the input file requests a fresh seed.
func New(s int64) *Source {
	return &Source{seed: s, r: mrand.New(mrand.NewSource(s))}
}

// GenerateSeed derives a seed from OS entropy, falling back to a
// process-id/wall-clock mix if the entropy source is unavailable.
func GenerateSeed() int64 {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err == nil {
		v := int64(binary.BigEndian.Uint64(buf[:]))
		if v < 0 {
			v = -v
		}
		return v
	}
	return int64(os.Getpid()) + time.Now().UnixNano()
}

// Seed returns the seed this Source was constructed with.
func (s *Source) Seed() int64 { return s.seed }

// Reset reinitializes the Source with a new seed, generating one from
// entropy if newSeed is nil.
func (s *Source) Reset(newSeed *int64) {
	seed := GenerateSeed()
	if newSeed != nil {
		seed = *newSeed
	}
	s.seed = seed
	s.r = mrand.New(mrand.NewSource(seed))
}

// Uniform draws from [0, 1).
func (s *Source) Uniform() float64 {
	return s.r.Float64()
}

// EdgeWeighted draws sin(2*pi*uniform()), which is bimodal near ±1.
func (s *Source) EdgeWeighted() float64 {
	return math.Sin(2 * math.Pi * s.Uniform())
}

// gaussianSigma is 1/sqrt(2), the standard deviation the reference
// program samples from before rejecting outside [-1, 1].
const gaussianSigma = 1 / math.Sqrt2

// Gaussian draws from Normal(0, 1/sqrt(2)), rejecting and resampling
// until the result lies in [-1, 1].
func (s *Source) Gaussian() float64 {
	for {
		x := s.r.NormFloat64() * gaussianSigma
		if x >= -1 && x <= 1 {
			return x
		}
	}
}

// OneOrNegOne draws +1 or -1 with equal probability.
func (s *Source) OneOrNegOne() float64 {
	if s.Uniform() >= 0.5 {
		return 1
	}
	return -1
}
