package prng

import (
	"fmt"
	"math"

	"statline/internal/errors"
	"statline/ports"
)

// Sampler draws from common distributions using one underlying source.
// Every sampler call consumes a fixed number of uniforms, so call order fixes the output.
type Sampler struct {
	src   ports.RandomSource
	draws int
}

// NewSampler wraps src. The sampler takes ownership of the source.
func NewSampler(src ports.RandomSource) *Sampler {
	return &Sampler{src: src}
}

// Seeded is shorthand for NewSampler(New(seed)).
func Seeded(seed int64) *Sampler {
	return NewSampler(New(seed))
}

// Float64 returns the next uniform in [0,1).
func (s *Sampler) Float64() float64 {
	s.draws++
	return s.src.Float64()
}

// Draws reports how many uniforms have been consumed.
func (s *Sampler) Draws() int {
	return s.draws
}

// Choice picks set[floor(u*len(set))]. It panics on an empty set: catalogs are
// validated before any sampler sees them.
func Choice[T any](s *Sampler, set []T) T {
	if len(set) == 0 {
		panic("prng: Choice called with an empty set")
	}
	idx := int(math.Floor(s.Float64() * float64(len(set))))
	if idx >= len(set) {
		idx = len(set) - 1
	}
	return set[idx]
}

// Int returns a uniform integer in [min, max]. No draw is consumed when min > max.
func (s *Sampler) Int(min, max int) (int, error) {
	if min > max {
		return 0, errors.InvalidInput(fmt.Sprintf("integer range min %d exceeds max %d", min, max))
	}
	span := float64(max - min + 1)
	v := int(math.Floor(s.Float64()*span)) + min
	if v > max {
		v = max
	}
	return v, nil
}

// Normal samples N(mean, stddev) with the Box-Muller transform, consuming two uniforms.
// Both uniforms are taken as 1-u so they lie in (0,1] and ln never sees zero.
func (s *Sampler) Normal(mean, stddev float64) float64 {
	u1 := 1.0 - s.Float64()
	u2 := 1.0 - s.Float64()
	z := math.Sqrt(-2.0*math.Log(u1)) * math.Sin(2.0*math.Pi*u2)
	return mean + stddev*z
}

// Clamp returns max(lo, min(hi, v)).
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Round rounds half toward positive infinity.
func Round(x float64) float64 {
	return math.Floor(x + 0.5)
}

// RoundInt is Round converted to int.
func RoundInt(x float64) int {
	return int(Round(x))
}

// ClampInt clamps an integer into [lo, hi].
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
