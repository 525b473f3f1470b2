// Package prng holds the seeded linear-congruential generator that drives player
// generation and the samplers built on top of it.
package prng

import (
	"math"

	"statline/ports"
)

const (
	Multiplier uint64 = 1103515245
	Increment  uint64 = 12345
	Modulus    uint64 = 1 << 31
)

// largestBelowOne is returned for the single state that would otherwise map to 1.0.
var largestBelowOne = math.Nextafter(1, 0)

// LCG is a linear-congruential generator: state = (a*state + c) mod 2^31.
// The product is computed in uint64, which cannot overflow for a state below 2^31.
type LCG struct {
	state uint64
}

// New seeds a generator. Negative seeds are reduced to their non-negative residue
// mod 2^31; seed 0 is valid and its first step yields the increment.
func New(seed int64) *LCG {
	m := int64(Modulus)
	s := seed % m
	if s < 0 {
		s += m
	}
	return &LCG{state: uint64(s)}
}

// NewSource adapts New to ports.SourceFactory.
func NewSource(seed int64) ports.RandomSource {
	return New(seed)
}

// Next advances the state and returns it.
func (g *LCG) Next() uint64 {
	g.state = (Multiplier*g.state + Increment) % Modulus
	return g.state
}

// Float64 advances the state and returns state/(m-1), kept strictly below 1.
func (g *LCG) Float64() float64 {
	v := float64(g.Next()) / float64(Modulus-1)
	if v >= 1 {
		return largestBelowOne
	}
	return v
}

// State returns the current internal state without advancing.
func (g *LCG) State() uint64 {
	return g.state
}

var _ ports.RandomSource = (*LCG)(nil)
