package prng

import (
	"fmt"
	"math"
	"time"
)

const (
	multiplier = 1_103_515_245
	increment  = 12_345
	modulus    = 1 << 31
)

// PseudoRand is a linear congruential generator. It is deterministic for a
// given seed and not suitable for anything security related.
type PseudoRand struct {
	s uint32
}

// NewPseudoRand returns a generator seeded with the current wall clock time
// in milliseconds, truncated to 32 bits.
func NewPseudoRand() *PseudoRand {
	r := &PseudoRand{}
	r.Randomize()
	return r
}

func (r *PseudoRand) Randomize() {
	r.s = uint32(time.Now().UnixMilli())
}

func (r *PseudoRand) Seed(seed uint32) {
	r.s = seed
}

// Uint32 advances the generator and returns a value in [0, 2^31).
func (r *PseudoRand) Uint32() uint32 {
	r.s = (r.s*multiplier + increment) % modulus
	return r.s
}

// Float64 returns a value in [0.0, 1.0).
func (r *PseudoRand) Float64() float64 {
	return float64(r.Uint32()) / modulus
}

// Int32Range returns a value in [min, max). It panics if max <= min.
func (r *PseudoRand) Int32Range(min, max int32) int32 {
	if max <= min {
		panic(fmt.Sprintf("prng: invalid range [%d, %d)", min, max))
	}
	span := float64(int64(max) - int64(min))
	return int32(math.Floor(float64(min) + span*r.Float64()))
}
