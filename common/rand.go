package common

import "time"

// Rand is the source of uniform randomness used by the particle field and
// the decorative effects.
type Rand interface {
	// Float64 returns a number in [0, 1).
	Float64() float64
}

// SeededRNG is a Mulberry32 generator. The same seed always yields the same
// sequence, which keeps particle layouts reproducible in tests.
type SeededRNG struct {
	state uint32
	seed  uint32
}

// NewSeededRNG creates a generator starting at seed.
func NewSeededRNG(seed uint32) *SeededRNG {
	return &SeededRNG{state: seed, seed: seed}
}

// TimeSeed derives a seed from the wall clock for non-reproducible layouts.
func TimeSeed() uint32 {
	n := uint64(time.Now().UnixNano())
	return uint32(n ^ n>>32)
}

// Reset rewinds the generator to its seed.
func (r *SeededRNG) Reset() {
	r.state = r.seed
}

// Float64 implements Rand.
func (r *SeededRNG) Float64() float64 {
	r.state += 0x6D2B79F5
	t := r.state
	t = (t ^ (t >> 15)) * (t | 1)
	t ^= t + (t^(t>>7))*(t|61)
	return float64(t^(t>>14)) / 4294967296.0
}

// Range returns a float in [min, max).
func Range(r Rand, min, max float64) float64 {
	return r.Float64()*(max-min) + min
}

// Intn returns an int in [0, n). n must be positive.
func Intn(r Rand, n int) int {
	i := int(r.Float64() * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}
