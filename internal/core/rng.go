package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Range returns a value in [lo, hi). Swapped bounds are reordered.
func (r *RNG) Range(lo, hi float64) float64 {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + r.r.Float64()*(hi-lo)
}

// OpenRange returns a value strictly inside (lo, hi). It returns lo when the
// interval is empty.
func (r *RNG) OpenRange(lo, hi float64) float64 {
	if !(lo < hi) {
		return lo
	}
	for {
		v := r.Range(lo, hi)
		if v > lo {
			return v
		}
	}
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
