// Package sampler provides bounded random sampling for drills.
package sampler

import (
	"cmp"
	"math/rand"
	"time"
)

// Sampler produces bounded random values.
type Sampler struct {
	rnd *rand.Rand
}

// New returns a Sampler. A zero seed uses the current time.
func New(seed int64) *Sampler {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Sampler{rnd: rand.New(rand.NewSource(seed))}
}

// Between returns a value drawn uniformly from [lo, hi).
func (s *Sampler) Between(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + s.rnd.Float64()*(hi-lo)
}

// Duration returns a duration drawn uniformly from [lo, hi).
func (s *Sampler) Duration(lo, hi time.Duration) time.Duration {
	if hi <= lo {
		return lo
	}
	return lo + time.Duration(s.rnd.Int63n(int64(hi-lo)))
}

// Clamp limits v to [lo, hi].
func Clamp[T cmp.Ordered](v, lo, hi T) T {
	return max(lo, min(hi, v))
}
