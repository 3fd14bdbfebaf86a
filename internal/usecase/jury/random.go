package jury

import (
	"math/rand"
	"sync"
)

// Sampler draws a bounded uniform random sample from a candidate pool.
// The source is injected so tests can seed it deterministically; the
// service seeds it from the clock at startup.
type Sampler struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewSampler(src rand.Source) *Sampler {
	return &Sampler{rng: rand.New(src)}
}

// Sample shuffles a copy of ids and returns the first n. When the pool
// is smaller than n the whole pool comes back shuffled.
func (s *Sampler) Sample(ids []string, n int) []string {
	if n <= 0 || len(ids) == 0 {
		return nil
	}

	shuffled := make([]string, len(ids))
	copy(shuffled, ids)

	s.mu.Lock()
	s.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	s.mu.Unlock()

	if n > len(shuffled) {
		n = len(shuffled)
	}
	return shuffled[:n]
}
