// Package lifetime generates reproducible particle lifetimes.
package lifetime

import (
	"math/rand"
)

// Sequence yields lifetimes in [1, max] from an explicitly seeded source.
// A Sequence is not goroutine-safe; give each worker its own.
type Sequence struct {
	rng *rand.Rand
	max int
}

// New returns a sequence seeded with seed. max values below 1 are treated as 1.
func New(seed int64, max int) *Sequence {
	if max < 1 {
		max = 1
	}
	return &Sequence{rng: rand.New(rand.NewSource(seed)), max: max}
}

// Next returns the next lifetime, in frames.
func (s *Sequence) Next() int {
	return 1 + s.rng.Intn(s.max)
}

// Table precomputes n lifetimes.
func (s *Sequence) Table(n int) []int {
	if n <= 0 {
		return nil
	}
	res := make([]int, n)
	for i := range res {
		res[i] = s.Next()
	}
	return res
}

// Fork derives an independent sequence for worker id, so parallel workers
// stay reproducible regardless of scheduling.
func (s *Sequence) Fork(id int) *Sequence {
	return New(s.rng.Int63()^int64(id), s.max)
}
