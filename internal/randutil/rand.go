// Package randutil builds random sources that are safe to share between
// goroutines.
//
// A bare *rand.Rand is not safe for concurrent use. Components that live for
// the whole process (the engine behind an HTTP server) get one wrapping a
// mutex-guarded source instead.
package randutil

import (
	"math/rand"
	"sync"
	"time"
)

type lockedSource struct {
	mu  sync.Mutex
	src rand.Source64
}

func (s *lockedSource) Int63() int64 {
	s.mu.Lock()
	n := s.src.Int63()
	s.mu.Unlock()
	return n
}

func (s *lockedSource) Uint64() uint64 {
	s.mu.Lock()
	n := s.src.Uint64()
	s.mu.Unlock()
	return n
}

func (s *lockedSource) Seed(seed int64) {
	s.mu.Lock()
	s.src.Seed(seed)
	s.mu.Unlock()
}

// New returns a time-seeded *rand.Rand safe for concurrent use.
func New() *rand.Rand {
	return NewSeeded(time.Now().UnixNano())
}

// NewSeeded returns a deterministic *rand.Rand safe for concurrent use.
func NewSeeded(seed int64) *rand.Rand {
	src := rand.NewSource(seed).(rand.Source64)
	return rand.New(&lockedSource{src: src})
}

// Between returns a uniform integer in [lo, hi].
func Between(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}

// Pick returns a uniformly chosen element of items.
func Pick[T any](rng *rand.Rand, items []T) T {
	return items[rng.Intn(len(items))]
}
