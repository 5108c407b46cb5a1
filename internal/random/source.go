// Package random isolates randomized outcome selection behind a seedable
// source so tests can inject deterministic sequences.
package random

import (
	"math/rand"
	"sync"
	"time"
)

// Source produces the randomness used for mob selection, drop rolls and
// loot box rewards.
type Source interface {
	// Float64 returns a value in [0.0, 1.0).
	Float64() float64
	// Intn returns a value in [0, n). Panics if n <= 0.
	Intn(n int) int
}

// New returns a seeded source safe for concurrent use.
func New(seed int64) Source {
	return &locked{r: rand.New(rand.NewSource(seed))} //nolint:gosec // Game logic randomness, not security critical
}

// NewFromTime returns a source seeded from the current time.
func NewFromTime() Source {
	return New(time.Now().UnixNano())
}

// locked serializes access to a rand.Rand; action handlers run on
// concurrent request goroutines.
type locked struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (l *locked) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Float64()
}

func (l *locked) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Intn(n)
}
