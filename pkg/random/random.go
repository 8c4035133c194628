// Package random provides the randomness providers the crossover operator
// draws from. Nothing here touches the math/rand global source except to
// pick a seed when none is given.
package random

import (
	"fmt"
	"math/rand"
	"sync"
)

// Source draws uniform integers in [0, n). *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// New returns a generator seeded with seed (0 = random seed).
func New(seed int64) *rand.Rand {
	if seed == 0 {
		seed = rand.Int63()
	}
	return rand.New(rand.NewSource(seed))
}

// Locked serializes draws on a shared Source so it can be used from several
// goroutines as one sequential stream.
type Locked struct {
	mu  sync.Mutex
	src Source
}

// NewLocked wraps src. src must not be used directly afterwards.
func NewLocked(src Source) *Locked {
	return &Locked{src: src}
}

// Intn draws from the wrapped source under the lock.
func (l *Locked) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.src.Intn(n)
}

// Scripted replays a fixed sequence of draws. It panics when the script runs
// out or a draw is outside [0, n).
type Scripted struct {
	draws []int
	pos   int
}

// NewScripted returns a source that yields draws in order.
func NewScripted(draws ...int) *Scripted {
	return &Scripted{draws: draws}
}

// Intn returns the next scripted draw, checking it against [0, n).
func (s *Scripted) Intn(n int) int {
	if s.pos >= len(s.draws) {
		panic(fmt.Sprintf("random: script exhausted after %d draws", len(s.draws)))
	}
	v := s.draws[s.pos]
	if v < 0 || v >= n {
		panic(fmt.Sprintf("random: scripted draw %d is %d, outside [0, %d)", s.pos, v, n))
	}
	s.pos++
	return v
}

// Used returns how many draws have been consumed.
func (s *Scripted) Used() int {
	return s.pos
}
