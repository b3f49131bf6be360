// Package randomtest provides scripted random sources for tests.
package randomtest

import "sync"

// Sequence replays a fixed list of values, cycling when exhausted
type Sequence struct {
	mu     sync.Mutex
	values []float64
	next   int
	calls  int
}

// NewSequence creates a source that returns values in order
func NewSequence(values ...float64) *Sequence {
	if len(values) == 0 {
		values = []float64{0}
	}
	return &Sequence{values: values}
}

// Float64 returns the next scripted value
func (s *Sequence) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := s.values[s.next]
	s.next = (s.next + 1) % len(s.values)
	s.calls++
	return v
}

// Calls returns how many values have been drawn
func (s *Sequence) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}
