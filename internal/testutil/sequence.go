// Package testutil holds deterministic helpers shared by the harness and tests.
package testutil

import (
	"fmt"
	"sync"
)

// Sequence is a logical clock that can also mint ids from its values.
// The first call to Next returns 1. Safe for concurrent use.
type Sequence struct {
	mu     sync.Mutex
	n      int64
	prefix string
}

// NewSequence returns a sequence whose ids look like prefix-0001.
// An empty prefix defaults to "test-run".
func NewSequence(prefix string) *Sequence {
	if prefix == "" {
		prefix = "test-run"
	}
	return &Sequence{prefix: prefix}
}

// Next advances the sequence and returns the new value.
func (s *Sequence) Next() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.n++
	return s.n
}

// Current returns the last value handed out, or 0.
func (s *Sequence) Current() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.n
}

// NextID advances the sequence and formats the new value as an id.
func (s *Sequence) NextID() string {
	return fmt.Sprintf("%s-%04d", s.prefix, s.Next())
}

// Reset rewinds the sequence so the next value is 1 again.
func (s *Sequence) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.n = 0
}
