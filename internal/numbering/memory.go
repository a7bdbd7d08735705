package numbering

import (
	"context"
	"fmt"
	"sync"
)

// MemorySequence is an in-process Sequence for tests and embedded use.
// Counters do not survive a restart.
type MemorySequence struct {
	mu   sync.Mutex
	last map[string]int
}

// NewMemorySequence creates an empty in-memory sequence.
func NewMemorySequence() *MemorySequence {
	return &MemorySequence{last: make(map[string]int)}
}

func key(tenantID string, year int) string {
	return fmt.Sprintf("%s/%d", tenantID, year)
}

// PeekNext implements Sequence.
func (s *MemorySequence) PeekNext(_ context.Context, tenantID string, year int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last[key(tenantID, year)] + 1, nil
}

// Claim implements Sequence.
func (s *MemorySequence) Claim(_ context.Context, tenantID string, year int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	k := key(tenantID, year)
	s.last[k]++
	return s.last[k], nil
}
