// Package numbering provides gap-free sequential invoice numbers per
// tenant and calendar year (fortlaufende Nummerierung, GoBD).
//
// Computing the next number and durably claiming it are two separate
// steps: PeekNext is a read, Claim is the transactional read-increment.
// Concurrent finalizations must go through Claim so no two callers ever
// observe the same number.
package numbering

import (
	"context"
	"errors"
)

// ErrSequenceConflict is returned when a claim lost a write race and
// should be retried by the caller.
var ErrSequenceConflict = errors.New("sequence number claim conflict")

// Sequence hands out per-(tenant, year) invoice numbers. Implementations
// must make Claim atomic against concurrent callers.
type Sequence interface {
	// PeekNext returns the number the next claim would produce, without
	// claiming it. Purely informational; a concurrent claim can invalidate
	// the answer immediately.
	PeekNext(ctx context.Context, tenantID string, year int) (int, error)

	// Claim atomically increments the counter and returns the claimed
	// number. Numbers start at 1 per tenant and year.
	Claim(ctx context.Context, tenantID string, year int) (int, error)
}
