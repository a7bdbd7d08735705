package lifecycle

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rechnungskern/internal/numbering"
	"rechnungskern/pkg/models"
)

func draftInvoice() *models.InvoiceRecord {
	inv := finalizedOriginal()
	inv.Status = models.StatusDraft
	inv.InvoiceNumber = ""
	inv.SequentialNumber = 0
	return inv
}

func TestFinalizeInvoice(t *testing.T) {
	ctx := context.Background()
	manager := NewManager(numbering.NewMemorySequence(), 19)

	inv := draftInvoice()
	result, err := manager.FinalizeInvoice(ctx, inv)
	require.NoError(t, err)
	assert.True(t, result.IsValid)

	assert.Equal(t, models.StatusFinalized, inv.Status)
	assert.Equal(t, 1, inv.SequentialNumber)
	assert.Equal(t, "R-2025-001", inv.InvoiceNumber)
	assert.InDelta(t, 1000.00, inv.Amount, 0.001)
	assert.InDelta(t, 190.00, inv.Tax, 0.001)
	assert.InDelta(t, 1190.00, inv.Total, 0.001)

	// The next finalization for the same tenant and year continues the
	// sequence without gaps.
	second := draftInvoice()
	second.ID = "inv-2"
	_, err = manager.FinalizeInvoice(ctx, second)
	require.NoError(t, err)
	assert.Equal(t, 2, second.SequentialNumber)
	assert.Equal(t, "R-2025-002", second.InvoiceNumber)
}

func TestFinalizeInvoiceInvalidDraftBurnsNoNumber(t *testing.T) {
	ctx := context.Background()
	seq := numbering.NewMemorySequence()
	manager := NewManager(seq, 19)

	broken := draftInvoice()
	broken.CustomerName = ""
	broken.CustomerAddress = ""

	result, err := manager.FinalizeInvoice(ctx, broken)
	require.ErrorIs(t, err, ErrInvoiceInvalid)
	assert.False(t, result.IsValid)
	assert.NotEmpty(t, result.Errors)
	assert.Equal(t, models.StatusDraft, broken.Status, "a failed finalization leaves the draft untouched")

	next, err := seq.PeekNext(ctx, "acme", 2025)
	require.NoError(t, err)
	assert.Equal(t, 1, next, "invalid drafts must not consume sequence numbers")
}

func TestFinalizeInvoiceRejectsNonDraft(t *testing.T) {
	manager := NewManager(numbering.NewMemorySequence(), 19)

	_, err := manager.FinalizeInvoice(context.Background(), finalizedOriginal())
	assert.ErrorIs(t, err, ErrNotDraft)
}

func TestFinalizeInvoiceRequiresTenant(t *testing.T) {
	manager := NewManager(numbering.NewMemorySequence(), 19)

	inv := draftInvoice()
	inv.TenantID = ""
	_, err := manager.FinalizeInvoice(context.Background(), inv)
	assert.ErrorIs(t, err, ErrMissingTenant)
}

func TestCreateStorno(t *testing.T) {
	ctx := context.Background()
	seq := numbering.NewMemorySequence()
	manager := NewManager(seq, 19)

	// Advance the counter so the storno number is visibly larger.
	for range 4 {
		_, err := seq.Claim(ctx, "acme", time.Now().Year())
		require.NoError(t, err)
	}

	original := finalizedOriginal()
	storno, countered, err := manager.CreateStorno(ctx, original, "Doppelberechnung", "mmeier")
	require.NoError(t, err)

	assert.True(t, storno.IsStorno)
	assert.Equal(t, 5, storno.SequentialNumber)
	assert.Greater(t, storno.SequentialNumber, original.SequentialNumber)
	assert.InDelta(t, -1190.00, storno.Total, 0.001)

	assert.Equal(t, models.StatusCancelled, countered.Status)
	assert.Equal(t, original.ID, countered.ID)
	assert.Equal(t, models.StatusFinalized, original.Status, "the original record itself is not mutated")
}

func TestCreateStornoRejectsUncancellable(t *testing.T) {
	manager := NewManager(numbering.NewMemorySequence(), 19)
	ctx := context.Background()

	draft := draftInvoice()
	_, _, err := manager.CreateStorno(ctx, draft, "reason", "admin")
	assert.ErrorIs(t, err, ErrNotCancellable)

	storno := finalizedOriginal()
	storno.Status = models.StatusStorno
	_, _, err = manager.CreateStorno(ctx, storno, "reason", "admin")
	assert.ErrorIs(t, err, ErrNotCancellable)

	cancelled := finalizedOriginal()
	cancelled.Status = models.StatusCancelled
	_, _, err = manager.CreateStorno(ctx, cancelled, "reason", "admin")
	assert.ErrorIs(t, err, ErrNotCancellable)
}
