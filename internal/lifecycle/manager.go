package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"rechnungskern/internal/logger"
	"rechnungskern/internal/numbering"
	"rechnungskern/internal/taxrules"
	"rechnungskern/pkg/models"
)

// Common lifecycle errors
var (
	// ErrInvoiceInvalid is returned when finalization fails validation;
	// the accompanying ValidationResult lists every violation.
	ErrInvoiceInvalid = errors.New("invoice failed validation")

	// ErrNotDraft is returned when finalizing an invoice that already left
	// the draft state. Sequential numbers are assigned exactly once.
	ErrNotDraft = errors.New("invoice is not in draft status")

	// ErrNotCancellable is returned when a Storno is requested for an
	// invoice that was never finalized or is itself a Storno.
	ErrNotCancellable = errors.New("invoice cannot be cancelled")

	// ErrMissingTenant is returned when the invoice carries no tenant id.
	ErrMissingTenant = errors.New("invoice has no tenant id")
)

// Manager orchestrates invoice finalization and Storno generation. The
// pure computations live in taxrules and BuildStorno; the manager adds
// the numbering claim against the sequence store.
type Manager struct {
	seq         numbering.Sequence
	defaultRate float64
	log         zerolog.Logger
}

// NewManager creates a lifecycle manager over the given sequence store.
// defaultRate is the VAT percentage applied to items without their own rate.
func NewManager(seq numbering.Sequence, defaultRate float64) *Manager {
	return &Manager{
		seq:         seq,
		defaultRate: defaultRate,
		log:         logger.WithComponent("lifecycle"),
	}
}

// NextInvoiceNumber returns the number the next finalization for this
// tenant and year would claim, without claiming it.
func (m *Manager) NextInvoiceNumber(ctx context.Context, tenantID string, year int) (int, error) {
	return m.seq.PeekNext(ctx, tenantID, year)
}

// FinalizeInvoice takes a draft, recomputes its totals, validates it and
// claims the next sequential number. On success the invoice carries its
// final identity (number, formatted invoice number, finalized status) and
// must not be renumbered afterwards.
//
// The number is claimed only after validation passes, so invalid drafts
// never burn a sequence slot. The returned ValidationResult lists every
// violation when the error is ErrInvoiceInvalid.
func (m *Manager) FinalizeInvoice(ctx context.Context, inv *models.InvoiceRecord) (taxrules.ValidationResult, error) {
	const op = "FinalizeInvoice"

	if inv.TenantID == "" {
		return taxrules.ValidationResult{}, fmt.Errorf("%s: %w", op, ErrMissingTenant)
	}
	if inv.Status != models.StatusDraft {
		return taxrules.ValidationResult{}, fmt.Errorf("%s: %w (status %q)", op, ErrNotDraft, inv.Status)
	}

	taxrules.CalculateInvoiceTotals(inv, m.defaultRate)

	result := taxrules.ValidateInvoice(inv)
	if !result.IsValid {
		m.log.Warn().
			Str("tenant_id", inv.TenantID).
			Str("invoice_id", inv.ID).
			Int("violations", len(result.Errors)).
			Msg("Invoice failed validation")
		return result, fmt.Errorf("%s: %w", op, ErrInvoiceInvalid)
	}

	now := time.Now()
	year := inv.IssueDate.Year()

	number, err := m.seq.Claim(ctx, inv.TenantID, year)
	if err != nil {
		return result, fmt.Errorf("%s: failed to claim invoice number: %w", op, err)
	}

	inv.SequentialNumber = number
	inv.InvoiceNumber = taxrules.FormatInvoiceNumber(number, year)
	inv.Status = models.StatusFinalized
	inv.UpdatedAt = now

	m.log.Info().
		Str("tenant_id", inv.TenantID).
		Str("invoice_number", inv.InvoiceNumber).
		Float64("total", inv.Total).
		Str("tax_rule", string(inv.TaxRuleType)).
		Msg("Invoice finalized")

	return result, nil
}

// CreateStorno claims a new sequential number and builds the cancellation
// invoice for original. The original record is not mutated; the returned
// second value is a copy of it with status "cancelled" for the caller to
// persist alongside the Storno.
func (m *Manager) CreateStorno(ctx context.Context, original *models.InvoiceRecord, reason, performedBy string) (models.InvoiceRecord, models.InvoiceRecord, error) {
	const op = "CreateStorno"

	if original.TenantID == "" {
		return models.InvoiceRecord{}, models.InvoiceRecord{}, fmt.Errorf("%s: %w", op, ErrMissingTenant)
	}
	switch original.Status {
	case models.StatusFinalized, models.StatusSent, models.StatusPaid, models.StatusOverdue:
		// cancellable
	default:
		return models.InvoiceRecord{}, models.InvoiceRecord{}, fmt.Errorf("%s: %w (status %q)", op, ErrNotCancellable, original.Status)
	}

	now := time.Now()

	number, err := m.seq.Claim(ctx, original.TenantID, now.Year())
	if err != nil {
		return models.InvoiceRecord{}, models.InvoiceRecord{}, fmt.Errorf("%s: failed to claim storno number: %w", op, err)
	}

	storno := BuildStorno(original, reason, performedBy, number, now)

	countered := *original
	countered.Status = models.StatusCancelled
	countered.UpdatedAt = now

	m.log.Info().
		Str("tenant_id", original.TenantID).
		Str("original", original.InvoiceNumber).
		Str("storno", storno.InvoiceNumber).
		Float64("total", storno.Total).
		Msg("Storno invoice created")

	return storno, countered, nil
}
