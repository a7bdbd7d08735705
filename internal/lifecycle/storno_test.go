package lifecycle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rechnungskern/pkg/models"
)

func finalizedOriginal() *models.InvoiceRecord {
	return &models.InvoiceRecord{
		ID:               "inv-original",
		TenantID:         "acme",
		InvoiceNumber:    "R-2025-004",
		SequentialNumber: 4,
		Subject:          "Beratungsleistungen März",
		Status:           models.StatusFinalized,
		IssueDate:        time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		DueDate:          time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
		CompanyName:      "Muster GmbH",
		CompanyAddress:   "Musterstraße 1, 10115 Berlin",
		CompanyTaxNumber: "29/482/12345",
		CustomerName:     "Beispiel AG",
		CustomerAddress:  "Beispielweg 2, 80331 München",
		Items: []models.InvoiceItem{
			{Description: "Beratung Block A", Quantity: 2, UnitPrice: 250, Total: 500, TaxRate: 19},
			{Description: "Beratung Block B", Quantity: 2, UnitPrice: 250, Total: 500, TaxRate: 19},
		},
		Amount:      1000.00,
		Tax:         190.00,
		Total:       1190.00,
		TaxRuleType: models.TaxRuleDETaxable,
		BankDetails: models.BankDetails{IBAN: "DE02120300000000202051", BIC: "BYLADEM1001"},
	}
}

func TestBuildStornoMirror(t *testing.T) {
	original := finalizedOriginal()
	now := time.Date(2025, 4, 2, 10, 30, 0, 0, time.UTC)

	storno := BuildStorno(original, "Falsche Leistungsbeschreibung", "buchhaltung", 9, now)

	// Aggregates are exact sign-reversed mirrors.
	assert.InDelta(t, -1000.00, storno.Amount, 0.001)
	assert.InDelta(t, -190.00, storno.Tax, 0.001)
	assert.InDelta(t, -1190.00, storno.Total, 0.001)

	// Items negate quantity and total; unit price and tax rate stay.
	require.Len(t, storno.Items, 2)
	for i, item := range storno.Items {
		assert.InDelta(t, -2.0, item.Quantity, 0.001, "item %d", i)
		assert.InDelta(t, -500.00, item.Total, 0.001, "item %d", i)
		assert.InDelta(t, 250.00, item.UnitPrice, 0.001, "unit price must not carry the reversal")
		assert.InDelta(t, 19.0, item.TaxRate, 0.001)
	}

	// Identity and linkage.
	assert.True(t, storno.IsStorno)
	assert.Equal(t, models.StatusStorno, storno.Status)
	assert.Equal(t, "inv-original", storno.OriginalInvoiceID)
	assert.Equal(t, "Falsche Leistungsbeschreibung", storno.StornoReason)
	assert.Equal(t, "buchhaltung", storno.StornoBy)
	assert.Equal(t, now, storno.StornoDate)
	assert.Equal(t, 9, storno.SequentialNumber)
	assert.Greater(t, storno.SequentialNumber, original.SequentialNumber)
	assert.Equal(t, "R-2025-009", storno.InvoiceNumber)
	assert.NotEqual(t, original.ID, storno.ID)

	// Storno invoices are immediately due.
	assert.Equal(t, now, storno.IssueDate)
	assert.Equal(t, now, storno.DueDate)

	// Marker references the original document.
	assert.Equal(t, "STORNO zu Rechnung R-2025-004", storno.Subject)

	// Every non-financial field survives the copy.
	assert.Equal(t, original.CustomerName, storno.CustomerName)
	assert.Equal(t, original.CustomerAddress, storno.CustomerAddress)
	assert.Equal(t, original.BankDetails, storno.BankDetails)
	assert.Equal(t, original.TaxRuleType, storno.TaxRuleType)
}

func TestBuildStornoDoubleNegationGuard(t *testing.T) {
	// A malformed original with already-negative amounts must not negate
	// back into a positive Storno: -abs, never bare negation.
	original := finalizedOriginal()
	original.Amount = -50.00
	original.Tax = -9.50
	original.Total = -59.50
	original.Items = []models.InvoiceItem{
		{Description: "kaputt", Quantity: -1, UnitPrice: 50, Total: -50},
	}

	storno := BuildStorno(original, "Korrektur", "admin", 10, time.Now())

	assert.InDelta(t, -50.00, storno.Amount, 0.001)
	assert.InDelta(t, -9.50, storno.Tax, 0.001)
	assert.InDelta(t, -59.50, storno.Total, 0.001)
	assert.InDelta(t, -1.0, storno.Items[0].Quantity, 0.001)
	assert.InDelta(t, -50.00, storno.Items[0].Total, 0.001)
}

func TestBuildStornoIsPure(t *testing.T) {
	original := finalizedOriginal()
	now := time.Date(2025, 4, 2, 10, 30, 0, 0, time.UTC)

	first := BuildStorno(original, "Doppelberechnung", "mmeier", 9, now)
	second := BuildStorno(original, "Doppelberechnung", "mmeier", 9, now)

	assert.Equal(t, first, second, "identical inputs must yield identical output")
}

func TestBuildStornoDoesNotMutateOriginal(t *testing.T) {
	original := finalizedOriginal()
	before := *original
	beforeItems := make([]models.InvoiceItem, len(original.Items))
	copy(beforeItems, original.Items)

	_ = BuildStorno(original, "Korrektur", "admin", 9, time.Now())

	assert.Equal(t, before.Amount, original.Amount)
	assert.Equal(t, before.Status, original.Status)
	assert.Equal(t, beforeItems, original.Items, "items of the original must stay untouched")
}

func TestBuildStornoDefaultsMissingFields(t *testing.T) {
	// A sparse original (missing invoice number, nil items, no bank
	// details) degrades gracefully instead of propagating absent state.
	original := &models.InvoiceRecord{
		ID:       "inv-sparse",
		TenantID: "acme",
		Status:   models.StatusFinalized,
		Amount:   100,
		Total:    100,
	}

	storno := BuildStorno(original, "Korrektur", "admin", 2, time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC))

	assert.NotNil(t, storno.Items, "items must come back as an empty list, not nil")
	assert.Empty(t, storno.Items)
	assert.Equal(t, "STORNO zu Rechnung inv-sparse", storno.Subject, "falls back to the id when no number exists")
	assert.Equal(t, models.BankDetails{}, storno.BankDetails)
	assert.InDelta(t, -100.00, storno.Amount, 0.001)
	assert.Zero(t, storno.Tax)
}
