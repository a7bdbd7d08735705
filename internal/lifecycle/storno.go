package lifecycle

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"rechnungskern/internal/taxrules"
	"rechnungskern/pkg/models"
)

// BuildStorno constructs the cancellation invoice that reverses original.
// It is a pure function of its arguments: identical inputs yield identical
// output. Callers pass now explicitly; it is the only wall-clock-derived
// value in the record.
//
// Every amount is negated via -abs, never bare negation, so a malformed
// original that already carries negative amounts cannot double-negate into
// a positive Storno. The unit price stays unchanged; only quantity and
// line total carry the sign reversal.
func BuildStorno(original *models.InvoiceRecord, reason, performedBy string, sequentialNumber int, now time.Time) models.InvoiceRecord {
	storno := sanitize(original)

	for i := range storno.Items {
		storno.Items[i].Quantity = -math.Abs(storno.Items[i].Quantity)
		storno.Items[i].Total = -math.Abs(storno.Items[i].Total)
	}
	storno.Amount = -math.Abs(storno.Amount)
	storno.Tax = -math.Abs(storno.Tax)
	storno.Total = -math.Abs(storno.Total)

	storno.ID = uuid.NewSHA1(uuid.NameSpaceOID, stornoSeed(original, reason, performedBy, sequentialNumber)).String()
	storno.SequentialNumber = sequentialNumber
	storno.InvoiceNumber = taxrules.FormatInvoiceNumber(sequentialNumber, now.Year())
	// Storno invoices are immediately due.
	storno.IssueDate = now
	storno.DueDate = now
	storno.Status = models.StatusStorno
	storno.IsStorno = true
	storno.OriginalInvoiceID = original.ID
	storno.StornoReason = reason
	storno.StornoDate = now
	storno.StornoBy = performedBy
	storno.CreatedAt = now
	storno.UpdatedAt = now

	ref := original.InvoiceNumber
	if ref == "" {
		ref = original.ID
	}
	storno.Subject = fmt.Sprintf("STORNO zu Rechnung %s", ref)

	return storno
}

// stornoSeed makes the generated id a deterministic function of the
// inputs, keeping BuildStorno pure.
func stornoSeed(original *models.InvoiceRecord, reason, performedBy string, sequentialNumber int) []byte {
	return []byte(fmt.Sprintf("storno:%s:%s:%s:%d", original.ID, reason, performedBy, sequentialNumber))
}

// sanitize returns a fully-defaulted deep copy of the original. Optional
// fields that never got set come back as their zero values instead of
// propagating absent/undefined state into the persisted Storno record.
// Negative originals pass through untouched here; the -abs negation in
// BuildStorno normalizes them.
func sanitize(original *models.InvoiceRecord) models.InvoiceRecord {
	out := *original

	out.Items = make([]models.InvoiceItem, len(original.Items))
	copy(out.Items, original.Items)

	if original.ReverseCharge != nil {
		rc := *original.ReverseCharge
		out.ReverseCharge = &rc
	}

	return out
}
