package taxrules

import (
	"fmt"
	"math"

	"rechnungskern/pkg/models"
)

// ValidationError describes a single violated requirement on an invoice.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
}

// ValidationResult collects every violation found in one pass. Callers
// render the full list field by field; validation never stops at the
// first failure.
type ValidationResult struct {
	IsValid bool              `json:"isValid"`
	Errors  []ValidationError `json:"errors"`
}

func (r *ValidationResult) add(field, message string) {
	r.Errors = append(r.Errors, ValidationError{Field: field, Message: message})
}

// ValidateInvoice runs the full battery of field-presence and cross-field
// checks required by the selected tax regime and returns all violations.
func ValidateInvoice(inv *models.InvoiceRecord) ValidationResult {
	result := ValidationResult{}

	// Required identity fields
	if inv.CompanyName == "" {
		result.add("companyName", "Firmenname ist erforderlich")
	}
	if inv.CompanyAddress == "" {
		result.add("companyAddress", "Firmenanschrift ist erforderlich")
	}
	if inv.CustomerName == "" {
		result.add("customerName", "Kundenname ist erforderlich")
	}
	if inv.CustomerAddress == "" {
		result.add("customerAddress", "Kundenanschrift ist erforderlich")
	}
	if inv.IssueDate.IsZero() {
		result.add("issueDate", "Rechnungsdatum ist erforderlich")
	}
	if inv.DueDate.IsZero() {
		result.add("dueDate", "Fälligkeitsdatum ist erforderlich")
	}
	if inv.CompanyTaxNumber == "" && inv.CompanyVatID == "" {
		result.add("companyTaxNumber", "Steuernummer oder Umsatzsteuer-ID ist erforderlich (§ 14 UStG)")
	}

	validateItems(inv, &result)
	validateRegime(inv, &result)
	validateAmounts(inv, &result)

	result.IsValid = len(result.Errors) == 0
	return result
}

func validateItems(inv *models.InvoiceRecord, result *ValidationResult) {
	if len(inv.Items) == 0 {
		result.add("items", "Mindestens eine Rechnungsposition ist erforderlich")
		return
	}
	// Storno items legitimately carry negated quantities and totals.
	if inv.IsStorno {
		return
	}
	for i, item := range inv.Items {
		if item.Quantity <= 0 {
			result.add(fmt.Sprintf("items[%d].quantity", i), "Menge muss größer als 0 sein")
		}
		if item.UnitPrice <= 0 {
			result.add(fmt.Sprintf("items[%d].unitPrice", i), "Einzelpreis muss größer als 0 sein")
		}
	}
}

func validateRegime(inv *models.InvoiceRecord, result *ValidationResult) {
	switch inv.TaxRuleType {
	case models.TaxRuleDEReverse13b, models.TaxRuleEUReverse18b:
		if inv.ReverseCharge == nil {
			result.add("reverseChargeInfo", "Reverse-Charge-Rechnung benötigt Angaben zum Leistungsempfänger")
			break
		}
		if inv.ReverseCharge.CustomerVatID == "" {
			result.add("reverseChargeInfo.customerVatId", "Umsatzsteuer-ID des Leistungsempfängers ist erforderlich")
		}
		if inv.ReverseCharge.CountryCode == "" {
			result.add("reverseChargeInfo.countryCode", "EU-Länderkennzeichen des Leistungsempfängers ist erforderlich")
		}
	case models.TaxRuleDEExempt4:
		if inv.ExemptionReason == "" {
			result.add("exemptionReason", "Steuerfreie Rechnung benötigt die Angabe des Befreiungsgrunds")
		}
	case models.TaxRuleEUOSS:
		if inv.OSSNote == "" {
			result.add("ossNote", "OSS-Rechnung benötigt den Hinweis auf das One-Stop-Shop-Verfahren")
		}
	}

	if inv.IsSmallBusiness && inv.Tax != 0 {
		result.add("tax", "Kleinunternehmer dürfen keine Umsatzsteuer ausweisen (§ 19 UStG)")
	}
	if !inv.IsSmallBusiness && inv.TaxRuleType.IsZeroTax() && inv.Tax != 0 {
		result.add("tax", "Für das gewählte Steuerverfahren darf keine Umsatzsteuer ausgewiesen werden")
	}
}

func validateAmounts(inv *models.InvoiceRecord, result *ValidationResult) {
	// Amount + Tax must equal Total within 2-decimal rounding; the Storno
	// mirror preserves the identity with all three values negated.
	if math.Abs(inv.Amount+inv.Tax-inv.Total) > 0.01 {
		result.add("total", fmt.Sprintf("Netto (%.2f) + Steuer (%.2f) ergibt nicht den Gesamtbetrag (%.2f)", inv.Amount, inv.Tax, inv.Total))
	}
}
