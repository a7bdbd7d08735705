package models

// TaxRuleType identifies the statutory VAT regime applied to an invoice.
type TaxRuleType string

const (
	// Domestic regimes
	TaxRuleDETaxable    TaxRuleType = "de_taxable"     // 19% Umsatzsteuer
	TaxRuleDEReduced    TaxRuleType = "de_reduced"     // 7% ermäßigter Steuersatz
	TaxRuleDEExempt4    TaxRuleType = "de_exempt_4"    // steuerfrei nach § 4 UStG
	TaxRuleDEReverse13b TaxRuleType = "de_reverse_13b" // Reverse-Charge § 13b UStG

	// EU regimes
	TaxRuleEUReverse18b TaxRuleType = "eu_reverse_18b" // Reverse-Charge § 18b UStG
	TaxRuleEUDelivery   TaxRuleType = "eu_delivery"    // innergemeinschaftliche Lieferung
	TaxRuleEUOSS        TaxRuleType = "eu_oss"         // One-Stop-Shop

	// Non-EU regimes
	TaxRuleNonEUExport     TaxRuleType = "non_eu_export"       // Ausfuhrlieferung
	TaxRuleNonEUOutOfScope TaxRuleType = "non_eu_out_of_scope" // nicht steuerbar im Inland
)

// TaxRuleCategory groups rule types for UI display. The category never
// drives the calculation itself.
type TaxRuleCategory string

const (
	TaxCategoryDomestic   TaxRuleCategory = "DOMESTIC"
	TaxCategoryEUReverse  TaxRuleCategory = "EU_REVERSE"
	TaxCategoryEUDelivery TaxRuleCategory = "EU_DELIVERY"
	TaxCategoryNonEU      TaxRuleCategory = "NON_EU"
	TaxCategoryTaxFree    TaxRuleCategory = "TAX_FREE"
)

// Category returns the UI grouping for a rule type.
func (t TaxRuleType) Category() TaxRuleCategory {
	switch t {
	case TaxRuleDETaxable, TaxRuleDEReduced:
		return TaxCategoryDomestic
	case TaxRuleDEReverse13b, TaxRuleEUReverse18b:
		return TaxCategoryEUReverse
	case TaxRuleEUDelivery, TaxRuleEUOSS:
		return TaxCategoryEUDelivery
	case TaxRuleNonEUExport, TaxRuleNonEUOutOfScope:
		return TaxCategoryNonEU
	case TaxRuleDEExempt4:
		return TaxCategoryTaxFree
	default:
		return TaxCategoryDomestic
	}
}

// IsZeroTax reports whether the regime forbids charging VAT on the invoice.
// The small-business exemption (§ 19 UStG) is tracked on the invoice itself
// and overrides any nominal rule type.
func (t TaxRuleType) IsZeroTax() bool {
	switch t {
	case TaxRuleEUReverse18b, TaxRuleDEReverse13b, TaxRuleNonEUExport, TaxRuleDEExempt4:
		return true
	}
	return false
}

// Valid reports whether t is one of the known rule types.
func (t TaxRuleType) Valid() bool {
	switch t {
	case TaxRuleDETaxable, TaxRuleDEReduced, TaxRuleDEExempt4, TaxRuleDEReverse13b,
		TaxRuleEUReverse18b, TaxRuleEUDelivery, TaxRuleEUOSS,
		TaxRuleNonEUExport, TaxRuleNonEUOutOfScope:
		return true
	}
	return false
}
