package taxrules

import "rechnungskern/pkg/models"

// SmallBusinessDisclaimer is printed on every Kleinunternehmer invoice,
// regardless of the nominal rule type (§ 19 UStG overrides everything).
const SmallBusinessDisclaimer = "Gemäß § 19 UStG wird keine Umsatzsteuer berechnet (Kleinunternehmerregelung)."

// disclaimers maps each regime to its invoice-facing legal text. Each
// regime keeps a distinct string so the rendered invoice cites the exact
// statutory basis.
var disclaimers = map[models.TaxRuleType]string{
	models.TaxRuleDEExempt4:       "Steuerfreie Leistung gemäß § 4 UStG.",
	models.TaxRuleDEReverse13b:    "Steuerschuldnerschaft des Leistungsempfängers gemäß § 13b UStG.",
	models.TaxRuleEUReverse18b:    "Steuerschuldnerschaft des Leistungsempfängers (Reverse-Charge-Verfahren) gemäß § 18b UStG, Art. 196 MwStSystRL.",
	models.TaxRuleEUDelivery:      "Steuerfreie innergemeinschaftliche Lieferung gemäß § 4 Nr. 1b i.V.m. § 6a UStG.",
	models.TaxRuleEUOSS:           "Die Umsatzsteuer wird im One-Stop-Shop-Verfahren im Bestimmungsland abgeführt.",
	models.TaxRuleNonEUExport:     "Steuerfreie Ausfuhrlieferung gemäß § 4 Nr. 1a UStG.",
	models.TaxRuleNonEUOutOfScope: "Leistung im Inland nicht steuerbar (§ 1 UStG).",
}

// DisplayText returns the legal disclaimer for a rule type, or "" for
// regimes that need none (regular domestic taxation).
func DisplayText(ruleType models.TaxRuleType) string {
	return disclaimers[ruleType]
}
