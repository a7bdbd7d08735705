package taxrules

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"rechnungskern/pkg/models"
)

// TaxResult is the outcome of a tax calculation. Net + Tax == Gross holds
// exactly at 2 decimal places.
type TaxResult struct {
	Net         float64 `json:"net"`
	Tax         float64 `json:"tax"`
	Gross       float64 `json:"gross"`
	DisplayText string  `json:"displayText,omitempty"`
}

var one = decimal.NewFromInt(1)
var hundred = decimal.NewFromInt(100)

// CalculateTax computes net, tax and gross for an amount under the given
// regime. isGross says whether amount was entered gross; once no tax
// applies the entry mode is irrelevant and net == gross == amount.
//
// Small business (§ 19 UStG) overrides the nominal rule type and always
// yields the § 19 disclaimer. Amounts round half-up to 2 decimals at the
// final step only, never on intermediates.
func CalculateTax(amount, taxRate float64, isGross bool, ruleType models.TaxRuleType, isSmallBusiness bool) TaxResult {
	if isSmallBusiness {
		return TaxResult{
			Net:         round2(amount),
			Tax:         0,
			Gross:       round2(amount),
			DisplayText: SmallBusinessDisclaimer,
		}
	}

	if ruleType.IsZeroTax() {
		return TaxResult{
			Net:         round2(amount),
			Tax:         0,
			Gross:       round2(amount),
			DisplayText: DisplayText(ruleType),
		}
	}

	amt := decimal.NewFromFloat(amount)
	rate := decimal.NewFromFloat(taxRate).Div(hundred)

	if isGross {
		// Derive net from gross, then take tax as the exact remainder so
		// net + tax == gross survives the rounding.
		gross := amt.Round(2)
		net := amt.Div(one.Add(rate)).Round(2)
		tax := gross.Sub(net)
		return TaxResult{
			Net:   net.InexactFloat64(),
			Tax:   tax.InexactFloat64(),
			Gross: gross.InexactFloat64(),
		}
	}

	net := amt.Round(2)
	tax := amt.Mul(rate).Round(2)
	gross := net.Add(tax)
	return TaxResult{
		Net:   net.InexactFloat64(),
		Tax:   tax.InexactFloat64(),
		Gross: gross.InexactFloat64(),
	}
}

// CalculateInvoiceTotals recomputes the aggregate amounts of an invoice
// from its items. Line totals are derived from quantity, unit price and
// discount; line taxes are summed unrounded and rounded once at the
// invoice level.
func CalculateInvoiceTotals(inv *models.InvoiceRecord, defaultRate float64) {
	net := decimal.Zero
	tax := decimal.Zero

	zeroTax := inv.IsSmallBusiness || inv.TaxRuleType.IsZeroTax()

	for i := range inv.Items {
		item := &inv.Items[i]

		lineNet := decimal.NewFromFloat(item.Quantity).Mul(decimal.NewFromFloat(item.UnitPrice))
		if item.DiscountPercent > 0 {
			discount := decimal.NewFromFloat(item.DiscountPercent).Div(hundred)
			lineNet = lineNet.Mul(one.Sub(discount))
		}
		item.Total = lineNet.Round(2).InexactFloat64()
		net = net.Add(lineNet)

		if zeroTax {
			continue
		}
		rate := item.TaxRate
		if rate == 0 {
			rate = defaultRate
		}
		tax = tax.Add(lineNet.Mul(decimal.NewFromFloat(rate).Div(hundred)))
	}

	inv.Amount = net.Round(2).InexactFloat64()
	inv.Tax = tax.Round(2).InexactFloat64()
	inv.Total = net.Round(2).Add(tax.Round(2)).InexactFloat64()

	if inv.IsSmallBusiness {
		inv.TaxDisplayText = SmallBusinessDisclaimer
	} else if text := DisplayText(inv.TaxRuleType); text != "" {
		inv.TaxDisplayText = text
	}
}

// FormatInvoiceNumber renders the canonical invoice number, e.g.
// FormatInvoiceNumber(7, 2025) == "R-2025-007". A year of 0 means the
// current year.
func FormatInvoiceNumber(sequentialNumber, year int) string {
	if year == 0 {
		year = time.Now().Year()
	}
	return fmt.Sprintf("R-%d-%03d", year, sequentialNumber)
}

// round2 rounds half away from zero to 2 decimal places, matching the
// invoice-level rounding used everywhere else in the engine.
func round2(x float64) float64 {
	return decimal.NewFromFloat(x).Round(2).InexactFloat64()
}
