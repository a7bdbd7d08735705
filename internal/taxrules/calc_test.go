package taxrules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rechnungskern/pkg/models"
)

func TestCalculateTaxNetEntry(t *testing.T) {
	result := CalculateTax(1000, 19, false, models.TaxRuleDETaxable, false)

	assert.InDelta(t, 1000.00, result.Net, 0.001)
	assert.InDelta(t, 190.00, result.Tax, 0.001)
	assert.InDelta(t, 1190.00, result.Gross, 0.001)
	assert.Empty(t, result.DisplayText)
}

func TestCalculateTaxGrossEntry(t *testing.T) {
	result := CalculateTax(1190, 19, true, models.TaxRuleDETaxable, false)

	assert.InDelta(t, 1000.00, result.Net, 0.001)
	assert.InDelta(t, 190.00, result.Tax, 0.001)
	assert.InDelta(t, 1190.00, result.Gross, 0.001)
}

func TestCalculateTaxReducedRate(t *testing.T) {
	result := CalculateTax(100, 7, false, models.TaxRuleDEReduced, false)

	assert.InDelta(t, 7.00, result.Tax, 0.001)
	assert.InDelta(t, 107.00, result.Gross, 0.001)
}

func TestCalculateTaxZeroTaxRegimes(t *testing.T) {
	zeroTaxTypes := []models.TaxRuleType{
		models.TaxRuleEUReverse18b,
		models.TaxRuleDEReverse13b,
		models.TaxRuleNonEUExport,
		models.TaxRuleDEExempt4,
	}

	for _, ruleType := range zeroTaxTypes {
		t.Run(string(ruleType), func(t *testing.T) {
			for _, isGross := range []bool{false, true} {
				result := CalculateTax(1234.56, 19, isGross, ruleType, false)

				assert.Zero(t, result.Tax, "no VAT may be computed for %s", ruleType)
				assert.InDelta(t, 1234.56, result.Net, 0.001, "entry mode is irrelevant once no tax applies")
				assert.InDelta(t, 1234.56, result.Gross, 0.001)
				assert.NotEmpty(t, result.DisplayText, "regime needs its legal disclaimer")
			}
		})
	}
}

func TestCalculateTaxDistinctDisclaimers(t *testing.T) {
	seen := map[string]models.TaxRuleType{}
	for _, ruleType := range []models.TaxRuleType{
		models.TaxRuleEUReverse18b,
		models.TaxRuleDEReverse13b,
		models.TaxRuleNonEUExport,
		models.TaxRuleDEExempt4,
	} {
		text := CalculateTax(100, 19, false, ruleType, false).DisplayText
		require.NotEmpty(t, text)
		if prev, dup := seen[text]; dup {
			t.Fatalf("disclaimer for %s duplicates %s", ruleType, prev)
		}
		seen[text] = ruleType
	}
}

func TestCalculateTaxSmallBusinessOverrides(t *testing.T) {
	// § 19 UStG wins over any nominal rule type and always yields the § 19
	// disclaimer.
	for _, ruleType := range []models.TaxRuleType{
		models.TaxRuleDETaxable,
		models.TaxRuleEUReverse18b,
		models.TaxRuleEUOSS,
	} {
		result := CalculateTax(500, 19, false, ruleType, true)
		assert.Zero(t, result.Tax)
		assert.InDelta(t, 500.00, result.Net, 0.001)
		assert.InDelta(t, 500.00, result.Gross, 0.001)
		assert.Equal(t, SmallBusinessDisclaimer, result.DisplayText)
	}
}

func TestCalculateTaxRoundTrip(t *testing.T) {
	// Net -> gross -> net must recover the original within a cent.
	amounts := []float64{1.00, 9.99, 123.45, 1000.00, 33333.33}
	for _, net := range amounts {
		forward := CalculateTax(net, 19, false, models.TaxRuleDETaxable, false)
		back := CalculateTax(forward.Gross, 19, true, models.TaxRuleDETaxable, false)
		assert.InDelta(t, net, back.Net, 0.01, "round trip of %.2f", net)
	}
}

func TestCalculateTaxRoundingIdentity(t *testing.T) {
	// Net + tax must equal gross exactly at 2 decimals, even for amounts
	// where the division produces a repeating fraction.
	for _, gross := range []float64{100.00, 0.03, 19.99, 111.11, 999.95} {
		result := CalculateTax(gross, 19, true, models.TaxRuleDETaxable, false)
		assert.InDelta(t, result.Gross, result.Net+result.Tax, 0.0001,
			"identity broken for gross %.2f: net=%.2f tax=%.2f", gross, result.Net, result.Tax)
	}
}

func TestCalculateTaxHalfUpRounding(t *testing.T) {
	// 0.125 * 19% = 0.02375 -> 0.02; 50.13 * 19% = 9.5247 -> 9.52;
	// 26.45 * 19% = 5.0255 -> 5.03.
	assert.InDelta(t, 0.02, CalculateTax(0.125, 19, false, models.TaxRuleDETaxable, false).Tax, 0.0001)
	assert.InDelta(t, 9.52, CalculateTax(50.13, 19, false, models.TaxRuleDETaxable, false).Tax, 0.0001)
	assert.InDelta(t, 5.03, CalculateTax(26.45, 19, false, models.TaxRuleDETaxable, false).Tax, 0.0001)
}

func TestCalculateInvoiceTotals(t *testing.T) {
	inv := &models.InvoiceRecord{
		TaxRuleType: models.TaxRuleDETaxable,
		Items: []models.InvoiceItem{
			{Description: "Beratung", Quantity: 2, UnitPrice: 500},
			{Description: "Fahrtkosten", Quantity: 1, UnitPrice: 100, DiscountPercent: 10},
		},
	}

	CalculateInvoiceTotals(inv, 19)

	assert.InDelta(t, 1000.00, inv.Items[0].Total, 0.001)
	assert.InDelta(t, 90.00, inv.Items[1].Total, 0.001)
	assert.InDelta(t, 1090.00, inv.Amount, 0.001)
	assert.InDelta(t, 207.10, inv.Tax, 0.001)
	assert.InDelta(t, 1297.10, inv.Total, 0.001)
}

func TestCalculateInvoiceTotalsSmallBusiness(t *testing.T) {
	inv := &models.InvoiceRecord{
		IsSmallBusiness: true,
		TaxRuleType:     models.TaxRuleDETaxable,
		Items: []models.InvoiceItem{
			{Description: "Leistung", Quantity: 3, UnitPrice: 100},
		},
	}

	CalculateInvoiceTotals(inv, 19)

	assert.Zero(t, inv.Tax)
	assert.InDelta(t, 300.00, inv.Amount, 0.001)
	assert.InDelta(t, 300.00, inv.Total, 0.001)
	assert.Equal(t, SmallBusinessDisclaimer, inv.TaxDisplayText)
}

func TestCalculateInvoiceTotalsRoundsOnceAtInvoiceLevel(t *testing.T) {
	// Three line taxes of 0.0019 each sum to 0.0057 -> 0.01 at the invoice
	// level. Per-line rounding would have produced 0.00.
	inv := &models.InvoiceRecord{
		TaxRuleType: models.TaxRuleDETaxable,
		Items: []models.InvoiceItem{
			{Quantity: 1, UnitPrice: 0.01},
			{Quantity: 1, UnitPrice: 0.01},
			{Quantity: 1, UnitPrice: 0.01},
		},
	}

	CalculateInvoiceTotals(inv, 19)

	assert.InDelta(t, 0.01, inv.Tax, 0.0001)
}

func TestFormatInvoiceNumber(t *testing.T) {
	assert.Equal(t, "R-2025-007", FormatInvoiceNumber(7, 2025))
	assert.Equal(t, "R-2024-001", FormatInvoiceNumber(1, 2024))
	assert.Equal(t, "R-2025-123", FormatInvoiceNumber(123, 2025))
	assert.Equal(t, "R-2025-1234", FormatInvoiceNumber(1234, 2025), "numbers beyond 999 keep all digits")
}
