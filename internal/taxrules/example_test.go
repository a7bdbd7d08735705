package taxrules_test

import (
	"fmt"

	"rechnungskern/internal/taxrules"
	"rechnungskern/pkg/models"
)

// Example demonstrates a regular domestic tax calculation from a net amount.
func Example() {
	result := taxrules.CalculateTax(1000, 19, false, models.TaxRuleDETaxable, false)

	fmt.Printf("Netto:  %.2f EUR\n", result.Net)
	fmt.Printf("Steuer: %.2f EUR\n", result.Tax)
	fmt.Printf("Brutto: %.2f EUR\n", result.Gross)

	// Output:
	// Netto:  1000.00 EUR
	// Steuer: 190.00 EUR
	// Brutto: 1190.00 EUR
}

// ExampleCalculateTax_reverseCharge shows that reverse-charge invoices
// carry no VAT but must print the statutory disclaimer.
func ExampleCalculateTax_reverseCharge() {
	result := taxrules.CalculateTax(5000, 19, false, models.TaxRuleDEReverse13b, false)

	fmt.Printf("Steuer: %.2f EUR\n", result.Tax)
	fmt.Println(result.DisplayText)

	// Output:
	// Steuer: 0.00 EUR
	// Steuerschuldnerschaft des Leistungsempfängers gemäß § 13b UStG.
}

// ExampleFormatInvoiceNumber shows the canonical invoice number format.
func ExampleFormatInvoiceNumber() {
	fmt.Println(taxrules.FormatInvoiceNumber(7, 2025))

	// Output:
	// R-2025-007
}
