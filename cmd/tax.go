package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"rechnungskern/internal/logger"
	"rechnungskern/internal/taxrules"
	"rechnungskern/pkg/models"
)

var taxCmd = &cobra.Command{
	Use:   "tax",
	Short: "Compute net, tax and gross for an amount under a tax regime",
	Long: `Compute the statutory tax treatment of a monetary amount.

The amount may be entered net or gross (--gross). For the zero-tax
regimes (Reverse-Charge, Ausfuhr, steuerfrei nach § 4 UStG) and for
Kleinunternehmer (--small-business) no tax is computed and the output
carries the legal disclaimer the invoice must show.`,
	Example: `  # 19% domestic VAT on a net amount
  rechnungskern tax --amount 1000 --rate 19

  # Derive net from a gross amount
  rechnungskern tax --amount 1190 --rate 19 --gross

  # Reverse-Charge invoice to an EU customer
  rechnungskern tax --amount 5000 --rule eu_reverse_18b

  # Kleinunternehmer overrides everything
  rechnungskern tax --amount 500 --rate 19 --small-business`,
	RunE: runTax,
}

func init() {
	rootCmd.AddCommand(taxCmd)

	taxCmd.Flags().Float64("amount", 0, "Monetary amount (EUR)")
	taxCmd.Flags().Float64("rate", 19, "VAT rate in percent")
	taxCmd.Flags().Bool("gross", false, "Amount was entered gross")
	taxCmd.Flags().String("rule", string(models.TaxRuleDETaxable), "Tax rule type")
	taxCmd.Flags().Bool("small-business", false, "Kleinunternehmer (§ 19 UStG)")
	taxCmd.Flags().Bool("json", false, "Output as JSON format")

	_ = taxCmd.MarkFlagRequired("amount")
}

func runTax(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("tax")

	amount, _ := cmd.Flags().GetFloat64("amount")
	rate, _ := cmd.Flags().GetFloat64("rate")
	isGross, _ := cmd.Flags().GetBool("gross")
	rule, _ := cmd.Flags().GetString("rule")
	smallBusiness, _ := cmd.Flags().GetBool("small-business")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	ruleType := models.TaxRuleType(rule)
	if !ruleType.Valid() {
		return fmt.Errorf("unknown tax rule type: %s", rule)
	}

	result := taxrules.CalculateTax(amount, rate, isGross, ruleType, smallBusiness)

	log.Info().
		Float64("amount", amount).
		Str("rule", rule).
		Bool("gross", isGross).
		Float64("tax", result.Tax).
		Msg("Tax calculated")

	if jsonOutput {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(result)
	}

	fmt.Printf("Netto:  %10.2f EUR\n", result.Net)
	fmt.Printf("Steuer: %10.2f EUR\n", result.Tax)
	fmt.Printf("Brutto: %10.2f EUR\n", result.Gross)
	if result.DisplayText != "" {
		fmt.Printf("\n%s\n", result.DisplayText)
	}
	return nil
}
