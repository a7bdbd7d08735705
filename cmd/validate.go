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

var validateCmd = &cobra.Command{
	Use:   "validate [invoice-file]",
	Short: "Validate an invoice record against its tax regime",
	Long: `Run the full validation battery over an invoice record read from a
JSON file: required fields, the cross-field requirements of the selected
tax regime (Reverse-Charge recipient data, exemption reason, OSS note),
item sanity and the no-VAT rule for exempt invoices.

All violations are collected and reported together; validation never
stops at the first failure.`,
	Example: `  rechnungskern validate invoice.json
  rechnungskern validate invoice.json --json`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().Bool("json", false, "Output as JSON format")
}

func runValidate(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("validate")

	jsonOutput, _ := cmd.Flags().GetBool("json")

	invoice, err := readInvoiceFile(args[0])
	if err != nil {
		return err
	}

	result := taxrules.ValidateInvoice(invoice)

	log.Info().
		Str("file", args[0]).
		Bool("valid", result.IsValid).
		Int("violations", len(result.Errors)).
		Msg("Invoice validated")

	if jsonOutput {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(result); err != nil {
			return err
		}
	} else if result.IsValid {
		fmt.Println("Invoice is valid.")
	} else {
		fmt.Printf("Invoice is invalid (%d violations):\n", len(result.Errors))
		for _, violation := range result.Errors {
			fmt.Printf("  %-35s %s\n", violation.Field, violation.Message)
		}
	}

	if !result.IsValid {
		os.Exit(1)
	}
	return nil
}

func readInvoiceFile(path string) (*models.InvoiceRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read invoice file: %w", err)
	}
	var invoice models.InvoiceRecord
	if err := json.Unmarshal(data, &invoice); err != nil {
		return nil, fmt.Errorf("failed to parse invoice file: %w", err)
	}
	return &invoice, nil
}
