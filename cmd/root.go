package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"rechnungskern/internal/logger"
)

var version = "1.0.0"

var rootCmd = &cobra.Command{
	Use:   "rechnungskern",
	Short: "Rechnungskern - German invoice and DATEV account classification engine",
	Long: `Rechnungskern is the deterministic core behind invoice issuing for
German businesses: it classifies SKR03 ledger accounts into business
expense categories, computes statutory tax treatment (Reverse-Charge,
Kleinunternehmerregelung, OSS, domestic VAT), validates invoices against
the legal requirements of the selected regime, and generates
sign-reversed Storno invoices with gap-free sequential numbering.`,
	Version: version,
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.WithComponent("root")
		log.Info().
			Str("version", version).
			Msg("Rechnungskern CLI executed")

		fmt.Println("Rechnungskern - use --help to see available commands.")
	},
}

func Execute() {
	log := logger.WithComponent("cmd")

	if err := rootCmd.Execute(); err != nil {
		log.Error().
			Err(err).
			Msg("Command execution failed")
		fmt.Fprintf(os.Stderr, "Error executing command: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print version information")
}
