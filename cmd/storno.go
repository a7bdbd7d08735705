package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"rechnungskern/internal/config"
	"rechnungskern/internal/lifecycle"
	"rechnungskern/internal/logger"
	"rechnungskern/internal/numbering"
)

var stornoCmd = &cobra.Command{
	Use:   "storno [invoice-file]",
	Short: "Generate a Storno (cancellation) invoice for a finalized invoice",
	Long: `Generate the cancellation invoice that reverses a finalized invoice.

The Storno is an exact sign-reversed mirror: every item quantity and
line total is negated (unit prices stay unchanged), as are the net, tax
and gross aggregates. It receives its own sequential number from the
tenant's counter, is immediately due, and references the original
invoice. The original is never deleted - German bookkeeping rules
(GoBD) require the counter-document instead.`,
	Example: `  rechnungskern storno invoice.json --reason "Falsche Leistungsbeschreibung" --by buchhaltung
  rechnungskern storno invoice.json --reason Doppelberechnung --by mmeier --db data/sequences.db`,
	Args: cobra.ExactArgs(1),
	RunE: runStorno,
}

func init() {
	rootCmd.AddCommand(stornoCmd)

	stornoCmd.Flags().String("reason", "", "Storno reason recorded on the cancellation invoice")
	stornoCmd.Flags().String("by", "", "User performing the cancellation")
	stornoCmd.Flags().String("db", "", "Sequence database path (defaults to SEQUENCE_DB_PATH)")

	_ = stornoCmd.MarkFlagRequired("reason")
}

func runStorno(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("storno")

	reason, _ := cmd.Flags().GetString("reason")
	performedBy, _ := cmd.Flags().GetString("by")
	dbPath, _ := cmd.Flags().GetString("db")

	original, err := readInvoiceFile(args[0])
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if dbPath == "" {
		dbPath = cfg.SequenceDBPath
	}

	seq, err := numbering.NewSQLiteSequence(dbPath)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := seq.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("Failed to close sequence database")
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	manager := lifecycle.NewManager(seq, cfg.DefaultVATRate)
	storno, countered, err := manager.CreateStorno(ctx, original, reason, performedBy)
	if err != nil {
		return err
	}

	log.Info().
		Str("original", countered.InvoiceNumber).
		Str("storno", storno.InvoiceNumber).
		Msg("Storno generated")

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(storno); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Storno %s generated for %s; original marked cancelled.\n",
		storno.InvoiceNumber, countered.InvoiceNumber)
	return nil
}
