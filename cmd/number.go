package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"rechnungskern/internal/config"
	"rechnungskern/internal/logger"
	"rechnungskern/internal/numbering"
	"rechnungskern/internal/taxrules"
)

var numberCmd = &cobra.Command{
	Use:   "number [peek|claim]",
	Short: "Inspect or advance a tenant's invoice number sequence",
	Long: `Work with the per-tenant, per-year invoice number counter.

"peek" shows the number the next finalization would receive without
claiming it. "claim" atomically advances the counter and prints the
claimed number - use it only when the number will actually be assigned,
since sequential numbering must stay gap-free (GoBD).`,
	Example: `  rechnungskern number peek --tenant acme --year 2025
  rechnungskern number claim --tenant acme --year 2025 --db data/sequences.db`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"peek", "claim"},
	RunE:      runNumber,
}

func init() {
	rootCmd.AddCommand(numberCmd)

	numberCmd.Flags().String("tenant", "", "Tenant identifier")
	numberCmd.Flags().Int("year", time.Now().Year(), "Calendar year of the sequence")
	numberCmd.Flags().String("db", "", "Sequence database path (defaults to SEQUENCE_DB_PATH)")

	_ = numberCmd.MarkFlagRequired("tenant")
}

func runNumber(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("number")

	tenantID, _ := cmd.Flags().GetString("tenant")
	year, _ := cmd.Flags().GetInt("year")
	dbPath, _ := cmd.Flags().GetString("db")

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

	var number int
	switch args[0] {
	case "peek":
		number, err = seq.PeekNext(ctx, tenantID, year)
	case "claim":
		number, err = seq.Claim(ctx, tenantID, year)
	default:
		return fmt.Errorf("unknown subcommand %q (use peek or claim)", args[0])
	}
	if err != nil {
		return err
	}

	log.Info().
		Str("tenant_id", tenantID).
		Int("year", year).
		Int("number", number).
		Str("mode", args[0]).
		Msg("Sequence accessed")

	fmt.Printf("%d\t%s\n", number, taxrules.FormatInvoiceNumber(number, year))
	return nil
}
