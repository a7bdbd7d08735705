package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"rechnungskern/internal/catalog"
	"rechnungskern/internal/classify"
	"rechnungskern/internal/logger"
	"rechnungskern/pkg/models"
)

var classifyCmd = &cobra.Command{
	Use:   "classify [account-code]",
	Short: "Classify SKR03 ledger accounts into business expense categories",
	Long: `Classify a ledger account from the SKR03 catalog into exactly one
business expense category, using the ranked rule table.

Rules combine numeric account ranges and keyword matches; a range match
outranks a keyword match of the same priority. An account matching no
rule is reported as uncategorized - that is a normal outcome, not an
error.`,
	Example: `  # Classify a single account
  rechnungskern classify 4210

  # Classify the whole catalog
  rechnungskern classify --all

  # JSON output with the predicate flags
  rechnungskern classify 1576 --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runClassify,
}

func init() {
	rootCmd.AddCommand(classifyCmd)

	classifyCmd.Flags().Bool("all", false, "Classify every account in the catalog")
	classifyCmd.Flags().Bool("json", false, "Output as JSON format")
}

type classificationOutput struct {
	Code          string `json:"code"`
	Name          string `json:"name"`
	Category      string `json:"category,omitempty"`
	Uncategorized bool   `json:"uncategorized,omitempty"`
	TaxRelated    bool   `json:"taxRelated"`
	Income        bool   `json:"income"`
	Asset         bool   `json:"asset"`
	Liability     bool   `json:"liability"`
}

func runClassify(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("classify")

	all, _ := cmd.Flags().GetBool("all")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	if !all && len(args) == 0 {
		return fmt.Errorf("provide an account code or --all")
	}

	cat := catalog.Default()
	classifier := classify.NewClassifier(nil)

	var accounts []models.LedgerAccount
	if all {
		accounts = cat.Accounts()
	} else {
		account, ok := cat.Lookup(args[0])
		if !ok {
			return fmt.Errorf("account %q not found in catalog", args[0])
		}
		accounts = []models.LedgerAccount{account}
	}

	log.Info().
		Int("accounts", len(accounts)).
		Msg("Classifying ledger accounts")

	results := make([]classificationOutput, 0, len(accounts))
	for _, account := range accounts {
		category, ok := classifier.Classify(account)
		results = append(results, classificationOutput{
			Code:          account.Code,
			Name:          account.Name,
			Category:      category,
			Uncategorized: !ok,
			TaxRelated:    classify.IsTaxRelatedAccount(account),
			Income:        classify.IsIncomeAccount(account),
			Asset:         classify.IsAssetAccount(account),
			Liability:     classify.IsLiabilityAccount(account),
		})
	}

	if jsonOutput {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(results)
	}

	for _, r := range results {
		category := r.Category
		if r.Uncategorized {
			category = "(uncategorized)"
		}
		fmt.Printf("%-4s  %-55s  %s\n", r.Code, r.Name, category)
	}
	return nil
}
