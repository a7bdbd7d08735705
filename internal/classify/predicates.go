package classify

import "rechnungskern/pkg/models"

// Predicate tables follow the same ranked-rule semantics as the category
// table. A rule with Exclude set is a negative rule: when it wins, the
// predicate is false even though a lower-priority rule matched. This keeps
// exceptions like the Fremdleistungen carve-out in the table instead of
// scattering string checks through the predicates.

var taxRelatedRules = []Rule{
	{ID: "vorsteuer", Keywords: []string{"vorsteuer"}, Ranges: []Range{{1570, 1579}}, Priority: 10},
	{ID: "umsatzsteuer", Keywords: []string{"umsatzsteuer"}, Ranges: []Range{{1770, 1799}}, Priority: 10},
	{ID: "betriebssteuern", Keywords: []string{"gewerbesteuer", "betriebssteuern", "kfz-steuer"}, Ranges: []Range{{4320, 4349}, {4510, 4519}}, Priority: 8},
	{ID: "reverse_charge", Keywords: []string{"§ 13b"}, Priority: 8},
	// Fremdleistungen accounts reference § 13b in their descriptions but are
	// ordinary expense accounts, not tax accounts.
	{ID: "fremdleistungen_carveout", Keywords: []string{"fremdleistung"}, Ranges: []Range{{3100, 3199}}, Priority: 16, Exclude: true},
}

var incomeRules = []Rule{
	{ID: "erloese", Keywords: []string{"erlöse", "erträge"}, Ranges: []Range{{8000, 8999}}, Priority: 10},
	// Revenue reductions sit in the Erlöse band but reduce income.
	{ID: "schmaelerung_carveout", Keywords: []string{"erlösschmälerung", "gewährte skonti"}, Ranges: []Range{{8700, 8799}}, Priority: 15, Exclude: true},
}

var assetRules = []Rule{
	{ID: "anlagevermoegen", Keywords: []string{"anlagevermögen"}, Ranges: []Range{{0, 999}}, Priority: 10},
	// "bankguthaben" rather than "bank": Bankgebühren expense accounts must
	// not match.
	{ID: "umlaufvermoegen", Keywords: []string{"kasse", "bankguthaben", "forderung"}, Ranges: []Range{{1000, 1599}}, Priority: 10},
}

var liabilityRules = []Rule{
	{ID: "verbindlichkeiten", Keywords: []string{"verbindlichkeit", "darlehen"}, Ranges: []Range{{1600, 1799}}, Priority: 10},
}

// evalPredicate runs a predicate table; winner decides, declaration order
// breaks ties, no match means false.
func evalPredicate(rules []Rule, account models.LedgerAccount) bool {
	idx, _, ok := bestMatch(rules, account)
	if !ok {
		return false
	}
	return !rules[idx].Exclude
}

// IsTaxRelatedAccount reports whether the account carries VAT or other tax
// balances (Vorsteuer, Umsatzsteuer, Betriebssteuern).
func IsTaxRelatedAccount(account models.LedgerAccount) bool {
	return evalPredicate(taxRelatedRules, account)
}

// IsIncomeAccount reports whether the account books revenue.
func IsIncomeAccount(account models.LedgerAccount) bool {
	return evalPredicate(incomeRules, account)
}

// IsAssetAccount reports whether the account is an asset account.
func IsAssetAccount(account models.LedgerAccount) bool {
	return evalPredicate(assetRules, account)
}

// IsLiabilityAccount reports whether the account is a liability account.
func IsLiabilityAccount(account models.LedgerAccount) bool {
	return evalPredicate(liabilityRules, account)
}
