package models

// AccountType classifies a ledger account by its balance-sheet role.
type AccountType string

const (
	AccountTypeIncome    AccountType = "INCOME"
	AccountTypeExpense   AccountType = "EXPENSE"
	AccountTypeAsset     AccountType = "ASSET"
	AccountTypeLiability AccountType = "LIABILITY"
)

// LedgerAccount is an immutable SKR03 reference entry. Accounts are loaded
// once from the static catalog and never mutated.
type LedgerAccount struct {
	Code        string      `json:"code"` // 4-digit account number, unique per catalog
	Name        string      `json:"name"` // display label, may embed the code as prefix
	Type        AccountType `json:"type"`
	Description string      `json:"description"`
}
