package catalog

import (
	"fmt"
	"sort"
	"strconv"

	"rechnungskern/pkg/models"
)

// Catalog is the read-only SKR03 ledger-account reference data. It is
// loaded once and safe to share across concurrent callers.
type Catalog struct {
	byCode map[string]models.LedgerAccount
	codes  []string
}

// New builds a catalog from the given accounts. Codes must be unique
// 4-digit numeric strings.
func New(accounts []models.LedgerAccount) (*Catalog, error) {
	const op = "catalog.New"

	c := &Catalog{byCode: make(map[string]models.LedgerAccount, len(accounts))}
	for _, acc := range accounts {
		if len(acc.Code) != 4 {
			return nil, fmt.Errorf("%s: account code %q is not 4 digits", op, acc.Code)
		}
		if _, err := strconv.Atoi(acc.Code); err != nil {
			return nil, fmt.Errorf("%s: account code %q is not numeric", op, acc.Code)
		}
		if _, dup := c.byCode[acc.Code]; dup {
			return nil, fmt.Errorf("%s: duplicate account code %q", op, acc.Code)
		}
		c.byCode[acc.Code] = acc
		c.codes = append(c.codes, acc.Code)
	}
	sort.Strings(c.codes)
	return c, nil
}

// Default returns the catalog built from the embedded SKR03 account table.
func Default() *Catalog {
	c, err := New(defaultAccounts)
	if err != nil {
		// The embedded table is static; a failure here is a programming error.
		panic(err)
	}
	return c
}

// Lookup returns the account with the given code. The second return value
// reports whether the code exists in the catalog.
func (c *Catalog) Lookup(code string) (models.LedgerAccount, bool) {
	acc, ok := c.byCode[code]
	return acc, ok
}

// Accounts returns all accounts in ascending code order.
func (c *Catalog) Accounts() []models.LedgerAccount {
	out := make([]models.LedgerAccount, 0, len(c.codes))
	for _, code := range c.codes {
		out = append(out, c.byCode[code])
	}
	return out
}

// Len returns the number of accounts in the catalog.
func (c *Catalog) Len() int {
	return len(c.byCode)
}
