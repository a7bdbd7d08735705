package classify

import (
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"rechnungskern/internal/logger"
	"rechnungskern/pkg/models"
)

// Range is an inclusive [Start, End] interval of account codes.
type Range struct {
	Start int
	End   int
}

// Contains reports whether code falls inside the interval.
func (r Range) Contains(code int) bool {
	return code >= r.Start && code <= r.End
}

// Rule is one declarative classification rule. Rules are authored data;
// several rules may match the same account and the highest effective
// priority wins. A range match counts rangeBonus above the base priority,
// so a rule hitting an account by number beats an equal-priority rule that
// only hits by keyword.
//
// Exclude marks a negative rule: when it wins, the account is explicitly
// kept out of the result. Negative rules replace inline string carve-outs
// so that all classification policy lives in the tables.
type Rule struct {
	ID       string
	Keywords []string // lowercase substrings, matched against name and description
	Ranges   []Range
	Priority int // default 5, higher wins
	Exclude  bool
}

const (
	rangeBonus      = 3
	defaultPriority = 5
)

// Classifier maps ledger accounts to business expense categories using a
// ranked rule table. It is a pure function over immutable inputs and safe
// for concurrent use.
type Classifier struct {
	rules []Rule
	log   zerolog.Logger
}

// NewClassifier creates a classifier over the given rule table. A nil or
// empty table falls back to DefaultRules.
func NewClassifier(rules []Rule) *Classifier {
	if len(rules) == 0 {
		rules = DefaultRules
	}
	return &Classifier{
		rules: rules,
		log:   logger.WithComponent("classifier"),
	}
}

// Classify returns the category tag for the account and true, or ("", false)
// when no rule matches. An unmatched account is a normal outcome, not an
// error; callers decide whether to surface it as "needs manual review".
func (c *Classifier) Classify(account models.LedgerAccount) (string, bool) {
	idx, _, ok := bestMatch(c.rules, account)
	if !ok {
		c.log.Debug().
			Str("code", account.Code).
			Str("name", account.Name).
			Msg("No category rule matched")
		return "", false
	}
	winner := c.rules[idx]
	if winner.Exclude {
		return "", false
	}
	return winner.ID, true
}

// bestMatch evaluates the rule table against an account and returns the
// index of the winning rule with its effective priority. Ties resolve to
// the first rule in declaration order, keeping results stable across runs.
func bestMatch(rules []Rule, account models.LedgerAccount) (int, int, bool) {
	code, codeOK := parseCode(account.Code)
	name := strings.ToLower(account.Name)
	desc := strings.ToLower(account.Description)

	bestIdx := -1
	bestPriority := 0

	for i, rule := range rules {
		effective, matched := ruleMatch(rule, code, codeOK, name, desc)
		if !matched {
			continue
		}
		// Strictly-greater comparison keeps declaration order on ties.
		if bestIdx == -1 || effective > bestPriority {
			bestIdx = i
			bestPriority = effective
		}
	}

	if bestIdx == -1 {
		return 0, 0, false
	}
	return bestIdx, bestPriority, true
}

// ruleMatch returns the effective priority of the rule for the account.
// When a rule matches both by range and by keyword, the range bonus applies.
func ruleMatch(rule Rule, code int, codeOK bool, name, desc string) (int, bool) {
	priority := rule.Priority
	if priority == 0 {
		priority = defaultPriority
	}

	if codeOK {
		for _, r := range rule.Ranges {
			if r.Contains(code) {
				return priority + rangeBonus, true
			}
		}
	}

	for _, kw := range rule.Keywords {
		if kw == "" {
			continue
		}
		if strings.Contains(name, kw) || strings.Contains(desc, kw) {
			return priority, true
		}
	}

	return 0, false
}

func parseCode(code string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(code))
	if err != nil {
		return 0, false
	}
	return n, true
}
