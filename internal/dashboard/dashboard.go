// Package dashboard holds the display-side logic shared between the summary
// endpoint and the embedded web page: the filter predicate applied to an
// in-memory transaction list and the running balance computation. Filtering
// only ever affects what is displayed; the balance is always derived from the
// full unfiltered list.
package dashboard

import (
	_ "embed"
	"strings"

	"github.com/shopspring/decimal"

	"finbuddy/internal/models"
)

//go:embed web/index.html
var indexHTML []byte

// Index returns the embedded dashboard page.
func Index() []byte {
	return indexHTML
}

// Filter describes the three display filters. Type is an exact match,
// Category a case-insensitive substring match, and Search a case-insensitive
// substring match over category or description. All set predicates must hold.
type Filter struct {
	Type     models.TransactionType
	Category string
	Search   string
}

// Match reports whether a transaction passes every set predicate.
func (f Filter) Match(tx models.Transaction) bool {
	if f.Type != "" && tx.Type != f.Type {
		return false
	}
	if f.Category != "" && !containsFold(tx.Category, f.Category) {
		return false
	}
	if f.Search != "" && !containsFold(tx.Category, f.Search) && !containsFold(tx.Description, f.Search) {
		return false
	}
	return true
}

// Apply returns the transactions passing the filter, preserving order.
func Apply(transactions []models.Transaction, f Filter) []models.Transaction {
	filtered := make([]models.Transaction, 0, len(transactions))
	for _, tx := range transactions {
		if f.Match(tx) {
			filtered = append(filtered, tx)
		}
	}
	return filtered
}

// Balance sums +amount for income and -amount for expense over the given
// list. Callers must pass the unfiltered list.
func Balance(transactions []models.Transaction) decimal.Decimal {
	balance := decimal.Zero
	for _, tx := range transactions {
		if tx.Type == models.TransactionTypeIncome {
			balance = balance.Add(tx.Amount)
		} else {
			balance = balance.Sub(tx.Amount)
		}
	}
	return balance
}

// Summary aggregates a user's full transaction list.
type Summary struct {
	Balance decimal.Decimal `json:"balance"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Count   int             `json:"count"`
}

// Summarize computes totals over the full unfiltered list.
func Summarize(transactions []models.Transaction) Summary {
	summary := Summary{
		Balance: decimal.Zero,
		Income:  decimal.Zero,
		Expense: decimal.Zero,
		Count:   len(transactions),
	}
	for _, tx := range transactions {
		if tx.Type == models.TransactionTypeIncome {
			summary.Income = summary.Income.Add(tx.Amount)
		} else {
			summary.Expense = summary.Expense.Add(tx.Amount)
		}
	}
	summary.Balance = summary.Income.Sub(summary.Expense)
	return summary
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
