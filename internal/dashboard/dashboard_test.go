package dashboard_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"finbuddy/internal/dashboard"
	"finbuddy/internal/models"
)

func tx(txType models.TransactionType, amount float64, category, description string) models.Transaction {
	return models.Transaction{
		Amount:      decimal.NewFromFloat(amount),
		Category:    category,
		Type:        txType,
		Description: description,
	}
}

func TestFilter_Match(t *testing.T) {
	salary := tx(models.TransactionTypeIncome, 100, "Salary", "monthly pay")
	food := tx(models.TransactionTypeExpense, 40, "Food", "groceries run")

	tests := []struct {
		name   string
		filter dashboard.Filter
		tx     models.Transaction
		want   bool
	}{
		{"empty filter matches everything", dashboard.Filter{}, food, true},
		{"type exact match", dashboard.Filter{Type: models.TransactionTypeIncome}, salary, true},
		{"type mismatch", dashboard.Filter{Type: models.TransactionTypeIncome}, food, false},
		{"category substring, case-insensitive", dashboard.Filter{Category: "foo"}, food, true},
		{"category no match", dashboard.Filter{Category: "rent"}, food, false},
		{"search matches category", dashboard.Filter{Search: "SAL"}, salary, true},
		{"search matches description", dashboard.Filter{Search: "groceries"}, food, true},
		{"search matches neither", dashboard.Filter{Search: "transport"}, food, false},
		{"all predicates must hold", dashboard.Filter{Type: models.TransactionTypeExpense, Category: "food", Search: "pay"}, food, false},
		{"all predicates hold together", dashboard.Filter{Type: models.TransactionTypeExpense, Category: "food", Search: "run"}, food, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter.Match(tt.tx); got != tt.want {
				t.Errorf("Match() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestApply(t *testing.T) {
	list := []models.Transaction{
		tx(models.TransactionTypeIncome, 100, "Salary", ""),
		tx(models.TransactionTypeExpense, 40, "Food", ""),
		tx(models.TransactionTypeExpense, 12, "Fast Food", "burger"),
	}

	filtered := dashboard.Apply(list, dashboard.Filter{Category: "food"})
	if len(filtered) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(filtered))
	}
	if filtered[0].Category != "Food" || filtered[1].Category != "Fast Food" {
		t.Error("Apply must preserve input order")
	}
}

func TestBalance(t *testing.T) {
	t.Run("income adds and expense subtracts", func(t *testing.T) {
		list := []models.Transaction{
			tx(models.TransactionTypeIncome, 100, "Salary", ""),
			tx(models.TransactionTypeExpense, 40, "Food", ""),
		}

		if got := dashboard.Balance(list); !got.Equal(decimal.NewFromInt(60)) {
			t.Errorf("expected balance 60, got %s", got)
		}
	})

	t.Run("filters never change the balance", func(t *testing.T) {
		list := []models.Transaction{
			tx(models.TransactionTypeIncome, 100, "Salary", ""),
			tx(models.TransactionTypeExpense, 40, "Food", ""),
			tx(models.TransactionTypeExpense, 15, "Transport", ""),
		}

		unfiltered := dashboard.Balance(list)
		// Displaying a filtered view still derives the balance from the full list.
		_ = dashboard.Apply(list, dashboard.Filter{Type: models.TransactionTypeExpense})
		if got := dashboard.Balance(list); !got.Equal(unfiltered) {
			t.Errorf("balance changed after filtering: %s vs %s", got, unfiltered)
		}
		if !unfiltered.Equal(decimal.NewFromInt(45)) {
			t.Errorf("expected balance 45, got %s", unfiltered)
		}
	})

	t.Run("empty list is zero", func(t *testing.T) {
		if got := dashboard.Balance(nil); !got.IsZero() {
			t.Errorf("expected zero balance, got %s", got)
		}
	})
}

func TestSummarize(t *testing.T) {
	list := []models.Transaction{
		tx(models.TransactionTypeIncome, 100, "Salary", ""),
		tx(models.TransactionTypeIncome, 20, "Gift", ""),
		tx(models.TransactionTypeExpense, 40, "Food", ""),
	}

	summary := dashboard.Summarize(list)
	if !summary.Income.Equal(decimal.NewFromInt(120)) {
		t.Errorf("expected income 120, got %s", summary.Income)
	}
	if !summary.Expense.Equal(decimal.NewFromInt(40)) {
		t.Errorf("expected expense 40, got %s", summary.Expense)
	}
	if !summary.Balance.Equal(decimal.NewFromInt(80)) {
		t.Errorf("expected balance 80, got %s", summary.Balance)
	}
	if summary.Count != 3 {
		t.Errorf("expected count 3, got %d", summary.Count)
	}
}

func TestIndex(t *testing.T) {
	if len(dashboard.Index()) == 0 {
		t.Fatal("embedded dashboard page is empty")
	}
}
