package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Transaction represents a single income or expense record. Amount is a
// non-negative magnitude; whether it adds to or subtracts from the balance
// is determined by Type.
type Transaction struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	UserID      uint            `gorm:"not null;index:idx_transactions_owner_date" json:"user_id"`
	Amount      decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"amount"`
	Category    string          `gorm:"not null" json:"category"`
	Type        TransactionType `gorm:"size:16;not null" json:"type"`
	Description string          `json:"description"`
	Date        time.Time       `gorm:"not null;index:idx_transactions_owner_date" json:"date"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
