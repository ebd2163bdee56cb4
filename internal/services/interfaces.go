package services

import (
	"time"

	"github.com/shopspring/decimal"

	"finbuddy/internal/models"
)

// UserServicer defines the contract for the user directory.
type UserServicer interface {
	// EnsureUser returns the internal user ID for an external identifier,
	// creating the user record on first sight.
	EnsureUser(externalID string) (uint, error)
	// FindUser returns the internal user ID for an external identifier
	// without creating one. Returns ErrForbidden when no record exists.
	FindUser(externalID string) (uint, error)
}

// TransactionServicer defines the contract for owner-scoped transaction CRUD.
// The affected booleans on update/delete are false when no row matched both
// the transaction ID and the owner; callers cannot tell a missing row from
// another user's row.
type TransactionServicer interface {
	ListTransactions(ownerID uint) ([]models.Transaction, error)
	CreateTransaction(ownerID uint, amount decimal.Decimal, category string, txType models.TransactionType, description string, date time.Time) (*models.Transaction, error)
	UpdateTransaction(ownerID, transactionID uint, amount decimal.Decimal, category string, txType models.TransactionType, description string, date time.Time) (bool, error)
	DeleteTransaction(ownerID, transactionID uint) (bool, error)
}
