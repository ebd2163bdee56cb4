package services

import (
	"time"

	"github.com/shopspring/decimal"

	"finbuddy/internal/database"
	apperrors "finbuddy/internal/errors"
	"finbuddy/internal/models"
)

// transactionService implements owner-scoped transaction CRUD. Every query
// filters by both transaction ID and owner ID through GORM parameter binding;
// no SQL is ever built from request strings.
type transactionService struct {
	pool *database.Pool
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(pool *database.Pool) TransactionServicer {
	return &transactionService{pool: pool}
}

// ListTransactions returns the owner's transactions, newest date first.
func (s *transactionService) ListTransactions(ownerID uint) ([]models.Transaction, error) {
	db, err := s.pool.DB()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	transactions := make([]models.Transaction, 0)
	if err := db.Where("user_id = ?", ownerID).
		Order("date DESC").
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return transactions, nil
}

// CreateTransaction inserts a new transaction for the owner. A zero date
// means the caller omitted it and defaults to the time of the write.
func (s *transactionService) CreateTransaction(
	ownerID uint,
	amount decimal.Decimal,
	category string,
	txType models.TransactionType,
	description string,
	date time.Time,
) (*models.Transaction, error) {
	if err := validateTransactionInput(amount, category, txType); err != nil {
		return nil, err
	}

	if date.IsZero() {
		date = time.Now()
	}

	db, err := s.pool.DB()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	transaction := &models.Transaction{
		UserID:      ownerID,
		Amount:      amount,
		Category:    category,
		Type:        txType,
		Description: description,
		Date:        date,
	}
	if err := db.Create(transaction).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return transaction, nil
}

// UpdateTransaction replaces all mutable fields of the owner's transaction
// wholesale. Returns false when no row matched both the ID and the owner.
func (s *transactionService) UpdateTransaction(
	ownerID, transactionID uint,
	amount decimal.Decimal,
	category string,
	txType models.TransactionType,
	description string,
	date time.Time,
) (bool, error) {
	if err := validateTransactionInput(amount, category, txType); err != nil {
		return false, err
	}

	if date.IsZero() {
		date = time.Now()
	}

	db, err := s.pool.DB()
	if err != nil {
		return false, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := db.Model(&models.Transaction{}).
		Where("id = ? AND user_id = ?", transactionID, ownerID).
		Updates(map[string]interface{}{
			"amount":      amount,
			"category":    category,
			"type":        txType,
			"description": description,
			"date":        date,
		})
	if result.Error != nil {
		return false, apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	return result.RowsAffected > 0, nil
}

// DeleteTransaction removes the owner's transaction. Returns false when no
// row matched both the ID and the owner.
func (s *transactionService) DeleteTransaction(ownerID, transactionID uint) (bool, error) {
	db, err := s.pool.DB()
	if err != nil {
		return false, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := db.Where("id = ? AND user_id = ?", transactionID, ownerID).
		Delete(&models.Transaction{})
	if result.Error != nil {
		return false, apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	return result.RowsAffected > 0, nil
}

func validateTransactionInput(amount decimal.Decimal, category string, txType models.TransactionType) error {
	if !amount.IsPositive() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}
	if category == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "category is required")
	}
	switch txType {
	case models.TransactionTypeIncome, models.TransactionTypeExpense:
	default:
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "type must be income or expense")
	}
	return nil
}
