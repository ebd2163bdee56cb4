package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"finbuddy/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a unique external identifier.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	externalID := fmt.Sprintf("ext_user_%d", nextID())
	return CreateTestUserWithExternalID(t, db, externalID)
}

// CreateTestUserWithExternalID creates a user with the given external identifier.
func CreateTestUserWithExternalID(t *testing.T, db *gorm.DB, externalID string) *models.User {
	t.Helper()

	user := &models.User{ExternalID: externalID}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestTransaction creates a transaction of the given type and amount.
func CreateTestTransaction(t *testing.T, db *gorm.DB, userID uint, txType models.TransactionType, amount decimal.Decimal) *models.Transaction {
	t.Helper()
	return CreateTestTransactionOn(t, db, userID, txType, amount, time.Now())
}

// CreateTestTransactionOn creates a transaction dated at the given time.
func CreateTestTransactionOn(t *testing.T, db *gorm.DB, userID uint, txType models.TransactionType, amount decimal.Decimal, date time.Time) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		UserID:   userID,
		Amount:   amount,
		Category: fmt.Sprintf("Test Category %d", nextID()),
		Type:     txType,
		Date:     date,
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return tx
}
