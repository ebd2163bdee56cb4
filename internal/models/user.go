package models

import "time"

// User represents an internal user record. Users are minted lazily on the
// first authenticated request from a new identity-provider identifier and
// are never updated or deleted by this system.
type User struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	ExternalID string    `gorm:"uniqueIndex;size:191;not null" json:"external_id"`
	CreatedAt  time.Time `json:"created_at"`

	Transactions []Transaction `gorm:"foreignKey:UserID" json:"transactions,omitempty"`
}
