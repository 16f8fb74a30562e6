package model

import (
	"time"
)

// Transaction represents the database model for transactions
type Transaction struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement"`
	UserID      uint64    `gorm:"not null;index"`
	AmountCents int64     `gorm:"not null"` // Positive magnitude in cents
	Type        string    `gorm:"not null;size:20;index"`
	CategoryID  *uint64   `gorm:"index"`
	Description string    `gorm:"type:text"`
	Date        time.Time `gorm:"not null;index"`

	// Define relationships. Deleting a user takes its ledger with it; the
	// category reference stays a plain FK because deletes are guarded in
	// the ledger service.
	User     User      `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
	Category *Category `gorm:"foreignKey:CategoryID;references:ID"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}
