package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/mrmdan725-prog/kitchinz-erp-sub000/internal/domain/enum"
)

// Transaction is a single signed monetary event. Amount is always stored
// positive; the sign of its effect on a balance is derived from Type.
// A transaction targets its account and/or customer by explicit id.
type Transaction struct {
	ID         uuid.UUID            `gorm:"type:uuid;primary_key" json:"id"`
	Date       time.Time            `gorm:"not null;index" json:"date"`
	Type       enum.TransactionType `gorm:"size:20;not null" json:"type"`
	Amount     decimal.Decimal      `gorm:"type:decimal(15,2);not null" json:"amount"`
	Category   string               `gorm:"size:255" json:"category"`
	AccountID  *uuid.UUID           `gorm:"type:uuid;index" json:"account_id,omitempty"`
	CustomerID *uuid.UUID           `gorm:"type:uuid;index" json:"customer_id,omitempty"`
	Notes      string               `gorm:"type:text" json:"notes"`
	CreatedAt  time.Time            `json:"created_at"`
	UpdatedAt  time.Time            `json:"updated_at"`
	DeletedAt  gorm.DeletedAt       `gorm:"index" json:"-"`

	// Relationships
	Account  *Account  `gorm:"foreignKey:AccountID" json:"-"`
	Customer *Customer `gorm:"foreignKey:CustomerID" json:"-"`
}

// SignedAmount returns the amount with its sign derived from the type:
// positive for income, negative for expense.
func (t *Transaction) SignedAmount() decimal.Decimal {
	if t.Type == enum.TransactionTypeExpense {
		return t.Amount.Neg()
	}
	return t.Amount
}

// BeforeCreate generates a UUID before creating a new transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Transaction model
func (Transaction) TableName() string {
	return "transactions"
}
