package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Purchase represents a material purchase. ItemID is the inventory item the
// purchase stocked (nil when no item matched the material name at creation)
// and TransactionID the expense transaction recorded for it (nil when the
// purchase was not paid from an account).
type Purchase struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Date          time.Time       `gorm:"not null;index" json:"date"`
	MaterialName  string          `gorm:"size:255;not null" json:"material_name"`
	Quantity      decimal.Decimal `gorm:"type:decimal(15,3);not null" json:"quantity"`
	UnitPrice     decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"unit_price"`
	Total         decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"total"`
	ItemID        *uuid.UUID      `gorm:"type:uuid;index" json:"item_id,omitempty"`
	AccountID     *uuid.UUID      `gorm:"type:uuid;index" json:"account_id,omitempty"`
	CustomerID    *uuid.UUID      `gorm:"type:uuid;index" json:"customer_id,omitempty"`
	TransactionID *uuid.UUID      `gorm:"type:uuid" json:"transaction_id,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	DeletedAt     gorm.DeletedAt  `gorm:"index" json:"-"`

	// Relationships
	Item     *InventoryItem `gorm:"foreignKey:ItemID" json:"-"`
	Account  *Account       `gorm:"foreignKey:AccountID" json:"-"`
	Customer *Customer      `gorm:"foreignKey:CustomerID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new purchase
func (p *Purchase) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Purchase model
func (Purchase) TableName() string {
	return "purchases"
}
