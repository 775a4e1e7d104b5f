package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/mrmdan725-prog/kitchinz-erp-sub000/internal/domain/enum"
)

// Contract represents a kitchen/furniture contracting job for a customer.
// Stage is a monotonic high-water mark raised by installment payments and by
// delivery completion; cancelling a payment never lowers it.
type Contract struct {
	ID               uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	CustomerID       uuid.UUID          `gorm:"type:uuid;not null;index" json:"customer_id"`
	Description      string             `gorm:"type:text" json:"description"`
	AccessoriesTotal decimal.Decimal    `gorm:"type:decimal(15,2);default:0" json:"accessories_total"`
	Stage            enum.ContractStage `gorm:"default:0" json:"stage"`
	DeliveredAt      *time.Time         `json:"delivered_at,omitempty"`
	CreatedAt        time.Time          `json:"created_at"`
	UpdatedAt        time.Time          `json:"updated_at"`
	DeletedAt        gorm.DeletedAt     `gorm:"index" json:"-"`

	// Relationships
	Customer *Customer         `gorm:"foreignKey:CustomerID" json:"-"`
	Payments []ContractPayment `gorm:"foreignKey:ContractID" json:"payments"`
}

// Payment returns the collected payment for the given milestone, or nil
func (c *Contract) Payment(key enum.Installment) *ContractPayment {
	for i := range c.Payments {
		if c.Payments[i].Installment == key {
			return &c.Payments[i]
		}
	}
	return nil
}

// InstallmentAmount returns the milestone's share of the accessories total
func (c *Contract) InstallmentAmount(key enum.Installment) decimal.Decimal {
	return c.AccessoriesTotal.Mul(key.Share()).Round(2)
}

// Clone returns a deep copy safe to hand outside the ledger book
func (c *Contract) Clone() *Contract {
	cp := *c
	cp.Payments = make([]ContractPayment, len(c.Payments))
	copy(cp.Payments, c.Payments)
	return &cp
}

// BeforeCreate generates a UUID before creating a new contract
func (c *Contract) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Contract model
func (Contract) TableName() string {
	return "contracts"
}

// ContractPayment records one collected milestone installment. TransactionID
// links the payment to the income transaction the ledger recorded for it.
type ContractPayment struct {
	ID            uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	ContractID    uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:idx_contract_installment" json:"contract_id"`
	Installment   enum.Installment `gorm:"size:20;not null;uniqueIndex:idx_contract_installment" json:"installment"`
	Amount        decimal.Decimal  `gorm:"type:decimal(15,2);not null" json:"amount"`
	Date          time.Time        `gorm:"not null" json:"date"`
	AccountID     uuid.UUID        `gorm:"type:uuid;not null" json:"account_id"`
	TransactionID uuid.UUID        `gorm:"type:uuid;not null" json:"transaction_id"`
	Received      bool             `gorm:"default:true" json:"received"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`

	// Relationships
	Contract *Contract `gorm:"foreignKey:ContractID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new contract payment
func (p *ContractPayment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the ContractPayment model
func (ContractPayment) TableName() string {
	return "contract_payments"
}
