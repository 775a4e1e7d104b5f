package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Employee represents a workshop employee with a fixed monthly salary
type Employee struct {
	ID         uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Name       string          `gorm:"size:255;not null" json:"name"`
	Phone      *string         `gorm:"size:50" json:"phone,omitempty"`
	Position   string          `gorm:"size:255" json:"position"`
	Salary     decimal.Decimal `gorm:"type:decimal(15,2);default:0" json:"salary"`
	LastPaidAt *time.Time      `json:"last_paid_at,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
	DeletedAt  gorm.DeletedAt  `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new employee
func (e *Employee) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Employee model
func (Employee) TableName() string {
	return "employees"
}

// RecurringBill represents a recurring obligation (rent, electricity, ...)
// processed manually or by the billing scheduler on its due day.
type RecurringBill struct {
	ID         uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Name       string          `gorm:"size:255;not null" json:"name"`
	Amount     decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	DueDay     int             `gorm:"default:1" json:"due_day"`
	AccountID  uuid.UUID       `gorm:"type:uuid;not null" json:"account_id"`
	Active     bool            `gorm:"default:true" json:"active"`
	LastPaidAt *time.Time      `json:"last_paid_at,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
	DeletedAt  gorm.DeletedAt  `gorm:"index" json:"-"`

	// Relationships
	Account *Account `gorm:"foreignKey:AccountID" json:"-"`
}

// DueOn reports whether the bill should be processed on the given day: it is
// active, the day of month has been reached and it has not been paid yet in
// that month.
func (b *RecurringBill) DueOn(day time.Time) bool {
	if !b.Active || day.Day() < b.DueDay {
		return false
	}
	if b.LastPaidAt == nil {
		return true
	}
	return b.LastPaidAt.Year() != day.Year() || b.LastPaidAt.Month() != day.Month()
}

// BeforeCreate generates a UUID before creating a new recurring bill
func (b *RecurringBill) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the RecurringBill model
func (RecurringBill) TableName() string {
	return "recurring_bills"
}
