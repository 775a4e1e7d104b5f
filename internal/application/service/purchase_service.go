package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mrmdan725-prog/kitchinz-erp-sub000/internal/domain/entity"
	"github.com/mrmdan725-prog/kitchinz-erp-sub000/internal/domain/ledger"
)

// PurchaseService handles raw-material purchases
type PurchaseService struct {
	book *ledger.Book
}

// NewPurchaseService creates a new purchase service
func NewPurchaseService(book *ledger.Book) *PurchaseService {
	return &PurchaseService{book: book}
}

// AddPurchaseInput represents the add purchase input
type AddPurchaseInput struct {
	MaterialName string
	Quantity     decimal.Decimal
	UnitPrice    decimal.Decimal
	AccountID    *uuid.UUID
	CustomerID   *uuid.UUID
	Date         time.Time
}

// AddPurchase records a material purchase: stock goes up on the matching
// inventory item and, when an account is given, the ledger records the
// expense against it
func (s *PurchaseService) AddPurchase(ctx context.Context, input *AddPurchaseInput) (*entity.Purchase, error) {
	p, err := s.book.AddPurchase(ledger.PurchaseInput{
		MaterialName: input.MaterialName,
		Quantity:     input.Quantity,
		UnitPrice:    input.UnitPrice,
		AccountID:    input.AccountID,
		CustomerID:   input.CustomerID,
		Date:         input.Date,
	})
	return p, mapLedgerError(err)
}

// UpdatePurchaseInput represents the update purchase input
type UpdatePurchaseInput struct {
	ID         uuid.UUID
	Quantity   decimal.Decimal
	UnitPrice  decimal.Decimal
	AccountID  *uuid.UUID
	CustomerID *uuid.UUID
}

// UpdatePurchase edits a purchase, reconciling stock and the linked expense
func (s *PurchaseService) UpdatePurchase(ctx context.Context, input *UpdatePurchaseInput) (*entity.Purchase, error) {
	p, err := s.book.UpdatePurchase(ledger.PurchaseUpdate{
		ID:         input.ID,
		Quantity:   input.Quantity,
		UnitPrice:  input.UnitPrice,
		AccountID:  input.AccountID,
		CustomerID: input.CustomerID,
	})
	return p, mapLedgerError(err)
}

// DeletePurchase deletes a purchase, reversing its stock and ledger effects
func (s *PurchaseService) DeletePurchase(ctx context.Context, id uuid.UUID) error {
	return mapLedgerError(s.book.DeletePurchase(id))
}

// GetPurchase retrieves a purchase by ID
func (s *PurchaseService) GetPurchase(ctx context.Context, id uuid.UUID) (*entity.Purchase, error) {
	p, err := s.book.Purchase(id)
	return p, mapLedgerError(err)
}

// ListPurchases lists all purchases newest first
func (s *PurchaseService) ListPurchases(ctx context.Context) []entity.Purchase {
	return s.book.Purchases()
}
