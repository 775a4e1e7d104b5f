package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mrmdan725-prog/kitchinz-erp-sub000/internal/domain/entity"
	"github.com/mrmdan725-prog/kitchinz-erp-sub000/internal/domain/ledger"
)

// InventoryService handles raw-material inventory items
type InventoryService struct {
	book *ledger.Book
}

// NewInventoryService creates a new inventory service
func NewInventoryService(book *ledger.Book) *InventoryService {
	return &InventoryService{book: book}
}

// CreateItemInput represents the create item input
type CreateItemInput struct {
	Name         string
	Unit         string
	OpeningStock decimal.Decimal
}

// CreateItem registers an inventory item
func (s *InventoryService) CreateItem(ctx context.Context, input *CreateItemInput) (*entity.InventoryItem, error) {
	it, err := s.book.CreateItem(input.Name, input.Unit, input.OpeningStock)
	return it, mapLedgerError(err)
}

// UpdateItem edits an item's name and unit. Stock only moves through
// purchases.
func (s *InventoryService) UpdateItem(ctx context.Context, id uuid.UUID, name, unit string) (*entity.InventoryItem, error) {
	it, err := s.book.UpdateItem(id, name, unit)
	return it, mapLedgerError(err)
}

// DeleteItem deletes an inventory item
func (s *InventoryService) DeleteItem(ctx context.Context, id uuid.UUID) error {
	return mapLedgerError(s.book.DeleteItem(id))
}

// GetItem retrieves an inventory item by ID
func (s *InventoryService) GetItem(ctx context.Context, id uuid.UUID) (*entity.InventoryItem, error) {
	it, err := s.book.Item(id)
	return it, mapLedgerError(err)
}

// ListItems lists all inventory items sorted by name
func (s *InventoryService) ListItems(ctx context.Context) []entity.InventoryItem {
	return s.book.Items()
}
