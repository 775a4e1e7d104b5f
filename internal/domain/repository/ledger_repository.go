package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/mrmdan725-prog/kitchinz-erp-sub000/internal/domain/entity"
	"github.com/mrmdan725-prog/kitchinz-erp-sub000/internal/domain/ledger"
)

// LedgerStore defines the durable store behind the ledger book. The book is
// loaded from a snapshot once at startup; after that every mutation is pushed
// down as an upsert or delete.
type LedgerStore interface {
	LoadSnapshot(ctx context.Context) (ledger.Snapshot, error)

	UpsertAccount(ctx context.Context, a entity.Account) error
	DeleteAccount(ctx context.Context, id uuid.UUID) error
	UpsertCustomer(ctx context.Context, c entity.Customer) error
	DeleteCustomer(ctx context.Context, id uuid.UUID) error
	UpsertTransaction(ctx context.Context, t entity.Transaction) error
	DeleteTransaction(ctx context.Context, id uuid.UUID) error
	UpsertContract(ctx context.Context, c entity.Contract) error
	DeleteContract(ctx context.Context, id uuid.UUID) error
	UpsertPurchase(ctx context.Context, p entity.Purchase) error
	DeletePurchase(ctx context.Context, id uuid.UUID) error
	UpsertItem(ctx context.Context, it entity.InventoryItem) error
	DeleteItem(ctx context.Context, id uuid.UUID) error
	UpsertEmployee(ctx context.Context, e entity.Employee) error
	DeleteEmployee(ctx context.Context, id uuid.UUID) error
	UpsertBill(ctx context.Context, b entity.RecurringBill) error
	DeleteBill(ctx context.Context, id uuid.UUID) error
}
