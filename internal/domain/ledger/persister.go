package ledger

import (
	"github.com/google/uuid"

	"github.com/mrmdan725-prog/kitchinz-erp-sub000/internal/domain/entity"
)

// Persister receives every mutation the book makes, entity by entity. The
// book's in-memory state is authoritative: implementations write durably on
// a best-effort basis, must not block the caller for long, and have no way
// to report failure back into the book. Values are passed by copy so an
// implementation may retain them across goroutines.
type Persister interface {
	SaveAccount(entity.Account)
	DeleteAccount(id uuid.UUID)
	SaveCustomer(entity.Customer)
	DeleteCustomer(id uuid.UUID)
	SaveTransaction(entity.Transaction)
	DeleteTransaction(id uuid.UUID)
	SaveContract(entity.Contract)
	DeleteContract(id uuid.UUID)
	SavePurchase(entity.Purchase)
	DeletePurchase(id uuid.UUID)
	SaveItem(entity.InventoryItem)
	DeleteItem(id uuid.UUID)
	SaveEmployee(entity.Employee)
	DeleteEmployee(id uuid.UUID)
	SaveBill(entity.RecurringBill)
	DeleteBill(id uuid.UUID)
}

// NopPersister discards every write. Used in tests and as the default when
// no durable store is wired.
type NopPersister struct{}

func (NopPersister) SaveAccount(entity.Account)         {}
func (NopPersister) DeleteAccount(uuid.UUID)            {}
func (NopPersister) SaveCustomer(entity.Customer)       {}
func (NopPersister) DeleteCustomer(uuid.UUID)           {}
func (NopPersister) SaveTransaction(entity.Transaction) {}
func (NopPersister) DeleteTransaction(uuid.UUID)        {}
func (NopPersister) SaveContract(entity.Contract)       {}
func (NopPersister) DeleteContract(uuid.UUID)           {}
func (NopPersister) SavePurchase(entity.Purchase)       {}
func (NopPersister) DeletePurchase(uuid.UUID)           {}
func (NopPersister) SaveItem(entity.InventoryItem)      {}
func (NopPersister) DeleteItem(uuid.UUID)               {}
func (NopPersister) SaveEmployee(entity.Employee)       {}
func (NopPersister) DeleteEmployee(uuid.UUID)           {}
func (NopPersister) SaveBill(entity.RecurringBill)      {}
func (NopPersister) DeleteBill(uuid.UUID)               {}
