package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mrmdan725-prog/kitchinz-erp-sub000/internal/domain/entity"
	"github.com/mrmdan725-prog/kitchinz-erp-sub000/internal/domain/ledger"
	domainRepo "github.com/mrmdan725-prog/kitchinz-erp-sub000/internal/domain/repository"
)

type ledgerStore struct {
	db *gorm.DB
}

// NewLedgerStore creates the GORM-backed durable store for the ledger book
func NewLedgerStore(db *gorm.DB) domainRepo.LedgerStore {
	return &ledgerStore{db: db}
}

// LoadSnapshot reads the entire ledger state in one pass. Contracts come back
// with their payments preloaded so the book can rebuild installment state.
func (r *ledgerStore) LoadSnapshot(ctx context.Context) (ledger.Snapshot, error) {
	var s ledger.Snapshot

	db := r.db.WithContext(ctx)
	if err := db.Find(&s.Accounts).Error; err != nil {
		return s, err
	}
	if err := db.Find(&s.Customers).Error; err != nil {
		return s, err
	}
	if err := db.Find(&s.Transactions).Error; err != nil {
		return s, err
	}
	if err := db.Preload("Payments").Find(&s.Contracts).Error; err != nil {
		return s, err
	}
	if err := db.Find(&s.Purchases).Error; err != nil {
		return s, err
	}
	if err := db.Find(&s.Items).Error; err != nil {
		return s, err
	}
	if err := db.Find(&s.Employees).Error; err != nil {
		return s, err
	}
	if err := db.Find(&s.Bills).Error; err != nil {
		return s, err
	}
	return s, nil
}

// upsert writes the row, inserting or fully replacing it by primary key.
func (r *ledgerStore) upsert(ctx context.Context, value any) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Omit(clause.Associations).
		Create(value).Error
}

func (r *ledgerStore) UpsertAccount(ctx context.Context, a entity.Account) error {
	return r.upsert(ctx, &a)
}

func (r *ledgerStore) DeleteAccount(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Account{}, "id = ?", id).Error
}

func (r *ledgerStore) UpsertCustomer(ctx context.Context, c entity.Customer) error {
	return r.upsert(ctx, &c)
}

func (r *ledgerStore) DeleteCustomer(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Customer{}, "id = ?", id).Error
}

func (r *ledgerStore) UpsertTransaction(ctx context.Context, t entity.Transaction) error {
	return r.upsert(ctx, &t)
}

func (r *ledgerStore) DeleteTransaction(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Transaction{}, "id = ?", id).Error
}

// UpsertContract writes the contract row and reconciles its payment rows:
// payments no longer on the contract (a cancelled installment) are removed.
func (r *ledgerStore) UpsertContract(ctx context.Context, c entity.Contract) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		payments := c.Payments
		c.Payments = nil
		if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Omit(clause.Associations).Create(&c).Error; err != nil {
			return err
		}

		kept := make([]uuid.UUID, 0, len(payments))
		for i := range payments {
			if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Omit(clause.Associations).Create(&payments[i]).Error; err != nil {
				return err
			}
			kept = append(kept, payments[i].ID)
		}

		del := tx.Where("contract_id = ?", c.ID)
		if len(kept) > 0 {
			del = del.Where("id NOT IN ?", kept)
		}
		return del.Delete(&entity.ContractPayment{}).Error
	})
}

func (r *ledgerStore) DeleteContract(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("contract_id = ?", id).Delete(&entity.ContractPayment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Contract{}, "id = ?", id).Error
	})
}

func (r *ledgerStore) UpsertPurchase(ctx context.Context, p entity.Purchase) error {
	return r.upsert(ctx, &p)
}

func (r *ledgerStore) DeletePurchase(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Purchase{}, "id = ?", id).Error
}

func (r *ledgerStore) UpsertItem(ctx context.Context, it entity.InventoryItem) error {
	return r.upsert(ctx, &it)
}

func (r *ledgerStore) DeleteItem(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.InventoryItem{}, "id = ?", id).Error
}

func (r *ledgerStore) UpsertEmployee(ctx context.Context, e entity.Employee) error {
	return r.upsert(ctx, &e)
}

func (r *ledgerStore) DeleteEmployee(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Employee{}, "id = ?", id).Error
}

func (r *ledgerStore) UpsertBill(ctx context.Context, b entity.RecurringBill) error {
	return r.upsert(ctx, &b)
}

func (r *ledgerStore) DeleteBill(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.RecurringBill{}, "id = ?", id).Error
}
