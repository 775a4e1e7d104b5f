package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/mrmdan725-prog/kitchinz-erp-sub000/internal/domain/entity"
	"github.com/mrmdan725-prog/kitchinz-erp-sub000/internal/domain/repository"
)

const writeTimeout = 10 * time.Second

// BestEffortWriter pushes ledger mutations to the durable store without
// blocking the caller. Each write runs in its own goroutine; failures are
// logged and dropped, never surfaced back into the ledger book, whose
// in-memory state stays authoritative either way.
type BestEffortWriter struct {
	store repository.LedgerStore
	log   *logrus.Logger
}

// NewBestEffortWriter wraps the store in a fire-and-forget persister
func NewBestEffortWriter(store repository.LedgerStore, log *logrus.Logger) *BestEffortWriter {
	return &BestEffortWriter{store: store, log: log}
}

func (w *BestEffortWriter) run(op string, id uuid.UUID, fn func(ctx context.Context) error) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		defer cancel()
		if err := fn(ctx); err != nil {
			w.log.WithFields(logrus.Fields{"op": op, "id": id}).WithError(err).Error("ledger write failed")
		}
	}()
}

func (w *BestEffortWriter) SaveAccount(a entity.Account) {
	w.run("save_account", a.ID, func(ctx context.Context) error { return w.store.UpsertAccount(ctx, a) })
}

func (w *BestEffortWriter) DeleteAccount(id uuid.UUID) {
	w.run("delete_account", id, func(ctx context.Context) error { return w.store.DeleteAccount(ctx, id) })
}

func (w *BestEffortWriter) SaveCustomer(c entity.Customer) {
	w.run("save_customer", c.ID, func(ctx context.Context) error { return w.store.UpsertCustomer(ctx, c) })
}

func (w *BestEffortWriter) DeleteCustomer(id uuid.UUID) {
	w.run("delete_customer", id, func(ctx context.Context) error { return w.store.DeleteCustomer(ctx, id) })
}

func (w *BestEffortWriter) SaveTransaction(t entity.Transaction) {
	w.run("save_transaction", t.ID, func(ctx context.Context) error { return w.store.UpsertTransaction(ctx, t) })
}

func (w *BestEffortWriter) DeleteTransaction(id uuid.UUID) {
	w.run("delete_transaction", id, func(ctx context.Context) error { return w.store.DeleteTransaction(ctx, id) })
}

func (w *BestEffortWriter) SaveContract(c entity.Contract) {
	w.run("save_contract", c.ID, func(ctx context.Context) error { return w.store.UpsertContract(ctx, c) })
}

func (w *BestEffortWriter) DeleteContract(id uuid.UUID) {
	w.run("delete_contract", id, func(ctx context.Context) error { return w.store.DeleteContract(ctx, id) })
}

func (w *BestEffortWriter) SavePurchase(p entity.Purchase) {
	w.run("save_purchase", p.ID, func(ctx context.Context) error { return w.store.UpsertPurchase(ctx, p) })
}

func (w *BestEffortWriter) DeletePurchase(id uuid.UUID) {
	w.run("delete_purchase", id, func(ctx context.Context) error { return w.store.DeletePurchase(ctx, id) })
}

func (w *BestEffortWriter) SaveItem(it entity.InventoryItem) {
	w.run("save_item", it.ID, func(ctx context.Context) error { return w.store.UpsertItem(ctx, it) })
}

func (w *BestEffortWriter) DeleteItem(id uuid.UUID) {
	w.run("delete_item", id, func(ctx context.Context) error { return w.store.DeleteItem(ctx, id) })
}

func (w *BestEffortWriter) SaveEmployee(e entity.Employee) {
	w.run("save_employee", e.ID, func(ctx context.Context) error { return w.store.UpsertEmployee(ctx, e) })
}

func (w *BestEffortWriter) DeleteEmployee(id uuid.UUID) {
	w.run("delete_employee", id, func(ctx context.Context) error { return w.store.DeleteEmployee(ctx, id) })
}

func (w *BestEffortWriter) SaveBill(b entity.RecurringBill) {
	w.run("save_bill", b.ID, func(ctx context.Context) error { return w.store.UpsertBill(ctx, b) })
}

func (w *BestEffortWriter) DeleteBill(id uuid.UUID) {
	w.run("delete_bill", id, func(ctx context.Context) error { return w.store.DeleteBill(ctx, id) })
}
