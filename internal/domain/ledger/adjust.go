package ledger

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mrmdan725-prog/kitchinz-erp-sub000/internal/domain/entity"
	"github.com/mrmdan725-prog/kitchinz-erp-sub000/internal/domain/enum"
)

const adjustmentCategory = "تسوية رصيد"

// AdjustAccountBalance corrects an account to the given balance by recording
// a single synthetic transaction for the difference. The balance is never
// written directly, so the reconstruction invariant keeps holding. A zero
// difference records nothing and returns a nil transaction.
func (b *Book) AdjustAccountBalance(id uuid.UUID, newBalance decimal.Decimal, reason string) (*entity.Transaction, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	a, ok := b.accounts[id]
	if !ok {
		return nil, ErrAccountNotFound
	}
	diff := newBalance.Sub(a.Balance)
	if diff.IsZero() {
		return nil, nil
	}
	return b.record(RecordInput{
		Type:      adjustmentType(diff),
		Amount:    diff.Abs(),
		Category:  adjustmentCategory,
		AccountID: &id,
		Notes:     adjustmentNote(reason),
	})
}

// AdjustCustomerBalance is the customer-side counterpart of
// AdjustAccountBalance.
func (b *Book) AdjustCustomerBalance(id uuid.UUID, newBalance decimal.Decimal, reason string) (*entity.Transaction, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	c, ok := b.customers[id]
	if !ok {
		return nil, ErrCustomerNotFound
	}
	diff := newBalance.Sub(c.Balance)
	if diff.IsZero() {
		return nil, nil
	}
	return b.record(RecordInput{
		Type:       adjustmentType(diff),
		Amount:     diff.Abs(),
		Category:   adjustmentCategory,
		CustomerID: &id,
		Notes:      adjustmentNote(reason),
	})
}

func adjustmentType(diff decimal.Decimal) enum.TransactionType {
	if diff.IsPositive() {
		return enum.TransactionTypeIncome
	}
	return enum.TransactionTypeExpense
}

func adjustmentNote(reason string) string {
	if reason == "" {
		return "تسوية رصيد يدوية"
	}
	return fmt.Sprintf("تسوية رصيد: %s", reason)
}
