package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mrmdan725-prog/kitchinz-erp-sub000/internal/domain/entity"
	"github.com/mrmdan725-prog/kitchinz-erp-sub000/internal/domain/enum"
)

// RecordInput describes a transaction to record. At least one of AccountID
// and CustomerID must be set; a zero Date defaults to the current time.
type RecordInput struct {
	Type       enum.TransactionType
	Amount     decimal.Decimal
	Category   string
	AccountID  *uuid.UUID
	CustomerID *uuid.UUID
	Notes      string
	Date       time.Time
}

// UpdateInput describes the full replacement state for an existing
// transaction. A zero Date keeps the original date.
type UpdateInput struct {
	ID         uuid.UUID
	Type       enum.TransactionType
	Amount     decimal.Decimal
	Category   string
	AccountID  *uuid.UUID
	CustomerID *uuid.UUID
	Notes      string
	Date       time.Time
}

// Record validates and stores a transaction, then applies its signed amount
// to the targeted account and/or customer balance. All-or-nothing: a
// validation failure mutates nothing.
func (b *Book) Record(in RecordInput) (*entity.Transaction, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.record(in)
}

// UpdateTransaction replaces an existing transaction: the old signed amount
// is subtracted from the old targets, the new signed amount added to the new
// targets, then the record itself is replaced.
func (b *Book) UpdateTransaction(in UpdateInput) (*entity.Transaction, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.updateTransaction(in)
}

// DeleteTransaction applies the inverse of the transaction's effect to its
// targets and removes it from the store.
func (b *Book) DeleteTransaction(id uuid.UUID) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.deleteTransaction(id)
}

// Transaction returns a copy of the transaction
func (b *Book) Transaction(id uuid.UUID) (*entity.Transaction, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	t, ok := b.transactions[id]
	if !ok {
		return nil, ErrTransactionNotFound
	}
	cp := *t
	return &cp, nil
}

// TransactionFilter narrows a transaction listing. Zero values match all.
type TransactionFilter struct {
	Type       enum.TransactionType
	AccountID  *uuid.UUID
	CustomerID *uuid.UUID
	Category   string
}

// Transactions returns copies of matching transactions, newest first
func (b *Book) Transactions(f TransactionFilter) []entity.Transaction {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]entity.Transaction, 0, len(b.txOrder))
	for _, id := range b.txOrder {
		t := b.transactions[id]
		if f.Type != "" && t.Type != f.Type {
			continue
		}
		if f.AccountID != nil && (t.AccountID == nil || *t.AccountID != *f.AccountID) {
			continue
		}
		if f.CustomerID != nil && (t.CustomerID == nil || *t.CustomerID != *f.CustomerID) {
			continue
		}
		if f.Category != "" && t.Category != f.Category {
			continue
		}
		out = append(out, *t)
	}
	return out
}

// ---- internals (caller holds the mutex) ----

func (b *Book) record(in RecordInput) (*entity.Transaction, error) {
	if err := b.validateTargets(in.Type, in.Amount, in.AccountID, in.CustomerID); err != nil {
		return nil, err
	}
	date := in.Date
	if date.IsZero() {
		date = b.now()
	}
	t := &entity.Transaction{
		ID:         b.newID(),
		Date:       date,
		Type:       in.Type,
		Amount:     in.Amount,
		Category:   in.Category,
		AccountID:  copyID(in.AccountID),
		CustomerID: copyID(in.CustomerID),
		Notes:      in.Notes,
		CreatedAt:  b.now(),
		UpdatedAt:  b.now(),
	}
	b.transactions[t.ID] = t
	b.txOrder = append([]uuid.UUID{t.ID}, b.txOrder...)
	b.applyDelta(t.AccountID, t.CustomerID, t.SignedAmount())
	b.persist.SaveTransaction(*t)
	cp := *t
	return &cp, nil
}

func (b *Book) updateTransaction(in UpdateInput) (*entity.Transaction, error) {
	old, ok := b.transactions[in.ID]
	if !ok {
		return nil, ErrTransactionNotFound
	}
	if err := b.validateTargets(in.Type, in.Amount, in.AccountID, in.CustomerID); err != nil {
		return nil, err
	}

	// Reverse the old effect on the old targets, apply the new effect on the
	// new targets. When old and new targets coincide the two calls net out to
	// a plain delta on the same balance.
	b.applyDelta(old.AccountID, old.CustomerID, old.SignedAmount().Neg())

	old.Type = in.Type
	old.Amount = in.Amount
	old.Category = in.Category
	old.AccountID = copyID(in.AccountID)
	old.CustomerID = copyID(in.CustomerID)
	old.Notes = in.Notes
	if !in.Date.IsZero() {
		old.Date = in.Date
	}
	old.UpdatedAt = b.now()

	b.applyDelta(old.AccountID, old.CustomerID, old.SignedAmount())
	b.persist.SaveTransaction(*old)
	cp := *old
	return &cp, nil
}

func (b *Book) deleteTransaction(id uuid.UUID) error {
	t, ok := b.transactions[id]
	if !ok {
		return ErrTransactionNotFound
	}
	b.applyDelta(t.AccountID, t.CustomerID, t.SignedAmount().Neg())
	delete(b.transactions, id)
	for i, other := range b.txOrder {
		if other == id {
			b.txOrder = append(b.txOrder[:i], b.txOrder[i+1:]...)
			break
		}
	}
	b.persist.DeleteTransaction(id)
	return nil
}

// validateTargets enforces the §7-style validation contract: a positive
// finite amount, a known type and existing targets, checked before any
// mutation.
func (b *Book) validateTargets(typ enum.TransactionType, amount decimal.Decimal, accountID, customerID *uuid.UUID) error {
	if !typ.IsValid() {
		return ErrInvalidType
	}
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	if accountID == nil && customerID == nil {
		return ErrNoTarget
	}
	if accountID != nil {
		if _, ok := b.accounts[*accountID]; !ok {
			return ErrAccountNotFound
		}
	}
	if customerID != nil {
		if _, ok := b.customers[*customerID]; !ok {
			return ErrCustomerNotFound
		}
	}
	return nil
}

// applyDelta adds the signed delta to whichever targets are set. Targets that
// vanished from the book (deleted account/customer) are skipped: the
// transaction is orphaned, not an error.
func (b *Book) applyDelta(accountID, customerID *uuid.UUID, delta decimal.Decimal) {
	if accountID != nil {
		if a, ok := b.accounts[*accountID]; ok {
			a.Balance = a.Balance.Add(delta)
			a.UpdatedAt = b.now()
			b.persist.SaveAccount(*a)
		}
	}
	if customerID != nil {
		if c, ok := b.customers[*customerID]; ok {
			c.Balance = c.Balance.Add(delta)
			c.UpdatedAt = b.now()
			b.persist.SaveCustomer(*c)
		}
	}
}

func copyID(id *uuid.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	cp := *id
	return &cp
}
