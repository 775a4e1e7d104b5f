package ledger

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mrmdan725-prog/kitchinz-erp-sub000/internal/domain/entity"
	"github.com/mrmdan725-prog/kitchinz-erp-sub000/internal/domain/enum"
)

const contractCategory = "دفعات عقود"

// CreateContract opens a contracting job for a customer. Installment amounts
// derive from the accessories total (deposit 60%, operation 30%, delivery 10%).
func (b *Book) CreateContract(customerID uuid.UUID, description string, accessoriesTotal decimal.Decimal) (*entity.Contract, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.customers[customerID]; !ok {
		return nil, ErrCustomerNotFound
	}
	if accessoriesTotal.IsNegative() {
		return nil, ErrInvalidAmount
	}
	c := &entity.Contract{
		ID:               b.newID(),
		CustomerID:       customerID,
		Description:      description,
		AccessoriesTotal: accessoriesTotal,
		Stage:            enum.ContractStageNew,
		CreatedAt:        b.now(),
		UpdatedAt:        b.now(),
	}
	b.contracts[c.ID] = c
	b.persist.SaveContract(*c.Clone())
	return c.Clone(), nil
}

// RecordPayment collects one milestone installment: it records an income
// transaction against the given account, stores the payment on the contract
// and raises the contract stage to the milestone's stage if that is further
// along than the current one. Collecting the same installment twice is
// rejected rather than silently doubled.
func (b *Book) RecordPayment(contractID uuid.UUID, key enum.Installment, amount decimal.Decimal, accountID uuid.UUID) (*entity.Contract, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	c, ok := b.contracts[contractID]
	if !ok {
		return nil, ErrContractNotFound
	}
	if !key.IsValid() {
		return nil, ErrUnknownInstallment
	}
	if p := c.Payment(key); p != nil && p.Received {
		return nil, ErrInstallmentAlreadyPaid
	}

	t, err := b.record(RecordInput{
		Type:      enum.TransactionTypeIncome,
		Amount:    amount,
		Category:  contractCategory,
		AccountID: &accountID,
		Notes:     fmt.Sprintf("تحصيل %s من العميل %s", key.Label(), b.customerName(&c.CustomerID)),
	})
	if err != nil {
		return nil, err
	}

	c.Payments = append(c.Payments, entity.ContractPayment{
		ID:            b.newID(),
		ContractID:    c.ID,
		Installment:   key,
		Amount:        amount,
		Date:          t.Date,
		AccountID:     accountID,
		TransactionID: t.ID,
		Received:      true,
		CreatedAt:     b.now(),
		UpdatedAt:     b.now(),
	})
	if stage := key.Stage(); stage > c.Stage {
		c.Stage = stage
	}
	c.UpdatedAt = b.now()
	b.persist.SaveContract(*c.Clone())
	return c.Clone(), nil
}

// CancelPayment reverses a collected installment with a compensating expense
// entry: the original income transaction stays in history and a new reversing
// transaction is recorded, then the installment is removed from the contract.
// The contract stage is not rolled back. Cancelling an uncollected
// installment is a no-op.
func (b *Book) CancelPayment(contractID uuid.UUID, key enum.Installment) (*entity.Contract, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	c, ok := b.contracts[contractID]
	if !ok {
		return nil, ErrContractNotFound
	}
	if !key.IsValid() {
		return nil, ErrUnknownInstallment
	}
	p := c.Payment(key)
	if p == nil || !p.Received {
		return c.Clone(), nil
	}

	if _, err := b.record(RecordInput{
		Type:      enum.TransactionTypeExpense,
		Amount:    p.Amount,
		Category:  contractCategory,
		AccountID: &p.AccountID,
		Notes:     fmt.Sprintf("إلغاء %s للعميل %s", key.Label(), b.customerName(&c.CustomerID)),
	}); err != nil {
		return nil, err
	}

	for i := range c.Payments {
		if c.Payments[i].Installment == key {
			c.Payments = append(c.Payments[:i], c.Payments[i+1:]...)
			break
		}
	}
	c.UpdatedAt = b.now()
	b.persist.SaveContract(*c.Clone())
	return c.Clone(), nil
}

// MarkDelivered is the delivery-completion action: it moves the contract to
// its terminal stage.
func (b *Book) MarkDelivered(contractID uuid.UUID) (*entity.Contract, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	c, ok := b.contracts[contractID]
	if !ok {
		return nil, ErrContractNotFound
	}
	now := b.now()
	c.Stage = enum.ContractStageDelivered
	c.DeliveredAt = &now
	c.UpdatedAt = now
	b.persist.SaveContract(*c.Clone())
	return c.Clone(), nil
}

// DeleteContract removes a contract. Its transactions stay in history.
func (b *Book) DeleteContract(id uuid.UUID) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.contracts[id]; !ok {
		return ErrContractNotFound
	}
	delete(b.contracts, id)
	b.persist.DeleteContract(id)
	return nil
}

// Contract returns a deep copy of the contract
func (b *Book) Contract(id uuid.UUID) (*entity.Contract, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	c, ok := b.contracts[id]
	if !ok {
		return nil, ErrContractNotFound
	}
	return c.Clone(), nil
}

// Contracts returns deep copies of all contracts, newest first
func (b *Book) Contracts() []entity.Contract {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]entity.Contract, 0, len(b.contracts))
	for _, c := range b.contracts {
		out = append(out, *c.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}
