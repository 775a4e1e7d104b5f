package ledger

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mrmdan725-prog/kitchinz-erp-sub000/internal/domain/entity"
	"github.com/mrmdan725-prog/kitchinz-erp-sub000/internal/domain/enum"
)

const purchaseCategory = "مشتريات خامات"

// PurchaseInput describes a material purchase. AccountID is optional: a
// purchase without one affects inventory only, never the ledger. CustomerID
// optionally ties the material to a customer's job for the note text.
type PurchaseInput struct {
	MaterialName string
	Quantity     decimal.Decimal
	UnitPrice    decimal.Decimal
	AccountID    *uuid.UUID
	CustomerID   *uuid.UUID
	Date         time.Time
}

// PurchaseUpdate carries the editable purchase fields. The purchase stays
// bound to the inventory item resolved at creation.
type PurchaseUpdate struct {
	ID         uuid.UUID
	Quantity   decimal.Decimal
	UnitPrice  decimal.Decimal
	AccountID  *uuid.UUID
	CustomerID *uuid.UUID
}

// AddPurchase stores the purchase, bumps the matching inventory item's stock
// by the quantity (a no-op when no item matches the material name) and, when
// an account is given, records the expense transaction and links it to the
// purchase by id.
func (b *Book) AddPurchase(in PurchaseInput) (*entity.Purchase, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	in.MaterialName = strings.TrimSpace(in.MaterialName)
	if in.MaterialName == "" {
		return nil, ErrEmptyName
	}
	if !in.Quantity.IsPositive() {
		return nil, ErrInvalidAmount
	}
	if in.UnitPrice.IsNegative() {
		return nil, ErrInvalidAmount
	}
	if in.AccountID != nil {
		if _, ok := b.accounts[*in.AccountID]; !ok {
			return nil, ErrAccountNotFound
		}
	}
	if in.CustomerID != nil {
		if _, ok := b.customers[*in.CustomerID]; !ok {
			return nil, ErrCustomerNotFound
		}
	}

	date := in.Date
	if date.IsZero() {
		date = b.now()
	}
	total := in.Quantity.Mul(in.UnitPrice).Round(2)
	p := &entity.Purchase{
		ID:           b.newID(),
		Date:         date,
		MaterialName: in.MaterialName,
		Quantity:     in.Quantity,
		UnitPrice:    in.UnitPrice,
		Total:        total,
		AccountID:    copyID(in.AccountID),
		CustomerID:   copyID(in.CustomerID),
		CreatedAt:    b.now(),
		UpdatedAt:    b.now(),
	}

	if item := b.itemByName(in.MaterialName); item != nil {
		p.ItemID = copyID(&item.ID)
		item.Stock = item.Stock.Add(in.Quantity)
		item.UpdatedAt = b.now()
		b.persist.SaveItem(*item)
	}

	// The expense hits the paying account only; the customer link is
	// descriptive and must not move the customer's project balance.
	if p.AccountID != nil && total.IsPositive() {
		t, err := b.record(RecordInput{
			Type:      enum.TransactionTypeExpense,
			Amount:    total,
			Category:  purchaseCategory,
			AccountID: p.AccountID,
			Notes:     purchaseNote(p.MaterialName, b.customerName(p.CustomerID)),
			Date:      date,
		})
		if err != nil {
			return nil, err
		}
		p.TransactionID = copyID(&t.ID)
	}

	b.purchases[p.ID] = p
	b.persist.SavePurchase(*p)
	cp := *p
	return &cp, nil
}

// UpdatePurchase drives the linked transaction through a ledger update,
// create or delete depending on whether the purchase gained or lost its
// paying account, then reverses the old quantity's inventory effect (clamped
// at zero) and applies the new one. Every fallible ledger operation runs
// before stock moves, so an error leaves the purchase fully untouched.
func (b *Book) UpdatePurchase(in PurchaseUpdate) (*entity.Purchase, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	p, ok := b.purchases[in.ID]
	if !ok {
		return nil, ErrPurchaseNotFound
	}
	if !in.Quantity.IsPositive() {
		return nil, ErrInvalidAmount
	}
	if in.UnitPrice.IsNegative() {
		return nil, ErrInvalidAmount
	}
	if in.AccountID != nil {
		if _, ok := b.accounts[*in.AccountID]; !ok {
			return nil, ErrAccountNotFound
		}
	}
	if in.CustomerID != nil {
		if _, ok := b.customers[*in.CustomerID]; !ok {
			return nil, ErrCustomerNotFound
		}
	}

	total := in.Quantity.Mul(in.UnitPrice).Round(2)
	notes := purchaseNote(p.MaterialName, b.customerName(in.CustomerID))

	txID := copyID(p.TransactionID)
	switch {
	case in.AccountID != nil && txID != nil && total.IsPositive():
		_, err := b.updateTransaction(UpdateInput{
			ID:        *txID,
			Type:      enum.TransactionTypeExpense,
			Amount:    total,
			Category:  purchaseCategory,
			AccountID: in.AccountID,
			Notes:     notes,
			Date:      p.Date,
		})
		if errors.Is(err, ErrTransactionNotFound) {
			// Linked transaction was deleted out from under the purchase;
			// relink by recording a fresh one.
			txID = nil
		} else if err != nil {
			return nil, err
		}
	case txID != nil:
		// The paying account was dropped, or the new total is zero: the
		// expense entry goes away and its balance effect is reversed.
		if err := b.deleteTransaction(*txID); err != nil && !errors.Is(err, ErrTransactionNotFound) {
			return nil, err
		}
		txID = nil
	}

	if in.AccountID != nil && txID == nil && total.IsPositive() {
		t, err := b.record(RecordInput{
			Type:      enum.TransactionTypeExpense,
			Amount:    total,
			Category:  purchaseCategory,
			AccountID: in.AccountID,
			Notes:     notes,
			Date:      p.Date,
		})
		if err != nil {
			return nil, err
		}
		txID = copyID(&t.ID)
	}

	b.restock(p.ItemID, p.Quantity.Neg())
	b.restock(p.ItemID, in.Quantity)

	p.TransactionID = txID
	p.Quantity = in.Quantity
	p.UnitPrice = in.UnitPrice
	p.Total = total
	p.AccountID = copyID(in.AccountID)
	p.CustomerID = copyID(in.CustomerID)
	p.UpdatedAt = b.now()
	b.persist.SavePurchase(*p)
	cp := *p
	return &cp, nil
}

// DeletePurchase reverses the purchase's inventory effect (clamped at zero),
// deletes the linked transaction if one exists and removes the purchase.
func (b *Book) DeletePurchase(id uuid.UUID) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	p, ok := b.purchases[id]
	if !ok {
		return ErrPurchaseNotFound
	}
	b.restock(p.ItemID, p.Quantity.Neg())
	if p.TransactionID != nil {
		if err := b.deleteTransaction(*p.TransactionID); err != nil && !errors.Is(err, ErrTransactionNotFound) {
			return err
		}
	}
	delete(b.purchases, id)
	b.persist.DeletePurchase(id)
	return nil
}

// Purchase returns a copy of the purchase
func (b *Book) Purchase(id uuid.UUID) (*entity.Purchase, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	p, ok := b.purchases[id]
	if !ok {
		return nil, ErrPurchaseNotFound
	}
	cp := *p
	return &cp, nil
}

// Purchases returns copies of all purchases, newest first
func (b *Book) Purchases() []entity.Purchase {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]entity.Purchase, 0, len(b.purchases))
	for _, p := range b.purchases {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out
}

// ---- inventory ----

// CreateItem registers an inventory item with an opening stock level
func (b *Book) CreateItem(name, unit string, opening decimal.Decimal) (*entity.InventoryItem, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if b.itemByName(name) != nil {
		return nil, ErrDuplicateName
	}
	if opening.IsNegative() {
		return nil, ErrInvalidAmount
	}
	it := &entity.InventoryItem{
		ID:        b.newID(),
		Name:      name,
		Unit:      unit,
		Stock:     opening,
		CreatedAt: b.now(),
		UpdatedAt: b.now(),
	}
	b.items[it.ID] = it
	b.persist.SaveItem(*it)
	cp := *it
	return &cp, nil
}

// UpdateItem edits an item's name and unit. Stock only moves through
// purchases.
func (b *Book) UpdateItem(id uuid.UUID, name, unit string) (*entity.InventoryItem, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	it, ok := b.items[id]
	if !ok {
		return nil, ErrItemNotFound
	}
	if name = strings.TrimSpace(name); name != "" {
		if other := b.itemByName(name); other != nil && other.ID != id {
			return nil, ErrDuplicateName
		}
		it.Name = name
	}
	if unit != "" {
		it.Unit = unit
	}
	it.UpdatedAt = b.now()
	b.persist.SaveItem(*it)
	cp := *it
	return &cp, nil
}

// DeleteItem removes an inventory item; purchases referencing it are orphaned
func (b *Book) DeleteItem(id uuid.UUID) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.items[id]; !ok {
		return ErrItemNotFound
	}
	delete(b.items, id)
	b.persist.DeleteItem(id)
	return nil
}

// Item returns a copy of the inventory item
func (b *Book) Item(id uuid.UUID) (*entity.InventoryItem, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	it, ok := b.items[id]
	if !ok {
		return nil, ErrItemNotFound
	}
	cp := *it
	return &cp, nil
}

// Items returns copies of all inventory items sorted by name
func (b *Book) Items() []entity.InventoryItem {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]entity.InventoryItem, 0, len(b.items))
	for _, it := range b.items {
		out = append(out, *it)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// itemByName finds an item by exact name. Caller holds the mutex.
func (b *Book) itemByName(name string) *entity.InventoryItem {
	for _, it := range b.items {
		if it.Name == name {
			return it
		}
	}
	return nil
}

// restock applies a stock delta to the item, clamping at zero on reversals.
// A nil id is a no-op (purchase never matched an item). Caller holds the
// mutex.
func (b *Book) restock(itemID *uuid.UUID, delta decimal.Decimal) {
	if itemID == nil {
		return
	}
	it, ok := b.items[*itemID]
	if !ok {
		return
	}
	it.Stock = it.Stock.Add(delta)
	if it.Stock.IsNegative() {
		it.Stock = decimal.Zero
	}
	it.UpdatedAt = b.now()
	b.persist.SaveItem(*it)
}

// purchaseNote builds the human-readable note for a purchase transaction
func purchaseNote(materialName, customerName string) string {
	if customerName != "" {
		return fmt.Sprintf("شراء خامة %s للعميل %s", materialName, customerName)
	}
	return fmt.Sprintf("شراء خامة %s", materialName)
}
