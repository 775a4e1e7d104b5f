package ledger

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrmdan725-prog/kitchinz-erp-sub000/internal/domain/enum"
)

func newItem(t *testing.T, b *Book, name, unit, stock string) uuid.UUID {
	t.Helper()
	it, err := b.CreateItem(name, unit, dec(stock))
	require.NoError(t, err)
	return it.ID
}

func itemStock(t *testing.T, b *Book, id uuid.UUID) string {
	t.Helper()
	it, err := b.Item(id)
	require.NoError(t, err)
	return it.Stock.String()
}

func TestAddPurchase(t *testing.T) {
	b := New()
	acctID := newAccount(t, b, "Main Cash", "10000")
	itemID := newItem(t, b, "Oak Wood", "متر", "50")

	p, err := b.AddPurchase(PurchaseInput{
		MaterialName: "Oak Wood",
		Quantity:     dec("10"),
		UnitPrice:    dec("200"),
		AccountID:    &acctID,
	})
	require.NoError(t, err)

	assert.True(t, p.Total.Equal(dec("2000")))
	assert.Equal(t, "60", itemStock(t, b, itemID))
	assert.True(t, accountBalance(t, b, acctID).Equal(dec("8000")))

	require.NotNil(t, p.ItemID)
	assert.Equal(t, itemID, *p.ItemID)
	require.NotNil(t, p.TransactionID)
	tx, err := b.Transaction(*p.TransactionID)
	require.NoError(t, err)
	assert.Equal(t, enum.TransactionTypeExpense, tx.Type)
	assert.Equal(t, "مشتريات خامات", tx.Category)
}

func TestAddPurchase_UnknownMaterial(t *testing.T) {
	b := New()
	acctID := newAccount(t, b, "Main Cash", "10000")

	// No inventory item matches: the money still moves, stock does not.
	p, err := b.AddPurchase(PurchaseInput{
		MaterialName: "Hinges",
		Quantity:     dec("4"),
		UnitPrice:    dec("50"),
		AccountID:    &acctID,
	})
	require.NoError(t, err)
	assert.Nil(t, p.ItemID)
	assert.True(t, accountBalance(t, b, acctID).Equal(dec("9800")))
}

func TestAddPurchase_NoAccount(t *testing.T) {
	b := New()
	itemID := newItem(t, b, "Oak Wood", "متر", "50")

	p, err := b.AddPurchase(PurchaseInput{
		MaterialName: "Oak Wood",
		Quantity:     dec("5"),
		UnitPrice:    dec("100"),
	})
	require.NoError(t, err)

	assert.Nil(t, p.TransactionID)
	assert.Equal(t, "55", itemStock(t, b, itemID))
	assert.Empty(t, b.Transactions(TransactionFilter{}))
}

func TestAddPurchase_CustomerIsNoteOnly(t *testing.T) {
	b := New()
	acctID := newAccount(t, b, "Main Cash", "10000")
	custID := newCustomer(t, b, "خالد منصور")

	p, err := b.AddPurchase(PurchaseInput{
		MaterialName: "Oak Wood",
		Quantity:     dec("2"),
		UnitPrice:    dec("300"),
		AccountID:    &acctID,
		CustomerID:   &custID,
	})
	require.NoError(t, err)

	// The customer appears in the note but their balance never moves.
	assert.True(t, customerBalance(t, b, custID).IsZero())
	tx, err := b.Transaction(*p.TransactionID)
	require.NoError(t, err)
	assert.Nil(t, tx.CustomerID)
	assert.Contains(t, tx.Notes, "خالد منصور")
}

func TestAddPurchase_Validation(t *testing.T) {
	b := New()
	acctID := newAccount(t, b, "Main Cash", "100")
	ghost := uuid.New()

	_, err := b.AddPurchase(PurchaseInput{MaterialName: " ", Quantity: dec("1"), UnitPrice: dec("1")})
	assert.ErrorIs(t, err, ErrEmptyName)

	_, err = b.AddPurchase(PurchaseInput{MaterialName: "x", Quantity: dec("0"), UnitPrice: dec("1")})
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = b.AddPurchase(PurchaseInput{MaterialName: "x", Quantity: dec("1"), UnitPrice: dec("-1")})
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = b.AddPurchase(PurchaseInput{MaterialName: "x", Quantity: dec("1"), UnitPrice: dec("1"), AccountID: &ghost})
	assert.ErrorIs(t, err, ErrAccountNotFound)

	assert.True(t, accountBalance(t, b, acctID).Equal(dec("100")))
	assert.Empty(t, b.Purchases())
}

func TestDeletePurchase_ReversesEverything(t *testing.T) {
	b := New()
	acctID := newAccount(t, b, "Main Cash", "10000")
	itemID := newItem(t, b, "Oak Wood", "متر", "50")

	p, err := b.AddPurchase(PurchaseInput{
		MaterialName: "Oak Wood",
		Quantity:     dec("10"),
		UnitPrice:    dec("200"),
		AccountID:    &acctID,
	})
	require.NoError(t, err)

	require.NoError(t, b.DeletePurchase(p.ID))

	assert.Equal(t, "50", itemStock(t, b, itemID))
	assert.True(t, accountBalance(t, b, acctID).Equal(dec("10000")))
	assert.Empty(t, b.Transactions(TransactionFilter{}))
	_, err = b.Purchase(p.ID)
	assert.ErrorIs(t, err, ErrPurchaseNotFound)
}

func TestUpdatePurchase_QuantityAndPrice(t *testing.T) {
	b := New()
	acctID := newAccount(t, b, "Main Cash", "10000")
	itemID := newItem(t, b, "Oak Wood", "متر", "50")

	p, err := b.AddPurchase(PurchaseInput{
		MaterialName: "Oak Wood",
		Quantity:     dec("10"),
		UnitPrice:    dec("200"),
		AccountID:    &acctID,
	})
	require.NoError(t, err)

	p, err = b.UpdatePurchase(PurchaseUpdate{
		ID: p.ID, Quantity: dec("4"), UnitPrice: dec("250"), AccountID: &acctID,
	})
	require.NoError(t, err)

	assert.True(t, p.Total.Equal(dec("1000")))
	assert.Equal(t, "54", itemStock(t, b, itemID))
	assert.True(t, accountBalance(t, b, acctID).Equal(dec("9000")))

	// Still one transaction, updated in place.
	txs := b.Transactions(TransactionFilter{})
	require.Len(t, txs, 1)
	assert.True(t, txs[0].Amount.Equal(dec("1000")))
}

func TestUpdatePurchase_DropAccountRemovesTransaction(t *testing.T) {
	b := New()
	acctID := newAccount(t, b, "Main Cash", "10000")
	newItem(t, b, "Oak Wood", "متر", "50")

	p, err := b.AddPurchase(PurchaseInput{
		MaterialName: "Oak Wood",
		Quantity:     dec("10"),
		UnitPrice:    dec("200"),
		AccountID:    &acctID,
	})
	require.NoError(t, err)

	p, err = b.UpdatePurchase(PurchaseUpdate{ID: p.ID, Quantity: dec("10"), UnitPrice: dec("200")})
	require.NoError(t, err)

	assert.Nil(t, p.TransactionID)
	assert.True(t, accountBalance(t, b, acctID).Equal(dec("10000")))
	assert.Empty(t, b.Transactions(TransactionFilter{}))
}

func TestUpdatePurchase_GainAccountRecordsTransaction(t *testing.T) {
	b := New()
	acctID := newAccount(t, b, "Main Cash", "10000")

	p, err := b.AddPurchase(PurchaseInput{MaterialName: "Hinges", Quantity: dec("4"), UnitPrice: dec("50")})
	require.NoError(t, err)
	require.Nil(t, p.TransactionID)

	p, err = b.UpdatePurchase(PurchaseUpdate{ID: p.ID, Quantity: dec("4"), UnitPrice: dec("50"), AccountID: &acctID})
	require.NoError(t, err)

	require.NotNil(t, p.TransactionID)
	assert.True(t, accountBalance(t, b, acctID).Equal(dec("9800")))
}

func TestUpdatePurchase_ZeroPriceDropsTransaction(t *testing.T) {
	b := New()
	acctID := newAccount(t, b, "Main Cash", "10000")
	itemID := newItem(t, b, "Oak Wood", "متر", "50")

	p, err := b.AddPurchase(PurchaseInput{
		MaterialName: "Oak Wood",
		Quantity:     dec("10"),
		UnitPrice:    dec("200"),
		AccountID:    &acctID,
	})
	require.NoError(t, err)
	require.Equal(t, "60", itemStock(t, b, itemID))

	// Pricing the purchase at zero while keeping the account removes the
	// expense entry; stock and balance stay consistent with each other.
	p, err = b.UpdatePurchase(PurchaseUpdate{
		ID: p.ID, Quantity: dec("4"), UnitPrice: dec("0"), AccountID: &acctID,
	})
	require.NoError(t, err)

	assert.Nil(t, p.TransactionID)
	assert.True(t, p.Total.IsZero())
	assert.Equal(t, "54", itemStock(t, b, itemID))
	assert.True(t, accountBalance(t, b, acctID).Equal(dec("10000")))
	assert.Empty(t, b.Transactions(TransactionFilter{}))
}

func TestUpdatePurchase_RejectedEditLeavesStockAlone(t *testing.T) {
	b := New()
	acctID := newAccount(t, b, "Main Cash", "10000")
	itemID := newItem(t, b, "Oak Wood", "متر", "50")

	p, err := b.AddPurchase(PurchaseInput{
		MaterialName: "Oak Wood",
		Quantity:     dec("10"),
		UnitPrice:    dec("200"),
		AccountID:    &acctID,
	})
	require.NoError(t, err)

	ghost := uuid.New()
	_, err = b.UpdatePurchase(PurchaseUpdate{
		ID: p.ID, Quantity: dec("4"), UnitPrice: dec("250"), AccountID: &ghost,
	})
	assert.ErrorIs(t, err, ErrAccountNotFound)

	_, err = b.UpdatePurchase(PurchaseUpdate{
		ID: p.ID, Quantity: dec("4"), UnitPrice: dec("-1"), AccountID: &acctID,
	})
	assert.ErrorIs(t, err, ErrInvalidAmount)

	// Neither rejected edit moved stock, balance or the purchase itself.
	assert.Equal(t, "60", itemStock(t, b, itemID))
	assert.True(t, accountBalance(t, b, acctID).Equal(dec("8000")))
	got, err := b.Purchase(p.ID)
	require.NoError(t, err)
	assert.True(t, got.Quantity.Equal(dec("10")))
}

func TestRestock_ClampsAtZero(t *testing.T) {
	b := New()
	itemID := newItem(t, b, "Oak Wood", "متر", "3")

	// Reversing more than is on hand cannot drive stock negative.
	b.restock(&itemID, dec("-10"))
	assert.Equal(t, "0", itemStock(t, b, itemID))
}

func TestInventoryCRUD(t *testing.T) {
	b := New()
	itemID := newItem(t, b, "Oak Wood", "متر", "50")

	_, err := b.CreateItem("Oak Wood", "قطعة", dec("0"))
	assert.ErrorIs(t, err, ErrDuplicateName)

	it, err := b.UpdateItem(itemID, "Beech Wood", "لوح")
	require.NoError(t, err)
	assert.Equal(t, "Beech Wood", it.Name)
	assert.Equal(t, "لوح", it.Unit)
	assert.Equal(t, "50", itemStock(t, b, itemID))

	require.NoError(t, b.DeleteItem(itemID))
	_, err = b.Item(itemID)
	assert.ErrorIs(t, err, ErrItemNotFound)
}
