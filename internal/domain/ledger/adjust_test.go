package ledger

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrmdan725-prog/kitchinz-erp-sub000/internal/domain/enum"
)

func TestAdjustAccountBalance(t *testing.T) {
	b := New()
	acctID := newAccount(t, b, "Main Cash", "35000")

	tx, err := b.AdjustAccountBalance(acctID, dec("40000"), "جرد نهاية الشهر")
	require.NoError(t, err)
	require.NotNil(t, tx)

	assert.Equal(t, enum.TransactionTypeIncome, tx.Type)
	assert.True(t, tx.Amount.Equal(dec("5000")))
	assert.Equal(t, "تسوية رصيد", tx.Category)
	assert.Contains(t, tx.Notes, "جرد نهاية الشهر")
	assert.True(t, accountBalance(t, b, acctID).Equal(dec("40000")))

	// Adjusting to the balance already held records nothing.
	tx, err = b.AdjustAccountBalance(acctID, dec("40000"), "")
	require.NoError(t, err)
	assert.Nil(t, tx)
	assert.Len(t, b.Transactions(TransactionFilter{}), 1)
}

func TestAdjustAccountBalance_Downward(t *testing.T) {
	b := New()
	acctID := newAccount(t, b, "Main Cash", "40000")

	tx, err := b.AdjustAccountBalance(acctID, dec("38500"), "")
	require.NoError(t, err)
	require.NotNil(t, tx)

	assert.Equal(t, enum.TransactionTypeExpense, tx.Type)
	assert.True(t, tx.Amount.Equal(dec("1500")))
	assert.True(t, accountBalance(t, b, acctID).Equal(dec("38500")))
}

func TestAdjustCustomerBalance(t *testing.T) {
	b := New()
	custID := newCustomer(t, b, "خالد منصور")

	tx, err := b.AdjustCustomerBalance(custID, dec("-2000"), "خصم متفق عليه")
	require.NoError(t, err)
	require.NotNil(t, tx)

	assert.Equal(t, enum.TransactionTypeExpense, tx.Type)
	assert.True(t, tx.Amount.Equal(dec("2000")))
	require.NotNil(t, tx.CustomerID)
	assert.Equal(t, custID, *tx.CustomerID)
	assert.True(t, customerBalance(t, b, custID).Equal(dec("-2000")))
}

func TestAdjust_UnknownTarget(t *testing.T) {
	b := New()
	ghost := uuid.New()

	_, err := b.AdjustAccountBalance(ghost, dec("100"), "")
	assert.ErrorIs(t, err, ErrAccountNotFound)

	_, err = b.AdjustCustomerBalance(ghost, dec("100"), "")
	assert.ErrorIs(t, err, ErrCustomerNotFound)
}
