package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrmdan725-prog/kitchinz-erp-sub000/internal/domain/enum"
)

func TestInstallmentAmounts(t *testing.T) {
	b := New()
	custID := newCustomer(t, b, "خالد منصور")
	c, err := b.CreateContract(custID, "مطبخ خشب زان", dec("100000"))
	require.NoError(t, err)

	assert.True(t, c.InstallmentAmount(enum.InstallmentDeposit).Equal(dec("60000")))
	assert.True(t, c.InstallmentAmount(enum.InstallmentOperation).Equal(dec("30000")))
	assert.True(t, c.InstallmentAmount(enum.InstallmentDelivery).Equal(dec("10000")))
}

func TestRecordPayment_Deposit(t *testing.T) {
	b := New()
	custID := newCustomer(t, b, "خالد منصور")
	acctID := newAccount(t, b, "Main Cash", "0")
	c, err := b.CreateContract(custID, "", dec("100000"))
	require.NoError(t, err)

	c, err = b.RecordPayment(c.ID, enum.InstallmentDeposit, dec("60000"), acctID)
	require.NoError(t, err)

	assert.True(t, accountBalance(t, b, acctID).Equal(dec("60000")))
	assert.Equal(t, enum.ContractStageManufacturing, c.Stage)

	p := c.Payment(enum.InstallmentDeposit)
	require.NotNil(t, p)
	assert.True(t, p.Received)
	assert.True(t, p.Amount.Equal(dec("60000")))

	// The payment links to a real income transaction.
	tx, err := b.Transaction(p.TransactionID)
	require.NoError(t, err)
	assert.Equal(t, enum.TransactionTypeIncome, tx.Type)
	assert.Contains(t, tx.Notes, "خالد منصور")
}

func TestRecordPayment_StageProgression(t *testing.T) {
	b := New()
	custID := newCustomer(t, b, "c")
	acctID := newAccount(t, b, "Main Cash", "0")
	c, err := b.CreateContract(custID, "", dec("100000"))
	require.NoError(t, err)

	c, err = b.RecordPayment(c.ID, enum.InstallmentDeposit, dec("60000"), acctID)
	require.NoError(t, err)
	assert.Equal(t, enum.ContractStageManufacturing, c.Stage)

	c, err = b.RecordPayment(c.ID, enum.InstallmentOperation, dec("30000"), acctID)
	require.NoError(t, err)
	assert.Equal(t, enum.ContractStageCompleted, c.Stage)

	c, err = b.RecordPayment(c.ID, enum.InstallmentDelivery, dec("10000"), acctID)
	require.NoError(t, err)
	assert.Equal(t, enum.ContractStageDelivering, c.Stage)
}

func TestRecordPayment_OutOfOrderNeverRegresses(t *testing.T) {
	b := New()
	custID := newCustomer(t, b, "c")
	acctID := newAccount(t, b, "Main Cash", "0")
	c, err := b.CreateContract(custID, "", dec("100000"))
	require.NoError(t, err)

	// Collect delivery first, then deposit: the stage must stay at the
	// furthest point reached, not fall back to manufacturing.
	c, err = b.RecordPayment(c.ID, enum.InstallmentDelivery, dec("10000"), acctID)
	require.NoError(t, err)
	assert.Equal(t, enum.ContractStageDelivering, c.Stage)

	c, err = b.RecordPayment(c.ID, enum.InstallmentDeposit, dec("60000"), acctID)
	require.NoError(t, err)
	assert.Equal(t, enum.ContractStageDelivering, c.Stage)
}

func TestRecordPayment_Validation(t *testing.T) {
	b := New()
	custID := newCustomer(t, b, "c")
	acctID := newAccount(t, b, "Main Cash", "0")
	c, err := b.CreateContract(custID, "", dec("100000"))
	require.NoError(t, err)

	_, err = b.RecordPayment(c.ID, "retainer", dec("100"), acctID)
	assert.ErrorIs(t, err, ErrUnknownInstallment)

	_, err = b.RecordPayment(c.ID, enum.InstallmentDeposit, dec("-5"), acctID)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = b.RecordPayment(c.ID, enum.InstallmentDeposit, dec("60000"), custID)
	assert.ErrorIs(t, err, ErrAccountNotFound)

	// None of the rejected calls touched the account or the contract.
	assert.True(t, accountBalance(t, b, acctID).IsZero())
	got, err := b.Contract(c.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Payments)

	_, err = b.RecordPayment(c.ID, enum.InstallmentDeposit, dec("60000"), acctID)
	require.NoError(t, err)
	_, err = b.RecordPayment(c.ID, enum.InstallmentDeposit, dec("60000"), acctID)
	assert.ErrorIs(t, err, ErrInstallmentAlreadyPaid)
	assert.True(t, accountBalance(t, b, acctID).Equal(dec("60000")), "double collection must not double the balance")
}

func TestCancelPayment(t *testing.T) {
	b := New()
	custID := newCustomer(t, b, "خالد منصور")
	acctID := newAccount(t, b, "Main Cash", "0")
	c, err := b.CreateContract(custID, "", dec("100000"))
	require.NoError(t, err)

	c, err = b.RecordPayment(c.ID, enum.InstallmentDeposit, dec("60000"), acctID)
	require.NoError(t, err)

	c, err = b.CancelPayment(c.ID, enum.InstallmentDeposit)
	require.NoError(t, err)

	// Net zero against the opening balance, installment gone, stage kept.
	assert.True(t, accountBalance(t, b, acctID).IsZero())
	assert.Nil(t, c.Payment(enum.InstallmentDeposit))
	assert.Equal(t, enum.ContractStageManufacturing, c.Stage)

	// Compensating entry: the original income stays in history next to a
	// reversing expense, rather than being deleted.
	txs := b.Transactions(TransactionFilter{AccountID: &acctID})
	require.Len(t, txs, 2)
	assert.Equal(t, enum.TransactionTypeExpense, txs[0].Type)
	assert.Equal(t, enum.TransactionTypeIncome, txs[1].Type)
}

func TestCancelPayment_NotCollectedIsNoop(t *testing.T) {
	b := New()
	custID := newCustomer(t, b, "c")
	acctID := newAccount(t, b, "Main Cash", "0")
	c, err := b.CreateContract(custID, "", dec("100000"))
	require.NoError(t, err)

	c, err = b.CancelPayment(c.ID, enum.InstallmentOperation)
	require.NoError(t, err)
	assert.Empty(t, c.Payments)
	assert.True(t, accountBalance(t, b, acctID).IsZero())
	assert.Empty(t, b.Transactions(TransactionFilter{}))
}

func TestMarkDelivered(t *testing.T) {
	b := New()
	custID := newCustomer(t, b, "c")
	c, err := b.CreateContract(custID, "", dec("100000"))
	require.NoError(t, err)

	c, err = b.MarkDelivered(c.ID)
	require.NoError(t, err)
	assert.Equal(t, enum.ContractStageDelivered, c.Stage)
	require.NotNil(t, c.DeliveredAt)
}

func TestCreateContract_Validation(t *testing.T) {
	b := New()
	custID := newCustomer(t, b, "c")

	_, err := b.CreateContract(custID, "", dec("-1"))
	assert.ErrorIs(t, err, ErrInvalidAmount)

	acctID := newAccount(t, b, "Main Cash", "0")
	_, err = b.CreateContract(acctID, "", dec("100"))
	assert.ErrorIs(t, err, ErrCustomerNotFound)
}
