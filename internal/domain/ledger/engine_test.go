package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrmdan725-prog/kitchinz-erp-sub000/internal/domain/enum"
)

func TestRecord_AppliesSignedAmount(t *testing.T) {
	b := New()
	acctID := newAccount(t, b, "Main Cash", "1000")
	custID := newCustomer(t, b, "محمد سعيد")

	_, err := b.Record(RecordInput{Type: enum.TransactionTypeIncome, Amount: dec("250"), Category: "دفعات عقود", AccountID: &acctID})
	require.NoError(t, err)
	assert.True(t, accountBalance(t, b, acctID).Equal(dec("1250")))

	_, err = b.Record(RecordInput{Type: enum.TransactionTypeExpense, Amount: dec("100"), AccountID: &acctID})
	require.NoError(t, err)
	assert.True(t, accountBalance(t, b, acctID).Equal(dec("1150")))

	// A customer target moves the customer balance, not any account.
	_, err = b.Record(RecordInput{Type: enum.TransactionTypeExpense, Amount: dec("30"), CustomerID: &custID})
	require.NoError(t, err)
	assert.True(t, customerBalance(t, b, custID).Equal(dec("-30")))
	assert.True(t, accountBalance(t, b, acctID).Equal(dec("1150")))
}

func TestRecord_RejectsBadInput(t *testing.T) {
	b := New()
	acctID := newAccount(t, b, "Main Cash", "500")

	tests := []struct {
		name string
		in   RecordInput
		want error
	}{
		{"negative amount", RecordInput{Type: enum.TransactionTypeIncome, Amount: dec("-5"), AccountID: &acctID}, ErrInvalidAmount},
		{"zero amount", RecordInput{Type: enum.TransactionTypeIncome, Amount: decimal.Zero, AccountID: &acctID}, ErrInvalidAmount},
		{"unknown type", RecordInput{Type: "transfer", Amount: dec("5"), AccountID: &acctID}, ErrInvalidType},
		{"no target", RecordInput{Type: enum.TransactionTypeIncome, Amount: dec("5")}, ErrNoTarget},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := b.Record(tt.in)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	// Nothing was mutated by any of the rejected calls.
	assert.True(t, accountBalance(t, b, acctID).Equal(dec("500")))
	assert.Empty(t, b.Transactions(TransactionFilter{}))
}

func TestRecord_RejectsUnknownTarget(t *testing.T) {
	b := New()
	acctID := newAccount(t, b, "Main Cash", "500")
	ghost := acctID
	require.NoError(t, b.DeleteAccount(acctID))

	_, err := b.Record(RecordInput{Type: enum.TransactionTypeIncome, Amount: dec("5"), AccountID: &ghost})
	assert.ErrorIs(t, err, ErrAccountNotFound)
	assert.Empty(t, b.Transactions(TransactionFilter{}))
}

func TestDelete_RestoresBalance(t *testing.T) {
	b := New()
	acctID := newAccount(t, b, "Main Cash", "1000")

	tx, err := b.Record(RecordInput{Type: enum.TransactionTypeIncome, Amount: dec("400"), AccountID: &acctID})
	require.NoError(t, err)
	assert.True(t, accountBalance(t, b, acctID).Equal(dec("1400")))

	require.NoError(t, b.DeleteTransaction(tx.ID))
	assert.True(t, accountBalance(t, b, acctID).Equal(dec("1000")), "delete reverses the record's effect exactly")
	assert.Empty(t, b.Transactions(TransactionFilter{}))

	assert.ErrorIs(t, b.DeleteTransaction(tx.ID), ErrTransactionNotFound)
}

func TestUpdate_SameAccountNetsDelta(t *testing.T) {
	b := New()
	acctID := newAccount(t, b, "Main Cash", "0")

	tx, err := b.Record(RecordInput{Type: enum.TransactionTypeIncome, Amount: dec("300"), AccountID: &acctID})
	require.NoError(t, err)

	_, err = b.UpdateTransaction(UpdateInput{
		ID: tx.ID, Type: enum.TransactionTypeIncome, Amount: dec("120"), AccountID: &acctID,
	})
	require.NoError(t, err)
	assert.True(t, accountBalance(t, b, acctID).Equal(dec("120")))
}

func TestUpdate_EquivalentToDeleteThenRecord(t *testing.T) {
	// Update(tx, newAmount) must land on the same balance as deleting the
	// transaction and recording it again with the new amount.
	b1 := New()
	id1 := newAccount(t, b1, "Main Cash", "1000")
	tx1, err := b1.Record(RecordInput{Type: enum.TransactionTypeExpense, Amount: dec("250"), AccountID: &id1})
	require.NoError(t, err)
	_, err = b1.UpdateTransaction(UpdateInput{ID: tx1.ID, Type: enum.TransactionTypeExpense, Amount: dec("90"), AccountID: &id1})
	require.NoError(t, err)
	updated := accountBalance(t, b1, id1)

	b := New()
	id := newAccount(t, b, "Main Cash", "1000")
	tx, err := b.Record(RecordInput{Type: enum.TransactionTypeExpense, Amount: dec("250"), AccountID: &id})
	require.NoError(t, err)
	require.NoError(t, b.DeleteTransaction(tx.ID))
	_, err = b.Record(RecordInput{Type: enum.TransactionTypeExpense, Amount: dec("90"), AccountID: &id})
	require.NoError(t, err)

	assert.True(t, updated.Equal(accountBalance(t, b, id)))
}

func TestUpdate_MovesBetweenTargets(t *testing.T) {
	b := New()
	cashID := newAccount(t, b, "Main Cash", "0")
	bankID := newAccount(t, b, "Bank", "0")

	tx, err := b.Record(RecordInput{Type: enum.TransactionTypeIncome, Amount: dec("600"), AccountID: &cashID})
	require.NoError(t, err)

	_, err = b.UpdateTransaction(UpdateInput{
		ID: tx.ID, Type: enum.TransactionTypeIncome, Amount: dec("600"), AccountID: &bankID,
	})
	require.NoError(t, err)

	assert.True(t, accountBalance(t, b, cashID).IsZero(), "old target gives the amount back")
	assert.True(t, accountBalance(t, b, bankID).Equal(dec("600")), "new target receives it")
}

func TestRecord_CrossEntityIsolation(t *testing.T) {
	b := New()
	cashID := newAccount(t, b, "Main Cash", "100")
	bankID := newAccount(t, b, "Bank", "200")
	custID := newCustomer(t, b, "سمير عادل")

	_, err := b.Record(RecordInput{Type: enum.TransactionTypeIncome, Amount: dec("50"), AccountID: &cashID})
	require.NoError(t, err)

	assert.True(t, accountBalance(t, b, bankID).Equal(dec("200")))
	assert.True(t, customerBalance(t, b, custID).IsZero())
}

func TestBalanceReconstructionInvariant(t *testing.T) {
	b := New()
	cashID := newAccount(t, b, "Main Cash", "5000")
	bankID := newAccount(t, b, "Bank", "10000")
	custID := newCustomer(t, b, "هاني يوسف")

	tx1, err := b.Record(RecordInput{Type: enum.TransactionTypeIncome, Amount: dec("1200"), AccountID: &cashID})
	require.NoError(t, err)
	tx2, err := b.Record(RecordInput{Type: enum.TransactionTypeExpense, Amount: dec("300"), AccountID: &cashID})
	require.NoError(t, err)
	_, err = b.Record(RecordInput{Type: enum.TransactionTypeIncome, Amount: dec("800"), AccountID: &bankID})
	require.NoError(t, err)
	_, err = b.Record(RecordInput{Type: enum.TransactionTypeIncome, Amount: dec("450"), CustomerID: &custID})
	require.NoError(t, err)

	_, err = b.UpdateTransaction(UpdateInput{ID: tx2.ID, Type: enum.TransactionTypeExpense, Amount: dec("500"), AccountID: &cashID})
	require.NoError(t, err)
	require.NoError(t, b.DeleteTransaction(tx1.ID))

	// balance == opening + Σ signed amounts of transactions still in the store
	assert.True(t, accountBalance(t, b, cashID).Equal(dec("4500")))
	assert.True(t, accountBalance(t, b, bankID).Equal(dec("10800")))
	assert.True(t, customerBalance(t, b, custID).Equal(dec("450")))

	// Cross-check against the store contents directly.
	sum := decimal.Zero
	for _, tx := range b.Transactions(TransactionFilter{AccountID: &cashID}) {
		sum = sum.Add(tx.SignedAmount())
	}
	assert.True(t, dec("5000").Add(sum).Equal(accountBalance(t, b, cashID)))
}

func TestTransactions_Filtering(t *testing.T) {
	b := New()
	cashID := newAccount(t, b, "Main Cash", "0")
	bankID := newAccount(t, b, "Bank", "0")

	_, err := b.Record(RecordInput{Type: enum.TransactionTypeIncome, Amount: dec("10"), Category: "دفعات عقود", AccountID: &cashID})
	require.NoError(t, err)
	_, err = b.Record(RecordInput{Type: enum.TransactionTypeExpense, Amount: dec("20"), Category: "مشتريات خامات", AccountID: &cashID})
	require.NoError(t, err)
	_, err = b.Record(RecordInput{Type: enum.TransactionTypeExpense, Amount: dec("30"), AccountID: &bankID})
	require.NoError(t, err)

	assert.Len(t, b.Transactions(TransactionFilter{}), 3)
	assert.Len(t, b.Transactions(TransactionFilter{AccountID: &cashID}), 2)
	assert.Len(t, b.Transactions(TransactionFilter{Type: enum.TransactionTypeExpense}), 2)
	assert.Len(t, b.Transactions(TransactionFilter{Category: "دفعات عقود"}), 1)
}
