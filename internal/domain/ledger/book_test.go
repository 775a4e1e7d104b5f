package ledger

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrmdan725-prog/kitchinz-erp-sub000/internal/domain/entity"
	"github.com/mrmdan725-prog/kitchinz-erp-sub000/internal/domain/enum"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func newAccount(t *testing.T, b *Book, name, opening string) uuid.UUID {
	t.Helper()
	a, err := b.CreateAccount(name, dec(opening))
	require.NoError(t, err)
	return a.ID
}

func newCustomer(t *testing.T, b *Book, name string) uuid.UUID {
	t.Helper()
	c, err := b.CreateCustomer(CustomerInput{Name: name})
	require.NoError(t, err)
	return c.ID
}

func accountBalance(t *testing.T, b *Book, id uuid.UUID) decimal.Decimal {
	t.Helper()
	a, err := b.Account(id)
	require.NoError(t, err)
	return a.Balance
}

func customerBalance(t *testing.T, b *Book, id uuid.UUID) decimal.Decimal {
	t.Helper()
	c, err := b.Customer(id)
	require.NoError(t, err)
	return c.Balance
}

func TestCreateAccount(t *testing.T) {
	b := New()

	a, err := b.CreateAccount("الخزنة الرئيسية", dec("1000"))
	require.NoError(t, err)
	assert.True(t, a.Balance.Equal(dec("1000")))

	_, err = b.CreateAccount("الخزنة الرئيسية", decimal.Zero)
	assert.ErrorIs(t, err, ErrDuplicateName)

	_, err = b.CreateAccount("  ", decimal.Zero)
	assert.ErrorIs(t, err, ErrEmptyName)
}

func TestRenameAccount_KeepsHistoryAttached(t *testing.T) {
	b := New()
	id := newAccount(t, b, "Main Cash", "0")

	_, err := b.Record(RecordInput{Type: enum.TransactionTypeIncome, Amount: dec("500"), AccountID: &id})
	require.NoError(t, err)

	_, err = b.RenameAccount(id, "Main Safe")
	require.NoError(t, err)

	// Balance and transaction linkage survive the rename.
	assert.True(t, accountBalance(t, b, id).Equal(dec("500")))
	txs := b.Transactions(TransactionFilter{AccountID: &id})
	require.Len(t, txs, 1)
}

func TestLoad_RebuildsState(t *testing.T) {
	acctID := uuid.New()
	custID := uuid.New()
	older := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)

	b := New()
	b.Load(Snapshot{
		Accounts:  []entity.Account{{ID: acctID, Name: "البنك", Balance: dec("2500")}},
		Customers: []entity.Customer{{ID: custID, Name: "أحمد", Balance: dec("-300")}},
		Transactions: []entity.Transaction{
			{ID: uuid.New(), Date: older, Type: enum.TransactionTypeIncome, Amount: dec("100"), AccountID: &acctID},
			{ID: uuid.New(), Date: newer, Type: enum.TransactionTypeExpense, Amount: dec("40"), AccountID: &acctID},
		},
	})

	assert.True(t, accountBalance(t, b, acctID).Equal(dec("2500")))
	assert.True(t, customerBalance(t, b, custID).Equal(dec("-300")))

	txs := b.Transactions(TransactionFilter{})
	require.Len(t, txs, 2)
	assert.Equal(t, newer, txs[0].Date, "listing is newest first")
}

// capturePersister records which entities the book hands to the durable
// store.
type capturePersister struct {
	NopPersister
	accounts     []entity.Account
	transactions []entity.Transaction
	deletedTx    []uuid.UUID
}

func (p *capturePersister) SaveAccount(a entity.Account) {
	p.accounts = append(p.accounts, a)
}

func (p *capturePersister) SaveTransaction(tx entity.Transaction) {
	p.transactions = append(p.transactions, tx)
}

func (p *capturePersister) DeleteTransaction(id uuid.UUID) {
	p.deletedTx = append(p.deletedTx, id)
}

func TestRecord_HandsMutationsToPersister(t *testing.T) {
	p := &capturePersister{}
	b := New(WithPersister(p))
	id := newAccount(t, b, "Main Cash", "0")
	p.accounts = nil

	tx, err := b.Record(RecordInput{Type: enum.TransactionTypeIncome, Amount: dec("75"), AccountID: &id})
	require.NoError(t, err)

	require.Len(t, p.transactions, 1)
	assert.Equal(t, tx.ID, p.transactions[0].ID)
	require.Len(t, p.accounts, 1)
	assert.True(t, p.accounts[0].Balance.Equal(dec("75")))

	require.NoError(t, b.DeleteTransaction(tx.ID))
	require.Len(t, p.deletedTx, 1)
	assert.Equal(t, tx.ID, p.deletedTx[0])
}
