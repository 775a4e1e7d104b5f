package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrmdan725-prog/kitchinz-erp-sub000/internal/domain/enum"
)

func TestPaySalary(t *testing.T) {
	b := New()
	acctID := newAccount(t, b, "Main Cash", "20000")
	e, err := b.CreateEmployee(EmployeeInput{Name: "حسن فهمي", Position: "نجار", Salary: dec("6000")})
	require.NoError(t, err)

	tx, err := b.PaySalary(e.ID, acctID)
	require.NoError(t, err)

	assert.Equal(t, enum.TransactionTypeExpense, tx.Type)
	assert.Equal(t, "رواتب وأجور", tx.Category)
	assert.Contains(t, tx.Notes, "حسن فهمي")
	assert.True(t, accountBalance(t, b, acctID).Equal(dec("14000")))

	got, err := b.Employee(e.ID)
	require.NoError(t, err)
	assert.NotNil(t, got.LastPaidAt)
}

func TestPaySalary_ZeroSalaryRejected(t *testing.T) {
	b := New()
	acctID := newAccount(t, b, "Main Cash", "20000")
	e, err := b.CreateEmployee(EmployeeInput{Name: "متدرب"})
	require.NoError(t, err)

	_, err = b.PaySalary(e.ID, acctID)
	assert.ErrorIs(t, err, ErrInvalidAmount)
	assert.True(t, accountBalance(t, b, acctID).Equal(dec("20000")))

	got, err := b.Employee(e.ID)
	require.NoError(t, err)
	assert.Nil(t, got.LastPaidAt)
}

func TestProcessBill(t *testing.T) {
	b := New()
	acctID := newAccount(t, b, "البنك", "5000")
	bill, err := b.CreateBill(BillInput{Name: "إيجار الورشة", Amount: dec("1500"), DueDay: 5, AccountID: acctID, Active: true})
	require.NoError(t, err)

	tx, err := b.ProcessBill(bill.ID)
	require.NoError(t, err)

	assert.Equal(t, "مصروفات دورية", tx.Category)
	assert.True(t, accountBalance(t, b, acctID).Equal(dec("3500")))

	got, err := b.Bill(bill.ID)
	require.NoError(t, err)
	assert.NotNil(t, got.LastPaidAt)
}

func TestProcessBill_Inactive(t *testing.T) {
	b := New()
	acctID := newAccount(t, b, "البنك", "5000")
	bill, err := b.CreateBill(BillInput{Name: "اشتراك قديم", Amount: dec("200"), DueDay: 1, AccountID: acctID, Active: false})
	require.NoError(t, err)

	_, err = b.ProcessBill(bill.ID)
	assert.ErrorIs(t, err, ErrBillInactive)
	assert.True(t, accountBalance(t, b, acctID).Equal(dec("5000")))
}

func TestProcessDueBills(t *testing.T) {
	day := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	b := New(WithClock(func() time.Time { return day }))
	acctID := newAccount(t, b, "البنك", "10000")

	_, err := b.CreateBill(BillInput{Name: "إيجار", Amount: dec("1500"), DueDay: 5, AccountID: acctID, Active: true})
	require.NoError(t, err)
	_, err = b.CreateBill(BillInput{Name: "كهرباء", Amount: dec("400"), DueDay: 20, AccountID: acctID, Active: true})
	require.NoError(t, err)
	_, err = b.CreateBill(BillInput{Name: "اشتراك معطل", Amount: dec("100"), DueDay: 5, AccountID: acctID, Active: false})
	require.NoError(t, err)

	// Only the rent is due on the 10th: electricity's day has not come and
	// the inactive bill never runs.
	paid := b.ProcessDueBills(day)
	require.Len(t, paid, 1)
	assert.True(t, accountBalance(t, b, acctID).Equal(dec("8500")))

	// Running again in the same month pays nothing twice.
	paid = b.ProcessDueBills(day.AddDate(0, 0, 3))
	assert.Empty(t, paid)
	assert.True(t, accountBalance(t, b, acctID).Equal(dec("8500")))
}

func TestProcessDueBills_NextMonthPaysAgain(t *testing.T) {
	march := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	now := march
	b := New(WithClock(func() time.Time { return now }))
	acctID := newAccount(t, b, "البنك", "10000")

	_, err := b.CreateBill(BillInput{Name: "إيجار", Amount: dec("1500"), DueDay: 5, AccountID: acctID, Active: true})
	require.NoError(t, err)

	require.Len(t, b.ProcessDueBills(march), 1)

	now = march.AddDate(0, 1, 0)
	require.Len(t, b.ProcessDueBills(now), 1)
	assert.True(t, accountBalance(t, b, acctID).Equal(dec("7000")))
}

func TestBillCRUD(t *testing.T) {
	b := New()
	acctID := newAccount(t, b, "البنك", "0")

	_, err := b.CreateBill(BillInput{Name: "إيجار", Amount: dec("0"), DueDay: 5, AccountID: acctID, Active: true})
	assert.ErrorIs(t, err, ErrInvalidAmount)

	bill, err := b.CreateBill(BillInput{Name: "إيجار", Amount: dec("1500"), DueDay: 40, AccountID: acctID, Active: true})
	require.NoError(t, err)
	assert.Equal(t, 1, bill.DueDay, "out-of-range due day falls back to the 1st")

	bill, err = b.UpdateBill(bill.ID, BillInput{Name: "إيجار الورشة", Amount: dec("1600"), DueDay: 7, AccountID: acctID, Active: false})
	require.NoError(t, err)
	assert.Equal(t, 7, bill.DueDay)
	assert.False(t, bill.Active)

	require.NoError(t, b.DeleteBill(bill.ID))
	_, err = b.Bill(bill.ID)
	assert.ErrorIs(t, err, ErrBillNotFound)
}

func TestEmployeeCRUD(t *testing.T) {
	b := New()

	_, err := b.CreateEmployee(EmployeeInput{Name: "  "})
	assert.ErrorIs(t, err, ErrEmptyName)

	e, err := b.CreateEmployee(EmployeeInput{Name: "حسن", Position: "نجار", Salary: dec("6000")})
	require.NoError(t, err)

	e, err = b.UpdateEmployee(e.ID, EmployeeInput{Name: "حسن فهمي", Position: "رئيس ورشة", Salary: dec("7500")})
	require.NoError(t, err)
	assert.Equal(t, "حسن فهمي", e.Name)
	assert.True(t, e.Salary.Equal(dec("7500")))

	require.NoError(t, b.DeleteEmployee(e.ID))
	_, err = b.Employee(e.ID)
	assert.ErrorIs(t, err, ErrEmployeeNotFound)
}
