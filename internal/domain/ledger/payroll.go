package ledger

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mrmdan725-prog/kitchinz-erp-sub000/internal/domain/entity"
	"github.com/mrmdan725-prog/kitchinz-erp-sub000/internal/domain/enum"
)

const (
	salaryCategory = "رواتب وأجور"
	billCategory   = "مصروفات دورية"
)

// ---- employees ----

// EmployeeInput carries the CRUD-editable employee fields
type EmployeeInput struct {
	Name     string
	Phone    *string
	Position string
	Salary   decimal.Decimal
}

// CreateEmployee registers an employee
func (b *Book) CreateEmployee(in EmployeeInput) (*entity.Employee, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return nil, ErrEmptyName
	}
	if in.Salary.IsNegative() {
		return nil, ErrInvalidAmount
	}
	e := &entity.Employee{
		ID:        b.newID(),
		Name:      in.Name,
		Phone:     in.Phone,
		Position:  in.Position,
		Salary:    in.Salary,
		CreatedAt: b.now(),
		UpdatedAt: b.now(),
	}
	b.employees[e.ID] = e
	b.persist.SaveEmployee(*e)
	cp := *e
	return &cp, nil
}

// UpdateEmployee edits an employee's details
func (b *Book) UpdateEmployee(id uuid.UUID, in EmployeeInput) (*entity.Employee, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	e, ok := b.employees[id]
	if !ok {
		return nil, ErrEmployeeNotFound
	}
	if in.Salary.IsNegative() {
		return nil, ErrInvalidAmount
	}
	if name := strings.TrimSpace(in.Name); name != "" {
		e.Name = name
	}
	if in.Phone != nil {
		e.Phone = in.Phone
	}
	if in.Position != "" {
		e.Position = in.Position
	}
	e.Salary = in.Salary
	e.UpdatedAt = b.now()
	b.persist.SaveEmployee(*e)
	cp := *e
	return &cp, nil
}

// DeleteEmployee removes an employee
func (b *Book) DeleteEmployee(id uuid.UUID) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.employees[id]; !ok {
		return ErrEmployeeNotFound
	}
	delete(b.employees, id)
	b.persist.DeleteEmployee(id)
	return nil
}

// Employee returns a copy of the employee
func (b *Book) Employee(id uuid.UUID) (*entity.Employee, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	e, ok := b.employees[id]
	if !ok {
		return nil, ErrEmployeeNotFound
	}
	cp := *e
	return &cp, nil
}

// Employees returns copies of all employees sorted by name
func (b *Book) Employees() []entity.Employee {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]entity.Employee, 0, len(b.employees))
	for _, e := range b.employees {
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// PaySalary records one expense transaction for the employee's monthly
// salary, paid out of the given account.
func (b *Book) PaySalary(employeeID, accountID uuid.UUID) (*entity.Transaction, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	e, ok := b.employees[employeeID]
	if !ok {
		return nil, ErrEmployeeNotFound
	}
	t, err := b.record(RecordInput{
		Type:      enum.TransactionTypeExpense,
		Amount:    e.Salary,
		Category:  salaryCategory,
		AccountID: &accountID,
		Notes:     fmt.Sprintf("صرف راتب %s", e.Name),
	})
	if err != nil {
		return nil, err
	}
	now := b.now()
	e.LastPaidAt = &now
	e.UpdatedAt = now
	b.persist.SaveEmployee(*e)
	return t, nil
}

// ---- recurring bills ----

// BillInput carries the CRUD-editable recurring-bill fields
type BillInput struct {
	Name      string
	Amount    decimal.Decimal
	DueDay    int
	AccountID uuid.UUID
	Active    bool
}

// CreateBill registers a recurring bill
func (b *Book) CreateBill(in BillInput) (*entity.RecurringBill, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return nil, ErrEmptyName
	}
	if !in.Amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	if _, ok := b.accounts[in.AccountID]; !ok {
		return nil, ErrAccountNotFound
	}
	if in.DueDay < 1 || in.DueDay > 28 {
		in.DueDay = 1
	}
	bill := &entity.RecurringBill{
		ID:        b.newID(),
		Name:      in.Name,
		Amount:    in.Amount,
		DueDay:    in.DueDay,
		AccountID: in.AccountID,
		Active:    in.Active,
		CreatedAt: b.now(),
		UpdatedAt: b.now(),
	}
	b.bills[bill.ID] = bill
	b.persist.SaveBill(*bill)
	cp := *bill
	return &cp, nil
}

// UpdateBill edits a recurring bill
func (b *Book) UpdateBill(id uuid.UUID, in BillInput) (*entity.RecurringBill, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	bill, ok := b.bills[id]
	if !ok {
		return nil, ErrBillNotFound
	}
	if !in.Amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	if _, ok := b.accounts[in.AccountID]; !ok {
		return nil, ErrAccountNotFound
	}
	if name := strings.TrimSpace(in.Name); name != "" {
		bill.Name = name
	}
	bill.Amount = in.Amount
	if in.DueDay >= 1 && in.DueDay <= 28 {
		bill.DueDay = in.DueDay
	}
	bill.AccountID = in.AccountID
	bill.Active = in.Active
	bill.UpdatedAt = b.now()
	b.persist.SaveBill(*bill)
	cp := *bill
	return &cp, nil
}

// DeleteBill removes a recurring bill
func (b *Book) DeleteBill(id uuid.UUID) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.bills[id]; !ok {
		return ErrBillNotFound
	}
	delete(b.bills, id)
	b.persist.DeleteBill(id)
	return nil
}

// Bill returns a copy of the recurring bill
func (b *Book) Bill(id uuid.UUID) (*entity.RecurringBill, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	bill, ok := b.bills[id]
	if !ok {
		return nil, ErrBillNotFound
	}
	cp := *bill
	return &cp, nil
}

// Bills returns copies of all recurring bills sorted by name
func (b *Book) Bills() []entity.RecurringBill {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]entity.RecurringBill, 0, len(b.bills))
	for _, bill := range b.bills {
		out = append(out, *bill)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// ProcessBill records one expense transaction for the bill against its
// default account and stamps the bill as paid for the month.
func (b *Book) ProcessBill(id uuid.UUID) (*entity.Transaction, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.processBill(id)
}

// ProcessDueBills processes every active bill due on the given day. Bills
// whose account has vanished are skipped; the rest still go through.
func (b *Book) ProcessDueBills(day time.Time) []entity.Transaction {
	b.mu.Lock()
	defer b.mu.Unlock()

	var out []entity.Transaction
	for _, bill := range b.bills {
		if !bill.DueOn(day) {
			continue
		}
		t, err := b.processBill(bill.ID)
		if err != nil {
			continue
		}
		out = append(out, *t)
	}
	return out
}

func (b *Book) processBill(id uuid.UUID) (*entity.Transaction, error) {
	bill, ok := b.bills[id]
	if !ok {
		return nil, ErrBillNotFound
	}
	if !bill.Active {
		return nil, ErrBillInactive
	}
	t, err := b.record(RecordInput{
		Type:      enum.TransactionTypeExpense,
		Amount:    bill.Amount,
		Category:  billCategory,
		AccountID: &bill.AccountID,
		Notes:     fmt.Sprintf("سداد %s", bill.Name),
	})
	if err != nil {
		return nil, err
	}
	now := b.now()
	bill.LastPaidAt = &now
	bill.UpdatedAt = now
	b.persist.SaveBill(*bill)
	return t, nil
}
