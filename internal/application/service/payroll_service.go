package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mrmdan725-prog/kitchinz-erp-sub000/internal/domain/entity"
	"github.com/mrmdan725-prog/kitchinz-erp-sub000/internal/domain/ledger"
)

// PayrollService handles employees, salary payouts and recurring bills
type PayrollService struct {
	book *ledger.Book
}

// NewPayrollService creates a new payroll service
func NewPayrollService(book *ledger.Book) *PayrollService {
	return &PayrollService{book: book}
}

// EmployeeInput represents the create/update employee input
type EmployeeInput struct {
	Name     string
	Phone    *string
	Position string
	Salary   decimal.Decimal
}

// CreateEmployee registers an employee
func (s *PayrollService) CreateEmployee(ctx context.Context, input *EmployeeInput) (*entity.Employee, error) {
	e, err := s.book.CreateEmployee(ledger.EmployeeInput{
		Name:     input.Name,
		Phone:    input.Phone,
		Position: input.Position,
		Salary:   input.Salary,
	})
	return e, mapLedgerError(err)
}

// UpdateEmployee edits an employee's details
func (s *PayrollService) UpdateEmployee(ctx context.Context, id uuid.UUID, input *EmployeeInput) (*entity.Employee, error) {
	e, err := s.book.UpdateEmployee(id, ledger.EmployeeInput{
		Name:     input.Name,
		Phone:    input.Phone,
		Position: input.Position,
		Salary:   input.Salary,
	})
	return e, mapLedgerError(err)
}

// DeleteEmployee removes an employee
func (s *PayrollService) DeleteEmployee(ctx context.Context, id uuid.UUID) error {
	return mapLedgerError(s.book.DeleteEmployee(id))
}

// GetEmployee retrieves an employee by ID
func (s *PayrollService) GetEmployee(ctx context.Context, id uuid.UUID) (*entity.Employee, error) {
	e, err := s.book.Employee(id)
	return e, mapLedgerError(err)
}

// ListEmployees lists all employees sorted by name
func (s *PayrollService) ListEmployees(ctx context.Context) []entity.Employee {
	return s.book.Employees()
}

// PaySalary pays the employee's monthly salary out of the given account
func (s *PayrollService) PaySalary(ctx context.Context, employeeID, accountID uuid.UUID) (*entity.Transaction, error) {
	t, err := s.book.PaySalary(employeeID, accountID)
	return t, mapLedgerError(err)
}

// BillInput represents the create/update recurring bill input
type BillInput struct {
	Name      string
	Amount    decimal.Decimal
	DueDay    int
	AccountID uuid.UUID
	Active    bool
}

// CreateBill registers a recurring bill
func (s *PayrollService) CreateBill(ctx context.Context, input *BillInput) (*entity.RecurringBill, error) {
	b, err := s.book.CreateBill(ledger.BillInput{
		Name:      input.Name,
		Amount:    input.Amount,
		DueDay:    input.DueDay,
		AccountID: input.AccountID,
		Active:    input.Active,
	})
	return b, mapLedgerError(err)
}

// UpdateBill edits a recurring bill
func (s *PayrollService) UpdateBill(ctx context.Context, id uuid.UUID, input *BillInput) (*entity.RecurringBill, error) {
	b, err := s.book.UpdateBill(id, ledger.BillInput{
		Name:      input.Name,
		Amount:    input.Amount,
		DueDay:    input.DueDay,
		AccountID: input.AccountID,
		Active:    input.Active,
	})
	return b, mapLedgerError(err)
}

// DeleteBill removes a recurring bill
func (s *PayrollService) DeleteBill(ctx context.Context, id uuid.UUID) error {
	return mapLedgerError(s.book.DeleteBill(id))
}

// GetBill retrieves a recurring bill by ID
func (s *PayrollService) GetBill(ctx context.Context, id uuid.UUID) (*entity.RecurringBill, error) {
	b, err := s.book.Bill(id)
	return b, mapLedgerError(err)
}

// ListBills lists all recurring bills sorted by name
func (s *PayrollService) ListBills(ctx context.Context) []entity.RecurringBill {
	return s.book.Bills()
}

// ProcessBill pays one recurring bill immediately
func (s *PayrollService) ProcessBill(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	t, err := s.book.ProcessBill(id)
	return t, mapLedgerError(err)
}

// ProcessDueBills pays every active bill due on the given day
func (s *PayrollService) ProcessDueBills(ctx context.Context, day time.Time) []entity.Transaction {
	return s.book.ProcessDueBills(day)
}
