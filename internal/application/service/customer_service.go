package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mrmdan725-prog/kitchinz-erp-sub000/internal/domain/entity"
	"github.com/mrmdan725-prog/kitchinz-erp-sub000/internal/domain/ledger"
)

// CustomerService handles customer-related operations
type CustomerService struct {
	book *ledger.Book
}

// NewCustomerService creates a new customer service
func NewCustomerService(book *ledger.Book) *CustomerService {
	return &CustomerService{book: book}
}

// CreateCustomerInput represents the create customer input
type CreateCustomerInput struct {
	Name    string
	Phone   *string
	Address *string
}

// CreateCustomer creates a new customer with a zero project balance
func (s *CustomerService) CreateCustomer(ctx context.Context, input *CreateCustomerInput) (*entity.Customer, error) {
	c, err := s.book.CreateCustomer(ledger.CustomerInput{
		Name:    input.Name,
		Phone:   input.Phone,
		Address: input.Address,
	})
	return c, mapLedgerError(err)
}

// GetCustomer retrieves a customer by ID
func (s *CustomerService) GetCustomer(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	c, err := s.book.Customer(id)
	return c, mapLedgerError(err)
}

// ListCustomers lists all customers sorted by name
func (s *CustomerService) ListCustomers(ctx context.Context) []entity.Customer {
	return s.book.Customers()
}

// UpdateCustomerInput represents the update customer input
type UpdateCustomerInput struct {
	ID      uuid.UUID
	Name    string
	Phone   *string
	Address *string
}

// UpdateCustomer updates a customer's contact details. The balance is not
// editable here; it only moves through ledger transactions.
func (s *CustomerService) UpdateCustomer(ctx context.Context, input *UpdateCustomerInput) (*entity.Customer, error) {
	c, err := s.book.UpdateCustomer(input.ID, ledger.CustomerInput{
		Name:    input.Name,
		Phone:   input.Phone,
		Address: input.Address,
	})
	return c, mapLedgerError(err)
}

// DeleteCustomer deletes a customer; their transactions stay in history
func (s *CustomerService) DeleteCustomer(ctx context.Context, id uuid.UUID) error {
	return mapLedgerError(s.book.DeleteCustomer(id))
}

// AdjustBalance corrects the customer's project balance by recording an
// adjustment transaction for the difference
func (s *CustomerService) AdjustBalance(ctx context.Context, id uuid.UUID, newBalance decimal.Decimal, reason string) (*entity.Transaction, error) {
	t, err := s.book.AdjustCustomerBalance(id, newBalance, reason)
	return t, mapLedgerError(err)
}
