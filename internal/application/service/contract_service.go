package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mrmdan725-prog/kitchinz-erp-sub000/internal/domain/entity"
	"github.com/mrmdan725-prog/kitchinz-erp-sub000/internal/domain/enum"
	"github.com/mrmdan725-prog/kitchinz-erp-sub000/internal/domain/ledger"
)

// ContractService handles contracting jobs and their milestone payments
type ContractService struct {
	book *ledger.Book
}

// NewContractService creates a new contract service
func NewContractService(book *ledger.Book) *ContractService {
	return &ContractService{book: book}
}

// CreateContractInput represents the create contract input
type CreateContractInput struct {
	CustomerID       uuid.UUID
	Description      string
	AccessoriesTotal decimal.Decimal
}

// CreateContract opens a new contracting job for a customer
func (s *ContractService) CreateContract(ctx context.Context, input *CreateContractInput) (*entity.Contract, error) {
	c, err := s.book.CreateContract(input.CustomerID, input.Description, input.AccessoriesTotal)
	return c, mapLedgerError(err)
}

// GetContract retrieves a contract with its payments
func (s *ContractService) GetContract(ctx context.Context, id uuid.UUID) (*entity.Contract, error) {
	c, err := s.book.Contract(id)
	return c, mapLedgerError(err)
}

// ListContracts lists all contracts
func (s *ContractService) ListContracts(ctx context.Context) []entity.Contract {
	return s.book.Contracts()
}

// RecordPaymentInput represents the record payment input
type RecordPaymentInput struct {
	ContractID  uuid.UUID
	Installment enum.Installment
	Amount      decimal.Decimal
	AccountID   uuid.UUID
}

// RecordPayment collects a milestone installment into the given account and
// advances the contract stage when the milestone is further along
func (s *ContractService) RecordPayment(ctx context.Context, input *RecordPaymentInput) (*entity.Contract, error) {
	c, err := s.book.RecordPayment(input.ContractID, input.Installment, input.Amount, input.AccountID)
	return c, mapLedgerError(err)
}

// CancelPayment reverses a collected installment with a compensating entry.
// The contract stage stays where it is.
func (s *ContractService) CancelPayment(ctx context.Context, contractID uuid.UUID, installment enum.Installment) (*entity.Contract, error) {
	c, err := s.book.CancelPayment(contractID, installment)
	return c, mapLedgerError(err)
}

// MarkDelivered marks the contract as handed over to the customer
func (s *ContractService) MarkDelivered(ctx context.Context, id uuid.UUID) (*entity.Contract, error) {
	c, err := s.book.MarkDelivered(id)
	return c, mapLedgerError(err)
}

// DeleteContract deletes a contract and its payment records. Transactions
// already in the ledger stay there.
func (s *ContractService) DeleteContract(ctx context.Context, id uuid.UUID) error {
	return mapLedgerError(s.book.DeleteContract(id))
}
