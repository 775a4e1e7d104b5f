package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mrmdan725-prog/kitchinz-erp-sub000/internal/domain/entity"
	"github.com/mrmdan725-prog/kitchinz-erp-sub000/internal/domain/enum"
	"github.com/mrmdan725-prog/kitchinz-erp-sub000/internal/domain/ledger"
	"github.com/mrmdan725-prog/kitchinz-erp-sub000/pkg/pagination"
)

// TransactionService handles manual ledger entries
type TransactionService struct {
	book *ledger.Book
}

// NewTransactionService creates a new transaction service
func NewTransactionService(book *ledger.Book) *TransactionService {
	return &TransactionService{book: book}
}

// RecordTransactionInput represents the record transaction input
type RecordTransactionInput struct {
	Type       enum.TransactionType
	Amount     decimal.Decimal
	Category   string
	AccountID  *uuid.UUID
	CustomerID *uuid.UUID
	Notes      string
	Date       time.Time
}

// RecordTransaction records a transaction and applies it to its targets
func (s *TransactionService) RecordTransaction(ctx context.Context, input *RecordTransactionInput) (*entity.Transaction, error) {
	t, err := s.book.Record(ledger.RecordInput{
		Type:       input.Type,
		Amount:     input.Amount,
		Category:   input.Category,
		AccountID:  input.AccountID,
		CustomerID: input.CustomerID,
		Notes:      input.Notes,
		Date:       input.Date,
	})
	return t, mapLedgerError(err)
}

// UpdateTransactionInput represents the update transaction input
type UpdateTransactionInput struct {
	ID         uuid.UUID
	Type       enum.TransactionType
	Amount     decimal.Decimal
	Category   string
	AccountID  *uuid.UUID
	CustomerID *uuid.UUID
	Notes      string
	Date       time.Time
}

// UpdateTransaction replaces a transaction; balances end up exactly as if the
// original had been deleted and the new version recorded
func (s *TransactionService) UpdateTransaction(ctx context.Context, input *UpdateTransactionInput) (*entity.Transaction, error) {
	t, err := s.book.UpdateTransaction(ledger.UpdateInput{
		ID:         input.ID,
		Type:       input.Type,
		Amount:     input.Amount,
		Category:   input.Category,
		AccountID:  input.AccountID,
		CustomerID: input.CustomerID,
		Notes:      input.Notes,
		Date:       input.Date,
	})
	return t, mapLedgerError(err)
}

// DeleteTransaction deletes a transaction, reversing its balance effect
func (s *TransactionService) DeleteTransaction(ctx context.Context, id uuid.UUID) error {
	return mapLedgerError(s.book.DeleteTransaction(id))
}

// GetTransaction retrieves a transaction by ID
func (s *TransactionService) GetTransaction(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	t, err := s.book.Transaction(id)
	return t, mapLedgerError(err)
}

// ListTransactionsInput narrows and paginates a transaction listing
type ListTransactionsInput struct {
	Type       enum.TransactionType
	AccountID  *uuid.UUID
	CustomerID *uuid.UUID
	Category   string
	Params     *pagination.PaginationParams
}

// ListTransactions lists transactions newest first
func (s *TransactionService) ListTransactions(ctx context.Context, input *ListTransactionsInput) *pagination.PaginatedResult[entity.Transaction] {
	txs := s.book.Transactions(ledger.TransactionFilter{
		Type:       input.Type,
		AccountID:  input.AccountID,
		CustomerID: input.CustomerID,
		Category:   input.Category,
	})
	return pagination.Paginate(txs, input.Params)
}
