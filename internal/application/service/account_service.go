package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mrmdan725-prog/kitchinz-erp-sub000/internal/domain/entity"
	"github.com/mrmdan725-prog/kitchinz-erp-sub000/internal/domain/ledger"
)

// AccountService handles cash-account operations on top of the ledger book
type AccountService struct {
	book *ledger.Book
}

// NewAccountService creates a new account service
func NewAccountService(book *ledger.Book) *AccountService {
	return &AccountService{book: book}
}

// CreateAccountInput represents the create account input
type CreateAccountInput struct {
	Name           string
	OpeningBalance decimal.Decimal
}

// CreateAccount creates a new cash account
func (s *AccountService) CreateAccount(ctx context.Context, input *CreateAccountInput) (*entity.Account, error) {
	a, err := s.book.CreateAccount(input.Name, input.OpeningBalance)
	return a, mapLedgerError(err)
}

// GetAccount retrieves an account by ID
func (s *AccountService) GetAccount(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	a, err := s.book.Account(id)
	return a, mapLedgerError(err)
}

// ListAccounts lists all accounts sorted by name
func (s *AccountService) ListAccounts(ctx context.Context) []entity.Account {
	return s.book.Accounts()
}

// RenameAccount renames an account; its transaction history stays attached
func (s *AccountService) RenameAccount(ctx context.Context, id uuid.UUID, name string) (*entity.Account, error) {
	a, err := s.book.RenameAccount(id, name)
	return a, mapLedgerError(err)
}

// DeleteAccount deletes an account
func (s *AccountService) DeleteAccount(ctx context.Context, id uuid.UUID) error {
	return mapLedgerError(s.book.DeleteAccount(id))
}

// AdjustBalance corrects the account to the counted balance by recording an
// adjustment transaction for the difference. Returns nil when the balance
// already matches.
func (s *AccountService) AdjustBalance(ctx context.Context, id uuid.UUID, newBalance decimal.Decimal, reason string) (*entity.Transaction, error) {
	t, err := s.book.AdjustAccountBalance(id, newBalance, reason)
	return t, mapLedgerError(err)
}
