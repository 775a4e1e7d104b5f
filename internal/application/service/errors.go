package service

import (
	"errors"

	"github.com/mrmdan725-prog/kitchinz-erp-sub000/internal/domain/ledger"
	"github.com/mrmdan725-prog/kitchinz-erp-sub000/pkg/apperror"
)

// mapLedgerError translates ledger sentinel errors into transport-facing
// application errors. Unknown errors pass through untouched.
func mapLedgerError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ledger.ErrAccountNotFound):
		return apperror.NewNotFoundError("Account")
	case errors.Is(err, ledger.ErrCustomerNotFound):
		return apperror.NewNotFoundError("Customer")
	case errors.Is(err, ledger.ErrTransactionNotFound):
		return apperror.NewNotFoundError("Transaction")
	case errors.Is(err, ledger.ErrContractNotFound):
		return apperror.NewNotFoundError("Contract")
	case errors.Is(err, ledger.ErrPurchaseNotFound):
		return apperror.NewNotFoundError("Purchase")
	case errors.Is(err, ledger.ErrItemNotFound):
		return apperror.NewNotFoundError("Inventory item")
	case errors.Is(err, ledger.ErrEmployeeNotFound):
		return apperror.NewNotFoundError("Employee")
	case errors.Is(err, ledger.ErrBillNotFound):
		return apperror.NewNotFoundError("Recurring bill")
	case errors.Is(err, ledger.ErrDuplicateName):
		return apperror.NewConflictError("Name already in use")
	case errors.Is(err, ledger.ErrInstallmentAlreadyPaid):
		return apperror.NewConflictError("Installment already collected")
	case errors.Is(err, ledger.ErrInvalidAmount),
		errors.Is(err, ledger.ErrInvalidType),
		errors.Is(err, ledger.ErrNoTarget),
		errors.Is(err, ledger.ErrEmptyName),
		errors.Is(err, ledger.ErrUnknownInstallment),
		errors.Is(err, ledger.ErrBillInactive):
		return apperror.NewBadRequestError(err.Error())
	default:
		return err
	}
}
