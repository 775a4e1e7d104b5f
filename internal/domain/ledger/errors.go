package ledger

import "errors"

// Validation and lookup errors returned by book operations. Every operation
// validates its input in full before touching any collection, so a returned
// error always means no state was mutated.
var (
	ErrInvalidAmount          = errors.New("ledger: amount must be a positive number")
	ErrInvalidType            = errors.New("ledger: unknown transaction type")
	ErrNoTarget               = errors.New("ledger: transaction must target an account or a customer")
	ErrAccountNotFound        = errors.New("ledger: account not found")
	ErrCustomerNotFound       = errors.New("ledger: customer not found")
	ErrTransactionNotFound    = errors.New("ledger: transaction not found")
	ErrContractNotFound       = errors.New("ledger: contract not found")
	ErrPurchaseNotFound       = errors.New("ledger: purchase not found")
	ErrItemNotFound           = errors.New("ledger: inventory item not found")
	ErrEmployeeNotFound       = errors.New("ledger: employee not found")
	ErrBillNotFound           = errors.New("ledger: recurring bill not found")
	ErrBillInactive           = errors.New("ledger: recurring bill is inactive")
	ErrUnknownInstallment     = errors.New("ledger: unknown installment key")
	ErrInstallmentAlreadyPaid = errors.New("ledger: installment already collected")
	ErrDuplicateName          = errors.New("ledger: name already in use")
	ErrEmptyName              = errors.New("ledger: name must not be empty")
)
