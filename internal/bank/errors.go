// Package bank holds the core account model: the polymorphic Account
// variants, the process-wide AccountRegistry and the authenticated
// transfer operation. It has no transport or storage concerns; the HTTP
// layer and the event stream are built on top of it.
package bank

import "errors"

// Domain errors. Construction and orchestration failures are reported
// through these sentinels; deposit/withdraw remain boolean outcomes.
// The HTTP layer maps each one to a distinct status code.
var (
	// ErrInvalidName rejects construction with an empty name.
	ErrInvalidName = errors.New("invalid name: must be non-empty text")

	// ErrInvalidBalance rejects construction with a non-positive or
	// non-finite initial balance.
	ErrInvalidBalance = errors.New("invalid balance: must be a positive number")

	// ErrInvalidRate rejects a savings interest rate outside (0, 1].
	ErrInvalidRate = errors.New("invalid interest rate: must be in (0, 1]")

	// ErrInvalidFee rejects a negative checking transaction fee.
	ErrInvalidFee = errors.New("invalid transaction fee: must be >= 0")

	// ErrInvalidAccountType rejects an unknown account type selector.
	ErrInvalidAccountType = errors.New("invalid account type")

	// ErrInvalidAmount rejects a non-positive transfer amount.
	ErrInvalidAmount = errors.New("amount must be > 0")

	// ErrInsufficientFunds rejects a transfer the source cannot cover.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrAuthenticationFailed rejects a transfer with a wrong credential.
	ErrAuthenticationFailed = errors.New("authentication failed")

	// ErrAccountNotFound reports a lookup miss.
	ErrAccountNotFound = errors.New("account not found")

	// ErrDuplicateEmail rejects registration of an email already held
	// by a registered account.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrSameAccount rejects a transfer from an account to itself.
	ErrSameAccount = errors.New("source and destination are the same account")
)
