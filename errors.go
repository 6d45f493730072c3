package expense

import "errors"

var (
	// ErrInsufficientFunds is returned when a debit would exceed the available balance.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrWouldUnderflow is returned when removing or reducing a credit would make the balance negative.
	ErrWouldUnderflow = errors.New("balance would become negative")
	// ErrNotFound is returned for an entry id outside of the ledger.
	ErrNotFound = errors.New("entry not found")
	// ErrInvalidKind is returned for a kind other than credit or debit.
	ErrInvalidKind = errors.New("invalid kind")
	// ErrInvalidAmount is returned for amounts that are not strictly positive.
	ErrInvalidAmount = errors.New("amount must be greater than zero")
	// ErrStorage is returned when the ledger document cannot be read or written.
	ErrStorage = errors.New("ledger storage error")
)
