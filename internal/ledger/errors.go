package ledger

import "errors"

// Domain errors. Every validation failure is one of these; the
// presenter decides whether to surface it or stay silent.
var (
	ErrNoSession         = errors.New("no account logged in")
	ErrBadCredentials    = errors.New("username or PIN incorrect")
	ErrBadAmount         = errors.New("amount must be > 0")
	ErrUnknownRecipient  = errors.New("recipient not found")
	ErrSelfTransfer      = errors.New("cannot transfer to own account")
	ErrInsufficientFunds = errors.New("insufficient balance")
	ErrLoanIneligible    = errors.New("no deposit covers 10% of the requested loan")
	ErrDuplicateUsername = errors.New("duplicate username in account set")
)
