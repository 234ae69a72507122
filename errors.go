package bancore

import "errors"

// Domain errors returned by LedgerService operations. They are all
// recoverable: the caller reports them and the store is left untouched.
var (
	// ErrInvalidIdentity means the CPF failed the check-digit validation.
	ErrInvalidIdentity = errors.New("invalid CPF")

	// ErrDuplicateIdentity means an account with that CPF already exists.
	ErrDuplicateIdentity = errors.New("CPF already registered")

	// ErrInvalidCredentials means no account matches the CPF and password pair.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrAccountNotFound means no account is registered under that CPF. It is
	// distinct from ErrInvalidCredentials: operations past authentication take
	// a bare CPF and never judge a password.
	ErrAccountNotFound = errors.New("account not found")

	// ErrRecipientNotFound means the transfer destination CPF has no account.
	ErrRecipientNotFound = errors.New("recipient not found")

	// ErrSelfTransfer means sender and recipient are the same account.
	ErrSelfTransfer = errors.New("transfer to the same account")

	// ErrInsufficientFunds means the balance cannot cover the operation.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrInsufficientHoldings means the position cannot cover the sale.
	ErrInsufficientHoldings = errors.New("insufficient holdings")

	// ErrInvalidAmount means an amount or quantity is not a positive number.
	ErrInvalidAmount = errors.New("amount must be a positive number")

	// ErrUnknownTicker means the instrument is not in the market catalog.
	ErrUnknownTicker = errors.New("unknown ticker")
)

// ErrCorruptStore is returned when the durable account collection exists but
// cannot be decoded. It is surfaced instead of silently starting fresh so
// that a corrupted file is never overwritten by the next save.
var ErrCorruptStore = errors.New("corrupt account store")
