package domain

import "errors"

var (
	// ErrNotFound is returned when a requested entity does not exist or is
	// not visible to the caller.
	ErrNotFound = errors.New("not found")

	// ErrNotAuthenticated is returned when an operation requires a bearer
	// credential and none is present. Callers redirect to login instead of
	// rendering this as an in-page error.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrUnsupportedCurrency is returned for currency codes outside the
	// supported set.
	ErrUnsupportedCurrency = errors.New("unsupported currency")

	// ErrVirtualAccountExists is returned when requesting a virtual account
	// for a currency that already has one.
	ErrVirtualAccountExists = errors.New("virtual account already exists for currency")

	// ErrInvoiceNotPaid guards operations that require a paid invoice,
	// such as FIRA generation.
	ErrInvoiceNotPaid = errors.New("invoice is not paid")

	// ErrNoInvoiceItems rejects invoice creation without line items.
	ErrNoInvoiceItems = errors.New("invoice requires at least one item")

	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)
