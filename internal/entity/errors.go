package entity

import "errors"

// Domain errors. Handlers map these onto HTTP statuses; anything else is a
// storage failure and surfaces as a 500.
var (
	ErrNotFound          = errors.New("not found")
	ErrForbidden         = errors.New("forbidden")
	ErrInvalidOperation  = errors.New("invalid operation")
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrAlreadySwiped     = errors.New("already swiped")
	ErrInsufficientFunds = errors.New("insufficient funds")
)
