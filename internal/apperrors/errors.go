package apperrors

import (
	"errors"
)

var (
	// Amount is not a number at all (string, nil, complex, collection)
	ErrAmountType = errors.New("amount has invalid type")
	// Amount is a number, but out of the accepted range (non-positive, NaN, infinite)
	ErrAmountRange = errors.New("amount is out of range")

	ErrBalanceInsufficient    = errors.New("insufficient balance")
	ErrNegativeInitialBalance = errors.New("initial balance is negative")
)
