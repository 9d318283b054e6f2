package denom

import "errors"

var (
	// ErrUnknownUnit ...
	ErrUnknownUnit = errors.New("unit is not part of the recognized set")
	// ErrInvalidAmount ...
	ErrInvalidAmount = errors.New("amount is not a valid decimal number")
	// ErrNonPositiveAmount ...
	ErrNonPositiveAmount = errors.New("amount must be strictly positive")
	// ErrFractionalWei ...
	ErrFractionalWei = errors.New("amount is smaller than one wei")
)
