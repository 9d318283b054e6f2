package confirmer

import "errors"

var (
	// ErrConfirmationTimeout ...
	ErrConfirmationTimeout = errors.New("transaction not confirmed before timeout")
	// ErrNullExplorer ...
	ErrNullExplorer = errors.New("explorer service must not be null")
)
