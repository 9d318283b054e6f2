package lending

import "errors"

var (
	// ErrNullAPIURL ...
	ErrNullAPIURL = errors.New("lending service url must not be null")
	// ErrMissingStipendTxID ...
	ErrMissingStipendTxID = errors.New("stipend response is missing the tx hash")
)
