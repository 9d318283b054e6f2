package wallet

import "errors"

var (
	// ErrInvalidEntropySize ...
	ErrInvalidEntropySize = errors.New(
		"entropy size must be a multiple of 32 in the range [128, 256]",
	)
	// ErrNullSigningMnemonic ...
	ErrNullSigningMnemonic = errors.New("signing mnemonic must not be null")
	// ErrInvalidSigningMnemonic ...
	ErrInvalidSigningMnemonic = errors.New("signing mnemonic is invalid")
	// ErrNullPlainText ...
	ErrNullPlainText = errors.New("plain text must not be null")
	// ErrNullCypherText ...
	ErrNullCypherText = errors.New("cypher text must not be null")
	// ErrInvalidCypherText ...
	ErrInvalidCypherText = errors.New("cypher text is not in base64 format")
	// ErrNullPassphrase ...
	ErrNullPassphrase = errors.New("passphrase must not be null")
	// ErrInvalidPassphrase ...
	ErrInvalidPassphrase = errors.New("passphrase is not valid")
)
