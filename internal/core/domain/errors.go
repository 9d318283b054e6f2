package domain

import "errors"

var (
	// ErrNullMnemonicOrPassphrase ...
	ErrNullMnemonicOrPassphrase = errors.New(
		"mnemonic and passphrase must not be null",
	)
	// ErrInvalidPassphrase ...
	ErrInvalidPassphrase = errors.New("passphrase is not valid")
	// ErrInvalidRecoveryPhrase ...
	ErrInvalidRecoveryPhrase = errors.New("recovery phrase is not valid")
	// ErrIdentityNotFound ...
	ErrIdentityNotFound = errors.New("no identity has been stored")
	// ErrIdentityAlreadyExists ...
	ErrIdentityAlreadyExists = errors.New("an identity is already stored")
	// ErrStipendNotPending ...
	ErrStipendNotPending = errors.New(
		"stipend tx must be pending to reach a terminal status",
	)
)
