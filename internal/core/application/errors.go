package application

import "errors"

var (
	// ErrSecretMismatch ...
	ErrSecretMismatch = errors.New("the two secret entries do not match")
	// ErrTooManyAttempts is returned only when a maximum number of secret
	// attempts has been configured and got exhausted.
	ErrTooManyAttempts = errors.New("too many failed secret attempts")
	// ErrNullIdentity ...
	ErrNullIdentity = errors.New("a signing identity is required")
)
