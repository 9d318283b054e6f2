package domain

import "context"

// IdentityRepository gives access to the single stored borrower identity.
type IdentityRepository interface {
	// Exists returns whether an identity has been stored.
	Exists(ctx context.Context) (bool, error)
	// Get returns the stored identity, failing with ErrIdentityNotFound if
	// none has been stored yet.
	Get(ctx context.Context) (*Identity, error)
	// Save persists the identity, replacing any previously stored one.
	Save(ctx context.Context, identity *Identity) error
}
