package dbbadger

import (
	"context"
	"errors"

	"github.com/timshannon/badgerhold/v4"

	"github.com/lend-network/lend-daemon/internal/core/domain"
)

// a single identity row is stored under a fixed key.
const identityKey = "identity"

type identityRepositoryImpl struct {
	db *DbManager
}

// NewIdentityRepositoryImpl returns the badger backed implementation of
// domain.IdentityRepository.
func NewIdentityRepositoryImpl(db *DbManager) domain.IdentityRepository {
	return identityRepositoryImpl{db: db}
}

func (r identityRepositoryImpl) Exists(ctx context.Context) (bool, error) {
	var identity domain.Identity
	err := r.db.Store.Get(identityKey, &identity)
	if err != nil {
		if errors.Is(err, badgerhold.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r identityRepositoryImpl) Get(
	ctx context.Context,
) (*domain.Identity, error) {
	var identity domain.Identity
	err := r.db.Store.Get(identityKey, &identity)
	if err != nil {
		if errors.Is(err, badgerhold.ErrNotFound) {
			return nil, domain.ErrIdentityNotFound
		}
		return nil, err
	}
	return &identity, nil
}

func (r identityRepositoryImpl) Save(
	ctx context.Context, identity *domain.Identity,
) error {
	return r.db.Store.Upsert(identityKey, identity)
}
