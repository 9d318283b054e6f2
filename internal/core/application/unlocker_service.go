package application

import (
	"context"
	"errors"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/lend-network/lend-daemon/internal/core/domain"
	"github.com/lend-network/lend-daemon/internal/core/ports"
	"github.com/lend-network/lend-daemon/pkg/wallet"
)

const (
	choiceUnlock  = "unlock with passphrase"
	choiceRecover = "recover with recovery phrase"
)

// UnlockerService turns raw user secrets into an unlocked signing identity,
// retrying on bad input instead of aborting the process.
type UnlockerService interface {
	// AcquireIdentity runs the whole credential session flow: it generates a
	// brand new identity when none is stored, otherwise it unlocks or
	// recovers the stored one.
	AcquireIdentity(ctx context.Context) (*domain.SigningIdentity, error)
}

type unlockerService struct {
	repoManager domain.IdentityRepository
	prompter    ports.SecretPrompter
	// maxAttempts bounds every retry loop when strictly positive. The
	// default of 0 keeps looping, a deliberate no-lockout policy.
	maxAttempts int
}

// NewUnlockerService returns an UnlockerService using the given repository
// for persistence and prompter for terminal interaction.
func NewUnlockerService(
	repoManager domain.IdentityRepository,
	prompter ports.SecretPrompter,
	maxAttempts int,
) UnlockerService {
	return &unlockerService{
		repoManager: repoManager,
		prompter:    prompter,
		maxAttempts: maxAttempts,
	}
}

func (u *unlockerService) AcquireIdentity(
	ctx context.Context,
) (*domain.SigningIdentity, error) {
	exists, err := u.repoManager.Exists(ctx)
	if err != nil {
		return nil, err
	}

	if !exists {
		return u.generateIdentity(ctx)
	}

	identity, err := u.repoManager.Get(ctx)
	if err != nil {
		return nil, err
	}

	choice, err := u.prompter.Choose(
		"an identity is already stored",
		[]string{choiceUnlock, choiceRecover},
	)
	if err != nil {
		return nil, err
	}

	if choice == 1 {
		return u.recoverIdentity(ctx)
	}
	return u.unlockIdentity(identity)
}

func (u *unlockerService) generateIdentity(
	ctx context.Context,
) (*domain.SigningIdentity, error) {
	secret, err := u.promptNewSecret()
	if err != nil {
		return nil, err
	}

	w, err := wallet.NewWallet(wallet.NewWalletOpts{})
	if err != nil {
		return nil, err
	}
	mnemonic, err := w.SigningMnemonic()
	if err != nil {
		return nil, err
	}

	identity, err := domain.NewIdentity(mnemonic, secret)
	if err != nil {
		return nil, err
	}
	if err := u.repoManager.Save(ctx, identity); err != nil {
		return nil, err
	}

	// The recovery phrase is surfaced exactly once and cannot be shown again.
	u.prompter.Show(
		"Write down your recovery phrase, it will not be displayed again:\n\n" +
			strings.Join(mnemonic, " "),
	)
	u.prompter.Show("Your address is " + identity.Address)

	return identity.Unlock(secret)
}

func (u *unlockerService) unlockIdentity(
	identity *domain.Identity,
) (*domain.SigningIdentity, error) {
	for attempts := 0; ; attempts++ {
		if u.maxAttempts > 0 && attempts >= u.maxAttempts {
			return nil, ErrTooManyAttempts
		}

		secret, err := u.prompter.Secret("passphrase")
		if err != nil {
			return nil, err
		}

		signingIdentity, err := identity.Unlock(secret)
		if err != nil {
			if errors.Is(err, domain.ErrInvalidPassphrase) {
				log.Info("invalid passphrase, try again")
				u.prompter.Show("The passphrase is not valid, try again.")
				continue
			}
			return nil, err
		}
		return signingIdentity, nil
	}
}

func (u *unlockerService) recoverIdentity(
	ctx context.Context,
) (*domain.SigningIdentity, error) {
	var phrase []string
	for attempts := 0; ; attempts++ {
		if u.maxAttempts > 0 && attempts >= u.maxAttempts {
			return nil, ErrTooManyAttempts
		}

		candidate, err := u.prompter.RecoveryPhrase()
		if err != nil {
			return nil, err
		}
		if !domain.IsValidRecoveryPhrase(candidate) {
			log.Info("invalid recovery phrase, try again")
			u.prompter.Show("The recovery phrase is not valid, try again.")
			continue
		}
		phrase = candidate
		break
	}

	// Recovery always rotates the secret: force the entry of a brand new one
	// before re-persisting the identity.
	secret, err := u.promptNewSecret()
	if err != nil {
		return nil, err
	}

	identity, err := domain.RecoverIdentity(phrase, secret)
	if err != nil {
		return nil, err
	}
	if err := u.repoManager.Save(ctx, identity); err != nil {
		return nil, err
	}
	u.prompter.Show("Identity recovered, address " + identity.Address)

	return identity.Unlock(secret)
}

func (u *unlockerService) promptNewSecret() (string, error) {
	for attempts := 0; ; attempts++ {
		if u.maxAttempts > 0 && attempts >= u.maxAttempts {
			return "", ErrTooManyAttempts
		}

		secret, err := u.prompter.Secret("new passphrase")
		if err != nil {
			return "", err
		}
		confirmation, err := u.prompter.Secret("confirm passphrase")
		if err != nil {
			return "", err
		}

		if secret != confirmation {
			log.Info(ErrSecretMismatch)
			u.prompter.Show("The two entries do not match, try again.")
			continue
		}
		if len(secret) <= 0 {
			u.prompter.Show("The passphrase must not be empty, try again.")
			continue
		}
		return secret, nil
	}
}
