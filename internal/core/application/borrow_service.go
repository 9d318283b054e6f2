package application

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"github.com/lend-network/lend-daemon/internal/core/domain"
	"github.com/lend-network/lend-daemon/internal/core/ports"
	"github.com/lend-network/lend-daemon/pkg/confirmer"
	"github.com/lend-network/lend-daemon/pkg/explorer"
)

// BorrowState is the current step of the borrow workflow.
type BorrowState string

const (
	StateInit                  BorrowState = "init"
	StateRequestingAttestation BorrowState = "requesting_attestation"
	StateAuthFailed            BorrowState = "auth_failed"
	StateBalanceCheck          BorrowState = "balance_check"
	StateStipendRequested      BorrowState = "stipend_requested"
	StateAwaitingConfirmation  BorrowState = "awaiting_confirmation"
	StateDone                  BorrowState = "done"
	StateAborted               BorrowState = "aborted"
)

// BorrowResult reports where a borrow run ended and what it produced along
// the way.
type BorrowResult struct {
	State       BorrowState
	Attestation *domain.Attestation
	Stipend     *domain.StipendTransaction
}

// BorrowService drives a single borrow request end to end.
type BorrowService interface {
	// Borrow runs the workflow for the given identity and request. A nil
	// error with State == StateAuthFailed means the run stopped because the
	// user must re-authenticate out of band; any returned error is fatal for
	// this run.
	Borrow(
		ctx context.Context,
		identity *domain.SigningIdentity,
		request domain.LoanRequest,
		progress ports.ProgressSink,
	) (*BorrowResult, error)
}

type borrowService struct {
	lendingSvc    ports.LendingService
	explorerSvc   explorer.Service
	confirmerSvc  confirmer.Service
	minBalanceWei decimal.Decimal
	openURL       func(url string)
}

// BorrowServiceOpts defines the parameters needed for creating a borrow
// service with NewBorrowService method.
type BorrowServiceOpts struct {
	LendingSvc    ports.LendingService
	ExplorerSvc   explorer.Service
	ConfirmerSvc  confirmer.Service
	MinBalanceWei decimal.Decimal
	// OpenURL is the host environment's default handler used to open the
	// authentication endpoint. Defaults to the OS browser opener.
	OpenURL func(url string)
}

// NewBorrowService returns a BorrowService orchestrating the given
// collaborators.
func NewBorrowService(opts BorrowServiceOpts) BorrowService {
	openURL := opts.OpenURL
	if openURL == nil {
		openURL = openBrowser
	}
	return &borrowService{
		lendingSvc:    opts.LendingSvc,
		explorerSvc:   opts.ExplorerSvc,
		confirmerSvc:  opts.ConfirmerSvc,
		minBalanceWei: opts.MinBalanceWei,
		openURL:       openURL,
	}
}

func (b *borrowService) Borrow(
	ctx context.Context,
	identity *domain.SigningIdentity,
	request domain.LoanRequest,
	progress ports.ProgressSink,
) (*BorrowResult, error) {
	if identity == nil {
		return &BorrowResult{State: StateAborted}, ErrNullIdentity
	}
	if progress == nil {
		progress = ports.StageFunc(func(string) {})
	}

	progress.Stage("Requesting attestation…")
	attestation, err := b.lendingSvc.RequestAttestation(
		ctx, identity.Address, request.AmountWei,
	)
	if err != nil {
		if errors.Is(err, ports.ErrNotAuthenticated) {
			// Authentication happens out of band: point the user at the
			// endpoint and end this run without raising.
			log.WithError(err).Info("re-authentication required")
			progress.Stage("Authentication required, opening browser…")
			go b.openURL(b.lendingSvc.AuthEndpointURL())
			return &BorrowResult{State: StateAuthFailed}, nil
		}
		return &BorrowResult{State: StateAborted}, err
	}

	progress.Stage("Checking on-chain balance…")
	balance, err := b.explorerSvc.GetBalance(identity.Address)
	if err != nil {
		return &BorrowResult{State: StateAborted, Attestation: attestation}, err
	}

	if balance.GreaterThanOrEqual(b.minBalanceWei) {
		// Funds are already sufficient to submit the loan tx, no stipend
		// needed.
		return &BorrowResult{State: StateDone, Attestation: attestation}, nil
	}

	progress.Stage("Requesting deployment stipend…")
	txid, err := b.lendingSvc.RequestDeploymentStipend(ctx, identity.Address)
	if err != nil {
		return &BorrowResult{State: StateAborted, Attestation: attestation}, err
	}
	stipend := domain.NewStipendTransaction(txid)

	progress.Stage("Awaiting stipend confirmation…")
	if _, err := b.confirmerSvc.WaitForConfirmation(ctx, txid); err != nil {
		// A stipend confirmation failure does not unwind the borrow attempt:
		// report it and complete the run anyway.
		log.WithError(err).Warnf(
			"stipend tx %s not confirmed, continuing anyway", txid,
		)
		stipend.Fail()
		return &BorrowResult{
			State: StateDone, Attestation: attestation, Stipend: stipend,
		}, nil
	}
	stipend.Confirm()

	return &BorrowResult{
		State: StateDone, Attestation: attestation, Stipend: stipend,
	}, nil
}
