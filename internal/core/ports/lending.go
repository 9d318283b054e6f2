package ports

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/lend-network/lend-daemon/internal/core/domain"
)

// ErrNotAuthenticated is returned by LendingService calls rejected because
// the locally stored credential is missing, expired or revoked. It is the one
// recoverable service failure: the borrower must re-authenticate out of band.
var ErrNotAuthenticated = errors.New("not authenticated with the lending service")

// LendingService is the client-side view of the remote attestation and
// stipend issuing service.
type LendingService interface {
	// RequestAttestation submits a loan request for the given borrower address
	// and amount in wei and returns the service's approval and terms.
	RequestAttestation(
		ctx context.Context, address string, amountWei decimal.Decimal,
	) (*domain.Attestation, error)
	// RequestDeploymentStipend asks the service to fund a deployment stipend
	// tx on the borrower's behalf and returns the tx hash.
	RequestDeploymentStipend(ctx context.Context, address string) (string, error)
	// AuthEndpointURL returns the out-of-band authentication endpoint.
	AuthEndpointURL() string
}
