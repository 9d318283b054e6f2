package lending

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sony/gobreaker"
	"github.com/thanhpk/randstr"

	"github.com/lend-network/lend-daemon/internal/core/domain"
	"github.com/lend-network/lend-daemon/internal/core/ports"
	"github.com/lend-network/lend-daemon/pkg/circuitbreaker"
	"github.com/lend-network/lend-daemon/pkg/httputil"
)

type service struct {
	apiURL       string
	authEndpoint string
	token        string
	cb           *gobreaker.CircuitBreaker
}

// ServiceOpts defines the parameters needed for creating a lending service
// client with NewService method.
type ServiceOpts struct {
	APIURL          string
	AuthEndpointURL string
	// Token is the bearer credential stored by `lend authenticate`. May be
	// empty, in which case the service will reject requests as
	// unauthenticated.
	Token string
}

func (o ServiceOpts) validate() error {
	if len(o.APIURL) <= 0 {
		return ErrNullAPIURL
	}
	return nil
}

// NewService returns the client to the remote lending service as a
// ports.LendingService interface.
func NewService(opts ServiceOpts) (ports.LendingService, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	return &service{
		apiURL:       opts.APIURL,
		authEndpoint: opts.AuthEndpointURL,
		token:        opts.Token,
		cb:           circuitbreaker.NewCircuitBreaker(),
	}, nil
}

func (s *service) AuthEndpointURL() string {
	return s.authEndpoint
}

func (s *service) RequestAttestation(
	ctx context.Context, address string, amountWei decimal.Decimal,
) (*domain.Attestation, error) {
	payload := map[string]interface{}{
		"address":    address,
		"amount_wei": amountWei.String(),
	}

	resp, err := s.post(ctx, "/v1/attestations", payload)
	if err != nil {
		return nil, err
	}

	var parsed struct {
		ID           string `json:"id"`
		PrincipalWei string `json:"principal_wei"`
		RateBps      int    `json:"rate_bps"`
		TermDays     int    `json:"term_days"`
	}
	if err := json.Unmarshal(resp, &parsed); err != nil {
		return nil, fmt.Errorf("parsing attestation: %w", err)
	}

	principal, err := decimal.NewFromString(parsed.PrincipalWei)
	if err != nil {
		return nil, fmt.Errorf("parsing attestation principal: %w", err)
	}
	if len(parsed.ID) <= 0 {
		parsed.ID = uuid.New().String()
	}

	return &domain.Attestation{
		ID:           parsed.ID,
		PrincipalWei: principal,
		RateBps:      parsed.RateBps,
		TermDays:     parsed.TermDays,
	}, nil
}

func (s *service) RequestDeploymentStipend(
	ctx context.Context, address string,
) (string, error) {
	payload := map[string]interface{}{"address": address}

	resp, err := s.post(ctx, "/v1/stipends", payload)
	if err != nil {
		return "", err
	}

	var parsed struct {
		TxID string `json:"txid"`
	}
	if err := json.Unmarshal(resp, &parsed); err != nil {
		return "", fmt.Errorf("parsing stipend response: %w", err)
	}
	if len(parsed.TxID) <= 0 {
		return "", ErrMissingStipendTxID
	}

	return parsed.TxID, nil
}

func (s *service) post(
	ctx context.Context, path string, payload map[string]interface{},
) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	body, _ := json.Marshal(payload)
	headers := map[string]string{
		"Content-Type": "application/json",
		"X-Request-Id": randstr.Hex(16),
	}
	if len(s.token) > 0 {
		headers["Authorization"] = "Bearer " + s.token
	}

	iResp, err := s.cb.Execute(func() (interface{}, error) {
		status, resp, err := httputil.NewHTTPRequest(
			"POST", s.apiURL+path, string(body), headers,
		)
		if err != nil {
			return nil, err
		}
		if status == http.StatusUnauthorized || status == http.StatusForbidden {
			return nil, fmt.Errorf("%w: %s", ports.ErrNotAuthenticated, resp)
		}
		if status < 200 || status >= 300 {
			return nil, fmt.Errorf("lending service: %s", resp)
		}
		return []byte(resp), nil
	})
	if err != nil {
		return nil, err
	}

	return iResp.([]byte), nil
}
