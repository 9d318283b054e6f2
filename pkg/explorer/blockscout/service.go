package blockscout

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/lend-network/lend-daemon/pkg/explorer"
	"github.com/lend-network/lend-daemon/pkg/httputil"
)

type blockscout struct {
	apiURL string
}

// NewService returns a new blockscout service as an explorer.Service interface
func NewService(apiURL string) (explorer.Service, error) {
	service := &blockscout{apiURL}

	if err := service.healthCheck(); err != nil {
		return nil, fmt.Errorf("health check: %w", err)
	}

	return service, nil
}

func (b *blockscout) healthCheck() error {
	url := fmt.Sprintf("%s/blocks/tip/height", b.apiURL)
	status, resp, err := httputil.NewHTTPRequest("GET", url, "", nil)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return fmt.Errorf(resp)
	}
	return nil
}

func (b *blockscout) GetBlockHeight() (int, error) {
	url := fmt.Sprintf("%s/blocks/tip/height", b.apiURL)
	status, resp, err := httputil.NewHTTPRequest("GET", url, "", nil)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", explorer.ErrChainQuery, err)
	}
	if status != http.StatusOK {
		return 0, fmt.Errorf("%w: %s", explorer.ErrChainQuery, resp)
	}

	height, err := strconv.Atoi(resp)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", explorer.ErrChainQuery, err)
	}
	return height, nil
}
