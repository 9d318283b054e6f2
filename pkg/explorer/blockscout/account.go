package blockscout

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/lend-network/lend-daemon/pkg/explorer"
	"github.com/lend-network/lend-daemon/pkg/httputil"
)

func (b *blockscout) GetBalance(address string) (decimal.Decimal, error) {
	url := fmt.Sprintf("%s/address/%s/balance", b.apiURL, address)
	status, resp, err := httputil.NewHTTPRequest("GET", url, "", nil)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s", explorer.ErrChainQuery, err)
	}
	if status != http.StatusOK {
		return decimal.Zero, fmt.Errorf("%w: %s", explorer.ErrChainQuery, resp)
	}

	var parsed struct {
		Balance string `json:"balance"`
	}
	if err := json.Unmarshal([]byte(resp), &parsed); err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s", explorer.ErrChainQuery, err)
	}

	balance, err := decimal.NewFromString(parsed.Balance)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s", explorer.ErrChainQuery, err)
	}
	return balance, nil
}
