package blockscout

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/lend-network/lend-daemon/pkg/explorer"
	"github.com/lend-network/lend-daemon/pkg/httputil"
)

type txStatus struct {
	TxConfirmed   bool   `json:"confirmed"`
	TxBlockHash   string `json:"block_hash"`
	TxBlockHeight int    `json:"block_height"`
}

func (s txStatus) Confirmed() bool {
	return s.TxConfirmed
}

func (s txStatus) BlockHash() string {
	return s.TxBlockHash
}

func (s txStatus) BlockHeight() int {
	return s.TxBlockHeight
}

func (b *blockscout) IsTransactionConfirmed(txid string) (bool, error) {
	status, err := b.getTransactionStatus(txid)
	if err != nil {
		return false, err
	}
	return status.Confirmed(), nil
}

func (b *blockscout) GetTransactionStatus(
	txid string,
) (explorer.TransactionStatus, error) {
	return b.getTransactionStatus(txid)
}

func (b *blockscout) getTransactionStatus(txid string) (*txStatus, error) {
	url := fmt.Sprintf("%s/tx/%s/status", b.apiURL, txid)
	status, resp, err := httputil.NewHTTPRequest("GET", url, "", nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", explorer.ErrChainQuery, err)
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("%w: %s", explorer.ErrChainQuery, resp)
	}

	var parsed txStatus
	if err := json.Unmarshal([]byte(resp), &parsed); err != nil {
		return nil, fmt.Errorf("%w: %s", explorer.ErrChainQuery, err)
	}
	return &parsed, nil
}
