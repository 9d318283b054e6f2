package confirmer

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"go.uber.org/ratelimit"

	"github.com/lend-network/lend-daemon/pkg/explorer"
)

const (
	// DefaultTimeout is how long a confirmation wait lasts before giving up.
	// Chain inclusion latency is unbounded by nature, callers must not hang
	// forever in automated contexts.
	DefaultTimeout = 5 * time.Minute
	// DefaultPollInterval is the pause between two inclusion queries.
	DefaultPollInterval = 5 * time.Second
)

// Receipt describes the mined block that included the awaited transaction.
type Receipt struct {
	TxID        string
	BlockHash   string
	BlockHeight int
}

// Service waits for submitted transactions to be included in the chain.
type Service interface {
	// WaitForConfirmation blocks until the tx identified by txid is included
	// in a mined block, the timeout expires or the context is canceled.
	WaitForConfirmation(ctx context.Context, txid string) (*Receipt, error)
}

type confirmer struct {
	explorerSvc explorer.Service
	timeout     time.Duration
	rateLimiter ratelimit.Limiter
}

// Opts defines the parameters needed for creating a confirmer service with
// NewService method.
type Opts struct {
	ExplorerSvc  explorer.Service
	PollInterval time.Duration
	Timeout      time.Duration
}

func (o Opts) validate() error {
	if o.ExplorerSvc == nil {
		return ErrNullExplorer
	}
	return nil
}

// NewService returns a confirmer paced at one chain query per poll interval.
func NewService(opts Opts) (Service, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if opts.PollInterval <= 0 {
		opts.PollInterval = DefaultPollInterval
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}

	perMinute := int(time.Minute / opts.PollInterval)
	if perMinute < 1 {
		perMinute = 1
	}

	return &confirmer{
		explorerSvc: opts.ExplorerSvc,
		timeout:     opts.Timeout,
		rateLimiter: ratelimit.New(perMinute, ratelimit.Per(time.Minute)),
	}, nil
}

func (c *confirmer) WaitForConfirmation(
	ctx context.Context, txid string,
) (*Receipt, error) {
	deadline := time.Now().Add(c.timeout)

	// The rate limiter is the only pacing of the loop: every iteration blocks
	// in Take until its slot comes up.
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		c.rateLimiter.Take()

		status, err := c.explorerSvc.GetTransactionStatus(txid)
		if err != nil {
			// A single failing query does not abort the wait, the chain may
			// still include the tx while the explorer recovers.
			log.WithError(err).Debugf("confirmer: query for tx %s failed", txid)
		} else if status.Confirmed() {
			return &Receipt{
				TxID:        txid,
				BlockHash:   status.BlockHash(),
				BlockHeight: status.BlockHeight(),
			}, nil
		}

		if time.Now().After(deadline) {
			return nil, fmt.Errorf("%w: tx %s", ErrConfirmationTimeout, txid)
		}
	}
}
