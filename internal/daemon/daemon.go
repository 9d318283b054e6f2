package daemon

import (
	"context"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/lend-network/lend-daemon/internal/appstate"
	"github.com/lend-network/lend-daemon/internal/core/ports"
)

// Daemon bridges the lending service loan feed into the investor state
// store. It pushes LoansUpdated and LogAppended actions and reports
// unrecoverable feed failures through the error callback.
type Daemon struct {
	streamer ports.LoanStreamer

	mtx      sync.Mutex
	cancel   context.CancelFunc
	done     chan struct{}
	stopOnce *sync.Once
}

// New returns a daemon consuming the given feed.
func New(streamer ports.LoanStreamer) *Daemon {
	return &Daemon{streamer: streamer}
}

// Start opens the feed and begins pushing events into the store. onError is
// invoked at most once, on unrecoverable feed failure.
func (d *Daemon) Start(store *appstate.Store, onError func(error)) error {
	d.mtx.Lock()
	defer d.mtx.Unlock()

	ctx, cancel := context.WithCancel(context.Background())
	events, errs, err := d.streamer.Stream(ctx)
	if err != nil {
		cancel()
		return err
	}

	d.cancel = cancel
	d.done = make(chan struct{})
	d.stopOnce = &sync.Once{}

	go d.run(ctx, store, events, errs, onError)
	return nil
}

// Stop cancels the feed subscription and waits for the event loop to drain.
// Safe to call more than once and from teardown paths.
func (d *Daemon) Stop() {
	d.mtx.Lock()
	cancel, done, once := d.cancel, d.done, d.stopOnce
	d.mtx.Unlock()

	if cancel == nil {
		return
	}
	once.Do(func() {
		cancel()
		<-done
	})
}

func (d *Daemon) run(
	ctx context.Context,
	store *appstate.Store,
	events <-chan ports.LoanEvent,
	errs <-chan error,
	onError func(error),
) {
	defer close(d.done)

	for {
		select {
		case <-ctx.Done():
			return

		case event, more := <-events:
			if !more {
				return
			}
			switch e := event.(type) {
			case ports.LoansEvent:
				store.Dispatch(appstate.LoansUpdated{Loans: e.Loans})
			case ports.LogEvent:
				store.Dispatch(appstate.LogAppended{Entry: e.Entry})
			}

		case err, more := <-errs:
			if !more {
				return
			}
			log.WithError(err).Error("loan feed broke")
			if onError != nil {
				onError(err)
			}
			return
		}
	}
}
