package dashboard

import (
	"context"
	"fmt"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/lend-network/lend-daemon/internal/appstate"
	"github.com/lend-network/lend-daemon/internal/core/domain"
	"github.com/lend-network/lend-daemon/internal/daemon"
	"github.com/lend-network/lend-daemon/pkg/denom"
)

const stateQueueMaxSize = 64

// Dashboard renders the investor view from the state store and forwards the
// user's loan selection back as store actions.
type Dashboard struct {
	store      *appstate.Store
	loanDaemon *daemon.Daemon
	screen     Screen
	grace      time.Duration

	releaseOnce sync.Once
}

// Opts defines the parameters needed for creating a dashboard with New
// method.
type Opts struct {
	Store  *appstate.Store
	Daemon *daemon.Daemon
	Screen Screen
	// Grace is the delay before returning, giving the terminal time to
	// flush.
	Grace time.Duration
}

// New returns a Dashboard ready to Run.
func New(opts Opts) *Dashboard {
	return &Dashboard{
		store:      opts.Store,
		loanDaemon: opts.Daemon,
		screen:     opts.Screen,
		grace:      opts.Grace,
	}
}

// Run starts the daemon and the render loop, blocking until the user quits,
// the daemon fails or the context is canceled. The returned code is the
// process exit status. Teardown order is fixed on every path: stop the
// daemon first, then release the screen, exactly once.
func (d *Dashboard) Run(ctx context.Context) int {
	daemonErr := make(chan error, 1)
	if err := d.loanDaemon.Start(d.store, func(err error) {
		select {
		case daemonErr <- err:
		default:
		}
	}); err != nil {
		log.WithError(err).Error("could not start loan daemon")
		d.teardown()
		return 1
	}

	states := make(chan appstate.AppState, stateQueueMaxSize)
	d.store.Subscribe(func(state appstate.AppState) {
		// Rendering lags behind under bursts: evict stale snapshots until the
		// newest one fits, only the latest matters on screen.
		for {
			select {
			case states <- state:
				return
			default:
			}
			select {
			case <-states:
			default:
			}
		}
	})

	d.Render(d.store.State())

	for {
		select {
		case state := <-states:
			d.Render(state)

		case event := <-d.screen.Events():
			switch e := event.(type) {
			case SelectRowEvent:
				d.store.Dispatch(appstate.SelectLoan{Index: e.Index})
			case QuitEvent:
				d.teardown()
				time.Sleep(d.grace)
				return 0
			}

		case err := <-daemonErr:
			d.teardown()
			log.WithError(err).Error("investor daemon failed")
			time.Sleep(d.grace)
			return 1

		case <-ctx.Done():
			d.teardown()
			time.Sleep(d.grace)
			return 0
		}
	}
}

// Render draws the three panels from the snapshot. Idempotent: rendering the
// same state twice produces the same frame and no other observable effect.
func (d *Dashboard) Render(state appstate.AppState) {
	d.screen.DrawPanel(PanelLoans, "Outstanding loans", loanLines(state))
	d.screen.DrawPanel(PanelTerms, "Terms", termLines(state))
	d.screen.DrawPanel(PanelLogs, "Logs", logLines(state))
	d.screen.Flush()
}

func (d *Dashboard) teardown() {
	d.loanDaemon.Stop()
	d.releaseOnce.Do(d.screen.Release)
}

func loanLines(state appstate.AppState) []string {
	if len(state.Loans) == 0 {
		return []string{"no outstanding loans"}
	}

	lines := make([]string, 0, len(state.Loans))
	for i, loan := range state.Loans {
		marker := " "
		if state.VisibleTerms != nil && state.VisibleTerms.ID == loan.ID {
			marker = ">"
		}
		lines = append(lines, fmt.Sprintf(
			"%s %2d. %-12s %-9s %s ether",
			marker, i+1, shorten(loan.ID), loan.Status,
			denom.FromWei(loan.Terms.PrincipalWei, denom.Ether),
		))
	}
	return lines
}

func termLines(state appstate.AppState) []string {
	if state.VisibleTerms == nil {
		return []string{"select a loan to view its terms"}
	}

	loan := state.VisibleTerms
	return []string{
		fmt.Sprintf("loan      %s", loan.ID),
		fmt.Sprintf("borrower  %s", loan.Borrower),
		fmt.Sprintf("status    %s", loan.Status),
		fmt.Sprintf("principal %s ether",
			denom.FromWei(loan.Terms.PrincipalWei, denom.Ether)),
		fmt.Sprintf("rate      %.2f%%", float64(loan.Terms.RateBps)/100),
		fmt.Sprintf("term      %d days", loan.Terms.TermDays),
	}
}

func logLines(state appstate.AppState) []string {
	if len(state.Logs) == 0 {
		return []string{"-"}
	}

	lines := make([]string, 0, len(state.Logs))
	for _, entry := range state.Logs {
		lines = append(lines, formatLogEntry(entry))
	}
	return lines
}

func formatLogEntry(entry domain.LogEntry) string {
	return fmt.Sprintf(
		"%s [%s] %s",
		entry.Timestamp.Format("15:04:05"), entry.Level, entry.Message,
	)
}

func shorten(id string) string {
	if len(id) <= 12 {
		return id
	}
	return id[:12]
}
