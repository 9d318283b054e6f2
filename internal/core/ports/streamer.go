package ports

import (
	"context"

	"github.com/lend-network/lend-daemon/internal/core/domain"
)

// LoanEventType distinguishes the events pushed by the loan feed.
type LoanEventType int

const (
	// LoansUpdated carries a wholesale replacement of the outstanding loans.
	LoansUpdated LoanEventType = iota
	// LogAppended carries a single activity log line.
	LogAppended
)

// LoanEvent is emitted through a channel while the feed is observed.
type LoanEvent interface {
	Type() LoanEventType
}

// LoansEvent is the LoansUpdated payload.
type LoansEvent struct {
	Loans []domain.LoanRecord
}

// Type implements the LoanEvent interface.
func (e LoansEvent) Type() LoanEventType { return LoansUpdated }

// LogEvent is the LogAppended payload.
type LogEvent struct {
	Entry domain.LogEntry
}

// Type implements the LoanEvent interface.
func (e LogEvent) Type() LoanEventType { return LogAppended }

// LoanStreamer delivers loan and log events from the lending service feed.
type LoanStreamer interface {
	// Stream opens the feed and returns the event channel. The channel is
	// closed when the context is canceled or the feed breaks, in the latter
	// case the returned error channel carries the cause.
	Stream(ctx context.Context) (<-chan LoanEvent, <-chan error, error)
}
