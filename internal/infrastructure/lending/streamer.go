package lending

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"github.com/lend-network/lend-daemon/internal/core/domain"
	"github.com/lend-network/lend-daemon/internal/core/ports"
)

const eventQueueMaxSize = 100

type loanFrame struct {
	Type      string      `json:"type"`
	Loans     []loanModel `json:"loans,omitempty"`
	Level     string      `json:"level,omitempty"`
	Message   string      `json:"message,omitempty"`
	Timestamp int64       `json:"timestamp,omitempty"`
}

type loanModel struct {
	ID       string `json:"id"`
	Borrower string `json:"borrower"`
	Status   string `json:"status"`
	Terms    struct {
		PrincipalWei string `json:"principal_wei"`
		RateBps      int    `json:"rate_bps"`
		TermDays     int    `json:"term_days"`
	} `json:"terms"`
}

type streamer struct {
	feedURL string
	token   string
}

// NewLoanStreamer returns the websocket client to the lending service loan
// feed as a ports.LoanStreamer interface.
func NewLoanStreamer(apiURL, token string) (ports.LoanStreamer, error) {
	if len(apiURL) <= 0 {
		return nil, ErrNullAPIURL
	}

	feedURL := strings.Replace(apiURL, "http", "ws", 1) + "/v1/loans/subscribe"
	return &streamer{feedURL: feedURL, token: token}, nil
}

func (s *streamer) Stream(
	ctx context.Context,
) (<-chan ports.LoanEvent, <-chan error, error) {
	header := http.Header{}
	if len(s.token) > 0 {
		header.Set("Authorization", "Bearer "+s.token)
	}

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, s.feedURL, header)
	if err != nil {
		return nil, nil, err
	}

	eventChan := make(chan ports.LoanEvent, eventQueueMaxSize)
	errChan := make(chan error, 1)

	go func() {
		<-ctx.Done()
		conn.Close()
	}()

	go func() {
		defer close(eventChan)
		defer close(errChan)

		for {
			var frame loanFrame
			if err := conn.ReadJSON(&frame); err != nil {
				if ctx.Err() == nil {
					errChan <- err
				}
				return
			}

			event, ok := frame.toEvent()
			if !ok {
				log.Debugf("loan feed: skipping frame of type %q", frame.Type)
				continue
			}
			select {
			case eventChan <- event:
			case <-ctx.Done():
				return
			}
		}
	}()

	return eventChan, errChan, nil
}

func (f loanFrame) toEvent() (ports.LoanEvent, bool) {
	switch f.Type {
	case "loans":
		loans := make([]domain.LoanRecord, 0, len(f.Loans))
		for _, l := range f.Loans {
			loans = append(loans, l.toRecord())
		}
		return ports.LoansEvent{Loans: loans}, true
	case "log":
		return ports.LogEvent{Entry: domain.LogEntry{
			Timestamp: time.Unix(f.Timestamp, 0),
			Level:     f.Level,
			Message:   f.Message,
		}}, true
	default:
		return nil, false
	}
}

func (l loanModel) toRecord() domain.LoanRecord {
	principal, err := decimalFromString(l.Terms.PrincipalWei)
	if err != nil {
		log.WithError(err).Warnf("loan feed: bad principal for loan %s", l.ID)
	}

	return domain.LoanRecord{
		ID:       l.ID,
		Borrower: l.Borrower,
		Status:   domain.LoanStatus(l.Status),
		Terms: domain.Attestation{
			ID:           l.ID,
			PrincipalWei: principal,
			RateBps:      l.Terms.RateBps,
			TermDays:     l.Terms.TermDays,
		},
	}
}
