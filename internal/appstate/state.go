package appstate

import (
	"github.com/lend-network/lend-daemon/internal/core/domain"
)

// AppState is the single authoritative state of an investor session. It is
// an immutable snapshot: every action application produces a new value,
// subscribers never observe a partially applied state.
type AppState struct {
	Loans        []domain.LoanRecord
	VisibleTerms *domain.LoanRecord
	Logs         []domain.LogEntry
}

// Action is a named state transition applied through the store.
type Action interface {
	isAction()
}

// SelectLoan sets VisibleTerms to the loan at Index. Out of range indexes
// leave the state unchanged.
type SelectLoan struct {
	Index int
}

// LoansUpdated replaces the loan sequence wholesale, preserving the current
// selection only if the selected loan id still exists.
type LoansUpdated struct {
	Loans []domain.LoanRecord
}

// LogAppended appends an entry to the bounded log backlog.
type LogAppended struct {
	Entry domain.LogEntry
}

func (SelectLoan) isAction()   {}
func (LoansUpdated) isAction() {}
func (LogAppended) isAction()  {}

// Reduce applies the action to the state and returns the resulting state.
// Pure: same state and action always yield the same result, no hidden I/O.
func Reduce(state AppState, action Action, maxLogs int) AppState {
	switch a := action.(type) {
	case SelectLoan:
		if a.Index < 0 || a.Index >= len(state.Loans) {
			return state
		}
		selected := state.Loans[a.Index]
		state.VisibleTerms = &selected
		return state

	case LoansUpdated:
		loans := make([]domain.LoanRecord, len(a.Loans))
		copy(loans, a.Loans)
		state.Loans = loans

		if state.VisibleTerms != nil {
			state.VisibleTerms = findLoan(loans, state.VisibleTerms.ID)
		}
		return state

	case LogAppended:
		logs := make([]domain.LogEntry, 0, len(state.Logs)+1)
		logs = append(logs, state.Logs...)
		logs = append(logs, a.Entry)
		if maxLogs > 0 && len(logs) > maxLogs {
			logs = logs[len(logs)-maxLogs:]
		}
		state.Logs = logs
		return state

	default:
		return state
	}
}

func findLoan(loans []domain.LoanRecord, id string) *domain.LoanRecord {
	for i := range loans {
		if loans[i].ID == id {
			loan := loans[i]
			return &loan
		}
	}
	return nil
}
