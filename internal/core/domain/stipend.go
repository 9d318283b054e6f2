package domain

// StipendStatus represents the different statuses that a deployment stipend
// transaction can assume.
type StipendStatus string

const (
	// StipendPending is the status of a submitted stipend tx not yet included
	// in a block.
	StipendPending StipendStatus = "pending"
	// StipendMined is the status of a stipend tx included in a mined block.
	StipendMined StipendStatus = "mined"
	// StipendFailed is the status of a stipend tx whose confirmation was
	// given up on.
	StipendFailed StipendStatus = "failed"
)

// StipendTransaction tracks a deployment stipend funded by the lending
// service on the borrower's behalf. Only the confirmation wait mutates it.
type StipendTransaction struct {
	TxID   string
	Status StipendStatus
}

// NewStipendTransaction returns a pending stipend for the given tx hash.
func NewStipendTransaction(txid string) *StipendTransaction {
	return &StipendTransaction{TxID: txid, Status: StipendPending}
}

// Confirm marks the stipend tx as mined. The tx must be pending.
func (s *StipendTransaction) Confirm() error {
	if s.Status != StipendPending {
		return ErrStipendNotPending
	}
	s.Status = StipendMined
	return nil
}

// Fail marks the stipend tx as failed. The tx must be pending.
func (s *StipendTransaction) Fail() error {
	if s.Status != StipendPending {
		return ErrStipendNotPending
	}
	s.Status = StipendFailed
	return nil
}

// IsTerminal returns whether the stipend reached a final status.
func (s *StipendTransaction) IsTerminal() bool {
	return s.Status == StipendMined || s.Status == StipendFailed
}
