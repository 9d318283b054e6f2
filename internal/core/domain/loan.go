package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LoanRequest defines the borrower's ask handed to the lending service.
// It is immutable once submitted.
type LoanRequest struct {
	BorrowerAddress string
	AmountWei       decimal.Decimal
	Unit            string
}

// Attestation is the lending service's approval and terms for a loan request.
// It is consumed once by the borrow workflow and not retained.
type Attestation struct {
	ID           string
	PrincipalWei decimal.Decimal
	RateBps      int
	TermDays     int
}

// LoanStatus enumerates the lifecycle of an outstanding loan as reported by
// the lending service.
type LoanStatus string

const (
	LoanStatusPending LoanStatus = "pending"
	LoanStatusActive  LoanStatus = "active"
	LoanStatusRepaid  LoanStatus = "repaid"
	LoanStatusDefault LoanStatus = "defaulted"
)

// LoanRecord is the investor-side view of an outstanding loan.
type LoanRecord struct {
	ID         string
	Borrower   string
	Terms      Attestation
	Status     LoanStatus
	LogEntries []LogEntry
}

// LogEntry is a single line of loan or daemon activity shown in the
// dashboard log panel.
type LogEntry struct {
	Timestamp time.Time
	Level     string
	Message   string
}
