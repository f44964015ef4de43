package valueobject

import "fmt"

// ---------------------------------------------------------------------------
// LoanStatus – immutable value object
// ---------------------------------------------------------------------------

// LoanStatus represents the lifecycle stage of a loan.
type LoanStatus struct {
	value string
}

const (
	loanStatusPending  = "PENDING"
	loanStatusApproved = "APPROVED"
	loanStatusRejected = "REJECTED"
	loanStatusActive   = "ACTIVE"
	loanStatusClosed   = "CLOSED"
)

var (
	LoanStatusPending  = LoanStatus{value: loanStatusPending}
	LoanStatusApproved = LoanStatus{value: loanStatusApproved}
	LoanStatusRejected = LoanStatus{value: loanStatusRejected}
	LoanStatusActive   = LoanStatus{value: loanStatusActive}
	LoanStatusClosed   = LoanStatus{value: loanStatusClosed}
)

var validLoanStatuses = map[string]LoanStatus{
	loanStatusPending:  LoanStatusPending,
	loanStatusApproved: LoanStatusApproved,
	loanStatusRejected: LoanStatusRejected,
	loanStatusActive:   LoanStatusActive,
	loanStatusClosed:   LoanStatusClosed,
}

// NewLoanStatus creates a LoanStatus from a raw string.
func NewLoanStatus(s string) (LoanStatus, error) {
	v, ok := validLoanStatuses[s]
	if !ok {
		return LoanStatus{}, fmt.Errorf("%w: invalid loan status %q", ErrInvalidParameter, s)
	}
	return v, nil
}

// String returns the string representation of the status.
func (s LoanStatus) String() string { return s.value }

// IsZero returns true if the status has not been initialised.
func (s LoanStatus) IsZero() bool { return s.value == "" }

// Equal returns true when both statuses carry the same value.
func (s LoanStatus) Equal(other LoanStatus) bool { return s.value == other.value }

// IsTerminal reports whether no further transition leaves this status.
func (s LoanStatus) IsTerminal() bool {
	return s.value == loanStatusRejected || s.value == loanStatusClosed
}
