package event

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DomainEvent is implemented by every event the loan engine emits.
type DomainEvent interface {
	EventID() string
	EventType() string
	AggregateID() string
	AggregateType() string
	OccurredAt() time.Time
}

// Event type identifiers, also used as Kafka header values.
const (
	TypeLoanApplicationCreated = "lending.loan.application_created"
	TypeLoanApproved           = "lending.loan.approved"
	TypeLoanRejected           = "lending.loan.rejected"
	TypeRepaymentRecorded      = "lending.repayment.recorded"
	TypeLoanClosed             = "lending.loan.closed"
)

// BaseEvent provides the common DomainEvent fields.
type BaseEvent struct {
	ID            string    `json:"event_id"`
	Type          string    `json:"event_type"`
	Aggregate     string    `json:"aggregate_id"`
	AggregateKind string    `json:"aggregate_type"`
	At            time.Time `json:"occurred_at"`
}

// NewBaseEvent creates a BaseEvent with a generated UUID and the given
// occurrence time.
func NewBaseEvent(eventType, aggregateID, aggregateType string, at time.Time) BaseEvent {
	return BaseEvent{
		ID:            uuid.New().String(),
		Type:          eventType,
		Aggregate:     aggregateID,
		AggregateKind: aggregateType,
		At:            at,
	}
}

func (e BaseEvent) EventID() string       { return e.ID }
func (e BaseEvent) EventType() string     { return e.Type }
func (e BaseEvent) AggregateID() string   { return e.Aggregate }
func (e BaseEvent) AggregateType() string { return e.AggregateKind }
func (e BaseEvent) OccurredAt() time.Time { return e.At }

// ---------------------------------------------------------------------------
// Loan lifecycle events
// ---------------------------------------------------------------------------

// LoanApplicationCreated is raised when a new loan application enters the
// system in PENDING status.
type LoanApplicationCreated struct {
	BaseEvent
	ClientID           string          `json:"client_id"`
	LoanTypeID         string          `json:"loan_type_id"`
	RequestedPrincipal decimal.Decimal `json:"requested_principal"`
	DurationMonths     int             `json:"duration_months"`
	MonthlyPayment     decimal.Decimal `json:"monthly_payment"`
}

func NewLoanApplicationCreated(loanID, clientID, loanTypeID string, requested, monthlyPayment decimal.Decimal, months int, at time.Time) LoanApplicationCreated {
	return LoanApplicationCreated{
		BaseEvent:          NewBaseEvent(TypeLoanApplicationCreated, loanID, "Loan", at),
		ClientID:           clientID,
		LoanTypeID:         loanTypeID,
		RequestedPrincipal: requested,
		DurationMonths:     months,
		MonthlyPayment:     monthlyPayment,
	}
}

// LoanApproved is raised when a PENDING loan is approved and its schedule
// committed.
type LoanApproved struct {
	BaseEvent
	ApprovedPrincipal decimal.Decimal `json:"approved_principal"`
	FirstDueDate      time.Time       `json:"first_due_date"`
	Installments      int             `json:"installments"`
}

func NewLoanApproved(loanID string, principal decimal.Decimal, firstDue time.Time, installments int, at time.Time) LoanApproved {
	return LoanApproved{
		BaseEvent:         NewBaseEvent(TypeLoanApproved, loanID, "Loan", at),
		ApprovedPrincipal: principal,
		FirstDueDate:      firstDue,
		Installments:      installments,
	}
}

// LoanRejected is raised when a PENDING loan is rejected. Terminal.
type LoanRejected struct {
	BaseEvent
	Reason string `json:"reason"`
}

func NewLoanRejected(loanID, reason string, at time.Time) LoanRejected {
	return LoanRejected{
		BaseEvent: NewBaseEvent(TypeLoanRejected, loanID, "Loan", at),
		Reason:    reason,
	}
}

// RepaymentRecorded is raised for every repayment applied to an installment.
type RepaymentRecorded struct {
	BaseEvent
	RepaymentID     string          `json:"repayment_id"`
	InstallmentID   string          `json:"installment_id"`
	Sequence        int             `json:"sequence"`
	Amount          decimal.Decimal `json:"amount"`
	PenaltyPortion  decimal.Decimal `json:"penalty_portion"`
	InstallmentPaid bool            `json:"installment_paid"`
}

func NewRepaymentRecorded(loanID, repaymentID, installmentID string, sequence int, amount, penaltyPortion decimal.Decimal, installmentPaid bool, at time.Time) RepaymentRecorded {
	return RepaymentRecorded{
		BaseEvent:       NewBaseEvent(TypeRepaymentRecorded, loanID, "Loan", at),
		RepaymentID:     repaymentID,
		InstallmentID:   installmentID,
		Sequence:        sequence,
		Amount:          amount,
		PenaltyPortion:  penaltyPortion,
		InstallmentPaid: installmentPaid,
	}
}

// LoanClosed is raised when the last installment of a loan reaches PAID.
type LoanClosed struct {
	BaseEvent
	TotalPenalties decimal.Decimal `json:"total_penalties"`
}

func NewLoanClosed(loanID string, totalPenalties decimal.Decimal, at time.Time) LoanClosed {
	return LoanClosed{
		BaseEvent:      NewBaseEvent(TypeLoanClosed, loanID, "Loan", at),
		TotalPenalties: totalPenalties,
	}
}
