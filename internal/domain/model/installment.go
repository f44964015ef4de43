package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/banquecore/lending/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// Installment entity
// ---------------------------------------------------------------------------

// Installment is one scheduled payment period of a loan. It stores its loan's
// identifier rather than a back-pointer; lookups go through the loan store.
// Mutations return a new copy.
type Installment struct {
	id                string
	loanID            string
	sequence          int
	totalAmount       decimal.Decimal
	capital           decimal.Decimal
	interest          decimal.Decimal
	remainingCapital  decimal.Decimal
	dueDate           time.Time
	paymentDate       time.Time
	status            valueobject.InstallmentStatus
	appliedPenalty    decimal.Decimal
	daysLate          int
	penaltyComputedAt time.Time
	paidTotal         decimal.Decimal
}

// NewInstallment commits one schedule entry as an installment of the given
// loan. Identity is assigned by the caller at creation time.
func NewInstallment(id, loanID string, entry ScheduleEntry) Installment {
	return Installment{
		id:               id,
		loanID:           loanID,
		sequence:         entry.Sequence,
		totalAmount:      entry.Total,
		capital:          entry.Capital,
		interest:         entry.Interest,
		remainingCapital: entry.RemainingCapital,
		dueDate:          entry.DueDate,
		status:           valueobject.InstallmentStatusScheduled,
		appliedPenalty:   decimal.Zero,
		paidTotal:        decimal.Zero,
	}
}

// ReconstructInstallment rebuilds an installment from persistence.
func ReconstructInstallment(
	id, loanID string,
	sequence int,
	totalAmount, capital, interest, remainingCapital decimal.Decimal,
	dueDate, paymentDate time.Time,
	status valueobject.InstallmentStatus,
	appliedPenalty decimal.Decimal,
	daysLate int,
	penaltyComputedAt time.Time,
	paidTotal decimal.Decimal,
) Installment {
	return Installment{
		id:                id,
		loanID:            loanID,
		sequence:          sequence,
		totalAmount:       totalAmount,
		capital:           capital,
		interest:          interest,
		remainingCapital:  remainingCapital,
		dueDate:           dueDate,
		paymentDate:       paymentDate,
		status:            status,
		appliedPenalty:    appliedPenalty,
		daysLate:          daysLate,
		penaltyComputedAt: penaltyComputedAt,
		paidTotal:         paidTotal,
	}
}

// ---------------------------------------------------------------------------
// State machine
// ---------------------------------------------------------------------------

// Outstanding returns what remains to be paid on this installment:
// scheduled amount plus any applied penalty, minus cumulative repayments.
func (i Installment) Outstanding() decimal.Decimal {
	return i.totalAmount.Add(i.appliedPenalty).Sub(i.paidTotal)
}

// DaysLate returns how many whole days past the due date asOf falls, never
// negative.
func (i Installment) DaysLate(asOf time.Time) int {
	days := int(truncateToDate(asOf).Sub(truncateToDate(i.dueDate)).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

// MarkOverdueIfPastDue transitions SCHEDULED -> OVERDUE when asOf is past the
// due date and the installment is not settled. Idempotent: OVERDUE and PAID
// installments come back unchanged.
func (i Installment) MarkOverdueIfPastDue(asOf time.Time) Installment {
	if !i.status.Equal(valueobject.InstallmentStatusScheduled) {
		return i
	}
	if !truncateToDate(asOf).After(truncateToDate(i.dueDate)) {
		return i
	}
	if i.Outstanding().LessThanOrEqual(decimal.Zero) {
		return i
	}
	next := i
	next.status = valueobject.InstallmentStatusOverdue
	next.daysLate = i.DaysLate(asOf)
	return next
}

// WithPenalty attaches a (re)computed late-payment penalty. The penalty
// replaces any previously applied value; it never accumulates.
func (i Installment) WithPenalty(penalty decimal.Decimal, daysLate int, computedAt time.Time) Installment {
	next := i
	next.appliedPenalty = penalty
	next.daysLate = daysLate
	next.penaltyComputedAt = computedAt
	return next
}

// Credit applies a repayment amount to the installment. The returned bool is
// true exactly when this credit crosses the PAID threshold (cumulative paid
// >= scheduled amount + applied penalty) for the first time.
func (i Installment) Credit(amount decimal.Decimal, paymentDate time.Time) (Installment, bool, error) {
	if i.status.Equal(valueobject.InstallmentStatusPaid) {
		return i, false, fmt.Errorf("%w: installment %d is already paid", valueobject.ErrIllegalStateTransition, i.sequence)
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return i, false, fmt.Errorf("%w: repayment amount must be positive, got %s", valueobject.ErrInvalidParameter, amount)
	}

	next := i
	next.paidTotal = i.paidTotal.Add(amount)

	if next.paidTotal.GreaterThanOrEqual(next.totalAmount.Add(next.appliedPenalty)) {
		next.status = valueobject.InstallmentStatusPaid
		next.paymentDate = paymentDate
		return next, true, nil
	}
	return next, false, nil
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

func (i Installment) ID() string                               { return i.id }
func (i Installment) LoanID() string                           { return i.loanID }
func (i Installment) Sequence() int                            { return i.sequence }
func (i Installment) TotalAmount() decimal.Decimal             { return i.totalAmount }
func (i Installment) Capital() decimal.Decimal                 { return i.capital }
func (i Installment) Interest() decimal.Decimal                { return i.interest }
func (i Installment) RemainingCapital() decimal.Decimal        { return i.remainingCapital }
func (i Installment) DueDate() time.Time                       { return i.dueDate }
func (i Installment) PaymentDate() time.Time                   { return i.paymentDate }
func (i Installment) Status() valueobject.InstallmentStatus    { return i.status }
func (i Installment) AppliedPenalty() decimal.Decimal          { return i.appliedPenalty }
func (i Installment) DaysLateRecorded() int                    { return i.daysLate }
func (i Installment) PenaltyComputedAt() time.Time             { return i.penaltyComputedAt }
func (i Installment) PaidTotal() decimal.Decimal               { return i.paidTotal }
func (i Installment) IsPaid() bool                             { return i.status.Equal(valueobject.InstallmentStatusPaid) }

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
