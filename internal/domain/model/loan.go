package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/banquecore/lending/internal/domain/event"
	"github.com/banquecore/lending/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// Loan aggregate root
// ---------------------------------------------------------------------------

// Loan is an immutable aggregate owning the ordered sequence of its
// installments. Mutations return a new copy. The client and loan type are
// referenced by identifier only; their records live with the respective
// collaborators.
type Loan struct {
	id                 string
	loanNumber         string
	clientID           string
	loanTypeID         string
	requestedPrincipal decimal.Decimal
	approvedPrincipal  decimal.Decimal
	durationMonths     int
	annualRatePercent  decimal.Decimal
	monthlyPayment     decimal.Decimal
	totalDue           decimal.Decimal
	totalPenalties     decimal.Decimal
	requestDate        time.Time
	approvalDate       time.Time
	firstDueDate       time.Time
	lastDueDate        time.Time
	status             valueobject.LoanStatus
	rejectionReason    string
	installments       []Installment
	version            int
	createdAt          time.Time
	updatedAt          time.Time
	domainEvents       []event.DomainEvent
}

// NewLoanNumber builds a human-readable loan number from the creation time
// and a caller-supplied entropy value.
func NewLoanNumber(now time.Time, entropy uint32) string {
	return fmt.Sprintf("LN%d%04d", now.UnixMilli(), entropy%10000)
}

// NewLoanApplication creates a loan application in PENDING status. The
// requested principal and duration are validated against the loan type
// bounds; the monthly payment and totals are fixed at application time from
// the loan type's rate.
func NewLoanApplication(
	id, loanNumber, clientID string,
	params LoanTypeParameters,
	requestedPrincipal decimal.Decimal,
	durationMonths int,
	now time.Time,
) (Loan, error) {
	if clientID == "" {
		return Loan{}, fmt.Errorf("%w: client id is required", valueobject.ErrInvalidParameter)
	}
	if err := params.ValidateAmount(requestedPrincipal); err != nil {
		return Loan{}, err
	}
	if err := params.ValidateDuration(durationMonths); err != nil {
		return Loan{}, err
	}

	payment, err := ComputeMonthlyPayment(requestedPrincipal, params.AnnualRatePercent, durationMonths)
	if err != nil {
		return Loan{}, err
	}

	firstDue := AddMonthsClamped(now, 1)
	loan := Loan{
		id:                 id,
		loanNumber:         loanNumber,
		clientID:           clientID,
		loanTypeID:         params.ID,
		requestedPrincipal: requestedPrincipal,
		approvedPrincipal:  requestedPrincipal,
		durationMonths:     durationMonths,
		annualRatePercent:  params.AnnualRatePercent,
		monthlyPayment:     payment,
		totalDue:           ComputeTotalDue(payment, durationMonths),
		totalPenalties:     decimal.Zero,
		requestDate:        now,
		firstDueDate:       firstDue,
		lastDueDate:        AddMonthsClamped(firstDue, durationMonths-1),
		status:             valueobject.LoanStatusPending,
		version:            1,
		createdAt:          now,
		updatedAt:          now,
	}

	loan.domainEvents = append(loan.domainEvents, event.NewLoanApplicationCreated(
		id, clientID, params.ID, requestedPrincipal, payment, durationMonths, now,
	))
	return loan, nil
}

// ReconstructLoan rebuilds a loan aggregate from persistence.
func ReconstructLoan(
	id, loanNumber, clientID, loanTypeID string,
	requestedPrincipal, approvedPrincipal decimal.Decimal,
	durationMonths int,
	annualRatePercent, monthlyPayment, totalDue, totalPenalties decimal.Decimal,
	requestDate, approvalDate, firstDueDate, lastDueDate time.Time,
	status valueobject.LoanStatus,
	rejectionReason string,
	installments []Installment,
	version int,
	createdAt, updatedAt time.Time,
) Loan {
	return Loan{
		id:                 id,
		loanNumber:         loanNumber,
		clientID:           clientID,
		loanTypeID:         loanTypeID,
		requestedPrincipal: requestedPrincipal,
		approvedPrincipal:  approvedPrincipal,
		durationMonths:     durationMonths,
		annualRatePercent:  annualRatePercent,
		monthlyPayment:     monthlyPayment,
		totalDue:           totalDue,
		totalPenalties:     totalPenalties,
		requestDate:        requestDate,
		approvalDate:       approvalDate,
		firstDueDate:       firstDueDate,
		lastDueDate:        lastDueDate,
		status:             status,
		rejectionReason:    rejectionReason,
		installments:       installments,
		version:            version,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}
}

// ---------------------------------------------------------------------------
// State transitions
// ---------------------------------------------------------------------------

// Approve commits the amortization schedule into installments and activates
// the loan. Only PENDING loans can be approved. Installment identities are
// assigned by the caller, one per schedule period, in order.
func (l Loan) Approve(installmentIDs []string, now time.Time) (Loan, error) {
	if !l.status.Equal(valueobject.LoanStatusPending) {
		return l, fmt.Errorf("%w: only pending loans can be approved, loan %s is %s",
			valueobject.ErrIllegalStateTransition, l.id, l.status)
	}
	if len(installmentIDs) != l.durationMonths {
		return l, fmt.Errorf("%w: need %d installment ids, got %d",
			valueobject.ErrInvalidParameter, l.durationMonths, len(installmentIDs))
	}

	schedule, err := GenerateSchedule(l.approvedPrincipal, l.annualRatePercent, l.durationMonths, l.firstDueDate)
	if err != nil {
		return l, err
	}

	installments := make([]Installment, 0, len(schedule))
	for idx, entry := range schedule {
		// Contiguity invariant: sequence numbers are exactly 1..N in order.
		if entry.Sequence != idx+1 {
			return l, fmt.Errorf("%w: schedule sequence gap at position %d",
				valueobject.ErrArithmeticInconsistency, idx+1)
		}
		installments = append(installments, NewInstallment(installmentIDs[idx], l.id, entry))
	}

	next := l
	next.approvalDate = now
	next.status = valueobject.LoanStatusActive
	next.installments = installments
	next.updatedAt = now
	next.domainEvents = copyEvents(l.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewLoanApproved(
		l.id, l.approvedPrincipal, l.firstDueDate, len(installments), now,
	))
	return next, nil
}

// Reject turns a PENDING loan down. Terminal: no installments are ever
// committed for a rejected loan.
func (l Loan) Reject(reason string, now time.Time) (Loan, error) {
	if !l.status.Equal(valueobject.LoanStatusPending) {
		return l, fmt.Errorf("%w: only pending loans can be rejected, loan %s is %s",
			valueobject.ErrIllegalStateTransition, l.id, l.status)
	}
	if reason == "" {
		reason = "eligibility criteria not met"
	}
	next := l
	next.status = valueobject.LoanStatusRejected
	next.rejectionReason = reason
	next.updatedAt = now
	next.domainEvents = copyEvents(l.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewLoanRejected(l.id, reason, now))
	return next, nil
}

// ApplyRepayment credits a repayment against one of the loan's installments.
// The penalty, when the installment is overdue, is computed by the caller's
// PenaltyPolicy and passed in; it replaces the installment's applied penalty
// and the difference accrues to the loan's penalty total. The transition is
// atomic: on error the loan is returned unchanged.
func (l Loan) ApplyRepayment(
	installmentID, repaymentID, accountID string,
	amount decimal.Decimal,
	paymentType valueobject.PaymentType,
	paymentDate time.Time,
	externalReference string,
	penalty decimal.Decimal,
	daysLate int,
	now time.Time,
) (Loan, Repayment, error) {
	idx := l.installmentIndex(installmentID)
	if idx < 0 {
		return l, Repayment{}, fmt.Errorf("%w: installment %s does not belong to loan %s",
			valueobject.ErrNotFound, installmentID, l.id)
	}

	inst := l.installments[idx]
	if inst.IsPaid() {
		return l, Repayment{}, fmt.Errorf("%w: installment %d of loan %s is already paid",
			valueobject.ErrIllegalStateTransition, inst.Sequence(), l.id)
	}

	penaltyDelta := decimal.Zero
	if inst.Status().Equal(valueobject.InstallmentStatusOverdue) {
		penaltyDelta = penalty.Sub(inst.AppliedPenalty())
		inst = inst.WithPenalty(penalty, daysLate, now)
	}

	// Payments cover the scheduled amount first; whatever exceeds it goes to
	// the penalty.
	coveredBefore := penaltyCovered(inst.PaidTotal(), inst.TotalAmount(), inst.AppliedPenalty())

	inst, crossed, err := inst.Credit(amount, paymentDate)
	if err != nil {
		return l, Repayment{}, err
	}

	coveredAfter := penaltyCovered(inst.PaidTotal(), inst.TotalAmount(), inst.AppliedPenalty())
	penaltyPortion := coveredAfter.Sub(coveredBefore)

	repayment, err := NewRepayment(
		repaymentID, installmentID, accountID,
		amount, penaltyPortion, paymentType, paymentDate, externalReference,
	)
	if err != nil {
		return l, Repayment{}, err
	}

	next := l
	next.installments = make([]Installment, len(l.installments))
	copy(next.installments, l.installments)
	next.installments[idx] = inst
	next.totalPenalties = l.totalPenalties.Add(penaltyDelta)
	next.updatedAt = now
	next.domainEvents = copyEvents(l.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewRepaymentRecorded(
		l.id, repaymentID, installmentID, inst.Sequence(), amount, penaltyPortion, crossed, now,
	))

	if crossed && next.allInstallmentsPaid() {
		next.status = valueobject.LoanStatusClosed
		next.domainEvents = append(next.domainEvents, event.NewLoanClosed(l.id, next.totalPenalties, now))
	}

	return next, repayment, nil
}

// MarkOverdueInstallments sweeps the ledger, transitioning every SCHEDULED
// installment past its due date to OVERDUE. Idempotent.
func (l Loan) MarkOverdueInstallments(asOf time.Time) Loan {
	next := l
	next.installments = make([]Installment, len(l.installments))
	for i, inst := range l.installments {
		next.installments[i] = inst.MarkOverdueIfPastDue(asOf)
	}
	return next
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

func (l Loan) ID() string                           { return l.id }
func (l Loan) LoanNumber() string                   { return l.loanNumber }
func (l Loan) ClientID() string                     { return l.clientID }
func (l Loan) LoanTypeID() string                   { return l.loanTypeID }
func (l Loan) RequestedPrincipal() decimal.Decimal  { return l.requestedPrincipal }
func (l Loan) ApprovedPrincipal() decimal.Decimal   { return l.approvedPrincipal }
func (l Loan) DurationMonths() int                  { return l.durationMonths }
func (l Loan) AnnualRatePercent() decimal.Decimal   { return l.annualRatePercent }
func (l Loan) MonthlyPayment() decimal.Decimal      { return l.monthlyPayment }
func (l Loan) TotalDue() decimal.Decimal            { return l.totalDue }
func (l Loan) TotalPenalties() decimal.Decimal      { return l.totalPenalties }
func (l Loan) RequestDate() time.Time               { return l.requestDate }
func (l Loan) ApprovalDate() time.Time              { return l.approvalDate }
func (l Loan) FirstDueDate() time.Time              { return l.firstDueDate }
func (l Loan) LastDueDate() time.Time               { return l.lastDueDate }
func (l Loan) Status() valueobject.LoanStatus       { return l.status }
func (l Loan) RejectionReason() string              { return l.rejectionReason }
func (l Loan) Version() int                         { return l.version }
func (l Loan) CreatedAt() time.Time                 { return l.createdAt }
func (l Loan) UpdatedAt() time.Time                 { return l.updatedAt }
func (l Loan) DomainEvents() []event.DomainEvent    { return l.domainEvents }

// Installments returns a copy of the installment sequence.
func (l Loan) Installments() []Installment {
	if l.installments == nil {
		return nil
	}
	out := make([]Installment, len(l.installments))
	copy(out, l.installments)
	return out
}

// Installment returns the installment with the given id.
func (l Loan) Installment(installmentID string) (Installment, bool) {
	idx := l.installmentIndex(installmentID)
	if idx < 0 {
		return Installment{}, false
	}
	return l.installments[idx], true
}

// ClearEvents returns a copy with an empty event list.
func (l Loan) ClearEvents() Loan {
	next := l
	next.domainEvents = nil
	return next
}

func (l Loan) installmentIndex(installmentID string) int {
	for i, inst := range l.installments {
		if inst.ID() == installmentID {
			return i
		}
	}
	return -1
}

func (l Loan) allInstallmentsPaid() bool {
	for _, inst := range l.installments {
		if !inst.IsPaid() {
			return false
		}
	}
	return len(l.installments) > 0
}

// penaltyCovered returns how much of the applied penalty the cumulative paid
// total has covered, given that the scheduled amount is credited first.
func penaltyCovered(paidTotal, scheduledAmount, appliedPenalty decimal.Decimal) decimal.Decimal {
	covered := paidTotal.Sub(scheduledAmount)
	if covered.IsNegative() {
		return decimal.Zero
	}
	if covered.GreaterThan(appliedPenalty) {
		return appliedPenalty
	}
	return covered
}

func copyEvents(events []event.DomainEvent) []event.DomainEvent {
	if events == nil {
		return nil
	}
	out := make([]event.DomainEvent, len(events))
	copy(out, events)
	return out
}
