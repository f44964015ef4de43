package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/banquecore/lending/internal/application/dto"
	"github.com/banquecore/lending/internal/domain/port"
	"github.com/banquecore/lending/internal/domain/service"
	"github.com/banquecore/lending/internal/domain/valueobject"
	"github.com/banquecore/lending/pkg/money"
)

// RecordRepaymentUseCase applies a repayment to an installment, consulting
// the penalty policy for overdue installments and closing the loan when the
// last installment settles. Recording is serialized per loan: two concurrent
// repayments against the same loan never interleave.
//
// The paying account is debited through the AccountLedger port before the
// loan state mutates; a failed debit leaves the loan untouched.
type RecordRepaymentUseCase struct {
	loanRepo  port.LoanRepository
	catalog   port.LoanTypeCatalog
	penalties service.PenaltyPolicy
	ledger    port.AccountLedger
	publisher port.EventPublisher
	locks     *loanLocks
}

// NewRecordRepaymentUseCase wires dependencies.
func NewRecordRepaymentUseCase(
	loanRepo port.LoanRepository,
	catalog port.LoanTypeCatalog,
	penalties service.PenaltyPolicy,
	ledger port.AccountLedger,
	publisher port.EventPublisher,
) *RecordRepaymentUseCase {
	return &RecordRepaymentUseCase{
		loanRepo:  loanRepo,
		catalog:   catalog,
		penalties: penalties,
		ledger:    ledger,
		publisher: publisher,
		locks:     newLoanLocks(),
	}
}

// Execute records one repayment. Either the whole transition commits or the
// prior state stays untouched.
func (uc *RecordRepaymentUseCase) Execute(ctx context.Context, req dto.RecordRepaymentRequest) (dto.RepaymentResponse, error) {
	paymentType, err := valueobject.NewPaymentType(req.PaymentType)
	if err != nil {
		return dto.RepaymentResponse{}, fmt.Errorf("%w: %v", valueobject.ErrInvalidParameter, err)
	}
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return dto.RepaymentResponse{}, fmt.Errorf("%w: amount must be positive, got %s",
			valueobject.ErrInvalidParameter, req.Amount)
	}

	paymentDate := req.PaymentDate
	if paymentDate.IsZero() {
		paymentDate = time.Now().UTC()
	}

	// Resolve the owning loan first, then serialize on its id and re-read
	// inside the critical section.
	loan, err := uc.loanRepo.FindByInstallmentID(ctx, req.InstallmentID)
	if err != nil {
		return dto.RepaymentResponse{}, fmt.Errorf("find loan for installment: %w", err)
	}

	unlock := uc.locks.acquire(loan.ID())
	defer unlock()

	loan, err = uc.loanRepo.FindByID(ctx, loan.ID())
	if err != nil {
		return dto.RepaymentResponse{}, fmt.Errorf("find loan: %w", err)
	}

	now := time.Now().UTC()
	loan = loan.MarkOverdueInstallments(paymentDate)

	inst, ok := loan.Installment(req.InstallmentID)
	if !ok {
		return dto.RepaymentResponse{}, fmt.Errorf("%w: installment %s", valueobject.ErrNotFound, req.InstallmentID)
	}
	// Reject settled installments before touching the account: a debit with
	// no recordable repayment must never happen.
	if inst.IsPaid() {
		return dto.RepaymentResponse{}, fmt.Errorf("%w: installment %d is already paid",
			valueobject.ErrIllegalStateTransition, inst.Sequence())
	}

	penalty := inst.AppliedPenalty()
	daysLate := inst.DaysLateRecorded()
	if inst.Status().Equal(valueobject.InstallmentStatusOverdue) {
		params, catErr := uc.catalog.GetLoanTypeParameters(ctx, loan.LoanTypeID())
		if catErr != nil {
			return dto.RepaymentResponse{}, fmt.Errorf("get loan type: %w", catErr)
		}
		daysLate = inst.DaysLate(paymentDate)
		penalty = uc.penalties.ComputePenalty(inst.TotalAmount(), daysLate, params)
	}

	externalRef := req.ExternalReference
	receipt, err := uc.ledger.Debit(ctx, req.AccountID, money.New(req.Amount, money.EUR))
	if err != nil {
		return dto.RepaymentResponse{}, fmt.Errorf("debit account %s: %w", req.AccountID, err)
	}
	if externalRef == "" {
		externalRef = receipt
	}

	loan, repayment, err := loan.ApplyRepayment(
		req.InstallmentID,
		uuid.New().String(),
		req.AccountID,
		req.Amount,
		paymentType,
		paymentDate,
		externalRef,
		penalty,
		daysLate,
		now,
	)
	if err != nil {
		return dto.RepaymentResponse{}, fmt.Errorf("apply repayment: %w", err)
	}

	// The loan, its installments and the repayment record commit in one
	// transaction; a partial write of either side never becomes visible.
	if err := uc.loanRepo.SaveWithRepayment(ctx, loan, repayment); err != nil {
		return dto.RepaymentResponse{}, fmt.Errorf("save repayment: %w", err)
	}

	if err := uc.publisher.Publish(ctx, loan.DomainEvents()...); err != nil {
		return dto.RepaymentResponse{}, fmt.Errorf("publish events: %w", err)
	}

	inst, _ = loan.Installment(req.InstallmentID)
	return dto.RepaymentResponse{
		ID:                repayment.ID(),
		InstallmentID:     repayment.InstallmentID(),
		AccountID:         repayment.AccountID(),
		Amount:            repayment.Amount(),
		PenaltyPortion:    repayment.PenaltyPortion(),
		PaymentType:       repayment.PaymentType().String(),
		PaidAt:            repayment.PaidAt(),
		ExternalReference: repayment.ExternalReference(),
		InstallmentStatus: inst.Status().String(),
		LoanStatus:        loan.Status().String(),
	}, nil
}
