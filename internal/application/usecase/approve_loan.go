package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/banquecore/lending/internal/application/dto"
	"github.com/banquecore/lending/internal/domain/port"
)

// ApproveLoanUseCase approves a pending loan and commits its amortization
// schedule as installments.
type ApproveLoanUseCase struct {
	catalog   port.LoanTypeCatalog
	loanRepo  port.LoanRepository
	publisher port.EventPublisher
}

// NewApproveLoanUseCase wires dependencies.
func NewApproveLoanUseCase(
	catalog port.LoanTypeCatalog,
	loanRepo port.LoanRepository,
	publisher port.EventPublisher,
) *ApproveLoanUseCase {
	return &ApproveLoanUseCase{
		catalog:   catalog,
		loanRepo:  loanRepo,
		publisher: publisher,
	}
}

// Execute re-checks eligibility against the catalog, then activates the loan.
// Bounds are verified before any installment is committed.
func (uc *ApproveLoanUseCase) Execute(ctx context.Context, req dto.ApproveLoanRequest) (dto.LoanResponse, error) {
	now := time.Now().UTC()

	loan, err := uc.loanRepo.FindByID(ctx, req.LoanID)
	if err != nil {
		return dto.LoanResponse{}, fmt.Errorf("find loan: %w", err)
	}

	params, err := uc.catalog.GetLoanTypeParameters(ctx, loan.LoanTypeID())
	if err != nil {
		return dto.LoanResponse{}, fmt.Errorf("get loan type: %w", err)
	}
	if err := params.ValidateAmount(loan.ApprovedPrincipal()); err != nil {
		return dto.LoanResponse{}, err
	}
	if err := params.ValidateDuration(loan.DurationMonths()); err != nil {
		return dto.LoanResponse{}, err
	}

	installmentIDs := make([]string, loan.DurationMonths())
	for i := range installmentIDs {
		installmentIDs[i] = uuid.New().String()
	}

	loan, err = loan.Approve(installmentIDs, now)
	if err != nil {
		return dto.LoanResponse{}, fmt.Errorf("approve loan: %w", err)
	}

	if err := uc.loanRepo.Save(ctx, loan); err != nil {
		return dto.LoanResponse{}, fmt.Errorf("save loan: %w", err)
	}

	if err := uc.publisher.Publish(ctx, loan.DomainEvents()...); err != nil {
		return dto.LoanResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return toLoanResponse(loan), nil
}
