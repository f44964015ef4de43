package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/banquecore/lending/internal/application/dto"
	"github.com/banquecore/lending/internal/domain/port"
)

// RejectLoanUseCase turns down a pending loan application.
type RejectLoanUseCase struct {
	loanRepo  port.LoanRepository
	publisher port.EventPublisher
}

// NewRejectLoanUseCase wires dependencies.
func NewRejectLoanUseCase(loanRepo port.LoanRepository, publisher port.EventPublisher) *RejectLoanUseCase {
	return &RejectLoanUseCase{loanRepo: loanRepo, publisher: publisher}
}

// Execute rejects the loan. Terminal: a rejected loan never gains
// installments.
func (uc *RejectLoanUseCase) Execute(ctx context.Context, req dto.RejectLoanRequest) (dto.LoanResponse, error) {
	now := time.Now().UTC()

	loan, err := uc.loanRepo.FindByID(ctx, req.LoanID)
	if err != nil {
		return dto.LoanResponse{}, fmt.Errorf("find loan: %w", err)
	}

	loan, err = loan.Reject(req.Reason, now)
	if err != nil {
		return dto.LoanResponse{}, fmt.Errorf("reject loan: %w", err)
	}

	if err := uc.loanRepo.Save(ctx, loan); err != nil {
		return dto.LoanResponse{}, fmt.Errorf("save loan: %w", err)
	}

	if err := uc.publisher.Publish(ctx, loan.DomainEvents()...); err != nil {
		return dto.LoanResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return toLoanResponse(loan), nil
}
