package usecase

import (
	"context"
	"fmt"

	"github.com/banquecore/lending/internal/application/dto"
	"github.com/banquecore/lending/internal/domain/model"
	"github.com/banquecore/lending/internal/domain/port"
	"github.com/banquecore/lending/internal/domain/valueobject"
)

// ListInstallmentRepaymentsUseCase lists the repayments recorded against one
// installment, oldest first.
type ListInstallmentRepaymentsUseCase struct {
	repaymentRepo port.RepaymentRepository
}

// NewListInstallmentRepaymentsUseCase wires dependencies.
func NewListInstallmentRepaymentsUseCase(repaymentRepo port.RepaymentRepository) *ListInstallmentRepaymentsUseCase {
	return &ListInstallmentRepaymentsUseCase{repaymentRepo: repaymentRepo}
}

// Execute fetches the installment's repayment history. An installment with no
// repayments yields an empty list, not an error.
func (uc *ListInstallmentRepaymentsUseCase) Execute(ctx context.Context, req dto.ListInstallmentRepaymentsRequest) ([]dto.RepaymentRecord, error) {
	if req.InstallmentID == "" {
		return nil, fmt.Errorf("%w: installment id is required", valueobject.ErrInvalidParameter)
	}

	repayments, err := uc.repaymentRepo.FindByInstallmentID(ctx, req.InstallmentID)
	if err != nil {
		return nil, fmt.Errorf("find repayments for installment: %w", err)
	}

	out := make([]dto.RepaymentRecord, 0, len(repayments))
	for _, rep := range repayments {
		out = append(out, toRepaymentRecord(rep))
	}
	return out, nil
}

func toRepaymentRecord(rep model.Repayment) dto.RepaymentRecord {
	return dto.RepaymentRecord{
		ID:                rep.ID(),
		InstallmentID:     rep.InstallmentID(),
		AccountID:         rep.AccountID(),
		Amount:            rep.Amount(),
		PenaltyPortion:    rep.PenaltyPortion(),
		PaymentType:       rep.PaymentType().String(),
		PaidAt:            rep.PaidAt(),
		ExternalReference: rep.ExternalReference(),
	}
}
