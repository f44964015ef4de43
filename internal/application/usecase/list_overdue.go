package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/banquecore/lending/internal/application/dto"
	"github.com/banquecore/lending/internal/domain/port"
	"github.com/banquecore/lending/internal/domain/valueobject"
)

// ListOverdueUseCase reports every installment past due as of a given date,
// transitioning SCHEDULED ones to OVERDUE on the way.
type ListOverdueUseCase struct {
	installmentRepo port.InstallmentRepository
}

// NewListOverdueUseCase wires dependencies.
func NewListOverdueUseCase(installmentRepo port.InstallmentRepository) *ListOverdueUseCase {
	return &ListOverdueUseCase{installmentRepo: installmentRepo}
}

// Execute lists overdue installments. The mark-overdue transition is
// idempotent, so repeated sweeps are safe.
func (uc *ListOverdueUseCase) Execute(ctx context.Context, req dto.ListOverdueRequest) ([]dto.InstallmentResponse, error) {
	asOf := req.AsOf
	if asOf.IsZero() {
		asOf = time.Now().UTC()
	}

	unpaid, err := uc.installmentRepo.FindUnpaidDueBefore(ctx, asOf)
	if err != nil {
		return nil, fmt.Errorf("find unpaid installments: %w", err)
	}

	out := make([]dto.InstallmentResponse, 0, len(unpaid))
	for _, inst := range unpaid {
		marked := inst.MarkOverdueIfPastDue(asOf)
		if !marked.Status().Equal(inst.Status()) {
			if err := uc.installmentRepo.Save(ctx, marked); err != nil {
				return nil, fmt.Errorf("save installment %s: %w", marked.ID(), err)
			}
		}
		if marked.Status().Equal(valueobject.InstallmentStatusOverdue) {
			out = append(out, toInstallmentResponse(marked))
		}
	}
	return out, nil
}
