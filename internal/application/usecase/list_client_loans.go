package usecase

import (
	"context"
	"fmt"

	"github.com/banquecore/lending/internal/application/dto"
	"github.com/banquecore/lending/internal/domain/port"
	"github.com/banquecore/lending/internal/domain/valueobject"
)

// ListClientLoansUseCase lists every loan of one client, newest first.
type ListClientLoansUseCase struct {
	loanRepo port.LoanRepository
}

// NewListClientLoansUseCase wires dependencies.
func NewListClientLoansUseCase(loanRepo port.LoanRepository) *ListClientLoansUseCase {
	return &ListClientLoansUseCase{loanRepo: loanRepo}
}

// Execute fetches the client's loans. An unknown client yields an empty list,
// not an error.
func (uc *ListClientLoansUseCase) Execute(ctx context.Context, req dto.ListClientLoansRequest) ([]dto.LoanResponse, error) {
	if req.ClientID == "" {
		return nil, fmt.Errorf("%w: client id is required", valueobject.ErrInvalidParameter)
	}

	loans, err := uc.loanRepo.FindByClientID(ctx, req.ClientID)
	if err != nil {
		return nil, fmt.Errorf("find loans for client: %w", err)
	}

	out := make([]dto.LoanResponse, 0, len(loans))
	for _, loan := range loans {
		out = append(out, toLoanResponse(loan))
	}
	return out, nil
}
