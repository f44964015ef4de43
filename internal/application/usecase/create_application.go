package usecase

import (
	"context"
	"encoding/binary"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/banquecore/lending/internal/application/dto"
	"github.com/banquecore/lending/internal/domain/model"
	"github.com/banquecore/lending/internal/domain/port"
)

// CreateApplicationUseCase registers a new loan application in PENDING
// status, validated against the loan type bounds.
type CreateApplicationUseCase struct {
	catalog   port.LoanTypeCatalog
	loanRepo  port.LoanRepository
	publisher port.EventPublisher
}

// NewCreateApplicationUseCase wires dependencies.
func NewCreateApplicationUseCase(
	catalog port.LoanTypeCatalog,
	loanRepo port.LoanRepository,
	publisher port.EventPublisher,
) *CreateApplicationUseCase {
	return &CreateApplicationUseCase{
		catalog:   catalog,
		loanRepo:  loanRepo,
		publisher: publisher,
	}
}

// Execute creates and persists the application.
func (uc *CreateApplicationUseCase) Execute(ctx context.Context, req dto.CreateApplicationRequest) (dto.LoanResponse, error) {
	now := time.Now().UTC()

	params, err := uc.catalog.GetLoanTypeParameters(ctx, req.LoanTypeID)
	if err != nil {
		return dto.LoanResponse{}, fmt.Errorf("get loan type: %w", err)
	}

	id := uuid.New()
	loan, err := model.NewLoanApplication(
		id.String(),
		model.NewLoanNumber(now, binary.BigEndian.Uint32(id[:4])),
		req.ClientID,
		params,
		req.RequestedPrincipal,
		req.Months,
		now,
	)
	if err != nil {
		return dto.LoanResponse{}, fmt.Errorf("create application: %w", err)
	}

	if err := uc.loanRepo.Save(ctx, loan); err != nil {
		return dto.LoanResponse{}, fmt.Errorf("save loan: %w", err)
	}

	if err := uc.publisher.Publish(ctx, loan.DomainEvents()...); err != nil {
		return dto.LoanResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return toLoanResponse(loan), nil
}
