package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/banquecore/lending/internal/application/dto"
	"github.com/banquecore/lending/internal/domain/model"
	"github.com/banquecore/lending/internal/domain/port"
	"github.com/banquecore/lending/internal/domain/valueobject"
)

// debtServiceRatio caps the monthly payment at 33% of the declared monthly
// income when one is supplied.
var debtServiceRatio = decimal.NewFromFloat(0.33)

// SimulateLoanUseCase produces a provisional amortization schedule. It has no
// side effects and may run on any number of parallel workers.
type SimulateLoanUseCase struct {
	catalog port.LoanTypeCatalog
}

// NewSimulateLoanUseCase wires dependencies.
func NewSimulateLoanUseCase(catalog port.LoanTypeCatalog) *SimulateLoanUseCase {
	return &SimulateLoanUseCase{catalog: catalog}
}

// Execute validates the request against the loan type (when given), runs the
// calculator and assembles the simulation figures.
func (uc *SimulateLoanUseCase) Execute(ctx context.Context, req dto.SimulateRequest) (dto.SimulationResponse, error) {
	rate := req.AnnualRate
	fee := decimal.Zero

	if req.LoanTypeID != "" {
		params, err := uc.catalog.GetLoanTypeParameters(ctx, req.LoanTypeID)
		if err != nil {
			return dto.SimulationResponse{}, fmt.Errorf("get loan type: %w", err)
		}
		if err := params.ValidateAmount(req.Principal); err != nil {
			return dto.SimulationResponse{}, err
		}
		if err := params.ValidateDuration(req.Months); err != nil {
			return dto.SimulationResponse{}, err
		}
		rate = params.AnnualRatePercent
		fee = params.OriginationFee
	}

	firstDue := req.FirstDueDate
	if firstDue.IsZero() {
		firstDue = model.AddMonthsClamped(time.Now().UTC(), 1)
	}

	payment, err := model.ComputeMonthlyPayment(req.Principal, rate, req.Months)
	if err != nil {
		return dto.SimulationResponse{}, fmt.Errorf("compute payment: %w", err)
	}

	if req.MonthlyIncome.IsPositive() {
		ceiling := req.MonthlyIncome.Mul(debtServiceRatio).Round(2)
		if payment.GreaterThan(ceiling) {
			return dto.SimulationResponse{}, fmt.Errorf(
				"%w: monthly payment %s exceeds 33%% of monthly income (ceiling %s)",
				valueobject.ErrOutOfBounds, payment, ceiling)
		}
	}

	schedule, err := model.GenerateSchedule(req.Principal, rate, req.Months, firstDue)
	if err != nil {
		return dto.SimulationResponse{}, fmt.Errorf("generate schedule: %w", err)
	}

	totalDue := model.ComputeTotalDue(payment, req.Months)
	return dto.SimulationResponse{
		LoanTypeID:     req.LoanTypeID,
		Principal:      req.Principal,
		Months:         req.Months,
		AnnualRate:     rate,
		MonthlyPayment: payment,
		TotalDue:       totalDue,
		TotalCost:      model.ComputeTotalCost(totalDue, req.Principal, fee),
		TotalInterest:  model.ComputeTotalInterest(schedule),
		OriginationFee: fee,
		Schedule:       toScheduleResponse(schedule),
	}, nil
}
