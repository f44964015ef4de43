package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banquecore/lending/internal/application/dto"
	"github.com/banquecore/lending/internal/application/usecase"
	"github.com/banquecore/lending/internal/domain/valueobject"
)

func TestSimulateLoanUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	firstDue := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	t.Run("simulates against a catalog product", func(t *testing.T) {
		uc := usecase.NewSimulateLoanUseCase(newMockCatalog(personalLoanParams()))

		resp, err := uc.Execute(ctx, dto.SimulateRequest{
			LoanTypeID:   "type-001",
			Principal:    d("120000.00"),
			Months:       12,
			FirstDueDate: firstDue,
		})

		require.NoError(t, err)
		assert.Equal(t, "10327.97", resp.MonthlyPayment.StringFixed(2))
		assert.Equal(t, "123935.64", resp.TotalDue.StringFixed(2))
		assert.Equal(t, "3985.64", resp.TotalCost.StringFixed(2), "interest plus origination fee")
		assert.True(t, resp.OriginationFee.Equal(d("50.00")))
		assert.True(t, resp.AnnualRate.Equal(d("6.00")), "rate comes from the product")
		require.Len(t, resp.Schedule, 12)
		assert.Equal(t, firstDue, resp.Schedule[0].DueDate)
		assert.True(t, resp.Schedule[11].RemainingCapital.IsZero())
	})

	t.Run("free simulation needs no product", func(t *testing.T) {
		catalog := newMockCatalog()
		catalog.err = errors.New("catalog must not be called")
		uc := usecase.NewSimulateLoanUseCase(catalog)

		resp, err := uc.Execute(ctx, dto.SimulateRequest{
			Principal:    d("10000.00"),
			AnnualRate:   d("5.00"),
			Months:       24,
			FirstDueDate: firstDue,
		})

		require.NoError(t, err)
		assert.True(t, resp.OriginationFee.IsZero())
		assert.Len(t, resp.Schedule, 24)
	})

	t.Run("principal outside the product bounds", func(t *testing.T) {
		uc := usecase.NewSimulateLoanUseCase(newMockCatalog(personalLoanParams()))

		_, err := uc.Execute(ctx, dto.SimulateRequest{
			LoanTypeID: "type-001",
			Principal:  d("500000.00"),
			Months:     12,
		})
		assert.ErrorIs(t, err, valueobject.ErrOutOfBounds)
	})

	t.Run("monthly payment above a third of income", func(t *testing.T) {
		uc := usecase.NewSimulateLoanUseCase(newMockCatalog(personalLoanParams()))

		_, err := uc.Execute(ctx, dto.SimulateRequest{
			LoanTypeID:    "type-001",
			Principal:     d("120000.00"),
			Months:        12,
			MonthlyIncome: d("30000.00"),
		})
		assert.ErrorIs(t, err, valueobject.ErrOutOfBounds)
	})

	t.Run("sufficient income passes the debt-service rule", func(t *testing.T) {
		uc := usecase.NewSimulateLoanUseCase(newMockCatalog(personalLoanParams()))

		_, err := uc.Execute(ctx, dto.SimulateRequest{
			LoanTypeID:    "type-001",
			Principal:     d("120000.00"),
			Months:        12,
			MonthlyIncome: d("40000.00"),
		})
		assert.NoError(t, err)
	})

	t.Run("unknown loan type", func(t *testing.T) {
		uc := usecase.NewSimulateLoanUseCase(newMockCatalog())

		_, err := uc.Execute(ctx, dto.SimulateRequest{
			LoanTypeID: "missing",
			Principal:  d("10000.00"),
			Months:     12,
		})
		assert.ErrorIs(t, err, valueobject.ErrNotFound)
	})

	t.Run("invalid calculator input", func(t *testing.T) {
		uc := usecase.NewSimulateLoanUseCase(newMockCatalog())

		_, err := uc.Execute(ctx, dto.SimulateRequest{
			Principal: d("10000.00"),
			Months:    0,
		})
		assert.ErrorIs(t, err, valueobject.ErrInvalidParameter)
	})
}
