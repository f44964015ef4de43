package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banquecore/lending/internal/application/dto"
	"github.com/banquecore/lending/internal/application/usecase"
	"github.com/banquecore/lending/internal/domain/event"
	"github.com/banquecore/lending/internal/domain/model"
	"github.com/banquecore/lending/internal/domain/valueobject"
)

func pendingApplication(t *testing.T, params model.LoanTypeParameters, principal string, months int) model.Loan {
	t.Helper()
	loan, err := model.NewLoanApplication(
		"loan-001", "LN17041000000001", "client-001",
		params, d(principal), months, applicationDate,
	)
	require.NoError(t, err)
	return loan.ClearEvents()
}

func TestApproveLoanUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("activates the loan and commits the schedule", func(t *testing.T) {
		repo := newMemLoanRepo(pendingApplication(t, personalLoanParams(), "120000.00", 12))
		publisher := &mockPublisher{}
		uc := usecase.NewApproveLoanUseCase(newMockCatalog(personalLoanParams()), repo, publisher)

		resp, err := uc.Execute(ctx, dto.ApproveLoanRequest{LoanID: "loan-001"})

		require.NoError(t, err)
		assert.Equal(t, "ACTIVE", resp.Status)
		require.Len(t, resp.Installments, 12)
		assert.Equal(t, 1, resp.Installments[0].Sequence)
		assert.Equal(t, "SCHEDULED", resp.Installments[0].Status)
		require.NotNil(t, resp.ApprovalDate)

		stored := repo.get(t, "loan-001")
		assert.Equal(t, valueobject.LoanStatusActive, stored.Status())
		assert.Equal(t, []string{event.TypeLoanApproved}, publisher.eventTypes())
	})

	t.Run("re-check against tightened product bounds fails", func(t *testing.T) {
		// The application was taken under a wider product; by approval time
		// the catalog caps the principal at 200000.
		wide := personalLoanParams()
		wide.MaxPrincipal = d("300000.00")
		repo := newMemLoanRepo(pendingApplication(t, wide, "250000.00", 12))
		uc := usecase.NewApproveLoanUseCase(newMockCatalog(personalLoanParams()), repo, &mockPublisher{})

		_, err := uc.Execute(ctx, dto.ApproveLoanRequest{LoanID: "loan-001"})

		assert.ErrorIs(t, err, valueobject.ErrOutOfBounds)
		assert.Zero(t, repo.saveCount(), "no installment may be committed")
	})

	t.Run("unknown loan", func(t *testing.T) {
		uc := usecase.NewApproveLoanUseCase(newMockCatalog(), newMemLoanRepo(), &mockPublisher{})

		_, err := uc.Execute(ctx, dto.ApproveLoanRequest{LoanID: "missing"})
		assert.ErrorIs(t, err, valueobject.ErrNotFound)
	})

	t.Run("approving an active loan fails", func(t *testing.T) {
		repo := newMemLoanRepo(activeLoan(t, personalLoanParams(), "120000.00", 12))
		uc := usecase.NewApproveLoanUseCase(newMockCatalog(personalLoanParams()), repo, &mockPublisher{})

		_, err := uc.Execute(ctx, dto.ApproveLoanRequest{LoanID: "loan-001"})
		assert.ErrorIs(t, err, valueobject.ErrIllegalStateTransition)
	})
}
