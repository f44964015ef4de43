package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banquecore/lending/internal/application/dto"
	"github.com/banquecore/lending/internal/application/usecase"
	"github.com/banquecore/lending/internal/domain/event"
	"github.com/banquecore/lending/internal/domain/valueobject"
)

func TestRejectLoanUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects with the given reason", func(t *testing.T) {
		repo := newMemLoanRepo(pendingApplication(t, personalLoanParams(), "120000.00", 12))
		publisher := &mockPublisher{}
		uc := usecase.NewRejectLoanUseCase(repo, publisher)

		resp, err := uc.Execute(ctx, dto.RejectLoanRequest{LoanID: "loan-001", Reason: "income too low"})

		require.NoError(t, err)
		assert.Equal(t, "REJECTED", resp.Status)
		assert.Equal(t, "income too low", resp.RejectionReason)
		assert.Empty(t, resp.Installments)
		assert.Equal(t, []string{event.TypeLoanRejected}, publisher.eventTypes())

		stored := repo.get(t, "loan-001")
		assert.True(t, stored.Status().IsTerminal())
	})

	t.Run("defaults the reason when omitted", func(t *testing.T) {
		repo := newMemLoanRepo(pendingApplication(t, personalLoanParams(), "120000.00", 12))
		uc := usecase.NewRejectLoanUseCase(repo, &mockPublisher{})

		resp, err := uc.Execute(ctx, dto.RejectLoanRequest{LoanID: "loan-001"})

		require.NoError(t, err)
		assert.Equal(t, "eligibility criteria not met", resp.RejectionReason)
	})

	t.Run("rejecting an active loan fails", func(t *testing.T) {
		repo := newMemLoanRepo(activeLoan(t, personalLoanParams(), "120000.00", 12))
		uc := usecase.NewRejectLoanUseCase(repo, &mockPublisher{})

		_, err := uc.Execute(ctx, dto.RejectLoanRequest{LoanID: "loan-001", Reason: "late"})
		assert.ErrorIs(t, err, valueobject.ErrIllegalStateTransition)
		assert.Zero(t, repo.saveCount())
	})

	t.Run("unknown loan", func(t *testing.T) {
		uc := usecase.NewRejectLoanUseCase(newMemLoanRepo(), &mockPublisher{})

		_, err := uc.Execute(ctx, dto.RejectLoanRequest{LoanID: "missing"})
		assert.ErrorIs(t, err, valueobject.ErrNotFound)
	})
}

func TestGetLoanUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the loan with installments", func(t *testing.T) {
		repo := newMemLoanRepo(activeLoan(t, personalLoanParams(), "120000.00", 12))
		uc := usecase.NewGetLoanUseCase(repo)

		resp, err := uc.Execute(ctx, dto.GetLoanRequest{LoanID: "loan-001"})

		require.NoError(t, err)
		assert.Equal(t, "loan-001", resp.ID)
		assert.Equal(t, "ACTIVE", resp.Status)
		assert.Len(t, resp.Installments, 12)
	})

	t.Run("unknown loan", func(t *testing.T) {
		uc := usecase.NewGetLoanUseCase(newMemLoanRepo())

		_, err := uc.Execute(ctx, dto.GetLoanRequest{LoanID: "missing"})
		assert.ErrorIs(t, err, valueobject.ErrNotFound)
	})
}

func TestListClientLoansUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("lists the client's loans", func(t *testing.T) {
		repo := newMemLoanRepo(activeLoan(t, personalLoanParams(), "120000.00", 12))
		uc := usecase.NewListClientLoansUseCase(repo)

		loans, err := uc.Execute(ctx, dto.ListClientLoansRequest{ClientID: "client-001"})

		require.NoError(t, err)
		require.Len(t, loans, 1)
		assert.Equal(t, "loan-001", loans[0].ID)
	})

	t.Run("unknown client yields an empty list", func(t *testing.T) {
		uc := usecase.NewListClientLoansUseCase(newMemLoanRepo())

		loans, err := uc.Execute(ctx, dto.ListClientLoansRequest{ClientID: "client-404"})

		require.NoError(t, err)
		assert.Empty(t, loans)
	})

	t.Run("client id is required", func(t *testing.T) {
		uc := usecase.NewListClientLoansUseCase(newMemLoanRepo())

		_, err := uc.Execute(ctx, dto.ListClientLoansRequest{})
		assert.ErrorIs(t, err, valueobject.ErrInvalidParameter)
	})
}
