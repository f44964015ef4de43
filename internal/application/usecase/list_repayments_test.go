package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banquecore/lending/internal/application/dto"
	"github.com/banquecore/lending/internal/application/usecase"
	"github.com/banquecore/lending/internal/domain/model"
	"github.com/banquecore/lending/internal/domain/valueobject"
)

func TestListInstallmentRepaymentsUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	paidAt := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	repayments := &memRepaymentRepo{saved: []model.Repayment{
		model.ReconstructRepayment("rep-001", "inst-001", "acct-001",
			d("700.00"), d("0.00"), valueobject.PaymentTypeCash, paidAt, "DBT-0001"),
		model.ReconstructRepayment("rep-002", "inst-001", "acct-001",
			d("500.00"), d("0.00"), valueobject.PaymentTypeTransfer, paidAt.AddDate(0, 0, 3), "SEPA-42"),
		model.ReconstructRepayment("rep-003", "inst-002", "acct-001",
			d("1200.00"), d("0.00"), valueobject.PaymentTypeCash, paidAt, "DBT-0002"),
	}}
	uc := usecase.NewListInstallmentRepaymentsUseCase(repayments)

	t.Run("lists the installment's repayments", func(t *testing.T) {
		out, err := uc.Execute(ctx, dto.ListInstallmentRepaymentsRequest{InstallmentID: "inst-001"})

		require.NoError(t, err)
		require.Len(t, out, 2)
		assert.Equal(t, "rep-001", out[0].ID)
		assert.Equal(t, "CASH", out[0].PaymentType)
		assert.True(t, out[0].Amount.Equal(d("700.00")))
		assert.Equal(t, "rep-002", out[1].ID)
		assert.Equal(t, "SEPA-42", out[1].ExternalReference)
	})

	t.Run("installment without repayments yields an empty list", func(t *testing.T) {
		out, err := uc.Execute(ctx, dto.ListInstallmentRepaymentsRequest{InstallmentID: "inst-099"})

		require.NoError(t, err)
		assert.Empty(t, out)
	})

	t.Run("missing installment id", func(t *testing.T) {
		_, err := uc.Execute(ctx, dto.ListInstallmentRepaymentsRequest{})

		assert.ErrorIs(t, err, valueobject.ErrInvalidParameter)
	})
}
