package valueobject_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banquecore/lending/internal/domain/valueobject"
)

func TestNewLoanStatus(t *testing.T) {
	t.Run("accepts every known status", func(t *testing.T) {
		for _, name := range []string{"PENDING", "APPROVED", "REJECTED", "ACTIVE", "CLOSED"} {
			s, err := valueobject.NewLoanStatus(name)
			require.NoError(t, err, name)
			assert.Equal(t, name, s.String())
		}
	})

	t.Run("rejects unknown values", func(t *testing.T) {
		_, err := valueobject.NewLoanStatus("SUSPENDED")
		assert.ErrorIs(t, err, valueobject.ErrInvalidParameter)

		_, err = valueobject.NewLoanStatus("")
		assert.ErrorIs(t, err, valueobject.ErrInvalidParameter)
	})
}

func TestLoanStatus_IsTerminal(t *testing.T) {
	assert.True(t, valueobject.LoanStatusRejected.IsTerminal())
	assert.True(t, valueobject.LoanStatusClosed.IsTerminal())
	assert.False(t, valueobject.LoanStatusPending.IsTerminal())
	assert.False(t, valueobject.LoanStatusActive.IsTerminal())
}

func TestNewInstallmentStatus(t *testing.T) {
	for _, name := range []string{"SCHEDULED", "OVERDUE", "PAID"} {
		s, err := valueobject.NewInstallmentStatus(name)
		require.NoError(t, err, name)
		assert.Equal(t, name, s.String())
	}

	_, err := valueobject.NewInstallmentStatus("CANCELLED")
	assert.ErrorIs(t, err, valueobject.ErrInvalidParameter)
}

func TestNewPaymentType(t *testing.T) {
	for _, name := range []string{"CASH", "TRANSFER", "CARD"} {
		p, err := valueobject.NewPaymentType(name)
		require.NoError(t, err, name)
		assert.Equal(t, name, p.String())
	}

	_, err := valueobject.NewPaymentType("CHEQUE")
	assert.ErrorIs(t, err, valueobject.ErrInvalidParameter)
}

func TestStatusZeroValues(t *testing.T) {
	assert.True(t, valueobject.LoanStatus{}.IsZero())
	assert.True(t, valueobject.InstallmentStatus{}.IsZero())
	assert.True(t, valueobject.PaymentType{}.IsZero())
	assert.False(t, valueobject.LoanStatusActive.IsZero())
}
