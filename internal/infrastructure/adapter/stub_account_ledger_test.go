package adapter_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banquecore/lending/internal/infrastructure/adapter"
	"github.com/banquecore/lending/pkg/money"
	"github.com/banquecore/lending/pkg/testutil"
)

func TestStubAccountLedger_Debit(t *testing.T) {
	ctx := context.Background()
	ledger := adapter.NewStubAccountLedger()
	amount := money.New(decimal.RequireFromString("1200.00"), money.EUR)

	t.Run("returns a deterministic receipt", func(t *testing.T) {
		first, err := ledger.Debit(ctx, testutil.TestAccountID.String(), amount)
		require.NoError(t, err)
		assert.Regexp(t, `^DBT[0-9A-F]{16}$`, first)

		second, err := ledger.Debit(ctx, testutil.TestAccountID.String(), amount)
		require.NoError(t, err)
		assert.Equal(t, first, second)

		other, err := ledger.Debit(ctx, testutil.TestClientID.String(), amount)
		require.NoError(t, err)
		assert.NotEqual(t, first, other)
	})

	t.Run("rejects an empty account", func(t *testing.T) {
		_, err := ledger.Debit(ctx, "", amount)
		assert.Error(t, err)
	})

	t.Run("rejects non-positive amounts", func(t *testing.T) {
		_, err := ledger.Debit(ctx, "acct-001", money.Zero(money.EUR))
		assert.Error(t, err)
	})
}
