package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banquecore/lending/pkg/money"
)

func TestNewCurrency(t *testing.T) {
	t.Run("valid code", func(t *testing.T) {
		c, err := money.NewCurrency("GBP")
		require.NoError(t, err)
		assert.Equal(t, "GBP", c.Code())
	})

	t.Run("invalid codes", func(t *testing.T) {
		for _, code := range []string{"", "eur", "EURO", "E1R", "EU"} {
			_, err := money.NewCurrency(code)
			assert.Error(t, err, code)
		}
	})
}

func TestNewFromString(t *testing.T) {
	m, err := money.NewFromString("100.50", "EUR")
	require.NoError(t, err)
	assert.Equal(t, "100.50 EUR", m.String())

	_, err = money.NewFromString("abc", "EUR")
	assert.Error(t, err)

	_, err = money.NewFromString("100.50", "euros")
	assert.Error(t, err)
}

func TestMoney_Arithmetic(t *testing.T) {
	hundred, err := money.NewFromString("100.00", "EUR")
	require.NoError(t, err)
	fifty, err := money.NewFromString("50.00", "EUR")
	require.NoError(t, err)

	t.Run("add", func(t *testing.T) {
		sum, err := hundred.Add(fifty)
		require.NoError(t, err)
		assert.Equal(t, "150.00 EUR", sum.String())
	})

	t.Run("subtract", func(t *testing.T) {
		diff, err := fifty.Subtract(hundred)
		require.NoError(t, err)
		assert.True(t, diff.IsNegative())
		assert.Equal(t, "-50.00 EUR", diff.String())
	})

	t.Run("currency mismatch", func(t *testing.T) {
		dollars := money.New(decimal.NewFromInt(10), money.USD)

		_, err := hundred.Add(dollars)
		assert.ErrorContains(t, err, "currency mismatch")

		_, err = hundred.Subtract(dollars)
		assert.ErrorContains(t, err, "currency mismatch")
	})

	t.Run("multiply and round", func(t *testing.T) {
		m := hundred.Multiply(decimal.RequireFromString("0.333"))
		assert.Equal(t, "33.30 EUR", m.RoundCents().String())
	})
}

func TestMoney_Predicates(t *testing.T) {
	zero := money.Zero(money.EUR)
	assert.True(t, zero.IsZero())
	assert.False(t, zero.IsPositive())

	one := money.New(decimal.NewFromInt(1), money.EUR)
	assert.True(t, one.IsPositive())
	assert.True(t, one.Equal(money.New(decimal.RequireFromString("1.00"), money.EUR)))
	assert.False(t, one.Equal(money.New(decimal.NewFromInt(1), money.USD)))
}
