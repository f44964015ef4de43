package model_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banquecore/lending/internal/domain/model"
	"github.com/banquecore/lending/internal/domain/valueobject"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestComputeMonthlyPayment(t *testing.T) {
	t.Run("standard annuity", func(t *testing.T) {
		// 120000.00 at 6.00% over 12 months.
		payment, err := model.ComputeMonthlyPayment(d("120000.00"), d("6.00"), 12)

		require.NoError(t, err)
		assert.Equal(t, "10327.97", payment.StringFixed(2))
	})

	t.Run("zero rate splits principal evenly", func(t *testing.T) {
		payment, err := model.ComputeMonthlyPayment(d("12000.00"), decimal.Zero, 12)

		require.NoError(t, err)
		assert.True(t, payment.Equal(d("1000.00")), "got %s", payment)
	})

	t.Run("zero rate rounds half up", func(t *testing.T) {
		payment, err := model.ComputeMonthlyPayment(d("100.00"), decimal.Zero, 3)

		require.NoError(t, err)
		assert.Equal(t, "33.33", payment.StringFixed(2))
	})

	t.Run("invalid inputs", func(t *testing.T) {
		_, err := model.ComputeMonthlyPayment(decimal.Zero, d("6.00"), 12)
		assert.ErrorIs(t, err, valueobject.ErrInvalidParameter)

		_, err = model.ComputeMonthlyPayment(d("-1000"), d("6.00"), 12)
		assert.ErrorIs(t, err, valueobject.ErrInvalidParameter)

		_, err = model.ComputeMonthlyPayment(d("1000"), d("-1.00"), 12)
		assert.ErrorIs(t, err, valueobject.ErrInvalidParameter)

		_, err = model.ComputeMonthlyPayment(d("1000"), d("6.00"), 0)
		assert.ErrorIs(t, err, valueobject.ErrInvalidParameter)
	})
}

func TestGenerateSchedule(t *testing.T) {
	principal := d("120000.00")
	rate := d("6.00")
	firstDue := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	schedule, err := model.GenerateSchedule(principal, rate, 12, firstDue)
	require.NoError(t, err)
	require.Len(t, schedule, 12)

	t.Run("sequences are contiguous from 1", func(t *testing.T) {
		for i, entry := range schedule {
			assert.Equal(t, i+1, entry.Sequence)
		}
	})

	t.Run("due dates advance one calendar month", func(t *testing.T) {
		for i, entry := range schedule {
			expected := time.Date(2024, time.Month(1+i), 15, 0, 0, 0, 0, time.UTC)
			assert.Equal(t, expected, entry.DueDate, "entry %d", i+1)
		}
	})

	t.Run("capital portions reconcile to principal exactly", func(t *testing.T) {
		total := decimal.Zero
		for _, entry := range schedule {
			total = total.Add(entry.Capital)
		}
		assert.True(t, total.Equal(principal), "sum of capital %s != principal %s", total, principal)
	})

	t.Run("final remaining capital is exactly zero", func(t *testing.T) {
		last := schedule[len(schedule)-1]
		assert.True(t, last.RemainingCapital.IsZero(), "got %s", last.RemainingCapital)
	})

	t.Run("last total equals its capital plus interest", func(t *testing.T) {
		last := schedule[len(schedule)-1]
		assert.True(t, last.Total.Equal(last.Capital.Add(last.Interest)))
	})

	t.Run("remaining capital decreases strictly", func(t *testing.T) {
		prev := principal
		for _, entry := range schedule {
			assert.True(t, entry.RemainingCapital.LessThan(prev))
			prev = entry.RemainingCapital
		}
	})
}

func TestGenerateSchedule_Deterministic(t *testing.T) {
	firstDue := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	a, err := model.GenerateSchedule(d("50000.00"), d("4.75"), 48, firstDue)
	require.NoError(t, err)
	b, err := model.GenerateSchedule(d("50000.00"), d("4.75"), 48, firstDue)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestGenerateSchedule_SingleMonth(t *testing.T) {
	principal := d("5000.00")
	schedule, err := model.GenerateSchedule(principal, d("6.00"), 1,
		time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	require.Len(t, schedule, 1)
	assert.True(t, schedule[0].Capital.Equal(principal))
	assert.True(t, schedule[0].RemainingCapital.IsZero())
}

func TestGenerateSchedule_ZeroRate(t *testing.T) {
	schedule, err := model.GenerateSchedule(d("12000.00"), decimal.Zero, 12,
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	require.Len(t, schedule, 12)
	for _, entry := range schedule {
		assert.True(t, entry.Interest.IsZero(), "interest should be zero at 0%% rate")
		assert.True(t, entry.Capital.Equal(d("1000.00")), "got %s", entry.Capital)
	}
}

func TestGenerateSchedule_MonthEndClamping(t *testing.T) {
	// First due on Jan 31: shorter months clamp to their last day.
	schedule, err := model.GenerateSchedule(d("10000.00"), d("5.00"), 4,
		time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, schedule, 4)

	assert.Equal(t, time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), schedule[0].DueDate)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), schedule[1].DueDate)
	assert.Equal(t, time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC), schedule[2].DueDate)
	assert.Equal(t, time.Date(2024, 4, 30, 0, 0, 0, 0, time.UTC), schedule[3].DueDate)
}

func TestAddMonthsClamped(t *testing.T) {
	tests := []struct {
		name     string
		start    time.Time
		months   int
		expected time.Time
	}{
		{
			name:     "plain month",
			start:    time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			months:   1,
			expected: time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "clamps to leap February",
			start:    time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
			months:   1,
			expected: time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "clamps to non-leap February",
			start:    time.Date(2023, 1, 31, 0, 0, 0, 0, time.UTC),
			months:   1,
			expected: time.Date(2023, 2, 28, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "crosses year boundary",
			start:    time.Date(2024, 11, 30, 0, 0, 0, 0, time.UTC),
			months:   3,
			expected: time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "day of month preserved over long range",
			start:    time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			months:   13,
			expected: time.Date(2025, 2, 15, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, model.AddMonthsClamped(tt.start, tt.months))
		})
	}
}

func TestComputeTotals(t *testing.T) {
	payment := d("1000.00")
	totalDue := model.ComputeTotalDue(payment, 12)
	assert.True(t, totalDue.Equal(d("12000.00")))

	cost := model.ComputeTotalCost(totalDue, d("11500.00"), d("50.00"))
	assert.True(t, cost.Equal(d("550.00")))

	schedule, err := model.GenerateSchedule(d("120000.00"), d("6.00"), 12,
		time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	interest := model.ComputeTotalInterest(schedule)
	assert.True(t, interest.IsPositive())

	// Interest is the difference between everything paid and the principal.
	paid := decimal.Zero
	for _, entry := range schedule {
		paid = paid.Add(entry.Total)
	}
	assert.True(t, interest.Equal(paid.Sub(d("120000.00"))))
}
