package model

import (
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/banquecore/lending/internal/domain/valueobject"
)

// ratePrecision is the number of fractional digits kept when deriving the
// monthly rate from the annual percentage. Ten digits keep the final rounded
// cent value stable across platforms.
const ratePrecision = 10

var (
	one     = decimal.NewFromInt(1)
	twelve  = decimal.NewFromInt(12)
	hundred = decimal.NewFromInt(100)
)

// ScheduleEntry is an immutable value object representing one period of an
// amortization schedule before it is committed as an Installment.
type ScheduleEntry struct {
	DueDate          time.Time
	Total            decimal.Decimal
	Capital          decimal.Decimal
	Interest         decimal.Decimal
	RemainingCapital decimal.Decimal
	Sequence         int
}

// MonthlyRate converts an annual percentage rate into a monthly decimal rate
// at high internal precision (e.g. 6.00 -> 0.005).
func MonthlyRate(annualRatePercent decimal.Decimal) decimal.Decimal {
	return annualRatePercent.
		DivRound(twelve, ratePrecision).
		DivRound(hundred, ratePrecision)
}

// ComputeMonthlyPayment derives the fixed monthly payment for a loan using
// the annuity formula
//
//	payment = P * r / (1 - (1+r)^-n)
//
// where r is the monthly rate and n the number of months. A zero rate splits
// the principal evenly. The result is rounded half-up to two decimal places.
// The exponentiation runs in float64, but the final figure is re-derived from
// the decimal inputs so the rounded cent value is reproducible.
func ComputeMonthlyPayment(principal, annualRatePercent decimal.Decimal, months int) (decimal.Decimal, error) {
	if principal.LessThanOrEqual(decimal.Zero) {
		return decimal.Decimal{}, fmt.Errorf("%w: principal must be positive, got %s", valueobject.ErrInvalidParameter, principal)
	}
	if annualRatePercent.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("%w: annual rate must not be negative, got %s", valueobject.ErrInvalidParameter, annualRatePercent)
	}
	if months < 1 {
		return decimal.Decimal{}, fmt.Errorf("%w: months must be at least 1, got %d", valueobject.ErrInvalidParameter, months)
	}

	rate := MonthlyRate(annualRatePercent)
	if rate.IsZero() {
		return principal.DivRound(decimal.NewFromInt(int64(months)), 2), nil
	}

	// (1+r)^-n is the only quantity computed in float64.
	power := math.Pow(one.Add(rate).InexactFloat64(), -float64(months))
	denominator := one.Sub(decimal.NewFromFloat(power))

	return principal.Mul(rate).DivRound(denominator, 2), nil
}

// GenerateSchedule produces the full amortization schedule for a loan: one
// entry per month, each carrying the exact capital/interest decomposition.
//
// The last entry absorbs the cumulative rounding drift: its capital portion
// is forced to the exact remaining capital and its total amount recomputed,
// so the sum of capital portions always equals the principal. A remaining
// capital other than exactly zero after the last period is a logic defect
// and surfaces as ErrArithmeticInconsistency.
//
// The function is pure: no I/O, no side effects, identical inputs always
// yield an identical schedule. It is safe to call concurrently.
func GenerateSchedule(principal, annualRatePercent decimal.Decimal, months int, firstDueDate time.Time) ([]ScheduleEntry, error) {
	payment, err := ComputeMonthlyPayment(principal, annualRatePercent, months)
	if err != nil {
		return nil, err
	}

	rate := MonthlyRate(annualRatePercent)
	remaining := principal
	schedule := make([]ScheduleEntry, 0, months)

	for seq := 1; seq <= months; seq++ {
		interest := remaining.Mul(rate).Round(2)
		capital := payment.Sub(interest)
		total := payment

		// Last period: force capital to the exact remaining balance so the
		// schedule reconciles to the principal despite per-period rounding.
		if seq == months {
			capital = remaining
			total = capital.Add(interest)
		}

		remaining = remaining.Sub(capital)

		schedule = append(schedule, ScheduleEntry{
			Sequence:         seq,
			DueDate:          AddMonthsClamped(firstDueDate, seq-1),
			Total:            total,
			Capital:          capital,
			Interest:         interest,
			RemainingCapital: remaining,
		})
	}

	if !remaining.IsZero() {
		return nil, fmt.Errorf("%w: remaining capital %s after final period", valueobject.ErrArithmeticInconsistency, remaining)
	}

	return schedule, nil
}

// ComputeTotalDue returns the total amount owed over the life of the loan,
// payment x months rounded half-up to two decimal places.
func ComputeTotalDue(payment decimal.Decimal, months int) decimal.Decimal {
	return payment.Mul(decimal.NewFromInt(int64(months))).Round(2)
}

// ComputeTotalCost returns the total cost of credit: total due minus the
// borrowed principal, plus the origination fee.
func ComputeTotalCost(totalDue, principal, fee decimal.Decimal) decimal.Decimal {
	return totalDue.Sub(principal).Add(fee)
}

// ComputeTotalInterest sums the interest portions of a schedule.
func ComputeTotalInterest(schedule []ScheduleEntry) decimal.Decimal {
	total := decimal.Zero
	for _, entry := range schedule {
		total = total.Add(entry.Interest)
	}
	return total
}

// AddMonthsClamped advances t by the given number of calendar months,
// preserving the day of month and clamping to the last day when the target
// month is shorter (Jan 31 + 1 month -> Feb 28/29).
func AddMonthsClamped(t time.Time, months int) time.Time {
	firstOfTarget := time.Date(t.Year(), t.Month()+time.Month(months), 1,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())

	day := t.Day()
	if last := daysIn(firstOfTarget); day > last {
		day = last
	}
	return firstOfTarget.AddDate(0, 0, day-1)
}

func daysIn(firstOfMonth time.Time) int {
	return firstOfMonth.AddDate(0, 1, -1).Day()
}
