package service

import (
	"github.com/shopspring/decimal"

	"github.com/banquecore/lending/internal/domain/model"
)

// PenaltyBasis selects how the penalty rate of a loan type is interpreted.
// The per-unit basis is not settled product-side; both readings are kept
// behind this switch so the choice stays a configuration decision.
type PenaltyBasis string

const (
	// PenaltyBasisPerDay charges rate x scheduled amount for every day past
	// the tolerance window.
	PenaltyBasisPerDay PenaltyBasis = "PER_DAY"
	// PenaltyBasisFlat charges rate x scheduled amount once, regardless of
	// how late the payment is.
	PenaltyBasisFlat PenaltyBasis = "FLAT"
)

// PenaltyPolicy computes the late-payment penalty owed on an installment.
// It is injected by configuration; the formula lives nowhere else.
type PenaltyPolicy interface {
	ComputePenalty(scheduledAmount decimal.Decimal, daysLate int, params model.LoanTypeParameters) decimal.Decimal
}

// LatePenaltyPolicy is the standard penalty implementation, parameterised by
// the loan type (rate, tolerance days, optional min/max clamp) and the
// configured basis.
type LatePenaltyPolicy struct {
	basis PenaltyBasis
}

// NewLatePenaltyPolicy creates the policy for the given basis. An empty basis
// defaults to per-day.
func NewLatePenaltyPolicy(basis PenaltyBasis) *LatePenaltyPolicy {
	if basis == "" {
		basis = PenaltyBasisPerDay
	}
	return &LatePenaltyPolicy{basis: basis}
}

// Basis returns the configured penalty basis.
func (p *LatePenaltyPolicy) Basis() PenaltyBasis { return p.basis }

// ComputePenalty applies the late-payment formula: zero inside the tolerance
// window, otherwise scheduledAmount x penaltyRate (x days beyond tolerance on
// the per-day basis), rounded half-up to two decimals and clamped to the loan
// type's [min, max] penalty bounds when those are configured.
func (p *LatePenaltyPolicy) ComputePenalty(scheduledAmount decimal.Decimal, daysLate int, params model.LoanTypeParameters) decimal.Decimal {
	if daysLate <= params.ToleranceDays {
		return decimal.Zero
	}

	penalty := scheduledAmount.Mul(params.PenaltyRate)
	if p.basis == PenaltyBasisPerDay {
		chargeable := daysLate - params.ToleranceDays
		penalty = penalty.Mul(decimal.NewFromInt(int64(chargeable)))
	}
	penalty = penalty.Round(2)

	if params.MinPenalty.IsPositive() && penalty.LessThan(params.MinPenalty) {
		penalty = params.MinPenalty
	}
	if params.MaxPenalty.IsPositive() && penalty.GreaterThan(params.MaxPenalty) {
		penalty = params.MaxPenalty
	}
	return penalty
}
