package model

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/banquecore/lending/internal/domain/valueobject"
)

// LoanTypeParameters is catalog data describing one loan product. It is
// read-only to the engine; the catalog collaborator owns it.
type LoanTypeParameters struct {
	ID                string
	Code              string
	Label             string
	AnnualRatePercent decimal.Decimal
	MinDurationMonths int
	MaxDurationMonths int
	MinPrincipal      decimal.Decimal
	MaxPrincipal      decimal.Decimal
	OriginationFee    decimal.Decimal
	PenaltyRate       decimal.Decimal
	ToleranceDays     int
	MinPenalty        decimal.Decimal
	MaxPenalty        decimal.Decimal
	Active            bool
}

// Validate checks the catalog invariant min <= max for duration and principal.
func (p LoanTypeParameters) Validate() error {
	if p.MinDurationMonths > p.MaxDurationMonths {
		return fmt.Errorf("%w: duration bounds inverted (%d > %d)",
			valueobject.ErrInvalidParameter, p.MinDurationMonths, p.MaxDurationMonths)
	}
	if p.MinPrincipal.GreaterThan(p.MaxPrincipal) {
		return fmt.Errorf("%w: principal bounds inverted (%s > %s)",
			valueobject.ErrInvalidParameter, p.MinPrincipal, p.MaxPrincipal)
	}
	return nil
}

// ValidateAmount checks that the requested principal falls inside the
// inclusive [MinPrincipal, MaxPrincipal] range of the loan type.
func (p LoanTypeParameters) ValidateAmount(amount decimal.Decimal) error {
	if amount.LessThan(p.MinPrincipal) || amount.GreaterThan(p.MaxPrincipal) {
		return fmt.Errorf("%w: amount %s must be between %s and %s",
			valueobject.ErrOutOfBounds, amount, p.MinPrincipal, p.MaxPrincipal)
	}
	return nil
}

// ValidateDuration checks that the requested duration falls inside the
// inclusive [MinDurationMonths, MaxDurationMonths] range of the loan type.
func (p LoanTypeParameters) ValidateDuration(months int) error {
	if months < p.MinDurationMonths || months > p.MaxDurationMonths {
		return fmt.Errorf("%w: duration %d months must be between %d and %d",
			valueobject.ErrOutOfBounds, months, p.MinDurationMonths, p.MaxDurationMonths)
	}
	return nil
}
