package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/banquecore/lending/internal/domain/valueobject"
)

// Repayment is an immutable record of one payment applied against an
// installment. Corrections are new repayments, never edits.
type Repayment struct {
	id                string
	installmentID     string
	accountID         string
	amount            decimal.Decimal
	penaltyPortion    decimal.Decimal
	paymentType       valueobject.PaymentType
	paidAt            time.Time
	externalReference string
}

// NewRepayment creates a repayment record. Identity and timestamp are
// assigned explicitly by the caller, not by the persistence layer.
func NewRepayment(
	id, installmentID, accountID string,
	amount, penaltyPortion decimal.Decimal,
	paymentType valueobject.PaymentType,
	paidAt time.Time,
	externalReference string,
) (Repayment, error) {
	if installmentID == "" {
		return Repayment{}, fmt.Errorf("%w: installment id is required", valueobject.ErrInvalidParameter)
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return Repayment{}, fmt.Errorf("%w: amount must be positive, got %s", valueobject.ErrInvalidParameter, amount)
	}
	if penaltyPortion.IsNegative() {
		return Repayment{}, fmt.Errorf("%w: penalty portion must not be negative, got %s", valueobject.ErrInvalidParameter, penaltyPortion)
	}
	if paymentType.IsZero() {
		return Repayment{}, fmt.Errorf("%w: payment type is required", valueobject.ErrInvalidParameter)
	}
	return Repayment{
		id:                id,
		installmentID:     installmentID,
		accountID:         accountID,
		amount:            amount,
		penaltyPortion:    penaltyPortion,
		paymentType:       paymentType,
		paidAt:            paidAt,
		externalReference: externalReference,
	}, nil
}

// ReconstructRepayment rebuilds a repayment from persistence.
func ReconstructRepayment(
	id, installmentID, accountID string,
	amount, penaltyPortion decimal.Decimal,
	paymentType valueobject.PaymentType,
	paidAt time.Time,
	externalReference string,
) Repayment {
	return Repayment{
		id:                id,
		installmentID:     installmentID,
		accountID:         accountID,
		amount:            amount,
		penaltyPortion:    penaltyPortion,
		paymentType:       paymentType,
		paidAt:            paidAt,
		externalReference: externalReference,
	}
}

func (r Repayment) ID() string                           { return r.id }
func (r Repayment) InstallmentID() string                { return r.installmentID }
func (r Repayment) AccountID() string                    { return r.accountID }
func (r Repayment) Amount() decimal.Decimal              { return r.amount }
func (r Repayment) PenaltyPortion() decimal.Decimal      { return r.penaltyPortion }
func (r Repayment) PaymentType() valueobject.PaymentType { return r.paymentType }
func (r Repayment) PaidAt() time.Time                    { return r.paidAt }
func (r Repayment) ExternalReference() string            { return r.externalReference }
