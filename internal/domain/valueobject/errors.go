package valueobject

import "errors"

// ---------------------------------------------------------------------------
// Sentinel errors
// ---------------------------------------------------------------------------

// Callers match these with errors.Is; use cases wrap them with context via
// fmt.Errorf("...: %w", ...).
var (
	// ErrInvalidParameter signals a nil or non-positive numeric input to a
	// calculation or a malformed request field.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrOutOfBounds signals an amount or duration outside the limits of the
	// loan type.
	ErrOutOfBounds = errors.New("value out of loan type bounds")

	// ErrNotFound signals an unknown loan, installment or repayment id.
	ErrNotFound = errors.New("not found")

	// ErrIllegalStateTransition signals an operation attempted against an
	// entity whose status forbids it, e.g. paying a PAID installment or
	// approving a non-PENDING loan.
	ErrIllegalStateTransition = errors.New("illegal state transition")

	// ErrArithmeticInconsistency signals a schedule that fails to reconcile
	// to its principal. It indicates a logic defect and must abort the
	// operation; it is never retried.
	ErrArithmeticInconsistency = errors.New("arithmetic inconsistency in schedule")
)
