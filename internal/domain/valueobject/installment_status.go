package valueobject

import "fmt"

// ---------------------------------------------------------------------------
// InstallmentStatus – immutable value object
// ---------------------------------------------------------------------------

// InstallmentStatus represents the payment lifecycle stage of a single
// installment. Valid transitions are SCHEDULED -> OVERDUE -> PAID and
// SCHEDULED -> PAID; nothing leaves PAID.
type InstallmentStatus struct {
	value string
}

const (
	installmentStatusScheduled = "SCHEDULED"
	installmentStatusOverdue   = "OVERDUE"
	installmentStatusPaid      = "PAID"
)

var (
	InstallmentStatusScheduled = InstallmentStatus{value: installmentStatusScheduled}
	InstallmentStatusOverdue   = InstallmentStatus{value: installmentStatusOverdue}
	InstallmentStatusPaid      = InstallmentStatus{value: installmentStatusPaid}
)

var validInstallmentStatuses = map[string]InstallmentStatus{
	installmentStatusScheduled: InstallmentStatusScheduled,
	installmentStatusOverdue:   InstallmentStatusOverdue,
	installmentStatusPaid:      InstallmentStatusPaid,
}

// NewInstallmentStatus creates an InstallmentStatus from a raw string.
func NewInstallmentStatus(s string) (InstallmentStatus, error) {
	v, ok := validInstallmentStatuses[s]
	if !ok {
		return InstallmentStatus{}, fmt.Errorf("%w: invalid installment status %q", ErrInvalidParameter, s)
	}
	return v, nil
}

// String returns the string representation of the status.
func (s InstallmentStatus) String() string { return s.value }

// IsZero returns true if the status has not been initialised.
func (s InstallmentStatus) IsZero() bool { return s.value == "" }

// Equal returns true when both statuses carry the same value.
func (s InstallmentStatus) Equal(other InstallmentStatus) bool { return s.value == other.value }
