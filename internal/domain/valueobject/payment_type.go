package valueobject

import "fmt"

// ---------------------------------------------------------------------------
// PaymentType – immutable value object
// ---------------------------------------------------------------------------

// PaymentType identifies the channel a repayment arrived through.
type PaymentType struct {
	value string
}

const (
	paymentTypeCash     = "CASH"
	paymentTypeTransfer = "TRANSFER"
	paymentTypeCard     = "CARD"
)

var (
	PaymentTypeCash     = PaymentType{value: paymentTypeCash}
	PaymentTypeTransfer = PaymentType{value: paymentTypeTransfer}
	PaymentTypeCard     = PaymentType{value: paymentTypeCard}
)

var validPaymentTypes = map[string]PaymentType{
	paymentTypeCash:     PaymentTypeCash,
	paymentTypeTransfer: PaymentTypeTransfer,
	paymentTypeCard:     PaymentTypeCard,
}

// NewPaymentType creates a PaymentType from a raw string.
func NewPaymentType(s string) (PaymentType, error) {
	v, ok := validPaymentTypes[s]
	if !ok {
		return PaymentType{}, fmt.Errorf("%w: invalid payment type %q", ErrInvalidParameter, s)
	}
	return v, nil
}

// String returns the string representation of the payment type.
func (t PaymentType) String() string { return t.value }

// IsZero returns true if the payment type has not been initialised.
func (t PaymentType) IsZero() bool { return t.value == "" }

// Equal returns true when both payment types carry the same value.
func (t PaymentType) Equal(other PaymentType) bool { return t.value == other.value }
