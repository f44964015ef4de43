package adapter

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"fmt"

	"github.com/banquecore/lending/pkg/money"
)

// StubAccountLedger is a development/test adapter that acknowledges every
// debit with a deterministic receipt derived from the account ID and amount.
// It implements port.AccountLedger.
type StubAccountLedger struct{}

// NewStubAccountLedger creates a new stub adapter.
func NewStubAccountLedger() *StubAccountLedger {
	return &StubAccountLedger{}
}

// Debit returns a repeatable receipt so test scenarios can assert on it.
// The real core-banking ledger sits behind this port in production.
func (l *StubAccountLedger) Debit(_ context.Context, accountID string, amount money.Money) (string, error) {
	if accountID == "" {
		return "", fmt.Errorf("account ID is required")
	}
	if !amount.IsPositive() {
		return "", fmt.Errorf("debit amount must be positive, got %s", amount)
	}

	h := sha256.Sum256([]byte(accountID + amount.String()))
	num := binary.BigEndian.Uint64(h[:8])

	return fmt.Sprintf("DBT%016X", num), nil
}
