package port

import (
	"context"
	"time"

	"github.com/banquecore/lending/internal/domain/event"
	"github.com/banquecore/lending/internal/domain/model"
	"github.com/banquecore/lending/pkg/money"
)

// ---------------------------------------------------------------------------
// Repository ports (driven/secondary adapters)
// ---------------------------------------------------------------------------

// LoanTypeCatalog supplies the read-only loan product parameters.
type LoanTypeCatalog interface {
	GetLoanTypeParameters(ctx context.Context, typeID string) (model.LoanTypeParameters, error)
}

// LoanRepository persists and retrieves loan aggregates together with their
// installments. SaveWithRepayment commits the loan and the repayment record
// in one unit of work: either both land or neither does.
type LoanRepository interface {
	Save(ctx context.Context, loan model.Loan) error
	SaveWithRepayment(ctx context.Context, loan model.Loan, repayment model.Repayment) error
	FindByID(ctx context.Context, id string) (model.Loan, error)
	FindByInstallmentID(ctx context.Context, installmentID string) (model.Loan, error)
	FindByClientID(ctx context.Context, clientID string) ([]model.Loan, error)
}

// InstallmentRepository serves cross-loan installment queries.
type InstallmentRepository interface {
	FindUnpaidDueBefore(ctx context.Context, asOf time.Time) ([]model.Installment, error)
	Save(ctx context.Context, installment model.Installment) error
}

// RepaymentRepository persists immutable repayment records.
type RepaymentRepository interface {
	Save(ctx context.Context, repayment model.Repayment) error
	FindByInstallmentID(ctx context.Context, installmentID string) ([]model.Repayment, error)
}

// ---------------------------------------------------------------------------
// Event publisher port
// ---------------------------------------------------------------------------

// EventPublisher publishes domain events to external consumers.
type EventPublisher interface {
	Publish(ctx context.Context, events ...event.DomainEvent) error
}

// ---------------------------------------------------------------------------
// External service ports
// ---------------------------------------------------------------------------

// AccountLedger debits the paying account. Invoked by the orchestrator
// wrapping the repayment use case, never by the domain model itself.
type AccountLedger interface {
	Debit(ctx context.Context, accountID string, amount money.Money) (receipt string, err error)
}
