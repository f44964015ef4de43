package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/banquecore/lending/internal/domain/model"
	"github.com/banquecore/lending/internal/domain/valueobject"
	pgutil "github.com/banquecore/lending/pkg/postgres"
)

// RepaymentRepo implements port.RepaymentRepository. Repayments are
// append-only; there is no update path.
type RepaymentRepo struct {
	pool *pgxpool.Pool
}

// NewRepaymentRepo creates a new PostgreSQL-backed repayment repository.
func NewRepaymentRepo(pool *pgxpool.Pool) *RepaymentRepo {
	return &RepaymentRepo{pool: pool}
}

// Save inserts an immutable repayment record.
func (r *RepaymentRepo) Save(ctx context.Context, repayment model.Repayment) error {
	return insertRepayment(ctx, r.pool, repayment)
}

// insertRepayment runs against either a pool or an open transaction, so the
// loan repository can commit a repayment record alongside the loan state.
func insertRepayment(ctx context.Context, q pgutil.Querier, repayment model.Repayment) error {
	query := `
		INSERT INTO repayments (
			id, installment_id, account_id, amount, penalty_portion,
			payment_type, paid_at, external_reference
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`
	_, err := q.Exec(ctx, query,
		repayment.ID(), repayment.InstallmentID(), repayment.AccountID(),
		repayment.Amount(), repayment.PenaltyPortion(),
		repayment.PaymentType().String(), repayment.PaidAt(),
		nullString(repayment.ExternalReference()),
	)
	if err != nil {
		return fmt.Errorf("save repayment: %w", err)
	}
	return nil
}

// FindByInstallmentID returns the repayments recorded against one
// installment, oldest first.
func (r *RepaymentRepo) FindByInstallmentID(ctx context.Context, installmentID string) ([]model.Repayment, error) {
	query := `
		SELECT id, installment_id, account_id, amount, penalty_portion,
		       payment_type, paid_at, external_reference
		FROM repayments
		WHERE installment_id = $1
		ORDER BY paid_at
	`
	rows, err := r.pool.Query(ctx, query, installmentID)
	if err != nil {
		return nil, fmt.Errorf("query repayments: %w", err)
	}
	defer rows.Close()

	var repayments []model.Repayment
	for rows.Next() {
		var (
			id, installID, accountID string
			amount, penaltyPortion   decimal.Decimal
			paymentTypeStr           string
			paidAt                   time.Time
			externalRef              *string
		)
		if err := rows.Scan(&id, &installID, &accountID, &amount, &penaltyPortion,
			&paymentTypeStr, &paidAt, &externalRef); err != nil {
			return nil, fmt.Errorf("scan repayment: %w", err)
		}

		paymentType, err := valueobject.NewPaymentType(paymentTypeStr)
		if err != nil {
			return nil, fmt.Errorf("parse payment type: %w", err)
		}

		repayments = append(repayments, model.ReconstructRepayment(
			id, installID, accountID, amount, penaltyPortion,
			paymentType, paidAt, derefString(externalRef),
		))
	}
	return repayments, rows.Err()
}
