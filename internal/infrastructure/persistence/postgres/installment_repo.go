package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/banquecore/lending/internal/domain/model"
	"github.com/banquecore/lending/internal/domain/valueobject"
)

// InstallmentRepo implements port.InstallmentRepository for cross-loan
// installment queries, used by the overdue sweep.
type InstallmentRepo struct {
	pool *pgxpool.Pool
}

// NewInstallmentRepo creates a new PostgreSQL-backed installment repository.
func NewInstallmentRepo(pool *pgxpool.Pool) *InstallmentRepo {
	return &InstallmentRepo{pool: pool}
}

// FindUnpaidDueBefore returns every installment not yet paid whose due date
// falls strictly before asOf, across all active loans.
func (r *InstallmentRepo) FindUnpaidDueBefore(ctx context.Context, asOf time.Time) ([]model.Installment, error) {
	query := `
		SELECT i.id, i.loan_id, i.sequence, i.total_amount, i.capital, i.interest,
		       i.remaining_capital, i.due_date, i.payment_date, i.status,
		       i.applied_penalty, i.days_late, i.penalty_computed_at, i.paid_total
		FROM installments i
		JOIN loans l ON l.id = i.loan_id
		WHERE i.status <> $1
		  AND i.due_date < $2
		  AND l.status = $3
		ORDER BY i.due_date, i.sequence
	`
	rows, err := r.pool.Query(ctx, query,
		valueobject.InstallmentStatusPaid.String(), asOf,
		valueobject.LoanStatusActive.String(),
	)
	if err != nil {
		return nil, fmt.Errorf("query unpaid installments: %w", err)
	}
	defer rows.Close()

	var installments []model.Installment
	for rows.Next() {
		inst, err := scanInstallmentRow(rows)
		if err != nil {
			return nil, err
		}
		installments = append(installments, inst)
	}
	return installments, rows.Err()
}

// Save updates a single installment row.
func (r *InstallmentRepo) Save(ctx context.Context, inst model.Installment) error {
	query := `
		UPDATE installments SET
			payment_date        = $2,
			status              = $3,
			applied_penalty     = $4,
			days_late           = $5,
			penalty_computed_at = $6,
			paid_total          = $7
		WHERE id = $1
	`
	tag, err := r.pool.Exec(ctx, query,
		inst.ID(), nullTime(inst.PaymentDate()), inst.Status().String(),
		inst.AppliedPenalty(), inst.DaysLateRecorded(),
		nullTime(inst.PenaltyComputedAt()), inst.PaidTotal(),
	)
	if err != nil {
		return fmt.Errorf("save installment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: installment %s", valueobject.ErrNotFound, inst.ID())
	}
	return nil
}
