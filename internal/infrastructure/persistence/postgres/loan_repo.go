package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/banquecore/lending/internal/domain/model"
	"github.com/banquecore/lending/internal/domain/valueobject"
	pgutil "github.com/banquecore/lending/pkg/postgres"
)

// ErrVersionConflict signals a concurrent writer updated the loan first.
var ErrVersionConflict = errors.New("optimistic locking conflict on loan")

const loanColumns = `
	id, loan_number, client_id, loan_type_id,
	requested_principal, approved_principal, duration_months,
	annual_rate_percent, monthly_payment, total_due, total_penalties,
	request_date, approval_date, first_due_date, last_due_date,
	status, rejection_reason, version, created_at, updated_at
`

// LoanRepo implements port.LoanRepository.
type LoanRepo struct {
	pool *pgxpool.Pool
}

// NewLoanRepo creates a new PostgreSQL-backed loan repository.
func NewLoanRepo(pool *pgxpool.Pool) *LoanRepo {
	return &LoanRepo{pool: pool}
}

// Save persists a loan and its installments in one transaction, guarded by
// the loan's version column.
func (r *LoanRepo) Save(ctx context.Context, loan model.Loan) error {
	return pgutil.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		return upsertLoan(ctx, tx, loan)
	})
}

// SaveWithRepayment persists the loan, its installments and the repayment
// record in a single transaction. A failure on any statement rolls back the
// whole unit of work, so a PAID installment without its repayment record can
// never become visible.
func (r *LoanRepo) SaveWithRepayment(ctx context.Context, loan model.Loan, repayment model.Repayment) error {
	return pgutil.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		if err := upsertLoan(ctx, tx, loan); err != nil {
			return err
		}
		return insertRepayment(ctx, tx, repayment)
	})
}

func upsertLoan(ctx context.Context, tx pgx.Tx, loan model.Loan) error {
	loanQuery := `
		INSERT INTO loans (` + loanColumns + `)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20)
		ON CONFLICT (id) DO UPDATE SET
			approved_principal = EXCLUDED.approved_principal,
			monthly_payment    = EXCLUDED.monthly_payment,
			total_due          = EXCLUDED.total_due,
			total_penalties    = EXCLUDED.total_penalties,
			approval_date      = EXCLUDED.approval_date,
			first_due_date     = EXCLUDED.first_due_date,
			last_due_date      = EXCLUDED.last_due_date,
			status             = EXCLUDED.status,
			rejection_reason   = EXCLUDED.rejection_reason,
			version            = loans.version + 1,
			updated_at         = EXCLUDED.updated_at
		WHERE loans.version = $18
	`
	tag, err := tx.Exec(ctx, loanQuery,
		loan.ID(), loan.LoanNumber(), loan.ClientID(), loan.LoanTypeID(),
		loan.RequestedPrincipal(), loan.ApprovedPrincipal(), loan.DurationMonths(),
		loan.AnnualRatePercent(), loan.MonthlyPayment(), loan.TotalDue(), loan.TotalPenalties(),
		loan.RequestDate(), nullTime(loan.ApprovalDate()), nullTime(loan.FirstDueDate()), nullTime(loan.LastDueDate()),
		loan.Status().String(), nullString(loan.RejectionReason()),
		loan.Version(), loan.CreatedAt(), loan.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("save loan: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrVersionConflict
	}

	for _, inst := range loan.Installments() {
		instQuery := `
			INSERT INTO installments (
				id, loan_id, sequence, total_amount, capital, interest,
				remaining_capital, due_date, payment_date, status,
				applied_penalty, days_late, penalty_computed_at, paid_total
			) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
			ON CONFLICT (id) DO UPDATE SET
				payment_date        = EXCLUDED.payment_date,
				status              = EXCLUDED.status,
				applied_penalty     = EXCLUDED.applied_penalty,
				days_late           = EXCLUDED.days_late,
				penalty_computed_at = EXCLUDED.penalty_computed_at,
				paid_total          = EXCLUDED.paid_total
		`
		_, err := tx.Exec(ctx, instQuery,
			inst.ID(), inst.LoanID(), inst.Sequence(),
			inst.TotalAmount(), inst.Capital(), inst.Interest(),
			inst.RemainingCapital(), inst.DueDate(), nullTime(inst.PaymentDate()),
			inst.Status().String(), inst.AppliedPenalty(), inst.DaysLateRecorded(),
			nullTime(inst.PenaltyComputedAt()), inst.PaidTotal(),
		)
		if err != nil {
			return fmt.Errorf("save installment %d: %w", inst.Sequence(), err)
		}
	}

	return nil
}

// FindByID retrieves a loan and its installments by ID.
func (r *LoanRepo) FindByID(ctx context.Context, id string) (model.Loan, error) {
	query := `SELECT ` + loanColumns + ` FROM loans WHERE id = $1`
	return r.findOne(ctx, r.pool, query, id)
}

// FindByInstallmentID retrieves the loan owning the given installment.
func (r *LoanRepo) FindByInstallmentID(ctx context.Context, installmentID string) (model.Loan, error) {
	query := `
		SELECT ` + loanColumns + `
		FROM loans
		WHERE id = (SELECT loan_id FROM installments WHERE id = $1)
	`
	return r.findOne(ctx, r.pool, query, installmentID)
}

// FindByClientID retrieves all loans of a client, newest first.
func (r *LoanRepo) FindByClientID(ctx context.Context, clientID string) ([]model.Loan, error) {
	query := `SELECT ` + loanColumns + ` FROM loans WHERE client_id = $1 ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query, clientID)
	if err != nil {
		return nil, fmt.Errorf("query loans: %w", err)
	}
	defer rows.Close()

	var loans []model.Loan
	for rows.Next() {
		loan, err := scanLoanRow(rows)
		if err != nil {
			return nil, err
		}
		loans = append(loans, loan)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i, loan := range loans {
		installments, err := r.loadInstallments(ctx, r.pool, loan.ID())
		if err != nil {
			return nil, err
		}
		loans[i] = withInstallments(loan, installments)
	}
	return loans, nil
}

// ---------------------------------------------------------------------------
// internal helpers
// ---------------------------------------------------------------------------

func (r *LoanRepo) findOne(ctx context.Context, q pgutil.Querier, query string, arg any) (model.Loan, error) {
	loan, err := scanLoanRow(q.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Loan{}, fmt.Errorf("%w: loan", valueobject.ErrNotFound)
		}
		return model.Loan{}, err
	}

	installments, err := r.loadInstallments(ctx, q, loan.ID())
	if err != nil {
		return model.Loan{}, err
	}
	return withInstallments(loan, installments), nil
}

func scanLoanRow(row pgx.Row) (model.Loan, error) {
	var (
		id, loanNumber, clientID, loanTypeID           string
		requestedPrincipal, approvedPrincipal          decimal.Decimal
		durationMonths                                 int
		annualRate, monthlyPayment, totalDue, totalPen decimal.Decimal
		requestDate                                    time.Time
		approvalDate, firstDueDate, lastDueDate        *time.Time
		statusStr                                      string
		rejectionReason                                *string
		version                                        int
		createdAt, updatedAt                           time.Time
	)

	err := row.Scan(
		&id, &loanNumber, &clientID, &loanTypeID,
		&requestedPrincipal, &approvedPrincipal, &durationMonths,
		&annualRate, &monthlyPayment, &totalDue, &totalPen,
		&requestDate, &approvalDate, &firstDueDate, &lastDueDate,
		&statusStr, &rejectionReason, &version, &createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Loan{}, err
		}
		return model.Loan{}, fmt.Errorf("scan loan: %w", err)
	}

	status, err := valueobject.NewLoanStatus(statusStr)
	if err != nil {
		return model.Loan{}, fmt.Errorf("parse loan status: %w", err)
	}

	return model.ReconstructLoan(
		id, loanNumber, clientID, loanTypeID,
		requestedPrincipal, approvedPrincipal,
		durationMonths,
		annualRate, monthlyPayment, totalDue, totalPen,
		requestDate, derefTime(approvalDate), derefTime(firstDueDate), derefTime(lastDueDate),
		status,
		derefString(rejectionReason),
		nil,
		version, createdAt, updatedAt,
	), nil
}

func (r *LoanRepo) loadInstallments(ctx context.Context, q pgutil.Querier, loanID string) ([]model.Installment, error) {
	query := `
		SELECT id, loan_id, sequence, total_amount, capital, interest,
		       remaining_capital, due_date, payment_date, status,
		       applied_penalty, days_late, penalty_computed_at, paid_total
		FROM installments
		WHERE loan_id = $1
		ORDER BY sequence
	`
	rows, err := q.Query(ctx, query, loanID)
	if err != nil {
		return nil, fmt.Errorf("query installments: %w", err)
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

func scanInstallmentRow(row pgx.Row) (model.Installment, error) {
	var (
		id, loanID                      string
		sequence                        int
		total, capital, interest, rem   decimal.Decimal
		dueDate                         time.Time
		paymentDate, penaltyComputedAt  *time.Time
		statusStr                       string
		appliedPenalty, paidTotal       decimal.Decimal
		daysLate                        int
	)

	err := row.Scan(
		&id, &loanID, &sequence, &total, &capital, &interest,
		&rem, &dueDate, &paymentDate, &statusStr,
		&appliedPenalty, &daysLate, &penaltyComputedAt, &paidTotal,
	)
	if err != nil {
		return model.Installment{}, fmt.Errorf("scan installment: %w", err)
	}

	status, err := valueobject.NewInstallmentStatus(statusStr)
	if err != nil {
		return model.Installment{}, fmt.Errorf("parse installment status: %w", err)
	}

	return model.ReconstructInstallment(
		id, loanID, sequence,
		total, capital, interest, rem,
		dueDate, derefTime(paymentDate),
		status,
		appliedPenalty, daysLate, derefTime(penaltyComputedAt),
		paidTotal,
	), nil
}
