package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/banquecore/lending/internal/domain/model"
	"github.com/banquecore/lending/internal/domain/valueobject"
)

// LoanTypeRepo implements port.LoanTypeCatalog over the loan_types table.
type LoanTypeRepo struct {
	pool *pgxpool.Pool
}

// NewLoanTypeRepo creates a new PostgreSQL-backed loan type catalog.
func NewLoanTypeRepo(pool *pgxpool.Pool) *LoanTypeRepo {
	return &LoanTypeRepo{pool: pool}
}

// GetLoanTypeParameters returns the product parameters for the given type.
// Inactive types are treated as absent.
func (r *LoanTypeRepo) GetLoanTypeParameters(ctx context.Context, typeID string) (model.LoanTypeParameters, error) {
	query := `
		SELECT id, code, label, annual_rate_percent,
		       min_duration_months, max_duration_months,
		       min_principal, max_principal, origination_fee,
		       penalty_rate, tolerance_days, min_penalty, max_penalty,
		       active
		FROM loan_types
		WHERE id = $1 AND active
	`
	var p model.LoanTypeParameters
	err := r.pool.QueryRow(ctx, query, typeID).Scan(
		&p.ID, &p.Code, &p.Label, &p.AnnualRatePercent,
		&p.MinDurationMonths, &p.MaxDurationMonths,
		&p.MinPrincipal, &p.MaxPrincipal, &p.OriginationFee,
		&p.PenaltyRate, &p.ToleranceDays, &p.MinPenalty, &p.MaxPenalty,
		&p.Active,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.LoanTypeParameters{}, fmt.Errorf("%w: loan type %s", valueobject.ErrNotFound, typeID)
		}
		return model.LoanTypeParameters{}, fmt.Errorf("get loan type: %w", err)
	}
	return p, nil
}
