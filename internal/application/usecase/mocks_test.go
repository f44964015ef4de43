package usecase_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/banquecore/lending/internal/domain/event"
	"github.com/banquecore/lending/internal/domain/model"
	"github.com/banquecore/lending/internal/domain/valueobject"
	"github.com/banquecore/lending/pkg/money"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

var applicationDate = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func personalLoanParams() model.LoanTypeParameters {
	return model.LoanTypeParameters{
		ID:                "type-001",
		Code:              "PERSONAL",
		Label:             "Personal loan",
		AnnualRatePercent: d("6.00"),
		MinDurationMonths: 6,
		MaxDurationMonths: 60,
		MinPrincipal:      d("1000.00"),
		MaxPrincipal:      d("200000.00"),
		OriginationFee:    d("50.00"),
		PenaltyRate:       d("0.001"),
		ToleranceDays:     5,
		Active:            true,
	}
}

func zeroRateParams() model.LoanTypeParameters {
	p := personalLoanParams()
	p.AnnualRatePercent = decimal.Zero
	p.MinDurationMonths = 1
	return p
}

func activeLoan(t *testing.T, params model.LoanTypeParameters, principal string, months int) model.Loan {
	t.Helper()
	loan, err := model.NewLoanApplication(
		"loan-001", "LN17041000000001", "client-001",
		params, d(principal), months, applicationDate,
	)
	require.NoError(t, err)

	ids := make([]string, months)
	for i := range ids {
		ids[i] = fmt.Sprintf("inst-%03d", i+1)
	}
	loan, err = loan.Approve(ids, applicationDate)
	require.NoError(t, err)
	return loan.ClearEvents()
}

// memLoanRepo is a mutex-guarded in-memory loan store, safe for concurrent
// use.
type memLoanRepo struct {
	mu         sync.Mutex
	loans      map[string]model.Loan
	saves      int
	saveErr    error
	repayments *memRepaymentRepo
}

func newMemLoanRepo(loans ...model.Loan) *memLoanRepo {
	r := &memLoanRepo{loans: make(map[string]model.Loan)}
	for _, l := range loans {
		r.loans[l.ID()] = l
	}
	return r
}

func (r *memLoanRepo) Save(_ context.Context, loan model.Loan) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.saveErr != nil {
		return r.saveErr
	}
	r.loans[loan.ID()] = loan.ClearEvents()
	r.saves++
	return nil
}

// SaveWithRepayment mimics the transactional contract: when the repayment
// write fails, the loan state stays untouched.
func (r *memLoanRepo) SaveWithRepayment(ctx context.Context, loan model.Loan, repayment model.Repayment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.saveErr != nil {
		return r.saveErr
	}
	if err := r.repayments.Save(ctx, repayment); err != nil {
		return err
	}
	r.loans[loan.ID()] = loan.ClearEvents()
	r.saves++
	return nil
}

func (r *memLoanRepo) FindByID(_ context.Context, id string) (model.Loan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	loan, ok := r.loans[id]
	if !ok {
		return model.Loan{}, fmt.Errorf("%w: loan %s", valueobject.ErrNotFound, id)
	}
	return loan, nil
}

func (r *memLoanRepo) FindByInstallmentID(_ context.Context, installmentID string) (model.Loan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, loan := range r.loans {
		if _, ok := loan.Installment(installmentID); ok {
			return loan, nil
		}
	}
	return model.Loan{}, fmt.Errorf("%w: installment %s", valueobject.ErrNotFound, installmentID)
}

func (r *memLoanRepo) FindByClientID(_ context.Context, clientID string) ([]model.Loan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Loan
	for _, loan := range r.loans {
		if loan.ClientID() == clientID {
			out = append(out, loan)
		}
	}
	return out, nil
}

func (r *memLoanRepo) saveCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.saves
}

func (r *memLoanRepo) get(t *testing.T, id string) model.Loan {
	t.Helper()
	loan, err := r.FindByID(context.Background(), id)
	require.NoError(t, err)
	return loan
}

type memRepaymentRepo struct {
	mu      sync.Mutex
	saved   []model.Repayment
	saveErr error
}

func (r *memRepaymentRepo) Save(_ context.Context, repayment model.Repayment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.saveErr != nil {
		return r.saveErr
	}
	r.saved = append(r.saved, repayment)
	return nil
}

func (r *memRepaymentRepo) FindByInstallmentID(_ context.Context, installmentID string) ([]model.Repayment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Repayment
	for _, rep := range r.saved {
		if rep.InstallmentID() == installmentID {
			out = append(out, rep)
		}
	}
	return out, nil
}

func (r *memRepaymentRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.saved)
}

type mockCatalog struct {
	params map[string]model.LoanTypeParameters
	err    error
}

func newMockCatalog(params ...model.LoanTypeParameters) *mockCatalog {
	c := &mockCatalog{params: make(map[string]model.LoanTypeParameters)}
	for _, p := range params {
		c.params[p.ID] = p
	}
	return c
}

func (c *mockCatalog) GetLoanTypeParameters(_ context.Context, typeID string) (model.LoanTypeParameters, error) {
	if c.err != nil {
		return model.LoanTypeParameters{}, c.err
	}
	p, ok := c.params[typeID]
	if !ok {
		return model.LoanTypeParameters{}, fmt.Errorf("%w: loan type %s", valueobject.ErrNotFound, typeID)
	}
	return p, nil
}

type mockPublisher struct {
	mu     sync.Mutex
	events []event.DomainEvent
	err    error
}

func (p *mockPublisher) Publish(_ context.Context, events ...event.DomainEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, events...)
	return nil
}

func (p *mockPublisher) eventTypes() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	types := make([]string, 0, len(p.events))
	for _, evt := range p.events {
		types = append(types, evt.EventType())
	}
	return types
}

type debit struct {
	accountID string
	amount    money.Money
}

type mockLedger struct {
	mu     sync.Mutex
	debits []debit
	err    error
}

func (l *mockLedger) Debit(_ context.Context, accountID string, amount money.Money) (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.err != nil {
		return "", l.err
	}
	l.debits = append(l.debits, debit{accountID: accountID, amount: amount})
	return fmt.Sprintf("DBT-%04d", len(l.debits)), nil
}

type mockInstallmentRepo struct {
	unpaid  []model.Installment
	findErr error
	saved   []model.Installment
	saveErr error
}

func (r *mockInstallmentRepo) FindUnpaidDueBefore(_ context.Context, _ time.Time) ([]model.Installment, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	return r.unpaid, nil
}

func (r *mockInstallmentRepo) Save(_ context.Context, installment model.Installment) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.saved = append(r.saved, installment)
	return nil
}
