package grpc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/banquecore/lending/internal/application/dto"
	"github.com/banquecore/lending/internal/application/usecase"
	"github.com/banquecore/lending/internal/domain/valueobject"
	"github.com/banquecore/lending/pkg/observability"
)

// LendingHandler implements LendingServiceServer on top of the use cases.
type LendingHandler struct {
	UnimplementedLendingServiceServer

	simulate    *usecase.SimulateLoanUseCase
	createApp   *usecase.CreateApplicationUseCase
	approve     *usecase.ApproveLoanUseCase
	reject      *usecase.RejectLoanUseCase
	repay       *usecase.RecordRepaymentUseCase
	listOverdue *usecase.ListOverdueUseCase
	getLoan     *usecase.GetLoanUseCase
	clientLoans *usecase.ListClientLoansUseCase
	repayments  *usecase.ListInstallmentRepaymentsUseCase
	metrics     *observability.Metrics
	logger      *slog.Logger
}

// NewLendingHandler creates a new handler with all use-case dependencies.
func NewLendingHandler(
	simulate *usecase.SimulateLoanUseCase,
	createApp *usecase.CreateApplicationUseCase,
	approve *usecase.ApproveLoanUseCase,
	reject *usecase.RejectLoanUseCase,
	repay *usecase.RecordRepaymentUseCase,
	listOverdue *usecase.ListOverdueUseCase,
	getLoan *usecase.GetLoanUseCase,
	clientLoans *usecase.ListClientLoansUseCase,
	repayments *usecase.ListInstallmentRepaymentsUseCase,
	metrics *observability.Metrics,
	logger *slog.Logger,
) *LendingHandler {
	return &LendingHandler{
		simulate:    simulate,
		createApp:   createApp,
		approve:     approve,
		reject:      reject,
		repay:       repay,
		listOverdue: listOverdue,
		getLoan:     getLoan,
		clientLoans: clientLoans,
		repayments:  repayments,
		metrics:     metrics,
		logger:      logger,
	}
}

// SimulateLoan computes a provisional amortization schedule.
func (h *LendingHandler) SimulateLoan(ctx context.Context, req *SimulateLoanRequest) (*SimulateLoanResponse, error) {
	principal, err := parseDecimal(req.Principal, "principal")
	if err != nil {
		return nil, err
	}
	annualRate, err := parseOptionalDecimal(req.AnnualRate, "annual_rate")
	if err != nil {
		return nil, err
	}
	monthlyIncome, err := parseOptionalDecimal(req.MonthlyIncome, "monthly_income")
	if err != nil {
		return nil, err
	}
	firstDue, err := parseOptionalDate(req.FirstDueDate, "first_due_date")
	if err != nil {
		return nil, err
	}

	sim, err := h.simulate.Execute(ctx, dto.SimulateRequest{
		LoanTypeID:    req.LoanTypeID,
		Principal:     principal,
		AnnualRate:    annualRate,
		Months:        req.Months,
		FirstDueDate:  firstDue,
		MonthlyIncome: monthlyIncome,
	})
	if err != nil {
		return nil, toStatus(err)
	}

	h.metrics.SimulationsTotal.Inc()
	return &SimulateLoanResponse{Simulation: sim}, nil
}

// CreateApplication registers a new loan application in PENDING status.
func (h *LendingHandler) CreateApplication(ctx context.Context, req *CreateApplicationRequest) (*CreateApplicationResponse, error) {
	principal, err := parseDecimal(req.RequestedPrincipal, "requested_principal")
	if err != nil {
		return nil, err
	}

	loan, err := h.createApp.Execute(ctx, dto.CreateApplicationRequest{
		ClientID:           req.ClientID,
		LoanTypeID:         req.LoanTypeID,
		RequestedPrincipal: principal,
		Months:             req.Months,
	})
	if err != nil {
		return nil, toStatus(err)
	}

	h.metrics.ApplicationsTotal.Inc()
	h.logger.InfoContext(ctx, "loan application created",
		"loan_id", loan.ID, "loan_number", loan.LoanNumber, "client_id", loan.ClientID)
	return &CreateApplicationResponse{Loan: loan}, nil
}

// ApproveLoan activates a pending loan and commits its installments.
func (h *LendingHandler) ApproveLoan(ctx context.Context, req *ApproveLoanRequest) (*ApproveLoanResponse, error) {
	loan, err := h.approve.Execute(ctx, dto.ApproveLoanRequest{LoanID: req.LoanID})
	if err != nil {
		return nil, toStatus(err)
	}

	h.metrics.ApprovalsTotal.Inc()
	h.logger.InfoContext(ctx, "loan approved", "loan_id", loan.ID, "installments", len(loan.Installments))
	return &ApproveLoanResponse{Loan: loan}, nil
}

// RejectLoan refuses a pending loan application.
func (h *LendingHandler) RejectLoan(ctx context.Context, req *RejectLoanRequest) (*RejectLoanResponse, error) {
	loan, err := h.reject.Execute(ctx, dto.RejectLoanRequest{LoanID: req.LoanID, Reason: req.Reason})
	if err != nil {
		return nil, toStatus(err)
	}

	h.metrics.RejectionsTotal.Inc()
	h.logger.InfoContext(ctx, "loan rejected", "loan_id", loan.ID, "reason", loan.RejectionReason)
	return &RejectLoanResponse{Loan: loan}, nil
}

// RecordRepayment applies a payment to one installment.
func (h *LendingHandler) RecordRepayment(ctx context.Context, req *RecordRepaymentRequest) (*RecordRepaymentResponse, error) {
	amount, err := parseDecimal(req.Amount, "amount")
	if err != nil {
		return nil, err
	}
	paymentDate, err := parseOptionalDate(req.PaymentDate, "payment_date")
	if err != nil {
		return nil, err
	}

	repayment, err := h.repay.Execute(ctx, dto.RecordRepaymentRequest{
		InstallmentID:     req.InstallmentID,
		AccountID:         req.AccountID,
		Amount:            amount,
		PaymentType:       req.PaymentType,
		PaymentDate:       paymentDate,
		ExternalReference: req.ExternalReference,
	})
	if err != nil {
		return nil, toStatus(err)
	}

	h.metrics.RepaymentsTotal.WithLabelValues(repayment.PaymentType).Inc()
	h.logger.InfoContext(ctx, "repayment recorded",
		"repayment_id", repayment.ID,
		"installment_id", repayment.InstallmentID,
		"installment_status", repayment.InstallmentStatus,
		"loan_status", repayment.LoanStatus,
	)
	return &RecordRepaymentResponse{Repayment: repayment}, nil
}

// ListOverdueInstallments sweeps unpaid installments past due and returns them.
func (h *LendingHandler) ListOverdueInstallments(ctx context.Context, req *ListOverdueInstallmentsRequest) (*ListOverdueInstallmentsResponse, error) {
	asOf, err := parseOptionalDate(req.AsOf, "as_of")
	if err != nil {
		return nil, err
	}

	installments, err := h.listOverdue.Execute(ctx, dto.ListOverdueRequest{AsOf: asOf})
	if err != nil {
		return nil, toStatus(err)
	}

	h.metrics.OverdueScansTotal.Inc()
	h.metrics.OverdueInstallments.Set(float64(len(installments)))
	return &ListOverdueInstallmentsResponse{Installments: installments}, nil
}

// GetLoan retrieves a loan with its installments.
func (h *LendingHandler) GetLoan(ctx context.Context, req *GetLoanRequest) (*GetLoanResponse, error) {
	loan, err := h.getLoan.Execute(ctx, dto.GetLoanRequest{LoanID: req.LoanID})
	if err != nil {
		return nil, toStatus(err)
	}
	return &GetLoanResponse{Loan: loan}, nil
}

// ListClientLoans lists every loan of one client.
func (h *LendingHandler) ListClientLoans(ctx context.Context, req *ListClientLoansRequest) (*ListClientLoansResponse, error) {
	loans, err := h.clientLoans.Execute(ctx, dto.ListClientLoansRequest{ClientID: req.ClientID})
	if err != nil {
		return nil, toStatus(err)
	}
	return &ListClientLoansResponse{Loans: loans}, nil
}

// ListInstallmentRepayments lists the repayments recorded against one
// installment.
func (h *LendingHandler) ListInstallmentRepayments(ctx context.Context, req *ListInstallmentRepaymentsRequest) (*ListInstallmentRepaymentsResponse, error) {
	repayments, err := h.repayments.Execute(ctx, dto.ListInstallmentRepaymentsRequest{InstallmentID: req.InstallmentID})
	if err != nil {
		return nil, toStatus(err)
	}
	return &ListInstallmentRepaymentsResponse{Repayments: repayments}, nil
}

// ---------------------------------------------------------------------------
// helpers
// ---------------------------------------------------------------------------

func parseDecimal(s, field string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, status.Errorf(codes.InvalidArgument, "invalid %s: %v", field, err)
	}
	return d, nil
}

func parseOptionalDecimal(s, field string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	return parseDecimal(s, field)
}

func parseOptionalDate(s, field string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		if t, err = time.Parse("2006-01-02", s); err != nil {
			return time.Time{}, status.Errorf(codes.InvalidArgument, "invalid %s: %v", field, err)
		}
	}
	return t, nil
}

// toStatus maps domain errors onto gRPC status codes.
func toStatus(err error) error {
	switch {
	case errors.Is(err, valueobject.ErrInvalidParameter):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, valueobject.ErrOutOfBounds):
		return status.Error(codes.OutOfRange, err.Error())
	case errors.Is(err, valueobject.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, valueobject.ErrIllegalStateTransition):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, valueobject.ErrArithmeticInconsistency):
		return status.Error(codes.Internal, err.Error())
	default:
		return status.Error(codes.Internal, fmt.Sprintf("internal error: %v", err))
	}
}
