package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// Request DTOs
// ---------------------------------------------------------------------------

// SimulateRequest carries the parameters of a provisional schedule
// simulation. When LoanTypeID is set, the rate, fee and bounds come from the
// catalog and AnnualRate is ignored. MonthlyIncome is optional; when positive
// the debt-service rule applies.
type SimulateRequest struct {
	LoanTypeID    string          `json:"loan_type_id,omitempty"`
	Principal     decimal.Decimal `json:"principal"`
	AnnualRate    decimal.Decimal `json:"annual_rate"`
	Months        int             `json:"months"`
	FirstDueDate  time.Time       `json:"first_due_date"`
	MonthlyIncome decimal.Decimal `json:"monthly_income,omitempty"`
}

// CreateApplicationRequest carries the data for a new loan application.
type CreateApplicationRequest struct {
	ClientID           string          `json:"client_id"`
	LoanTypeID         string          `json:"loan_type_id"`
	RequestedPrincipal decimal.Decimal `json:"requested_principal"`
	Months             int             `json:"months"`
}

// ApproveLoanRequest identifies a pending loan to approve.
type ApproveLoanRequest struct {
	LoanID string `json:"loan_id"`
}

// RejectLoanRequest identifies a pending loan to reject, with the reason.
type RejectLoanRequest struct {
	LoanID string `json:"loan_id"`
	Reason string `json:"reason"`
}

// RecordRepaymentRequest carries the data for one repayment.
type RecordRepaymentRequest struct {
	InstallmentID     string          `json:"installment_id"`
	AccountID         string          `json:"account_id"`
	Amount            decimal.Decimal `json:"amount"`
	PaymentType       string          `json:"payment_type"`
	PaymentDate       time.Time       `json:"payment_date"`
	ExternalReference string          `json:"external_reference,omitempty"`
}

// ListOverdueRequest bounds the overdue query.
type ListOverdueRequest struct {
	AsOf time.Time `json:"as_of"`
}

// GetLoanRequest identifies a loan to retrieve.
type GetLoanRequest struct {
	LoanID string `json:"loan_id"`
}

// ListClientLoansRequest identifies a client whose loans to list.
type ListClientLoansRequest struct {
	ClientID string `json:"client_id"`
}

// ListInstallmentRepaymentsRequest identifies an installment whose repayment
// history to list.
type ListInstallmentRepaymentsRequest struct {
	InstallmentID string `json:"installment_id"`
}

// ---------------------------------------------------------------------------
// Response DTOs
// ---------------------------------------------------------------------------

// InstallmentResponse is the external representation of one installment.
type InstallmentResponse struct {
	ID               string          `json:"id"`
	LoanID           string          `json:"loan_id"`
	Sequence         int             `json:"sequence"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
	Capital          decimal.Decimal `json:"capital"`
	Interest         decimal.Decimal `json:"interest"`
	RemainingCapital decimal.Decimal `json:"remaining_capital"`
	DueDate          time.Time       `json:"due_date"`
	PaymentDate      *time.Time      `json:"payment_date,omitempty"`
	Status           string          `json:"status"`
	AppliedPenalty   decimal.Decimal `json:"applied_penalty"`
	DaysLate         int             `json:"days_late"`
	PaidTotal        decimal.Decimal `json:"paid_total"`
}

// ScheduleEntryResponse is one period of a simulated schedule.
type ScheduleEntryResponse struct {
	Sequence         int             `json:"sequence"`
	DueDate          time.Time       `json:"due_date"`
	Total            decimal.Decimal `json:"total"`
	Capital          decimal.Decimal `json:"capital"`
	Interest         decimal.Decimal `json:"interest"`
	RemainingCapital decimal.Decimal `json:"remaining_capital"`
}

// SimulationResponse aggregates everything a simulation yields.
type SimulationResponse struct {
	LoanTypeID     string                  `json:"loan_type_id"`
	Principal      decimal.Decimal         `json:"principal"`
	Months         int                     `json:"months"`
	AnnualRate     decimal.Decimal         `json:"annual_rate"`
	MonthlyPayment decimal.Decimal         `json:"monthly_payment"`
	TotalDue       decimal.Decimal         `json:"total_due"`
	TotalCost      decimal.Decimal         `json:"total_cost"`
	TotalInterest  decimal.Decimal         `json:"total_interest"`
	OriginationFee decimal.Decimal         `json:"origination_fee"`
	Schedule       []ScheduleEntryResponse `json:"schedule"`
}

// LoanResponse is the external representation of a loan.
type LoanResponse struct {
	ID                 string                `json:"id"`
	LoanNumber         string                `json:"loan_number"`
	ClientID           string                `json:"client_id"`
	LoanTypeID         string                `json:"loan_type_id"`
	RequestedPrincipal decimal.Decimal       `json:"requested_principal"`
	ApprovedPrincipal  decimal.Decimal       `json:"approved_principal"`
	Months             int                   `json:"months"`
	AnnualRate         decimal.Decimal       `json:"annual_rate"`
	MonthlyPayment     decimal.Decimal       `json:"monthly_payment"`
	TotalDue           decimal.Decimal       `json:"total_due"`
	TotalPenalties     decimal.Decimal       `json:"total_penalties"`
	RequestDate        time.Time             `json:"request_date"`
	ApprovalDate       *time.Time            `json:"approval_date,omitempty"`
	FirstDueDate       time.Time             `json:"first_due_date"`
	LastDueDate        time.Time             `json:"last_due_date"`
	Status             string                `json:"status"`
	RejectionReason    string                `json:"rejection_reason,omitempty"`
	Installments       []InstallmentResponse `json:"installments,omitempty"`
}

// RepaymentRecord is one entry of an installment's repayment history.
type RepaymentRecord struct {
	ID                string          `json:"id"`
	InstallmentID     string          `json:"installment_id"`
	AccountID         string          `json:"account_id"`
	Amount            decimal.Decimal `json:"amount"`
	PenaltyPortion    decimal.Decimal `json:"penalty_portion"`
	PaymentType       string          `json:"payment_type"`
	PaidAt            time.Time       `json:"paid_at"`
	ExternalReference string          `json:"external_reference,omitempty"`
}

// RepaymentResponse is the external representation of a repayment.
type RepaymentResponse struct {
	ID                string          `json:"id"`
	InstallmentID     string          `json:"installment_id"`
	AccountID         string          `json:"account_id"`
	Amount            decimal.Decimal `json:"amount"`
	PenaltyPortion    decimal.Decimal `json:"penalty_portion"`
	PaymentType       string          `json:"payment_type"`
	PaidAt            time.Time       `json:"paid_at"`
	ExternalReference string          `json:"external_reference,omitempty"`
	InstallmentStatus string          `json:"installment_status"`
	LoanStatus        string          `json:"loan_status"`
}
