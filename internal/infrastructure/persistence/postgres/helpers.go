package postgres

import (
	"time"

	"github.com/banquecore/lending/internal/domain/model"
)

// nullTime maps the zero time to NULL so partially-filled lifecycle dates
// round-trip cleanly.
func nullTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

func derefTime(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// withInstallments rebuilds a scanned loan with its installment rows
// attached.
func withInstallments(loan model.Loan, installments []model.Installment) model.Loan {
	return model.ReconstructLoan(
		loan.ID(), loan.LoanNumber(), loan.ClientID(), loan.LoanTypeID(),
		loan.RequestedPrincipal(), loan.ApprovedPrincipal(),
		loan.DurationMonths(),
		loan.AnnualRatePercent(), loan.MonthlyPayment(), loan.TotalDue(), loan.TotalPenalties(),
		loan.RequestDate(), loan.ApprovalDate(), loan.FirstDueDate(), loan.LastDueDate(),
		loan.Status(),
		loan.RejectionReason(),
		installments,
		loan.Version(), loan.CreatedAt(), loan.UpdatedAt(),
	)
}
