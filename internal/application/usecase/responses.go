package usecase

import (
	"time"

	"github.com/banquecore/lending/internal/application/dto"
	"github.com/banquecore/lending/internal/domain/model"
)

func toLoanResponse(loan model.Loan) dto.LoanResponse {
	resp := dto.LoanResponse{
		ID:                 loan.ID(),
		LoanNumber:         loan.LoanNumber(),
		ClientID:           loan.ClientID(),
		LoanTypeID:         loan.LoanTypeID(),
		RequestedPrincipal: loan.RequestedPrincipal(),
		ApprovedPrincipal:  loan.ApprovedPrincipal(),
		Months:             loan.DurationMonths(),
		AnnualRate:         loan.AnnualRatePercent(),
		MonthlyPayment:     loan.MonthlyPayment(),
		TotalDue:           loan.TotalDue(),
		TotalPenalties:     loan.TotalPenalties(),
		RequestDate:        loan.RequestDate(),
		FirstDueDate:       loan.FirstDueDate(),
		LastDueDate:        loan.LastDueDate(),
		Status:             loan.Status().String(),
		RejectionReason:    loan.RejectionReason(),
	}
	if !loan.ApprovalDate().IsZero() {
		resp.ApprovalDate = timePtr(loan.ApprovalDate())
	}
	for _, inst := range loan.Installments() {
		resp.Installments = append(resp.Installments, toInstallmentResponse(inst))
	}
	return resp
}

func toInstallmentResponse(inst model.Installment) dto.InstallmentResponse {
	resp := dto.InstallmentResponse{
		ID:               inst.ID(),
		LoanID:           inst.LoanID(),
		Sequence:         inst.Sequence(),
		TotalAmount:      inst.TotalAmount(),
		Capital:          inst.Capital(),
		Interest:         inst.Interest(),
		RemainingCapital: inst.RemainingCapital(),
		DueDate:          inst.DueDate(),
		Status:           inst.Status().String(),
		AppliedPenalty:   inst.AppliedPenalty(),
		DaysLate:         inst.DaysLateRecorded(),
		PaidTotal:        inst.PaidTotal(),
	}
	if !inst.PaymentDate().IsZero() {
		resp.PaymentDate = timePtr(inst.PaymentDate())
	}
	return resp
}

func toScheduleResponse(schedule []model.ScheduleEntry) []dto.ScheduleEntryResponse {
	out := make([]dto.ScheduleEntryResponse, 0, len(schedule))
	for _, entry := range schedule {
		out = append(out, dto.ScheduleEntryResponse{
			Sequence:         entry.Sequence,
			DueDate:          entry.DueDate,
			Total:            entry.Total,
			Capital:          entry.Capital,
			Interest:         entry.Interest,
			RemainingCapital: entry.RemainingCapital,
		})
	}
	return out
}

func timePtr(t time.Time) *time.Time { return &t }
