package grpc

// proto.go defines the gRPC server interface derived from
// banquecore/lending/v1/lending.proto. This file serves as a stand-in for
// buf-generated code. Once `buf generate` is run, replace this file with the
// import from github.com/banquecore/lending/api/gen/go/lending/v1.

import (
	"context"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/banquecore/lending/internal/application/dto"
)

// ---------------------------------------------------------------------------
// Messages
// ---------------------------------------------------------------------------

// SimulateLoanRequest mirrors lending.v1.SimulateLoanRequest. Monetary fields
// travel as decimal strings.
type SimulateLoanRequest struct {
	LoanTypeID    string `json:"loan_type_id,omitempty"`
	Principal     string `json:"principal"`
	AnnualRate    string `json:"annual_rate,omitempty"`
	Months        int    `json:"months"`
	FirstDueDate  string `json:"first_due_date,omitempty"` // RFC 3339 date
	MonthlyIncome string `json:"monthly_income,omitempty"`
}

type SimulateLoanResponse struct {
	Simulation dto.SimulationResponse `json:"simulation"`
}

type CreateApplicationRequest struct {
	ClientID           string `json:"client_id"`
	LoanTypeID         string `json:"loan_type_id"`
	RequestedPrincipal string `json:"requested_principal"`
	Months             int    `json:"months"`
}

type CreateApplicationResponse struct {
	Loan dto.LoanResponse `json:"loan"`
}

type ApproveLoanRequest struct {
	LoanID string `json:"loan_id"`
}

type ApproveLoanResponse struct {
	Loan dto.LoanResponse `json:"loan"`
}

type RejectLoanRequest struct {
	LoanID string `json:"loan_id"`
	Reason string `json:"reason,omitempty"`
}

type RejectLoanResponse struct {
	Loan dto.LoanResponse `json:"loan"`
}

type RecordRepaymentRequest struct {
	InstallmentID     string `json:"installment_id"`
	AccountID         string `json:"account_id"`
	Amount            string `json:"amount"`
	PaymentType       string `json:"payment_type"`
	PaymentDate       string `json:"payment_date,omitempty"` // RFC 3339 date
	ExternalReference string `json:"external_reference,omitempty"`
}

type RecordRepaymentResponse struct {
	Repayment dto.RepaymentResponse `json:"repayment"`
}

type ListOverdueInstallmentsRequest struct {
	AsOf string `json:"as_of,omitempty"` // RFC 3339 date
}

type ListOverdueInstallmentsResponse struct {
	Installments []dto.InstallmentResponse `json:"installments"`
}

type GetLoanRequest struct {
	LoanID string `json:"loan_id"`
}

type GetLoanResponse struct {
	Loan dto.LoanResponse `json:"loan"`
}

type ListClientLoansRequest struct {
	ClientID string `json:"client_id"`
}

type ListClientLoansResponse struct {
	Loans []dto.LoanResponse `json:"loans"`
}

type ListInstallmentRepaymentsRequest struct {
	InstallmentID string `json:"installment_id"`
}

type ListInstallmentRepaymentsResponse struct {
	Repayments []dto.RepaymentRecord `json:"repayments"`
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// LendingServiceServer is the server API for LendingService.
// It mirrors the proto-generated interface from lending.v1.LendingService.
type LendingServiceServer interface {
	SimulateLoan(context.Context, *SimulateLoanRequest) (*SimulateLoanResponse, error)
	CreateApplication(context.Context, *CreateApplicationRequest) (*CreateApplicationResponse, error)
	ApproveLoan(context.Context, *ApproveLoanRequest) (*ApproveLoanResponse, error)
	RejectLoan(context.Context, *RejectLoanRequest) (*RejectLoanResponse, error)
	RecordRepayment(context.Context, *RecordRepaymentRequest) (*RecordRepaymentResponse, error)
	ListOverdueInstallments(context.Context, *ListOverdueInstallmentsRequest) (*ListOverdueInstallmentsResponse, error)
	GetLoan(context.Context, *GetLoanRequest) (*GetLoanResponse, error)
	ListClientLoans(context.Context, *ListClientLoansRequest) (*ListClientLoansResponse, error)
	ListInstallmentRepayments(context.Context, *ListInstallmentRepaymentsRequest) (*ListInstallmentRepaymentsResponse, error)
	mustEmbedUnimplementedLendingServiceServer()
}

// UnimplementedLendingServiceServer provides forward-compatible default implementations.
type UnimplementedLendingServiceServer struct{}

func (UnimplementedLendingServiceServer) SimulateLoan(context.Context, *SimulateLoanRequest) (*SimulateLoanResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SimulateLoan not implemented")
}
func (UnimplementedLendingServiceServer) CreateApplication(context.Context, *CreateApplicationRequest) (*CreateApplicationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateApplication not implemented")
}
func (UnimplementedLendingServiceServer) ApproveLoan(context.Context, *ApproveLoanRequest) (*ApproveLoanResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ApproveLoan not implemented")
}
func (UnimplementedLendingServiceServer) RejectLoan(context.Context, *RejectLoanRequest) (*RejectLoanResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RejectLoan not implemented")
}
func (UnimplementedLendingServiceServer) RecordRepayment(context.Context, *RecordRepaymentRequest) (*RecordRepaymentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RecordRepayment not implemented")
}
func (UnimplementedLendingServiceServer) ListOverdueInstallments(context.Context, *ListOverdueInstallmentsRequest) (*ListOverdueInstallmentsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListOverdueInstallments not implemented")
}
func (UnimplementedLendingServiceServer) GetLoan(context.Context, *GetLoanRequest) (*GetLoanResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetLoan not implemented")
}
func (UnimplementedLendingServiceServer) ListClientLoans(context.Context, *ListClientLoansRequest) (*ListClientLoansResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListClientLoans not implemented")
}
func (UnimplementedLendingServiceServer) ListInstallmentRepayments(context.Context, *ListInstallmentRepaymentsRequest) (*ListInstallmentRepaymentsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListInstallmentRepayments not implemented")
}
func (UnimplementedLendingServiceServer) mustEmbedUnimplementedLendingServiceServer() {}

// RegisterLendingServiceServer registers the LendingServiceServer with the gRPC server.
func RegisterLendingServiceServer(s *grpclib.Server, srv LendingServiceServer) {
	s.RegisterService(&_LendingService_serviceDesc, srv) //nolint:revive // gRPC handler registration
}

//nolint:revive // gRPC handler registration
var _LendingService_serviceDesc = grpclib.ServiceDesc{
	ServiceName: "lending.v1.LendingService",
	HandlerType: (*LendingServiceServer)(nil),
	Methods: []grpclib.MethodDesc{
		{MethodName: "SimulateLoan", Handler: _LendingService_SimulateLoan_Handler},                           //nolint:revive // gRPC handler registration
		{MethodName: "CreateApplication", Handler: _LendingService_CreateApplication_Handler},                 //nolint:revive // gRPC handler registration
		{MethodName: "ApproveLoan", Handler: _LendingService_ApproveLoan_Handler},                             //nolint:revive // gRPC handler registration
		{MethodName: "RejectLoan", Handler: _LendingService_RejectLoan_Handler},                               //nolint:revive // gRPC handler registration
		{MethodName: "RecordRepayment", Handler: _LendingService_RecordRepayment_Handler},                     //nolint:revive // gRPC handler registration
		{MethodName: "ListOverdueInstallments", Handler: _LendingService_ListOverdueInstallments_Handler},     //nolint:revive // gRPC handler registration
		{MethodName: "GetLoan", Handler: _LendingService_GetLoan_Handler},                                     //nolint:revive // gRPC handler registration
		{MethodName: "ListClientLoans", Handler: _LendingService_ListClientLoans_Handler},                     //nolint:revive // gRPC handler registration
		{MethodName: "ListInstallmentRepayments", Handler: _LendingService_ListInstallmentRepayments_Handler}, //nolint:revive // gRPC handler registration
	},
	Streams: []grpclib.StreamDesc{},
}

//nolint:revive,errcheck // gRPC handler registration
func _LendingService_SimulateLoan_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(SimulateLoanRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LendingServiceServer).SimulateLoan(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/lending.v1.LendingService/SimulateLoan",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LendingServiceServer).SimulateLoan(ctx, req.(*SimulateLoanRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _LendingService_CreateApplication_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateApplicationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LendingServiceServer).CreateApplication(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/lending.v1.LendingService/CreateApplication",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LendingServiceServer).CreateApplication(ctx, req.(*CreateApplicationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _LendingService_ApproveLoan_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(ApproveLoanRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LendingServiceServer).ApproveLoan(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/lending.v1.LendingService/ApproveLoan",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LendingServiceServer).ApproveLoan(ctx, req.(*ApproveLoanRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _LendingService_RejectLoan_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(RejectLoanRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LendingServiceServer).RejectLoan(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/lending.v1.LendingService/RejectLoan",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LendingServiceServer).RejectLoan(ctx, req.(*RejectLoanRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _LendingService_RecordRepayment_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(RecordRepaymentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LendingServiceServer).RecordRepayment(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/lending.v1.LendingService/RecordRepayment",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LendingServiceServer).RecordRepayment(ctx, req.(*RecordRepaymentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _LendingService_ListOverdueInstallments_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListOverdueInstallmentsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LendingServiceServer).ListOverdueInstallments(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/lending.v1.LendingService/ListOverdueInstallments",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LendingServiceServer).ListOverdueInstallments(ctx, req.(*ListOverdueInstallmentsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _LendingService_GetLoan_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetLoanRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LendingServiceServer).GetLoan(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/lending.v1.LendingService/GetLoan",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LendingServiceServer).GetLoan(ctx, req.(*GetLoanRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _LendingService_ListClientLoans_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListClientLoansRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LendingServiceServer).ListClientLoans(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/lending.v1.LendingService/ListClientLoans",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LendingServiceServer).ListClientLoans(ctx, req.(*ListClientLoansRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _LendingService_ListInstallmentRepayments_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListInstallmentRepaymentsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LendingServiceServer).ListInstallmentRepayments(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/lending.v1.LendingService/ListInstallmentRepayments",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LendingServiceServer).ListInstallmentRepayments(ctx, req.(*ListInstallmentRepaymentsRequest))
	}
	return interceptor(ctx, in, info, handler)
}
