package walletv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "walletledger.v1.WalletLedgerService"

const (
	WalletLedgerService_CreateAsset_FullMethodName        = "/" + ServiceName + "/CreateAsset"
	WalletLedgerService_ListAssets_FullMethodName         = "/" + ServiceName + "/ListAssets"
	WalletLedgerService_CreateWallet_FullMethodName       = "/" + ServiceName + "/CreateWallet"
	WalletLedgerService_GetWallet_FullMethodName          = "/" + ServiceName + "/GetWallet"
	WalletLedgerService_AddInvestment_FullMethodName      = "/" + ServiceName + "/AddInvestment"
	WalletLedgerService_RemoveInvestment_FullMethodName   = "/" + ServiceName + "/RemoveInvestment"
	WalletLedgerService_WithdrawInvestment_FullMethodName = "/" + ServiceName + "/WithdrawInvestment"
	WalletLedgerService_GetInvestment_FullMethodName      = "/" + ServiceName + "/GetInvestment"
	WalletLedgerService_ListInvestments_FullMethodName    = "/" + ServiceName + "/ListInvestments"
	WalletLedgerService_GetBalance_FullMethodName         = "/" + ServiceName + "/GetBalance"
	WalletLedgerService_GetReport_FullMethodName          = "/" + ServiceName + "/GetReport"
)

// WalletLedgerServiceServer is the server API for the wallet ledger service
type WalletLedgerServiceServer interface {
	CreateAsset(context.Context, *CreateAssetRequest) (*CreateAssetResponse, error)
	ListAssets(context.Context, *ListAssetsRequest) (*ListAssetsResponse, error)
	CreateWallet(context.Context, *CreateWalletRequest) (*CreateWalletResponse, error)
	GetWallet(context.Context, *GetWalletRequest) (*GetWalletResponse, error)
	AddInvestment(context.Context, *AddInvestmentRequest) (*AddInvestmentResponse, error)
	RemoveInvestment(context.Context, *RemoveInvestmentRequest) (*RemoveInvestmentResponse, error)
	WithdrawInvestment(context.Context, *WithdrawInvestmentRequest) (*WithdrawInvestmentResponse, error)
	GetInvestment(context.Context, *GetInvestmentRequest) (*GetInvestmentResponse, error)
	ListInvestments(context.Context, *ListInvestmentsRequest) (*ListInvestmentsResponse, error)
	GetBalance(context.Context, *GetBalanceRequest) (*GetBalanceResponse, error)
	GetReport(context.Context, *GetReportRequest) (*GetReportResponse, error)
}

// UnimplementedWalletLedgerServiceServer returns Unimplemented for every method
type UnimplementedWalletLedgerServiceServer struct{}

func (UnimplementedWalletLedgerServiceServer) CreateAsset(context.Context, *CreateAssetRequest) (*CreateAssetResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateAsset not implemented")
}
func (UnimplementedWalletLedgerServiceServer) ListAssets(context.Context, *ListAssetsRequest) (*ListAssetsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListAssets not implemented")
}
func (UnimplementedWalletLedgerServiceServer) CreateWallet(context.Context, *CreateWalletRequest) (*CreateWalletResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateWallet not implemented")
}
func (UnimplementedWalletLedgerServiceServer) GetWallet(context.Context, *GetWalletRequest) (*GetWalletResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetWallet not implemented")
}
func (UnimplementedWalletLedgerServiceServer) AddInvestment(context.Context, *AddInvestmentRequest) (*AddInvestmentResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method AddInvestment not implemented")
}
func (UnimplementedWalletLedgerServiceServer) RemoveInvestment(context.Context, *RemoveInvestmentRequest) (*RemoveInvestmentResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RemoveInvestment not implemented")
}
func (UnimplementedWalletLedgerServiceServer) WithdrawInvestment(context.Context, *WithdrawInvestmentRequest) (*WithdrawInvestmentResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method WithdrawInvestment not implemented")
}
func (UnimplementedWalletLedgerServiceServer) GetInvestment(context.Context, *GetInvestmentRequest) (*GetInvestmentResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetInvestment not implemented")
}
func (UnimplementedWalletLedgerServiceServer) ListInvestments(context.Context, *ListInvestmentsRequest) (*ListInvestmentsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListInvestments not implemented")
}
func (UnimplementedWalletLedgerServiceServer) GetBalance(context.Context, *GetBalanceRequest) (*GetBalanceResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetBalance not implemented")
}
func (UnimplementedWalletLedgerServiceServer) GetReport(context.Context, *GetReportRequest) (*GetReportResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetReport not implemented")
}

// RegisterWalletLedgerServiceServer registers srv on the gRPC server
func RegisterWalletLedgerServiceServer(s grpc.ServiceRegistrar, srv WalletLedgerServiceServer) {
	s.RegisterService(&WalletLedgerService_ServiceDesc, srv)
}

// unaryHandler adapts a typed server method to a grpc.MethodHandler
func unaryHandler[Req any, Resp any](fullMethod string, call func(WalletLedgerServiceServer, context.Context, *Req) (*Resp, error)) func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	return func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(WalletLedgerServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return call(srv.(WalletLedgerServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// WalletLedgerService_ServiceDesc is the grpc.ServiceDesc for the wallet ledger service
var WalletLedgerService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*WalletLedgerServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "CreateAsset", Handler: unaryHandler(WalletLedgerService_CreateAsset_FullMethodName, WalletLedgerServiceServer.CreateAsset)},
		{MethodName: "ListAssets", Handler: unaryHandler(WalletLedgerService_ListAssets_FullMethodName, WalletLedgerServiceServer.ListAssets)},
		{MethodName: "CreateWallet", Handler: unaryHandler(WalletLedgerService_CreateWallet_FullMethodName, WalletLedgerServiceServer.CreateWallet)},
		{MethodName: "GetWallet", Handler: unaryHandler(WalletLedgerService_GetWallet_FullMethodName, WalletLedgerServiceServer.GetWallet)},
		{MethodName: "AddInvestment", Handler: unaryHandler(WalletLedgerService_AddInvestment_FullMethodName, WalletLedgerServiceServer.AddInvestment)},
		{MethodName: "RemoveInvestment", Handler: unaryHandler(WalletLedgerService_RemoveInvestment_FullMethodName, WalletLedgerServiceServer.RemoveInvestment)},
		{MethodName: "WithdrawInvestment", Handler: unaryHandler(WalletLedgerService_WithdrawInvestment_FullMethodName, WalletLedgerServiceServer.WithdrawInvestment)},
		{MethodName: "GetInvestment", Handler: unaryHandler(WalletLedgerService_GetInvestment_FullMethodName, WalletLedgerServiceServer.GetInvestment)},
		{MethodName: "ListInvestments", Handler: unaryHandler(WalletLedgerService_ListInvestments_FullMethodName, WalletLedgerServiceServer.ListInvestments)},
		{MethodName: "GetBalance", Handler: unaryHandler(WalletLedgerService_GetBalance_FullMethodName, WalletLedgerServiceServer.GetBalance)},
		{MethodName: "GetReport", Handler: unaryHandler(WalletLedgerService_GetReport_FullMethodName, WalletLedgerServiceServer.GetReport)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "walletledger/v1/wallet_ledger.json",
}
