package walletv1

import (
	"context"

	"google.golang.org/grpc"
)

// WalletLedgerServiceClient is the client API for the wallet ledger service
type WalletLedgerServiceClient interface {
	CreateAsset(ctx context.Context, in *CreateAssetRequest, opts ...grpc.CallOption) (*CreateAssetResponse, error)
	ListAssets(ctx context.Context, in *ListAssetsRequest, opts ...grpc.CallOption) (*ListAssetsResponse, error)
	CreateWallet(ctx context.Context, in *CreateWalletRequest, opts ...grpc.CallOption) (*CreateWalletResponse, error)
	GetWallet(ctx context.Context, in *GetWalletRequest, opts ...grpc.CallOption) (*GetWalletResponse, error)
	AddInvestment(ctx context.Context, in *AddInvestmentRequest, opts ...grpc.CallOption) (*AddInvestmentResponse, error)
	RemoveInvestment(ctx context.Context, in *RemoveInvestmentRequest, opts ...grpc.CallOption) (*RemoveInvestmentResponse, error)
	WithdrawInvestment(ctx context.Context, in *WithdrawInvestmentRequest, opts ...grpc.CallOption) (*WithdrawInvestmentResponse, error)
	GetInvestment(ctx context.Context, in *GetInvestmentRequest, opts ...grpc.CallOption) (*GetInvestmentResponse, error)
	ListInvestments(ctx context.Context, in *ListInvestmentsRequest, opts ...grpc.CallOption) (*ListInvestmentsResponse, error)
	GetBalance(ctx context.Context, in *GetBalanceRequest, opts ...grpc.CallOption) (*GetBalanceResponse, error)
	GetReport(ctx context.Context, in *GetReportRequest, opts ...grpc.CallOption) (*GetReportResponse, error)
}

type walletLedgerServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewWalletLedgerServiceClient creates a client that always selects the JSON codec
func NewWalletLedgerServiceClient(cc grpc.ClientConnInterface) WalletLedgerServiceClient {
	return &walletLedgerServiceClient{cc: cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in interface{}, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{CallOption()}, opts...)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *walletLedgerServiceClient) CreateAsset(ctx context.Context, in *CreateAssetRequest, opts ...grpc.CallOption) (*CreateAssetResponse, error) {
	return invoke[CreateAssetResponse](ctx, c.cc, WalletLedgerService_CreateAsset_FullMethodName, in, opts)
}

func (c *walletLedgerServiceClient) ListAssets(ctx context.Context, in *ListAssetsRequest, opts ...grpc.CallOption) (*ListAssetsResponse, error) {
	return invoke[ListAssetsResponse](ctx, c.cc, WalletLedgerService_ListAssets_FullMethodName, in, opts)
}

func (c *walletLedgerServiceClient) CreateWallet(ctx context.Context, in *CreateWalletRequest, opts ...grpc.CallOption) (*CreateWalletResponse, error) {
	return invoke[CreateWalletResponse](ctx, c.cc, WalletLedgerService_CreateWallet_FullMethodName, in, opts)
}

func (c *walletLedgerServiceClient) GetWallet(ctx context.Context, in *GetWalletRequest, opts ...grpc.CallOption) (*GetWalletResponse, error) {
	return invoke[GetWalletResponse](ctx, c.cc, WalletLedgerService_GetWallet_FullMethodName, in, opts)
}

func (c *walletLedgerServiceClient) AddInvestment(ctx context.Context, in *AddInvestmentRequest, opts ...grpc.CallOption) (*AddInvestmentResponse, error) {
	return invoke[AddInvestmentResponse](ctx, c.cc, WalletLedgerService_AddInvestment_FullMethodName, in, opts)
}

func (c *walletLedgerServiceClient) RemoveInvestment(ctx context.Context, in *RemoveInvestmentRequest, opts ...grpc.CallOption) (*RemoveInvestmentResponse, error) {
	return invoke[RemoveInvestmentResponse](ctx, c.cc, WalletLedgerService_RemoveInvestment_FullMethodName, in, opts)
}

func (c *walletLedgerServiceClient) WithdrawInvestment(ctx context.Context, in *WithdrawInvestmentRequest, opts ...grpc.CallOption) (*WithdrawInvestmentResponse, error) {
	return invoke[WithdrawInvestmentResponse](ctx, c.cc, WalletLedgerService_WithdrawInvestment_FullMethodName, in, opts)
}

func (c *walletLedgerServiceClient) GetInvestment(ctx context.Context, in *GetInvestmentRequest, opts ...grpc.CallOption) (*GetInvestmentResponse, error) {
	return invoke[GetInvestmentResponse](ctx, c.cc, WalletLedgerService_GetInvestment_FullMethodName, in, opts)
}

func (c *walletLedgerServiceClient) ListInvestments(ctx context.Context, in *ListInvestmentsRequest, opts ...grpc.CallOption) (*ListInvestmentsResponse, error) {
	return invoke[ListInvestmentsResponse](ctx, c.cc, WalletLedgerService_ListInvestments_FullMethodName, in, opts)
}

func (c *walletLedgerServiceClient) GetBalance(ctx context.Context, in *GetBalanceRequest, opts ...grpc.CallOption) (*GetBalanceResponse, error) {
	return invoke[GetBalanceResponse](ctx, c.cc, WalletLedgerService_GetBalance_FullMethodName, in, opts)
}

func (c *walletLedgerServiceClient) GetReport(ctx context.Context, in *GetReportRequest, opts ...grpc.CallOption) (*GetReportResponse, error) {
	return invoke[GetReportResponse](ctx, c.cc, WalletLedgerService_GetReport_FullMethodName, in, opts)
}
