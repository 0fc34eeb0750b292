package grpc

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/simaogato/walletledger-backend/internal/adapter/grpc/walletv1"
	"github.com/simaogato/walletledger-backend/internal/domain"
	"github.com/simaogato/walletledger-backend/internal/usecase/asset"
	"github.com/simaogato/walletledger-backend/internal/usecase/report"
	"github.com/simaogato/walletledger-backend/internal/usecase/wallet"
)

// Server implements the WalletLedgerService gRPC server
type Server struct {
	walletv1.UnimplementedWalletLedgerServiceServer

	AssetService  *asset.AssetService
	WalletService *wallet.WalletService
	ReportService *report.ReportService
	Resolver      domain.EffectiveDateResolver
}

// NewServer creates a new gRPC server instance
func NewServer(
	assetService *asset.AssetService,
	walletService *wallet.WalletService,
	reportService *report.ReportService,
	resolver domain.EffectiveDateResolver,
) *Server {
	if resolver == nil {
		resolver = domain.SystemResolver()
	}
	return &Server{
		AssetService:  assetService,
		WalletService: walletService,
		ReportService: reportService,
		Resolver:      resolver,
	}
}

// CreateAsset handles the CreateAsset RPC
func (s *Server) CreateAsset(ctx context.Context, req *walletv1.CreateAssetRequest) (*walletv1.CreateAssetResponse, error) {
	assetType, err := domain.ParseAssetType(req.Type)
	if err != nil {
		return nil, mapError(err)
	}

	profitability, err := parseDecimal("profitability", req.Profitability)
	if err != nil {
		return nil, err
	}

	maturity, err := parseOptionalDate("maturity_date", req.MaturityDate)
	if err != nil {
		return nil, err
	}

	created, err := s.AssetService.CreateAsset(ctx, asset.CreateAssetInput{
		Name:          req.Name,
		Type:          assetType,
		Profitability: profitability,
		MaturityDate:  maturity,
	})
	if err != nil {
		return nil, mapError(err)
	}

	return &walletv1.CreateAssetResponse{Asset: domainAssetToProto(created)}, nil
}

// ListAssets handles the ListAssets RPC
func (s *Server) ListAssets(ctx context.Context, req *walletv1.ListAssetsRequest) (*walletv1.ListAssetsResponse, error) {
	assets, err := s.AssetService.ListAssets(ctx)
	if err != nil {
		return nil, mapError(err)
	}

	resp := &walletv1.ListAssetsResponse{Assets: make([]*walletv1.Asset, 0, len(assets))}
	for _, a := range assets {
		resp.Assets = append(resp.Assets, domainAssetToProto(a))
	}
	return resp, nil
}

// CreateWallet handles the CreateWallet RPC
func (s *Server) CreateWallet(ctx context.Context, req *walletv1.CreateWalletRequest) (*walletv1.CreateWalletResponse, error) {
	ownerID, err := parseUUID("owner_id", req.OwnerId)
	if err != nil {
		return nil, err
	}

	w, err := s.WalletService.CreateWallet(ctx, ownerID)
	if err != nil {
		return nil, mapError(err)
	}

	return &walletv1.CreateWalletResponse{
		WalletId: w.ID().String(),
		OwnerId:  w.OwnerID().String(),
	}, nil
}

// GetWallet handles the GetWallet RPC
func (s *Server) GetWallet(ctx context.Context, req *walletv1.GetWalletRequest) (*walletv1.GetWalletResponse, error) {
	ownerID, err := parseUUID("owner_id", req.OwnerId)
	if err != nil {
		return nil, err
	}

	asOf, err := s.resolveDate("as_of", req.AsOf)
	if err != nil {
		return nil, err
	}

	w, err := s.WalletService.GetWallet(ctx, ownerID)
	if err != nil {
		return nil, mapError(err)
	}

	return &walletv1.GetWalletResponse{
		WalletId: w.ID().String(),
		OwnerId:  w.OwnerID().String(),
		Active:   domainInvestmentsToProto(w.ActiveInvestments(), asOf),
		History:  domainInvestmentsToProto(w.HistoryInvestments(), asOf),
	}, nil
}

// AddInvestment handles the AddInvestment RPC
func (s *Server) AddInvestment(ctx context.Context, req *walletv1.AddInvestmentRequest) (*walletv1.AddInvestmentResponse, error) {
	ownerID, err := parseUUID("owner_id", req.OwnerId)
	if err != nil {
		return nil, err
	}

	assetID, err := parseUUID("asset_id", req.AssetId)
	if err != nil {
		return nil, err
	}

	initialValue, err := parseDecimal("initial_value", req.InitialValue)
	if err != nil {
		return nil, err
	}

	purchaseDate, err := parseOptionalDate("purchase_date", req.PurchaseDate)
	if err != nil {
		return nil, err
	}

	inv, err := s.WalletService.AddInvestment(ctx, wallet.AddInvestmentInput{
		OwnerID:      ownerID,
		AssetID:      assetID,
		InitialValue: initialValue,
		PurchaseDate: purchaseDate,
	})
	if err != nil {
		return nil, mapError(err)
	}

	return &walletv1.AddInvestmentResponse{
		Investment: domainInvestmentToProto(inv, s.Resolver.Resolve(nil)),
	}, nil
}

// RemoveInvestment handles the RemoveInvestment RPC
func (s *Server) RemoveInvestment(ctx context.Context, req *walletv1.RemoveInvestmentRequest) (*walletv1.RemoveInvestmentResponse, error) {
	ownerID, investmentID, err := parseInvestmentRef(req.OwnerId, req.InvestmentId)
	if err != nil {
		return nil, err
	}

	if err := s.WalletService.RemoveInvestment(ctx, ownerID, investmentID); err != nil {
		return nil, mapError(err)
	}

	return &walletv1.RemoveInvestmentResponse{}, nil
}

// WithdrawInvestment handles the WithdrawInvestment RPC
func (s *Server) WithdrawInvestment(ctx context.Context, req *walletv1.WithdrawInvestmentRequest) (*walletv1.WithdrawInvestmentResponse, error) {
	ownerID, investmentID, err := parseInvestmentRef(req.OwnerId, req.InvestmentId)
	if err != nil {
		return nil, err
	}

	withdrawDate, err := parseOptionalDate("withdraw_date", req.WithdrawDate)
	if err != nil {
		return nil, err
	}

	inv, err := s.WalletService.WithdrawInvestment(ctx, ownerID, investmentID, withdrawDate)
	if err != nil {
		return nil, mapError(err)
	}

	return &walletv1.WithdrawInvestmentResponse{
		Investment: domainInvestmentToProto(inv, s.Resolver.Resolve(nil)),
	}, nil
}

// GetInvestment handles the GetInvestment RPC
func (s *Server) GetInvestment(ctx context.Context, req *walletv1.GetInvestmentRequest) (*walletv1.GetInvestmentResponse, error) {
	ownerID, investmentID, err := parseInvestmentRef(req.OwnerId, req.InvestmentId)
	if err != nil {
		return nil, err
	}

	asOf, err := s.resolveDate("as_of", req.AsOf)
	if err != nil {
		return nil, err
	}

	inv, err := s.WalletService.GetInvestment(ctx, ownerID, investmentID)
	if err != nil {
		return nil, mapError(err)
	}

	return &walletv1.GetInvestmentResponse{Investment: domainInvestmentToProto(inv, asOf)}, nil
}

// ListInvestments handles the ListInvestments RPC
func (s *Server) ListInvestments(ctx context.Context, req *walletv1.ListInvestmentsRequest) (*walletv1.ListInvestmentsResponse, error) {
	ownerID, err := parseUUID("owner_id", req.OwnerId)
	if err != nil {
		return nil, err
	}

	filter := wallet.ListFilter{Status: wallet.Status(strings.ToUpper(strings.TrimSpace(req.Status)))}

	if req.Type != "" {
		assetType, err := domain.ParseAssetType(req.Type)
		if err != nil {
			return nil, mapError(err)
		}
		filter.Type = &assetType
	}

	if filter.From, err = parseOptionalDate("from", req.From); err != nil {
		return nil, err
	}
	if filter.To, err = parseOptionalDate("to", req.To); err != nil {
		return nil, err
	}

	asOf, err := s.resolveDate("as_of", req.AsOf)
	if err != nil {
		return nil, err
	}

	investments, err := s.WalletService.ListInvestments(ctx, ownerID, filter)
	if err != nil {
		return nil, mapError(err)
	}

	return &walletv1.ListInvestmentsResponse{Investments: domainInvestmentsToProto(investments, asOf)}, nil
}

// GetBalance handles the GetBalance RPC
func (s *Server) GetBalance(ctx context.Context, req *walletv1.GetBalanceRequest) (*walletv1.GetBalanceResponse, error) {
	ownerID, err := parseUUID("owner_id", req.OwnerId)
	if err != nil {
		return nil, err
	}

	asOf, err := parseOptionalDate("as_of", req.AsOf)
	if err != nil {
		return nil, err
	}

	horizon, err := parseOptionalDate("horizon", req.Horizon)
	if err != nil {
		return nil, err
	}

	result, err := s.WalletService.GetBalance(ctx, ownerID, asOf, horizon)
	if err != nil {
		return nil, mapError(err)
	}

	return &walletv1.GetBalanceResponse{
		AsOf:          result.AsOf.String(),
		TotalBalance:  result.TotalBalance.StringFixed(2),
		FutureBalance: result.FutureBalance.StringFixed(2),
	}, nil
}

// GetReport handles the GetReport RPC
func (s *Server) GetReport(ctx context.Context, req *walletv1.GetReportRequest) (*walletv1.GetReportResponse, error) {
	ownerID, err := parseUUID("owner_id", req.OwnerId)
	if err != nil {
		return nil, err
	}

	var opts report.Options
	if opts.AsOf, err = parseOptionalDate("as_of", req.AsOf); err != nil {
		return nil, err
	}
	if opts.Horizon, err = parseOptionalDate("horizon", req.Horizon); err != nil {
		return nil, err
	}

	r, err := s.ReportService.GenerateReport(ctx, ownerID, opts)
	if err != nil {
		return nil, mapError(err)
	}

	return &walletv1.GetReportResponse{
		WalletId:          r.WalletID.String(),
		AsOf:              r.AsOf.String(),
		Active:            summariesToProto(r.Active),
		History:           summariesToProto(r.History),
		TotalBalance:      r.TotalBalance.StringFixed(2),
		FutureBalance:     r.FutureBalance.StringFixed(2),
		ActiveByCategory:  breakdownToProto(r.ActiveByCategory),
		HistoryByCategory: breakdownToProto(r.HistoryByCategory),
		Text:              report.Render(r),
	}, nil
}

// resolveDate parses an optional date, defaulting to today
func (s *Server) resolveDate(field, value string) (domain.Date, error) {
	d, err := parseOptionalDate(field, value)
	if err != nil {
		return domain.Date{}, err
	}
	return s.Resolver.Resolve(d), nil
}

func parseUUID(field, value string) (uuid.UUID, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, status.Errorf(codes.InvalidArgument, "invalid %s format: %v", field, err)
	}
	return id, nil
}

func parseInvestmentRef(owner, investment string) (uuid.UUID, uuid.UUID, error) {
	ownerID, err := parseUUID("owner_id", owner)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	investmentID, err := parseUUID("investment_id", investment)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	return ownerID, investmentID, nil
}

func parseDecimal(field, value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, status.Errorf(codes.InvalidArgument, "invalid %s format: %v", field, err)
	}
	return d, nil
}

// parseOptionalDate returns nil for an empty value
func parseOptionalDate(field, value string) (*domain.Date, error) {
	if value == "" {
		return nil, nil
	}
	d, err := domain.ParseDate(value)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid %s: %v", field, err)
	}
	return &d, nil
}

func formatOptionalDate(d *domain.Date) string {
	if d == nil {
		return ""
	}
	return d.String()
}

// domainAssetToProto converts a domain Asset to the wire message
func domainAssetToProto(a *domain.Asset) *walletv1.Asset {
	msg := &walletv1.Asset{
		Id:            a.ID().String(),
		Name:          a.Name(),
		Type:          string(a.Type()),
		Profitability: a.Profitability().String(),
	}
	if m, ok := a.MaturityDate(); ok {
		msg.MaturityDate = m.String()
	}
	return msg
}

func domainInvestmentToProto(inv *domain.Investment, asOf domain.Date) *walletv1.Investment {
	return summaryToProto(report.Summarize(inv, asOf))
}

func domainInvestmentsToProto(investments []*domain.Investment, asOf domain.Date) []*walletv1.Investment {
	msgs := make([]*walletv1.Investment, 0, len(investments))
	for _, inv := range investments {
		msgs = append(msgs, domainInvestmentToProto(inv, asOf))
	}
	return msgs
}

func summaryToProto(summary report.InvestmentSummary) *walletv1.Investment {
	state := string(wallet.StatusActive)
	if summary.WithdrawDate != nil {
		state = string(wallet.StatusHistory)
	}
	return &walletv1.Investment{
		Id:            summary.ID.String(),
		AssetId:       summary.AssetID.String(),
		AssetName:     summary.AssetName,
		AssetType:     string(summary.AssetType),
		Profitability: summary.Profitability.String(),
		InitialValue:  summary.InitialValue.StringFixed(2),
		PurchaseDate:  summary.PurchaseDate.String(),
		WithdrawDate:  formatOptionalDate(summary.WithdrawDate),
		MaturityDate:  formatOptionalDate(summary.MaturityDate),
		CurrentValue:  summary.CurrentValue.StringFixed(2),
		Status:        state,
	}
}

func summariesToProto(summaries []report.InvestmentSummary) []*walletv1.Investment {
	msgs := make([]*walletv1.Investment, 0, len(summaries))
	for _, summary := range summaries {
		msgs = append(msgs, summaryToProto(summary))
	}
	return msgs
}

func breakdownToProto(breakdown map[domain.AssetType]float64) map[string]float64 {
	out := make(map[string]float64, len(breakdown))
	for t, pct := range breakdown {
		out[string(t)] = pct
	}
	return out
}

// mapError converts domain errors to gRPC status errors
func mapError(err error) error {
	if err == nil {
		return nil
	}

	if _, ok := status.FromError(err); ok {
		return err
	}

	switch {
	case errors.Is(err, domain.ErrInvalidArgument):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, domain.ErrAlreadyExists):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, domain.ErrIllegalState):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
