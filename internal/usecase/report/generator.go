package report

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/simaogato/walletledger-backend/internal/domain"
)

// Options controls the dates a report is computed for
type Options struct {
	AsOf    *domain.Date // reference date for active investments; today when nil
	Horizon *domain.Date // projection date for assets without maturity
}

// InvestmentSummary is a read-only snapshot of one investment
type InvestmentSummary struct {
	ID            uuid.UUID
	AssetID       uuid.UUID
	AssetName     string
	AssetType     domain.AssetType
	Profitability decimal.Decimal
	InitialValue  decimal.Decimal
	PurchaseDate  domain.Date
	WithdrawDate  *domain.Date
	MaturityDate  *domain.Date
	CurrentValue  decimal.Decimal
	Description   string
}

// Report summarizes a wallet at a reference date
type Report struct {
	WalletID          uuid.UUID
	OwnerID           uuid.UUID
	AsOf              domain.Date
	Active            []InvestmentSummary
	History           []InvestmentSummary
	TotalBalance      decimal.Decimal
	FutureBalance     decimal.Decimal
	ActiveByCategory  map[domain.AssetType]float64
	HistoryByCategory map[domain.AssetType]float64
}

// Generate derives a report from the wallet without mutating it
// Fails with ErrNotFound when the wallet holds no investments at all
func Generate(wallet *domain.Wallet, resolver domain.EffectiveDateResolver, opts Options) (*Report, error) {
	if wallet == nil {
		return nil, fmt.Errorf("%w: wallet cannot be nil", domain.ErrInvalidArgument)
	}

	active := wallet.ActiveInvestments()
	history := wallet.HistoryInvestments()
	if len(active) == 0 && len(history) == 0 {
		return nil, fmt.Errorf("%w: there are no investments in wallet %s", domain.ErrNotFound, wallet.ID())
	}

	if resolver == nil {
		resolver = domain.SystemResolver()
	}
	asOf := resolver.Resolve(opts.AsOf)

	future, err := wallet.FutureBalance(opts.Horizon)
	if err != nil {
		return nil, err
	}

	return &Report{
		WalletID:          wallet.ID(),
		OwnerID:           wallet.OwnerID(),
		AsOf:              asOf,
		Active:            summarize(active, asOf),
		History:           summarize(history, asOf),
		TotalBalance:      wallet.TotalBalance(&asOf),
		FutureBalance:     future,
		ActiveByCategory:  wallet.ClassifyByCategoryPercentage(active),
		HistoryByCategory: wallet.ClassifyByCategoryPercentage(history),
	}, nil
}

func summarize(investments []*domain.Investment, asOf domain.Date) []InvestmentSummary {
	summaries := make([]InvestmentSummary, 0, len(investments))
	for _, inv := range investments {
		summaries = append(summaries, Summarize(inv, asOf))
	}
	return summaries
}

// Summarize snapshots one investment valued at asOf
func Summarize(inv *domain.Investment, asOf domain.Date) InvestmentSummary {
	asset := inv.Asset()
	summary := InvestmentSummary{
		ID:            inv.ID(),
		AssetID:       asset.ID(),
		AssetName:     asset.Name(),
		AssetType:     asset.Type(),
		Profitability: asset.Profitability(),
		InitialValue:  inv.InitialValue(),
		PurchaseDate:  inv.PurchaseDate(),
		CurrentValue:  inv.CurrentValue(&asOf),
		Description:   inv.String(),
	}
	if d, ok := inv.WithdrawDate(); ok {
		summary.WithdrawDate = &d
	}
	if d, ok := asset.MaturityDate(); ok {
		summary.MaturityDate = &d
	}
	return summary
}
