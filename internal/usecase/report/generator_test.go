package report

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/simaogato/walletledger-backend/internal/domain"
)

var today = domain.NewDate(2024, 6, 1)

// buildWallet returns a wallet with one active CDB and one withdrawn LCI
func buildWallet(t *testing.T) *domain.Wallet {
	t.Helper()
	resolver := domain.FixedResolver(today)

	maturity := today.AddDays(30)
	cdb, err := domain.NewAsset("CDB Banco Inter", domain.AssetTypeCDB, decimal.RequireFromString("0.10"), &maturity)
	require.NoError(t, err)
	lci, err := domain.NewAsset("LCI Banco XYZ", domain.AssetTypeLCI, decimal.RequireFromString("0.10"), nil)
	require.NoError(t, err)

	wallet, err := domain.NewWallet(uuid.New())
	require.NoError(t, err)

	active, err := domain.NewInvestment(decimal.NewFromInt(1000), cdb, today.AddDays(-30), domain.WithResolver(resolver))
	require.NoError(t, err)
	withdrawn, err := domain.NewInvestment(decimal.NewFromInt(500), lci, today.AddDays(-30), domain.WithResolver(resolver))
	require.NoError(t, err)

	require.NoError(t, wallet.AddInvestment(active))
	require.NoError(t, wallet.AddInvestment(withdrawn))
	require.NoError(t, wallet.WithdrawInvestment(withdrawn.ID(), nil))
	return wallet
}

func TestGenerate(t *testing.T) {
	wallet := buildWallet(t)

	r, err := Generate(wallet, domain.FixedResolver(today), Options{})
	require.NoError(t, err)

	assert.Equal(t, wallet.ID(), r.WalletID)
	assert.Equal(t, today, r.AsOf)
	require.Len(t, r.Active, 1)
	require.Len(t, r.History, 1)
	assert.Equal(t, "CDB Banco Inter", r.Active[0].AssetName)
	assert.Nil(t, r.Active[0].WithdrawDate)
	require.NotNil(t, r.History[0].WithdrawDate)
	assert.Equal(t, today, *r.History[0].WithdrawDate)
	assert.True(t, decimal.RequireFromString("1100").Equal(r.Active[0].CurrentValue))
	assert.True(t, decimal.RequireFromString("550").Equal(r.History[0].CurrentValue))

	assert.True(t, decimal.RequireFromString("1650").Equal(r.TotalBalance), r.TotalBalance.String())
	assert.True(t, decimal.RequireFromString("1210").Equal(r.FutureBalance), r.FutureBalance.String())

	assert.InDelta(t, 100.0, r.ActiveByCategory[domain.AssetTypeCDB], 1e-9)
	assert.Zero(t, r.ActiveByCategory[domain.AssetTypeLCI])
	assert.InDelta(t, 100.0, r.HistoryByCategory[domain.AssetTypeLCI], 1e-9)
	assert.Len(t, r.HistoryByCategory, len(domain.AssetTypes()))
}

func TestGenerate_DoesNotMutateWallet(t *testing.T) {
	wallet := buildWallet(t)
	before := wallet.Investments()

	asOf := today.AddDays(90)
	_, err := Generate(wallet, domain.FixedResolver(today), Options{AsOf: &asOf})
	require.NoError(t, err)

	assert.Equal(t, before, wallet.Investments())
	assert.Len(t, wallet.ActiveInvestments(), 1)
}

func TestGenerate_EmptyWallet(t *testing.T) {
	wallet, err := domain.NewWallet(uuid.New())
	require.NoError(t, err)

	_, err = Generate(wallet, nil, Options{})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = Generate(nil, nil, Options{})
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestGenerate_OnlyHistory(t *testing.T) {
	wallet := buildWallet(t)
	require.NoError(t, wallet.WithdrawInvestment(wallet.ActiveInvestments()[0].ID(), nil))

	r, err := Generate(wallet, domain.FixedResolver(today), Options{})
	require.NoError(t, err)
	assert.Empty(t, r.Active)
	assert.Empty(t, r.ActiveByCategory)
	assert.True(t, r.FutureBalance.IsZero())
}

func TestRender(t *testing.T) {
	r, err := Generate(buildWallet(t), domain.FixedResolver(today), Options{})
	require.NoError(t, err)

	want := "=========== WALLET REPORT ===========\n\n" +
		"> Active Investments:\n" +
		"- Initial value = R$ 1000.00 | Asset name = CDB Banco Inter | Type: CDB | Asset profitability = 10.00% | Asset maturity date = 01/07/2024\n\n" +
		"> Historical Investments:\n" +
		"- Initial value = R$ 500.00 | Asset name = LCI Banco XYZ | Type: LCI | Asset profitability = 10.00% | Asset maturity date = none\n\n" +
		"> Current Total Balance: R$ 1650.00\n" +
		"> Future Investments Balance: R$ 1210.00\n\n" +
		"> Investment by Type: \n" +
		"- Active investments by type: \n" +
		" | CDB: 100.00% | LCI: 0.00% | LCA: 0.00% | CRI: 0.00% | CRA: 0.00% | TESOURO_DIRETO: 0.00%\n" +
		"- Historical investments by type: \n" +
		" | CDB: 0.00% | LCI: 100.00% | LCA: 0.00% | CRI: 0.00% | CRA: 0.00% | TESOURO_DIRETO: 0.00%"

	assert.Equal(t, want, Render(r))
}

// MockWalletRepository is a mock implementation of WalletRepository for testing
type MockWalletRepository struct {
	mock.Mock
}

func (m *MockWalletRepository) GetByOwnerID(ctx context.Context, ownerID uuid.UUID) (*domain.Wallet, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wallet), args.Error(1)
}

func (m *MockWalletRepository) Create(ctx context.Context, wallet *domain.Wallet) error {
	return m.Called(ctx, wallet).Error(0)
}

func (m *MockWalletRepository) Save(ctx context.Context, wallet *domain.Wallet) error {
	return m.Called(ctx, wallet).Error(0)
}

func TestReportService_GenerateReport(t *testing.T) {
	ctx := context.Background()
	wallet := buildWallet(t)
	repo := new(MockWalletRepository)
	repo.On("GetByOwnerID", ctx, wallet.OwnerID()).Return(wallet, nil)

	missing := uuid.New()
	repo.On("GetByOwnerID", ctx, missing).Return(nil, domain.ErrNotFound)

	service := NewReportService(repo, domain.FixedResolver(today))

	r, err := service.GenerateReport(ctx, wallet.OwnerID(), Options{})
	require.NoError(t, err)
	assert.Equal(t, wallet.ID(), r.WalletID)

	_, err = service.GenerateReport(ctx, missing, Options{})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	repo.AssertExpectations(t)
}
