package seeder

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/simaogato/walletledger-backend/internal/domain"
)

// MockAssetRepository is a mock implementation of AssetRepository
type MockAssetRepository struct {
	mock.Mock
}

func (m *MockAssetRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Asset, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Asset), args.Error(1)
}

func (m *MockAssetRepository) Create(ctx context.Context, asset *domain.Asset) error {
	args := m.Called(ctx, asset)
	return args.Error(0)
}

func (m *MockAssetRepository) List(ctx context.Context) ([]*domain.Asset, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Asset), args.Error(1)
}

var today = domain.NewDate(2024, 6, 1)

func TestAssetSeeder_Seed_AssetsMissing(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockAssetRepository)
	seeder := NewAssetSeeder(mockRepo, domain.FixedResolver(today), nil)

	for _, entry := range DefaultCatalog() {
		mockRepo.On("GetByID", ctx, entry.ID).Return(nil, domain.ErrNotFound)
	}

	mockRepo.On("Create", ctx, mock.MatchedBy(func(a *domain.Asset) bool {
		m, ok := a.MaturityDate()
		return a.ID() == ASSET_CDB_BANCO_INTER && a.Name() == "Banco Inter" &&
			a.Type() == domain.AssetTypeCDB && ok && m == domain.NewDate(2025, 6, 1)
	})).Return(nil).Once()
	mockRepo.On("Create", ctx, mock.MatchedBy(func(a *domain.Asset) bool {
		m, ok := a.MaturityDate()
		return a.ID() == ASSET_LCI_BANCO_XYZ && ok && m == domain.NewDate(2026, 6, 1)
	})).Return(nil).Once()
	mockRepo.On("Create", ctx, mock.MatchedBy(func(a *domain.Asset) bool {
		_, ok := a.MaturityDate()
		return a.ID() == ASSET_TESOURO_SELIC && a.Type() == domain.AssetTypeTesouroDireto && !ok
	})).Return(nil).Once()

	err := seeder.Seed(ctx)

	require.NoError(t, err)
	mockRepo.AssertExpectations(t)
	mockRepo.AssertNumberOfCalls(t, "Create", 3)
}

func TestAssetSeeder_Seed_AssetsExist(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockAssetRepository)
	seeder := NewAssetSeeder(mockRepo, domain.FixedResolver(today), nil)

	for _, entry := range DefaultCatalog() {
		existing, err := domain.RestoreAsset(entry.ID, entry.Name, entry.Type, entry.Profitability, nil)
		require.NoError(t, err)
		mockRepo.On("GetByID", ctx, entry.ID).Return(existing, nil)
	}

	err := seeder.Seed(ctx)

	require.NoError(t, err)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAssetSeeder_Seed_LookupError(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockAssetRepository)
	seeder := NewAssetSeeder(mockRepo, domain.FixedResolver(today), nil)

	mockRepo.On("GetByID", ctx, ASSET_CDB_BANCO_INTER).Return(nil, errors.New("connection refused"))

	err := seeder.Seed(ctx)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAssetSeeder_Seed_CreateError(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockAssetRepository)
	seeder := NewAssetSeeder(mockRepo, domain.FixedResolver(today), nil)

	mockRepo.On("GetByID", ctx, ASSET_CDB_BANCO_INTER).Return(nil, domain.ErrNotFound)
	mockRepo.On("Create", ctx, mock.Anything).Return(domain.ErrAlreadyExists)

	err := seeder.Seed(ctx)

	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
	assert.Contains(t, err.Error(), "failed to seed asset Banco Inter")
}
