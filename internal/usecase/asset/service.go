package asset

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/simaogato/walletledger-backend/internal/domain"
	"github.com/simaogato/walletledger-backend/internal/logger"
)

// CreateAssetInput represents the input for registering an asset
type CreateAssetInput struct {
	Name          string
	Type          domain.AssetType
	Profitability decimal.Decimal
	MaturityDate  *domain.Date // Optional
}

// AssetService handles the asset catalog
type AssetService struct {
	AssetRepo domain.AssetRepository
	Resolver  domain.EffectiveDateResolver
	log       *logrus.Entry
}

// NewAssetService creates a new AssetService instance
func NewAssetService(assetRepo domain.AssetRepository, resolver domain.EffectiveDateResolver, log logrus.FieldLogger) *AssetService {
	if resolver == nil {
		resolver = domain.SystemResolver()
	}
	return &AssetService{
		AssetRepo: assetRepo,
		Resolver:  resolver,
		log:       logger.Component(log, "asset"),
	}
}

// CreateAsset validates and stores a new asset
// A maturity date, when given, cannot be in the past
func (s *AssetService) CreateAsset(ctx context.Context, input CreateAssetInput) (*domain.Asset, error) {
	if input.MaturityDate != nil && input.MaturityDate.Before(s.Resolver.Resolve(nil)) {
		return nil, fmt.Errorf("%w: asset maturity date cannot be in the past", domain.ErrInvalidArgument)
	}

	asset, err := domain.NewAsset(input.Name, input.Type, input.Profitability, input.MaturityDate)
	if err != nil {
		return nil, err
	}

	if err := s.AssetRepo.Create(ctx, asset); err != nil {
		return nil, fmt.Errorf("failed to create asset: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"asset_id":   asset.ID(),
		"asset_type": asset.Type(),
	}).Info("asset created")

	return asset, nil
}

// GetAsset retrieves an asset by ID
func (s *AssetService) GetAsset(ctx context.Context, id uuid.UUID) (*domain.Asset, error) {
	return s.AssetRepo.GetByID(ctx, id)
}

// ListAssets retrieves the whole catalog
func (s *AssetService) ListAssets(ctx context.Context) ([]*domain.Asset, error) {
	assets, err := s.AssetRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}
	return assets, nil
}
