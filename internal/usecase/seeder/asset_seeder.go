package seeder

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/simaogato/walletledger-backend/internal/domain"
	"github.com/simaogato/walletledger-backend/internal/logger"
)

// Fixed UUIDs for the default asset catalog
var (
	ASSET_CDB_BANCO_INTER = uuid.MustParse("00000000-0000-0000-0000-000000000101")
	ASSET_LCI_BANCO_XYZ   = uuid.MustParse("00000000-0000-0000-0000-000000000102")
	ASSET_TESOURO_SELIC   = uuid.MustParse("00000000-0000-0000-0000-000000000103")
)

// CatalogAsset defines an asset to be seeded
// MaturityYears of zero means the asset has no maturity date
type CatalogAsset struct {
	ID            uuid.UUID
	Name          string
	Type          domain.AssetType
	Profitability decimal.Decimal
	MaturityYears int
}

// DefaultCatalog returns the assets available on a fresh install
func DefaultCatalog() []CatalogAsset {
	return []CatalogAsset{
		{
			ID:            ASSET_CDB_BANCO_INTER,
			Name:          "Banco Inter",
			Type:          domain.AssetTypeCDB,
			Profitability: decimal.RequireFromString("0.01"),
			MaturityYears: 1,
		},
		{
			ID:            ASSET_LCI_BANCO_XYZ,
			Name:          "LCI Banco XYZ",
			Type:          domain.AssetTypeLCI,
			Profitability: decimal.RequireFromString("0.008"),
			MaturityYears: 2,
		},
		{
			ID:            ASSET_TESOURO_SELIC,
			Name:          "Tesouro Selic",
			Type:          domain.AssetTypeTesouroDireto,
			Profitability: decimal.RequireFromString("0.009"),
		},
	}
}

// AssetSeeder handles seeding of the default asset catalog
type AssetSeeder struct {
	repo     domain.AssetRepository
	resolver domain.EffectiveDateResolver
	catalog  []CatalogAsset
	log      *logrus.Entry
}

// NewAssetSeeder creates a new AssetSeeder for the default catalog
func NewAssetSeeder(repo domain.AssetRepository, resolver domain.EffectiveDateResolver, log logrus.FieldLogger) *AssetSeeder {
	if resolver == nil {
		resolver = domain.SystemResolver()
	}
	return &AssetSeeder{
		repo:     repo,
		resolver: resolver,
		catalog:  DefaultCatalog(),
		log:      logger.Component(log, "seeder"),
	}
}

// Seed ensures every catalog asset exists
// Existing assets are left untouched, so Seed can run on every start
func (s *AssetSeeder) Seed(ctx context.Context) error {
	today := s.resolver.Resolve(nil)

	for _, entry := range s.catalog {
		_, err := s.repo.GetByID(ctx, entry.ID)
		if err == nil {
			continue
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("failed to look up asset %s: %w", entry.Name, err)
		}

		var maturity *domain.Date
		if entry.MaturityYears > 0 {
			m := today.AddYears(entry.MaturityYears)
			maturity = &m
		}

		asset, err := domain.RestoreAsset(entry.ID, entry.Name, entry.Type, entry.Profitability, maturity)
		if err != nil {
			return err
		}

		if err := s.repo.Create(ctx, asset); err != nil {
			return fmt.Errorf("failed to seed asset %s: %w", entry.Name, err)
		}
		s.log.WithField("asset_id", entry.ID).Info("seeded asset")
	}

	return nil
}
