package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/simaogato/walletledger-backend/internal/domain"
)

// assetRepository implements domain.AssetRepository
type assetRepository struct {
	db *DB
}

// NewAssetRepository creates a new asset repository
func NewAssetRepository(db *DB) domain.AssetRepository {
	return &assetRepository{db: db}
}

// rowScanner is satisfied by *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAsset(row rowScanner) (*domain.Asset, error) {
	var (
		id            uuid.UUID
		name          string
		assetType     string
		profitability string
		maturity      sql.NullTime
	)
	if err := row.Scan(&id, &name, &assetType, &profitability, &maturity); err != nil {
		return nil, err
	}
	return restoreAsset(id, name, assetType, profitability, maturity)
}

func restoreAsset(id uuid.UUID, name, assetType, profitability string, maturity sql.NullTime) (*domain.Asset, error) {
	rate, err := decimal.NewFromString(profitability)
	if err != nil {
		return nil, fmt.Errorf("failed to parse profitability: %w", err)
	}
	return domain.RestoreAsset(id, name, domain.AssetType(assetType), rate, scanDate(maturity))
}

// GetByID retrieves an asset by its ID
func (r *assetRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Asset, error) {
	query := `
		SELECT id, name, asset_type, profitability, maturity_date
		FROM assets
		WHERE id = $1
	`

	asset, err := scanAsset(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: asset with id %s", domain.ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to get asset by ID: %w", err)
	}
	return asset, nil
}

// Create creates a new asset
func (r *assetRepository) Create(ctx context.Context, asset *domain.Asset) error {
	query := `
		INSERT INTO assets (id, name, asset_type, profitability, maturity_date)
		VALUES ($1, $2, $3, $4, $5)
	`

	var maturity *domain.Date
	if m, ok := asset.MaturityDate(); ok {
		maturity = &m
	}

	_, err := r.db.ExecContext(ctx, query,
		asset.ID(),
		asset.Name(),
		string(asset.Type()),
		asset.Profitability().String(),
		nullableDate(maturity),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: asset with id %s", domain.ErrAlreadyExists, asset.ID())
		}
		return fmt.Errorf("failed to create asset: %w", err)
	}

	return nil
}

// List retrieves every asset in creation order
func (r *assetRepository) List(ctx context.Context) ([]*domain.Asset, error) {
	query := `
		SELECT id, name, asset_type, profitability, maturity_date
		FROM assets
		ORDER BY created_at, id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}
	defer rows.Close()

	var assets []*domain.Asset
	for rows.Next() {
		asset, err := scanAsset(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan asset: %w", err)
		}
		assets = append(assets, asset)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating assets: %w", err)
	}

	return assets, nil
}
