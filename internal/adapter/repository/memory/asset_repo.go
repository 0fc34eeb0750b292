package memory

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/simaogato/walletledger-backend/internal/domain"
)

type assetRepository struct {
	store *Store
}

// NewAssetRepository creates a new in-memory asset repository
func NewAssetRepository(store *Store) domain.AssetRepository {
	return &assetRepository{store: store}
}

// GetByID retrieves an asset by its ID
func (r *assetRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Asset, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	rec, ok := r.store.assets[id]
	if !ok {
		return nil, fmt.Errorf("%w: asset with id %s", domain.ErrNotFound, id)
	}
	return rec.restore()
}

// Create stores a new asset
func (r *assetRepository) Create(ctx context.Context, asset *domain.Asset) error {
	if asset == nil {
		return fmt.Errorf("%w: asset cannot be nil", domain.ErrInvalidArgument)
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.assets[asset.ID()]; exists {
		return fmt.Errorf("%w: asset with id %s", domain.ErrAlreadyExists, asset.ID())
	}
	r.store.assets[asset.ID()] = toAssetRecord(asset)
	r.store.assetOrder = append(r.store.assetOrder, asset.ID())
	return nil
}

// List retrieves every asset in insertion order
func (r *assetRepository) List(ctx context.Context) ([]*domain.Asset, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	assets := make([]*domain.Asset, 0, len(r.store.assetOrder))
	for _, id := range r.store.assetOrder {
		asset, err := r.store.assets[id].restore()
		if err != nil {
			return nil, err
		}
		assets = append(assets, asset)
	}
	return assets, nil
}
