package domain

import (
	"context"

	"github.com/google/uuid"
)

// AssetRepository defines the interface for asset persistence operations
type AssetRepository interface {
	// GetByID retrieves an asset by its ID
	// Returns an error wrapping ErrNotFound if it does not exist
	GetByID(ctx context.Context, id uuid.UUID) (*Asset, error)

	// Create stores a new asset
	Create(ctx context.Context, asset *Asset) error

	// List retrieves every asset in the catalog
	List(ctx context.Context) ([]*Asset, error)
}

// WalletRepository defines the interface for wallet persistence operations
// A wallet is saved together with all of its investments
type WalletRepository interface {
	// GetByOwnerID retrieves the wallet of a user
	// Returns an error wrapping ErrNotFound if the user has no wallet
	GetByOwnerID(ctx context.Context, ownerID uuid.UUID) (*Wallet, error)

	// Create stores a new wallet
	// Returns an error wrapping ErrAlreadyExists if the user already owns one
	Create(ctx context.Context, wallet *Wallet) error

	// Save persists the wallet's current investments
	// Investments no longer in the wallet are deleted
	Save(ctx context.Context, wallet *Wallet) error
}
