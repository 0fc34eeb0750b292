package memory

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/simaogato/walletledger-backend/internal/domain"
)

type walletRepository struct {
	store *Store
}

// NewWalletRepository creates a new in-memory wallet repository
func NewWalletRepository(store *Store) domain.WalletRepository {
	return &walletRepository{store: store}
}

// GetByOwnerID retrieves the wallet of a user with all its investments
func (r *walletRepository) GetByOwnerID(ctx context.Context, ownerID uuid.UUID) (*domain.Wallet, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	rec, ok := r.store.wallets[ownerID]
	if !ok {
		return nil, fmt.Errorf("%w: wallet for user %s", domain.ErrNotFound, ownerID)
	}

	investments := make([]*domain.Investment, 0, len(rec.investments))
	for _, ir := range rec.investments {
		ar, ok := r.store.assets[ir.assetID]
		if !ok {
			return nil, fmt.Errorf("%w: asset %s of investment %s", domain.ErrNotFound, ir.assetID, ir.id)
		}
		asset, err := ar.restore()
		if err != nil {
			return nil, err
		}
		inv, err := domain.RestoreInvestment(ir.id, ir.initialValue, asset, ir.purchaseDate, ir.withdrawDate,
			domain.WithResolver(r.store.resolver))
		if err != nil {
			return nil, fmt.Errorf("failed to restore investment %s: %w", ir.id, err)
		}
		investments = append(investments, inv)
	}

	return domain.RestoreWallet(rec.id, rec.ownerID, investments)
}

// Create stores a new, possibly non-empty, wallet
func (r *walletRepository) Create(ctx context.Context, wallet *domain.Wallet) error {
	if wallet == nil {
		return fmt.Errorf("%w: wallet cannot be nil", domain.ErrInvalidArgument)
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.wallets[wallet.OwnerID()]; exists {
		return fmt.Errorf("%w: user %s already has a wallet", domain.ErrAlreadyExists, wallet.OwnerID())
	}
	if _, exists := r.store.walletOwner[wallet.ID()]; exists {
		return fmt.Errorf("%w: wallet with id %s", domain.ErrAlreadyExists, wallet.ID())
	}
	if err := r.checkAssets(wallet); err != nil {
		return err
	}

	r.store.wallets[wallet.OwnerID()] = toWalletRecord(wallet)
	r.store.walletOwner[wallet.ID()] = wallet.OwnerID()
	return nil
}

// Save replaces the stored investments of an existing wallet
func (r *walletRepository) Save(ctx context.Context, wallet *domain.Wallet) error {
	if wallet == nil {
		return fmt.Errorf("%w: wallet cannot be nil", domain.ErrInvalidArgument)
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	owner, exists := r.store.walletOwner[wallet.ID()]
	if !exists || owner != wallet.OwnerID() {
		return fmt.Errorf("%w: wallet with id %s", domain.ErrNotFound, wallet.ID())
	}
	if err := r.checkAssets(wallet); err != nil {
		return err
	}

	r.store.wallets[owner] = toWalletRecord(wallet)
	return nil
}

// checkAssets requires every referenced asset to be in the catalog; caller holds the lock
func (r *walletRepository) checkAssets(wallet *domain.Wallet) error {
	for _, inv := range wallet.Investments() {
		if _, ok := r.store.assets[inv.Asset().ID()]; !ok {
			return fmt.Errorf("%w: asset %s is not in the catalog", domain.ErrNotFound, inv.Asset().ID())
		}
	}
	return nil
}
