package memory

import (
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/simaogato/walletledger-backend/internal/domain"
)

// Store keeps every record in process memory
// Domain objects are flattened to records on write and rebuilt on read,
// so callers never share state with the store
type Store struct {
	mu       sync.RWMutex
	resolver domain.EffectiveDateResolver

	assets      map[uuid.UUID]assetRecord
	assetOrder  []uuid.UUID
	wallets     map[uuid.UUID]walletRecord // keyed by owner id
	walletOwner map[uuid.UUID]uuid.UUID    // wallet id -> owner id
}

type assetRecord struct {
	id            uuid.UUID
	name          string
	assetType     domain.AssetType
	profitability decimal.Decimal
	maturityDate  *domain.Date
}

type investmentRecord struct {
	id           uuid.UUID
	assetID      uuid.UUID
	initialValue decimal.Decimal
	purchaseDate domain.Date
	withdrawDate *domain.Date
}

type walletRecord struct {
	id          uuid.UUID
	ownerID     uuid.UUID
	investments []investmentRecord
}

// NewStore creates an empty store
// resolver is handed to every investment rebuilt from the store
func NewStore(resolver domain.EffectiveDateResolver) *Store {
	if resolver == nil {
		resolver = domain.SystemResolver()
	}
	return &Store{
		resolver:    resolver,
		assets:      make(map[uuid.UUID]assetRecord),
		wallets:     make(map[uuid.UUID]walletRecord),
		walletOwner: make(map[uuid.UUID]uuid.UUID),
	}
}

func toAssetRecord(a *domain.Asset) assetRecord {
	rec := assetRecord{
		id:            a.ID(),
		name:          a.Name(),
		assetType:     a.Type(),
		profitability: a.Profitability(),
	}
	if m, ok := a.MaturityDate(); ok {
		rec.maturityDate = &m
	}
	return rec
}

func (r assetRecord) restore() (*domain.Asset, error) {
	return domain.RestoreAsset(r.id, r.name, r.assetType, r.profitability, r.maturityDate)
}

func toWalletRecord(w *domain.Wallet) walletRecord {
	investments := w.Investments()
	rec := walletRecord{
		id:          w.ID(),
		ownerID:     w.OwnerID(),
		investments: make([]investmentRecord, 0, len(investments)),
	}
	for _, inv := range investments {
		ir := investmentRecord{
			id:           inv.ID(),
			assetID:      inv.Asset().ID(),
			initialValue: inv.InitialValue(),
			purchaseDate: inv.PurchaseDate(),
		}
		if d, ok := inv.WithdrawDate(); ok {
			ir.withdrawDate = &d
		}
		rec.investments = append(rec.investments, ir)
	}
	return rec
}
