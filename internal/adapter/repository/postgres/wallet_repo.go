package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/simaogato/walletledger-backend/internal/domain"
)

// walletRepository implements domain.WalletRepository
// Investments are stored in their own table and loaded in insertion order
type walletRepository struct {
	db       *DB
	resolver domain.EffectiveDateResolver
}

// NewWalletRepository creates a new wallet repository
// resolver is handed to every investment loaded from the database
func NewWalletRepository(db *DB, resolver domain.EffectiveDateResolver) domain.WalletRepository {
	if resolver == nil {
		resolver = domain.SystemResolver()
	}
	return &walletRepository{db: db, resolver: resolver}
}

// GetByOwnerID retrieves the wallet of a user with all its investments
func (r *walletRepository) GetByOwnerID(ctx context.Context, ownerID uuid.UUID) (*domain.Wallet, error) {
	walletQuery := `
		SELECT id, user_id
		FROM wallets
		WHERE user_id = $1
	`

	var walletID, userID uuid.UUID
	err := r.db.QueryRowContext(ctx, walletQuery, ownerID).Scan(&walletID, &userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: wallet for user %s", domain.ErrNotFound, ownerID)
		}
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}

	investments, err := r.loadInvestments(ctx, walletID)
	if err != nil {
		return nil, err
	}

	return domain.RestoreWallet(walletID, userID, investments)
}

func (r *walletRepository) loadInvestments(ctx context.Context, walletID uuid.UUID) ([]*domain.Investment, error) {
	query := `
		SELECT i.id, i.initial_value, i.purchase_date, i.withdraw_date,
		       a.id, a.name, a.asset_type, a.profitability, a.maturity_date
		FROM investments i
		JOIN assets a ON a.id = i.asset_id
		WHERE i.wallet_id = $1
		ORDER BY i.seq
	`

	rows, err := r.db.QueryContext(ctx, query, walletID)
	if err != nil {
		return nil, fmt.Errorf("failed to get investments: %w", err)
	}
	defer rows.Close()

	var investments []*domain.Investment
	for rows.Next() {
		var (
			id           uuid.UUID
			valueStr     string
			purchaseDate sql.NullTime
			withdrawDate sql.NullTime
			assetID      uuid.UUID
			assetName    string
			assetType    string
			rateStr      string
			maturity     sql.NullTime
		)
		if err := rows.Scan(&id, &valueStr, &purchaseDate, &withdrawDate,
			&assetID, &assetName, &assetType, &rateStr, &maturity); err != nil {
			return nil, fmt.Errorf("failed to scan investment: %w", err)
		}

		asset, err := restoreAsset(assetID, assetName, assetType, rateStr, maturity)
		if err != nil {
			return nil, fmt.Errorf("failed to restore asset %s: %w", assetID, err)
		}

		value, err := decimal.NewFromString(valueStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse initial_value: %w", err)
		}

		var purchase domain.Date
		if p := scanDate(purchaseDate); p != nil {
			purchase = *p
		}

		inv, err := domain.RestoreInvestment(id, value, asset, purchase, scanDate(withdrawDate),
			domain.WithResolver(r.resolver))
		if err != nil {
			return nil, fmt.Errorf("failed to restore investment %s: %w", id, err)
		}
		investments = append(investments, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating investments: %w", err)
	}

	return investments, nil
}

// Create creates a new wallet together with its investments in a database transaction
func (r *walletRepository) Create(ctx context.Context, wallet *domain.Wallet) error {
	dbTx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer dbTx.Rollback()

	insertWalletQuery := `
		INSERT INTO wallets (id, user_id)
		VALUES ($1, $2)
	`

	if _, err := dbTx.ExecContext(ctx, insertWalletQuery, wallet.ID(), wallet.OwnerID()); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: user %s already has a wallet", domain.ErrAlreadyExists, wallet.OwnerID())
		}
		return fmt.Errorf("failed to insert wallet: %w", err)
	}

	if err := upsertInvestments(ctx, dbTx, wallet); err != nil {
		return err
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// Save persists the wallet's investments in a database transaction
// Rows of investments no longer in the wallet are deleted; a withdrawal date, once stored, is never overwritten
func (r *walletRepository) Save(ctx context.Context, wallet *domain.Wallet) error {
	dbTx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer dbTx.Rollback()

	lockQuery := `
		SELECT id
		FROM wallets
		WHERE id = $1 AND user_id = $2
		FOR UPDATE
	`

	var locked uuid.UUID
	if err := dbTx.QueryRowContext(ctx, lockQuery, wallet.ID(), wallet.OwnerID()).Scan(&locked); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w: wallet with id %s", domain.ErrNotFound, wallet.ID())
		}
		return fmt.Errorf("failed to lock wallet: %w", err)
	}

	investments := wallet.Investments()
	keep := make([]string, 0, len(investments))
	for _, inv := range investments {
		keep = append(keep, inv.ID().String())
	}

	deleteQuery := `
		DELETE FROM investments
		WHERE wallet_id = $1 AND NOT (id = ANY($2::uuid[]))
	`

	if _, err := dbTx.ExecContext(ctx, deleteQuery, wallet.ID(), pq.Array(keep)); err != nil {
		return fmt.Errorf("failed to delete removed investments: %w", err)
	}

	if err := upsertInvestments(ctx, dbTx, wallet); err != nil {
		return err
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func upsertInvestments(ctx context.Context, dbTx *sql.Tx, wallet *domain.Wallet) error {
	upsertQuery := `
		INSERT INTO investments (id, wallet_id, asset_id, initial_value, purchase_date, withdraw_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE
		SET withdraw_date = EXCLUDED.withdraw_date
		WHERE investments.withdraw_date IS NULL
	`

	for _, inv := range wallet.Investments() {
		var withdraw *domain.Date
		if d, ok := inv.WithdrawDate(); ok {
			withdraw = &d
		}

		_, err := dbTx.ExecContext(ctx, upsertQuery,
			inv.ID(),
			wallet.ID(),
			inv.Asset().ID(),
			inv.InitialValue().String(),
			inv.PurchaseDate().Time(),
			nullableDate(withdraw),
		)
		if err != nil {
			return fmt.Errorf("failed to save investment %s: %w", inv.ID(), err)
		}
	}
	return nil
}
