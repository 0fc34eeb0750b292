package wallet

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/simaogato/walletledger-backend/internal/domain"
	"github.com/simaogato/walletledger-backend/internal/logger"
)

// Status selects which view of a wallet to list
type Status string

const (
	StatusActive  Status = "ACTIVE"
	StatusHistory Status = "HISTORY"
	StatusAll     Status = "ALL"
)

// AddInvestmentInput represents the input for opening a position
type AddInvestmentInput struct {
	OwnerID      uuid.UUID
	AssetID      uuid.UUID
	InitialValue decimal.Decimal
	PurchaseDate *domain.Date // Optional: defaults to today
}

// ListFilter narrows ListInvestments
// Type and the date range are optional; the range bounds are exclusive and both must be set
type ListFilter struct {
	Status Status
	Type   *domain.AssetType
	From   *domain.Date
	To     *domain.Date
}

// BalanceResult holds the wallet balances
type BalanceResult struct {
	AsOf          domain.Date
	TotalBalance  decimal.Decimal
	FutureBalance decimal.Decimal
}

// WalletService handles wallet and investment operations
// Every mutation loads the wallet, applies the domain operation and saves it
// while holding the owner's lock.
type WalletService struct {
	WalletRepo domain.WalletRepository
	AssetRepo  domain.AssetRepository
	Resolver   domain.EffectiveDateResolver

	locks *ownerLocks
	log   *logrus.Entry
}

// NewWalletService creates a new WalletService instance
func NewWalletService(
	walletRepo domain.WalletRepository,
	assetRepo domain.AssetRepository,
	resolver domain.EffectiveDateResolver,
	log logrus.FieldLogger,
) *WalletService {
	if resolver == nil {
		resolver = domain.SystemResolver()
	}
	return &WalletService{
		WalletRepo: walletRepo,
		AssetRepo:  assetRepo,
		Resolver:   resolver,
		locks:      newOwnerLocks(),
		log:        logger.Component(log, "wallet"),
	}
}

// CreateWallet creates the wallet of a user
// Fails with ErrAlreadyExists if the user already has one
func (s *WalletService) CreateWallet(ctx context.Context, ownerID uuid.UUID) (*domain.Wallet, error) {
	defer s.locks.lock(ownerID)()

	wallet, err := domain.NewWallet(ownerID)
	if err != nil {
		return nil, err
	}

	if err := s.WalletRepo.Create(ctx, wallet); err != nil {
		return nil, fmt.Errorf("failed to create wallet: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"owner_id":  ownerID,
		"wallet_id": wallet.ID(),
	}).Info("wallet created")

	return wallet, nil
}

// GetWallet retrieves the wallet of a user
func (s *WalletService) GetWallet(ctx context.Context, ownerID uuid.UUID) (*domain.Wallet, error) {
	return s.WalletRepo.GetByOwnerID(ctx, ownerID)
}

// AddInvestment opens a position in the user's wallet
// Logic:
//  1. Fetch the asset (must exist)
//  2. Build the investment, purchase date defaulting to today
//  3. Add it to the wallet and save
func (s *WalletService) AddInvestment(ctx context.Context, input AddInvestmentInput) (*domain.Investment, error) {
	asset, err := s.AssetRepo.GetByID(ctx, input.AssetID)
	if err != nil {
		return nil, err
	}

	investment, err := domain.NewInvestment(
		input.InitialValue,
		asset,
		s.Resolver.Resolve(input.PurchaseDate),
		domain.WithResolver(s.Resolver),
	)
	if err != nil {
		return nil, err
	}

	err = s.mutate(ctx, input.OwnerID, func(wallet *domain.Wallet) error {
		return wallet.AddInvestment(investment)
	})
	if err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"owner_id":      input.OwnerID,
		"investment_id": investment.ID(),
		"asset_id":      asset.ID(),
		"initial_value": investment.InitialValue().StringFixed(2),
	}).Info("investment added")

	return investment, nil
}

// RemoveInvestment deletes an active investment from the user's wallet
// Withdrawn investments belong to the history and cannot be removed
func (s *WalletService) RemoveInvestment(ctx context.Context, ownerID, investmentID uuid.UUID) error {
	err := s.mutate(ctx, ownerID, func(wallet *domain.Wallet) error {
		investment, err := wallet.Investment(investmentID)
		if err != nil {
			return err
		}
		if investment.IsWithdrawn() {
			return fmt.Errorf("%w: investment %s is withdrawn and cannot be removed", domain.ErrIllegalState, investmentID)
		}

		wallet.RemoveInvestment(investment)
		return nil
	})
	if err != nil {
		return err
	}

	s.log.WithFields(logrus.Fields{
		"owner_id":      ownerID,
		"investment_id": investmentID,
	}).Info("investment removed")

	return nil
}

// WithdrawInvestment withdraws an investment; a nil date means today
func (s *WalletService) WithdrawInvestment(ctx context.Context, ownerID, investmentID uuid.UUID, effective *domain.Date) (*domain.Investment, error) {
	// Resolve here: repositories rebuild investments with the system clock
	date := s.Resolver.Resolve(effective)

	var withdrawn *domain.Investment
	err := s.mutate(ctx, ownerID, func(wallet *domain.Wallet) error {
		if err := wallet.WithdrawInvestment(investmentID, &date); err != nil {
			return err
		}
		withdrawn, _ = wallet.Investment(investmentID)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"owner_id":      ownerID,
		"investment_id": investmentID,
		"withdraw_date": date.String(),
	}).Info("investment withdrawn")

	return withdrawn, nil
}

// GetInvestment retrieves one investment of the user's wallet
func (s *WalletService) GetInvestment(ctx context.Context, ownerID, investmentID uuid.UUID) (*domain.Investment, error) {
	wallet, err := s.WalletRepo.GetByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return wallet.Investment(investmentID)
}

// ListInvestments lists the user's investments in the requested view and filters
func (s *WalletService) ListInvestments(ctx context.Context, ownerID uuid.UUID, filter ListFilter) ([]*domain.Investment, error) {
	if (filter.From == nil) != (filter.To == nil) {
		return nil, fmt.Errorf("%w: date filter needs both from and to", domain.ErrInvalidArgument)
	}

	wallet, err := s.WalletRepo.GetByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	var investments []*domain.Investment
	switch filter.Status {
	case StatusActive:
		investments = wallet.ActiveInvestments()
	case StatusHistory:
		investments = wallet.HistoryInvestments()
	case StatusAll, "":
		investments = wallet.Investments()
	default:
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrInvalidArgument, filter.Status)
	}

	if filter.Type != nil {
		investments = domain.FilterByType(investments, *filter.Type)
	}
	if filter.From != nil {
		investments = domain.FilterByPurchaseDate(investments, *filter.From, *filter.To)
	}
	return investments, nil
}

// GetBalance computes the total balance as of asOf (today when nil)
// and the future balance, horizon covering assets without maturity
func (s *WalletService) GetBalance(ctx context.Context, ownerID uuid.UUID, asOf, horizon *domain.Date) (*BalanceResult, error) {
	wallet, err := s.WalletRepo.GetByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	date := s.Resolver.Resolve(asOf)
	future, err := wallet.FutureBalance(horizon)
	if err != nil {
		return nil, err
	}

	return &BalanceResult{
		AsOf:          date,
		TotalBalance:  wallet.TotalBalance(&date),
		FutureBalance: future,
	}, nil
}

// mutate runs fn against the owner's wallet and saves it, holding the owner's lock
// Nothing is saved when fn fails
func (s *WalletService) mutate(ctx context.Context, ownerID uuid.UUID, fn func(*domain.Wallet) error) error {
	defer s.locks.lock(ownerID)()

	wallet, err := s.WalletRepo.GetByOwnerID(ctx, ownerID)
	if err != nil {
		return err
	}

	if err := fn(wallet); err != nil {
		return err
	}

	if err := s.WalletRepo.Save(ctx, wallet); err != nil {
		return fmt.Errorf("failed to save wallet: %w", err)
	}
	return nil
}
