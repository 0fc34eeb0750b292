package report

import (
	"context"

	"github.com/google/uuid"

	"github.com/simaogato/walletledger-backend/internal/domain"
)

// ReportService generates reports for stored wallets
type ReportService struct {
	WalletRepo domain.WalletRepository
	Resolver   domain.EffectiveDateResolver
}

// NewReportService creates a new ReportService instance
func NewReportService(walletRepo domain.WalletRepository, resolver domain.EffectiveDateResolver) *ReportService {
	if resolver == nil {
		resolver = domain.SystemResolver()
	}
	return &ReportService{
		WalletRepo: walletRepo,
		Resolver:   resolver,
	}
}

// GenerateReport loads the user's wallet and derives its report
func (s *ReportService) GenerateReport(ctx context.Context, ownerID uuid.UUID, opts Options) (*Report, error) {
	wallet, err := s.WalletRepo.GetByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return Generate(wallet, s.Resolver, opts)
}
