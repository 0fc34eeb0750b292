package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	grpcadapter "github.com/simaogato/walletledger-backend/internal/adapter/grpc"
	"github.com/simaogato/walletledger-backend/internal/adapter/repository/memory"
	"github.com/simaogato/walletledger-backend/internal/adapter/repository/postgres"
	"github.com/simaogato/walletledger-backend/internal/config"
	"github.com/simaogato/walletledger-backend/internal/domain"
	"github.com/simaogato/walletledger-backend/internal/logger"
	"github.com/simaogato/walletledger-backend/internal/usecase/asset"
	"github.com/simaogato/walletledger-backend/internal/usecase/report"
	"github.com/simaogato/walletledger-backend/internal/usecase/seeder"
	"github.com/simaogato/walletledger-backend/internal/usecase/wallet"
)

// repositories groups the storage backend chosen by DATA_BACKEND
type repositories struct {
	assets  domain.AssetRepository
	wallets domain.WalletRepository
	close   func() error
}

func main() {
	// 1. Load configuration
	cfg := config.Load()
	log := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	if err := cfg.Validate(); err != nil {
		log.WithError(err).Fatal("Invalid configuration")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.WithError(err).Fatal("Server exited with error")
	}
	log.Info("gRPC server stopped")
}

func run(ctx context.Context, cfg *config.Config, log *logrus.Logger) error {
	resolver := domain.SystemResolver()

	// 2. Initialize Repositories
	repos, err := openRepositories(ctx, cfg, resolver, log)
	if err != nil {
		return err
	}
	defer repos.close()

	// 3. Initialize Services (Use Cases)
	assetService := asset.NewAssetService(repos.assets, resolver, log)
	walletService := wallet.NewWalletService(repos.wallets, repos.assets, resolver, log)
	reportService := report.NewReportService(repos.wallets, resolver)

	if cfg.SeedAssets {
		if err := seeder.NewAssetSeeder(repos.assets, resolver, log).Seed(ctx); err != nil {
			return fmt.Errorf("failed to seed asset catalog: %w", err)
		}
		log.Info("Asset catalog seeded successfully")
	}

	// 4. Start gRPC Server
	grpcServer, healthServer := grpcadapter.NewGRPCServer(
		grpcadapter.NewServer(assetService, walletService, reportService, resolver),
		grpcadapter.ServerOptions{APIToken: cfg.APIToken, Logger: log},
	)

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", cfg.GRPCAddr, err)
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.WithField("addr", cfg.GRPCAddr).Info("gRPC server listening")
		if err := grpcServer.Serve(lis); err != nil {
			return fmt.Errorf("failed to serve gRPC server: %w", err)
		}
		return nil
	})

	// Graceful shutdown
	g.Go(func() error {
		<-gctx.Done()
		log.Info("Shutting down gracefully...")
		healthServer.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
		gracefulStop(grpcServer, 10*time.Second)
		return nil
	})

	return g.Wait()
}

// openRepositories connects the configured storage backend
func openRepositories(ctx context.Context, cfg *config.Config, resolver domain.EffectiveDateResolver, log *logrus.Logger) (*repositories, error) {
	switch cfg.DataBackend {
	case config.BackendPostgres:
		db, err := connectWithRetry(ctx, cfg.DBConnStr, 5, 2*time.Second, log)
		if err != nil {
			return nil, err
		}

		if cfg.MigrateOnStart {
			if err := postgres.RunMigrations(db); err != nil {
				db.Close()
				return nil, err
			}
			log.Info("Database migrations applied")
		}

		return &repositories{
			assets:  postgres.NewAssetRepository(db),
			wallets: postgres.NewWalletRepository(db, resolver),
			close:   db.Close,
		}, nil

	default:
		store := memory.NewStore(resolver)
		log.Warn("Using in-memory storage; data is lost on restart")
		return &repositories{
			assets:  memory.NewAssetRepository(store),
			wallets: memory.NewWalletRepository(store),
			close:   func() error { return nil },
		}, nil
	}
}

// connectWithRetry waits for Postgres to accept connections
func connectWithRetry(ctx context.Context, connStr string, attempts int, wait time.Duration, log *logrus.Logger) (*postgres.DB, error) {
	var lastErr error
	for i := 1; i <= attempts; i++ {
		db, err := postgres.NewDB(ctx, connStr)
		if err == nil {
			return db, nil
		}
		lastErr = err
		log.WithError(err).WithField("attempt", i).Warn("Database not ready")

		select {
		case <-ctx.Done():
			return nil, errors.Join(lastErr, ctx.Err())
		case <-time.After(wait):
		}
	}
	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", attempts, lastErr)
}

// gracefulStopper is satisfied by *grpc.Server
type gracefulStopper interface {
	GracefulStop()
	Stop()
}

// gracefulStop drains in-flight calls, forcing the stop after timeout
func gracefulStop(srv gracefulStopper, timeout time.Duration) {
	done := make(chan struct{})
	go func() {
		srv.GracefulStop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(timeout):
		srv.Stop()
		<-done
	}
}
