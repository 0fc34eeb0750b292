package grpc

import (
	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/simaogato/walletledger-backend/internal/adapter/grpc/walletv1"
)

// ServerOptions configures NewGRPCServer
type ServerOptions struct {
	APIToken string
	Logger   logrus.FieldLogger
}

// NewGRPCServer builds a gRPC server exposing the wallet ledger service,
// the standard health service and server reflection.
// Calls pass the logging interceptor first and then the auth interceptor.
func NewGRPCServer(srv *Server, opts ServerOptions) (*grpc.Server, *health.Server) {
	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			LoggingInterceptor(opts.Logger),
			AuthInterceptor(opts.APIToken),
		),
	)

	walletv1.RegisterWalletLedgerServiceServer(grpcServer, srv)

	healthServer := health.NewServer()
	healthServer.SetServingStatus(walletv1.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(grpcServer, healthServer)

	reflection.Register(grpcServer)

	return grpcServer, healthServer
}
