// anchord is the ingestion daemon: it serves the DocAnchor gRPC API backed
// by the content store, the ledger node, and the metadata database.
package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	docanchorv1 "github.com/medchain/docanchor/gen/proto/docanchor/v1"
	"github.com/medchain/docanchor/internal/common"
	"github.com/medchain/docanchor/internal/export"
	"github.com/medchain/docanchor/internal/extract"
	"github.com/medchain/docanchor/internal/ledger"
	"github.com/medchain/docanchor/internal/pipeline"
	"github.com/medchain/docanchor/internal/repository"
	"github.com/medchain/docanchor/internal/server"
	"github.com/medchain/docanchor/internal/storage"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("configuration invalid", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	contract, err := ledger.ParseAddress(cfg.Ledger.ContractAddress)
	if err != nil {
		logger.Error("CONTRACT_ADDRESS invalid", "error", err)
		os.Exit(1)
	}
	uploader, err := ledger.ParseAddress(cfg.Ledger.UploaderAddress)
	if err != nil {
		logger.Error("UPLOADER_ADDRESS invalid", "error", err)
		os.Exit(1)
	}

	entc, pool, err := repository.Open(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxConns:        cfg.Database.MaxConns,
		MinConns:        cfg.Database.MinConns,
		MaxConnLifetime: cfg.Database.MaxConnLifetime,
		MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
		DialTimeout:     cfg.Database.DialTimeout,
	}, logger)
	if err != nil {
		logger.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer repository.Close(entc, pool, logger)

	if err := repository.HealthCheck(ctx, pool, cfg.Database.DialTimeout, logger); err != nil {
		logger.Error("database health check failed", "error", err)
		os.Exit(1)
	}

	records := repository.NewIngestionRepository(entc, logger)
	store := storage.NewClient(cfg.Storage.APIURL, logger,
		storage.WithRetry(cfg.Storage.MaxAttempts, cfg.Storage.BackoffBase))
	ledgerClient := ledger.NewClient(cfg.Ledger.RPCURL, contract, uploader, cfg.Ledger.ReceiptInterval, logger)

	orch := pipeline.NewOrchestrator(store, ledgerClient, records, []byte(cfg.EncryptionKey), pipeline.Timeouts{
		Store:      cfg.Storage.PutTimeout,
		Get:        cfg.Storage.GetTimeout,
		Permission: cfg.Ledger.PermissionTimeout,
		Anchor:     cfg.Ledger.AnchorTimeout,
	}, logger)
	extractor := extract.New(cfg.Extract, logger)
	exporter := export.NewService(records, logger)

	grpcServer := grpc.NewServer(grpc.UnaryInterceptor(server.RequestLogger(logger)))
	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	svc := server.NewDocAnchorService(extractor, orch, records, exporter, logger)
	docanchorv1.RegisterDocAnchorServiceServer(grpcServer, svc)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("listen failed", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	logger.Info("gRPC serving", "addr", cfg.Server.GRPCAddr, "uploader", uploader.Hex(), "contract", contract.Hex())

	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("grpc serve failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	hs.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	grpcServer.GracefulStop()
	logger.Info("stopped")
}
