package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/banquecore/lending/internal/application/usecase"
	"github.com/banquecore/lending/internal/domain/service"
	"github.com/banquecore/lending/internal/infrastructure/adapter"
	"github.com/banquecore/lending/internal/infrastructure/config"
	infrakafka "github.com/banquecore/lending/internal/infrastructure/kafka"
	pgRepo "github.com/banquecore/lending/internal/infrastructure/persistence/postgres"
	grpcPresentation "github.com/banquecore/lending/internal/presentation/grpc"
	"github.com/banquecore/lending/internal/presentation/rest"
	pkgkafka "github.com/banquecore/lending/pkg/kafka"
	"github.com/banquecore/lending/pkg/observability"
	"github.com/banquecore/lending/pkg/postgres"
)

const eventsTopic = "lending.loan.events"

func main() {
	cfg := config.Load()

	logger := observability.InitLogger(observability.LogConfig{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Service: cfg.ServiceName,
	})

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	logger.Info("starting lending engine",
		"grpc_port", cfg.GRPCPort,
		"http_port", cfg.HTTPPort,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// --- Database -----------------------------------------------------------
	pgCfg := postgres.Config{
		Host:     cfg.DB.Host,
		Port:     cfg.DB.Port,
		User:     cfg.DB.User,
		Password: cfg.DB.Password,
		Database: cfg.DB.Name,
		SSLMode:  cfg.DB.SSLMode,
		MaxConns: int32(cfg.DB.MaxConns),
	}

	if err := postgres.RunMigrations(pgCfg.DSN(), cfg.MigrationsDir); err != nil {
		logger.Error("migrations failed", "error", err)
		os.Exit(1)
	}

	pool, err := postgres.NewPool(ctx, pgCfg)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()
	logger.Info("connected to database", "host", cfg.DB.Host, "database", cfg.DB.Name)

	// --- Infrastructure adapters -------------------------------------------
	loanRepo := pgRepo.NewLoanRepo(pool)
	installmentRepo := pgRepo.NewInstallmentRepo(pool)
	repaymentRepo := pgRepo.NewRepaymentRepo(pool)
	catalog := pgRepo.NewLoanTypeRepo(pool)

	producer := pkgkafka.NewProducer(pkgkafka.Config{
		Brokers:  cfg.Kafka.Brokers,
		ClientID: cfg.ServiceName,
	})
	defer producer.Close()
	publisher := infrakafka.NewKafkaEventPublisher(producer, eventsTopic, logger)

	ledger := adapter.NewStubAccountLedger()
	penalties := service.NewLatePenaltyPolicy(service.PenaltyBasis(cfg.Penalty.Basis))
	metrics := observability.NewMetrics()

	// --- Use cases ----------------------------------------------------------
	simulateUC := usecase.NewSimulateLoanUseCase(catalog)
	createAppUC := usecase.NewCreateApplicationUseCase(catalog, loanRepo, publisher)
	approveUC := usecase.NewApproveLoanUseCase(catalog, loanRepo, publisher)
	rejectUC := usecase.NewRejectLoanUseCase(loanRepo, publisher)
	repayUC := usecase.NewRecordRepaymentUseCase(loanRepo, catalog, penalties, ledger, publisher)
	listOverdueUC := usecase.NewListOverdueUseCase(installmentRepo)
	getLoanUC := usecase.NewGetLoanUseCase(loanRepo)
	clientLoansUC := usecase.NewListClientLoansUseCase(loanRepo)
	repaymentsUC := usecase.NewListInstallmentRepaymentsUseCase(repaymentRepo)

	// --- gRPC server --------------------------------------------------------
	handler := grpcPresentation.NewLendingHandler(
		simulateUC, createAppUC, approveUC, rejectUC, repayUC, listOverdueUC, getLoanUC, clientLoansUC, repaymentsUC,
		metrics, logger,
	)
	grpcServer := grpcPresentation.NewServer(handler, logger)

	go func() {
		if err := grpcServer.Serve(cfg.GRPCAddr()); err != nil {
			logger.Error("gRPC server error", "error", err)
			os.Exit(1)
		}
	}()

	// --- HTTP server (health + metrics) ------------------------------------
	mux := http.NewServeMux()
	rest.NewHealthHandler(pool, logger).RegisterRoutes(mux)
	mux.Handle("GET /metrics", metrics.Handler())

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "addr", cfg.HTTPAddr())
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", "error", err)
			os.Exit(1)
		}
	}()

	// --- Graceful shutdown --------------------------------------------------
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	logger.Info("received shutdown signal", "signal", sig.String())

	grpcServer.GracefulStop()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}

	logger.Info("lending engine stopped")
}
