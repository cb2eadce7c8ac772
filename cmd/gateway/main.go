package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DanielPopoola/paypal-payment-gateway/internal/api"
	"github.com/DanielPopoola/paypal-payment-gateway/internal/application/services"
	"github.com/DanielPopoola/paypal-payment-gateway/internal/config"
	"github.com/DanielPopoola/paypal-payment-gateway/internal/infrastructure/paypal"
	"github.com/DanielPopoola/paypal-payment-gateway/internal/infrastructure/persistence"
	"github.com/DanielPopoola/paypal-payment-gateway/internal/infrastructure/persistence/postgres"
	"github.com/DanielPopoola/paypal-payment-gateway/internal/interfaces/rest/router"
	"github.com/DanielPopoola/paypal-payment-gateway/internal/telemetry"
	"github.com/DanielPopoola/paypal-payment-gateway/internal/worker"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := cfg.Logger.NewLogger()
	slog.SetDefault(logger)

	logger.Info("starting gateway service",
		"env", cfg.Primary.Env,
		"port", cfg.Server.Port,
		"log_level", cfg.Logger.Level,
	)

	ctx := context.Background()

	shutdownTracer, err := telemetry.InitTracer(ctx, cfg.Telemetry, logger)
	if err != nil {
		logger.Error("failed to initialize tracing", "error", err)
		os.Exit(1)
	}

	db, err := persistence.Connect(ctx, &cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Migrate(ctx); err != nil {
		logger.Error("failed to apply migrations", "error", err)
		os.Exit(1)
	}

	paymentRepo := postgres.NewPaymentRepository(db.Pool)
	paypalClient := paypal.NewClient(cfg.PayPal, paypal.NewMemoryTokenCache(nil), logger)

	plugin, err := services.NewPayPalPlugin(cfg.PayPal, paypalClient, paymentRepo, logger)
	if err != nil {
		logger.Error("failed to configure paypal plugin", "error", err)
		os.Exit(1)
	}
	paymentService := services.NewPaymentService(plugin, paymentRepo, logger)

	doc, err := api.LoadDocument(ctx)
	if err != nil {
		logger.Error("failed to load openapi document", "error", err)
		os.Exit(1)
	}

	handler, err := router.New(paymentService, doc, cfg.Server.RequestTimeout, logger)
	if err != nil {
		logger.Error("failed to build router", "error", err)
		os.Exit(1)
	}

	server := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Server.Port,
		Handler:      otelhttp.NewHandler(handler, "gateway"),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	reconciler := worker.NewReconciler(paymentRepo, paymentService, cfg.Worker, logger)

	workerCtx, cancelWorkers := context.WithCancel(context.Background())
	defer cancelWorkers()

	go reconciler.Start(workerCtx)

	go func() {
		logger.Info("server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	cancelWorkers()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}
	if err := shutdownTracer(shutdownCtx); err != nil {
		logger.Error("failed to flush traces", "error", err)
	}

	logger.Info("server exited")
}
