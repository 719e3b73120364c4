package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/fekuna/omnipos-retail-service/config"
	"github.com/fekuna/omnipos-retail-service/internal/logger"
	"github.com/fekuna/omnipos-retail-service/internal/metrics"
	"github.com/fekuna/omnipos-retail-service/internal/seed"
	"github.com/fekuna/omnipos-retail-service/internal/server"
	"github.com/fekuna/omnipos-retail-service/internal/telemetry"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// 1. Load Configuration
	_ = godotenv.Load() // Load .env file if it exists
	cfg := config.LoadEnv()

	// 2. Initialize Logger
	logConfig := &logger.ZapLoggerConfig{
		IsDevelopment:     false,
		Encoding:          cfg.Logger.Encoding,
		Level:             cfg.Logger.Level,
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	}

	if cfg.Server.AppEnv == "development" || cfg.Server.AppEnv == "dev" {
		logConfig.IsDevelopment = true
		logConfig.Encoding = "console"
		logConfig.Level = "debug"
	}

	appLogger := logger.NewZapLogger(logConfig)
	defer appLogger.Sync()

	// 3. Check embedded demo data
	if err := seed.Validate(); err != nil {
		appLogger.Fatal("Embedded seed data is invalid", zap.Error(err))
	}

	// 4. Tracing
	shutdownTracing, err := telemetry.Setup(cfg.Tracing, os.Stdout)
	if err != nil {
		appLogger.Fatal("Could not initialize tracing", zap.Error(err))
	}

	// 5. Open Storage
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	backend, err := openBackend(ctx, cfg, appLogger)
	cancel()
	if err != nil {
		appLogger.Fatal("Could not open storage", zap.String("driver", cfg.Storage.Driver), zap.Error(err))
	}
	defer backend.Close()

	// 6. Build the API
	loc := cfg.Store.Location()
	srv := server.New(backend, server.Options{
		Location:    loc,
		Metrics:     metrics.New(),
		ServiceName: cfg.Tracing.ServiceName,
	}, appLogger)

	if cfg.Store.SeedOnStart {
		seedCtx, cancel := context.WithTimeout(context.Background(), time.Minute)
		err := srv.Seed(seedCtx)
		cancel()
		if err != nil {
			appLogger.Fatal("Could not seed storage", zap.Error(err))
		}
	}

	// 7. Start HTTP Server
	port := cfg.Server.HTTPPort
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	httpServer := &http.Server{
		Addr:         port,
		Handler:      srv.Handler(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	appLogger.Info("Starting HTTP server",
		zap.String("port", port),
		zap.String("storage", cfg.Storage.Driver),
		zap.String("timezone", loc.String()))

	// Graceful Shutdown
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("failed to serve", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server shutdown failed", zap.Error(err))
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		appLogger.Error("Tracing shutdown failed", zap.Error(err))
	}
	appLogger.Info("Server stopped")
}
