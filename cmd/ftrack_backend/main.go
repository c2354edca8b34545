package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/finwise/finance_tracker_app/internal/adapters/database/sqlite"
	"github.com/finwise/finance_tracker_app/internal/core/services"
	"github.com/finwise/finance_tracker_app/internal/handlers"
	"github.com/finwise/finance_tracker_app/internal/middleware"
	"github.com/finwise/finance_tracker_app/internal/platform/config"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	portssvc "github.com/finwise/finance_tracker_app/internal/core/ports/services"
)

func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Open the snapshot store (runs migrations on the sqlite file)
	repo, err := sqlite.NewSnapshotRepository(cfg.SQLitePath)
	if err != nil {
		logger.Error("Failed to initialize snapshot store", slog.String("error", err.Error()), slog.String("path", cfg.SQLitePath))
		os.Exit(1)
	}
	defer func() {
		if cerr := repo.Close(); cerr != nil {
			logger.Error("Error closing snapshot store", slog.String("error", cerr.Error()))
		}
	}()
	logger.Info("Snapshot store opened", slog.String("path", cfg.SQLitePath))

	// Build the ledger store; seeds itself when no snapshot exists
	ledger, source := services.NewLedgerService(context.Background(), repo)
	logger.Info("Ledger store ready", slog.String("load_source", string(source)))

	// Log every ledger change; also exercises the subscription surface
	ledger.Subscribe(func(evt portssvc.Event) {
		logger.Debug("Ledger changed", slog.String("change_type", string(evt.Type)))
	})

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS, rate limiting)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(corsConfig(cfg)))

	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		logger.Error("Invalid RATE_LIMIT value", slog.String("error", err.Error()), slog.String("rate_limit", cfg.RateLimit))
		os.Exit(1)
	}
	r.Use(middleware.RateLimit(limiter.New(memory.NewStore(), rate)))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, ledger)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func corsConfig(cfg *config.Config) cors.Config {
	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.CORSAllowedOrigins) == 1 && cfg.CORSAllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.CORSAllowedOrigins
	}
	return corsCfg
}
