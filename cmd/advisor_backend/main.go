package main

import (
	"log/slog"
	"os"
	"time"

	_ "github.com/SscSPs/remittance_advisor/cmd/docs"
	"github.com/SscSPs/remittance_advisor/internal/adapters/ratesource"
	"github.com/SscSPs/remittance_advisor/internal/core/services"
	"github.com/SscSPs/remittance_advisor/internal/handlers"
	"github.com/SscSPs/remittance_advisor/internal/middleware"
	"github.com/SscSPs/remittance_advisor/internal/platform/config"
	"github.com/SscSPs/remittance_advisor/internal/platform/metrics"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// @title Remittance Advisor API
// @version 1.0
// @description Recommends whether to send money now or wait, based on the last six months of exchange rates.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	m := metrics.New()

	source, err := ratesource.New(cfg, m)
	if err != nil {
		logger.Error("Failed to create rate source", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Rate source configured",
		slog.String("provider", source.Name()),
		slog.String("base_url", cfg.RateAPIBaseURL),
		slog.Duration("timeout", cfg.RateAPITimeout))

	serviceContainer := services.NewServiceContainer(cfg, source, services.WithDecisionRecorder(m))

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, cors, metrics)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.CORSAllowedOrigins,
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders: []string{middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}))
	if cfg.MetricsEnabled {
		r.Use(m.Middleware())
	}

	err = r.SetTrustedProxies(nil)
	if err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer, m)

	logger.Info("Server starting",
		slog.String("port", cfg.Port),
		slog.Bool("auth_enabled", cfg.AuthEnabled()),
		slog.Int("supported_currencies", len(cfg.SupportedCurrencies)))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
