package config

import (
	"fmt"
	"log"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/remittance_advisor/internal/core/domain"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Supported upstream rate providers.
const (
	ProviderCurrencyAPI      = "currencyapi"
	ProviderExchangeRateHost = "exchangeratehost"
)

// Default upstream base URLs, per provider.
const (
	DefaultCurrencyAPIBaseURL      = "https://cdn.jsdelivr.net/npm/@fawazahmed0/currency-api"
	DefaultExchangeRateHostBaseURL = "https://api.exchangerate.host"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool
	LogLevel     slog.Level

	// Upstream rate provider
	RateProvider   string
	RateAPIBaseURL string
	RateAPIKey     string
	RateAPITimeout time.Duration

	SupportedCurrencies []domain.CurrencyCode
	CORSAllowedOrigins  []string
	MetricsEnabled      bool

	// JWTSecret enables bearer auth on /api/v1 when non-empty.
	JWTSecret string
}

// AuthEnabled reports whether the API requires a bearer token.
func (c *Config) AuthEnabled() bool {
	return c.JWTSecret != ""
}

// CurrencySet builds the supported currency set from configuration.
func (c *Config) CurrencySet() domain.CurrencySet {
	return domain.NewCurrencySet(c.SupportedCurrencies...)
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("RATE_PROVIDER", ProviderCurrencyAPI)
	viper.SetDefault("RATE_API_BASE_URL", "")
	viper.SetDefault("RATE_API_KEY", "")
	viper.SetDefault("RATE_API_TIMEOUT", "10s")
	viper.SetDefault("SUPPORTED_CURRENCIES", "GBP,INR,USD,EUR,AUD,CAD,JPY")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("METRICS_ENABLED", true)
	viper.SetDefault("JWT_SECRET", "")

	// Environment variables override .env values, which override the defaults above.
	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.MetricsEnabled = viper.GetBool("METRICS_ENABLED")
	cfg.JWTSecret = viper.GetString("JWT_SECRET")

	levelStr := viper.GetString("LOG_LEVEL")
	if err := cfg.LogLevel.UnmarshalText([]byte(levelStr)); err != nil {
		cfg.LogLevel = slog.LevelInfo
		log.Printf("Warning: Invalid value for LOG_LEVEL ('%s'). Defaulting to info.\n", levelStr)
	}

	cfg.RateProvider = strings.ToLower(strings.TrimSpace(viper.GetString("RATE_PROVIDER")))
	switch cfg.RateProvider {
	case ProviderCurrencyAPI:
		cfg.RateAPIBaseURL = DefaultCurrencyAPIBaseURL
	case ProviderExchangeRateHost:
		cfg.RateAPIBaseURL = DefaultExchangeRateHostBaseURL
	default:
		return nil, fmt.Errorf("unsupported RATE_PROVIDER %q (want %q or %q)", cfg.RateProvider, ProviderCurrencyAPI, ProviderExchangeRateHost)
	}
	if baseURL := strings.TrimSpace(viper.GetString("RATE_API_BASE_URL")); baseURL != "" {
		cfg.RateAPIBaseURL = strings.TrimRight(baseURL, "/")
	}

	cfg.RateAPIKey = viper.GetString("RATE_API_KEY")
	if cfg.RateProvider == ProviderExchangeRateHost && cfg.RateAPIKey == "" {
		return nil, fmt.Errorf("RATE_API_KEY is required when RATE_PROVIDER is %q", ProviderExchangeRateHost)
	}

	timeoutStr := viper.GetString("RATE_API_TIMEOUT")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil || timeout <= 0 {
		timeout = 10 * time.Second
		log.Printf("Warning: Invalid value for RATE_API_TIMEOUT ('%s'). Defaulting to %s.\n", timeoutStr, timeout)
	}
	cfg.RateAPITimeout = timeout

	for _, raw := range splitList(viper.GetString("SUPPORTED_CURRENCIES")) {
		code := domain.ParseCurrencyCode(raw)
		if !code.IsWellFormed() {
			return nil, fmt.Errorf("SUPPORTED_CURRENCIES contains invalid code %q", raw)
		}
		cfg.SupportedCurrencies = append(cfg.SupportedCurrencies, code)
	}
	if len(cfg.SupportedCurrencies) < 2 {
		return nil, fmt.Errorf("SUPPORTED_CURRENCIES must list at least two currencies")
	}

	cfg.CORSAllowedOrigins = splitList(viper.GetString("CORS_ALLOWED_ORIGINS"))

	return cfg, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
