// Package ratesource builds the configured upstream exchange rate provider.
package ratesource

import (
	"fmt"

	"github.com/SscSPs/remittance_advisor/internal/adapters/ratesource/currencyapi"
	"github.com/SscSPs/remittance_advisor/internal/adapters/ratesource/exchangeratehost"
	"github.com/SscSPs/remittance_advisor/internal/core/ports"
	"github.com/SscSPs/remittance_advisor/internal/platform/config"
)

// New returns the provider selected by cfg.RateProvider, wrapped for observation.
func New(cfg *config.Config, observer LookupObserver) (ports.NamedRateSource, error) {
	var source ports.NamedRateSource
	switch cfg.RateProvider {
	case config.ProviderCurrencyAPI:
		source = currencyapi.NewClient(cfg.RateAPIBaseURL, cfg.RateAPITimeout)
	case config.ProviderExchangeRateHost:
		source = exchangeratehost.NewClient(cfg.RateAPIBaseURL, cfg.RateAPIKey, cfg.RateAPITimeout)
	default:
		return nil, fmt.Errorf("unsupported rate provider %q", cfg.RateProvider)
	}
	return NewInstrumented(source, observer), nil
}
