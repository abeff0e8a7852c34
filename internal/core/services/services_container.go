package services

import (
	"github.com/SscSPs/remittance_advisor/internal/core/ports"
	portssvc "github.com/SscSPs/remittance_advisor/internal/core/ports/services"
	"github.com/SscSPs/remittance_advisor/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, source ports.RateSource, options ...DecisionOption) *portssvc.ServiceContainer {
	currencies := cfg.CurrencySet()

	return &portssvc.ServiceContainer{
		Currency:     NewCurrencyService(currencies),
		ExchangeRate: NewExchangeRateService(source, currencies),
		Decision:     NewDecisionService(source, currencies, options...),
	}
}
