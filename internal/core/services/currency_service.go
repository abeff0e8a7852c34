package services

import (
	"context"
	"fmt"

	"github.com/SscSPs/remittance_advisor/internal/apperrors"
	"github.com/SscSPs/remittance_advisor/internal/core/domain"
	portssvc "github.com/SscSPs/remittance_advisor/internal/core/ports/services"
)

type CurrencyService struct {
	BaseService
	currencies domain.CurrencySet
}

func NewCurrencyService(currencies domain.CurrencySet) *CurrencyService {
	return &CurrencyService{currencies: currencies}
}

var _ portssvc.CurrencySvcFacade = (*CurrencyService)(nil)

func (s *CurrencyService) GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	code := domain.ParseCurrencyCode(currencyCode)
	if !code.IsWellFormed() {
		return nil, fmt.Errorf("%w: invalid currency code '%s'", apperrors.ErrValidation, currencyCode)
	}
	currency, ok := s.currencies.Get(code)
	if !ok {
		return nil, fmt.Errorf("%w: currency '%s' is not supported", apperrors.ErrNotFound, code)
	}
	return &currency, nil
}

func (s *CurrencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	return s.currencies.List(), nil
}

// resolvePair normalises a from/to pair and checks it against the supported set.
func resolvePair(currencies domain.CurrencySet, from, to string) (domain.CurrencyCode, domain.CurrencyCode, error) {
	base := domain.ParseCurrencyCode(from)
	quote := domain.ParseCurrencyCode(to)

	if base == "" || quote == "" {
		return "", "", fmt.Errorf("%w: both currencies are required", apperrors.ErrValidation)
	}
	if !currencies.Contains(base) {
		return "", "", fmt.Errorf("%w: unsupported currency '%s'", apperrors.ErrValidation, from)
	}
	if !currencies.Contains(quote) {
		return "", "", fmt.Errorf("%w: unsupported currency '%s'", apperrors.ErrValidation, to)
	}
	if base == quote {
		return "", "", fmt.Errorf("%w: from and to currency codes cannot be the same", apperrors.ErrValidation)
	}
	return base, quote, nil
}
