package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/remittance_advisor/internal/apperrors"
	"github.com/SscSPs/remittance_advisor/internal/core/domain"
	"github.com/SscSPs/remittance_advisor/internal/core/ports"
	portssvc "github.com/SscSPs/remittance_advisor/internal/core/ports/services"
)

// ExchangeRateService serves single rate lookups for a supported pair.
type ExchangeRateService struct {
	BaseService
	source     ports.RateSource
	currencies domain.CurrencySet
}

// NewExchangeRateService creates a new ExchangeRateService.
func NewExchangeRateService(source ports.RateSource, currencies domain.CurrencySet) *ExchangeRateService {
	return &ExchangeRateService{
		source:     source,
		currencies: currencies,
	}
}

var _ portssvc.ExchangeRateSvcFacade = (*ExchangeRateService)(nil)

// GetExchangeRate fetches the rate for fromCode->toCode on date, or the latest
// rate when date is nil.
func (s *ExchangeRateService) GetExchangeRate(ctx context.Context, fromCode, toCode string, date *time.Time) (*domain.ExchangeRate, error) {
	base, quote, err := resolvePair(s.currencies, fromCode, toCode)
	if err != nil {
		return nil, err
	}

	rate, err := s.source.LookupRate(ctx, base, quote, date)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch exchange rate",
			slog.String("from", base.String()),
			slog.String("to", quote.String()))
		return nil, asLookupError(err)
	}

	sample := domain.RateSample{Rate: rate}
	if date != nil {
		sample.Date = *date
	}
	return &domain.ExchangeRate{Base: base, Quote: quote, RateSample: sample}, nil
}

// asLookupError makes sure errors from a rate source carry ErrLookup.
func asLookupError(err error) error {
	if errors.Is(err, apperrors.ErrLookup) {
		return err
	}
	return fmt.Errorf("%w: %w", apperrors.ErrLookup, err)
}
