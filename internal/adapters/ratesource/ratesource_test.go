package ratesource_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/SscSPs/remittance_advisor/internal/adapters/ratesource"
	"github.com/SscSPs/remittance_advisor/internal/adapters/ratesource/currencyapi"
	"github.com/SscSPs/remittance_advisor/internal/adapters/ratesource/exchangeratehost"
	"github.com/SscSPs/remittance_advisor/internal/apperrors"
	"github.com/SscSPs/remittance_advisor/internal/core/domain"
	"github.com/SscSPs/remittance_advisor/internal/platform/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockNamedRateSource struct {
	mock.Mock
}

func (m *MockNamedRateSource) Name() string {
	return "mock"
}

func (m *MockNamedRateSource) LookupRate(ctx context.Context, base, quote domain.CurrencyCode, date *time.Time) (float64, error) {
	args := m.Called(ctx, base, quote, date)
	return args.Get(0).(float64), args.Error(1)
}

type MockObserver struct {
	mock.Mock
}

func (m *MockObserver) ObserveRateLookup(provider, kind string, elapsed time.Duration, err error) {
	m.Called(provider, kind, elapsed, err)
}

func TestInstrumented_Current(t *testing.T) {
	ctx := context.Background()
	source := new(MockNamedRateSource)
	observer := new(MockObserver)

	source.On("LookupRate", ctx, domain.CurrencyCode("GBP"), domain.CurrencyCode("AUD"), (*time.Time)(nil)).Return(1.93, nil).Once()
	observer.On("ObserveRateLookup", "mock", "current", mock.AnythingOfType("time.Duration"), nil).Once()

	rate, err := ratesource.NewInstrumented(source, observer).LookupRate(ctx, "GBP", "AUD", nil)

	require.NoError(t, err)
	assert.Equal(t, 1.93, rate)
	source.AssertExpectations(t)
	observer.AssertExpectations(t)
}

func TestInstrumented_HistoricalFailure(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)
	lookupErr := fmt.Errorf("%w: exchange rate API error: 404", apperrors.ErrLookup)
	source := new(MockNamedRateSource)
	observer := new(MockObserver)

	source.On("LookupRate", ctx, domain.CurrencyCode("GBP"), domain.CurrencyCode("AUD"), &date).Return(0.0, lookupErr).Once()
	observer.On("ObserveRateLookup", "mock", "historical", mock.AnythingOfType("time.Duration"), lookupErr).Once()

	wrapped := ratesource.NewInstrumented(source, observer)
	rate, err := wrapped.LookupRate(ctx, "GBP", "AUD", &date)

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrLookup))
	assert.Zero(t, rate)
	assert.Equal(t, "mock", wrapped.Name())
	observer.AssertExpectations(t)
}

func TestInstrumented_NilObserver(t *testing.T) {
	ctx := context.Background()
	source := new(MockNamedRateSource)
	source.On("LookupRate", ctx, domain.CurrencyCode("USD"), domain.CurrencyCode("EUR"), (*time.Time)(nil)).Return(0.92, nil).Once()

	rate, err := ratesource.NewInstrumented(source, nil).LookupRate(ctx, "USD", "EUR", nil)

	require.NoError(t, err)
	assert.Equal(t, 0.92, rate)
}

func TestNew_SelectsProvider(t *testing.T) {
	cfg := &config.Config{RateProvider: config.ProviderCurrencyAPI, RateAPIBaseURL: config.DefaultCurrencyAPIBaseURL, RateAPITimeout: time.Second}
	source, err := ratesource.New(cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, currencyapi.ProviderName, source.Name())

	cfg = &config.Config{RateProvider: config.ProviderExchangeRateHost, RateAPIBaseURL: config.DefaultExchangeRateHostBaseURL, RateAPIKey: "k", RateAPITimeout: time.Second}
	source, err = ratesource.New(cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, exchangeratehost.ProviderName, source.Name())

	_, err = ratesource.New(&config.Config{RateProvider: "fixer"}, nil)
	assert.Error(t, err)
}
