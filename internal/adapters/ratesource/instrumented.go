package ratesource

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/remittance_advisor/internal/core/domain"
	"github.com/SscSPs/remittance_advisor/internal/core/ports"
	"github.com/SscSPs/remittance_advisor/internal/middleware"
)

// LookupObserver receives one observation per upstream lookup.
type LookupObserver interface {
	ObserveRateLookup(provider, kind string, elapsed time.Duration, err error)
}

// Instrumented wraps a rate source with metrics and debug logging.
// It passes results through unchanged.
type Instrumented struct {
	next     ports.NamedRateSource
	observer LookupObserver
}

var _ ports.NamedRateSource = (*Instrumented)(nil)

// NewInstrumented wraps next. A nil observer disables metrics but keeps logging.
func NewInstrumented(next ports.NamedRateSource, observer LookupObserver) *Instrumented {
	return &Instrumented{next: next, observer: observer}
}

// Name returns the wrapped provider's name.
func (i *Instrumented) Name() string {
	return i.next.Name()
}

// LookupRate delegates to the wrapped source and records the outcome.
func (i *Instrumented) LookupRate(ctx context.Context, base, quote domain.CurrencyCode, date *time.Time) (float64, error) {
	kind, dateLabel := "current", "latest"
	if date != nil {
		kind, dateLabel = "historical", date.Format(domain.DateLayout)
	}

	start := time.Now()
	rate, err := i.next.LookupRate(ctx, base, quote, date)
	elapsed := time.Since(start)

	if i.observer != nil {
		i.observer.ObserveRateLookup(i.next.Name(), kind, elapsed, err)
	}

	logger := middleware.GetLoggerFromCtx(ctx).With(
		slog.String("provider", i.next.Name()),
		slog.String("pair", base.String()+"/"+quote.String()),
		slog.String("date", dateLabel),
		slog.Duration("elapsed", elapsed),
	)
	if err != nil {
		logger.Debug("Rate lookup failed", slog.String("error", err.Error()))
		return 0, err
	}
	logger.Debug("Rate lookup succeeded", slog.Float64("rate", rate))
	return rate, nil
}
