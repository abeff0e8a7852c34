package ports

import (
	"context"
	"time"

	"github.com/SscSPs/remittance_advisor/internal/core/domain"
)

// RateSource looks up exchange rates from an external provider.
// Implementations own transport concerns such as timeouts; callers get either a
// positive rate or an error wrapping apperrors.ErrLookup.
type RateSource interface {
	// LookupRate returns the rate for base->quote. A nil date requests the latest rate,
	// otherwise the rate published for that calendar date.
	LookupRate(ctx context.Context, base, quote domain.CurrencyCode, date *time.Time) (float64, error)
}

// NamedRateSource is a RateSource that can report which provider it talks to.
type NamedRateSource interface {
	RateSource
	Name() string
}
