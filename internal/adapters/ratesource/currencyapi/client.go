// Package currencyapi talks to the free, keyless currency-api published on jsDelivr
// (https://github.com/fawazahmed0/exchange-api). Each release is tagged by date,
// so historical rates are read from the release for that day.
package currencyapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/SscSPs/remittance_advisor/internal/apperrors"
	"github.com/SscSPs/remittance_advisor/internal/core/domain"
	"github.com/SscSPs/remittance_advisor/internal/core/ports"
	"github.com/go-resty/resty/v2"
)

// ProviderName identifies this adapter in logs and metrics.
const ProviderName = "currencyapi"

const latestTag = "latest"

// Client implements ports.RateSource against the currency-api CDN.
type Client struct {
	baseURL string
	http    *resty.Client
}

var _ ports.NamedRateSource = (*Client)(nil)

// NewClient creates a client. baseURL is the package root without the version tag,
// e.g. https://cdn.jsdelivr.net/npm/@fawazahmed0/currency-api
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: resty.New().
			SetTimeout(timeout).
			SetHeader("Accept", "application/json"),
	}
}

// Name returns the provider name.
func (c *Client) Name() string {
	return ProviderName
}

// LookupRate fetches the base->quote rate, latest when date is nil.
func (c *Client) LookupRate(ctx context.Context, base, quote domain.CurrencyCode, date *time.Time) (float64, error) {
	tag := latestTag
	if date != nil {
		tag = date.Format(domain.DateLayout)
	}
	// absolute URL: resty would insert a slash between a base URL and "@tag"
	url := fmt.Sprintf("%s@%s/v1/currencies/%s.json", c.baseURL, tag, base.Lower())

	resp, err := c.http.R().SetContext(ctx).Get(url)
	if err != nil {
		return 0, fmt.Errorf("%w: request to %s failed: %w", apperrors.ErrLookup, ProviderName, err)
	}
	if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		return 0, fmt.Errorf("%w: exchange rate API error: %d", apperrors.ErrLookup, resp.StatusCode())
	}

	return parseRate(resp.Body(), base, quote)
}

// parseRate extracts payload[base][quote] from a currencies/<base>.json document:
//
//	{"date": "2024-03-06", "gbp": {"aud": 1.93, "eur": 1.17, ...}}
func parseRate(body []byte, base, quote domain.CurrencyCode) (float64, error) {
	var payload map[string]json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		return 0, fmt.Errorf("%w: malformed response payload: %w", apperrors.ErrLookup, err)
	}

	rawRates, ok := payload[base.Lower()]
	if !ok {
		return 0, fmt.Errorf("%w: currency pair %s/%s missing from response", apperrors.ErrLookup, base, quote)
	}

	var rates map[string]float64
	if err := json.Unmarshal(rawRates, &rates); err != nil {
		return 0, fmt.Errorf("%w: malformed rates for %s: %w", apperrors.ErrLookup, base, err)
	}

	rate, ok := rates[quote.Lower()]
	if !ok || rate <= 0 {
		return 0, fmt.Errorf("%w: exchange rate not found for %s", apperrors.ErrLookup, quote)
	}
	return rate, nil
}
