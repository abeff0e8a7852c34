// Package exchangeratehost talks to the exchangerate.host "live" and "historical"
// endpoints. Both require an access key.
package exchangeratehost

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
const ProviderName = "exchangeratehost"

// quotesResponse is the shape shared by /live and /historical.
type quotesResponse struct {
	Success bool               `json:"success"`
	Quotes  map[string]float64 `json:"quotes"`
	Error   *struct {
		Code int    `json:"code"`
		Type string `json:"type"`
		Info string `json:"info"`
	} `json:"error"`
}

// Client implements ports.RateSource against exchangerate.host.
type Client struct {
	http *resty.Client
}

var _ ports.NamedRateSource = (*Client)(nil)

// NewClient creates a client for baseURL (e.g. https://api.exchangerate.host).
func NewClient(baseURL, accessKey string, timeout time.Duration) *Client {
	return &Client{
		http: resty.New().
			SetBaseURL(strings.TrimRight(baseURL, "/")).
			SetTimeout(timeout).
			SetHeader("Accept", "application/json").
			SetQueryParam("access_key", accessKey),
	}
}

// Name returns the provider name.
func (c *Client) Name() string {
	return ProviderName
}

// LookupRate fetches the base->quote rate, latest when date is nil.
func (c *Client) LookupRate(ctx context.Context, base, quote domain.CurrencyCode, date *time.Time) (float64, error) {
	req := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"source":     base.String(),
			"currencies": quote.String(),
			"format":     "1",
		})

	endpoint, fallbackMsg := "/live", "failed to fetch current rate"
	if date != nil {
		endpoint, fallbackMsg = "/historical", "failed to fetch historical rate"
		req.SetQueryParam("date", date.Format(domain.DateLayout))
	}

	resp, err := req.Get(endpoint)
	if err != nil {
		return 0, fmt.Errorf("%w: request to %s failed: %w", apperrors.ErrLookup, ProviderName, err)
	}
	if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		return 0, fmt.Errorf("%w: exchange rate API error: %d", apperrors.ErrLookup, resp.StatusCode())
	}

	var payload quotesResponse
	if err := json.Unmarshal(resp.Body(), &payload); err != nil {
		return 0, fmt.Errorf("%w: malformed response payload: %w", apperrors.ErrLookup, err)
	}
	if !payload.Success {
		msg := fallbackMsg
		if payload.Error != nil && payload.Error.Info != "" {
			msg = payload.Error.Info
		}
		return 0, fmt.Errorf("%w: %s", apperrors.ErrLookup, msg)
	}

	// quotes are keyed by the concatenated pair, e.g. "GBPAUD"
	rate, ok := payload.Quotes[base.String()+quote.String()]
	if !ok || rate <= 0 {
		return 0, fmt.Errorf("%w: exchange rate not found for %s", apperrors.ErrLookup, quote)
	}
	return rate, nil
}
