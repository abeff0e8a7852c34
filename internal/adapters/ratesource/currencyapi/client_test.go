package currencyapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/SscSPs/remittance_advisor/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const packagePath = "/npm/@fawazahmed0/currency-api"

type fakeCDN struct {
	mu     sync.Mutex
	paths  []string
	status int
	body   string
	server *httptest.Server
}

func newFakeCDN(t *testing.T, status int, body string) *fakeCDN {
	t.Helper()
	f := &fakeCDN{status: status, body: body}
	f.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.paths = append(f.paths, r.URL.Path)
		f.mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(f.status)
		_, _ = w.Write([]byte(f.body))
	}))
	t.Cleanup(f.server.Close)
	return f
}

func (f *fakeCDN) client() *Client {
	return NewClient(f.server.URL+packagePath+"/", time.Second)
}

func (f *fakeCDN) requestedPaths() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.paths...)
}

func TestLookupRate_Latest(t *testing.T) {
	cdn := newFakeCDN(t, http.StatusOK, `{"date":"2024-03-06","gbp":{"aud":1.9321,"eur":1.1702}}`)

	rate, err := cdn.client().LookupRate(context.Background(), "GBP", "AUD", nil)

	require.NoError(t, err)
	assert.InDelta(t, 1.9321, rate, 1e-12)
	assert.Equal(t, []string{packagePath + "@latest/v1/currencies/gbp.json"}, cdn.requestedPaths())
}

func TestLookupRate_Historical(t *testing.T) {
	cdn := newFakeCDN(t, http.StatusOK, `{"date":"2024-01-15","usd":{"inr":83.05}}`)
	date := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)

	rate, err := cdn.client().LookupRate(context.Background(), "USD", "INR", &date)

	require.NoError(t, err)
	assert.InDelta(t, 83.05, rate, 1e-12)
	assert.Equal(t, []string{packagePath + "@2024-01-15/v1/currencies/usd.json"}, cdn.requestedPaths())
}

func TestLookupRate_Failures(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr string
	}{
		{name: "error status", status: http.StatusNotFound, body: `Couldn't find the requested release`, wantErr: "exchange rate API error: 404"},
		{name: "malformed json", status: http.StatusOK, body: `<html>`, wantErr: "malformed response payload"},
		{name: "missing pair", status: http.StatusOK, body: `{"date":"2024-03-06","eur":{"aud":1.6}}`, wantErr: "currency pair GBP/AUD missing"},
		{name: "missing quote", status: http.StatusOK, body: `{"date":"2024-03-06","gbp":{"eur":1.17}}`, wantErr: "exchange rate not found for AUD"},
		{name: "zero rate", status: http.StatusOK, body: `{"date":"2024-03-06","gbp":{"aud":0}}`, wantErr: "exchange rate not found for AUD"},
		{name: "rates not an object", status: http.StatusOK, body: `{"date":"2024-03-06","gbp":"n/a"}`, wantErr: "malformed rates for GBP"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cdn := newFakeCDN(t, tt.status, tt.body)

			rate, err := cdn.client().LookupRate(context.Background(), "GBP", "AUD", nil)

			require.Error(t, err)
			assert.Zero(t, rate)
			assert.ErrorIs(t, err, apperrors.ErrLookup)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLookupRate_TransportFailure(t *testing.T) {
	cdn := newFakeCDN(t, http.StatusOK, `{}`)
	client := cdn.client()
	cdn.server.Close()

	_, err := client.LookupRate(context.Background(), "GBP", "AUD", nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrLookup)
	assert.Contains(t, err.Error(), "request to currencyapi failed")
}

func TestLookupRate_ContextCancelled(t *testing.T) {
	cdn := newFakeCDN(t, http.StatusOK, `{"gbp":{"aud":1.9}}`)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := cdn.client().LookupRate(ctx, "GBP", "AUD", nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrLookup)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestName(t *testing.T) {
	assert.Equal(t, ProviderName, NewClient("http://x", time.Second).Name())
}
