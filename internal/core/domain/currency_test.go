package domain_test

import (
	"testing"

	"github.com/SscSPs/remittance_advisor/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestCurrencyCode(t *testing.T) {
	assert.Equal(t, domain.CurrencyCode("GBP"), domain.ParseCurrencyCode(" gbp "))
	assert.Equal(t, "gbp", domain.CurrencyCode("GBP").Lower())

	assert.True(t, domain.CurrencyCode("USD").IsWellFormed())
	for _, bad := range []domain.CurrencyCode{"", "US", "USDT", "usd", "U$D"} {
		assert.False(t, bad.IsWellFormed(), "code %q", bad)
	}
}

func TestDefaultCurrencySet(t *testing.T) {
	set := domain.DefaultCurrencySet()

	assert.Equal(t, 7, set.Len())
	assert.True(t, set.Contains("INR"))
	assert.False(t, set.Contains("CHF"))
	assert.False(t, set.Contains("inr"))

	jpy, ok := set.Get("JPY")
	assert.True(t, ok)
	assert.Equal(t, "Japanese Yen", jpy.Name)

	list := set.List()
	assert.Equal(t, domain.CurrencyCode("GBP"), list[0].Code)
	assert.Equal(t, domain.CurrencyCode("JPY"), list[6].Code)
	assert.Equal(t, []string{"AUD", "CAD", "EUR", "GBP", "INR", "JPY", "USD"}, set.Codes())
}

func TestNewCurrencySet_DedupesAndSkipsMalformed(t *testing.T) {
	set := domain.NewCurrencySet("usd", "USD", "EURO", "", "CHF")

	assert.Equal(t, 2, set.Len())
	assert.True(t, set.Contains("USD"))

	chf, ok := set.Get("CHF")
	assert.True(t, ok)
	assert.Equal(t, "CHF", chf.Name)

	// List hands out a copy
	list := set.List()
	list[0].Name = "changed"
	usd, _ := set.Get("USD")
	assert.Equal(t, "US Dollar", usd.Name)
}
