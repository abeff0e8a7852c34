package domain

import (
	"sort"
	"strings"
)

// CurrencyCode is an ISO 4217 style three letter code, e.g. "USD".
type CurrencyCode string

// String returns the code as a plain string.
func (c CurrencyCode) String() string {
	return string(c)
}

// Lower returns the lower-case form some providers use in URLs and payload keys.
func (c CurrencyCode) Lower() string {
	return strings.ToLower(string(c))
}

// IsWellFormed reports whether the code is exactly three upper-case ASCII letters.
func (c CurrencyCode) IsWellFormed() bool {
	if len(c) != 3 {
		return false
	}
	for i := 0; i < len(c); i++ {
		if c[i] < 'A' || c[i] > 'Z' {
			return false
		}
	}
	return true
}

// ParseCurrencyCode trims and upper-cases raw user input.
// It does not check membership in any supported set.
func ParseCurrencyCode(raw string) CurrencyCode {
	return CurrencyCode(strings.ToUpper(strings.TrimSpace(raw)))
}

// Currency represents a supported currency in the domain.
type Currency struct {
	Code CurrencyCode `json:"code"` // e.g. "USD"
	Name string       `json:"name"` // e.g. "US Dollar"
}

// knownCurrencyNames holds display names for codes the advisor ships with.
var knownCurrencyNames = map[CurrencyCode]string{
	"GBP": "British Pound",
	"INR": "Indian Rupee",
	"USD": "US Dollar",
	"EUR": "Euro",
	"AUD": "Australian Dollar",
	"CAD": "Canadian Dollar",
	"JPY": "Japanese Yen",
}

// DefaultCurrencyCodes is the ordered list offered when nothing else is configured.
var DefaultCurrencyCodes = []CurrencyCode{"GBP", "INR", "USD", "EUR", "AUD", "CAD", "JPY"}

// CurrencySet is the fixed, finite set of currencies the advisor accepts.
// It preserves the order it was built with so listings are stable.
type CurrencySet struct {
	ordered []Currency
	index   map[CurrencyCode]int
}

// NewCurrencySet builds a set from codes, dropping duplicates and malformed entries.
func NewCurrencySet(codes ...CurrencyCode) CurrencySet {
	set := CurrencySet{index: make(map[CurrencyCode]int, len(codes))}
	for _, raw := range codes {
		code := ParseCurrencyCode(string(raw))
		if !code.IsWellFormed() {
			continue
		}
		if _, dup := set.index[code]; dup {
			continue
		}
		name, ok := knownCurrencyNames[code]
		if !ok {
			name = string(code)
		}
		set.index[code] = len(set.ordered)
		set.ordered = append(set.ordered, Currency{Code: code, Name: name})
	}
	return set
}

// DefaultCurrencySet returns the currencies offered when none are configured.
func DefaultCurrencySet() CurrencySet {
	return NewCurrencySet(DefaultCurrencyCodes...)
}

// Contains reports whether code is supported.
func (s CurrencySet) Contains(code CurrencyCode) bool {
	_, ok := s.index[code]
	return ok
}

// Get returns the currency for code.
func (s CurrencySet) Get(code CurrencyCode) (Currency, bool) {
	i, ok := s.index[code]
	if !ok {
		return Currency{}, false
	}
	return s.ordered[i], true
}

// List returns a copy of the supported currencies in configured order.
func (s CurrencySet) List() []Currency {
	out := make([]Currency, len(s.ordered))
	copy(out, s.ordered)
	return out
}

// Codes returns the supported codes sorted alphabetically.
func (s CurrencySet) Codes() []string {
	codes := make([]string, 0, len(s.ordered))
	for _, c := range s.ordered {
		codes = append(codes, string(c.Code))
	}
	sort.Strings(codes)
	return codes
}

// Len returns the number of supported currencies.
func (s CurrencySet) Len() int {
	return len(s.ordered)
}
