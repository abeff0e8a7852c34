package domain

import "time"

// HistoryMonths is the number of trailing calendar months sampled for the average.
const HistoryMonths = 6

// DateLayout is the calendar date format rate providers expect.
const DateLayout = "2006-01-02"

// RateSample is a single observed exchange rate.
// A zero Date marks the current (latest) rate.
type RateSample struct {
	Date time.Time `json:"date"`
	Rate float64   `json:"rate"`
}

// IsCurrent reports whether the sample is the latest rate rather than a dated one.
func (s RateSample) IsCurrent() bool {
	return s.Date.IsZero()
}

// Label renders the sample date as YYYY-MM-DD, or "current".
func (s RateSample) Label() string {
	if s.IsCurrent() {
		return "current"
	}
	return s.Date.Format(DateLayout)
}

// RateSeries holds the samples one decision is computed from.
type RateSeries struct {
	Current    RateSample   `json:"current"`
	Historical []RateSample `json:"historical"`
}

// HistoricalRates returns the historical rates in sample order.
func (s RateSeries) HistoricalRates() []float64 {
	rates := make([]float64, len(s.Historical))
	for i, h := range s.Historical {
		rates[i] = h.Rate
	}
	return rates
}

// MonthsBefore returns the calendar date n months before now, keeping the day of
// month and clamping it to the last day of the target month.
// The result is truncated to midnight in now's location.
func MonthsBefore(now time.Time, n int) time.Time {
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	target := firstOfMonth.AddDate(0, -n, 0)
	day := now.Day()
	if last := daysIn(target.Year(), target.Month(), now.Location()); day > last {
		day = last
	}
	return time.Date(target.Year(), target.Month(), day, 0, 0, 0, 0, now.Location())
}

// TrailingSampleDates returns the HistoryMonths sample dates preceding now,
// most recent first.
func TrailingSampleDates(now time.Time) []time.Time {
	dates := make([]time.Time, HistoryMonths)
	for i := 1; i <= HistoryMonths; i++ {
		dates[i-1] = MonthsBefore(now, i)
	}
	return dates
}

func daysIn(year int, month time.Month, loc *time.Location) int {
	// day 0 of the next month is the last day of this one
	return time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
}

// ExchangeRate is a rate for a currency pair, as served by the proxy endpoint.
type ExchangeRate struct {
	Base  CurrencyCode
	Quote CurrencyCode
	RateSample
}
