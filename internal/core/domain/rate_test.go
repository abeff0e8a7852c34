package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/remittance_advisor/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthsBefore(t *testing.T) {
	testCases := []struct {
		name string
		now  time.Time
		n    int
		want string
	}{
		{"same day previous month", time.Date(2024, time.August, 15, 13, 45, 0, 0, time.UTC), 1, "2024-07-15"},
		{"clamps to end of february", time.Date(2023, time.March, 31, 0, 0, 0, 0, time.UTC), 1, "2023-02-28"},
		{"clamps to leap day", time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC), 1, "2024-02-29"},
		{"clamps to 30 day month", time.Date(2024, time.May, 31, 0, 0, 0, 0, time.UTC), 1, "2024-04-30"},
		{"wraps year", time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC), 3, "2023-11-10"},
		{"six months back", time.Date(2024, time.August, 31, 0, 0, 0, 0, time.UTC), 6, "2024-02-29"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := domain.MonthsBefore(tc.now, tc.n)
			assert.Equal(t, tc.want, got.Format(domain.DateLayout))
			assert.Zero(t, got.Hour())
			assert.Equal(t, tc.now.Location(), got.Location())
		})
	}
}

func TestTrailingSampleDates_DistinctMonths(t *testing.T) {
	// month-end days are where naive AddDate collapses two samples into one month
	for _, now := range []time.Time{
		time.Date(2024, time.August, 31, 9, 0, 0, 0, time.UTC),
		time.Date(2024, time.March, 31, 9, 0, 0, 0, time.UTC),
		time.Date(2025, time.January, 30, 9, 0, 0, 0, time.UTC),
	} {
		dates := domain.TrailingSampleDates(now)
		require.Len(t, dates, domain.HistoryMonths)

		seen := map[string]bool{}
		for i, d := range dates {
			assert.True(t, d.Before(now))
			if i > 0 {
				assert.True(t, d.Before(dates[i-1]), "dates must be most recent first")
			}
			seen[d.Format("2006-01")] = true
		}
		assert.Len(t, seen, domain.HistoryMonths, "now=%s", now)
	}
}

func TestRateSeries(t *testing.T) {
	series := domain.RateSeries{
		Current: domain.RateSample{Rate: 1.9},
		Historical: []domain.RateSample{
			{Date: time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC), Rate: 1.8},
			{Date: time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC), Rate: 1.7},
		},
	}

	assert.Equal(t, []float64{1.8, 1.7}, series.HistoricalRates())
	assert.True(t, series.Current.IsCurrent())
	assert.Equal(t, "current", series.Current.Label())
	assert.Equal(t, "2024-07-01", series.Historical[0].Label())
}

func TestVerdictDecision(t *testing.T) {
	assert.Equal(t, "Yes, send now!", domain.Verdict{ShouldSend: true}.Decision())
	assert.Equal(t, "No, wait", domain.Verdict{}.Decision())
}
