package services

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/SscSPs/remittance_advisor/internal/apperrors"
	"github.com/SscSPs/remittance_advisor/internal/core/domain"
	"github.com/SscSPs/remittance_advisor/internal/core/ports"
	portssvc "github.com/SscSPs/remittance_advisor/internal/core/ports/services"
	"github.com/SscSPs/remittance_advisor/internal/utils"
	"golang.org/x/sync/errgroup"
)

// DecisionRecorder receives the outcome of every computed verdict.
type DecisionRecorder interface {
	RecordDecision(base, quote, result string)
	SetDeviation(base, quote string, pct float64)
}

// decisionService implements the DecisionSvc interface
type decisionService struct {
	BaseService
	source     ports.RateSource
	currencies domain.CurrencySet
	threshold  float64
	recorder   DecisionRecorder
}

// DecisionOption is a functional option for configuring the decision service
type DecisionOption func(*decisionService)

// WithSendThreshold overrides the percentage above the average at which sending is advised.
func WithSendThreshold(pct float64) DecisionOption {
	return func(s *decisionService) {
		s.threshold = pct
	}
}

// WithDecisionRecorder reports each verdict to recorder.
func WithDecisionRecorder(recorder DecisionRecorder) DecisionOption {
	return func(s *decisionService) {
		s.recorder = recorder
	}
}

// NewDecisionService creates a decision service reading rates from source and
// accepting only currencies in the given set.
func NewDecisionService(source ports.RateSource, currencies domain.CurrencySet, options ...DecisionOption) portssvc.DecisionSvc {
	svc := &decisionService{
		source:     source,
		currencies: currencies,
		threshold:  domain.DefaultSendThresholdPercent,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

var _ portssvc.DecisionSvc = (*decisionService)(nil)

func (s *decisionService) Decide(ctx context.Context, baseCode, quoteCode string, now time.Time) (*domain.Verdict, error) {
	base, quote, err := resolvePair(s.currencies, baseCode, quoteCode)
	if err != nil {
		return nil, err
	}

	series, err := s.fetchSeries(ctx, base, quote, now)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch rate series",
			slog.String("base", base.String()),
			slog.String("quote", quote.String()))
		return nil, err
	}

	average := mean(series.HistoricalRates())
	if average == 0 {
		return nil, fmt.Errorf("%w: historical average rate for %s/%s is zero", apperrors.ErrNumeric, quote, base)
	}

	current := series.Current.Rate
	deviation := (current - average) / average * 100
	if math.IsNaN(deviation) || math.IsInf(deviation, 0) {
		return nil, fmt.Errorf("%w: deviation for %s/%s is not a finite number", apperrors.ErrNumeric, quote, base)
	}

	shouldSend := deviation >= s.threshold

	verdict := &domain.Verdict{
		Base:             base,
		Quote:            quote,
		ShouldSend:       shouldSend,
		CurrentRate:      current,
		AverageRate:      average,
		PercentDeviation: deviation,
		Explanation:      explain(base, quote, current, average, deviation, shouldSend),
		Series:           series,
		DecidedAt:        now,
	}

	if s.recorder != nil {
		result := "wait"
		if shouldSend {
			result = "send"
		}
		s.recorder.RecordDecision(base.String(), quote.String(), result)
		s.recorder.SetDeviation(base.String(), quote.String(), deviation)
	}

	s.LogInfo(ctx, "Decision computed",
		slog.String("base", base.String()),
		slog.String("quote", quote.String()),
		slog.Float64("current_rate", current),
		slog.Float64("average_rate", average),
		slog.Float64("percent_deviation", deviation),
		slog.Bool("should_send", shouldSend))

	return verdict, nil
}

// fetchSeries issues the current lookup and one lookup per trailing month
// concurrently. The first failure cancels the rest and is returned.
func (s *decisionService) fetchSeries(ctx context.Context, base, quote domain.CurrencyCode, now time.Time) (domain.RateSeries, error) {
	dates := domain.TrailingSampleDates(now)
	historical := make([]domain.RateSample, len(dates))
	var current domain.RateSample

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		rate, err := s.source.LookupRate(gctx, base, quote, nil)
		if err != nil {
			return asLookupError(err)
		}
		current = domain.RateSample{Rate: rate}
		return nil
	})

	for i, date := range dates {
		i, date := i, date
		g.Go(func() error {
			rate, err := s.source.LookupRate(gctx, base, quote, &date)
			if err != nil {
				return asLookupError(err)
			}
			historical[i] = domain.RateSample{Date: date, Rate: rate}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return domain.RateSeries{}, err
	}
	return domain.RateSeries{Current: current, Historical: historical}, nil
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func explain(base, quote domain.CurrencyCode, current, average, deviation float64, shouldSend bool) string {
	lines := make([]string, 0, 3)
	lines = append(lines, fmt.Sprintf("Current rate: %s %s/%s", utils.FormatRate(current), quote, base))

	avg := utils.FormatRate(average)
	if shouldSend {
		lines = append(lines, fmt.Sprintf("This is %s%% above the %d-month average of %s",
			utils.FormatPercent(deviation), domain.HistoryMonths, avg))
		lines = append(lines, "Recommendation: send now.")
	} else {
		direction := "below"
		if deviation > 0 {
			direction = "above"
		}
		lines = append(lines, fmt.Sprintf("This is only %s%% %s the %d-month average of %s",
			utils.FormatPercent(math.Abs(deviation)), direction, domain.HistoryMonths, avg))
		lines = append(lines, "Recommendation: wait.")
	}
	return strings.Join(lines, "\n")
}
