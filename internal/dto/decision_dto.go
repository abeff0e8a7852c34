package dto

import (
	"time"

	"github.com/SscSPs/remittance_advisor/internal/core/domain"
)

// DecisionRequest is the body of a send-or-wait request.
type DecisionRequest struct {
	FromCurrency string `json:"fromCurrency" binding:"required,currency"`
	ToCurrency   string `json:"toCurrency" binding:"required,currency,nefield=FromCurrency"`
}

// RateSampleResponse is one sampled rate. Date is "current" for the latest rate.
type RateSampleResponse struct {
	Date string  `json:"date"`
	Rate float64 `json:"rate"`
}

// DecisionResponse carries the verdict in the shape the presentation layer renders.
type DecisionResponse struct {
	FromCurrency     string               `json:"fromCurrency"`
	ToCurrency       string               `json:"toCurrency"`
	Decision         string               `json:"decision"`
	Explanation      string               `json:"explanation"`
	IsPositive       bool                 `json:"isPositive"`
	ShouldSend       bool                 `json:"shouldSend"`
	Celebrate        bool                 `json:"celebrate"`
	CurrentRate      float64              `json:"currentRate"`
	AverageRate      float64              `json:"averageRate"`
	PercentDeviation float64              `json:"percentDeviation"`
	Samples          []RateSampleResponse `json:"samples"`
	DecidedAt        time.Time            `json:"decidedAt"`
}

// ToDecisionResponse converts a domain.Verdict to DecisionResponse DTO
func ToDecisionResponse(v *domain.Verdict) DecisionResponse {
	samples := make([]RateSampleResponse, 0, len(v.Series.Historical)+1)
	samples = append(samples, RateSampleResponse{Date: v.Series.Current.Label(), Rate: v.Series.Current.Rate})
	for _, s := range v.Series.Historical {
		samples = append(samples, RateSampleResponse{Date: s.Label(), Rate: s.Rate})
	}

	return DecisionResponse{
		FromCurrency:     v.Base.String(),
		ToCurrency:       v.Quote.String(),
		Decision:         v.Decision(),
		Explanation:      v.Explanation,
		IsPositive:       v.ShouldSend,
		ShouldSend:       v.ShouldSend,
		Celebrate:        v.ShouldSend,
		CurrentRate:      v.CurrentRate,
		AverageRate:      v.AverageRate,
		PercentDeviation: v.PercentDeviation,
		Samples:          samples,
		DecidedAt:        v.DecidedAt,
	}
}
