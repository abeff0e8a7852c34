package domain

import "time"

// DefaultSendThresholdPercent is the deviation above the average at which sending is advised.
const DefaultSendThresholdPercent = 2.0

const (
	decisionSend = "Yes, send now!"
	decisionWait = "No, wait"
)

// Verdict is the outcome of a single decision request.
type Verdict struct {
	Base             CurrencyCode
	Quote            CurrencyCode
	ShouldSend       bool
	CurrentRate      float64
	AverageRate      float64
	PercentDeviation float64
	Explanation      string
	Series           RateSeries
	DecidedAt        time.Time
}

// Decision returns the short recommendation label shown above the explanation.
func (v Verdict) Decision() string {
	if v.ShouldSend {
		return decisionSend
	}
	return decisionWait
}
