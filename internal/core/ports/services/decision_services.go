package services

import (
	"context"
	"time"

	"github.com/SscSPs/remittance_advisor/internal/core/domain"
)

// DecisionSvc produces send-or-wait verdicts for a currency pair.
type DecisionSvc interface {
	// Decide compares the latest rate for base->quote against the average of the
	// trailing months before now.
	Decide(ctx context.Context, base, quote string, now time.Time) (*domain.Verdict, error)
}
