package payrate

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultOvertimeMultiplier is applied when a rate row carries no explicit
// overtime rate. Manual entries use the same constant so imported and manual
// entries never diverge.
var DefaultOvertimeMultiplier = decimal.RequireFromString("1.5")

// DefaultOvertimeRate derives the overtime rate from an hourly rate.
func DefaultOvertimeRate(hourlyRate decimal.Decimal) decimal.Decimal {
	return hourlyRate.Mul(DefaultOvertimeMultiplier)
}

// Resolve picks the applicable rate for asOf from a worker's rate rows.
//
// A row covers asOf when it is active and asOf falls in
// [EffectiveFrom, EffectiveTo); a nil EffectiveTo means ongoing. When rows
// overlap, the latest EffectiveFrom wins; equal starts fall back to the
// latest CreatedAt.
func Resolve(rates []PayRate, asOf time.Time) (ResolvedRate, error) {
	var best *PayRate
	for i := range rates {
		r := &rates[i]
		if !r.IsActive {
			continue
		}
		if !covers(r, asOf) {
			continue
		}
		if best == nil || startsLater(r, best) {
			best = r
		}
	}

	if best == nil {
		return ResolvedRate{}, ErrRateNotFound
	}

	resolved := ResolvedRate{HourlyRate: best.HourlyRate}
	if best.OvertimeRate != nil {
		resolved.OvertimeRate = *best.OvertimeRate
	} else {
		resolved.OvertimeRate = DefaultOvertimeRate(best.HourlyRate)
	}

	return resolved, nil
}

func covers(r *PayRate, asOf time.Time) bool {
	if asOf.Before(r.EffectiveFrom) {
		return false
	}
	if r.EffectiveTo != nil && !asOf.Before(*r.EffectiveTo) {
		return false
	}
	return true
}

func startsLater(a, b *PayRate) bool {
	if a.EffectiveFrom.After(b.EffectiveFrom) {
		return true
	}
	if a.EffectiveFrom.Equal(b.EffectiveFrom) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return false
}
