package payrate

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayRate is one time-sliced rate row for a worker. Rates are superseded by
// inserting new rows, never deleted; EffectiveTo == nil means ongoing.
type PayRate struct {
	ID            string
	WorkerID      string
	HourlyRate    decimal.Decimal
	OvertimeRate  *decimal.Decimal
	EffectiveFrom time.Time
	EffectiveTo   *time.Time
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ResolvedRate is the rate pair applied to a pay calculation. OvertimeRate is
// always populated: when the underlying row has none, the default overtime
// multiplier has already been applied.
type ResolvedRate struct {
	HourlyRate   decimal.Decimal `json:"hourly_rate"`
	OvertimeRate decimal.Decimal `json:"overtime_rate"`
}
