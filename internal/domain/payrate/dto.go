package payrate

import (
	"github.com/clearstaff/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreatePayRateRequest struct {
	WorkerID      string           `json:"worker_id"`
	HourlyRate    decimal.Decimal  `json:"hourly_rate"`
	OvertimeRate  *decimal.Decimal `json:"overtime_rate,omitempty"`
	EffectiveFrom string           `json:"effective_from"`
	EffectiveTo   *string          `json:"effective_to,omitempty"`
}

func (r *CreatePayRateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.WorkerID) {
		errs = append(errs, validator.ValidationError{Field: "worker_id", Message: "is required"})
	}
	if r.HourlyRate.IsNegative() || r.HourlyRate.IsZero() {
		errs = append(errs, validator.ValidationError{Field: "hourly_rate", Message: "must be positive"})
	}
	if r.OvertimeRate != nil && r.OvertimeRate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "overtime_rate", Message: "must be non-negative"})
	}

	from, fromOK := validator.IsValidDate(r.EffectiveFrom)
	if !fromOK {
		errs = append(errs, validator.ValidationError{Field: "effective_from", Message: "must be a date in YYYY-MM-DD format"})
	}
	if r.EffectiveTo != nil {
		to, toOK := validator.IsValidDate(*r.EffectiveTo)
		if !toOK {
			errs = append(errs, validator.ValidationError{Field: "effective_to", Message: "must be a date in YYYY-MM-DD format"})
		} else if fromOK && !to.After(from) {
			errs = append(errs, validator.ValidationError{Field: "effective_to", Message: "must be after effective_from"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PayRateResponse struct {
	ID            string           `json:"id"`
	WorkerID      string           `json:"worker_id"`
	HourlyRate    decimal.Decimal  `json:"hourly_rate"`
	OvertimeRate  *decimal.Decimal `json:"overtime_rate,omitempty"`
	EffectiveFrom string           `json:"effective_from"`
	EffectiveTo   *string          `json:"effective_to,omitempty"`
	IsActive      bool             `json:"is_active"`
}
