package payroll

import (
	"fmt"

	"github.com/clearstaff/payroll-backend-go/internal/domain/payrate"
	"github.com/shopspring/decimal"
)

// moneyScale is the rounding precision for monetary results. Hours are never
// rounded.
const moneyScale = 2

// EntryPay is the computed pay breakdown for one entry.
type EntryPay struct {
	RegularPay  decimal.Decimal
	OvertimePay decimal.Decimal
	GrossPay    decimal.Decimal
	TotalPay    decimal.Decimal
}

// ComputeEntry turns hours, rates and a reimbursement into the pay fields of
// an entry. When overtimeRate is nil the default overtime multiplier applies,
// mirroring rate resolution exactly. Monetary results are rounded half-up to
// two decimal places.
func ComputeEntry(regularHours, overtimeHours, hourlyRate decimal.Decimal, overtimeRate *decimal.Decimal, expenseReimbursement decimal.Decimal) (EntryPay, error) {
	switch {
	case regularHours.IsNegative():
		return EntryPay{}, fmt.Errorf("%w: regular hours must be non-negative", ErrInvalidEntryInput)
	case overtimeHours.IsNegative():
		return EntryPay{}, fmt.Errorf("%w: overtime hours must be non-negative", ErrInvalidEntryInput)
	case hourlyRate.IsNegative():
		return EntryPay{}, fmt.Errorf("%w: hourly rate must be non-negative", ErrInvalidEntryInput)
	case overtimeRate != nil && overtimeRate.IsNegative():
		return EntryPay{}, fmt.Errorf("%w: overtime rate must be non-negative", ErrInvalidEntryInput)
	case expenseReimbursement.IsNegative():
		return EntryPay{}, fmt.Errorf("%w: expense reimbursement must be non-negative", ErrInvalidEntryInput)
	}

	otRate := payrate.DefaultOvertimeRate(hourlyRate)
	if overtimeRate != nil {
		otRate = *overtimeRate
	}

	regularPay := regularHours.Mul(hourlyRate).Round(moneyScale)
	overtimePay := overtimeHours.Mul(otRate).Round(moneyScale)
	grossPay := regularPay.Add(overtimePay)
	totalPay := grossPay.Add(expenseReimbursement.Round(moneyScale))

	return EntryPay{
		RegularPay:  regularPay,
		OvertimePay: overtimePay,
		GrossPay:    grossPay,
		TotalPay:    totalPay,
	}, nil
}

// EffectiveOvertimeRate returns the overtime rate an entry will be stored
// with: the explicit rate when given, otherwise the default multiple of the
// hourly rate.
func EffectiveOvertimeRate(hourlyRate decimal.Decimal, overtimeRate *decimal.Decimal) decimal.Decimal {
	if overtimeRate != nil {
		return *overtimeRate
	}
	return payrate.DefaultOvertimeRate(hourlyRate)
}
