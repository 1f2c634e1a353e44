package payroll

import (
	"github.com/clearstaff/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========== BATCH DTOs ==========

type CreateBatchRequest struct {
	Name        string  `json:"name"`
	PeriodStart string  `json:"period_start"`
	PeriodEnd   string  `json:"period_end"`
	Notes       *string `json:"notes,omitempty"`
}

func (r *CreateBatchRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}

	start, startOK := validator.IsValidDate(r.PeriodStart)
	if !startOK {
		errs = append(errs, validator.ValidationError{Field: "period_start", Message: "must be a date in YYYY-MM-DD format"})
	}
	end, endOK := validator.IsValidDate(r.PeriodEnd)
	if !endOK {
		errs = append(errs, validator.ValidationError{Field: "period_end", Message: "must be a date in YYYY-MM-DD format"})
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "period_end", Message: "must not be before period_start"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type BatchFilter struct {
	Status *BatchStatus
	Page   int
	Limit  int
}

type CancelBatchRequest struct {
	Reason *string `json:"reason,omitempty"`
}

type ProcessBatchRequest struct {
	// PayDate overrides the server-side default (the processing date).
	PayDate *string `json:"pay_date,omitempty"`
}

func (r *ProcessBatchRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.PayDate != nil {
		if _, ok := validator.IsValidDate(*r.PayDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "pay_date", Message: "must be a date in YYYY-MM-DD format"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ========== ENTRY DTOs ==========

type AddEntryRequest struct {
	BatchID              string           `json:"-"`
	WorkerID             string           `json:"worker_id"`
	RegularHours         decimal.Decimal  `json:"regular_hours"`
	OvertimeHours        decimal.Decimal  `json:"overtime_hours"`
	HourlyRate           decimal.Decimal  `json:"hourly_rate"`
	OvertimeRate         *decimal.Decimal `json:"overtime_rate,omitempty"`
	ExpenseReimbursement decimal.Decimal  `json:"expense_reimbursement"`
	Notes                *string          `json:"notes,omitempty"`
}

func (r *AddEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.WorkerID) {
		errs = append(errs, validator.ValidationError{Field: "worker_id", Message: "is required"})
	}
	errs = append(errs, validateEntryAmounts(r.RegularHours, r.OvertimeHours, r.HourlyRate, r.OvertimeRate, r.ExpenseReimbursement)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateEntryRequest carries the raw inputs only. Pay fields are always
// recomputed server-side; any totals a client sends are ignored.
type UpdateEntryRequest struct {
	ID                   string
	RegularHours         *decimal.Decimal `json:"regular_hours,omitempty"`
	OvertimeHours        *decimal.Decimal `json:"overtime_hours,omitempty"`
	HourlyRate           *decimal.Decimal `json:"hourly_rate,omitempty"`
	OvertimeRate         *decimal.Decimal `json:"overtime_rate,omitempty"`
	ExpenseReimbursement *decimal.Decimal `json:"expense_reimbursement,omitempty"`
	Notes                *string          `json:"notes,omitempty"`
}

func (r *UpdateEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.RegularHours != nil && r.RegularHours.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "regular_hours", Message: "must be non-negative"})
	}
	if r.OvertimeHours != nil && r.OvertimeHours.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "overtime_hours", Message: "must be non-negative"})
	}
	if r.HourlyRate != nil && r.HourlyRate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "hourly_rate", Message: "must be non-negative"})
	}
	if r.OvertimeRate != nil && r.OvertimeRate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "overtime_rate", Message: "must be non-negative"})
	}
	if r.ExpenseReimbursement != nil && r.ExpenseReimbursement.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "expense_reimbursement", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validateEntryAmounts(regularHours, overtimeHours, hourlyRate decimal.Decimal, overtimeRate *decimal.Decimal, reimbursement decimal.Decimal) validator.ValidationErrors {
	var errs validator.ValidationErrors

	if regularHours.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "regular_hours", Message: "must be non-negative"})
	}
	if overtimeHours.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "overtime_hours", Message: "must be non-negative"})
	}
	if hourlyRate.IsNegative() || hourlyRate.IsZero() {
		errs = append(errs, validator.ValidationError{Field: "hourly_rate", Message: "must be positive"})
	}
	if overtimeRate != nil && overtimeRate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "overtime_rate", Message: "must be non-negative"})
	}
	if reimbursement.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "expense_reimbursement", Message: "must be non-negative"})
	}

	return errs
}

// ========== RESPONSES ==========

type BatchResponse struct {
	ID                 string          `json:"id"`
	Name               string          `json:"name"`
	BatchNumber        string          `json:"batch_number"`
	Status             string          `json:"status"`
	PeriodStart        string          `json:"period_start"`
	PeriodEnd          string          `json:"period_end"`
	PayDate            *string         `json:"pay_date,omitempty"`
	TotalAmount        decimal.Decimal `json:"total_amount"`
	TotalGrossPay      decimal.Decimal `json:"total_gross_pay"`
	TotalExpenses      decimal.Decimal `json:"total_expenses"`
	TotalHours         decimal.Decimal `json:"total_hours"`
	TotalRegularHours  decimal.Decimal `json:"total_regular_hours"`
	TotalOvertimeHours decimal.Decimal `json:"total_overtime_hours"`
	ConsultantCount    int             `json:"consultant_count"`
	EntryCount         int             `json:"entry_count"`
	Notes              *string         `json:"notes,omitempty"`
	Entries            []EntryResponse `json:"entries,omitempty"`
}

type EntryResponse struct {
	ID                   string          `json:"id"`
	BatchID              string          `json:"batch_id"`
	WorkerID             string          `json:"worker_id"`
	WorkerName           *string         `json:"worker_name,omitempty"`
	RegularHours         decimal.Decimal `json:"regular_hours"`
	OvertimeHours        decimal.Decimal `json:"overtime_hours"`
	HourlyRate           decimal.Decimal `json:"hourly_rate"`
	OvertimeRate         decimal.Decimal `json:"overtime_rate"`
	RegularPay           decimal.Decimal `json:"regular_pay"`
	OvertimePay          decimal.Decimal `json:"overtime_pay"`
	GrossPay             decimal.Decimal `json:"gross_pay"`
	ExpenseReimbursement decimal.Decimal `json:"expense_reimbursement"`
	TotalPay             decimal.Decimal `json:"total_pay"`
	Notes                *string         `json:"notes,omitempty"`
}

type StubResponse struct {
	ID            string          `json:"id"`
	WorkerID      string          `json:"worker_id"`
	WorkerName    *string         `json:"worker_name,omitempty"`
	BatchID       string          `json:"batch_id"`
	PayDate       string          `json:"pay_date"`
	PeriodStart   string          `json:"period_start"`
	PeriodEnd     string          `json:"period_end"`
	RegularHours  decimal.Decimal `json:"regular_hours"`
	OvertimeHours decimal.Decimal `json:"overtime_hours"`
	GrossPay      decimal.Decimal `json:"gross_pay"`
	NetPay        decimal.Decimal `json:"net_pay"`
	PDFURL        *string         `json:"pdf_url,omitempty"`
}

type AutoCalculateResponse struct {
	EntriesCreated int `json:"entries_created"`
}

type ListBatchesResponse struct {
	Batches    []BatchResponse `json:"batches"`
	TotalItems int64           `json:"total_items"`
}
