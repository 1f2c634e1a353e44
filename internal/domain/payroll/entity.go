package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// BatchStatus enum
type BatchStatus string

const (
	BatchStatusDraft      BatchStatus = "draft"
	BatchStatusProcessing BatchStatus = "processing"
	BatchStatusApproved   BatchStatus = "approved"
	BatchStatusPaid       BatchStatus = "paid"
	BatchStatusCancelled  BatchStatus = "cancelled"
)

// PayrollBatch is one payroll run for a pay period. Every total_* and count
// field is derived: the aggregator is their single writer and they are
// recomputed from the entry set after every entry mutation.
type PayrollBatch struct {
	ID          string
	Name        string
	BatchNumber string
	Status      BatchStatus
	PeriodStart time.Time
	PeriodEnd   time.Time
	PayDate     *time.Time

	TotalAmount        decimal.Decimal
	TotalGrossPay      decimal.Decimal
	TotalExpenses      decimal.Decimal
	TotalHours         decimal.Decimal
	TotalRegularHours  decimal.Decimal
	TotalOvertimeHours decimal.Decimal
	ConsultantCount    int
	EntryCount         int

	Notes        *string
	ApprovedBy   *string
	ApprovedAt   *time.Time
	CancelReason *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PayrollEntry is one worker's computed pay line within a batch. Pay fields
// are recomputed from hours and rates on every write; caller-supplied totals
// are never trusted.
type PayrollEntry struct {
	ID                   string
	BatchID              string
	WorkerID             string
	RegularHours         decimal.Decimal
	OvertimeHours        decimal.Decimal
	HourlyRate           decimal.Decimal
	OvertimeRate         decimal.Decimal
	RegularPay           decimal.Decimal
	OvertimePay          decimal.Decimal
	GrossPay             decimal.Decimal
	ExpenseReimbursement decimal.Decimal
	TotalPay             decimal.Decimal
	Notes                *string
	CreatedAt            time.Time
	UpdatedAt            time.Time

	// Joined fields
	WorkerName *string
}

// PaycheckStub is the immutable per-worker snapshot taken when a batch is
// marked paid. One stub per (worker, batch). NetPay is pass-through: there is
// no tax engine in this system.
type PaycheckStub struct {
	ID            string
	WorkerID      string
	BatchID       string
	PayDate       time.Time
	PeriodStart   time.Time
	PeriodEnd     time.Time
	RegularHours  decimal.Decimal
	OvertimeHours decimal.Decimal
	GrossPay      decimal.Decimal
	NetPay        decimal.Decimal
	PDFURL        *string
	CreatedAt     time.Time

	// Joined fields
	WorkerName *string
}

// BatchTotals is the aggregator output persisted onto the parent batch.
type BatchTotals struct {
	TotalAmount        decimal.Decimal
	TotalGrossPay      decimal.Decimal
	TotalExpenses      decimal.Decimal
	TotalHours         decimal.Decimal
	TotalRegularHours  decimal.Decimal
	TotalOvertimeHours decimal.Decimal
	ConsultantCount    int
	EntryCount         int
}
