package timesheet

import "github.com/shopspring/decimal"

// WorkerHours is the approved regular/overtime total for one worker over a
// pay period window.
type WorkerHours struct {
	WorkerID      string
	RegularHours  decimal.Decimal
	OvertimeHours decimal.Decimal
}
