package payroll

import (
	"testing"

	"github.com/clearstaff/payroll-backend-go/internal/domain/payroll"
	"github.com/clearstaff/payroll-backend-go/internal/domain/timesheet"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func workerHours(workerID string, regular, overtime int64) timesheet.WorkerHours {
	return timesheet.WorkerHours{
		WorkerID:      workerID,
		RegularHours:  decimal.NewFromInt(regular),
		OvertimeHours: decimal.NewFromInt(overtime),
	}
}

func TestPendingWorkerHours_EmptyBatchKeepsAll(t *testing.T) {
	hours := []timesheet.WorkerHours{
		workerHours("w1", 40, 5),
		workerHours("w2", 32, 0),
	}

	pending := pendingWorkerHours(nil, hours)

	assert.Len(t, pending, 2)
	assert.Equal(t, "w1", pending[0].WorkerID)
	assert.Equal(t, "w2", pending[1].WorkerID)
}

func TestPendingWorkerHours_SkipsWorkersWithEntries(t *testing.T) {
	existing := []payroll.PayrollEntry{
		{WorkerID: "w1"},
		{WorkerID: "w3"},
	}
	hours := []timesheet.WorkerHours{
		workerHours("w1", 40, 5),
		workerHours("w2", 32, 0),
		workerHours("w3", 38, 2),
	}

	pending := pendingWorkerHours(existing, hours)

	assert.Len(t, pending, 1)
	assert.Equal(t, "w2", pending[0].WorkerID)
	assert.True(t, pending[0].RegularHours.Equal(decimal.NewFromInt(32)))
}

func TestPendingWorkerHours_RerunCreatesNothing(t *testing.T) {
	// After a first run every worker has an entry, so a second run over the
	// same hours must yield no work.
	hours := []timesheet.WorkerHours{
		workerHours("w1", 40, 5),
		workerHours("w2", 32, 0),
	}

	var existing []payroll.PayrollEntry
	for _, wh := range pendingWorkerHours(nil, hours) {
		existing = append(existing, payroll.PayrollEntry{WorkerID: wh.WorkerID})
	}

	assert.Empty(t, pendingWorkerHours(existing, hours))
}
