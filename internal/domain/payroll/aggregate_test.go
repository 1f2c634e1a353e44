package payroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func entry(workerID string, regular, overtime, gross, reimb, total string) PayrollEntry {
	return PayrollEntry{
		WorkerID:             workerID,
		RegularHours:         dec(regular),
		OvertimeHours:        dec(overtime),
		GrossPay:             dec(gross),
		ExpenseReimbursement: dec(reimb),
		TotalPay:             dec(total),
	}
}

func TestAggregateEntries_EmptyBatch(t *testing.T) {
	totals := AggregateEntries(nil)

	assert.True(t, totals.TotalAmount.IsZero())
	assert.True(t, totals.TotalHours.IsZero())
	assert.Equal(t, 0, totals.EntryCount)
	assert.Equal(t, 0, totals.ConsultantCount)
}

func TestAggregateEntries_WorkedExample(t *testing.T) {
	// Single entry from the 40+5h @ $50 example
	entries := []PayrollEntry{
		entry("w1", "40", "5", "2375", "120", "2495"),
	}

	totals := AggregateEntries(entries)

	assert.True(t, totals.TotalAmount.Equal(dec("2495")), "total amount = %s", totals.TotalAmount)
	assert.True(t, totals.TotalHours.Equal(dec("45")), "total hours = %s", totals.TotalHours)
	assert.True(t, totals.TotalGrossPay.Equal(dec("2375")))
	assert.True(t, totals.TotalExpenses.Equal(dec("120")))
	assert.Equal(t, 1, totals.EntryCount)
	assert.Equal(t, 1, totals.ConsultantCount)
}

func TestAggregateEntries_SumsAcrossEntries(t *testing.T) {
	entries := []PayrollEntry{
		entry("w1", "40", "5", "2375", "120", "2495"),
		entry("w2", "32", "0", "1600", "0", "1600"),
		entry("w3", "40", "10", "3000", "55.25", "3055.25"),
	}

	totals := AggregateEntries(entries)

	assert.True(t, totals.TotalAmount.Equal(dec("7150.25")), "total amount = %s", totals.TotalAmount)
	assert.True(t, totals.TotalGrossPay.Equal(dec("6975")))
	assert.True(t, totals.TotalExpenses.Equal(dec("175.25")))
	assert.True(t, totals.TotalRegularHours.Equal(dec("112")))
	assert.True(t, totals.TotalOvertimeHours.Equal(dec("15")))
	assert.True(t, totals.TotalHours.Equal(dec("127")))
	assert.Equal(t, 3, totals.EntryCount)
	assert.Equal(t, 3, totals.ConsultantCount)
}

func TestAggregateEntries_Idempotent(t *testing.T) {
	entries := []PayrollEntry{
		entry("w1", "40", "5", "2375", "120", "2495"),
		entry("w2", "32", "0", "1600", "0", "1600"),
	}

	first := AggregateEntries(entries)
	second := AggregateEntries(entries)

	assert.True(t, first.TotalAmount.Equal(second.TotalAmount))
	assert.True(t, first.TotalGrossPay.Equal(second.TotalGrossPay))
	assert.True(t, first.TotalExpenses.Equal(second.TotalExpenses))
	assert.True(t, first.TotalHours.Equal(second.TotalHours))
	assert.Equal(t, first.EntryCount, second.EntryCount)
	assert.Equal(t, first.ConsultantCount, second.ConsultantCount)
}

func TestAggregateEntries_DistinctWorkerCount(t *testing.T) {
	// Worker counts are distinct even if the entry uniqueness constraint is
	// ever relaxed.
	entries := []PayrollEntry{
		entry("w1", "20", "0", "1000", "0", "1000"),
		entry("w1", "20", "0", "1000", "0", "1000"),
		entry("w2", "40", "0", "2000", "0", "2000"),
	}

	totals := AggregateEntries(entries)

	assert.Equal(t, 3, totals.EntryCount)
	assert.Equal(t, 2, totals.ConsultantCount)
}
