package payroll

import "github.com/shopspring/decimal"

// AggregateEntries recomputes batch totals from the full entry set. It is a
// pure fold with no delta tracking, so recomputing twice over the same set
// yields identical totals.
func AggregateEntries(entries []PayrollEntry) BatchTotals {
	totals := BatchTotals{
		TotalAmount:        decimal.Zero,
		TotalGrossPay:      decimal.Zero,
		TotalExpenses:      decimal.Zero,
		TotalHours:         decimal.Zero,
		TotalRegularHours:  decimal.Zero,
		TotalOvertimeHours: decimal.Zero,
	}

	workers := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		totals.TotalAmount = totals.TotalAmount.Add(e.TotalPay)
		totals.TotalGrossPay = totals.TotalGrossPay.Add(e.GrossPay)
		totals.TotalExpenses = totals.TotalExpenses.Add(e.ExpenseReimbursement)
		totals.TotalRegularHours = totals.TotalRegularHours.Add(e.RegularHours)
		totals.TotalOvertimeHours = totals.TotalOvertimeHours.Add(e.OvertimeHours)
		workers[e.WorkerID] = struct{}{}
	}

	totals.TotalHours = totals.TotalRegularHours.Add(totals.TotalOvertimeHours)
	totals.ConsultantCount = len(workers)
	totals.EntryCount = len(entries)

	return totals
}
