package payroll

import (
	"context"
	"errors"
	"fmt"

	"github.com/clearstaff/payroll-backend-go/internal/domain/payrate"
	"github.com/clearstaff/payroll-backend-go/internal/domain/payroll"
	"github.com/clearstaff/payroll-backend-go/internal/domain/timesheet"
	"github.com/clearstaff/payroll-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// AutoCalculate materializes one entry per worker with approved hours in the
// batch period. Workers who already have an entry in the batch are skipped, so
// running it twice never clobbers manual edits. A worker with hours but no
// covering pay rate fails the whole run; silently paying zero is worse than
// making the operator fix the rate first.
func (s *PayrollServiceImpl) AutoCalculate(ctx context.Context, batchID string) (payroll.AutoCalculateResponse, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return payroll.AutoCalculateResponse{}, err
	}

	var created int
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		batch, err := s.payrollRepo.GetBatchForUpdate(txCtx, batchID)
		if err != nil {
			return err
		}
		if err := payroll.EnsureMutable(batch.Status); err != nil {
			return err
		}

		hours, err := s.readApprovedHours(txCtx, batch)
		if err != nil {
			return err
		}
		if len(hours) == 0 {
			return nil
		}

		existing, err := s.payrollRepo.ListEntriesByBatch(txCtx, batchID)
		if err != nil {
			return err
		}

		for _, wh := range pendingWorkerHours(existing, hours) {
			rate, err := s.resolveRate(txCtx, wh.WorkerID, batch)
			if err != nil {
				return err
			}

			pay, err := payroll.ComputeEntry(wh.RegularHours, wh.OvertimeHours, rate.HourlyRate, &rate.OvertimeRate, decimal.Zero)
			if err != nil {
				return err
			}

			entry := payroll.PayrollEntry{
				BatchID:       batchID,
				WorkerID:      wh.WorkerID,
				RegularHours:  wh.RegularHours,
				OvertimeHours: wh.OvertimeHours,
				HourlyRate:    rate.HourlyRate,
				OvertimeRate:  rate.OvertimeRate,
				RegularPay:    pay.RegularPay,
				OvertimePay:   pay.OvertimePay,
				GrossPay:      pay.GrossPay,
				TotalPay:      pay.TotalPay,
			}

			if _, err := s.payrollRepo.CreateEntry(txCtx, entry); err != nil {
				// Lost a race with a concurrent manual add for the same worker
				if errors.Is(err, payroll.ErrDuplicateEntry) {
					continue
				}
				return err
			}
			created++
		}

		if created == 0 {
			return nil
		}
		return s.recomputeTotals(txCtx, batchID)
	})
	if err != nil {
		return payroll.AutoCalculateResponse{}, err
	}

	return payroll.AutoCalculateResponse{EntriesCreated: created}, nil
}

// pendingWorkerHours drops workers that already have an entry in the batch,
// so a re-run of the importer never clobbers an existing entry.
func pendingWorkerHours(existing []payroll.PayrollEntry, hours []timesheet.WorkerHours) []timesheet.WorkerHours {
	seen := make(map[string]bool, len(existing))
	for _, e := range existing {
		seen[e.WorkerID] = true
	}

	var pending []timesheet.WorkerHours
	for _, wh := range hours {
		if !seen[wh.WorkerID] {
			pending = append(pending, wh)
		}
	}
	return pending
}

// readApprovedHours applies the configured timeout to the external timesheet
// read. A timeout is surfaced as-is: retryable, never "zero hours".
func (s *PayrollServiceImpl) readApprovedHours(ctx context.Context, batch payroll.PayrollBatch) ([]timesheet.WorkerHours, error) {
	readCtx, cancel := context.WithTimeout(ctx, s.timesheetTimeout)
	defer cancel()

	hours, err := s.timesheetSource.GetApprovedHours(readCtx, batch.PeriodStart, batch.PeriodEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to read approved hours: %w", err)
	}
	return hours, nil
}

// resolveRate resolves the worker's pay rate as of the end of the batch period.
func (s *PayrollServiceImpl) resolveRate(ctx context.Context, workerID string, batch payroll.PayrollBatch) (payrate.ResolvedRate, error) {
	rates, err := s.payRateRepo.ListCovering(ctx, workerID, batch.PeriodEnd)
	if err != nil {
		return payrate.ResolvedRate{}, err
	}

	resolved, err := payrate.Resolve(rates, batch.PeriodEnd)
	if err != nil {
		return payrate.ResolvedRate{}, fmt.Errorf("worker %s: %w", workerID, err)
	}
	return resolved, nil
}
