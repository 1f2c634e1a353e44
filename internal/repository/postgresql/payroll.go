package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/clearstaff/payroll-backend-go/internal/domain/payroll"
	"github.com/clearstaff/payroll-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

// ========== BATCHES ==========

const batchColumns = `id, name, batch_number, status, period_start, period_end, pay_date,
	total_amount, total_gross_pay, total_expenses, total_hours, total_regular_hours, total_overtime_hours,
	consultant_count, entry_count, notes, approved_by, approved_at, cancel_reason, created_at, updated_at`

func scanBatch(row pgx.Row) (payroll.PayrollBatch, error) {
	var b payroll.PayrollBatch
	err := row.Scan(
		&b.ID, &b.Name, &b.BatchNumber, &b.Status, &b.PeriodStart, &b.PeriodEnd, &b.PayDate,
		&b.TotalAmount, &b.TotalGrossPay, &b.TotalExpenses, &b.TotalHours, &b.TotalRegularHours, &b.TotalOvertimeHours,
		&b.ConsultantCount, &b.EntryCount, &b.Notes, &b.ApprovedBy, &b.ApprovedAt, &b.CancelReason, &b.CreatedAt, &b.UpdatedAt,
	)
	return b, err
}

func (r *payrollRepository) CreateBatch(ctx context.Context, batch payroll.PayrollBatch) (payroll.PayrollBatch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_batches (name, batch_number, status, period_start, period_end, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + batchColumns

	created, err := scanBatch(q.QueryRow(ctx, query,
		batch.Name, batch.BatchNumber, batch.Status, batch.PeriodStart, batch.PeriodEnd, batch.Notes,
	))
	if err != nil {
		return payroll.PayrollBatch{}, fmt.Errorf("failed to create payroll batch: %w", err)
	}

	return created, nil
}

func (r *payrollRepository) GetBatchByID(ctx context.Context, id string) (payroll.PayrollBatch, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + batchColumns + ` FROM payroll_batches WHERE id = $1`

	batch, err := scanBatch(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayrollBatch{}, payroll.ErrBatchNotFound
		}
		return payroll.PayrollBatch{}, fmt.Errorf("failed to get payroll batch: %w", err)
	}

	return batch, nil
}

func (r *payrollRepository) GetBatchForUpdate(ctx context.Context, id string) (payroll.PayrollBatch, error) {
	q := GetQuerier(ctx, r.db)

	// Row lock serializes concurrent entry mutation and aggregation per batch
	query := `SELECT ` + batchColumns + ` FROM payroll_batches WHERE id = $1 FOR UPDATE`

	batch, err := scanBatch(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayrollBatch{}, payroll.ErrBatchNotFound
		}
		return payroll.PayrollBatch{}, fmt.Errorf("failed to lock payroll batch: %w", err)
	}

	return batch, nil
}

func (r *payrollRepository) ListBatches(ctx context.Context, filter payroll.BatchFilter) ([]payroll.PayrollBatch, int64, error) {
	q := GetQuerier(ctx, r.db)

	var conditions []string
	var args []interface{}
	argPos := 1

	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argPos))
		args = append(args, *filter.Status)
		argPos++
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM payroll_batches`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count payroll batches: %w", err)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	page := filter.Page
	if page <= 0 {
		page = 1
	}
	offset := (page - 1) * limit

	query := `SELECT ` + batchColumns + ` FROM payroll_batches` + where +
		fmt.Sprintf(` ORDER BY period_start DESC, created_at DESC LIMIT $%d OFFSET $%d`, argPos, argPos+1)
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list payroll batches: %w", err)
	}
	defer rows.Close()

	var batches []payroll.PayrollBatch
	for rows.Next() {
		var b payroll.PayrollBatch
		if err := rows.Scan(
			&b.ID, &b.Name, &b.BatchNumber, &b.Status, &b.PeriodStart, &b.PeriodEnd, &b.PayDate,
			&b.TotalAmount, &b.TotalGrossPay, &b.TotalExpenses, &b.TotalHours, &b.TotalRegularHours, &b.TotalOvertimeHours,
			&b.ConsultantCount, &b.EntryCount, &b.Notes, &b.ApprovedBy, &b.ApprovedAt, &b.CancelReason, &b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan payroll batch: %w", err)
		}
		batches = append(batches, b)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read payroll batches: %w", err)
	}

	return batches, total, nil
}

func (r *payrollRepository) DeleteBatch(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	// Entries cascade via FK
	tag, err := q.Exec(ctx, `DELETE FROM payroll_batches WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete payroll batch: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrBatchNotFound
	}

	return nil
}

func (r *payrollRepository) UpdateBatchTotals(ctx context.Context, batchID string, totals payroll.BatchTotals) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payroll_batches
		SET total_amount = $2,
			total_gross_pay = $3,
			total_expenses = $4,
			total_hours = $5,
			total_regular_hours = $6,
			total_overtime_hours = $7,
			consultant_count = $8,
			entry_count = $9,
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, batchID,
		totals.TotalAmount, totals.TotalGrossPay, totals.TotalExpenses,
		totals.TotalHours, totals.TotalRegularHours, totals.TotalOvertimeHours,
		totals.ConsultantCount, totals.EntryCount,
	)
	if err != nil {
		return fmt.Errorf("failed to update batch totals: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrBatchNotFound
	}

	return nil
}

func (r *payrollRepository) TransitionStatus(ctx context.Context, batchID string, from, to payroll.BatchStatus) (bool, error) {
	q := GetQuerier(ctx, r.db)

	// Compare-and-set: the WHERE clause loses against any concurrent
	// transition, so at most one caller wins
	query := `
		UPDATE payroll_batches
		SET status = $3, updated_at = NOW()
		WHERE id = $1 AND status = $2
	`

	tag, err := q.Exec(ctx, query, batchID, from, to)
	if err != nil {
		return false, fmt.Errorf("failed to transition batch status: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

func (r *payrollRepository) SetBatchApproval(ctx context.Context, batchID string, approverID string, approvedAt time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE payroll_batches SET approved_by = $2, approved_at = $3, updated_at = NOW() WHERE id = $1`

	if _, err := q.Exec(ctx, query, batchID, approverID, approvedAt); err != nil {
		return fmt.Errorf("failed to record batch approval: %w", err)
	}

	return nil
}

func (r *payrollRepository) SetBatchPayDate(ctx context.Context, batchID string, payDate time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE payroll_batches SET pay_date = $2, updated_at = NOW() WHERE id = $1`

	if _, err := q.Exec(ctx, query, batchID, payDate); err != nil {
		return fmt.Errorf("failed to set batch pay date: %w", err)
	}

	return nil
}

func (r *payrollRepository) SetBatchCancelReason(ctx context.Context, batchID string, reason *string) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE payroll_batches SET cancel_reason = $2, updated_at = NOW() WHERE id = $1`

	if _, err := q.Exec(ctx, query, batchID, reason); err != nil {
		return fmt.Errorf("failed to set batch cancel reason: %w", err)
	}

	return nil
}

// ========== ENTRIES ==========

const entryColumns = `e.id, e.batch_id, e.worker_id, e.regular_hours, e.overtime_hours,
	e.hourly_rate, e.overtime_rate, e.regular_pay, e.overtime_pay, e.gross_pay,
	e.expense_reimbursement, e.total_pay, e.notes, e.created_at, e.updated_at`

func (r *payrollRepository) CreateEntry(ctx context.Context, entry payroll.PayrollEntry) (payroll.PayrollEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_entries (
			batch_id, worker_id, regular_hours, overtime_hours,
			hourly_rate, overtime_rate, regular_pay, overtime_pay, gross_pay,
			expense_reimbursement, total_pay, notes
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, batch_id, worker_id, regular_hours, overtime_hours,
			hourly_rate, overtime_rate, regular_pay, overtime_pay, gross_pay,
			expense_reimbursement, total_pay, notes, created_at, updated_at
	`

	var e payroll.PayrollEntry
	err := q.QueryRow(ctx, query,
		entry.BatchID, entry.WorkerID, entry.RegularHours, entry.OvertimeHours,
		entry.HourlyRate, entry.OvertimeRate, entry.RegularPay, entry.OvertimePay, entry.GrossPay,
		entry.ExpenseReimbursement, entry.TotalPay, entry.Notes,
	).Scan(
		&e.ID, &e.BatchID, &e.WorkerID, &e.RegularHours, &e.OvertimeHours,
		&e.HourlyRate, &e.OvertimeRate, &e.RegularPay, &e.OvertimePay, &e.GrossPay,
		&e.ExpenseReimbursement, &e.TotalPay, &e.Notes, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "uk_payroll_entry_batch_worker") {
			return payroll.PayrollEntry{}, payroll.ErrDuplicateEntry
		}
		return payroll.PayrollEntry{}, fmt.Errorf("failed to create payroll entry: %w", err)
	}

	return e, nil
}

func (r *payrollRepository) GetEntryByID(ctx context.Context, id string) (payroll.PayrollEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + entryColumns + `, w.first_name || ' ' || w.last_name AS worker_name
		FROM payroll_entries e
		JOIN workers w ON w.id = e.worker_id
		WHERE e.id = $1
	`

	var e payroll.PayrollEntry
	err := q.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.BatchID, &e.WorkerID, &e.RegularHours, &e.OvertimeHours,
		&e.HourlyRate, &e.OvertimeRate, &e.RegularPay, &e.OvertimePay, &e.GrossPay,
		&e.ExpenseReimbursement, &e.TotalPay, &e.Notes, &e.CreatedAt, &e.UpdatedAt,
		&e.WorkerName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayrollEntry{}, payroll.ErrEntryNotFound
		}
		return payroll.PayrollEntry{}, fmt.Errorf("failed to get payroll entry: %w", err)
	}

	return e, nil
}

func (r *payrollRepository) ListEntriesByBatch(ctx context.Context, batchID string) ([]payroll.PayrollEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + entryColumns + `, w.first_name || ' ' || w.last_name AS worker_name
		FROM payroll_entries e
		JOIN workers w ON w.id = e.worker_id
		WHERE e.batch_id = $1
		ORDER BY w.last_name, w.first_name
	`

	rows, err := q.Query(ctx, query, batchID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll entries: %w", err)
	}
	defer rows.Close()

	var entries []payroll.PayrollEntry
	for rows.Next() {
		var e payroll.PayrollEntry
		if err := rows.Scan(
			&e.ID, &e.BatchID, &e.WorkerID, &e.RegularHours, &e.OvertimeHours,
			&e.HourlyRate, &e.OvertimeRate, &e.RegularPay, &e.OvertimePay, &e.GrossPay,
			&e.ExpenseReimbursement, &e.TotalPay, &e.Notes, &e.CreatedAt, &e.UpdatedAt,
			&e.WorkerName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan payroll entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read payroll entries: %w", err)
	}

	return entries, nil
}

func (r *payrollRepository) UpdateEntry(ctx context.Context, entry payroll.PayrollEntry) (payroll.PayrollEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payroll_entries
		SET regular_hours = $2,
			overtime_hours = $3,
			hourly_rate = $4,
			overtime_rate = $5,
			regular_pay = $6,
			overtime_pay = $7,
			gross_pay = $8,
			expense_reimbursement = $9,
			total_pay = $10,
			notes = $11,
			updated_at = NOW()
		WHERE id = $1
		RETURNING id, batch_id, worker_id, regular_hours, overtime_hours,
			hourly_rate, overtime_rate, regular_pay, overtime_pay, gross_pay,
			expense_reimbursement, total_pay, notes, created_at, updated_at
	`

	var e payroll.PayrollEntry
	err := q.QueryRow(ctx, query,
		entry.ID, entry.RegularHours, entry.OvertimeHours,
		entry.HourlyRate, entry.OvertimeRate, entry.RegularPay, entry.OvertimePay, entry.GrossPay,
		entry.ExpenseReimbursement, entry.TotalPay, entry.Notes,
	).Scan(
		&e.ID, &e.BatchID, &e.WorkerID, &e.RegularHours, &e.OvertimeHours,
		&e.HourlyRate, &e.OvertimeRate, &e.RegularPay, &e.OvertimePay, &e.GrossPay,
		&e.ExpenseReimbursement, &e.TotalPay, &e.Notes, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayrollEntry{}, payroll.ErrEntryNotFound
		}
		return payroll.PayrollEntry{}, fmt.Errorf("failed to update payroll entry: %w", err)
	}

	return e, nil
}

func (r *payrollRepository) DeleteEntry(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM payroll_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete payroll entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrEntryNotFound
	}

	return nil
}

// ========== STUBS ==========

func (r *payrollRepository) CreateStub(ctx context.Context, stub payroll.PaycheckStub) (payroll.PaycheckStub, bool, error) {
	q := GetQuerier(ctx, r.db)

	// ON CONFLICT DO NOTHING keeps stub emission idempotent on
	// (worker_id, batch_id) across retries
	query := `
		INSERT INTO paycheck_stubs (
			worker_id, batch_id, pay_date, period_start, period_end,
			regular_hours, overtime_hours, gross_pay, net_pay
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (worker_id, batch_id) DO NOTHING
		RETURNING id, worker_id, batch_id, pay_date, period_start, period_end,
			regular_hours, overtime_hours, gross_pay, net_pay, pdf_url, created_at
	`

	var s payroll.PaycheckStub
	err := q.QueryRow(ctx, query,
		stub.WorkerID, stub.BatchID, stub.PayDate, stub.PeriodStart, stub.PeriodEnd,
		stub.RegularHours, stub.OvertimeHours, stub.GrossPay, stub.NetPay,
	).Scan(
		&s.ID, &s.WorkerID, &s.BatchID, &s.PayDate, &s.PeriodStart, &s.PeriodEnd,
		&s.RegularHours, &s.OvertimeHours, &s.GrossPay, &s.NetPay, &s.PDFURL, &s.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			// Conflict path: a stub already exists for this worker/batch
			existing, getErr := r.getStubByWorkerBatch(ctx, stub.WorkerID, stub.BatchID)
			if getErr != nil {
				return payroll.PaycheckStub{}, false, getErr
			}
			return existing, false, nil
		}
		return payroll.PaycheckStub{}, false, fmt.Errorf("failed to create paycheck stub: %w", err)
	}

	return s, true, nil
}

func (r *payrollRepository) getStubByWorkerBatch(ctx context.Context, workerID, batchID string) (payroll.PaycheckStub, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, worker_id, batch_id, pay_date, period_start, period_end,
			regular_hours, overtime_hours, gross_pay, net_pay, pdf_url, created_at
		FROM paycheck_stubs
		WHERE worker_id = $1 AND batch_id = $2
	`

	var s payroll.PaycheckStub
	err := q.QueryRow(ctx, query, workerID, batchID).Scan(
		&s.ID, &s.WorkerID, &s.BatchID, &s.PayDate, &s.PeriodStart, &s.PeriodEnd,
		&s.RegularHours, &s.OvertimeHours, &s.GrossPay, &s.NetPay, &s.PDFURL, &s.CreatedAt,
	)
	if err != nil {
		return payroll.PaycheckStub{}, fmt.Errorf("failed to get paycheck stub: %w", err)
	}

	return s, nil
}

func (r *payrollRepository) ListStubsByBatch(ctx context.Context, batchID string) ([]payroll.PaycheckStub, error) {
	return r.listStubs(ctx, `s.batch_id = $1`, batchID)
}

func (r *payrollRepository) ListStubsByWorker(ctx context.Context, workerID string) ([]payroll.PaycheckStub, error) {
	return r.listStubs(ctx, `s.worker_id = $1`, workerID)
}

func (r *payrollRepository) listStubs(ctx context.Context, condition string, arg interface{}) ([]payroll.PaycheckStub, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT s.id, s.worker_id, s.batch_id, s.pay_date, s.period_start, s.period_end,
			s.regular_hours, s.overtime_hours, s.gross_pay, s.net_pay, s.pdf_url, s.created_at,
			w.first_name || ' ' || w.last_name AS worker_name
		FROM paycheck_stubs s
		JOIN workers w ON w.id = s.worker_id
		WHERE ` + condition + `
		ORDER BY s.pay_date DESC, w.last_name, w.first_name
	`

	rows, err := q.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to list paycheck stubs: %w", err)
	}
	defer rows.Close()

	var stubs []payroll.PaycheckStub
	for rows.Next() {
		var s payroll.PaycheckStub
		if err := rows.Scan(
			&s.ID, &s.WorkerID, &s.BatchID, &s.PayDate, &s.PeriodStart, &s.PeriodEnd,
			&s.RegularHours, &s.OvertimeHours, &s.GrossPay, &s.NetPay, &s.PDFURL, &s.CreatedAt,
			&s.WorkerName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan paycheck stub: %w", err)
		}
		stubs = append(stubs, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read paycheck stubs: %w", err)
	}

	return stubs, nil
}

func (r *payrollRepository) UpdateStubPDFURL(ctx context.Context, stubID string, pdfURL string) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE paycheck_stubs SET pdf_url = $2 WHERE id = $1 AND pdf_url IS NULL`

	if _, err := q.Exec(ctx, query, stubID, pdfURL); err != nil {
		return fmt.Errorf("failed to set stub pdf url: %w", err)
	}

	return nil
}
