package payroll

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/clearstaff/payroll-backend-go/internal/domain/auth"
	"github.com/clearstaff/payroll-backend-go/internal/domain/payrate"
	"github.com/clearstaff/payroll-backend-go/internal/domain/payroll"
	"github.com/clearstaff/payroll-backend-go/internal/domain/timesheet"
	"github.com/clearstaff/payroll-backend-go/internal/domain/worker"
	"github.com/clearstaff/payroll-backend-go/internal/pkg/database"
	"github.com/clearstaff/payroll-backend-go/internal/pkg/storage"
	"github.com/clearstaff/payroll-backend-go/internal/repository/postgresql"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PayrollServiceImpl struct {
	db               *database.DB
	payrollRepo      payroll.PayrollRepository
	payRateRepo      payrate.PayRateRepository
	workerRepo       worker.WorkerRepository
	timesheetSource  timesheet.Source
	fileStorage      storage.FileStorage
	timesheetTimeout time.Duration
}

func NewPayrollService(
	db *database.DB,
	payrollRepo payroll.PayrollRepository,
	payRateRepo payrate.PayRateRepository,
	workerRepo worker.WorkerRepository,
	timesheetSource timesheet.Source,
	fileStorage storage.FileStorage,
	timesheetTimeout time.Duration,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		db:               db,
		payrollRepo:      payrollRepo,
		payRateRepo:      payRateRepo,
		workerRepo:       workerRepo,
		timesheetSource:  timesheetSource,
		fileStorage:      fileStorage,
		timesheetTimeout: timesheetTimeout,
	}
}

// Helper to get the acting user and role from JWT context
func getClaimsFromContext(ctx context.Context) (userID string, isAdmin bool, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", false, fmt.Errorf("%w: %v", auth.ErrInvalidToken, err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", false, fmt.Errorf("%w: user_id claim is missing", auth.ErrInvalidToken)
	}

	isAdmin, _ = claims["is_admin"].(bool)

	return userID, isAdmin, nil
}

func requireAdmin(ctx context.Context) (userID string, err error) {
	userID, isAdmin, err := getClaimsFromContext(ctx)
	if err != nil {
		return "", err
	}
	if !isAdmin {
		return "", payroll.ErrAdminRequired
	}
	return userID, nil
}

// ========== BATCHES ==========

func (s *PayrollServiceImpl) CreateBatch(ctx context.Context, req payroll.CreateBatchRequest) (payroll.BatchResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.BatchResponse{}, err
	}

	periodStart, _ := time.Parse("2006-01-02", req.PeriodStart)
	periodEnd, _ := time.Parse("2006-01-02", req.PeriodEnd)

	batch := payroll.PayrollBatch{
		Name:        req.Name,
		BatchNumber: newBatchNumber(periodStart),
		Status:      payroll.BatchStatusDraft,
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
		Notes:       req.Notes,
	}

	created, err := s.payrollRepo.CreateBatch(ctx, batch)
	if err != nil {
		return payroll.BatchResponse{}, err
	}

	return toBatchResponse(created, nil), nil
}

func newBatchNumber(periodStart time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("PB-%s-%s", periodStart.Format("200601"), suffix)
}

func (s *PayrollServiceImpl) GetBatch(ctx context.Context, id string) (payroll.BatchResponse, error) {
	batch, err := s.payrollRepo.GetBatchByID(ctx, id)
	if err != nil {
		return payroll.BatchResponse{}, err
	}

	entries, err := s.payrollRepo.ListEntriesByBatch(ctx, id)
	if err != nil {
		return payroll.BatchResponse{}, err
	}

	return toBatchResponse(batch, entries), nil
}

func (s *PayrollServiceImpl) ListBatches(ctx context.Context, filter payroll.BatchFilter) (payroll.ListBatchesResponse, error) {
	batches, total, err := s.payrollRepo.ListBatches(ctx, filter)
	if err != nil {
		return payroll.ListBatchesResponse{}, err
	}

	responses := make([]payroll.BatchResponse, 0, len(batches))
	for _, b := range batches {
		responses = append(responses, toBatchResponse(b, nil))
	}

	return payroll.ListBatchesResponse{Batches: responses, TotalItems: total}, nil
}

func (s *PayrollServiceImpl) DeleteBatch(ctx context.Context, id string) error {
	if _, err := requireAdmin(ctx); err != nil {
		return err
	}

	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		batch, err := s.payrollRepo.GetBatchForUpdate(txCtx, id)
		if err != nil {
			return err
		}
		// Batches leave draft only through the lifecycle; deletion later on
		// would orphan the audit trail
		if err := payroll.EnsureMutable(batch.Status); err != nil {
			return err
		}

		return s.payrollRepo.DeleteBatch(txCtx, id)
	})
}

// ========== ENTRIES ==========

func (s *PayrollServiceImpl) AddEntry(ctx context.Context, req payroll.AddEntryRequest) (payroll.EntryResponse, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return payroll.EntryResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return payroll.EntryResponse{}, err
	}

	var created payroll.PayrollEntry
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		batch, err := s.payrollRepo.GetBatchForUpdate(txCtx, req.BatchID)
		if err != nil {
			return err
		}
		if err := payroll.EnsureMutable(batch.Status); err != nil {
			return err
		}

		if _, err := s.workerRepo.GetByID(txCtx, req.WorkerID); err != nil {
			return err
		}

		// Pay fields are always recomputed here; caller-supplied totals are
		// never trusted
		pay, err := payroll.ComputeEntry(req.RegularHours, req.OvertimeHours, req.HourlyRate, req.OvertimeRate, req.ExpenseReimbursement)
		if err != nil {
			return err
		}

		entry := payroll.PayrollEntry{
			BatchID:              req.BatchID,
			WorkerID:             req.WorkerID,
			RegularHours:         req.RegularHours,
			OvertimeHours:        req.OvertimeHours,
			HourlyRate:           req.HourlyRate,
			OvertimeRate:         payroll.EffectiveOvertimeRate(req.HourlyRate, req.OvertimeRate),
			RegularPay:           pay.RegularPay,
			OvertimePay:          pay.OvertimePay,
			GrossPay:             pay.GrossPay,
			ExpenseReimbursement: req.ExpenseReimbursement,
			TotalPay:             pay.TotalPay,
			Notes:                req.Notes,
		}

		created, err = s.payrollRepo.CreateEntry(txCtx, entry)
		if err != nil {
			return err
		}

		return s.recomputeTotals(txCtx, req.BatchID)
	})
	if err != nil {
		return payroll.EntryResponse{}, err
	}

	return toEntryResponse(created), nil
}

func (s *PayrollServiceImpl) UpdateEntry(ctx context.Context, req payroll.UpdateEntryRequest) (payroll.EntryResponse, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return payroll.EntryResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return payroll.EntryResponse{}, err
	}

	var updated payroll.PayrollEntry
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		entry, err := s.payrollRepo.GetEntryByID(txCtx, req.ID)
		if err != nil {
			return err
		}

		batch, err := s.payrollRepo.GetBatchForUpdate(txCtx, entry.BatchID)
		if err != nil {
			return err
		}
		if err := payroll.EnsureMutable(batch.Status); err != nil {
			return err
		}

		// Apply updates to the raw inputs
		if req.RegularHours != nil {
			entry.RegularHours = *req.RegularHours
		}
		if req.OvertimeHours != nil {
			entry.OvertimeHours = *req.OvertimeHours
		}
		if req.HourlyRate != nil {
			entry.HourlyRate = *req.HourlyRate
			// A new hourly rate re-derives the overtime rate unless one is
			// supplied alongside it
			if req.OvertimeRate == nil {
				entry.OvertimeRate = payrate.DefaultOvertimeRate(entry.HourlyRate)
			}
		}
		if req.OvertimeRate != nil {
			entry.OvertimeRate = *req.OvertimeRate
		}
		if req.ExpenseReimbursement != nil {
			entry.ExpenseReimbursement = *req.ExpenseReimbursement
		}
		if req.Notes != nil {
			entry.Notes = req.Notes
		}

		pay, err := payroll.ComputeEntry(entry.RegularHours, entry.OvertimeHours, entry.HourlyRate, &entry.OvertimeRate, entry.ExpenseReimbursement)
		if err != nil {
			return err
		}
		entry.RegularPay = pay.RegularPay
		entry.OvertimePay = pay.OvertimePay
		entry.GrossPay = pay.GrossPay
		entry.TotalPay = pay.TotalPay

		updated, err = s.payrollRepo.UpdateEntry(txCtx, entry)
		if err != nil {
			return err
		}

		return s.recomputeTotals(txCtx, entry.BatchID)
	})
	if err != nil {
		return payroll.EntryResponse{}, err
	}

	return toEntryResponse(updated), nil
}

func (s *PayrollServiceImpl) DeleteEntry(ctx context.Context, id string) error {
	if _, err := requireAdmin(ctx); err != nil {
		return err
	}

	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		entry, err := s.payrollRepo.GetEntryByID(txCtx, id)
		if err != nil {
			return err
		}

		batch, err := s.payrollRepo.GetBatchForUpdate(txCtx, entry.BatchID)
		if err != nil {
			return err
		}
		if err := payroll.EnsureMutable(batch.Status); err != nil {
			return err
		}

		if err := s.payrollRepo.DeleteEntry(txCtx, id); err != nil {
			return err
		}

		return s.recomputeTotals(txCtx, entry.BatchID)
	})
}

// recomputeTotals is the single writer of the derived batch fields. It folds
// over the full entry set inside the caller's transaction, so it observes a
// consistent snapshot and is idempotent.
func (s *PayrollServiceImpl) recomputeTotals(ctx context.Context, batchID string) error {
	entries, err := s.payrollRepo.ListEntriesByBatch(ctx, batchID)
	if err != nil {
		return fmt.Errorf("failed to read entries for aggregation: %w", err)
	}

	totals := payroll.AggregateEntries(entries)
	if err := s.payrollRepo.UpdateBatchTotals(ctx, batchID, totals); err != nil {
		return fmt.Errorf("failed to persist batch totals: %w", err)
	}

	return nil
}

// ========== STUB QUERIES ==========

func (s *PayrollServiceImpl) ListBatchStubs(ctx context.Context, batchID string) ([]payroll.StubResponse, error) {
	if _, err := s.payrollRepo.GetBatchByID(ctx, batchID); err != nil {
		return nil, err
	}

	stubs, err := s.payrollRepo.ListStubsByBatch(ctx, batchID)
	if err != nil {
		return nil, err
	}

	return toStubResponses(stubs), nil
}

func (s *PayrollServiceImpl) ListWorkerStubs(ctx context.Context, workerID string) ([]payroll.StubResponse, error) {
	if _, err := s.workerRepo.GetByID(ctx, workerID); err != nil {
		return nil, err
	}

	stubs, err := s.payrollRepo.ListStubsByWorker(ctx, workerID)
	if err != nil {
		return nil, err
	}

	return toStubResponses(stubs), nil
}

// ========== MAPPERS ==========

func toBatchResponse(b payroll.PayrollBatch, entries []payroll.PayrollEntry) payroll.BatchResponse {
	resp := payroll.BatchResponse{
		ID:                 b.ID,
		Name:               b.Name,
		BatchNumber:        b.BatchNumber,
		Status:             string(b.Status),
		PeriodStart:        b.PeriodStart.Format("2006-01-02"),
		PeriodEnd:          b.PeriodEnd.Format("2006-01-02"),
		TotalAmount:        b.TotalAmount,
		TotalGrossPay:      b.TotalGrossPay,
		TotalExpenses:      b.TotalExpenses,
		TotalHours:         b.TotalHours,
		TotalRegularHours:  b.TotalRegularHours,
		TotalOvertimeHours: b.TotalOvertimeHours,
		ConsultantCount:    b.ConsultantCount,
		EntryCount:         b.EntryCount,
		Notes:              b.Notes,
	}
	if b.PayDate != nil {
		payDate := b.PayDate.Format("2006-01-02")
		resp.PayDate = &payDate
	}
	for _, e := range entries {
		resp.Entries = append(resp.Entries, toEntryResponse(e))
	}
	return resp
}

func toEntryResponse(e payroll.PayrollEntry) payroll.EntryResponse {
	return payroll.EntryResponse{
		ID:                   e.ID,
		BatchID:              e.BatchID,
		WorkerID:             e.WorkerID,
		WorkerName:           e.WorkerName,
		RegularHours:         e.RegularHours,
		OvertimeHours:        e.OvertimeHours,
		HourlyRate:           e.HourlyRate,
		OvertimeRate:         e.OvertimeRate,
		RegularPay:           e.RegularPay,
		OvertimePay:          e.OvertimePay,
		GrossPay:             e.GrossPay,
		ExpenseReimbursement: e.ExpenseReimbursement,
		TotalPay:             e.TotalPay,
		Notes:                e.Notes,
	}
}

func toStubResponses(stubs []payroll.PaycheckStub) []payroll.StubResponse {
	responses := make([]payroll.StubResponse, 0, len(stubs))
	for _, s := range stubs {
		responses = append(responses, payroll.StubResponse{
			ID:            s.ID,
			WorkerID:      s.WorkerID,
			WorkerName:    s.WorkerName,
			BatchID:       s.BatchID,
			PayDate:       s.PayDate.Format("2006-01-02"),
			PeriodStart:   s.PeriodStart.Format("2006-01-02"),
			PeriodEnd:     s.PeriodEnd.Format("2006-01-02"),
			RegularHours:  s.RegularHours,
			OvertimeHours: s.OvertimeHours,
			GrossPay:      s.GrossPay,
			NetPay:        s.NetPay,
			PDFURL:        s.PDFURL,
		})
	}
	return responses
}
