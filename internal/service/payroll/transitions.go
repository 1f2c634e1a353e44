package payroll

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/clearstaff/payroll-backend-go/internal/domain/payroll"
	"github.com/clearstaff/payroll-backend-go/internal/pkg/pdf"
	"github.com/clearstaff/payroll-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

const stubCompanyName = "ClearStaff Consulting"

func (s *PayrollServiceImpl) SubmitBatch(ctx context.Context, id string) (payroll.BatchResponse, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return payroll.BatchResponse{}, err
	}

	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		batch, err := s.payrollRepo.GetBatchForUpdate(txCtx, id)
		if err != nil {
			return err
		}
		if err := payroll.EnsureTransition(batch.Status, payroll.BatchStatusProcessing); err != nil {
			return err
		}
		if batch.EntryCount == 0 {
			return payroll.ErrBatchEmpty
		}

		return s.transition(txCtx, id, batch.Status, payroll.BatchStatusProcessing)
	})
	if err != nil {
		return payroll.BatchResponse{}, err
	}

	return s.GetBatch(ctx, id)
}

func (s *PayrollServiceImpl) ApproveBatch(ctx context.Context, id string) (payroll.BatchResponse, error) {
	userID, err := requireAdmin(ctx)
	if err != nil {
		return payroll.BatchResponse{}, err
	}

	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		batch, err := s.payrollRepo.GetBatchForUpdate(txCtx, id)
		if err != nil {
			return err
		}
		if err := payroll.EnsureTransition(batch.Status, payroll.BatchStatusApproved); err != nil {
			return err
		}

		if err := s.transition(txCtx, id, batch.Status, payroll.BatchStatusApproved); err != nil {
			return err
		}
		return s.payrollRepo.SetBatchApproval(txCtx, id, userID, time.Now())
	})
	if err != nil {
		return payroll.BatchResponse{}, err
	}

	return s.GetBatch(ctx, id)
}

// ProcessBatch marks an approved batch paid and snapshots a paycheck stub for
// every entry. The status flip is compare-and-set and stub inserts ignore
// existing (worker, batch) rows, so a retried or concurrent process request
// cannot emit a second stub set.
func (s *PayrollServiceImpl) ProcessBatch(ctx context.Context, id string, req payroll.ProcessBatchRequest) (payroll.BatchResponse, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return payroll.BatchResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return payroll.BatchResponse{}, err
	}

	payDate := time.Now().Truncate(24 * time.Hour)
	if req.PayDate != nil {
		payDate, _ = time.Parse("2006-01-02", *req.PayDate)
	}

	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		batch, err := s.payrollRepo.GetBatchForUpdate(txCtx, id)
		if err != nil {
			return err
		}
		if err := payroll.EnsureTransition(batch.Status, payroll.BatchStatusPaid); err != nil {
			return err
		}

		if err := s.transition(txCtx, id, batch.Status, payroll.BatchStatusPaid); err != nil {
			return err
		}
		if err := s.payrollRepo.SetBatchPayDate(txCtx, id, payDate); err != nil {
			return err
		}

		entries, err := s.payrollRepo.ListEntriesByBatch(txCtx, id)
		if err != nil {
			return err
		}

		for _, e := range entries {
			stub := payroll.PaycheckStub{
				WorkerID:      e.WorkerID,
				BatchID:       id,
				PayDate:       payDate,
				PeriodStart:   batch.PeriodStart,
				PeriodEnd:     batch.PeriodEnd,
				RegularHours:  e.RegularHours,
				OvertimeHours: e.OvertimeHours,
				GrossPay:      e.GrossPay,
				// No tax engine: net pay passes gross through
				NetPay: e.GrossPay,
			}
			if _, _, err := s.payrollRepo.CreateStub(txCtx, stub); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return payroll.BatchResponse{}, err
	}

	// PDF rendering happens after commit: the paid batch and its stubs are
	// already durable, a render failure only leaves pdf_url empty
	s.renderStubPDFs(ctx, id)

	return s.GetBatch(ctx, id)
}

func (s *PayrollServiceImpl) CancelBatch(ctx context.Context, id string, req payroll.CancelBatchRequest) (payroll.BatchResponse, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return payroll.BatchResponse{}, err
	}

	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		batch, err := s.payrollRepo.GetBatchForUpdate(txCtx, id)
		if err != nil {
			return err
		}
		if err := payroll.EnsureTransition(batch.Status, payroll.BatchStatusCancelled); err != nil {
			return err
		}

		if err := s.transition(txCtx, id, batch.Status, payroll.BatchStatusCancelled); err != nil {
			return err
		}
		return s.payrollRepo.SetBatchCancelReason(txCtx, id, req.Reason)
	})
	if err != nil {
		return payroll.BatchResponse{}, err
	}

	return s.GetBatch(ctx, id)
}

// ReopenBatch returns a processing or approved batch to draft so its entries
// can be corrected and the batch resubmitted.
func (s *PayrollServiceImpl) ReopenBatch(ctx context.Context, id string) (payroll.BatchResponse, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return payroll.BatchResponse{}, err
	}

	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		batch, err := s.payrollRepo.GetBatchForUpdate(txCtx, id)
		if err != nil {
			return err
		}
		if err := payroll.EnsureTransition(batch.Status, payroll.BatchStatusDraft); err != nil {
			return err
		}

		return s.transition(txCtx, id, batch.Status, payroll.BatchStatusDraft)
	})
	if err != nil {
		return payroll.BatchResponse{}, err
	}

	return s.GetBatch(ctx, id)
}

// transition performs the compare-and-set status flip. Losing the CAS means
// another request moved the batch first, which callers see as an illegal
// transition from the status they observed.
func (s *PayrollServiceImpl) transition(ctx context.Context, batchID string, from, to payroll.BatchStatus) error {
	moved, err := s.payrollRepo.TransitionStatus(ctx, batchID, from, to)
	if err != nil {
		return err
	}
	if !moved {
		return fmt.Errorf("%w: batch moved from %s concurrently", payroll.ErrIllegalTransition, from)
	}
	return nil
}

// renderStubPDFs renders and stores a PDF for every stub in the batch that
// does not have one yet. Failures are logged and skipped: the stub row is the
// source of truth and its pdf_url simply stays empty.
func (s *PayrollServiceImpl) renderStubPDFs(ctx context.Context, batchID string) {
	batch, err := s.payrollRepo.GetBatchByID(ctx, batchID)
	if err != nil {
		slog.Error("failed to load batch for stub pdfs", "batch_id", batchID, "error", err)
		return
	}

	stubs, err := s.payrollRepo.ListStubsByBatch(ctx, batchID)
	if err != nil {
		slog.Error("failed to list stubs for pdf rendering", "batch_id", batchID, "error", err)
		return
	}

	for _, stub := range stubs {
		if stub.PDFURL != nil {
			continue
		}

		workerName := stub.WorkerID
		if stub.WorkerName != nil {
			workerName = *stub.WorkerName
		}

		content, err := pdf.RenderStub(pdf.StubDocument{
			CompanyName:   stubCompanyName,
			WorkerName:    workerName,
			BatchNumber:   batch.BatchNumber,
			PayDate:       stub.PayDate.Format("2006-01-02"),
			PeriodStart:   stub.PeriodStart.Format("2006-01-02"),
			PeriodEnd:     stub.PeriodEnd.Format("2006-01-02"),
			RegularHours:  stub.RegularHours,
			OvertimeHours: stub.OvertimeHours,
			GrossPay:      stub.GrossPay,
			NetPay:        stub.NetPay,
		})
		if err != nil {
			slog.Error("failed to render stub pdf", "stub_id", stub.ID, "error", err)
			continue
		}

		path := fmt.Sprintf("stubs/%s/%s.pdf", batchID, stub.ID)
		storedPath, err := s.fileStorage.Upload(ctx, bytes.NewReader(content), path, "application/pdf")
		if err != nil {
			slog.Error("failed to store stub pdf", "stub_id", stub.ID, "error", err)
			continue
		}

		url, err := s.fileStorage.GetURL(ctx, storedPath, 0)
		if err != nil {
			slog.Error("failed to build stub pdf url", "stub_id", stub.ID, "error", err)
			continue
		}
		if err := s.payrollRepo.UpdateStubPDFURL(ctx, stub.ID, url); err != nil {
			slog.Error("failed to record stub pdf url", "stub_id", stub.ID, "error", err)
		}
	}
}
