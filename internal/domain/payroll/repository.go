package payroll

import (
	"context"
	"time"
)

// PayrollRepository defines data access for batches, entries and stubs.
// Status-changing methods are compare-and-set on the expected current status
// so that two concurrent transitions cannot both win.
type PayrollRepository interface {
	// Batches
	CreateBatch(ctx context.Context, batch PayrollBatch) (PayrollBatch, error)
	GetBatchByID(ctx context.Context, id string) (PayrollBatch, error)
	// GetBatchForUpdate locks the batch row for the rest of the transaction,
	// serializing entry mutation and aggregation per batch.
	GetBatchForUpdate(ctx context.Context, id string) (PayrollBatch, error)
	ListBatches(ctx context.Context, filter BatchFilter) ([]PayrollBatch, int64, error)
	DeleteBatch(ctx context.Context, id string) error

	// UpdateBatchTotals persists aggregator output. This is the only write
	// path for the derived batch fields.
	UpdateBatchTotals(ctx context.Context, batchID string, totals BatchTotals) error

	// TransitionStatus performs a compare-and-set status update and reports
	// whether the row was transitioned (false: row missing or status moved).
	TransitionStatus(ctx context.Context, batchID string, from, to BatchStatus) (bool, error)
	SetBatchApproval(ctx context.Context, batchID string, approverID string, approvedAt time.Time) error
	SetBatchPayDate(ctx context.Context, batchID string, payDate time.Time) error
	SetBatchCancelReason(ctx context.Context, batchID string, reason *string) error

	// Entries
	CreateEntry(ctx context.Context, entry PayrollEntry) (PayrollEntry, error)
	GetEntryByID(ctx context.Context, id string) (PayrollEntry, error)
	ListEntriesByBatch(ctx context.Context, batchID string) ([]PayrollEntry, error)
	UpdateEntry(ctx context.Context, entry PayrollEntry) (PayrollEntry, error)
	DeleteEntry(ctx context.Context, id string) error

	// Stubs
	// CreateStub inserts a stub unless one already exists for the same
	// (worker, batch); it reports whether a row was inserted. Retrying stub
	// emission is therefore safe.
	CreateStub(ctx context.Context, stub PaycheckStub) (PaycheckStub, bool, error)
	ListStubsByBatch(ctx context.Context, batchID string) ([]PaycheckStub, error)
	ListStubsByWorker(ctx context.Context, workerID string) ([]PaycheckStub, error)
	UpdateStubPDFURL(ctx context.Context, stubID string, pdfURL string) error
}
