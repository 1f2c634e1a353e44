package payroll

import "context"

// PayrollService is the request-scoped engine behind the payroll HTTP
// surface. Entry mutation is legal only while the owning batch is in draft;
// lifecycle transitions are role-gated via the caller's token claims.
type PayrollService interface {
	// Batches
	CreateBatch(ctx context.Context, req CreateBatchRequest) (BatchResponse, error)
	GetBatch(ctx context.Context, id string) (BatchResponse, error)
	ListBatches(ctx context.Context, filter BatchFilter) (ListBatchesResponse, error)
	DeleteBatch(ctx context.Context, id string) error

	// Entries (draft-only)
	AddEntry(ctx context.Context, req AddEntryRequest) (EntryResponse, error)
	UpdateEntry(ctx context.Context, req UpdateEntryRequest) (EntryResponse, error)
	DeleteEntry(ctx context.Context, id string) error

	// AutoCalculate materializes one entry per worker with approved hours in
	// the batch period, skipping workers that already have an entry.
	AutoCalculate(ctx context.Context, batchID string) (AutoCalculateResponse, error)

	// Lifecycle
	SubmitBatch(ctx context.Context, id string) (BatchResponse, error)
	ApproveBatch(ctx context.Context, id string) (BatchResponse, error)
	ProcessBatch(ctx context.Context, id string, req ProcessBatchRequest) (BatchResponse, error)
	CancelBatch(ctx context.Context, id string, req CancelBatchRequest) (BatchResponse, error)
	ReopenBatch(ctx context.Context, id string) (BatchResponse, error)

	// Stubs
	ListBatchStubs(ctx context.Context, batchID string) ([]StubResponse, error)
	ListWorkerStubs(ctx context.Context, workerID string) ([]StubResponse, error)
}
