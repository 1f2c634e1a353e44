package payrate

import (
	"context"
	"time"
)

type PayRateService interface {
	// Create inserts a new rate for a worker, capping any active open-ended
	// rate at the new rate's effective_from in the same transaction.
	Create(ctx context.Context, req CreatePayRateRequest) (PayRateResponse, error)

	ListByWorker(ctx context.Context, workerID string) ([]PayRateResponse, error)

	Deactivate(ctx context.Context, id string) error

	// ResolveRate returns the applicable hourly/overtime rate for the worker
	// as of the given date, applying the default overtime multiplier when the
	// rate row has none.
	ResolveRate(ctx context.Context, workerID string, asOf time.Time) (ResolvedRate, error)
}
