package payrate

import (
	"context"
	"time"
)

type PayRateRepository interface {
	Create(ctx context.Context, rate PayRate) (PayRate, error)
	GetByID(ctx context.Context, id string) (PayRate, error)
	ListByWorker(ctx context.Context, workerID string) ([]PayRate, error)

	// ListCovering returns active rate rows for the worker whose effective
	// window contains asOf. Resolution over the result is done in-domain.
	ListCovering(ctx context.Context, workerID string, asOf time.Time) ([]PayRate, error)

	// CloseOpenEnded caps any active open-ended rate for the worker at the
	// given end date. Used when a new rate supersedes the current one.
	CloseOpenEnded(ctx context.Context, workerID string, endDate time.Time) error

	// Deactivate soft-disables a rate row; superseded rates are kept for audit.
	Deactivate(ctx context.Context, id string) error
}
