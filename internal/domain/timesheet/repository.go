package timesheet

import (
	"context"
	"time"
)

// Source provides approved time records for batch auto-calculation. It is an
// external collaborator boundary: callers apply a read timeout and treat
// timeout as retryable, never as zero hours.
type Source interface {
	// GetApprovedHours returns per-worker summed approved hours for work
	// dates in [periodStart, periodEnd].
	GetApprovedHours(ctx context.Context, periodStart, periodEnd time.Time) ([]WorkerHours, error)
}
