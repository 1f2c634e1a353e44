package worker

import "context"

type WorkerService interface {
	Get(ctx context.Context, id string) (WorkerResponse, error)
	List(ctx context.Context, activeOnly bool) ([]WorkerResponse, error)
}
