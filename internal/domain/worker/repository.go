package worker

import "context"

type WorkerRepository interface {
	GetByID(ctx context.Context, id string) (Worker, error)
	List(ctx context.Context, activeOnly bool) ([]Worker, error)
}
