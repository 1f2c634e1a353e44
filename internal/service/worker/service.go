package worker

import (
	"context"

	"github.com/clearstaff/payroll-backend-go/internal/domain/worker"
)

type WorkerServiceImpl struct {
	workerRepo worker.WorkerRepository
}

func NewWorkerService(workerRepo worker.WorkerRepository) worker.WorkerService {
	return &WorkerServiceImpl{workerRepo: workerRepo}
}

func (s *WorkerServiceImpl) Get(ctx context.Context, id string) (worker.WorkerResponse, error) {
	w, err := s.workerRepo.GetByID(ctx, id)
	if err != nil {
		return worker.WorkerResponse{}, err
	}
	return worker.ToResponse(w), nil
}

func (s *WorkerServiceImpl) List(ctx context.Context, activeOnly bool) ([]worker.WorkerResponse, error) {
	workers, err := s.workerRepo.List(ctx, activeOnly)
	if err != nil {
		return nil, err
	}

	responses := make([]worker.WorkerResponse, 0, len(workers))
	for _, w := range workers {
		responses = append(responses, worker.ToResponse(w))
	}
	return responses, nil
}
