package payrate

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/clearstaff/payroll-backend-go/internal/domain/payrate"
	"github.com/clearstaff/payroll-backend-go/internal/domain/worker"
	"github.com/clearstaff/payroll-backend-go/internal/pkg/database"
	"github.com/clearstaff/payroll-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

type PayRateServiceImpl struct {
	db          *database.DB
	payRateRepo payrate.PayRateRepository
	workerRepo  worker.WorkerRepository
}

func NewPayRateService(
	db *database.DB,
	payRateRepo payrate.PayRateRepository,
	workerRepo worker.WorkerRepository,
) payrate.PayRateService {
	return &PayRateServiceImpl{
		db:          db,
		payRateRepo: payRateRepo,
		workerRepo:  workerRepo,
	}
}

func (s *PayRateServiceImpl) Create(ctx context.Context, req payrate.CreatePayRateRequest) (payrate.PayRateResponse, error) {
	if err := req.Validate(); err != nil {
		return payrate.PayRateResponse{}, err
	}

	if _, err := s.workerRepo.GetByID(ctx, req.WorkerID); err != nil {
		return payrate.PayRateResponse{}, err
	}

	effectiveFrom, _ := time.Parse("2006-01-02", req.EffectiveFrom)
	var effectiveTo *time.Time
	if req.EffectiveTo != nil {
		to, _ := time.Parse("2006-01-02", *req.EffectiveTo)
		effectiveTo = &to
	}

	rate := payrate.PayRate{
		WorkerID:      req.WorkerID,
		HourlyRate:    req.HourlyRate,
		OvertimeRate:  req.OvertimeRate,
		EffectiveFrom: effectiveFrom,
		EffectiveTo:   effectiveTo,
		IsActive:      true,
	}

	var created payrate.PayRate
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		// Supersede: cap the current open-ended rate at the new start
		if err := s.payRateRepo.CloseOpenEnded(txCtx, req.WorkerID, effectiveFrom); err != nil {
			return err
		}

		var err error
		created, err = s.payRateRepo.Create(txCtx, rate)
		if err != nil {
			return fmt.Errorf("failed to create pay rate: %w", err)
		}
		return nil
	})
	if err != nil {
		return payrate.PayRateResponse{}, err
	}

	return toResponse(created), nil
}

func (s *PayRateServiceImpl) ListByWorker(ctx context.Context, workerID string) ([]payrate.PayRateResponse, error) {
	if _, err := s.workerRepo.GetByID(ctx, workerID); err != nil {
		return nil, err
	}

	rates, err := s.payRateRepo.ListByWorker(ctx, workerID)
	if err != nil {
		return nil, err
	}

	responses := make([]payrate.PayRateResponse, 0, len(rates))
	for _, r := range rates {
		responses = append(responses, toResponse(r))
	}
	return responses, nil
}

func (s *PayRateServiceImpl) Deactivate(ctx context.Context, id string) error {
	err := s.payRateRepo.Deactivate(ctx, id)
	if err != nil && !errors.Is(err, payrate.ErrPayRateNotFound) {
		return fmt.Errorf("failed to deactivate pay rate: %w", err)
	}
	return err
}

func (s *PayRateServiceImpl) ResolveRate(ctx context.Context, workerID string, asOf time.Time) (payrate.ResolvedRate, error) {
	rates, err := s.payRateRepo.ListCovering(ctx, workerID, asOf)
	if err != nil {
		return payrate.ResolvedRate{}, err
	}

	return payrate.Resolve(rates, asOf)
}

func toResponse(r payrate.PayRate) payrate.PayRateResponse {
	resp := payrate.PayRateResponse{
		ID:            r.ID,
		WorkerID:      r.WorkerID,
		HourlyRate:    r.HourlyRate,
		OvertimeRate:  r.OvertimeRate,
		EffectiveFrom: r.EffectiveFrom.Format("2006-01-02"),
		IsActive:      r.IsActive,
	}
	if r.EffectiveTo != nil {
		to := r.EffectiveTo.Format("2006-01-02")
		resp.EffectiveTo = &to
	}
	return resp
}
