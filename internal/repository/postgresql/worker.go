package postgresql

import (
	"context"
	"fmt"

	"github.com/clearstaff/payroll-backend-go/internal/domain/worker"
	"github.com/clearstaff/payroll-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type workerRepository struct {
	db *database.DB
}

func NewWorkerRepository(db *database.DB) worker.WorkerRepository {
	return &workerRepository{db: db}
}

func (r *workerRepository) GetByID(ctx context.Context, id string) (worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, first_name, last_name, email, is_active, created_at, updated_at
		FROM workers
		WHERE id = $1
	`

	var w worker.Worker
	err := q.QueryRow(ctx, query, id).Scan(
		&w.ID, &w.FirstName, &w.LastName, &w.Email, &w.IsActive, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return worker.Worker{}, worker.ErrWorkerNotFound
		}
		return worker.Worker{}, fmt.Errorf("failed to get worker: %w", err)
	}

	return w, nil
}

func (r *workerRepository) List(ctx context.Context, activeOnly bool) ([]worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, first_name, last_name, email, is_active, created_at, updated_at
		FROM workers
	`
	if activeOnly {
		query += ` WHERE is_active = true`
	}
	query += ` ORDER BY last_name, first_name`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list workers: %w", err)
	}
	defer rows.Close()

	var workers []worker.Worker
	for rows.Next() {
		var w worker.Worker
		if err := rows.Scan(&w.ID, &w.FirstName, &w.LastName, &w.Email, &w.IsActive, &w.CreatedAt, &w.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan worker: %w", err)
		}
		workers = append(workers, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read workers: %w", err)
	}

	return workers, nil
}
