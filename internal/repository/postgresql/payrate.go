package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/clearstaff/payroll-backend-go/internal/domain/payrate"
	"github.com/clearstaff/payroll-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type payRateRepository struct {
	db *database.DB
}

func NewPayRateRepository(db *database.DB) payrate.PayRateRepository {
	return &payRateRepository{db: db}
}

const payRateColumns = `id, worker_id, hourly_rate, overtime_rate, effective_from, effective_to, is_active, created_at, updated_at`

func scanPayRate(row pgx.Row) (payrate.PayRate, error) {
	var p payrate.PayRate
	err := row.Scan(
		&p.ID, &p.WorkerID, &p.HourlyRate, &p.OvertimeRate,
		&p.EffectiveFrom, &p.EffectiveTo, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

func (r *payRateRepository) Create(ctx context.Context, rate payrate.PayRate) (payrate.PayRate, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO pay_rates (worker_id, hourly_rate, overtime_rate, effective_from, effective_to, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + payRateColumns

	created, err := scanPayRate(q.QueryRow(ctx, query,
		rate.WorkerID, rate.HourlyRate, rate.OvertimeRate, rate.EffectiveFrom, rate.EffectiveTo, rate.IsActive,
	))
	if err != nil {
		return payrate.PayRate{}, fmt.Errorf("failed to create pay rate: %w", err)
	}

	return created, nil
}

func (r *payRateRepository) GetByID(ctx context.Context, id string) (payrate.PayRate, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + payRateColumns + ` FROM pay_rates WHERE id = $1`

	rate, err := scanPayRate(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payrate.PayRate{}, payrate.ErrPayRateNotFound
		}
		return payrate.PayRate{}, fmt.Errorf("failed to get pay rate: %w", err)
	}

	return rate, nil
}

func (r *payRateRepository) ListByWorker(ctx context.Context, workerID string) ([]payrate.PayRate, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payRateColumns + `
		FROM pay_rates
		WHERE worker_id = $1
		ORDER BY effective_from DESC, created_at DESC
	`

	rows, err := q.Query(ctx, query, workerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pay rates: %w", err)
	}
	defer rows.Close()

	return collectPayRates(rows)
}

func (r *payRateRepository) ListCovering(ctx context.Context, workerID string, asOf time.Time) ([]payrate.PayRate, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payRateColumns + `
		FROM pay_rates
		WHERE worker_id = $1
		  AND is_active = true
		  AND effective_from <= $2
		  AND (effective_to IS NULL OR effective_to > $2)
	`

	rows, err := q.Query(ctx, query, workerID, asOf)
	if err != nil {
		return nil, fmt.Errorf("failed to list covering pay rates: %w", err)
	}
	defer rows.Close()

	return collectPayRates(rows)
}

func (r *payRateRepository) CloseOpenEnded(ctx context.Context, workerID string, endDate time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE pay_rates
		SET effective_to = $2, updated_at = NOW()
		WHERE worker_id = $1 AND is_active = true AND effective_to IS NULL AND effective_from < $2
	`

	if _, err := q.Exec(ctx, query, workerID, endDate); err != nil {
		return fmt.Errorf("failed to close open-ended pay rate: %w", err)
	}

	return nil
}

func (r *payRateRepository) Deactivate(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE pay_rates SET is_active = false, updated_at = NOW() WHERE id = $1`

	tag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate pay rate: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payrate.ErrPayRateNotFound
	}

	return nil
}

func collectPayRates(rows pgx.Rows) ([]payrate.PayRate, error) {
	var rates []payrate.PayRate
	for rows.Next() {
		var p payrate.PayRate
		if err := rows.Scan(
			&p.ID, &p.WorkerID, &p.HourlyRate, &p.OvertimeRate,
			&p.EffectiveFrom, &p.EffectiveTo, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan pay rate: %w", err)
		}
		rates = append(rates, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read pay rates: %w", err)
	}
	return rates, nil
}
