package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/clearstaff/payroll-backend-go/internal/domain/timesheet"
	"github.com/clearstaff/payroll-backend-go/internal/pkg/database"
)

type timesheetRepository struct {
	db *database.DB
}

// NewTimesheetSource reads approved time records from the time_entries table.
// It stands in for the external timesheet system behind the timesheet.Source
// boundary.
func NewTimesheetSource(db *database.DB) timesheet.Source {
	return &timesheetRepository{db: db}
}

func (r *timesheetRepository) GetApprovedHours(ctx context.Context, periodStart, periodEnd time.Time) ([]timesheet.WorkerHours, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT worker_id,
			   COALESCE(SUM(regular_hours), 0) AS regular_hours,
			   COALESCE(SUM(overtime_hours), 0) AS overtime_hours
		FROM time_entries
		WHERE status = 'approved'
		  AND work_date >= $1
		  AND work_date <= $2
		GROUP BY worker_id
		ORDER BY worker_id
	`

	rows, err := q.Query(ctx, query, periodStart, periodEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to read approved hours: %w", err)
	}
	defer rows.Close()

	var hours []timesheet.WorkerHours
	for rows.Next() {
		var h timesheet.WorkerHours
		if err := rows.Scan(&h.WorkerID, &h.RegularHours, &h.OvertimeHours); err != nil {
			return nil, fmt.Errorf("failed to scan approved hours: %w", err)
		}
		hours = append(hours, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read approved hours: %w", err)
	}

	return hours, nil
}
