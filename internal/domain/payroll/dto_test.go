package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clearstaff/payroll-backend-go/internal/pkg/validator"
)

func TestCreateBatchRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		req       CreateBatchRequest
		wantField string
	}{
		{
			name: "valid",
			req:  CreateBatchRequest{Name: "January run", PeriodStart: "2026-01-01", PeriodEnd: "2026-01-07"},
		},
		{
			name:      "missing name",
			req:       CreateBatchRequest{PeriodStart: "2026-01-01", PeriodEnd: "2026-01-07"},
			wantField: "name",
		},
		{
			name:      "bad period start",
			req:       CreateBatchRequest{Name: "x", PeriodStart: "01/01/2026", PeriodEnd: "2026-01-07"},
			wantField: "period_start",
		},
		{
			name:      "end before start",
			req:       CreateBatchRequest{Name: "x", PeriodStart: "2026-01-07", PeriodEnd: "2026-01-01"},
			wantField: "period_end",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			var errs validator.ValidationErrors
			require.ErrorAs(t, err, &errs)
			assert.Contains(t, errs.ToMap(), tt.wantField)
		})
	}
}

func TestAddEntryRequest_Validate(t *testing.T) {
	valid := AddEntryRequest{
		WorkerID:     "1f0a0000-0000-7000-8000-000000000001",
		RegularHours: decimal.NewFromInt(40),
		HourlyRate:   decimal.NewFromInt(50),
	}
	assert.NoError(t, valid.Validate())

	zeroRate := valid
	zeroRate.HourlyRate = decimal.Zero
	var errs validator.ValidationErrors
	require.ErrorAs(t, zeroRate.Validate(), &errs)
	assert.Contains(t, errs.ToMap(), "hourly_rate")

	negativeHours := valid
	negativeHours.RegularHours = decimal.NewFromInt(-1)
	require.ErrorAs(t, negativeHours.Validate(), &errs)
	assert.Contains(t, errs.ToMap(), "regular_hours")

	noWorker := valid
	noWorker.WorkerID = ""
	require.ErrorAs(t, noWorker.Validate(), &errs)
	assert.Contains(t, errs.ToMap(), "worker_id")
}

func TestUpdateEntryRequest_Validate(t *testing.T) {
	empty := UpdateEntryRequest{ID: "e1"}
	assert.NoError(t, empty.Validate())

	negative := decimal.NewFromInt(-5)
	req := UpdateEntryRequest{ID: "e1", OvertimeHours: &negative}
	var errs validator.ValidationErrors
	require.ErrorAs(t, req.Validate(), &errs)
	assert.Contains(t, errs.ToMap(), "overtime_hours")
}
