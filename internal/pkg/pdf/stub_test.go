package pdf

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderStub(t *testing.T) {
	content, err := RenderStub(StubDocument{
		CompanyName:   "ClearStaff Consulting",
		WorkerName:    "Avery Smith",
		BatchNumber:   "PB-202601-AB12CD34",
		PayDate:       "2026-01-09",
		PeriodStart:   "2026-01-01",
		PeriodEnd:     "2026-01-07",
		RegularHours:  decimal.NewFromInt(40),
		OvertimeHours: decimal.NewFromInt(5),
		GrossPay:      decimal.RequireFromString("2375.00"),
		NetPay:        decimal.RequireFromString("2375.00"),
	})
	require.NoError(t, err)
	require.NotEmpty(t, content)

	// PDF files start with the %PDF magic bytes
	assert.Equal(t, "%PDF", string(content[:4]))
}
