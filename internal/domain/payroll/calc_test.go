package payroll

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestComputeEntry_WorkedExample(t *testing.T) {
	// 40 regular + 5 overtime at $50/hr, no override OT rate, $120 reimbursed
	pay, err := ComputeEntry(dec("40"), dec("5"), dec("50"), nil, dec("120"))
	require.NoError(t, err)

	assert.True(t, pay.RegularPay.Equal(dec("2000")), "regular pay = %s", pay.RegularPay)
	assert.True(t, pay.OvertimePay.Equal(dec("375")), "overtime pay = %s", pay.OvertimePay)
	assert.True(t, pay.GrossPay.Equal(dec("2375")), "gross pay = %s", pay.GrossPay)
	assert.True(t, pay.TotalPay.Equal(dec("2495")), "total pay = %s", pay.TotalPay)
}

func TestComputeEntry_Deterministic(t *testing.T) {
	first, err := ComputeEntry(dec("37.25"), dec("3.5"), dec("62.10"), nil, dec("19.99"))
	require.NoError(t, err)
	second, err := ComputeEntry(dec("37.25"), dec("3.5"), dec("62.10"), nil, dec("19.99"))
	require.NoError(t, err)

	assert.True(t, first.RegularPay.Equal(second.RegularPay))
	assert.True(t, first.OvertimePay.Equal(second.OvertimePay))
	assert.True(t, first.GrossPay.Equal(second.GrossPay))
	assert.True(t, first.TotalPay.Equal(second.TotalPay))
}

func TestComputeEntry_DefaultOvertimeMatchesExplicit(t *testing.T) {
	cases := []struct {
		regular, overtime, rate string
	}{
		{"40", "5", "50"},
		{"37.5", "2.25", "61.40"},
		{"0", "10", "33.33"},
		{"80", "0.5", "125"},
	}
	for _, c := range cases {
		rate := dec(c.rate)
		explicit := rate.Mul(dec("1.5"))

		defaulted, err := ComputeEntry(dec(c.regular), dec(c.overtime), rate, nil, decimal.Zero)
		require.NoError(t, err)
		supplied, err := ComputeEntry(dec(c.regular), dec(c.overtime), rate, &explicit, decimal.Zero)
		require.NoError(t, err)

		assert.True(t, defaulted.OvertimePay.Equal(supplied.OvertimePay),
			"rate %s: defaulted %s != explicit %s", c.rate, defaulted.OvertimePay, supplied.OvertimePay)
	}
}

func TestComputeEntry_RoundsHalfUpToCents(t *testing.T) {
	// 0.5 * 33.33 = 16.665 -> 16.67 under half-up
	pay, err := ComputeEntry(dec("0.5"), decimal.Zero, dec("33.33"), nil, decimal.Zero)
	require.NoError(t, err)
	assert.True(t, pay.RegularPay.Equal(dec("16.67")), "regular pay = %s, want 16.67", pay.RegularPay)

	// 1.5 * 50.01 = 75.015 -> 75.02
	ot := dec("50.01")
	pay, err = ComputeEntry(decimal.Zero, dec("1.5"), dec("40"), &ot, decimal.Zero)
	require.NoError(t, err)
	assert.True(t, pay.OvertimePay.Equal(dec("75.02")), "overtime pay = %s, want 75.02", pay.OvertimePay)
}

func TestComputeEntry_HoursNotRounded(t *testing.T) {
	// Quarter-hour granularity is a UI convention; the engine accepts any
	// precision and only rounds money.
	pay, err := ComputeEntry(dec("1.333333"), decimal.Zero, dec("60"), nil, decimal.Zero)
	require.NoError(t, err)
	assert.True(t, pay.RegularPay.Equal(dec("80")), "regular pay = %s, want 80", pay.RegularPay)
}

func TestComputeEntry_RejectsNegativeInputs(t *testing.T) {
	cases := []struct {
		name                            string
		regular, overtime, rate, reimb  string
		overtimeRate                    *decimal.Decimal
	}{
		{name: "negative regular hours", regular: "-1", overtime: "0", rate: "50", reimb: "0"},
		{name: "negative overtime hours", regular: "0", overtime: "-0.5", rate: "50", reimb: "0"},
		{name: "negative hourly rate", regular: "1", overtime: "0", rate: "-50", reimb: "0"},
		{name: "negative overtime rate", regular: "1", overtime: "0", rate: "50", reimb: "0", overtimeRate: decPtr("-75")},
		{name: "negative reimbursement", regular: "1", overtime: "0", rate: "50", reimb: "-0.01"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := ComputeEntry(dec(c.regular), dec(c.overtime), dec(c.rate), c.overtimeRate, dec(c.reimb))
			assert.True(t, errors.Is(err, ErrInvalidEntryInput), "error = %v", err)
		})
	}
}

func TestComputeEntry_ZeroHoursZeroPay(t *testing.T) {
	pay, err := ComputeEntry(decimal.Zero, decimal.Zero, dec("50"), nil, decimal.Zero)
	require.NoError(t, err)
	assert.True(t, pay.TotalPay.IsZero())
	assert.True(t, pay.GrossPay.IsZero())
}

func TestEffectiveOvertimeRate(t *testing.T) {
	assert.True(t, EffectiveOvertimeRate(dec("50"), nil).Equal(dec("75")))
	assert.True(t, EffectiveOvertimeRate(dec("50"), decPtr("90")).Equal(dec("90")))
}
