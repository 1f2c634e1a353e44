package payrate

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestResolve_NoCoveringRate(t *testing.T) {
	rates := []PayRate{
		{WorkerID: "w1", HourlyRate: dec("50"), EffectiveFrom: date(2025, 6, 1), IsActive: true},
	}

	_, err := Resolve(rates, date(2025, 5, 31))
	if !errors.Is(err, ErrRateNotFound) {
		t.Fatalf("Resolve() error = %v, want ErrRateNotFound", err)
	}

	_, err = Resolve(nil, date(2025, 5, 31))
	if !errors.Is(err, ErrRateNotFound) {
		t.Fatalf("Resolve() on empty set error = %v, want ErrRateNotFound", err)
	}
}

func TestResolve_InactiveRatesIgnored(t *testing.T) {
	rates := []PayRate{
		{WorkerID: "w1", HourlyRate: dec("50"), EffectiveFrom: date(2025, 1, 1), IsActive: false},
	}

	_, err := Resolve(rates, date(2025, 3, 1))
	if !errors.Is(err, ErrRateNotFound) {
		t.Fatalf("Resolve() error = %v, want ErrRateNotFound for inactive-only set", err)
	}
}

func TestResolve_EffectiveToIsExclusive(t *testing.T) {
	to := date(2025, 7, 1)
	rates := []PayRate{
		{WorkerID: "w1", HourlyRate: dec("50"), EffectiveFrom: date(2025, 1, 1), EffectiveTo: &to, IsActive: true},
	}

	if _, err := Resolve(rates, date(2025, 6, 30)); err != nil {
		t.Fatalf("Resolve() on last covered day: %v", err)
	}
	if _, err := Resolve(rates, date(2025, 7, 1)); !errors.Is(err, ErrRateNotFound) {
		t.Fatalf("Resolve() on effective_to day error = %v, want ErrRateNotFound", err)
	}
}

func TestResolve_LatestStartWinsOnOverlap(t *testing.T) {
	rates := []PayRate{
		{WorkerID: "w1", HourlyRate: dec("50"), EffectiveFrom: date(2025, 1, 1), IsActive: true},
		{WorkerID: "w1", HourlyRate: dec("60"), EffectiveFrom: date(2025, 4, 1), IsActive: true},
	}

	resolved, err := Resolve(rates, date(2025, 5, 15))
	if err != nil {
		t.Fatalf("Resolve(): %v", err)
	}
	if !resolved.HourlyRate.Equal(dec("60")) {
		t.Errorf("HourlyRate = %s, want 60 (latest start wins)", resolved.HourlyRate)
	}
}

func TestResolve_EqualStartTieBreaksOnCreatedAt(t *testing.T) {
	older := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	newer := time.Date(2025, 3, 2, 9, 0, 0, 0, time.UTC)
	rates := []PayRate{
		{WorkerID: "w1", HourlyRate: dec("50"), EffectiveFrom: date(2025, 4, 1), IsActive: true, CreatedAt: older},
		{WorkerID: "w1", HourlyRate: dec("55"), EffectiveFrom: date(2025, 4, 1), IsActive: true, CreatedAt: newer},
	}

	resolved, err := Resolve(rates, date(2025, 5, 1))
	if err != nil {
		t.Fatalf("Resolve(): %v", err)
	}
	if !resolved.HourlyRate.Equal(dec("55")) {
		t.Errorf("HourlyRate = %s, want 55 (newest created wins on equal start)", resolved.HourlyRate)
	}
}

func TestResolve_DefaultOvertimeMultiplier(t *testing.T) {
	rates := []PayRate{
		{WorkerID: "w1", HourlyRate: dec("50"), EffectiveFrom: date(2025, 1, 1), IsActive: true},
	}

	resolved, err := Resolve(rates, date(2025, 2, 1))
	if err != nil {
		t.Fatalf("Resolve(): %v", err)
	}
	if !resolved.OvertimeRate.Equal(dec("75")) {
		t.Errorf("OvertimeRate = %s, want 75 (1.5x default)", resolved.OvertimeRate)
	}
}

func TestResolve_ExplicitOvertimeRateKept(t *testing.T) {
	ot := dec("80")
	rates := []PayRate{
		{WorkerID: "w1", HourlyRate: dec("50"), OvertimeRate: &ot, EffectiveFrom: date(2025, 1, 1), IsActive: true},
	}

	resolved, err := Resolve(rates, date(2025, 2, 1))
	if err != nil {
		t.Fatalf("Resolve(): %v", err)
	}
	if !resolved.OvertimeRate.Equal(ot) {
		t.Errorf("OvertimeRate = %s, want %s", resolved.OvertimeRate, ot)
	}
}
