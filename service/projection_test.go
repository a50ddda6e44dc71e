package service

import (
	"errors"
	"math"
	"reflect"
	"testing"
	"time"

	"smokyhost/domain"
)

const tolerance = 1e-9

func almostEqual(a, b float64) bool {
	scale := math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
	return math.Abs(a-b) <= tolerance*scale
}

func TestProject_PigeonForgeScenario(t *testing.T) {

	result, err := Project(domain.DefaultMarketAssumptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	july := result.Monthly[6]
	if july.Month != time.July || july.MonthName != "Jul" {
		t.Fatalf("expected July at index 6, got %v (%s)", july.Month, july.MonthName)
	}
	if !almostEqual(july.ADR, 364) {
		t.Errorf("expected July adr 364, got %v", july.ADR)
	}
	if !almostEqual(july.OccupancyFraction, 0.715) {
		t.Errorf("expected July occupancy 0.715, got %v", july.OccupancyFraction)
	}
	if !almostEqual(july.GrossRevenuePerUnit, 364*0.715*30.4) {
		t.Errorf("expected July gross %v, got %v", 364*0.715*30.4, july.GrossRevenuePerUnit)
	}

	// sum of squared factors is 13.56, 280*0.55*30.4 = 4681.6
	expectedAnnual := 4681.6 * 13.56
	if !almostEqual(result.AnnualGrossPerUnit, expectedAnnual) {
		t.Errorf("expected annual gross %v, got %v", expectedAnnual, result.AnnualGrossPerUnit)
	}
	if !almostEqual(result.OwnedNetIncome, expectedAnnual*0.55) {
		t.Errorf("expected owned net %v, got %v", expectedAnnual*0.55, result.OwnedNetIncome)
	}
	if !almostEqual(result.CoHostedIncome, expectedAnnual*3*0.25) {
		t.Errorf("expected co-hosted income %v, got %v", expectedAnnual*0.75, result.CoHostedIncome)
	}
	if !almostEqual(result.TotalNetIncome, result.OwnedNetIncome+result.CoHostedIncome) {
		t.Errorf("total net %v is not owned + co-hosted", result.TotalNetIncome)
	}
	if !almostEqual(result.CashOnCashReturnPercent, result.TotalNetIncome/40000*100) {
		t.Errorf("unexpected roi %v", result.CashOnCashReturnPercent)
	}
	if result.RiskLevel != domain.RiskLow {
		t.Errorf("expected Low risk, got %s", result.RiskLevel)
	}
}

func TestProject_MonthlyInCalendarOrder(t *testing.T) {

	result, err := Project(domain.DefaultMarketAssumptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Monthly) != 12 {
		t.Fatalf("expected 12 months, got %d", len(result.Monthly))
	}
	for i, m := range result.Monthly {
		if m.Month != time.Month(i+1) {
			t.Errorf("index %d: expected %v, got %v", i, time.Month(i+1), m.Month)
		}
	}
}

func TestProject_AnnualIsSumOfMonths(t *testing.T) {

	a := domain.DefaultMarketAssumptions()
	a.MonthlySeasonalityFactors = []float64{0.5, 0.7, 0.9, 1.1, 1.3, 1.5, 1.4, 1.2, 1.0, 0.8, 0.6, 0.4}

	result, err := Project(a)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sum := 0.0
	for _, m := range result.Monthly {
		sum += m.GrossRevenuePerUnit
	}
	if !almostEqual(sum, result.AnnualGrossPerUnit) {
		t.Errorf("expected annual %v, got %v", sum, result.AnnualGrossPerUnit)
	}
}

func TestProject_LinearInBaseRate(t *testing.T) {

	base := domain.DefaultMarketAssumptions()
	baseResult, err := Project(base)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, k := range []float64{0.5, 2, 3.7} {
		scaled := domain.DefaultMarketAssumptions()
		scaled.BaseAverageDailyRate = base.BaseAverageDailyRate * k

		got, err := Project(scaled)
		if err != nil {
			t.Fatalf("k=%v: unexpected error: %v", k, err)
		}

		for i := range got.Monthly {
			if !almostEqual(got.Monthly[i].ADR, baseResult.Monthly[i].ADR*k) {
				t.Errorf("k=%v month %d: adr not scaled", k, i)
			}
			if !almostEqual(got.Monthly[i].GrossRevenuePerUnit, baseResult.Monthly[i].GrossRevenuePerUnit*k) {
				t.Errorf("k=%v month %d: gross not scaled", k, i)
			}
		}

		pairs := map[string][2]float64{
			"annual":    {got.AnnualGrossPerUnit, baseResult.AnnualGrossPerUnit},
			"owned":     {got.OwnedNetIncome, baseResult.OwnedNetIncome},
			"co-hosted": {got.CoHostedIncome, baseResult.CoHostedIncome},
			"total":     {got.TotalNetIncome, baseResult.TotalNetIncome},
		}
		for name, p := range pairs {
			if !almostEqual(p[0], p[1]*k) {
				t.Errorf("k=%v: %s expected %v, got %v", k, name, p[1]*k, p[0])
			}
		}
	}
}

func TestProject_RiskBoundary(t *testing.T) {

	tests := []struct {
		occupancy float64
		want      domain.RiskLevel
	}{
		{0.49, domain.RiskHigh},
		{0.4999999, domain.RiskHigh},
		{0.50, domain.RiskLow},
		{0.55, domain.RiskLow},
		{0, domain.RiskHigh},
		{1, domain.RiskLow},
	}

	for _, tt := range tests {
		a := domain.DefaultMarketAssumptions()
		a.BaseOccupancyFraction = tt.occupancy

		result, err := Project(a)
		if err != nil {
			t.Fatalf("occupancy %v: unexpected error: %v", tt.occupancy, err)
		}
		if result.RiskLevel != tt.want {
			t.Errorf("occupancy %v: expected %s, got %s", tt.occupancy, tt.want, result.RiskLevel)
		}
	}
}

func TestProject_Deterministic(t *testing.T) {

	a := domain.DefaultMarketAssumptions()

	first, err := Project(a)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Project(a)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("expected identical results")
	}
}

func TestProject_DoesNotMutateInput(t *testing.T) {

	a := domain.DefaultMarketAssumptions()
	before := append([]float64(nil), a.MonthlySeasonalityFactors...)

	if _, err := Project(a); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(before, a.MonthlySeasonalityFactors) {
		t.Errorf("seasonality factors were modified")
	}
}

func TestProject_InvalidAssumptions(t *testing.T) {

	tests := []struct {
		name   string
		mutate func(a *domain.MarketAssumptions)
		field  string
	}{
		{"eleven factors", func(a *domain.MarketAssumptions) {
			a.MonthlySeasonalityFactors = a.MonthlySeasonalityFactors[:11]
		}, "monthly_seasonality_factors"},
		{"thirteen factors", func(a *domain.MarketAssumptions) {
			a.MonthlySeasonalityFactors = append(a.MonthlySeasonalityFactors, 1)
		}, "monthly_seasonality_factors"},
		{"nan factor", func(a *domain.MarketAssumptions) {
			a.MonthlySeasonalityFactors = []float64{1, 1, 1, math.NaN(), 1, 1, 1, 1, 1, 1, 1, 1}
		}, "monthly_seasonality_factors"},
		{"zero capital", func(a *domain.MarketAssumptions) { a.InvestedCapital = 0 }, "invested_capital"},
		{"negative capital", func(a *domain.MarketAssumptions) { a.InvestedCapital = -1 }, "invested_capital"},
		{"occupancy above one", func(a *domain.MarketAssumptions) { a.BaseOccupancyFraction = 1.2 }, "base_occupancy_fraction"},
		{"negative commission", func(a *domain.MarketAssumptions) { a.CommissionFraction = -0.1 }, "commission_fraction"},
		{"expense above one", func(a *domain.MarketAssumptions) { a.ExpenseFraction = 1.01 }, "expense_fraction"},
		{"negative owned", func(a *domain.MarketAssumptions) { a.OwnedUnitCount = -1 }, "owned_unit_count"},
		{"negative co-hosted", func(a *domain.MarketAssumptions) { a.CoHostedUnitCount = -2 }, "co_hosted_unit_count"},
		{"zero days", func(a *domain.MarketAssumptions) { a.AverageDaysPerMonth = 0 }, "average_days_per_month"},
		{"infinite rate", func(a *domain.MarketAssumptions) { a.BaseAverageDailyRate = math.Inf(1) }, "base_average_daily_rate"},
		{"rate overflows gross", func(a *domain.MarketAssumptions) { a.BaseAverageDailyRate = 1e308 }, "assumptions"},
		{"subnormal capital overflows roi", func(a *domain.MarketAssumptions) { a.InvestedCapital = 1e-320 }, "assumptions"},
		{"zero occupancy with overflowing rate", func(a *domain.MarketAssumptions) {
			a.BaseAverageDailyRate = math.MaxFloat64
			a.BaseOccupancyFraction = 0
		}, "assumptions"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := domain.DefaultMarketAssumptions()
			tt.mutate(&a)

			result, err := Project(a)
			if err == nil {
				t.Fatalf("expected error, got result %+v", result)
			}
			if !errors.Is(err, ErrInvalidAssumptions) {
				t.Errorf("expected ErrInvalidAssumptions, got %v", err)
			}

			var ae *AssumptionError
			if !errors.As(err, &ae) {
				t.Fatalf("expected *AssumptionError, got %T", err)
			}
			if ae.Field != tt.field {
				t.Errorf("expected field %s, got %s", tt.field, ae.Field)
			}
		})
	}
}
