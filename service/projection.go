package service

import (
	"math"
	"time"

	"smokyhost/domain"
)

// Project computes the seasonal revenue projection for the given
// assumptions. It is pure: it keeps no state and never mutates its input.
func Project(a domain.MarketAssumptions) (domain.ProjectionResult, error) {
	if err := ValidateAssumptions(a); err != nil {
		return domain.ProjectionResult{}, err
	}

	monthly := make([]domain.MonthlyProjection, MonthsPerYear)
	annualGross := 0.0

	for i, factor := range a.MonthlySeasonalityFactors {
		adr := a.BaseAverageDailyRate * factor
		occ := a.BaseOccupancyFraction * factor
		gross := adr * occ * a.AverageDaysPerMonth

		monthly[i] = domain.MonthlyProjection{
			Month:               time.Month(i + 1),
			MonthName:           monthNames[i],
			ADR:                 adr,
			OccupancyFraction:   occ,
			GrossRevenuePerUnit: gross,
		}
		annualGross += gross
	}

	ownedNet := annualGross * float64(a.OwnedUnitCount) * (1 - a.ExpenseFraction)
	coHosted := annualGross * float64(a.CoHostedUnitCount) * a.CommissionFraction
	totalNet := ownedNet + coHosted
	roi := totalNet / a.InvestedCapital * 100

	// Finite inputs can still overflow (huge rate, subnormal capital).
	for _, v := range []float64{annualGross, ownedNet, coHosted, totalNet, roi} {
		if !isFinite(v) {
			return domain.ProjectionResult{}, invalidAssumption("assumptions", "projection overflows")
		}
	}

	risk := domain.RiskLow
	if a.BaseOccupancyFraction < RiskOccupancyThreshold {
		risk = domain.RiskHigh
	}

	return domain.ProjectionResult{
		Monthly:                 monthly,
		AnnualGrossPerUnit:      annualGross,
		OwnedNetIncome:          ownedNet,
		CoHostedIncome:          coHosted,
		TotalNetIncome:          totalNet,
		CashOnCashReturnPercent: roi,
		RiskLevel:               risk,
	}, nil
}

// ValidateAssumptions reports the first broken invariant as an
// *AssumptionError wrapping ErrInvalidAssumptions.
func ValidateAssumptions(a domain.MarketAssumptions) error {
	if len(a.MonthlySeasonalityFactors) != MonthsPerYear {
		return invalidAssumption("monthly_seasonality_factors",
			"must have %d entries, got %d", MonthsPerYear, len(a.MonthlySeasonalityFactors))
	}
	for i, f := range a.MonthlySeasonalityFactors {
		if !isFinite(f) || f < 0 {
			return invalidAssumption("monthly_seasonality_factors",
				"entry %d (%s) must be a finite non-negative number", i, monthNames[i])
		}
	}

	if !isFinite(a.BaseAverageDailyRate) || a.BaseAverageDailyRate < 0 {
		return invalidAssumption("base_average_daily_rate", "must be a finite non-negative number")
	}

	fractions := []struct {
		field string
		value float64
	}{
		{"base_occupancy_fraction", a.BaseOccupancyFraction},
		{"commission_fraction", a.CommissionFraction},
		{"expense_fraction", a.ExpenseFraction},
	}
	for _, f := range fractions {
		if !isFinite(f.value) || f.value < 0 || f.value > 1 {
			return invalidAssumption(f.field, "must be within [0,1], got %v", f.value)
		}
	}

	if a.CoHostedUnitCount < 0 {
		return invalidAssumption("co_hosted_unit_count", "must not be negative")
	}
	if a.OwnedUnitCount < 0 {
		return invalidAssumption("owned_unit_count", "must not be negative")
	}
	if !isFinite(a.AverageDaysPerMonth) || a.AverageDaysPerMonth <= 0 {
		return invalidAssumption("average_days_per_month", "must be a finite positive number")
	}
	if !isFinite(a.InvestedCapital) || a.InvestedCapital <= 0 {
		return invalidAssumption("invested_capital", "must be greater than zero")
	}

	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
