package domain

import "time"

type RiskLevel string

const (
	RiskLow  RiskLevel = "Low"
	RiskHigh RiskLevel = "High"
)

// MarketAssumptions is the input of the seasonal revenue projection.
// MonthlySeasonalityFactors[0] is January.
type MarketAssumptions struct {
	BaseAverageDailyRate      float64   `json:"base_average_daily_rate" yaml:"base_average_daily_rate"`
	BaseOccupancyFraction     float64   `json:"base_occupancy_fraction" yaml:"base_occupancy_fraction"`
	MonthlySeasonalityFactors []float64 `json:"monthly_seasonality_factors" yaml:"monthly_seasonality_factors"`
	CoHostedUnitCount         int       `json:"co_hosted_unit_count" yaml:"co_hosted_unit_count"`
	OwnedUnitCount            int       `json:"owned_unit_count" yaml:"owned_unit_count"`
	CommissionFraction        float64   `json:"commission_fraction" yaml:"commission_fraction"`
	ExpenseFraction           float64   `json:"expense_fraction" yaml:"expense_fraction"`
	InvestedCapital           float64   `json:"invested_capital" yaml:"invested_capital"`
	AverageDaysPerMonth       float64   `json:"average_days_per_month" yaml:"average_days_per_month"`
}

// DefaultMarketAssumptions returns the 2025 Pigeon Forge model: $280 blended
// ADR, 55% occupancy, one owned cabin on a $40k down payment and three
// co-hosted cabins at 25% commission.
func DefaultMarketAssumptions() MarketAssumptions {
	return MarketAssumptions{
		BaseAverageDailyRate:      280,
		BaseOccupancyFraction:     0.55,
		MonthlySeasonalityFactors: []float64{0.85, 0.85, 0.95, 1.0, 1.1, 1.2, 1.3, 1.2, 1.1, 1.3, 0.9, 0.85},
		CoHostedUnitCount:         3,
		OwnedUnitCount:            1,
		CommissionFraction:        0.25,
		ExpenseFraction:           0.45,
		InvestedCapital:           40000,
		AverageDaysPerMonth:       30.4,
	}
}

type MonthlyProjection struct {
	Month               time.Month `json:"month"`
	MonthName           string     `json:"month_name"`
	ADR                 float64    `json:"adr"`
	OccupancyFraction   float64    `json:"occupancy_fraction"`
	GrossRevenuePerUnit float64    `json:"gross_revenue_per_unit"`
}

type ProjectionResult struct {
	Monthly                 []MonthlyProjection `json:"monthly"`
	AnnualGrossPerUnit      float64             `json:"annual_gross_per_unit"`
	OwnedNetIncome          float64             `json:"owned_net_income"`
	CoHostedIncome          float64             `json:"co_hosted_income"`
	TotalNetIncome          float64             `json:"total_net_income"`
	CashOnCashReturnPercent float64             `json:"cash_on_cash_return_percent"`
	RiskLevel               RiskLevel           `json:"risk_level"`
}

// Headline holds the rounded figures shown on the financials cards.
type Headline struct {
	AnnualGrossPerUnit      float64 `json:"annual_gross_per_unit"`
	CoHostedIncome          float64 `json:"co_hosted_income"`
	TotalNetIncome          float64 `json:"total_net_income"`
	CashOnCashReturnPercent float64 `json:"cash_on_cash_return_percent"`
}

type SimulationReport struct {
	Assumptions MarketAssumptions `json:"assumptions"`
	Projection  ProjectionResult  `json:"projection"`
	Headline    Headline          `json:"headline"`
	MeetsTarget bool              `json:"meets_target"`
	RiskAdvice  string            `json:"risk_advice"`
}

type SimulationRecord struct {
	RunAt       time.Time         `json:"run_at"`
	Assumptions MarketAssumptions `json:"assumptions"`
	Result      ProjectionResult  `json:"result"`
}

type GrowthStrategyResult struct {
	Budget     float64 `json:"budget"`
	MonthlyNet float64 `json:"monthly_net"`
	Advice     Insight `json:"advice"`
}
