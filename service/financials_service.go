package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"smokyhost/domain"
	"smokyhost/metrics"
	"smokyhost/repository"
)

const (
	adviceLowRisk  = "Stable tourism demand forecasted. Maintain current 30% Short Term / 0% Mid Term mix."
	adviceHighRisk = "Occupancy dangerously low. Recommend immediate pivot to Furnished Finder (Mid-Term Rentals)."
)

type FinancialsService struct {
	repo     repository.SimulationRepository
	ai       *AIService
	defaults domain.MarketAssumptions
	log      zerolog.Logger
	metrics  *metrics.Recorder
	now      func() time.Time
}

// NewFinancialsService uses defaults as the market scenario for growth
// strategies.
func NewFinancialsService(
	repo repository.SimulationRepository,
	ai *AIService,
	defaults domain.MarketAssumptions,
	log zerolog.Logger,
	rec *metrics.Recorder,
) *FinancialsService {
	return &FinancialsService{
		repo:     repo,
		ai:       ai,
		defaults: defaults,
		log:      log.With().Str("component", "financials").Logger(),
		metrics:  rec,
		now:      time.Now,
	}
}

func (s *FinancialsService) DefaultAssumptions() domain.MarketAssumptions {
	a := s.defaults
	a.MonthlySeasonalityFactors = append([]float64(nil), s.defaults.MonthlySeasonalityFactors...)
	return a
}

// Simulate projects a and records the run.
func (s *FinancialsService) Simulate(a domain.MarketAssumptions) (domain.SimulationReport, error) {
	result, err := Project(a)
	if err != nil {
		if errors.Is(err, ErrInvalidAssumptions) {
			s.metrics.RecordProjection(metrics.OutcomeInvalid, 0)
		}
		return domain.SimulationReport{}, err
	}
	s.metrics.RecordProjection(metrics.OutcomeOK, result.CashOnCashReturnPercent)

	record := domain.SimulationRecord{
		RunAt:       s.now().UTC(),
		Assumptions: a,
		Result:      result,
	}

	// Save the run (non-critical)
	if err := s.repo.Save(record); err != nil {
		s.log.Warn().Err(err).Msg("failed to save simulation run")
	}

	return domain.SimulationReport{
		Assumptions: a,
		Projection:  result,
		Headline:    headline(result),
		MeetsTarget: result.CashOnCashReturnPercent >= TargetCashOnCashPercent,
		RiskAdvice:  riskAdvice(result.RiskLevel),
	}, nil
}

func (s *FinancialsService) History() ([]domain.SimulationRecord, error) {
	records, err := s.repo.List()
	if err != nil {
		return nil, fmt.Errorf("list simulations: %w", err)
	}
	return records, nil
}

// GrowthStrategy asks for an expansion plan for budget, given the monthly net
// income of the configured scenario. A zero budget means DefaultGrowthBudget.
func (s *FinancialsService) GrowthStrategy(ctx context.Context, budget float64) (domain.GrowthStrategyResult, error) {
	if math.IsNaN(budget) || math.IsInf(budget, 0) || budget < 0 {
		return domain.GrowthStrategyResult{}, fmt.Errorf("%w: budget must be a non-negative number", ErrInvalidInput)
	}
	if budget == 0 {
		budget = DefaultGrowthBudget
	}

	result, err := Project(s.defaults)
	if err != nil {
		return domain.GrowthStrategyResult{}, err
	}

	monthlyNet := result.TotalNetIncome / MonthsPerYear
	advice := s.ai.GenerateGrowthStrategy(ctx, budget, monthlyNet)

	return domain.GrowthStrategyResult{
		Budget:     budget,
		MonthlyNet: roundTo(monthlyNet, 2),
		Advice:     advice,
	}, nil
}

func headline(r domain.ProjectionResult) domain.Headline {
	return domain.Headline{
		AnnualGrossPerUnit:      roundTo(r.AnnualGrossPerUnit, 0),
		CoHostedIncome:          roundTo(r.CoHostedIncome, 0),
		TotalNetIncome:          roundTo(r.TotalNetIncome, 0),
		CashOnCashReturnPercent: roundTo(r.CashOnCashReturnPercent, 1),
	}
}

func riskAdvice(level domain.RiskLevel) string {
	if level == domain.RiskHigh {
		return adviceHighRisk
	}
	return adviceLowRisk
}

// roundTo rounds half away from zero to the given number of decimal places.
func roundTo(value float64, places int32) float64 {
	f, _ := decimal.NewFromFloat(value).Round(places).Float64()
	return f
}
