package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"smokyhost/domain"
)

type MockSimulationRepository struct {
	SaveCalled bool
	ForceError bool
	Records    []domain.SimulationRecord
}

func (m *MockSimulationRepository) Save(record domain.SimulationRecord) error {
	m.SaveCalled = true
	if m.ForceError {
		return errors.New("save error")
	}
	m.Records = append(m.Records, record)
	return nil
}

func (m *MockSimulationRepository) List() ([]domain.SimulationRecord, error) {
	return m.Records, nil
}

func newTestFinancials(repo *MockSimulationRepository, gen TextGenerator) *FinancialsService {
	ai := newTestAIService(gen, nil)
	return NewFinancialsService(repo, ai, domain.DefaultMarketAssumptions(), zerolog.Nop(), nil)
}

func TestSimulate_DefaultScenario(t *testing.T) {

	mockRepo := &MockSimulationRepository{}
	service := newTestFinancials(mockRepo, nil)

	report, err := service.Simulate(domain.DefaultMarketAssumptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := domain.Headline{
		AnnualGrossPerUnit:      63482,
		CoHostedIncome:          47612,
		TotalNetIncome:          82527,
		CashOnCashReturnPercent: 206.3,
	}
	if report.Headline != want {
		t.Errorf("expected headline %+v, got %+v", want, report.Headline)
	}

	if !report.MeetsTarget {
		t.Errorf("expected ROI to meet the target")
	}
	if report.RiskAdvice != adviceLowRisk {
		t.Errorf("unexpected advice %q", report.RiskAdvice)
	}
	if !mockRepo.SaveCalled {
		t.Errorf("expected repository Save to be called")
	}
}

func TestSimulate_HighRiskAdvice(t *testing.T) {

	service := newTestFinancials(&MockSimulationRepository{}, nil)

	a := domain.DefaultMarketAssumptions()
	a.BaseOccupancyFraction = 0.40

	report, err := service.Simulate(a)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Projection.RiskLevel != domain.RiskHigh {
		t.Errorf("expected High risk")
	}
	if report.RiskAdvice != adviceHighRisk {
		t.Errorf("unexpected advice %q", report.RiskAdvice)
	}
}

func TestSimulate_BelowTarget(t *testing.T) {

	service := newTestFinancials(&MockSimulationRepository{}, nil)

	a := domain.DefaultMarketAssumptions()
	a.InvestedCapital = 10_000_000

	report, err := service.Simulate(a)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.MeetsTarget {
		t.Errorf("expected ROI %.2f to miss the target", report.Projection.CashOnCashReturnPercent)
	}
}

func TestSimulate_InvalidAssumptions(t *testing.T) {

	mockRepo := &MockSimulationRepository{}
	service := newTestFinancials(mockRepo, nil)

	a := domain.DefaultMarketAssumptions()
	a.MonthlySeasonalityFactors = a.MonthlySeasonalityFactors[:11]

	_, err := service.Simulate(a)
	if !errors.Is(err, ErrInvalidAssumptions) {
		t.Fatalf("expected ErrInvalidAssumptions, got %v", err)
	}
	if mockRepo.SaveCalled {
		t.Errorf("invalid runs must not be recorded")
	}
}

func TestSimulate_OverflowIsNotRecorded(t *testing.T) {

	mockRepo := &MockSimulationRepository{}
	service := newTestFinancials(mockRepo, nil)

	a := domain.DefaultMarketAssumptions()
	a.BaseAverageDailyRate = 1e308

	if _, err := service.Simulate(a); !errors.Is(err, ErrInvalidAssumptions) {
		t.Fatalf("expected ErrInvalidAssumptions, got %v", err)
	}
	if mockRepo.SaveCalled {
		t.Errorf("overflowing runs must not be recorded")
	}
}

func TestSimulate_SaveFailureIsNotCritical(t *testing.T) {

	mockRepo := &MockSimulationRepository{ForceError: true}
	service := newTestFinancials(mockRepo, nil)

	if _, err := service.Simulate(domain.DefaultMarketAssumptions()); err != nil {
		t.Fatalf("expected save failure to be ignored, got %v", err)
	}
}

func TestHistory(t *testing.T) {

	mockRepo := &MockSimulationRepository{}
	service := newTestFinancials(mockRepo, nil)

	_, _ = service.Simulate(domain.DefaultMarketAssumptions())
	_, _ = service.Simulate(domain.DefaultMarketAssumptions())

	records, err := service.History()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 2 {
		t.Errorf("expected 2 records, got %d", len(records))
	}
}

func TestGrowthStrategy(t *testing.T) {

	gen := &fakeGenerator{text: "Co-host two more cabins."}
	service := newTestFinancials(&MockSimulationRepository{}, gen)

	result, err := service.GrowthStrategy(context.Background(), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Budget != DefaultGrowthBudget {
		t.Errorf("expected default budget, got %v", result.Budget)
	}
	if result.MonthlyNet != 6877.27 {
		t.Errorf("expected monthly net 6877.27, got %v", result.MonthlyNet)
	}
	if !result.Advice.Generated {
		t.Errorf("expected generated advice")
	}
	if !strings.Contains(gen.LastPrompt(), "$100000 to invest") || !strings.Contains(gen.LastPrompt(), "$6877/mo") {
		t.Errorf("prompt missing figures: %s", gen.LastPrompt())
	}
}

func TestGrowthStrategy_NegativeBudget(t *testing.T) {

	service := newTestFinancials(&MockSimulationRepository{}, nil)

	if _, err := service.GrowthStrategy(context.Background(), -1); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}
