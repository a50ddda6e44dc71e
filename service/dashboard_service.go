package service

import (
	"context"
	"fmt"

	"smokyhost/domain"
	"smokyhost/repository"
)

const (
	complianceActiveLabel  = "Pigeon Forge Permit Active"
	complianceRenewalLabel = "Permit Renewal Due ($500)"

	growthHint = "Based on your $24k monthly revenue, you qualify for financing a 4th cabin. " +
		"ROI projected at 12% for a 3-bedroom near The Island."
)

type DashboardService struct {
	repo repository.PortfolioRepository
	ai   *AIService
}

func NewDashboardService(repo repository.PortfolioRepository, ai *AIService) *DashboardService {
	return &DashboardService{repo: repo, ai: ai}
}

// ParseDashboardMode defaults an empty mode to beginner.
func ParseDashboardMode(raw string) (domain.DashboardMode, error) {
	switch domain.DashboardMode(raw) {
	case "", domain.ModeBeginner:
		return domain.ModeBeginner, nil
	case domain.ModePro:
		return domain.ModePro, nil
	default:
		return "", fmt.Errorf("%w: unknown dashboard mode %q", ErrInvalidInput, raw)
	}
}

func (s *DashboardService) Dashboard(ctx context.Context, mode domain.DashboardMode) domain.Dashboard {
	beginner := mode != domain.ModePro

	kpis := s.repo.Metrics()
	properties := s.repo.Properties()
	compliance := s.repo.Compliance()

	briefing := s.ai.GenerateDailyBriefing(ctx, kpis, properties, beginner)

	dashboard := domain.Dashboard{
		Mode:            domain.ModeBeginner,
		Metrics:         kpis,
		Properties:      properties,
		Compliance:      compliance,
		ComplianceLabel: complianceLabel(compliance),
		Briefing:        briefing,
	}

	if !beginner {
		dashboard.Mode = domain.ModePro
		dashboard.GrowthHint = growthHint
		// Descriptions are only shown to beginners.
		for i := range dashboard.Metrics {
			dashboard.Metrics[i].Description = ""
		}
	}

	return dashboard
}

// WarmBriefings generates both briefings so the first dashboard load of the
// day hits the cache.
func (s *DashboardService) WarmBriefings(ctx context.Context) []domain.Insight {
	kpis := s.repo.Metrics()
	properties := s.repo.Properties()

	return []domain.Insight{
		s.ai.GenerateDailyBriefing(ctx, kpis, properties, true),
		s.ai.GenerateDailyBriefing(ctx, kpis, properties, false),
	}
}

func complianceLabel(status domain.ComplianceStatus) string {
	if status == domain.ComplianceValid {
		return complianceActiveLabel
	}
	return complianceRenewalLabel
}
