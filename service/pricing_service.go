package service

import (
	"context"
	"math"

	"smokyhost/domain"
	"smokyhost/repository"
)

type PricingService struct {
	repo repository.PortfolioRepository
	ai   *AIService
}

func NewPricingService(repo repository.PortfolioRepository, ai *AIService) *PricingService {
	return &PricingService{repo: repo, ai: ai}
}

// Analyze checks the coming week against the host's minimum profitable rate.
// Negative or non-finite minimums are treated as zero.
func (s *PricingService) Analyze(ctx context.Context, minPrice float64, petFriendly bool) domain.PricingAnalysis {
	if minPrice < 0 || math.IsNaN(minPrice) || math.IsInf(minPrice, 0) {
		minPrice = 0
	}

	days := s.repo.PricingWeek()

	below := []string{}
	for _, d := range days {
		if d.Price < minPrice {
			below = append(below, d.Date)
		}
	}

	return domain.PricingAnalysis{
		MinPrice:     minPrice,
		PetFriendly:  petFriendly,
		Days:         days,
		BelowMinimum: below,
		Warning:      len(below) > 0,
		Analysis:     s.ai.GeneratePricingStrategy(ctx, days, minPrice, petFriendly),
	}
}
