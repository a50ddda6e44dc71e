package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"smokyhost/domain"
	"smokyhost/repository"
)

type ListingService struct {
	repo repository.PortfolioRepository
	ai   *AIService
	log  zerolog.Logger
}

func NewListingService(repo repository.PortfolioRepository, ai *AIService, log zerolog.Logger) *ListingService {
	return &ListingService{repo: repo, ai: ai, log: log.With().Str("component", "listing").Logger()}
}

func (s *ListingService) Current() domain.Listing {
	return s.repo.Listing()
}

func (s *ListingService) UpdateDescription(description string) (domain.Listing, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return domain.Listing{}, fmt.Errorf("%w: description is required", ErrInvalidInput)
	}
	return s.repo.UpdateListingDescription(description)
}

// Optimize rewrites the listing copy. When generation falls back the stored
// description is left untouched.
func (s *ListingService) Optimize(ctx context.Context) (domain.Listing, domain.Insight, error) {
	current := s.repo.Listing()

	suggestion := s.ai.GenerateListingDescription(ctx, current.Description, current.Amenities)
	if !suggestion.Generated {
		return current, suggestion, nil
	}

	updated, err := s.repo.UpdateListingDescription(suggestion.Text)
	if err != nil {
		return domain.Listing{}, domain.Insight{}, err
	}

	s.log.Info().Str("listing_id", updated.ID).Msg("listing description optimized")
	return updated, suggestion, nil
}
