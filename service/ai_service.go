package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/rs/zerolog"

	"smokyhost/domain"
	"smokyhost/metrics"
	"smokyhost/repository"
)

const (
	fallbackBriefing   = "Welcome back! Occupancy looks stable. Check your calendar for upcoming gaps."
	fallbackGuestReply = "Thank you for your message! I will get back to you shortly."
	fallbackPricing    = "Pricing appears competitive for the current season."
	fallbackSchedule   = "Prioritize cleaning turnover units first, then move to maintenance."
	fallbackTelemetry  = "All systems operational."
	fallbackGrowth     = "Consider adding a Game Room to existing properties to boost ADR by 15% before purchasing new property."
	fallbackSocial     = "🌲 Escape to the Smokies! 🐻 Book your stay today. #PigeonForge #CabinLife"
	fallbackCoHost     = "Hi %s, I noticed your property at %s. We help owners boost revenue using AI..."
)

type AIOptions struct {
	CacheTTL time.Duration
	Timeout  time.Duration
}

// AIService never fails: every Generate* method returns the model text when
// it can and the feature's fixed fallback otherwise.
type AIService struct {
	generator TextGenerator
	enabled   bool
	prompts   *PromptLibrary
	cache     repository.CacheRepository
	cacheTTL  time.Duration
	timeout   time.Duration
	log       zerolog.Logger
	metrics   *metrics.Recorder
}

// NewAIService accepts a nil generator (no API key) and a nil cache.
func NewAIService(generator TextGenerator, cache repository.CacheRepository, opts AIOptions, log zerolog.Logger, rec *metrics.Recorder) *AIService {
	ttl := opts.CacheTTL
	if ttl < 0 {
		ttl = DefaultGenerateTTL
	}

	return &AIService{
		generator: generator,
		enabled:   generator != nil,
		prompts:   MustPromptLibrary(),
		cache:     cache,
		cacheTTL:  ttl,
		timeout:   opts.Timeout,
		log:       log.With().Str("component", "ai").Logger(),
		metrics:   rec,
	}
}

func (s *AIService) Enabled() bool {
	return s.enabled
}

// briefingProperty is the slice of a property the briefing prompt needs.
type briefingProperty struct {
	Name      string                `json:"name"`
	Occupancy int                   `json:"occupancy"`
	Status    domain.PropertyStatus `json:"status"`
}

func (s *AIService) GenerateDailyBriefing(ctx context.Context, kpis []domain.Metric, properties []domain.Property, beginner bool) domain.Insight {
	summary := make([]briefingProperty, 0, len(properties))
	for _, p := range properties {
		summary = append(summary, briefingProperty{Name: p.Name, Occupancy: p.OccupancyRate, Status: p.Status})
	}

	data := struct {
		Metrics    []domain.Metric
		Properties []briefingProperty
		Beginner   bool
	}{kpis, summary, beginner}

	return s.generate(ctx, FeatureBriefing, data, fallbackBriefing)
}

func (s *AIService) GenerateGuestReply(ctx context.Context, message, property, chatContext string) domain.Insight {
	data := struct {
		Message  string
		Property string
		Context  string
	}{message, property, chatContext}

	return s.generate(ctx, FeatureGuestReply, data, fallbackGuestReply)
}

// GenerateListingDescription falls back to the current description.
func (s *AIService) GenerateListingDescription(ctx context.Context, current string, amenities []string) domain.Insight {
	data := struct {
		Description string
		Amenities   []string
	}{current, amenities}

	return s.generate(ctx, FeatureListing, data, current)
}

func (s *AIService) GeneratePricingStrategy(ctx context.Context, days []domain.PricingDay, minPrice float64, petFriendly bool) domain.Insight {
	if len(days) > PricingSampleDays {
		days = days[:PricingSampleDays]
	}
	data := struct {
		Days        []domain.PricingDay
		MinPrice    float64
		PetFriendly bool
	}{days, minPrice, petFriendly}

	return s.generate(ctx, FeaturePricing, data, fallbackPricing)
}

func (s *AIService) GenerateSchedulePlan(ctx context.Context, tasks []domain.OperationTask) domain.Insight {
	data := struct {
		Tasks []domain.OperationTask
	}{tasks}

	return s.generate(ctx, FeatureSchedule, data, fallbackSchedule)
}

func (s *AIService) GenerateTelemetrySummary(ctx context.Context, devices []domain.SmartDevice) domain.Insight {
	data := struct {
		Devices []domain.SmartDevice
	}{devices}

	return s.generate(ctx, FeatureTelemetry, data, fallbackTelemetry)
}

func (s *AIService) GenerateGrowthStrategy(ctx context.Context, budget, monthlyNet float64) domain.Insight {
	data := struct {
		Budget     float64
		MonthlyNet float64
	}{budget, monthlyNet}

	return s.generate(ctx, FeatureGrowth, data, fallbackGrowth)
}

func (s *AIService) GenerateSocialPost(ctx context.Context, topic, platform string) domain.Insight {
	data := struct {
		Topic    string
		Platform string
	}{topic, platform}

	return s.generate(ctx, FeatureSocial, data, fallbackSocial)
}

func (s *AIService) GenerateCoHostPitch(ctx context.Context, leadName, leadAddress string) domain.Insight {
	data := struct {
		LeadName    string
		LeadAddress string
	}{leadName, leadAddress}

	return s.generate(ctx, FeatureCoHost, data, fmt.Sprintf(fallbackCoHost, leadName, leadAddress))
}

func (s *AIService) generate(ctx context.Context, feature string, data any, fallback string) domain.Insight {
	if !s.enabled {
		s.metrics.RecordGeneration(feature, metrics.OutcomeFallback)
		return newInsight(fallback, false)
	}

	prompt, err := s.prompts.Render(feature, data)
	if err != nil {
		s.log.Error().Err(err).Str("feature", feature).Msg("prompt render failed")
		s.metrics.RecordGeneration(feature, metrics.OutcomeFallback)
		return newInsight(fallback, false)
	}

	return s.safeGenerate(ctx, feature, prompt, fallback)
}

func (s *AIService) safeGenerate(ctx context.Context, feature, prompt, fallback string) domain.Insight {
	key := cacheKey(feature, prompt)
	if s.cache != nil {
		if text, ok := s.cache.Get(ctx, key); ok {
			s.metrics.RecordGeneration(feature, metrics.OutcomeCached)
			return newInsight(text, true)
		}
	}

	start := time.Now()
	text, err := s.callGenerator(ctx, prompt)
	s.metrics.RecordGenerationLatency(feature, time.Since(start).Seconds())

	if err != nil {
		s.log.Warn().Err(err).Str("feature", feature).Msg("text generation failed, using fallback")
		s.metrics.RecordGeneration(feature, metrics.OutcomeFallback)
		return newInsight(fallback, false)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, text, s.cacheTTL); err != nil {
			s.log.Warn().Err(err).Str("feature", feature).Msg("failed to cache generated text")
		}
	}

	s.metrics.RecordGeneration(feature, metrics.OutcomeGenerated)
	return newInsight(text, true)
}

func (s *AIService) callGenerator(ctx context.Context, prompt string) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: generator panic: %v", ErrGenerationUnavailable, r)
		}
	}()

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	text, err = s.generator.GenerateText(ctx, prompt)
	if err != nil {
		return "", err
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("%w: empty response", ErrGenerationUnavailable)
	}
	return text, nil
}

func cacheKey(feature, prompt string) string {
	return "gen:" + feature + ":" + strconv.FormatUint(xxhash.Sum64String(prompt), 16)
}

func newInsight(text string, generated bool) domain.Insight {
	return domain.Insight{
		Text:      text,
		HTML:      renderMarkdown(text),
		Generated: generated,
	}
}
