package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"smokyhost/domain"
	"smokyhost/metrics"
)

const pitchSubject = "Co-hosting your Pigeon Forge property"

var socialPlatforms = map[string]bool{
	"Instagram": true,
	"Facebook":  true,
}

type MarketingService struct {
	ai      *AIService
	mailer  Mailer
	log     zerolog.Logger
	metrics *metrics.Recorder
}

// NewMarketingService accepts a nil mailer; pitches are then only drafted.
func NewMarketingService(ai *AIService, mailer Mailer, log zerolog.Logger, rec *metrics.Recorder) *MarketingService {
	return &MarketingService{
		ai:      ai,
		mailer:  mailer,
		log:     log.With().Str("component", "marketing").Logger(),
		metrics: rec,
	}
}

func (s *MarketingService) SocialPost(ctx context.Context, topic, platform string) (domain.Insight, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		topic = DefaultSocialTopic
	}
	if platform == "" {
		platform = DefaultSocialPlatform
	}
	if !socialPlatforms[platform] {
		return domain.Insight{}, fmt.Errorf("%w: unsupported platform %q", ErrInvalidInput, platform)
	}

	return s.ai.GenerateSocialPost(ctx, topic, platform), nil
}

// CoHostPitch drafts an outreach email and, when to is set and a mailer is
// configured, sends it. A failed send is reported through Sent only.
func (s *MarketingService) CoHostPitch(ctx context.Context, leadName, leadAddress, to string) (domain.CoHostPitch, error) {
	leadName = strings.TrimSpace(leadName)
	leadAddress = strings.TrimSpace(leadAddress)
	if leadName == "" || leadAddress == "" {
		return domain.CoHostPitch{}, fmt.Errorf("%w: lead name and address are required", ErrInvalidInput)
	}

	pitch := domain.CoHostPitch{
		LeadName:    leadName,
		LeadAddress: leadAddress,
		Email:       s.ai.GenerateCoHostPitch(ctx, leadName, leadAddress),
	}

	to = strings.TrimSpace(to)
	if to == "" || s.mailer == nil {
		return pitch, nil
	}

	if err := s.mailer.Send(to, pitchSubject, pitch.Email.Text); err != nil {
		s.log.Warn().Err(err).Str("lead", leadName).Msg("pitch email not sent")
		s.metrics.RecordMail("failed")
		return pitch, nil
	}

	s.metrics.RecordMail("sent")
	pitch.Sent = true
	return pitch, nil
}
