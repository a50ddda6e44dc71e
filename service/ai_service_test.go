package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"smokyhost/domain"
	"smokyhost/metrics"
	"smokyhost/repository"
)

type fakeGenerator struct {
	mu      sync.Mutex
	text    string
	err     error
	block   bool
	panics  bool
	calls   int
	prompts []string
}

func (f *fakeGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	f.mu.Lock()
	f.calls++
	f.prompts = append(f.prompts, prompt)
	f.mu.Unlock()

	if f.panics {
		panic("boom")
	}
	if f.block {
		<-ctx.Done()
		return "", ctx.Err()
	}
	return f.text, f.err
}

func (f *fakeGenerator) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func (f *fakeGenerator) LastPrompt() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.prompts) == 0 {
		return ""
	}
	return f.prompts[len(f.prompts)-1]
}

func newTestAIService(gen TextGenerator, cache repository.CacheRepository) *AIService {
	return NewAIService(gen, cache, AIOptions{CacheTTL: time.Hour, Timeout: time.Second}, zerolog.Nop(), nil)
}

func TestAIService_DisabledReturnsFallback(t *testing.T) {

	ai := newTestAIService(nil, nil)

	insight := ai.GenerateTelemetrySummary(context.Background(), nil)

	if insight.Generated {
		t.Errorf("expected fallback insight")
	}
	if insight.Text != "All systems operational." {
		t.Errorf("unexpected fallback %q", insight.Text)
	}
	if !strings.Contains(insight.HTML, "<p>All systems operational.</p>") {
		t.Errorf("expected rendered html, got %q", insight.HTML)
	}
}

func TestAIService_GeneratedTextIsCached(t *testing.T) {

	gen := &fakeGenerator{text: "  **Raise** weekend rates.  "}
	cache := repository.NewMemoryCache()
	ai := newTestAIService(gen, cache)

	days := []domain.PricingDay{{Date: "Fri 10/25", Price: 350, Occupancy: 90}}

	first := ai.GeneratePricingStrategy(context.Background(), days, 150, true)
	second := ai.GeneratePricingStrategy(context.Background(), days, 150, true)

	if !first.Generated || first.Text != "**Raise** weekend rates." {
		t.Errorf("unexpected insight %+v", first)
	}
	if !strings.Contains(first.HTML, "<strong>Raise</strong>") {
		t.Errorf("expected markdown rendering, got %q", first.HTML)
	}
	if second != first {
		t.Errorf("expected cached insight to match, got %+v", second)
	}
	if gen.Calls() != 1 {
		t.Errorf("expected 1 generator call, got %d", gen.Calls())
	}
	if cache.Len() != 1 {
		t.Errorf("expected 1 cache entry, got %d", cache.Len())
	}

	prompt := gen.LastPrompt()
	if !strings.Contains(prompt, "$150") || !strings.Contains(prompt, "Pet Friendly") {
		t.Errorf("prompt missing inputs: %s", prompt)
	}
}

func TestAIService_FailuresFallBack(t *testing.T) {

	tests := []struct {
		name string
		gen  *fakeGenerator
	}{
		{"provider error", &fakeGenerator{err: errors.New("quota exceeded")}},
		{"unavailable", &fakeGenerator{err: ErrGenerationUnavailable}},
		{"empty text", &fakeGenerator{text: "   "}},
		{"panic", &fakeGenerator{panics: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cache := repository.NewMemoryCache()
			ai := newTestAIService(tt.gen, cache)

			insight := ai.GenerateGrowthStrategy(context.Background(), 100000, 6877.27)

			if insight.Generated {
				t.Errorf("expected fallback")
			}
			if insight.Text != fallbackGrowth {
				t.Errorf("unexpected text %q", insight.Text)
			}
			if cache.Len() != 0 {
				t.Errorf("fallbacks must not be cached")
			}
		})
	}
}

func TestAIService_Timeout(t *testing.T) {

	gen := &fakeGenerator{block: true}
	ai := NewAIService(gen, nil, AIOptions{Timeout: 20 * time.Millisecond}, zerolog.Nop(), nil)

	start := time.Now()
	insight := ai.GenerateSchedulePlan(context.Background(), nil)

	if insight.Generated || insight.Text != fallbackSchedule {
		t.Errorf("expected schedule fallback, got %+v", insight)
	}
	if time.Since(start) > 2*time.Second {
		t.Errorf("timeout not applied")
	}
}

func TestAIService_FeatureFallbacks(t *testing.T) {

	ai := newTestAIService(nil, nil)
	ctx := context.Background()

	if got := ai.GenerateListingDescription(ctx, "Cozy cabin.", nil).Text; got != "Cozy cabin." {
		t.Errorf("listing fallback should keep current description, got %q", got)
	}

	want := "Hi Ann, I noticed your property at 12 Ridge Rd. We help owners boost revenue using AI..."
	if got := ai.GenerateCoHostPitch(ctx, "Ann", "12 Ridge Rd").Text; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}

	if got := ai.GenerateGuestReply(ctx, "hi", "Bear Hug Cabin", "").Text; got != fallbackGuestReply {
		t.Errorf("unexpected guest fallback %q", got)
	}

	if got := ai.GenerateDailyBriefing(ctx, nil, nil, true).Text; got != fallbackBriefing {
		t.Errorf("unexpected briefing fallback %q", got)
	}

	if got := ai.GenerateSocialPost(ctx, "Snow", "Facebook").Text; got != fallbackSocial {
		t.Errorf("unexpected social fallback %q", got)
	}
}

func TestAIService_BriefingPromptFollowsMode(t *testing.T) {

	gen := &fakeGenerator{text: "ok"}
	ai := newTestAIService(gen, nil)
	ctx := context.Background()

	ai.GenerateDailyBriefing(ctx, []domain.Metric{{Label: "RevPAR", Value: "$182"}}, nil, true)
	if !strings.Contains(gen.LastPrompt(), "Beginner") || !strings.Contains(gen.LastPrompt(), `"label":"RevPAR"`) {
		t.Errorf("beginner prompt wrong: %s", gen.LastPrompt())
	}

	ai.GenerateDailyBriefing(ctx, nil, nil, false)
	if !strings.Contains(gen.LastPrompt(), "Expert") {
		t.Errorf("pro prompt wrong: %s", gen.LastPrompt())
	}
}

func TestAIService_BriefingPromptSummarizesProperties(t *testing.T) {

	gen := &fakeGenerator{text: "ok"}
	ai := newTestAIService(gen, nil)

	properties := []domain.Property{{
		ID:            "1",
		Name:          "Bear Hug Cabin",
		Address:       "123 Smoky Ln",
		Status:        domain.PropertyActive,
		OccupancyRate: 92,
		ImageURL:      "https://example.com/cabin.jpg",
	}}
	ai.GenerateDailyBriefing(context.Background(), nil, properties, false)

	prompt := gen.LastPrompt()
	if !strings.Contains(prompt, `{"name":"Bear Hug Cabin","occupancy":92,"status":"Active"}`) {
		t.Errorf("expected property summary in prompt: %s", prompt)
	}
	if strings.Contains(prompt, "123 Smoky Ln") || strings.Contains(prompt, "cabin.jpg") {
		t.Errorf("prompt must not carry address or image: %s", prompt)
	}
}

func TestAIService_RecordsMetrics(t *testing.T) {

	reg := prometheus.NewRegistry()
	gen := &fakeGenerator{text: "ok"}
	ai := NewAIService(gen, nil, AIOptions{}, zerolog.Nop(), metrics.New(reg))

	ai.GenerateTelemetrySummary(context.Background(), nil)

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}

	found := map[string]bool{}
	for _, mf := range families {
		found[mf.GetName()] = true
	}
	for _, name := range []string{"smokyhost_generations_total", "smokyhost_generation_duration_seconds"} {
		if !found[name] {
			t.Errorf("expected metric %s to be recorded", name)
		}
	}
}

func TestPromptLibrary_AllFeaturesParse(t *testing.T) {

	lib, err := NewPromptLibrary()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := lib.Render("unknown", nil); err == nil {
		t.Errorf("expected error for unknown prompt")
	}
}
