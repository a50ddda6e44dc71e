package service

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	json "github.com/goccy/go-json"
)

// Feature ids double as prompt template names and metric labels.
const (
	FeatureBriefing   = "briefing"
	FeatureGuestReply = "guest_reply"
	FeatureListing    = "listing"
	FeaturePricing    = "pricing"
	FeatureSchedule   = "schedule"
	FeatureTelemetry  = "telemetry"
	FeatureGrowth     = "growth"
	FeatureSocial     = "social"
	FeatureCoHost     = "cohost_pitch"
)

var promptSources = map[string]string{
	FeatureBriefing: `You are the "AI CEO" of a Short Term Rental business in Pigeon Forge, TN.

Context:
- Market: Pigeon Forge/Smoky Mountains (2025 Trends: Domestic tourism, Pet-friendly focus).
- Seasonality: High demand (Fall Colors/Dollywood events).
- User Level: {{if .Beginner}}Beginner (Explain simply, avoid jargon, focus on actionable steps){{else}}Expert (Focus on ROI, RevPAR, and KPIs){{end}}.

Data:
Metrics: {{json .Metrics}}
Properties: {{json .Properties}}

Provide a {{if .Beginner}}simple, encouraging{{else}}concise, data-driven{{end}} executive summary (max 100 words).
{{if .Beginner}}Define one key term if used (like RevPAR).
{{end}}Mention a specific action item for today related to compliance or guest experience.`,

	FeatureGuestReply: `Act as "SmokyBot", a 5-star host assistant for "{{.Property}}" in Pigeon Forge.
Guest Message: "{{.Message}}"
Context: {{.Context}}

Draft a friendly response. If relevant, mention:
- The Island in Pigeon Forge
- Dollywood
- Great Smoky Mountains National Park hiking trails`,

	FeatureListing: `Optimize this Airbnb listing for the 2025 Pigeon Forge market.
Current: "{{.Description}}"
Amenities: {{join .Amenities ", "}}

Strategies:
1. Emphasize "Pet-Friendly" if applicable (High demand niche in 2025).
2. Highlight "EV Charger" if applicable.
3. Focus on "Multi-generational families" (Domestic tourism trend).
4. Use emotive words like "Cozy", "Retreat", "Smoky Mountain Views".`,

	FeaturePricing: `Analyze this pricing for Pigeon Forge (Next 7 days):
{{json .Days}}

Constraints:
- Minimum profitable rate is ${{printf "%.0f" .MinPrice}}.
- Niche: {{if .PetFriendly}}Pet Friendly (+15% premium){{else}}Standard{{end}}.

Recommendation (1 sentence): Should we increase for weekend demand (Dollywood traffic) or lower for midweek occupancy?`,

	FeatureSchedule: `Role: Operations Manager.
Tasks: {{json .Tasks}}
Resources: 2 Cleaners, 1 Handyman.
Goal: 4 PM Check-in deadline.

Output: A 2-sentence schedule plan prioritizing High Priority tasks.`,

	FeatureTelemetry: `Analyze IoT devices: {{json .Devices}}.
Identify alerts (Leaks, Offline, Temp < 60F or > 80F).
Output: Status summary.`,

	FeatureGrowth: `I have ${{printf "%.0f" .Budget}} to invest. My current net income is ${{printf "%.0f" .MonthlyNet}}/mo.
Market: Pigeon Forge, TN (2025).

Suggest an expansion strategy:
1. Buy a new cabin? (Estimated cost $300k-$500k)
2. Co-host more units?
3. Add amenities (Hot tub, Game room)?

Provide a calculated recommendation based on 10-15% Cash-on-Cash return target.`,

	FeatureSocial: `Generate a {{.Platform}} post for a Pigeon Forge Cabin rental business.
Topic: {{.Topic}}
Focus: 2025 Travel Trends (Domestic, Nature, Family).
Includes emojis and hashtags.`,

	FeatureCoHost: `Write a cold email to {{.LeadName}}, owner of property at {{.LeadAddress}} in Pigeon Forge.
My Offer: 25% Commission, Full-Service AI Management.
Value Prop: We use AI to optimize pricing and get 20% higher revenue than average.
Tone: Professional, Local Expert, Results-Oriented.`,
}

var promptFuncs = template.FuncMap{
	"json": func(v any) (string, error) {
		b, err := json.Marshal(v)
		return string(b), err
	},
	"join": strings.Join,
}

// PromptLibrary holds the parsed prompt templates by feature id.
type PromptLibrary struct {
	templates map[string]*template.Template
}

func NewPromptLibrary() (*PromptLibrary, error) {
	lib := &PromptLibrary{templates: make(map[string]*template.Template, len(promptSources))}
	for id, src := range promptSources {
		tmpl, err := template.New(id).Funcs(promptFuncs).Option("missingkey=error").Parse(src)
		if err != nil {
			return nil, fmt.Errorf("parse prompt %s: %w", id, err)
		}
		lib.templates[id] = tmpl
	}
	return lib, nil
}

func (l *PromptLibrary) Render(id string, data any) (string, error) {
	tmpl, ok := l.templates[id]
	if !ok {
		return "", fmt.Errorf("prompt not found: %s", id)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render prompt %s: %w", id, err)
	}
	return buf.String(), nil
}

// MustPromptLibrary panics if the built-in prompts fail to parse.
func MustPromptLibrary() *PromptLibrary {
	lib, err := NewPromptLibrary()
	if err != nil {
		panic(err)
	}
	return lib
}
