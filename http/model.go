package http

import "smokyhost/domain"

type SendMessageRequest struct {
	Text string `json:"text" validate:"required,max=4000"`
}

type UpdateDescriptionRequest struct {
	Description string `json:"description" validate:"required,max=10000"`
}

type SocialPostRequest struct {
	Topic    string `json:"topic" default:"Fall Colors in Smokies" validate:"max=200"`
	Platform string `json:"platform" default:"Instagram" validate:"oneof=Instagram Facebook"`
}

type CoHostPitchRequest struct {
	LeadName    string `json:"lead_name" validate:"required,max=200"`
	LeadAddress string `json:"lead_address" validate:"required,max=300"`
	Email       string `json:"email" validate:"omitempty,email"`
}

type GrowthStrategyRequest struct {
	Budget float64 `json:"budget" default:"100000" validate:"gte=0"`
}

type OptimizeListingResponse struct {
	Listing    domain.Listing `json:"listing"`
	Suggestion domain.Insight `json:"suggestion"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	AIEnabled bool   `json:"ai_enabled"`
}
