package repository

import (
	"errors"

	"smokyhost/domain"
)

var ErrNotFound = errors.New("not found")

// PortfolioRepository serves the rental portfolio behind the dashboard views.
type PortfolioRepository interface {
	Metrics() []domain.Metric
	Properties() []domain.Property
	Compliance() domain.ComplianceStatus
	PricingWeek() []domain.PricingDay

	Listing() domain.Listing
	UpdateListingDescription(description string) (domain.Listing, error)

	Tasks() []domain.OperationTask
	// AssignUnassigned schedules every unassigned task under one lock and
	// returns them as they were before assignment.
	AssignUnassigned(assigneeFor func(domain.TaskType) string) []domain.OperationTask
	Devices() []domain.SmartDevice

	Chats() []domain.Chat
	Chat(id string) (domain.Chat, error)
	Messages(chatID string) ([]domain.ChatMessage, error)
	AppendMessage(chatID string, msg domain.ChatMessage) error
}
