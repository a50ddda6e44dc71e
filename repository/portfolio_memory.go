package repository

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"smokyhost/domain"
)

// PortfolioMemory is a PortfolioRepository seeded with the Pigeon Forge
// demo portfolio. Reads return copies; writes are serialized.
type PortfolioMemory struct {
	mu         sync.RWMutex
	metrics    []domain.Metric
	properties []domain.Property
	compliance domain.ComplianceStatus
	pricing    []domain.PricingDay
	listing    domain.Listing
	tasks      []domain.OperationTask
	devices    []domain.SmartDevice
	chats      []domain.Chat
	messages   map[string][]domain.ChatMessage
}

// NewPortfolioMemory seeds the portfolio. Relative timestamps (chat history,
// device updates) are computed from now.
func NewPortfolioMemory(now time.Time) *PortfolioMemory {
	return &PortfolioMemory{
		metrics:    seedMetrics(),
		properties: seedProperties(),
		compliance: domain.ComplianceValid,
		pricing:    seedPricing(),
		listing:    seedListing(),
		tasks:      seedTasks(),
		devices:    seedDevices(now),
		chats:      seedChats(),
		messages:   seedMessages(now),
	}
}

func (p *PortfolioMemory) Metrics() []domain.Metric {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return slices.Clone(p.metrics)
}

func (p *PortfolioMemory) Properties() []domain.Property {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return slices.Clone(p.properties)
}

func (p *PortfolioMemory) Compliance() domain.ComplianceStatus {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.compliance
}

func (p *PortfolioMemory) PricingWeek() []domain.PricingDay {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return slices.Clone(p.pricing)
}

func (p *PortfolioMemory) Listing() domain.Listing {
	p.mu.RLock()
	defer p.mu.RUnlock()
	l := p.listing
	l.Amenities = slices.Clone(p.listing.Amenities)
	return l
}

func (p *PortfolioMemory) UpdateListingDescription(description string) (domain.Listing, error) {
	p.mu.Lock()
	p.listing.Description = description
	p.mu.Unlock()
	return p.Listing(), nil
}

func (p *PortfolioMemory) Tasks() []domain.OperationTask {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return slices.Clone(p.tasks)
}

func (p *PortfolioMemory) AssignUnassigned(assigneeFor func(domain.TaskType) string) []domain.OperationTask {
	p.mu.Lock()
	defer p.mu.Unlock()

	var claimed []domain.OperationTask
	for i := range p.tasks {
		if p.tasks[i].Status != domain.TaskUnassigned {
			continue
		}
		claimed = append(claimed, p.tasks[i])
		p.tasks[i].Assignee = assigneeFor(p.tasks[i].Type)
		p.tasks[i].Status = domain.TaskScheduled
	}
	return claimed
}

func (p *PortfolioMemory) Devices() []domain.SmartDevice {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return slices.Clone(p.devices)
}

func (p *PortfolioMemory) Chats() []domain.Chat {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return slices.Clone(p.chats)
}

func (p *PortfolioMemory) Chat(id string) (domain.Chat, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	for _, c := range p.chats {
		if c.ID == id {
			return c, nil
		}
	}
	return domain.Chat{}, fmt.Errorf("chat %s: %w", id, ErrNotFound)
}

func (p *PortfolioMemory) Messages(chatID string) ([]domain.ChatMessage, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	msgs, ok := p.messages[chatID]
	if !ok {
		return nil, fmt.Errorf("chat %s: %w", chatID, ErrNotFound)
	}
	return slices.Clone(msgs), nil
}

// AppendMessage adds msg to the transcript and updates the chat preview.
func (p *PortfolioMemory) AppendMessage(chatID string, msg domain.ChatMessage) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.messages[chatID]; !ok {
		return fmt.Errorf("chat %s: %w", chatID, ErrNotFound)
	}
	p.messages[chatID] = append(p.messages[chatID], msg)
	for i := range p.chats {
		if p.chats[i].ID == chatID {
			p.chats[i].LastMsg = msg.Text
		}
	}
	return nil
}
