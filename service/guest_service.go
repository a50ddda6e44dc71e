package service

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"smokyhost/domain"
	"smokyhost/repository"
)

type GuestService struct {
	repo repository.PortfolioRepository
	ai   *AIService
	now  func() time.Time
}

func NewGuestService(repo repository.PortfolioRepository, ai *AIService) *GuestService {
	return &GuestService{repo: repo, ai: ai, now: time.Now}
}

func (s *GuestService) Chats() []domain.Chat {
	return s.repo.Chats()
}

func (s *GuestService) Messages(chatID string) ([]domain.ChatMessage, error) {
	return s.repo.Messages(chatID)
}

// Send posts a host message to the chat.
func (s *GuestService) Send(chatID, text string) (domain.ChatMessage, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return domain.ChatMessage{}, fmt.Errorf("%w: message text is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(text) > MaxMessageLength {
		return domain.ChatMessage{}, fmt.Errorf("%w: message exceeds %d characters", ErrInvalidInput, MaxMessageLength)
	}

	msg := domain.ChatMessage{
		ID:        uuid.NewString(),
		Sender:    domain.SenderHost,
		Text:      text,
		Timestamp: s.now().UTC(),
	}

	if err := s.repo.AppendMessage(chatID, msg); err != nil {
		return domain.ChatMessage{}, err
	}
	return msg, nil
}

// Draft suggests a reply to the latest guest message of the chat. It does
// not post the reply.
func (s *GuestService) Draft(ctx context.Context, chatID string) (domain.Insight, error) {
	chat, err := s.repo.Chat(chatID)
	if err != nil {
		return domain.Insight{}, err
	}

	msgs, err := s.repo.Messages(chatID)
	if err != nil {
		return domain.Insight{}, err
	}

	last, ok := lastGuestMessage(msgs)
	if !ok {
		return domain.Insight{}, fmt.Errorf("%w: chat %s has no guest message to reply to", ErrConflict, chatID)
	}

	return s.ai.GenerateGuestReply(ctx, last.Text, chat.Property, chat.Context), nil
}

func lastGuestMessage(msgs []domain.ChatMessage) (domain.ChatMessage, bool) {
	for i := len(msgs) - 1; i >= 0; i-- {
		if msgs[i].Sender == domain.SenderGuest {
			return msgs[i], true
		}
	}
	return domain.ChatMessage{}, false
}
