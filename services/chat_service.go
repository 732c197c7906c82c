package services

import (
	"context"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"traffic-lab/contract"
	"traffic-lab/domain"
	"traffic-lab/domain/event"
	"traffic-lab/errors"

	"github.com/google/uuid"
)

type ICensor interface {
	Censor(original string) (string, []string)
}

type IChatService interface {
	SendMessage(ctx context.Context, userID, content string) (domain.Message, error)
	GetMessages(ctx context.Context, limit int) ([]domain.Message, error)
}

// ChatService is the community chat shared by every connected user.
type ChatService struct {
	log      *slog.Logger
	users    contract.IUserRepository
	messages contract.IMessageRepository
	censor   ICensor
	emitter  contract.Emitter
	now      func() time.Time
}

func NewChatService(log *slog.Logger, users contract.IUserRepository, messages contract.IMessageRepository,
	censor ICensor, emitter contract.Emitter) *ChatService {
	return &ChatService{
		log:      log.With("component", "chat"),
		users:    users,
		messages: messages,
		censor:   censor,
		emitter:  emitter,
		now:      time.Now,
	}
}

// SendMessage validates, censors, stores and broadcasts a message.
func (s *ChatService) SendMessage(ctx context.Context, userID, content string) (domain.Message, error) {
	if err := ctx.Err(); err != nil {
		return domain.Message{}, err
	}
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return domain.Message{}, errors.ErrEmptyMessage
	}
	if utf8.RuneCountInString(trimmed) > domain.MaxMessageLength {
		return domain.Message{}, errors.ErrMessageTooLong
	}
	user, err := s.users.GetUser(userID)
	if err != nil {
		return domain.Message{}, err
	}

	censored, words := s.censor.Censor(trimmed)
	if len(words) > 0 {
		s.log.Debug("Message censored", "userID", userID, "words", len(words))
	}
	message := domain.Message{
		ID:          uuid.New(),
		UserID:      userID,
		DisplayName: user.DisplayName,
		Content:     censored,
		CreatedAt:   s.now().UTC(),
	}
	if err = s.messages.StoreMessage(message); err != nil {
		return domain.Message{}, err
	}
	s.emitter.Broadcast(event.NewMessage(message))
	return message, nil
}

// GetMessages returns the newest messages oldest first, limit defaults to 50 and is capped at 100.
func (s *ChatService) GetMessages(ctx context.Context, limit int) ([]domain.Message, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	switch {
	case limit <= 0:
		limit = domain.DefaultMessageLoad
	case limit > domain.MaxMessageLoad:
		limit = domain.MaxMessageLoad
	}
	return s.messages.LatestMessages(limit)
}
