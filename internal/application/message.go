package application

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"batepapo/internal/domain"
	"batepapo/internal/domain/entities"
	"batepapo/internal/ports/input"
	"batepapo/internal/ports/output"
	"batepapo/pkg/tz"
)

var (
	_ input.MessageUseCase = (*MessageService)(nil)
	_ input.StatusLog      = (*MessageService)(nil)
)

// MessageService is the message log: it appends messages and serves the
// visible part of the log to each user.
type MessageService struct {
	messageRepo output.MessageRepository
	location    *time.Location
	now         func() time.Time
}

func NewMessageService(messageRepo output.MessageRepository, location *time.Location) *MessageService {
	return &MessageService{
		messageRepo: messageRepo,
		location:    location,
		now:         time.Now,
	}
}

func (s *MessageService) Post(ctx context.Context, msg input.PostMessage) error {
	if err := validateStruct(messageInput{
		To:   msg.To,
		Text: msg.Text,
		Type: msg.Type,
		From: msg.From,
	}); err != nil {
		return err
	}
	return s.append(ctx, msg.From, msg.To, msg.Text, entities.MessageType(msg.Type))
}

// List filters the full log by visibility first and only then keeps the
// trailing limit entries.
func (s *MessageService) List(ctx context.Context, user string, limit *int) ([]entities.Message, error) {
	if limit != nil && *limit <= 0 {
		return nil, &domain.ValidationError{Field: "limit", Rule: "positive"}
	}
	all, err := s.messageRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("find messages: %w", err)
	}
	visible := lo.Filter(all, func(m entities.Message, _ int) bool {
		return m.VisibleTo(user)
	})
	if limit != nil {
		visible = lo.Subset(visible, -*limit, uint(*limit))
	}
	return visible, nil
}

func (s *MessageService) AppendArrival(ctx context.Context, name string) error {
	return s.appendStatus(ctx, name, entities.StatusJoinText)
}

func (s *MessageService) AppendDeparture(ctx context.Context, name string) error {
	return s.appendStatus(ctx, name, entities.StatusLeaveText)
}

func (s *MessageService) appendStatus(ctx context.Context, name, text string) error {
	return s.append(ctx, name, entities.BroadcastRecipient, text, entities.MessageTypeStatus)
}

func (s *MessageService) append(ctx context.Context, from, to, text string, typ entities.MessageType) error {
	message := &entities.Message{
		ID:   uuid.New(),
		From: from,
		To:   to,
		Text: text,
		Type: typ,
		Time: tz.Clock(s.now(), s.location),
	}
	if err := s.messageRepo.Append(ctx, message); err != nil {
		return fmt.Errorf("append message: %w", err)
	}
	return nil
}
