package badgerstore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"batepapo/internal/domain/entities"
	"batepapo/internal/ports/output"
)

var _ output.MessageRepository = (*MessageRepository)(nil)

// MessageRepository keys messages as "message:{seq}" with a 20-digit zero
// padded sequence number, so a prefix scan yields insertion order.
type MessageRepository struct {
	store *Store
}

type diskMessage struct {
	ID   uuid.UUID `json:"id"`
	From string    `json:"from"`
	To   string    `json:"to"`
	Text string    `json:"text"`
	Type string    `json:"type"`
	Time string    `json:"time"`
}

func (r *MessageRepository) Append(_ context.Context, message *entities.Message) error {
	value, err := json.Marshal(diskMessage{
		ID:   message.ID,
		From: message.From,
		To:   message.To,
		Text: message.Text,
		Type: string(message.Type),
		Time: message.Time,
	})
	if err != nil {
		return fmt.Errorf("encode message: %w", err)
	}
	seq, err := r.store.seq.Next()
	if err != nil {
		return fmt.Errorf("next message seq: %w", err)
	}
	key := []byte(fmt.Sprintf("%s%020d", messagePrefix, seq))
	if err := r.store.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, value)
	}); err != nil {
		return fmt.Errorf("append message: %w", err)
	}
	return nil
}

func (r *MessageRepository) FindAll(_ context.Context) ([]entities.Message, error) {
	out := []entities.Message{}
	err := r.store.scan(messagePrefix, func(value []byte) error {
		var d diskMessage
		if err := json.Unmarshal(value, &d); err != nil {
			return fmt.Errorf("decode message: %w", err)
		}
		out = append(out, entities.Message{
			ID:   d.ID,
			From: d.From,
			To:   d.To,
			Text: d.Text,
			Type: entities.MessageType(d.Type),
			Time: d.Time,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	return out, nil
}
