package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"batepapo/internal/domain/entities"
	"batepapo/internal/ports/output"
)

var _ output.MessageRepository = (*MessageRepository)(nil)

const (
	appendMessage = `INSERT INTO messages (id, sender, recipient, text, type, time)
VALUES ($1, $2, $3, $4, $5, $6)`
	listMessages = `SELECT id, sender, recipient, text, type, time FROM messages ORDER BY seq`
)

// MessageRepository implements output.MessageRepository using pgx.
// Insertion order is kept by the seq column.
type MessageRepository struct {
	db DBTX
}

func NewMessageRepository(db DBTX) *MessageRepository {
	return &MessageRepository{db: db}
}

func (r *MessageRepository) Append(ctx context.Context, message *entities.Message) error {
	_, err := r.db.Exec(ctx, appendMessage,
		pgtype.UUID{Bytes: message.ID, Valid: true},
		message.From,
		message.To,
		message.Text,
		string(message.Type),
		message.Time,
	)
	if err != nil {
		return fmt.Errorf("append message: %w", err)
	}
	return nil
}

func (r *MessageRepository) FindAll(ctx context.Context) ([]entities.Message, error) {
	rows, err := r.db.Query(ctx, listMessages)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	found, err := pgx.CollectRows(rows, pgx.RowToStructByName[messageRow])
	if err != nil {
		return nil, fmt.Errorf("scan messages: %w", err)
	}
	out := make([]entities.Message, len(found))
	for i := range found {
		out[i] = messageToDomain(found[i])
	}
	return out, nil
}
