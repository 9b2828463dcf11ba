package database

import (
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"batepapo/internal/domain/entities"
)

type participantRow struct {
	Name       string             `db:"name"`
	LastStatus pgtype.Timestamptz `db:"last_status"`
}

type messageRow struct {
	ID        pgtype.UUID `db:"id"`
	Sender    string      `db:"sender"`
	Recipient string      `db:"recipient"`
	Text      string      `db:"text"`
	Type      string      `db:"type"`
	Time      string      `db:"time"`
}

// pgtypeTimestamptzToTime returns t.Time when Valid, else zero time.
func pgtypeTimestamptzToTime(t pgtype.Timestamptz) time.Time {
	if !t.Valid {
		return time.Time{}
	}
	return t.Time
}

func timeToPgtypeTimestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

func participantToDomain(p participantRow) entities.Participant {
	return entities.Participant{
		Name:       p.Name,
		LastStatus: pgtypeTimestamptzToTime(p.LastStatus),
	}
}

func messageToDomain(m messageRow) entities.Message {
	return entities.Message{
		ID:   uuid.UUID(m.ID.Bytes),
		From: m.Sender,
		To:   m.Recipient,
		Text: m.Text,
		Type: entities.MessageType(m.Type),
		Time: m.Time,
	}
}
