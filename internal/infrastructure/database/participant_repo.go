package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"batepapo/internal/domain"
	"batepapo/internal/domain/entities"
	"batepapo/internal/ports/output"
)

var _ output.ParticipantRepository = (*ParticipantRepository)(nil)

const (
	createParticipant = `INSERT INTO participants (name, last_status) VALUES ($1, $2)
ON CONFLICT (name) DO NOTHING`
	listParticipants       = `SELECT name, last_status FROM participants ORDER BY joined_at, name`
	touchParticipant       = `UPDATE participants SET last_status = $2 WHERE name = $1`
	deleteStaleParticipant = `DELETE FROM participants WHERE name = $1 AND last_status < $2`
)

// ParticipantRepository implements output.ParticipantRepository using pgx.
type ParticipantRepository struct {
	db DBTX
}

// NewParticipantRepository creates a ParticipantRepository.
func NewParticipantRepository(db DBTX) *ParticipantRepository {
	return &ParticipantRepository{db: db}
}

// Create relies on the primary key: a duplicate name inserts nothing.
func (r *ParticipantRepository) Create(ctx context.Context, participant *entities.Participant) error {
	tag, err := r.db.Exec(ctx, createParticipant, participant.Name, timeToPgtypeTimestamptz(participant.LastStatus))
	if err != nil {
		return fmt.Errorf("create participant: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrParticipantExists
	}
	return nil
}

func (r *ParticipantRepository) FindAll(ctx context.Context) ([]entities.Participant, error) {
	rows, err := r.db.Query(ctx, listParticipants)
	if err != nil {
		return nil, fmt.Errorf("list participants: %w", err)
	}
	found, err := pgx.CollectRows(rows, pgx.RowToStructByName[participantRow])
	if err != nil {
		return nil, fmt.Errorf("scan participants: %w", err)
	}
	out := make([]entities.Participant, len(found))
	for i := range found {
		out[i] = participantToDomain(found[i])
	}
	return out, nil
}

func (r *ParticipantRepository) Touch(ctx context.Context, name string, at time.Time) error {
	tag, err := r.db.Exec(ctx, touchParticipant, name, timeToPgtypeTimestamptz(at))
	if err != nil {
		return fmt.Errorf("touch participant: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrParticipantNotFound
	}
	return nil
}

func (r *ParticipantRepository) DeleteInactive(ctx context.Context, name string, cutoff time.Time) (bool, error) {
	tag, err := r.db.Exec(ctx, deleteStaleParticipant, name, timeToPgtypeTimestamptz(cutoff))
	if err != nil {
		return false, fmt.Errorf("delete participant: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *ParticipantRepository) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}
