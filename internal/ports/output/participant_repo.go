//go:generate go run go.uber.org/mock/mockgen -source=participant_repo.go -destination=../../mocks/mock_participant_repo.go -package=mocks
package output

import (
	"context"
	"time"

	"batepapo/internal/domain/entities"
)

type ParticipantRepository interface {
	// Create inserts participant unless one with the same name exists, in
	// which case it returns domain.ErrParticipantExists. The check and the
	// insert are a single atomic operation.
	Create(ctx context.Context, participant *entities.Participant) error
	FindAll(ctx context.Context) ([]entities.Participant, error)
	// Touch sets LastStatus of name to at, or returns domain.ErrParticipantNotFound.
	Touch(ctx context.Context, name string, at time.Time) error
	// DeleteInactive removes name only while its LastStatus is before cutoff.
	// It reports whether a record was removed.
	DeleteInactive(ctx context.Context, name string, cutoff time.Time) (bool, error)
	Ping(ctx context.Context) error
}
