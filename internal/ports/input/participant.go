//go:generate go run go.uber.org/mock/mockgen -source=participant.go -destination=../../mocks/mock_participant_usecase.go -package=mocks
package input

import (
	"context"

	"batepapo/internal/domain/entities"
)

// ParticipantUseCase is the participant registry.
type ParticipantUseCase interface {
	Join(ctx context.Context, name string) (*entities.Participant, error)
	List(ctx context.Context) ([]entities.Participant, error)
	Heartbeat(ctx context.Context, name string) error
}
