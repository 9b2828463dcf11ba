package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"batepapo/internal/domain"
	"batepapo/internal/domain/entities"
	"batepapo/internal/ports/input"
	"batepapo/internal/ports/output"
)

var _ input.ParticipantUseCase = (*ParticipantService)(nil)

// ParticipantService is the participant registry.
type ParticipantService struct {
	participantRepo output.ParticipantRepository
	statusLog       input.StatusLog
	log             *slog.Logger
	now             func() time.Time
}

func NewParticipantService(
	participantRepo output.ParticipantRepository,
	statusLog input.StatusLog,
	log *slog.Logger,
) *ParticipantService {
	return &ParticipantService{
		participantRepo: participantRepo,
		statusLog:       statusLog,
		log:             log,
		now:             time.Now,
	}
}

// Join registers name and announces it in the log. The arrival message is
// best-effort: once the participant is stored, a failed append is only logged.
func (s *ParticipantService) Join(ctx context.Context, name string) (*entities.Participant, error) {
	if err := validateStruct(joinInput{Name: name}); err != nil {
		return nil, err
	}
	participant := &entities.Participant{
		Name:       name,
		LastStatus: s.now(),
	}
	if err := s.participantRepo.Create(ctx, participant); err != nil {
		if errors.Is(err, domain.ErrParticipantExists) {
			return nil, err
		}
		return nil, fmt.Errorf("create participant: %w", err)
	}
	if err := s.statusLog.AppendArrival(ctx, name); err != nil {
		s.log.Warn("Failed to announce arrival", "name", name, "err", err)
	}
	return participant, nil
}

func (s *ParticipantService) List(ctx context.Context) ([]entities.Participant, error) {
	participants, err := s.participantRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("find participants: %w", err)
	}
	return participants, nil
}

func (s *ParticipantService) Heartbeat(ctx context.Context, name string) error {
	if err := s.participantRepo.Touch(ctx, name, s.now()); err != nil {
		if errors.Is(err, domain.ErrParticipantNotFound) {
			return err
		}
		return fmt.Errorf("touch participant: %w", err)
	}
	return nil
}
