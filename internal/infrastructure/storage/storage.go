package storage

import (
	"context"
	"fmt"
	"log/slog"

	"batepapo/internal/config"
	"batepapo/internal/infrastructure/badgerstore"
	"batepapo/internal/infrastructure/database"
	"batepapo/internal/ports/output"
)

// Store bundles the repositories of the configured backend.
type Store struct {
	Participants output.ParticipantRepository
	Messages     output.MessageRepository
	close        func() error
}

// Open connects to the backend selected by cfg.StoreDriver. PostgreSQL is
// migrated before the pool is opened.
func Open(ctx context.Context, cfg *config.Config, log *slog.Logger) (*Store, error) {
	switch cfg.StoreDriver {
	case config.DriverPostgres:
		if err := database.RunMigrations(cfg.DatabaseURL, log); err != nil {
			return nil, fmt.Errorf("postgres: %w", err)
		}
		pool, err := database.NewPool(ctx, cfg.DatabaseURL, log)
		if err != nil {
			return nil, fmt.Errorf("postgres: %w", err)
		}
		return &Store{
			Participants: database.NewParticipantRepository(pool),
			Messages:     database.NewMessageRepository(pool),
			close: func() error {
				pool.Close()
				return nil
			},
		}, nil
	case config.DriverBadger:
		db, err := badgerstore.Open(cfg.BadgerPath, log)
		if err != nil {
			return nil, fmt.Errorf("badger: %w", err)
		}
		log.Info("BadgerDB opened", "path", cfg.BadgerPath)
		return &Store{
			Participants: db.Participants(),
			Messages:     db.Messages(),
			close:        db.Close,
		}, nil
	default:
		return nil, fmt.Errorf("storage: unknown driver %q", cfg.StoreDriver)
	}
}

func (s *Store) Close() error {
	return s.close()
}
