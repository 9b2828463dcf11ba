package storage

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"batepapo/internal/config"
	"batepapo/internal/domain/entities"
)

func TestOpen_Badger(t *testing.T) {
	req := require.New(t)
	cfg := &config.Config{StoreDriver: config.DriverBadger, BadgerPath: t.TempDir()}

	store, err := Open(context.Background(), cfg, slog.Default())
	req.NoError(err)
	defer store.Close()

	ctx := context.Background()
	req.NoError(store.Participants.Create(ctx, &entities.Participant{Name: "Ana", LastStatus: time.Now()}))
	all, err := store.Participants.FindAll(ctx)
	req.NoError(err)
	req.Len(all, 1)
	req.NoError(store.Participants.Ping(ctx))
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), &config.Config{StoreDriver: "mongo"}, slog.Default())
	require.ErrorContains(t, err, "mongo")
}

func TestOpen_PostgresFailureNamesBackend(t *testing.T) {
	cfg := &config.Config{
		StoreDriver: config.DriverPostgres,
		DatabaseURL: "postgres://127.0.0.1:1/batepapo?sslmode=disable&connect_timeout=1",
	}
	_, err := Open(context.Background(), cfg, slog.Default())
	require.ErrorContains(t, err, "postgres: migration init")
}
