package badgerstore

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"batepapo/internal/domain"
	"batepapo/internal/domain/entities"
)

func openTestStore(t *testing.T, path string) *Store {
	t.Helper()
	store, err := Open(path, slog.Default())
	require.NoError(t, err)
	return store
}

func TestParticipantRepository_Create(t *testing.T) {
	req := require.New(t)
	store := openTestStore(t, t.TempDir())
	defer store.Close()
	repo := store.Participants()
	ctx := context.Background()
	now := time.Now().UTC()

	req.NoError(repo.Create(ctx, &entities.Participant{Name: "Bob", LastStatus: now}))
	req.NoError(repo.Create(ctx, &entities.Participant{Name: "Ana", LastStatus: now}))
	req.ErrorIs(repo.Create(ctx, &entities.Participant{Name: "Ana", LastStatus: now}), domain.ErrParticipantExists)

	all, err := repo.FindAll(ctx)
	req.NoError(err)
	req.Len(all, 2)
	req.Equal("Ana", all[0].Name)
	req.Equal("Bob", all[1].Name)
	req.True(now.Equal(all[0].LastStatus))
}

func TestParticipantRepository_ConcurrentCreate(t *testing.T) {
	req := require.New(t)
	store := openTestStore(t, t.TempDir())
	defer store.Close()
	repo := store.Participants()
	ctx := context.Background()

	var wg sync.WaitGroup
	results := make(chan error, 20)
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- repo.Create(ctx, &entities.Participant{Name: "Ana", LastStatus: time.Now()})
		}()
	}
	wg.Wait()
	close(results)

	wins := 0
	for err := range results {
		if err == nil {
			wins++
			continue
		}
		req.ErrorIs(err, domain.ErrParticipantExists)
	}
	req.Equal(1, wins)

	all, err := repo.FindAll(ctx)
	req.NoError(err)
	req.Len(all, 1)
}

func TestParticipantRepository_Touch(t *testing.T) {
	req := require.New(t)
	store := openTestStore(t, t.TempDir())
	defer store.Close()
	repo := store.Participants()
	ctx := context.Background()
	joined := time.Now().UTC().Add(-time.Hour)
	later := joined.Add(30 * time.Minute)

	req.NoError(repo.Create(ctx, &entities.Participant{Name: "Ana", LastStatus: joined}))
	req.NoError(repo.Touch(ctx, "Ana", later))
	req.ErrorIs(repo.Touch(ctx, "ghost", later), domain.ErrParticipantNotFound)

	all, err := repo.FindAll(ctx)
	req.NoError(err)
	req.True(later.Equal(all[0].LastStatus))
}

func TestParticipantRepository_DeleteInactive(t *testing.T) {
	req := require.New(t)
	store := openTestStore(t, t.TempDir())
	defer store.Close()
	repo := store.Participants()
	ctx := context.Background()
	now := time.Now().UTC()

	req.NoError(repo.Create(ctx, &entities.Participant{Name: "Ana", LastStatus: now}))

	removed, err := repo.DeleteInactive(ctx, "Ana", now)
	req.NoError(err)
	req.False(removed, "last status equal to the cutoff is not stale")

	removed, err = repo.DeleteInactive(ctx, "ghost", now)
	req.NoError(err)
	req.False(removed)

	removed, err = repo.DeleteInactive(ctx, "Ana", now.Add(time.Second))
	req.NoError(err)
	req.True(removed)

	all, err := repo.FindAll(ctx)
	req.NoError(err)
	req.Empty(all)
}

func TestMessageRepository_KeepsInsertionOrderAcrossReopen(t *testing.T) {
	req := require.New(t)
	dir := t.TempDir()
	ctx := context.Background()

	var appended []entities.Message
	write := func(store *Store, texts ...string) {
		for _, text := range texts {
			m := entities.Message{
				ID:   uuid.New(),
				From: "Ana",
				To:   entities.BroadcastRecipient,
				Text: text,
				Type: entities.MessageTypeMessage,
				Time: "10:00:00",
			}
			req.NoError(store.Messages().Append(ctx, &m))
			appended = append(appended, m)
		}
	}

	store := openTestStore(t, dir)
	write(store, "9", "10", "11")
	req.NoError(store.Close())

	store = openTestStore(t, dir)
	defer store.Close()
	write(store, "12")

	all, err := store.Messages().FindAll(ctx)
	req.NoError(err)
	req.Equal(appended, all)
}

func TestParticipantRepository_Ping(t *testing.T) {
	req := require.New(t)
	store := openTestStore(t, t.TempDir())
	repo := store.Participants()

	req.NoError(repo.Ping(context.Background()))
	req.NoError(store.Close())
	req.Error(repo.Ping(context.Background()))
}
