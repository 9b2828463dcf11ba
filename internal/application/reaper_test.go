package application

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"batepapo/internal/domain/entities"
	"batepapo/internal/mocks"
)

const testThreshold = 10 * time.Second

func newReaper(t *testing.T) (*Reaper, *mocks.MockParticipantRepository, *mocks.MockStatusLog) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockParticipantRepository(ctrl)
	statusLog := mocks.NewMockStatusLog(ctrl)
	r := NewReaper(repo, statusLog, time.Hour, testThreshold, slog.Default())
	r.now = func() time.Time { return fixedNow }
	return r, repo, statusLog
}

func TestReaper_Sweep(t *testing.T) {
	cutoff := fixedNow.Add(-testThreshold)

	t.Run("should evict stale participants and announce their departure", func(t *testing.T) {
		req := require.New(t)
		r, repo, statusLog := newReaper(t)
		repo.EXPECT().FindAll(gomock.Any()).Return([]entities.Participant{
			{Name: "Ana", LastStatus: fixedNow.Add(-time.Minute)},
			{Name: "Bob", LastStatus: fixedNow.Add(-time.Second)},
			{Name: "Carol", LastStatus: fixedNow.Add(-11 * time.Second)},
		}, nil)
		gomock.InOrder(
			repo.EXPECT().DeleteInactive(gomock.Any(), "Ana", cutoff).Return(true, nil),
			statusLog.EXPECT().AppendDeparture(gomock.Any(), "Ana").Return(nil),
		)
		gomock.InOrder(
			repo.EXPECT().DeleteInactive(gomock.Any(), "Carol", cutoff).Return(true, nil),
			statusLog.EXPECT().AppendDeparture(gomock.Any(), "Carol").Return(nil),
		)

		evicted, err := r.Sweep(context.Background())

		req.NoError(err)
		req.Equal(2, evicted)
	})

	t.Run("should keep participants exactly at the threshold", func(t *testing.T) {
		req := require.New(t)
		r, repo, _ := newReaper(t)
		repo.EXPECT().FindAll(gomock.Any()).Return([]entities.Participant{
			{Name: "Ana", LastStatus: cutoff},
		}, nil)
		repo.EXPECT().DeleteInactive(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		evicted, err := r.Sweep(context.Background())
		req.NoError(err)
		req.Zero(evicted)
	})

	t.Run("should not announce a participant who heartbeated meanwhile", func(t *testing.T) {
		req := require.New(t)
		r, repo, statusLog := newReaper(t)
		repo.EXPECT().FindAll(gomock.Any()).Return([]entities.Participant{
			{Name: "Ana", LastStatus: fixedNow.Add(-time.Minute)},
		}, nil)
		repo.EXPECT().DeleteInactive(gomock.Any(), "Ana", cutoff).Return(false, nil)
		statusLog.EXPECT().AppendDeparture(gomock.Any(), gomock.Any()).Times(0)

		evicted, err := r.Sweep(context.Background())
		req.NoError(err)
		req.Zero(evicted)
	})

	t.Run("should continue past per-participant failures", func(t *testing.T) {
		req := require.New(t)
		r, repo, statusLog := newReaper(t)
		repo.EXPECT().FindAll(gomock.Any()).Return([]entities.Participant{
			{Name: "Ana", LastStatus: fixedNow.Add(-time.Minute)},
			{Name: "Bob", LastStatus: fixedNow.Add(-time.Minute)},
		}, nil)
		repo.EXPECT().DeleteInactive(gomock.Any(), "Ana", cutoff).Return(false, errors.New("timeout"))
		repo.EXPECT().DeleteInactive(gomock.Any(), "Bob", cutoff).Return(true, nil)
		statusLog.EXPECT().AppendDeparture(gomock.Any(), "Bob").Return(errors.New("timeout"))

		evicted, err := r.Sweep(context.Background())
		req.NoError(err)
		req.Equal(1, evicted)
	})

	t.Run("should report a failed scan", func(t *testing.T) {
		req := require.New(t)
		r, repo, _ := newReaper(t)
		repo.EXPECT().FindAll(gomock.Any()).Return(nil, errors.New("connection refused"))

		_, err := r.Sweep(context.Background())
		req.ErrorContains(err, "connection refused")
	})
}

func TestReaper_Run(t *testing.T) {
	t.Run("should sweep on each tick and survive failures until cancelled", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockParticipantRepository(ctrl)
		statusLog := mocks.NewMockStatusLog(ctrl)
		r := NewReaper(repo, statusLog, 5*time.Millisecond, testThreshold, slog.Default())

		ctx, cancel := context.WithCancel(context.Background())
		swept := make(chan struct{})
		gomock.InOrder(
			repo.EXPECT().FindAll(gomock.Any()).Return(nil, errors.New("connection refused")),
			repo.EXPECT().FindAll(gomock.Any()).DoAndReturn(func(context.Context) ([]entities.Participant, error) {
				close(swept)
				return nil, nil
			}),
			repo.EXPECT().FindAll(gomock.Any()).Return(nil, nil).AnyTimes(),
		)

		done := make(chan error, 1)
		go func() { done <- r.Run(ctx) }()

		select {
		case <-swept:
		case <-time.After(2 * time.Second):
			req.Fail("reaper did not tick twice")
		}
		cancel()

		select {
		case err := <-done:
			req.NoError(err)
		case <-time.After(2 * time.Second):
			req.Fail("reaper did not stop")
		}
	})
}
