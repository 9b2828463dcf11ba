package application

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"batepapo/internal/domain/entities"
	"batepapo/internal/ports/input"
	"batepapo/internal/ports/output"
)

const maxConcurrentEvictions = 8

// Reaper periodically evicts participants whose last heartbeat is older than
// the inactivity threshold and announces their departure.
type Reaper struct {
	participantRepo output.ParticipantRepository
	statusLog       input.StatusLog
	interval        time.Duration
	threshold       time.Duration
	log             *slog.Logger
	now             func() time.Time
}

func NewReaper(
	participantRepo output.ParticipantRepository,
	statusLog input.StatusLog,
	interval time.Duration,
	threshold time.Duration,
	log *slog.Logger,
) *Reaper {
	return &Reaper{
		participantRepo: participantRepo,
		statusLog:       statusLog,
		interval:        interval,
		threshold:       threshold,
		log:             log,
		now:             time.Now,
	}
}

// Run sweeps every interval until ctx is cancelled. Sweep failures are
// logged and retried from scratch on the next tick.
func (r *Reaper) Run(ctx context.Context) error {
	r.log.Info("Starting inactivity reaper", "interval", r.interval, "threshold", r.threshold)
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.log.Info("Inactivity reaper stopped")
			return nil
		case <-ticker.C:
			evicted, err := r.Sweep(ctx)
			if err != nil {
				r.log.Error("Inactivity sweep failed", "err", err)
				continue
			}
			if evicted > 0 {
				r.log.Info("Inactive participants evicted", "count", evicted)
			}
		}
	}
}

// Sweep runs a single pass and returns how many participants were evicted.
// Per-participant failures are logged and do not fail the pass.
func (r *Reaper) Sweep(ctx context.Context) (int, error) {
	now := r.now()
	participants, err := r.participantRepo.FindAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("find participants: %w", err)
	}
	inactive := lo.Filter(participants, func(p entities.Participant, _ int) bool {
		return p.InactiveSince(now, r.threshold)
	})
	if len(inactive) == 0 {
		return 0, nil
	}

	cutoff := now.Add(-r.threshold)
	var evicted atomic.Int64
	var g errgroup.Group
	g.SetLimit(maxConcurrentEvictions)
	for _, p := range inactive {
		g.Go(func() error {
			r.evict(ctx, p.Name, cutoff, &evicted)
			return nil
		})
	}
	_ = g.Wait()
	return int(evicted.Load()), nil
}

// evict deletes before announcing, so a participant who heartbeated since
// the scan is left alone and gets no departure message.
func (r *Reaper) evict(ctx context.Context, name string, cutoff time.Time, evicted *atomic.Int64) {
	removed, err := r.participantRepo.DeleteInactive(ctx, name, cutoff)
	if err != nil {
		r.log.Error("Failed to evict participant", "name", name, "err", err)
		return
	}
	if !removed {
		r.log.Debug("Participant became active before eviction", "name", name)
		return
	}
	evicted.Add(1)
	if err := r.statusLog.AppendDeparture(ctx, name); err != nil {
		r.log.Error("Failed to announce departure", "name", name, "err", err)
	}
}
