// Package scheduler re-runs the ERP synchronization whenever the last
// recorded import batch grows stale.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/stitchworks/atelier/internal/syncer"
)

type Scheduler struct {
	sync       *syncer.Service
	interval   time.Duration
	staleAfter time.Duration
	cron       *cron.Cron
}

func New(sync *syncer.Service, interval, staleAfter time.Duration) *Scheduler {
	return &Scheduler{
		sync:       sync,
		interval:   interval,
		staleAfter: staleAfter,
		cron:       cron.New(),
	}
}

// Start checks once immediately, then on every tick. It returns after
// scheduling; Stop halts the ticks.
func (s *Scheduler) Start(ctx context.Context) error {
	spec := fmt.Sprintf("@every %s", s.interval)

	if _, err := s.cron.AddFunc(spec, func() { s.check(ctx) }); err != nil {
		return fmt.Errorf("scheduling sync check: %w", err)
	}

	go s.check(ctx)
	s.cron.Start()

	return nil
}

func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

func (s *Scheduler) check(ctx context.Context) {
	overdue, err := s.sync.Overdue(ctx, s.staleAfter)
	if err != nil {
		slog.Error("failed to check last import", "error", err)
		return
	}

	if !overdue {
		return
	}

	slog.Info("last import is stale, running sync")

	imported, err := s.sync.Run(ctx, time.Now())
	if err != nil {
		slog.Error("scheduled sync failed", "error", err)
		return
	}

	slog.Info("scheduled sync finished", "imported", imported)
}
