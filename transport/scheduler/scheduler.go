package scheduler

import (
	"context"
	"fmt"
	"hotel/config"
	inventoryService "hotel/internal/domains/inventory/service"
	"time"

	"github.com/jasonlvhit/gocron"
	"github.com/rs/zerolog/log"
)

const (
	defaultSweepIntervalSeconds = 60
	sweepTimeout                = 30 * time.Second
)

// Scheduler runs housekeeping jobs. Holds already stop counting once they
// expire, the sweep only keeps the table small.
type Scheduler struct {
	cfg       *config.Config
	inventory inventoryService.Inventory
	scheduler *gocron.Scheduler
}

func New(cfg *config.Config, inventory inventoryService.Inventory) *Scheduler {
	return &Scheduler{
		cfg:       cfg,
		inventory: inventory,
		scheduler: gocron.NewScheduler(),
	}
}

func (s *Scheduler) setupSchedules() error {
	interval := s.cfg.Inventory.HoldSweepIntervalSeconds
	if interval == 0 {
		interval = defaultSweepIntervalSeconds
	}

	if err := s.scheduler.Every(interval).Seconds().Do(s.SweepHolds); err != nil {
		return fmt.Errorf("failed to schedule hold sweep: %w", err)
	}

	log.Info().Uint64("interval_seconds", interval).Msg("Schedules configured")

	return nil
}

// SweepHolds deletes expired holds once.
func (s *Scheduler) SweepHolds() {
	ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
	defer cancel()

	deleted, err := s.inventory.SweepExpiredHolds(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Scheduled hold sweep failed")

		return
	}

	log.Debug().Int64("deleted", deleted).Msg("Scheduled hold sweep finished")
}

// Run blocks until ctx is done.
func (s *Scheduler) Run(ctx context.Context) error {
	if err := s.setupSchedules(); err != nil {
		return err
	}

	stopped := s.scheduler.Start()

	log.Info().Msg("Scheduler started")

	<-ctx.Done()

	log.Info().Msg("Shutting down scheduler")

	close(stopped)
	s.scheduler.Clear()

	return nil
}
