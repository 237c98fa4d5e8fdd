package scheduler

import (
	"brawlstats-sync/internal/config"
	"brawlstats-sync/internal/constants"
	"brawlstats-sync/internal/domain"
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

const (
	JobBrawlers  = "brawler-sync"
	JobRotations = "event-rotation-sync"
)

type BrawlerSyncer interface {
	ParseAll(ctx context.Context) ([]*domain.Brawler, error)
}

type RotationSyncer interface {
	ParseAll(ctx context.Context) ([]*domain.EventRotation, error)
}

// Scheduler runs the collection syncs periodically. A failed run is logged
// and the next one happens at the usual interval.
type Scheduler struct {
	cron      gocron.Scheduler
	brawlers  BrawlerSyncer
	rotations RotationSyncer
	logger    zerolog.Logger

	ctx    context.Context
	cancel context.CancelFunc
}

func New(cfg *config.Config, brawlers BrawlerSyncer, rotations RotationSyncer, logger zerolog.Logger) (*Scheduler, error) {
	cron, err := gocron.NewScheduler(gocron.WithLocation(time.UTC))
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	s := &Scheduler{
		cron:      cron,
		brawlers:  brawlers,
		rotations: rotations,
		logger:    logger.With().Str("component", "scheduler").Logger(),
		ctx:       ctx,
		cancel:    cancel,
	}

	jobs := []struct {
		name     string
		tag      string
		interval time.Duration
		run      func(ctx context.Context, logger zerolog.Logger) error
	}{
		{JobBrawlers, "brawlers", cfg.BrawlerSyncInterval, s.syncBrawlers},
		{JobRotations, "events", cfg.RotationSyncInterval, s.syncRotations},
	}
	for _, j := range jobs {
		opts := []gocron.JobOption{
			gocron.WithName(j.name),
			gocron.WithTags(j.tag),
			gocron.WithSingletonMode(gocron.LimitModeReschedule),
		}
		if cfg.SyncOnStart {
			opts = append(opts, gocron.WithStartAt(gocron.WithStartImmediately()))
		}

		run := j.run
		_, err := cron.NewJob(
			gocron.DurationJob(j.interval),
			gocron.NewTask(func() { s.runJob(run) }),
			opts...,
		)
		if err != nil {
			cancel()
			_ = cron.Shutdown()
			return nil, fmt.Errorf("failed to create %s job: %w", j.name, err)
		}
	}

	return s, nil
}

func (s *Scheduler) Start() {
	s.logger.Info().Int("jobs", len(s.cron.Jobs())).Msg("starting scheduler")
	s.cron.Start()
}

// Stop cancels running syncs and waits for the jobs to return.
func (s *Scheduler) Stop() error {
	s.logger.Info().Msg("stopping scheduler")
	s.cancel()
	return s.cron.Shutdown()
}

// RunOnce syncs brawlers and event rotations concurrently under one run id.
// Both syncs run to completion even when the other fails; the first error
// is returned.
func (s *Scheduler) RunOnce(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, constants.SyncRunTimeout)
	defer cancel()

	logger := s.runLogger()

	g := new(errgroup.Group)
	g.Go(func() error { return s.syncBrawlers(ctx, logger) })
	g.Go(func() error { return s.syncRotations(ctx, logger) })
	return g.Wait()
}

func (s *Scheduler) runJob(run func(ctx context.Context, logger zerolog.Logger) error) {
	ctx, cancel := context.WithTimeout(s.ctx, constants.SyncRunTimeout)
	defer cancel()

	// errors are already logged with the run id
	_ = run(ctx, s.runLogger())
}

func (s *Scheduler) runLogger() zerolog.Logger {
	runID, err := gonanoid.New(constants.RunIDLength)
	if err != nil {
		s.logger.Warn().Err(err).Msg("failed to generate run id")
		return s.logger
	}
	return s.logger.With().Str("run_id", runID).Logger()
}

func (s *Scheduler) syncBrawlers(ctx context.Context, logger zerolog.Logger) error {
	start := time.Now()
	brawlers, err := s.brawlers.ParseAll(ctx)
	if err != nil {
		logger.Error().Err(err).Str("job", JobBrawlers).Msg("sync failed")
		return err
	}
	logger.Info().
		Str("job", JobBrawlers).
		Int("count", len(brawlers)).
		Dur("duration", time.Since(start)).
		Msg("sync completed")
	return nil
}

func (s *Scheduler) syncRotations(ctx context.Context, logger zerolog.Logger) error {
	start := time.Now()
	rotations, err := s.rotations.ParseAll(ctx)
	if err != nil {
		logger.Error().Err(err).Str("job", JobRotations).Msg("sync failed")
		return err
	}
	logger.Info().
		Str("job", JobRotations).
		Int("count", len(rotations)).
		Dur("duration", time.Since(start)).
		Msg("sync completed")
	return nil
}
