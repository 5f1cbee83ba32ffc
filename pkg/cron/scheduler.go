// Package cron provides scheduled background jobs using robfig/cron.
package cron

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"

	"github.com/kashf-app/kashf/internal/domain/categorization"
)

// Scheduler manages background scheduled jobs using robfig/cron.
type Scheduler struct {
	cron     *cron.Cron
	store    *categorization.PatternStore
	schedule string
	logger   *slog.Logger
}

// NewScheduler creates a scheduler that periodically flushes the learned
// pattern store to disk. The schedule is a standard cron expression or a
// descriptor such as "@every 5m".
func NewScheduler(store *categorization.PatternStore, schedule string, logger *slog.Logger) *Scheduler {
	c := cron.New(cron.WithLogger(cron.VerbosePrintfLogger(slog.NewLogLogger(logger.Handler(), slog.LevelDebug))))

	return &Scheduler{
		cron:     c,
		store:    store,
		schedule: schedule,
		logger:   logger,
	}
}

// Start begins scheduled jobs.
func (s *Scheduler) Start() error {
	_, err := s.cron.AddFunc(s.schedule, s.flushPatterns)
	if err != nil {
		return err
	}

	s.cron.Start()
	s.logger.Info("cron scheduler started",
		slog.String("schedule", s.schedule),
		slog.Int("jobs", len(s.cron.Entries())),
	)
	return nil
}

// Stop gracefully stops all scheduled jobs. A final flush runs so patterns
// learned since the last tick are not lost.
func (s *Scheduler) Stop() context.Context {
	s.logger.Info("cron scheduler stopping")
	done := s.cron.Stop()
	s.flushPatterns()
	return done
}

// RunNow manually triggers a pattern flush (for testing/admin).
func (s *Scheduler) RunNow() {
	go s.flushPatterns()
}

func (s *Scheduler) flushPatterns() {
	if err := s.store.Flush(); err != nil {
		s.logger.Error("pattern store flush failed", slog.Any("error", err))
		return
	}
	s.logger.Debug("pattern store flushed",
		slog.Int("patterns", s.store.PatternCount()),
	)
}
