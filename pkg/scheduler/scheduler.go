// Package scheduler triggers timeline update cycles on a cron schedule.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/robfig/cron/v3"

	"github.com/umputun/politrend/pkg/domain"
)

//go:generate moq -out mocks/updater.go -pkg mocks -skip-ensure -fmt goimports . Updater

// Updater runs a single update cycle
type Updater interface {
	Update(ctx context.Context) (domain.UpdateSummary, error)
}

// Config holds scheduler configuration
type Config struct {
	Spec         string        // cron spec or descriptor, e.g. "*/15 * * * *" or "@every 15m"
	Timezone     string        // location for cron specs, UTC if empty
	RunOnStart   bool          // run a cycle right after start
	CycleTimeout time.Duration // upper bound for a single cycle
}

// Scheduler runs update cycles periodically. A failed cycle is logged and never stops the schedule.
type Scheduler struct {
	updater  Updater
	cron     *cron.Cron
	schedule cron.Schedule
	cfg      Config

	wg     sync.WaitGroup
	cancel context.CancelFunc
}

// New creates a scheduler, spec and timezone are validated here
func New(updater Updater, cfg Config) (*Scheduler, error) {
	if cfg.Spec == "" {
		cfg.Spec = "@every 15m"
	}
	if cfg.Timezone == "" {
		cfg.Timezone = "UTC"
	}
	if cfg.CycleTimeout == 0 {
		cfg.CycleTimeout = 5 * time.Minute
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %s: %w", cfg.Timezone, err)
	}
	schedule, err := cron.ParseStandard(cfg.Spec)
	if err != nil {
		return nil, fmt.Errorf("invalid schedule %q: %w", cfg.Spec, err)
	}

	logger := cron.PrintfLogger(cronLogger{})
	c := cron.New(cron.WithLocation(loc), cron.WithLogger(logger),
		cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)))

	return &Scheduler{updater: updater, cron: c, schedule: schedule, cfg: cfg}, nil
}

// Start begins scheduled updates
func (s *Scheduler) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)

	s.cron.Schedule(s.schedule, cron.FuncJob(func() { s.runCycle(ctx) }))
	s.cron.Start()

	if s.cfg.RunOnStart {
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			defer func() {
				if r := recover(); r != nil {
					lgr.Printf("[ERROR] initial update panicked: %v", r)
				}
			}()
			s.runCycle(ctx)
		}()
	}

	lgr.Printf("[INFO] scheduler started with schedule %q (%s), next run at %s",
		s.cfg.Spec, s.cfg.Timezone, s.schedule.Next(time.Now()).Format(time.RFC3339))
}

// Stop cancels running cycles and waits for them to finish
func (s *Scheduler) Stop() {
	lgr.Printf("[INFO] stopping scheduler...")
	if s.cancel != nil {
		s.cancel()
	}
	<-s.cron.Stop().Done()
	s.wg.Wait()
	lgr.Printf("[INFO] scheduler stopped")
}

// runCycle executes one update, errors are logged only
func (s *Scheduler) runCycle(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, s.cfg.CycleTimeout)
	defer cancel()

	summary, err := s.updater.Update(ctx)
	if err != nil {
		lgr.Printf("[ERROR] scheduled update failed: %v", err)
		return
	}
	lgr.Printf("[DEBUG] scheduled update finished in %v", summary.Duration)
}

// cronLogger routes cron's internal messages to lgr
type cronLogger struct{}

func (cronLogger) Printf(format string, args ...any) {
	lgr.Printf("[DEBUG] cron: "+format, args...)
}
