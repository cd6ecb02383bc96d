package sitemap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/carmegar/blogpage/metal/env"
	"github.com/carmegar/blogpage/pkg/cache"
)

var scheduleParser = cron.NewParser(
	cron.SecondOptional |
		cron.Minute |
		cron.Hour |
		cron.Dom |
		cron.Month |
		cron.Dow |
		cron.Descriptor,
)

// Scheduler regenerates the sitemap on a cron cadence. A TTL guard absorbs
// overlapping triggers so external "refresh now" calls cannot stampede the
// store.
type Scheduler struct {
	cron        *cron.Cron
	env         *env.Environment
	generator   *Generator
	logger      *slog.Logger
	runGuard    *cache.TTLCache
	minInterval time.Duration
	jobTimeout  time.Duration
	started     bool
	startStopMu sync.Mutex
	entryID     cron.EntryID
}

type Option func(*Scheduler)

// WithLogger overrides the scheduler logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Scheduler) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithJobTimeout configures a timeout applied to each generation run.
func WithJobTimeout(timeout time.Duration) Option {
	return func(s *Scheduler) {
		if timeout > 0 {
			s.jobTimeout = timeout
		}
	}
}

// WithMinInterval sets the window within which repeated runs are skipped.
func WithMinInterval(interval time.Duration) Option {
	return func(s *Scheduler) {
		if interval > 0 {
			s.minInterval = interval
		}
	}
}

// WithCron allows injecting a custom cron engine.
func WithCron(c *cron.Cron) Option {
	return func(s *Scheduler) {
		if c != nil {
			s.cron = c
		}
	}
}

func NewScheduler(environment *env.Environment, generator *Generator, opts ...Option) (*Scheduler, error) {
	if environment == nil {
		return nil, errors.New("environment cannot be nil")
	}

	if generator == nil {
		return nil, errors.New("generator cannot be nil")
	}

	if _, err := scheduleParser.Parse(environment.Sitemap.Schedule); err != nil {
		return nil, fmt.Errorf("invalid cron expression: %w", err)
	}

	scheduler := &Scheduler{
		cron:        cron.New(cron.WithParser(scheduleParser)),
		env:         environment,
		generator:   generator,
		logger:      slog.Default(),
		runGuard:    cache.NewTTLCache(),
		minInterval: time.Minute,
		jobTimeout:  2 * time.Minute,
	}

	for _, opt := range opts {
		opt(scheduler)
	}

	if scheduler.cron == nil {
		scheduler.cron = cron.New(cron.WithParser(scheduleParser))
	}

	return scheduler, nil
}

// Start schedules the generation routine per the configured cron expression.
func (s *Scheduler) Start(ctx context.Context) error {
	if s == nil {
		return errors.New("scheduler is nil")
	}

	s.startStopMu.Lock()
	defer s.startStopMu.Unlock()

	if s.started {
		return errors.New("scheduler already started")
	}

	job := func() {
		jobCtx := ctx
		if jobCtx == nil {
			jobCtx = context.Background()
		}

		if s.jobTimeout > 0 {
			var cancel context.CancelFunc
			jobCtx, cancel = context.WithTimeout(jobCtx, s.jobTimeout)
			defer cancel()
		}

		if err := s.Run(jobCtx); err != nil {
			s.logger.Error("sitemap generation failed", "error", err)
		}
	}

	entryID, err := s.cron.AddFunc(s.env.Sitemap.Schedule, job)
	if err != nil {
		return fmt.Errorf("schedule sitemap job: %w", err)
	}

	s.entryID = entryID
	s.cron.Start()
	s.started = true

	if ctx != nil {
		go func() {
			<-ctx.Done()
			s.Stop()
		}()
	}

	return nil
}

// Stop halts the scheduler and waits for a running job to finish.
func (s *Scheduler) Stop() {
	if s == nil {
		return
	}

	s.startStopMu.Lock()
	if !s.started {
		s.startStopMu.Unlock()
		return
	}

	ctx := s.cron.Stop()
	s.started = false
	s.startStopMu.Unlock()

	<-ctx.Done()
}

// Run regenerates the sitemap immediately unless one was produced within
// the minimum interval.
func (s *Scheduler) Run(ctx context.Context) error {
	if s == nil {
		return errors.New("scheduler is nil")
	}

	if ctx == nil {
		ctx = context.Background()
	}

	if s.runGuard.UseOnce("sitemap.run", s.minInterval) {
		s.logger.Info("sitemap generation skipped", "reason", "ran recently")

		return nil
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	if err := s.generator.Write(s.env.Sitemap.Dir); err != nil {
		return err
	}

	s.logger.Info("sitemap generated", "dir", s.env.Sitemap.Dir)

	return nil
}
