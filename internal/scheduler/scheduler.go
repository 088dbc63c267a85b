package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/pricebeacon/monitor/internal/monitoring"
	"github.com/pricebeacon/monitor/internal/platform"
	"github.com/pricebeacon/monitor/internal/platform/models"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

//go:generate mockery --name Scanner --filename scanner.go
//go:generate mockery --name Storage --filename storage.go

// Scanner runs the fetch, extract and merge pipeline for one tracked URL.
type Scanner interface {
	Scan(ctx context.Context, urlID, url string) (models.ScanResult, error)
}

// Storage lists tracked URLs due for scanning.
type Storage interface {
	// ListDueURLs returns URLs due for a scan at provided time.
	// Paused URLs are excluded.
	ListDueURLs(ctx context.Context, now time.Time) ([]models.TrackedURL, error)
}

// Clock provides times.
type Clock interface {
	// Now returns current UTC time.
	Now() time.Time
}

// Option is custom configuration of Scheduler.
type Option func(s *Scheduler)

// Default scheduler configuration.
const (
	DefaultCooldown    = 15 * time.Minute
	DefaultBulkTimeout = 5 * time.Minute
	DefaultWorkers     = 4
)

// Scheduler decides when tracked URLs are re-scanned.
//
// Bulk scan triggers share a process-wide cooldown window: a trigger inside
// the window is rejected, not queued. The last-trigger timestamp starts empty
// and resets on process restart. Manual single-URL scans bypass the cooldown
// but run through the same pipeline and concurrency limits.
type Scheduler struct {
	scanner Scanner
	storage Storage
	clock   Clock
	metrics *monitoring.Metrics
	logger  *zerolog.Logger

	cooldown    time.Duration
	bulkTimeout time.Duration
	workers     int

	mu            sync.Mutex
	lastTriggerAt time.Time
}

// NewScheduler returns new Scheduler.
func NewScheduler(
	scanner Scanner,
	storage Storage,
	metrics *monitoring.Metrics,
	logger *zerolog.Logger,
	ops ...Option,
) *Scheduler {
	sch := &Scheduler{
		scanner:     scanner,
		storage:     storage,
		clock:       systemClock{},
		metrics:     metrics,
		logger:      logger,
		cooldown:    DefaultCooldown,
		bulkTimeout: DefaultBulkTimeout,
		workers:     DefaultWorkers,
	}

	for _, op := range ops {
		op(sch)
	}

	return sch
}

// TriggerScan runs one bulk scan cycle over all due URLs.
// It returns platform.ErrCooldownActive when triggered inside the cooldown
// window since the previous trigger.
func (s *Scheduler) TriggerScan(ctx context.Context) error {
	now := s.clock.Now()
	if err := s.reserve(now); err != nil {
		return err
	}

	return s.scanDue(ctx, now)
}

// TriggerScanAsync reserves the cooldown window and runs the bulk cycle in
// the background, detached from the caller's cancellation. It returns
// platform.ErrCooldownActive when triggered inside the cooldown window.
func (s *Scheduler) TriggerScanAsync(ctx context.Context) error {
	now := s.clock.Now()
	if err := s.reserve(now); err != nil {
		return err
	}

	go func() {
		if err := s.scanDue(context.WithoutCancel(ctx), now); err != nil {
			s.logger.Error().Err(err).Msg("can't run bulk scan")
		}
	}()

	return nil
}

func (s *Scheduler) reserve(now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.lastTriggerAt.IsZero() && now.Sub(s.lastTriggerAt) < s.cooldown {
		return platform.ErrCooldownActive
	}
	s.lastTriggerAt = now

	return nil
}

// ScanNow scans a single URL on demand, bypassing the bulk cooldown.
func (s *Scheduler) ScanNow(ctx context.Context, urlID, url string) (models.ScanResult, error) {
	started := s.clock.Now()
	result, err := s.scanner.Scan(ctx, urlID, url)
	s.observe(result, err, s.clock.Now().Sub(started))

	return result, err
}

// Run triggers bulk scans on every tick until ctx is cancelled.
// Triggers rejected by the cooldown are a no-op.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	s.logger.Info().
		Dur("interval", interval).
		Dur("cooldown", s.cooldown).
		Msg("scheduler started")

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("scheduler stopped")
			return
		case <-ticker.C:
			err := s.TriggerScan(ctx)
			if errors.Is(err, platform.ErrCooldownActive) {
				s.logger.Debug().Msg("bulk scan skipped, cooldown active")
				continue
			}
			if err != nil {
				s.logger.Error().Err(err).Msg("can't run bulk scan")
			}
		}
	}
}

func (s *Scheduler) scanDue(ctx context.Context, now time.Time) error {
	due, err := s.storage.ListDueURLs(ctx, now)
	if err != nil {
		return fmt.Errorf("can't list due urls: %w", err)
	}

	if len(due) == 0 {
		return nil
	}

	s.logger.Info().Int("urls", len(due)).Msg("bulk scan started")

	bulkCtx, cancel := context.WithTimeout(ctx, s.bulkTimeout)
	defer cancel()

	grp := errgroup.Group{}
	grp.SetLimit(s.workers)

	for _, url := range due {
		url := url
		grp.Go(func() error {
			started := s.clock.Now()
			result, err := s.scanner.Scan(bulkCtx, url.ID, url.URL)
			s.observe(result, err, s.clock.Now().Sub(started))

			// one URL's fault must not abort the whole cycle.
			if err != nil {
				s.logger.Error().
					Str("urlId", url.ID).
					Str("url", url.URL).
					Err(err).
					Msg("can't scan url")
			}

			return nil
		})
	}

	return grp.Wait()
}

func (s *Scheduler) observe(result models.ScanResult, err error, duration time.Duration) {
	switch {
	case err != nil:
		s.metrics.ObserveScan(monitoring.ResultFault, duration)
	case !result.Success:
		s.metrics.ObserveScan(monitoring.ResultFailed, duration)
	default:
		s.metrics.ObserveScan(monitoring.ResultOk, duration)
	}
}

// WithClock sets Scheduler's custom Clock.
func WithClock(c Clock) Option {
	return func(s *Scheduler) {
		s.clock = c
	}
}

// WithCooldown sets minimum interval between bulk scan triggers.
func WithCooldown(cooldown time.Duration) Option {
	return func(s *Scheduler) {
		s.cooldown = cooldown
	}
}

// WithBulkTimeout sets overall deadline of one bulk scan cycle.
func WithBulkTimeout(timeout time.Duration) Option {
	return func(s *Scheduler) {
		s.bulkTimeout = timeout
	}
}

// WithWorkers sets number of concurrent scan dispatches per bulk cycle.
func WithWorkers(workers int) Option {
	return func(s *Scheduler) {
		s.workers = workers
	}
}
