package scanner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pricebeacon/monitor/internal/detector"
	"github.com/pricebeacon/monitor/internal/fetcher"
	"github.com/pricebeacon/monitor/internal/platform/models"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"golang.org/x/sync/semaphore"
	"golang.org/x/sync/singleflight"
)

//go:generate mockery --name Fetcher --filename fetcher.go
//go:generate mockery --name Extractor --filename extractor.go
//go:generate mockery --name Storage --filename storage.go

// Fetcher retrieves raw page content.
type Fetcher interface {
	Fetch(ctx context.Context, url string, ops ...fetcher.CallOption) (*fetcher.FetchResult, error)
}

// Extractor parses page content into product info.
type Extractor interface {
	Extract(pageHTML, sourceURL string) (*models.ExtractedProductInfo, error)
}

// Storage is tracked URLs storage.
type Storage interface {
	// GetURL returns a tracked URL with its price history.
	GetURL(ctx context.Context, urlID string) (*models.TrackedURL, error)
	// UpdateURL persists a scan outcome atomically per URL.
	UpdateURL(ctx context.Context, url models.TrackedURL) error
}

// Clock provides times.
type Clock interface {
	// Now returns current UTC time.
	Now() time.Time
}

// Option is custom configuration of Scanner.
type Option func(s *Scanner)

// Scanner runs the fetch, extract and merge pipeline for single tracked URLs.
//
// Concurrent scans of the same URL coalesce into one pipeline run, so no two
// merges for one URL ever interleave. Scans of distinct URLs share one
// concurrency limit protecting both local resources and target sites.
type Scanner struct {
	fetcher   Fetcher
	extractor Extractor
	storage   Storage
	clock     Clock
	limit     *semaphore.Weighted
	inflight  singleflight.Group
	logger    *zerolog.Logger
}

// NewScanner returns new Scanner running at most maxConcurrent pipelines at once.
func NewScanner(
	fetcher Fetcher,
	extractor Extractor,
	storage Storage,
	maxConcurrent int64,
	logger *zerolog.Logger,
	ops ...Option,
) *Scanner {
	scn := &Scanner{
		fetcher:   fetcher,
		extractor: extractor,
		storage:   storage,
		clock:     systemClock{},
		limit:     semaphore.NewWeighted(maxConcurrent),
		logger:    logger,
	}

	for _, op := range ops {
		op(scn)
	}

	return scn
}

// Scan fetches pageURL, extracts product info and merges it into the tracked
// URL's persisted state.
//
// A failed fetch or extraction is a normal outcome reported inside
// models.ScanResult, it marks the URL status as Error and preserves
// last-known-good price data. The returned error is non-nil only for internal
// faults (storage access), which callers surface as 500-class failures.
func (s *Scanner) Scan(ctx context.Context, urlID, pageURL string) (models.ScanResult, error) {
	result, err, _ := s.inflight.Do(urlID, func() (any, error) {
		return s.scan(ctx, urlID, pageURL)
	})
	if err != nil {
		return models.ScanResult{}, err
	}

	return result.(models.ScanResult), nil
}

func (s *Scanner) scan(ctx context.Context, urlID, pageURL string) (models.ScanResult, error) {
	if err := s.limit.Acquire(ctx, 1); err != nil {
		return models.ScanResult{}, fmt.Errorf("can't acquire scan slot: %w", err)
	}
	defer s.limit.Release(1)

	scanTime := s.clock.Now()

	current, err := s.storage.GetURL(ctx, urlID)
	if err != nil {
		return models.ScanResult{}, fmt.Errorf("can't load tracked url: %w", err)
	}

	info, httpStatus, scanErr := s.runPipeline(ctx, pageURL)
	if scanErr != nil {
		return s.finishFailed(ctx, *current, scanTime, httpStatus, scanErr)
	}

	updated := detector.Merge(*current, info, scanTime)
	updated.HTTPStatus = lo.ToPtr(httpStatus)

	if err := s.storage.UpdateURL(ctx, updated); err != nil {
		return models.ScanResult{}, fmt.Errorf("can't persist scan outcome: %w", err)
	}

	s.logger.Debug().
		Str("urlId", urlID).
		Str("url", pageURL).
		Float64("price", info.Price).
		Str("source", info.Source).
		Msg("scan finished")

	return models.ScanResult{
		Success: true,
		Data:    info,
	}, nil
}

// Probe fetches and extracts pageURL without touching storage. It serves
// one-off scans of urls nobody tracks yet.
//
// Probes share the scan concurrency limit with tracked scans.
func (s *Scanner) Probe(ctx context.Context, pageURL string) (models.ScanResult, error) {
	if err := s.limit.Acquire(ctx, 1); err != nil {
		return models.ScanResult{}, fmt.Errorf("can't acquire scan slot: %w", err)
	}
	defer s.limit.Release(1)

	info, _, scanErr := s.runPipeline(ctx, pageURL)
	if scanErr != nil {
		s.logger.Warn().
			Str("url", pageURL).
			Err(scanErr).
			Msg("probe failed")

		return models.ScanResult{
			Success: false,
			Error:   scanErr.Error(),
		}, nil
	}

	return models.ScanResult{
		Success: true,
		Data:    info,
	}, nil
}

// runPipeline runs the two pure-failure-prone stages: network fetch and
// extraction. It returns the transport status when one was received, so
// failed attempts can still record it.
func (s *Scanner) runPipeline(ctx context.Context, pageURL string) (*models.ExtractedProductInfo, int, error) {
	fetched, err := s.fetcher.Fetch(ctx, pageURL)
	if err != nil {
		httpStatus := 0
		if fetched != nil {
			httpStatus = fetched.StatusCode
		}
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, httpStatus, fmt.Errorf("scan cancelled: %w", err)
		}
		return nil, httpStatus, fmt.Errorf("can't fetch page: %w", err)
	}

	info, err := s.extractor.Extract(fetched.Body, fetched.FinalURL)
	if err != nil {
		return nil, fetched.StatusCode, fmt.Errorf("can't extract product info: %w", err)
	}

	return info, fetched.StatusCode, nil
}

// finishFailed records a failed scan attempt without touching last known
// price data and reports the failure as a non-exceptional scan result.
func (s *Scanner) finishFailed(
	ctx context.Context,
	current models.TrackedURL,
	scanTime time.Time,
	httpStatus int,
	scanErr error,
) (models.ScanResult, error) {
	failed := detector.MarkFailed(current, scanTime)
	if httpStatus != 0 {
		failed.HTTPStatus = lo.ToPtr(httpStatus)
	}

	// the failure may be the scan's own context expiring, so the Error
	// status must be persisted even when ctx is already cancelled.
	if err := s.storage.UpdateURL(context.WithoutCancel(ctx), failed); err != nil {
		return models.ScanResult{}, fmt.Errorf("can't persist failed scan outcome: %w", err)
	}

	s.logger.Warn().
		Str("urlId", current.ID).
		Str("url", current.URL).
		Err(scanErr).
		Msg("scan failed")

	return models.ScanResult{
		Success: false,
		Error:   scanErr.Error(),
	}, nil
}

// WithClock sets Scanner's custom Clock.
func WithClock(c Clock) Option {
	return func(s *Scanner) {
		s.clock = c
	}
}
