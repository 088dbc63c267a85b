package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/pricebeacon/monitor/internal/platform/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

//go:generate mockery --name Prober --filename prober.go
//go:generate mockery --name Scheduler --filename scheduler.go
//go:generate mockery --name Storage --filename storage.go

// Prober scans a url without persisting anything.
type Prober interface {
	Probe(ctx context.Context, url string) (models.ScanResult, error)
}

// Scheduler triggers scans of tracked urls.
type Scheduler interface {
	// TriggerScanAsync starts a bulk scan cycle in the background.
	// It returns platform.ErrCooldownActive inside the cooldown window.
	TriggerScanAsync(ctx context.Context) error
	// ScanNow scans single tracked url bypassing the bulk cooldown.
	ScanNow(ctx context.Context, urlID, url string) (models.ScanResult, error)
}

// Storage is tracked urls storage.
type Storage interface {
	GetURL(ctx context.Context, urlID string) (*models.TrackedURL, error)
	ImportURLs(ctx context.Context, projectID string, urls []string) ([]models.TrackedURL, error)
	SetPaused(ctx context.Context, urlID string, paused bool) error
	ListProjects(ctx context.Context) ([]models.Project, error)
	ListProjectURLs(ctx context.Context, projectID string) ([]models.TrackedURL, error)
}

// Server is the monitor's HTTP API.
type Server struct {
	prober    Prober
	scheduler Scheduler
	storage   Storage
	gatherer  prometheus.Gatherer
	stats     HTTPStats
	logger    *zerolog.Logger

	httpServer *http.Server
}

// HTTPStats records handled http requests.
type HTTPStats interface {
	IncHTTPRequest(path string, status int)
}

// NewServer returns new Server listening on addr.
func NewServer(
	addr string,
	prober Prober,
	scheduler Scheduler,
	storage Storage,
	gatherer prometheus.Gatherer,
	stats HTTPStats,
	logger *zerolog.Logger,
) *Server {
	srv := &Server{
		prober:    prober,
		scheduler: scheduler,
		storage:   storage,
		gatherer:  gatherer,
		stats:     stats,
		logger:    logger,
	}

	srv.httpServer = &http.Server{
		Addr:              addr,
		Handler:           srv.router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	return srv
}

// Handler returns the server's root http handler.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start runs the HTTP server until Shutdown is called.
func (s *Server) Start() error {
	s.logger.Info().Str("addr", s.httpServer.Addr).Msg("http server started")

	err := s.httpServer.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}

	return err
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
