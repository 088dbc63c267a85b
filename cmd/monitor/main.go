package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/caarlos0/env/v6"
	_ "github.com/lib/pq"
	"github.com/pricebeacon/monitor/cmd/monitor/config"
	"github.com/pricebeacon/monitor/internal/api"
	"github.com/pricebeacon/monitor/internal/extractor"
	"github.com/pricebeacon/monitor/internal/fetcher"
	"github.com/pricebeacon/monitor/internal/handler"
	"github.com/pricebeacon/monitor/internal/limiter"
	"github.com/pricebeacon/monitor/internal/monitoring"
	"github.com/pricebeacon/monitor/internal/platform/rabbitmq"
	"github.com/pricebeacon/monitor/internal/platform/storage"
	"github.com/pricebeacon/monitor/internal/scanner"
	"github.com/pricebeacon/monitor/internal/scheduler"
	"github.com/prometheus/client_golang/prometheus"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	var cfg config.Config
	if err := env.Parse(&cfg); err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't parse env variables")
	}

	amqpConnection, err := amqp.Dial(cfg.RabbitMQ.URL)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't open RabbitMQ connection")
	}

	conn, err := rabbitmq.NewRabbitMQ(amqpConnection, cfg.RabbitMQ.Exchange)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't open RabbitMQ channel")
	}

	if err := conn.DeclareQueue(cfg.RabbitMQ.Queue, cfg.RabbitMQ.RoutingKey); err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't declare RabbitMQ queue")
	}

	pgDB, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't open Postgres connection")
	}

	registry := prometheus.NewRegistry()
	metrics := monitoring.NewMetrics(registry)

	pageFetcher, closeFetcher := newPageFetcher(&cfg)
	defer closeFetcher()

	store := storage.NewPostgres(pgDB, cfg.ScanInterval)

	scn := scanner.NewScanner(
		pageFetcher,
		extractor.NewExtractor(),
		store,
		cfg.MaxConcurrentScans,
		&logger,
	)

	sch := scheduler.NewScheduler(
		scn,
		store,
		metrics,
		&logger,
		scheduler.WithCooldown(cfg.ScanCooldown),
		scheduler.WithBulkTimeout(cfg.ScanDeadline),
		scheduler.WithWorkers(cfg.ScanWorkers),
	)
	go sch.Run(ctx, cfg.PollInterval)

	han := handler.NewHandler(conn, scn, &logger)

	// start consuming and handling scan commands
	err = han.Start(ctx, cfg.RabbitMQ.Queue)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't start consuming")
	}

	srv := api.NewServer(cfg.HTTPAddr, scn, sch, store, registry, metrics, &logger)
	go func() {
		if err := srv.Start(); err != nil {
			logger.Error().
				Err(err).
				Msg("http server failed")
			cancel()
		}
	}()

	logger.Info().Msg("price monitor up and running")

	// handle graceful shutdown and context cancellation
	termChan := make(chan os.Signal, 1)
	signal.Notify(termChan, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-termChan:
		cancel()
	case <-ctx.Done():
	}

	logger.Info().Msg("graceful shutdown start")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().
			Err(err).
			Msg("can't shut down http server")
	}

	// wait for consumer to finish
	<-conn.Done()

	// close connections
	wg := sync.WaitGroup{}
	wg.Add(2)

	go func() {
		defer wg.Done()
		if err := pgDB.Close(); err != nil {
			logger.Fatal().
				Err(err).
				Msg("can't close Postgres connection")
		}
	}()

	go func() {
		defer wg.Done()
		if err := amqpConnection.Close(); err != nil {
			logger.Fatal().
				Err(err).
				Msg("can't close RabbitMQ connection")
		}
	}()

	wg.Wait()

	logger.Info().Msg("graceful shutdown successful")
}

// newPageFetcher picks the fetch implementation and returns it with its
// cleanup function.
func newPageFetcher(cfg *config.Config) (scanner.Fetcher, func()) {
	if cfg.UseRenderer {
		chrome := fetcher.NewChromeFetcher(cfg.UserAgent, cfg.HTTPTimeout)
		return chrome, chrome.Close
	}

	fetchLimiter := limiter.Multi(
		rate.NewLimiter(limiter.Per(cfg.FetchRate, time.Minute), cfg.FetchRate),
	)

	fet := fetcher.NewFetcher(
		&http.Client{Timeout: cfg.HTTPTimeout},
		cfg.UserAgent,
		fetcher.WithLimiter(fetchLimiter),
	)

	return fet, func() {}
}
