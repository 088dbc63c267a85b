package handler

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/pricebeacon/monitor/internal/platform/models"
	"github.com/pricebeacon/monitor/internal/platform/rabbitmq"
	"github.com/pricebeacon/monitor/pkg/v1/commander"
	"github.com/rs/zerolog"
)

// prefetchCount limits unacknowledged deliveries per consumer. Scan
// concurrency itself is bounded by the scanner.
const prefetchCount = 8

// Scanner scans single tracked url.
type Scanner interface {
	Scan(ctx context.Context, urlID string, url string) (models.ScanResult, error)
}

// RMQHandler handles RMQ messages.
type RMQHandler struct {
	rmq     *rabbitmq.RabbitMQ
	scanner Scanner
	logger  *zerolog.Logger
}

// NewHandler returns new RMQHandler.
func NewHandler(rmq *rabbitmq.RabbitMQ, scanner Scanner, logger *zerolog.Logger) *RMQHandler {
	return &RMQHandler{
		rmq:     rmq,
		scanner: scanner,
		logger:  logger,
	}
}

// Start starts consuming and handling scan commands from RMQ.
func (h *RMQHandler) Start(ctx context.Context, queue string) error {
	errorsChan, err := h.rmq.Consume(ctx, queue, prefetchCount, func(ctx context.Context, message []byte) error {
		cmd, err := decodeMessage(message)
		if err != nil {
			return err
		}

		h.logger.Debug().
			Str("urlId", cmd.URLID).
			Str("url", cmd.URL).
			Msg("scan started")

		result, err := h.scanner.Scan(ctx, cmd.URLID, cmd.URL)
		if err != nil {
			return fmt.Errorf("scan failed: %w", err)
		}

		if !result.Success {
			h.logger.Warn().
				Str("urlId", cmd.URLID).
				Str("url", cmd.URL).
				Str("error", result.Error).
				Msg("scan unsuccessful")
			return nil
		}

		h.logger.Debug().
			Str("urlId", cmd.URLID).
			Str("url", cmd.URL).
			Msg("scan finished")

		return nil
	})
	if err != nil {
		return err
	}

	go func() {
		for err := range errorsChan {
			h.logger.Error().
				Err(err).
				Msg("can't handle message")
		}
	}()

	return nil
}

func decodeMessage(msg []byte) (*commander.ScanCommand, error) {
	var cmd commander.ScanCommand
	err := json.Unmarshal(msg, &cmd)
	if err != nil {
		return nil, fmt.Errorf("can't decode scan command: %w", err)
	}

	return &cmd, err
}
