package config

import "time"

// Config holds application configuration.
type Config struct {
	DatabaseURL string `env:"DATABASE_URL"`
	HTTPAddr    string `env:"HTTP_ADDR" envDefault:":8080"`

	HTTPTimeout time.Duration `env:"HTTP_TIMEOUT" envDefault:"20s"`
	UserAgent   string        `env:"USER_AGENT" envDefault:"pricebeacon-monitor/0.1.0"`
	// UseRenderer switches page fetching to a headless browser for
	// JavaScript-rendered shops.
	UseRenderer bool `env:"USE_RENDERER" envDefault:"false"`
	// FetchRate limits outgoing page fetches per minute across all scans.
	FetchRate int `env:"FETCH_RATE_PER_MINUTE" envDefault:"60"`

	MaxConcurrentScans int64         `env:"MAX_CONCURRENT_SCANS" envDefault:"8"`
	ScanWorkers        int           `env:"SCAN_WORKERS" envDefault:"4"`
	ScanInterval       time.Duration `env:"SCAN_INTERVAL" envDefault:"1h"`
	PollInterval       time.Duration `env:"POLL_INTERVAL" envDefault:"5m"`
	ScanCooldown       time.Duration `env:"SCAN_COOLDOWN" envDefault:"15m"`
	ScanDeadline       time.Duration `env:"SCAN_DEADLINE" envDefault:"5m"`

	RabbitMQ RabbitMQ
}

// RabbitMQ holds RabbitMQ configuration.
type RabbitMQ struct {
	URL        string `env:"RABBITMQ_URL"`
	Exchange   string `env:"RABBITMQ_EXCHANGE" envDefault:"pricebeacon-ex"`
	Queue      string `env:"RABBITMQ_QUEUE" envDefault:"pricebeacon-monitor.commands"`
	RoutingKey string `env:"RABBITMQ_ROUTING_KEY" envDefault:"scan"`
}
