package models

import "time"

// StockState is product availability state.
type StockState string

// Stock states.
const (
	StockInStock    StockState = "in"
	StockOutOfStock StockState = "out"
	StockUnknown    StockState = "unknown"
)

// Status is tracked URL scanning status.
type Status string

// Tracked URL statuses.
const (
	// StatusOk means the most recent scan of the URL succeeded.
	StatusOk Status = "ok"
	// StatusError means the most recent scan attempt failed.
	StatusError Status = "error"
	// StatusPending means the URL was imported but never scanned yet.
	StatusPending Status = "pending"
)

// Extraction sources.
const (
	SourceStructured = "structured"
	SourceHeuristic  = "heuristic"
	SourceAI         = "ai"
)

// Project is a group of tracked URLs belonging to one monitored competitor.
type Project struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Domain    string     `json:"domain"`
	CreatedAt time.Time  `json:"createdAt"`
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}

// TrackedURL is a single product page under continuous monitoring.
type TrackedURL struct {
	ID        string `json:"id"`
	ProjectID string `json:"projectId"`
	URL       string `json:"url"`

	Title           string        `json:"title"`
	Currency        string        `json:"currency"`
	LastPrice       float64       `json:"lastPrice"`
	WasPrice        *float64      `json:"wasPrice,omitempty"`
	PriceChange     *float64      `json:"priceChange,omitempty"`
	StockState      StockState    `json:"stockState"`
	Status          Status        `json:"status"`
	ParseConfidence *float64      `json:"parseConfidence,omitempty"`
	ThumbnailURL    *string       `json:"thumbnailUrl,omitempty"`
	HTTPStatus      *int          `json:"httpStatus,omitempty"`
	LastSeenAt      time.Time     `json:"lastSeenAt"`
	Paused          bool          `json:"paused"`
	PriceHistory    []Observation `json:"priceHistory"`
}

// Observation is one point-in-time price/stock sample of a tracked URL.
// Observations are append-only and ordered by ObservedAt ascending.
type Observation struct {
	ObservedAt time.Time  `json:"observedAt"`
	Price      float64    `json:"price"`
	StockState StockState `json:"stockState"`
}

// ExtractedProductInfo is output of one extraction attempt.
// It is transient, consumed by the change detector and never persisted as-is.
type ExtractedProductInfo struct {
	Title      string     `json:"title"`
	Price      float64    `json:"price"`
	Currency   string     `json:"currency"`
	StockState StockState `json:"stockState"`
	ImageURL   string     `json:"imageUrl"`
	Confidence float64    `json:"confidence"`
	Source     string     `json:"source"`
}

// ScanResult is the outcome envelope of one scan pipeline invocation.
type ScanResult struct {
	Success bool                  `json:"success"`
	Data    *ExtractedProductInfo `json:"data,omitempty"`
	Error   string                `json:"error,omitempty"`
}
