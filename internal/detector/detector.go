package detector

import (
	"math"
	"time"

	"github.com/pricebeacon/monitor/internal/platform/models"
	"github.com/samber/lo"
)

// Merge folds a new extraction result into the last known state of a tracked
// URL. It is a pure computation: the input value is not mutated and the
// updated copy is returned.
//
// WasPrice is recorded only when the price actually changed, so re-scanning
// an unchanged page never overwrites it with an identical value. The new
// observation is always appended, history is never rewritten or truncated here.
func Merge(current models.TrackedURL, info *models.ExtractedProductInfo, scanTime time.Time) models.TrackedURL {
	updated := current

	if priceChanged(current, info.Price) {
		updated.WasPrice = lo.ToPtr(current.LastPrice)
	}

	updated.Title = info.Title
	updated.Currency = info.Currency
	updated.LastPrice = info.Price
	updated.StockState = info.StockState
	updated.ParseConfidence = lo.ToPtr(info.Confidence)
	updated.PriceChange = lo.ToPtr(PriceChange(lastKnownPrice(current), info.Price))
	if info.ImageURL != "" {
		updated.ThumbnailURL = lo.ToPtr(info.ImageURL)
	}
	updated.Status = models.StatusOk
	updated.LastSeenAt = scanTime

	updated.PriceHistory = append(copyHistory(current.PriceHistory), models.Observation{
		ObservedAt: scanTime,
		Price:      info.Price,
		StockState: info.StockState,
	})

	return updated
}

// MarkFailed records a failed scan attempt. Price, stock and history keep
// their last known good values, only status and last-seen time change.
func MarkFailed(current models.TrackedURL, scanTime time.Time) models.TrackedURL {
	updated := current
	updated.Status = models.StatusError
	updated.LastSeenAt = scanTime

	return updated
}

// PriceChange returns percentage change between prices rounded to 2 decimals.
// It is 0 when oldPrice is 0 or absent, a zero old price means "no previous
// price known" rather than a real zero.
func PriceChange(oldPrice, newPrice float64) float64 {
	if oldPrice == 0 {
		return 0
	}

	change := (newPrice - oldPrice) / oldPrice * 100

	return math.Round(change*100) / 100
}

// priceChanged reports whether the incoming price differs from the URL's last
// known price. A URL that was never successfully scanned has no price to
// compare against.
func priceChanged(current models.TrackedURL, newPrice float64) bool {
	if current.Status == models.StatusPending && len(current.PriceHistory) == 0 {
		return false
	}

	return current.LastPrice != newPrice
}

func lastKnownPrice(current models.TrackedURL) float64 {
	if current.Status == models.StatusPending && len(current.PriceHistory) == 0 {
		return 0
	}

	return current.LastPrice
}

func copyHistory(history []models.Observation) []models.Observation {
	copied := make([]models.Observation, len(history), len(history)+1)
	copy(copied, history)

	return copied
}
