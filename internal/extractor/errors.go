package extractor

import "errors"

var (
	// ErrNoStructuredDataFound is returned when no strategy could find
	// product data on the page.
	ErrNoStructuredDataFound = errors.New("no structured product data found on the page")
	// ErrNoPriceMarkers is returned by the heuristic strategy when the page
	// contains no recognizable price markers.
	ErrNoPriceMarkers = errors.New("no price markers found on the page")
)
