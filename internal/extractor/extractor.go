package extractor

import (
	"github.com/pricebeacon/monitor/internal/platform/models"
)

// Strategy parses page markup into product info. Implementations declare
// their own confidence, which reflects which strategy succeeded rather than
// a score computed from content.
type Strategy interface {
	// Name returns strategy name used as ExtractedProductInfo source tag.
	Name() string
	// Extract returns product info found in pageHTML or an error when the
	// strategy can't produce a result. It must never fabricate a
	// zero-confidence record.
	Extract(pageHTML, sourceURL string) (*models.ExtractedProductInfo, error)
}

// Extractor runs strategies in order until one succeeds.
type Extractor struct {
	strategies []Strategy
}

// NewExtractor returns new Extractor with provided strategies.
// Without arguments it uses the default chain: structured data first,
// markup heuristics as fallback.
func NewExtractor(strategies ...Strategy) *Extractor {
	if len(strategies) == 0 {
		strategies = []Strategy{Structured{}, Heuristic{}}
	}

	return &Extractor{strategies: strategies}
}

// Extract tries each strategy in order and returns the first successful
// result. A strategy failure, including malformed structured data, is a soft
// failure which falls through to the next strategy. When no strategy
// succeeds, Extract returns ErrNoStructuredDataFound.
func (e *Extractor) Extract(pageHTML, sourceURL string) (*models.ExtractedProductInfo, error) {
	for _, strategy := range e.strategies {
		info, err := strategy.Extract(pageHTML, sourceURL)
		if err != nil {
			continue
		}
		return info, nil
	}

	return nil, ErrNoStructuredDataFound
}
