package extractor

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pricebeacon/monitor/internal/platform/models"
)

// Declared confidence of the heuristic strategy. Selector probes are more
// trustworthy than a raw pattern match over page text.
const (
	selectorConfidence = 0.8
	patternConfidence  = 0.55
)

// priceSelectors are common price markers probed in order.
var priceSelectors = []string{
	`meta[property="product:price:amount"]`,
	`meta[property="og:price:amount"]`,
	`meta[itemprop="price"]`,
	`[itemprop="price"]`,
	`[data-price]`,
	`.price-value`,
	`.product-price`,
	`.price`,
}

// currencySelectors are common currency markers probed in order.
var currencySelectors = []string{
	`meta[property="product:price:currency"]`,
	`meta[property="og:price:currency"]`,
	`meta[itemprop="priceCurrency"]`,
	`[itemprop="priceCurrency"]`,
}

var (
	outOfStockKeywords = []string{"out of stock", "sold out", "currently unavailable"}
	inStockKeywords    = []string{"in stock", "add to basket", "add to cart", "buy now"}
)

// pricePattern matches a currency symbol followed by an amount anywhere in page text.
var pricePattern = regexp.MustCompile(`([£$€¥])\s?([0-9]+(?:[.,][0-9]+)*)`)

// Heuristic extracts product info from common DOM price/stock markers.
// It is the designed fallback for pages without structured data.
type Heuristic struct{}

// Name returns strategy name.
func (Heuristic) Name() string { return models.SourceHeuristic }

// Extract probes well-known price selectors first and falls back to a
// currency-symbol pattern over page text. It fails with ErrNoPriceMarkers
// when neither yields a parseable price.
func (h Heuristic) Extract(pageHTML, _ string) (*models.ExtractedProductInfo, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(pageHTML))
	if err != nil {
		return nil, err
	}

	price, symbol, confidence, ok := findPrice(doc)
	if !ok {
		return nil, ErrNoPriceMarkers
	}

	currency := findCurrency(doc)
	if currency == "" {
		currency = symbol
	}
	if currency == "" {
		currency = "?"
	}

	return &models.ExtractedProductInfo{
		Title:      findTitle(doc),
		Price:      price,
		Currency:   currency,
		StockState: findStockState(doc),
		ImageURL:   doc.Find(`meta[property="og:image"]`).First().AttrOr("content", ""),
		Confidence: confidence,
		Source:     models.SourceHeuristic,
	}, nil
}

// findPrice returns price with optional currency symbol found next to it and
// confidence of the probe which matched.
func findPrice(doc *goquery.Document) (float64, string, float64, bool) {
	for _, selector := range priceSelectors {
		sel := doc.Find(selector).First()
		if sel.Length() == 0 {
			continue
		}

		text := sel.AttrOr("content", "")
		if text == "" {
			text = sel.AttrOr("data-price", "")
		}
		if text == "" {
			text = sel.Text()
		}

		if price, symbol, ok := parsePriceText(text); ok {
			return price, symbol, selectorConfidence, true
		}
	}

	if match := pricePattern.FindStringSubmatch(doc.Text()); match != nil {
		if price, ok := parsePriceNumber(match[2]); ok {
			return price, match[1], patternConfidence, true
		}
	}

	return 0, "", 0, false
}

func findCurrency(doc *goquery.Document) string {
	for _, selector := range currencySelectors {
		sel := doc.Find(selector).First()
		if sel.Length() == 0 {
			continue
		}

		code := sel.AttrOr("content", "")
		if code == "" {
			code = strings.TrimSpace(sel.Text())
		}
		if code != "" {
			return CurrencySymbol(code)
		}
	}

	return ""
}

func findTitle(doc *goquery.Document) string {
	if title := doc.Find(`meta[property="og:title"]`).First().AttrOr("content", ""); title != "" {
		return title
	}
	if title := strings.TrimSpace(doc.Find("title").First().Text()); title != "" {
		return title
	}

	return "Untitled"
}

// findStockState matches stock keywords in page text. Out-of-stock markers
// win over in-stock markers since pages often render both ("notify me when
// back in stock").
func findStockState(doc *goquery.Document) models.StockState {
	text := strings.ToLower(doc.Text())

	for _, keyword := range outOfStockKeywords {
		if strings.Contains(text, keyword) {
			return models.StockOutOfStock
		}
	}
	for _, keyword := range inStockKeywords {
		if strings.Contains(text, keyword) {
			return models.StockInStock
		}
	}

	return models.StockUnknown
}

// parsePriceText extracts an amount and optional currency symbol from a
// price-like text such as "£1,049.00" or "1049.00".
func parsePriceText(text string) (float64, string, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, "", false
	}

	if match := pricePattern.FindStringSubmatch(text); match != nil {
		price, ok := parsePriceNumber(match[2])
		return price, match[1], ok
	}

	price, ok := parsePriceNumber(text)

	return price, "", ok
}

// parsePriceNumber parses an amount with optional thousands separators.
// The last "." or "," is treated as the decimal separator when it is
// followed by at most two digits, any other separator is dropped.
func parsePriceNumber(text string) (float64, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, false
	}

	lastSep := strings.LastIndexAny(text, ".,")

	var cleaned strings.Builder
	for ix, chr := range text {
		switch {
		case chr >= '0' && chr <= '9':
			cleaned.WriteRune(chr)
		case chr == '.' || chr == ',':
			if ix == lastSep && len(text)-ix-1 <= 2 {
				cleaned.WriteByte('.')
			}
		default:
			return 0, false
		}
	}

	price, err := strconv.ParseFloat(cleaned.String(), 64)
	if err != nil {
		return 0, false
	}

	return price, true
}
