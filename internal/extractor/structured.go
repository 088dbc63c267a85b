package extractor

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pricebeacon/monitor/internal/platform/models"
)

// structuredConfidence is declared confidence of the structured data strategy.
const structuredConfidence = 0.95

// Structured extracts product info from JSON-LD Product markup embedded in
// the page. It is the highest-confidence strategy.
type Structured struct{}

// Name returns strategy name.
func (Structured) Name() string { return models.SourceStructured }

// Extract looks for JSON-LD scripts with a Product object, including
// documents nesting products inside @graph arrays. Malformed scripts are
// skipped, so a parse fault in one script never aborts the whole extraction.
func (s Structured) Extract(pageHTML, _ string) (*models.ExtractedProductInfo, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(pageHTML))
	if err != nil {
		return nil, err
	}

	var info *models.ExtractedProductInfo
	doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		product, ok := findProduct([]byte(sel.Text()))
		if !ok {
			return true
		}

		candidate, ok := toProductInfo(product)
		if !ok {
			return true
		}

		info = candidate

		return false
	})

	if info == nil {
		return nil, ErrNoStructuredDataFound
	}

	return info, nil
}

// findProduct returns the first Product object found in a JSON-LD document.
// The document root may be a single object, an array of objects or an object
// with products nested in @graph.
func findProduct(raw []byte) (*ldDocument, bool) {
	var docs []ldDocument

	var doc ldDocument
	if err := json.Unmarshal(raw, &doc); err == nil {
		docs = []ldDocument{doc}
	} else if err := json.Unmarshal(raw, &docs); err != nil {
		return nil, false
	}

	for ix := range docs {
		if docs[ix].Type.contains("Product") {
			return &docs[ix], true
		}
		for gx := range docs[ix].Graph {
			if docs[ix].Graph[gx].Type.contains("Product") {
				return &docs[ix].Graph[gx], true
			}
		}
	}

	return nil, false
}

// toProductInfo converts a JSON-LD Product into product info.
// It fails when the first offer has no valid numeric price or no currency.
func toProductInfo(product *ldDocument) (*models.ExtractedProductInfo, bool) {
	if len(product.Offers) == 0 {
		return nil, false
	}

	offer := product.Offers[0]
	price, ok := offer.Price.value()
	if !ok || offer.PriceCurrency == "" {
		return nil, false
	}

	title := product.Name
	if title == "" {
		title = "Untitled"
	}

	stockState := models.StockOutOfStock
	if strings.Contains(offer.Availability, "InStock") {
		stockState = models.StockInStock
	}

	return &models.ExtractedProductInfo{
		Title:      title,
		Price:      price,
		Currency:   CurrencySymbol(offer.PriceCurrency),
		StockState: stockState,
		ImageURL:   string(product.Image),
		Confidence: structuredConfidence,
		Source:     models.SourceStructured,
	}, true
}

// ldDocument is model for JSON-LD documents and Product objects.
type ldDocument struct {
	Type  ldTypes      `json:"@type"`
	Graph []ldDocument `json:"@graph"`

	Name   string   `json:"name"`
	Image  ldString `json:"image"`
	Offers ldOffers `json:"offers"`
}

// ldOffer is model for JSON-LD Offer objects.
type ldOffer struct {
	Price         ldNumber `json:"price"`
	PriceCurrency string   `json:"priceCurrency"`
	Availability  string   `json:"availability"`
}

// ldTypes holds "@type" values, which may be a single string or an array.
type ldTypes []string

func (t *ldTypes) UnmarshalJSON(raw []byte) error {
	var single string
	if err := json.Unmarshal(raw, &single); err == nil {
		*t = ldTypes{single}
		return nil
	}

	var many []string
	if err := json.Unmarshal(raw, &many); err != nil {
		// unexpected shape is not an error, the document just has no usable type.
		*t = nil
		return nil
	}
	*t = ldTypes(many)

	return nil
}

func (t ldTypes) contains(typeName string) bool {
	for _, name := range t {
		if name == typeName {
			return true
		}
	}

	return false
}

// ldOffers holds "offers" values, which may be a single object or an array.
type ldOffers []ldOffer

func (o *ldOffers) UnmarshalJSON(raw []byte) error {
	var single ldOffer
	if err := json.Unmarshal(raw, &single); err == nil {
		*o = ldOffers{single}
		return nil
	}

	var many []ldOffer
	if err := json.Unmarshal(raw, &many); err != nil {
		*o = nil
		return nil
	}
	*o = ldOffers(many)

	return nil
}

// ldNumber holds numeric values serialized either as JSON numbers or strings.
type ldNumber string

func (n *ldNumber) UnmarshalJSON(raw []byte) error {
	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		*n = ldNumber(asString)
		return nil
	}

	var asNumber json.Number
	if err := json.Unmarshal(raw, &asNumber); err != nil {
		*n = ""
		return nil
	}
	*n = ldNumber(asNumber.String())

	return nil
}

func (n ldNumber) value() (float64, bool) {
	value, err := strconv.ParseFloat(strings.TrimSpace(string(n)), 64)
	if err != nil {
		return 0, false
	}

	return value, true
}

// ldString holds string values which may also be serialized as an array,
// keeping the first element then.
type ldString string

func (s *ldString) UnmarshalJSON(raw []byte) error {
	var single string
	if err := json.Unmarshal(raw, &single); err == nil {
		*s = ldString(single)
		return nil
	}

	var many []string
	if err := json.Unmarshal(raw, &many); err != nil || len(many) == 0 {
		*s = ""
		return nil
	}
	*s = ldString(many[0])

	return nil
}
