package extractor_test

import (
	"testing"

	"github.com/pricebeacon/monitor/internal/extractor"
	"github.com/pricebeacon/monitor/internal/platform/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sourceURL = "https://shop.example.com/products/widget"

func TestUnitExtractStructured(t *testing.T) {
	tests := map[string]struct {
		pageHTML string
		want     *models.ExtractedProductInfo
	}{
		"single product": {
			pageHTML: page(`<script type="application/ld+json">
				{"@type":"Product","name":"Widget","offers":{"price":"19.99","priceCurrency":"GBP","availability":"http://schema.org/InStock"}}
			</script>`),
			want: &models.ExtractedProductInfo{
				Title:      "Widget",
				Price:      19.99,
				Currency:   "£",
				StockState: models.StockInStock,
				Confidence: 0.95,
				Source:     models.SourceStructured,
			},
		},
		"product in graph": {
			pageHTML: page(`<script type="application/ld+json">
				{"@context":"http://schema.org","@graph":[
					{"@type":"BreadcrumbList"},
					{"@type":"Product","name":"Graph Widget","image":"https://img.example.com/w.jpg",
					 "offers":{"price":"1049.00","priceCurrency":"GBP","availability":"http://schema.org/InStock"}}
				]}
			</script>`),
			want: &models.ExtractedProductInfo{
				Title:      "Graph Widget",
				Price:      1049,
				Currency:   "£",
				StockState: models.StockInStock,
				ImageURL:   "https://img.example.com/w.jpg",
				Confidence: 0.95,
				Source:     models.SourceStructured,
			},
		},
		"offers array and numeric price": {
			pageHTML: page(`<script type="application/ld+json">
				{"@type":["Product","Thing"],"name":"Array Widget",
				 "offers":[{"price":5.5,"priceCurrency":"USD","availability":"https://schema.org/OutOfStock"}]}
			</script>`),
			want: &models.ExtractedProductInfo{
				Title:      "Array Widget",
				Price:      5.5,
				Currency:   "$",
				StockState: models.StockOutOfStock,
				Confidence: 0.95,
				Source:     models.SourceStructured,
			},
		},
		"missing availability means out of stock": {
			pageHTML: page(`<script type="application/ld+json">
				{"@type":"Product","name":"Quiet Widget","offers":{"price":"7.00","priceCurrency":"EUR"}}
			</script>`),
			want: &models.ExtractedProductInfo{
				Title:      "Quiet Widget",
				Price:      7,
				Currency:   "€",
				StockState: models.StockOutOfStock,
				Confidence: 0.95,
				Source:     models.SourceStructured,
			},
		},
		"unmapped currency passes through": {
			pageHTML: page(`<script type="application/ld+json">
				{"@type":"Product","name":"Widget","offers":{"price":"12.00","priceCurrency":"NOK","availability":"InStock"}}
			</script>`),
			want: &models.ExtractedProductInfo{
				Title:      "Widget",
				Price:      12,
				Currency:   "NOK",
				StockState: models.StockInStock,
				Confidence: 0.95,
				Source:     models.SourceStructured,
			},
		},
		"missing name defaults to Untitled": {
			pageHTML: page(`<script type="application/ld+json">
				{"@type":"Product","offers":{"price":"3.49","priceCurrency":"GBP"}}
			</script>`),
			want: &models.ExtractedProductInfo{
				Title:      "Untitled",
				Price:      3.49,
				Currency:   "£",
				StockState: models.StockOutOfStock,
				Confidence: 0.95,
				Source:     models.SourceStructured,
			},
		},
	}

	ext := extractor.NewExtractor()

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			info, err := ext.Extract(tt.pageHTML, sourceURL)

			require.NoError(t, err, "shouldn't return any error")
			assert.Equal(t, tt.want, info, "should return correct product info")
		})
	}
}

func TestUnitExtractHeuristicFallback(t *testing.T) {
	tests := map[string]struct {
		pageHTML       string
		wantPrice      float64
		wantCurrency   string
		wantStock      models.StockState
		wantConfidence float64
	}{
		"malformed json-ld falls through to selectors": {
			pageHTML: page(`<script type="application/ld+json">{not valid json</script>
				<meta property="product:price:amount" content="24.99">
				<meta property="product:price:currency" content="GBP">
				<button>Add to basket</button>`),
			wantPrice:      24.99,
			wantCurrency:   "£",
			wantStock:      models.StockInStock,
			wantConfidence: 0.8,
		},
		"product without offers falls through to selectors": {
			pageHTML: page(`<script type="application/ld+json">{"@type":"Product","name":"No Offers"}</script>
				<span class="price-value">£1,049.00</span>
				<p>Currently unavailable</p>`),
			wantPrice:      1049,
			wantCurrency:   "£",
			wantStock:      models.StockOutOfStock,
			wantConfidence: 0.8,
		},
		"pattern match over page text": {
			pageHTML: page(`<p>Our best seller is now just £89.50, while stocks last.</p>
				<button>Buy now</button>`),
			wantPrice:      89.5,
			wantCurrency:   "£",
			wantStock:      models.StockInStock,
			wantConfidence: 0.55,
		},
	}

	ext := extractor.NewExtractor()

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			info, err := ext.Extract(tt.pageHTML, sourceURL)

			require.NoError(t, err, "shouldn't return any error")

			assert.Equal(t, models.SourceHeuristic, info.Source, "should be extracted by heuristic strategy")
			assert.Equal(t, tt.wantPrice, info.Price, "should return correct price")
			assert.Equal(t, tt.wantCurrency, info.Currency, "should return correct currency")
			assert.Equal(t, tt.wantStock, info.StockState, "should return correct stock state")
			assert.Equal(t, tt.wantConfidence, info.Confidence, "should return declared strategy confidence")
		})
	}
}

func TestUnitExtractNoData(t *testing.T) {
	ext := extractor.NewExtractor()

	info, err := ext.Extract(page(`<h1>About us</h1><p>We sell things.</p>`), sourceURL)

	require.ErrorIs(t, err, extractor.ErrNoStructuredDataFound, "should fail with no-structured-data error")
	assert.Nil(t, info, "shouldn't return partial product info")
}

func TestUnitCurrencySymbol(t *testing.T) {
	assert.Equal(t, "£", extractor.CurrencySymbol("GBP"), "should map GBP to symbol")
	assert.Equal(t, "€", extractor.CurrencySymbol("eur"), "should map codes case-insensitively")
	assert.Equal(t, "NOK", extractor.CurrencySymbol("NOK"), "should pass through unmapped codes")
}

func page(body string) string {
	return `<!DOCTYPE html><html><head><title>Test Page</title></head><body>` + body + `</body></html>`
}
