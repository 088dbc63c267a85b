package helpers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	pgmodels "github.com/pricebeacon/monitor/internal/platform/storage/gen/postgres/public/model"
	"github.com/pricebeacon/monitor/internal/platform/storage/storagetesting"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/stretchr/testify/require"
)

const contentType = "Content-Type"

// ProductPage renders a minimal product page carrying schema.org JSON-LD data.
func ProductPage(title string, price float64, currency, availability, imageURL string) []byte {
	page := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
<title>%s</title>
<script type="application/ld+json">
{
  "@context": "https://schema.org",
  "@type": "Product",
  "name": %q,
  "image": %q,
  "offers": {
    "@type": "Offer",
    "price": "%.2f",
    "priceCurrency": %q,
    "availability": "https://schema.org/%s"
  }
}
</script>
</head>
<body><h1>%s</h1></body>
</html>`, title, title, imageURL, price, currency, availability, title)

	return []byte(page)
}

// PrepareMockedHTTPServer is helper function for mocking http srv and client.
// Returns function for setting page to return, page number is from 0 to len(pages) inclusive.
func PrepareMockedHTTPServer(t *testing.T, pages [][]byte, statusCode int) (*httptest.Server, func(int)) {
	t.Helper()

	// handler goroutines read the index while the test switches pages
	pageToReturnIx := atomic.Int32{}

	srv := httptest.NewServer(http.HandlerFunc(func(wrt http.ResponseWriter, req *http.Request) {
		wrt.Header().Add(contentType, "text/html; charset=utf-8")
		wrt.WriteHeader(statusCode)
		_, _ = wrt.Write(pages[pageToReturnIx.Load()])
	}))

	t.Cleanup(func() {
		srv.Close()
	})

	return srv, func(i int) { pageToReturnIx.Store(int32(i)) }
}

// WaitForURLScan is blocking helper function, returns the tracked url after
// it collected at least minObservations price observations.
func WaitForURLScan(
	t *testing.T,
	queryable qrm.Queryable,
	urlID string,
	minObservations int,
) (*pgmodels.TrackedURL, []pgmodels.Observation) {
	t.Helper()

	deadline := time.After(30 * time.Second)
	for {
		select {
		case <-deadline:
			require.FailNow(t, "url wasn't scanned in time", urlID)
			return nil, nil
		case <-time.After(250 * time.Millisecond):
		}

		observations := storagetesting.GetObservationsByURLID(t, queryable, urlID)
		if len(observations) < minObservations {
			continue
		}

		return storagetesting.GetTrackedURL(t, queryable, urlID), observations
	}
}
