package fetcher

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/chromedp/chromedp"
)

// ChromeFetcher retrieves product pages through a headless browser, so pages
// rendering their price with JavaScript still produce usable markup. It
// satisfies the same fetch contract as Fetcher and is selected via config.
type ChromeFetcher struct {
	allocCtx context.Context
	cancel   context.CancelFunc
	timeout  time.Duration
}

// NewChromeFetcher returns new ChromeFetcher with a shared browser allocator.
// Call Close when the fetcher is no longer needed.
func NewChromeFetcher(userAgent string, timeout time.Duration) *ChromeFetcher {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.UserAgent(userAgent),
	)
	allocCtx, cancel := chromedp.NewExecAllocator(context.Background(), opts...)

	return &ChromeFetcher{
		allocCtx: allocCtx,
		cancel:   cancel,
		timeout:  timeout,
	}
}

// Fetch navigates to url and returns rendered page markup.
// Per-call user agent overrides are not supported by the shared browser
// allocator, so CallOptions are accepted and ignored.
func (f *ChromeFetcher) Fetch(ctx context.Context, url string, _ ...CallOption) (*FetchResult, error) {
	taskCtx, cancelTask := chromedp.NewContext(f.allocCtx)
	defer cancelTask()

	taskCtx, cancelTimeout := context.WithTimeout(taskCtx, f.timeout)
	defer cancelTimeout()

	// propagate caller cancellation into the browser context.
	stop := context.AfterFunc(ctx, cancelTask)
	defer stop()

	var body, finalURL string
	err := chromedp.Run(taskCtx,
		chromedp.Navigate(url),
		chromedp.Location(&finalURL),
		chromedp.OuterHTML("html", &body),
	)
	if err != nil {
		return nil, fmt.Errorf("can't render page: %w", err)
	}

	// chromedp exposes no response status without listening to network
	// events; a rendered page counts as a successful fetch.
	return &FetchResult{
		Body:       body,
		StatusCode: http.StatusOK,
		FinalURL:   finalURL,
	}, nil
}

// Close releases the browser allocator.
func (f *ChromeFetcher) Close() {
	f.cancel()
}
