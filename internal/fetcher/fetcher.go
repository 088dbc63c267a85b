package fetcher

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/pricebeacon/monitor/internal/limiter"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// FetchResult is raw content of one fetched page. The fetcher does not
// interpret content, it only reports transport-level outcome.
type FetchResult struct {
	// Body is page content normalized to UTF-8.
	Body string
	// StatusCode is the http status of the final response.
	StatusCode int
	// FinalURL is the URL resolved after following redirects. It may differ
	// from the requested URL and is used for canonicalization.
	FinalURL string
}

// Fetcher retrieves product pages via http.
// It is safe for concurrent use for distinct URLs.
type Fetcher struct {
	client    *http.Client
	userAgent string
	limiter   limiter.RateLimiter
}

// Option is custom configuration of Fetcher.
type Option func(f *Fetcher)

// CallOption is per-call configuration of a single fetch.
type CallOption func(o *callOptions)

type callOptions struct {
	userAgent string
}

// NewFetcher returns new Fetcher. Timeout handling is the client's
// responsibility, so pass a client with Timeout set.
func NewFetcher(client *http.Client, userAgent string, ops ...Option) *Fetcher {
	fet := &Fetcher{
		client:    client,
		userAgent: userAgent,
	}

	for _, op := range ops {
		op(fet)
	}

	return fet
}

// Fetch retrieves the page at url and returns its content with the transport status.
// Redirects are followed and the resolved URL is reported in FetchResult.FinalURL.
// On a non-2xx status it returns ErrStatusNotOK together with a FetchResult
// carrying the status code, so callers can record it.
func (f *Fetcher) Fetch(ctx context.Context, url string, ops ...CallOption) (*FetchResult, error) {
	callOps := callOptions{userAgent: f.userAgent}
	for _, op := range ops {
		op(&callOps)
	}

	if f.limiter != nil {
		if err := f.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("can't acquire rate limit token: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("can't build http request: %w", err)
	}

	req.Header.Add("Accept", "text/html,application/xhtml+xml")
	req.Header.Add("Accept-Language", "en-GB,en;q=0.9")
	req.Header.Add("User-Agent", callOps.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("can't get http response: %w", err)
	}
	defer resp.Body.Close()

	result := FetchResult{
		StatusCode: resp.StatusCode,
		FinalURL:   resp.Request.URL.String(),
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &result, fmt.Errorf("%w: %d", ErrStatusNotOK, resp.StatusCode)
	}

	body, err := readUTF8(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("can't read response body: %w", err)
	}
	result.Body = body

	return &result, nil
}

// readUTF8 reads page content transformed from its detected encoding to UTF-8.
func readUTF8(body io.Reader) (string, error) {
	bodyReader := bufio.NewReader(body)
	utf8Reader := transform.NewReader(bodyReader, determineEncoding(bodyReader).NewDecoder())

	content, err := io.ReadAll(utf8Reader)
	if err != nil {
		return "", err
	}

	return string(content), nil
}

// determineEncoding sniffs page encoding from the first bytes of content.
func determineEncoding(r *bufio.Reader) encoding.Encoding {
	peeked, err := r.Peek(1024)
	if err != nil && len(peeked) == 0 {
		return unicode.UTF8
	}

	enc, _, _ := charset.DetermineEncoding(peeked, "")

	return enc
}

// WithLimiter sets rate limiter awaited before every request.
func WithLimiter(l limiter.RateLimiter) Option {
	return func(f *Fetcher) {
		f.limiter = l
	}
}

// WithUserAgent overrides Fetcher's user agent for a single call.
func WithUserAgent(userAgent string) CallOption {
	return func(o *callOptions) {
		o.userAgent = userAgent
	}
}
