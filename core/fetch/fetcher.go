// Package fetch implements the Fetcher interface.
// Sources are either http(s) URLs, fetched with a GET request, or local
// file paths, read from disk.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/greyhillman/IncrementalReadingConverter/core"
)

const (
	DefaultTimeout   = 30 * time.Second
	DefaultUserAgent = "irconvert/1.0 (+https://github.com/greyhillman/IncrementalReadingConverter)"
)

// ErrStatus is returned for non-2xx HTTP responses.
var ErrStatus = errors.New("unexpected HTTP status")

// SourceFetcher fetches pages from the web or the local filesystem.
type SourceFetcher struct {
	client    *http.Client
	userAgent string
}

// New creates a SourceFetcher. Zero values select the defaults.
func New(timeout time.Duration, userAgent string) *SourceFetcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	return &SourceFetcher{
		client:    &http.Client{Timeout: timeout},
		userAgent: userAgent,
	}
}

// IsURL reports whether source is an http or https URL.
func IsURL(source string) bool {
	u, err := url.Parse(source)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// Fetch retrieves the HTML content of the given URL or file.
func (f *SourceFetcher) Fetch(ctx context.Context, source string) (*core.FetchResult, error) {
	if IsURL(source) {
		return f.fetchURL(ctx, source)
	}
	return fetchFile(ctx, source)
}

func (f *SourceFetcher) fetchURL(ctx context.Context, rawURL string) (*core.FetchResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w %d for %s", ErrStatus, resp.StatusCode, rawURL)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	return &core.FetchResult{
		Source:     rawURL,
		StatusCode: resp.StatusCode,
		HTML:       string(body),
	}, nil
}

func fetchFile(ctx context.Context, path string) (*core.FetchResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	body, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return &core.FetchResult{Source: path, HTML: string(body)}, nil
}
