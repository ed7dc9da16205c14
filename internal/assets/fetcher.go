// Package assets retrieves externally hosted binary content, primarily
// project images referenced by URL.
package assets

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// UnavailableError indicates the remote host answered with a non-2xx status
type UnavailableError struct {
	URL        string
	StatusCode int
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("asset unavailable: %s returned HTTP %d", e.URL, e.StatusCode)
}

// FetchError indicates the request never produced a usable response
// (connection failure, timeout, truncated body)
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("failed to fetch asset %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Fetcher downloads remote assets. Each call is a single attempt with no
// retries; callers decide whether a failure is fatal. Safe for concurrent
// use.
type Fetcher struct {
	httpClient *http.Client
}

// NewFetcher creates a fetcher with a bounded timeout and redirect cap
func NewFetcher() *Fetcher {
	return &Fetcher{
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				return nil
			},
		},
	}
}

// Fetch retrieves the complete body of the resource at url. A non-2xx
// status yields an UnavailableError; transport problems yield a FetchError.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}

	req.Header.Set("User-Agent", "ShareCase/1.0 (+https://sharecase.app)")
	req.Header.Set("Accept", "image/*,*/*;q=0.8")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &UnavailableError{URL: url, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}

	return body, nil
}
