package page

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

const (
	// DefaultTimeout bounds one page load.
	DefaultTimeout = 15 * time.Second

	// DefaultUserAgent identifies the tool to the inspected site.
	DefaultUserAgent = "pagelens/1.0 (+https://github.com/pagelens/pagelens)"

	// maxPageBytes caps how much of a response is read; pages past this size
	// are truncated rather than rejected.
	maxPageBytes = 16 << 20
)

// FetchOptions tune how a page is loaded.
type FetchOptions struct {
	Timeout   time.Duration
	UserAgent string
}

// Fetch loads and parses a page. A target with an http or https scheme is
// requested over the network; anything else is treated as a local file path.
// Only the page itself is ever fetched: none of its referenced resources are.
func Fetch(ctx context.Context, target string, opts FetchOptions) (*Page, error) {
	if isURL(target) {
		return fetchURL(ctx, target, opts)
	}
	return fetchFile(target)
}

func isURL(target string) bool {
	return strings.HasPrefix(target, "http://") || strings.HasPrefix(target, "https://")
}

func fetchURL(ctx context.Context, url string, opts FetchOptions) (*Page, error) {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ua := opts.UserAgent
	if ua == "" {
		ua = DefaultUserAgent
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request for %s: %w", url, err)
	}
	req.Header.Set("User-Agent", ua)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("fetch %s: unexpected status %s", url, resp.Status)
	}

	// Follow redirects transparently but report the final URL so relative
	// asset paths resolve against the right base.
	final := url
	if resp.Request != nil && resp.Request.URL != nil {
		final = resp.Request.URL.String()
	}

	return Parse(io.LimitReader(resp.Body, maxPageBytes), final)
}

func fetchFile(path string) (*Page, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Parse(f, path)
}
