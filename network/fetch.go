package network

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/atres-cli/atres/constant"
	"github.com/atres-cli/atres/log"
)

// Options tune a single fetch.
type Options struct {
	// Args are appended to the query string regardless of the method.
	Args map[string]string
	// PostData turns the request into a form-encoded POST when non-empty.
	PostData map[string]string
	// Headers override the defaults.
	Headers map[string]string
}

// Fetcher retrieves the body of a remote resource as text.
type Fetcher interface {
	Fetch(ctx context.Context, rawURL string, opts *Options) (string, error)
}

// HTTPFetcher is the Fetcher backed by an *http.Client.
//
// The status code is not inspected: whatever body the server returns is handed to the caller.
// Only transport failures (DNS, refused connection, timeout) are reported as errors.
type HTTPFetcher struct {
	client    *http.Client
	userAgent string
}

// NewFetcher wraps client. A nil client means the shared Client.
func NewFetcher(client *http.Client, userAgent string) *HTTPFetcher {
	if client == nil {
		client = Client
	}
	if userAgent == "" {
		userAgent = constant.UserAgent
	}

	return &HTTPFetcher{client: client, userAgent: userAgent}
}

// Fetch performs a GET, or a POST when opts carries post data, and returns the body.
func (f *HTTPFetcher) Fetch(ctx context.Context, rawURL string, opts *Options) (string, error) {
	if opts == nil {
		opts = &Options{}
	}

	target, err := WithArgs(rawURL, opts.Args)
	if err != nil {
		return "", err
	}

	method := http.MethodGet
	var body io.Reader
	if len(opts.PostData) > 0 {
		method = http.MethodPost
		body = strings.NewReader(encode(opts.PostData).Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", f.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	for k, v := range opts.Headers {
		req.Header.Set(k, v)
	}

	log.Tracef("Loading: %s %s", method, target)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", target, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read body of %s: %w", target, err)
	}

	log.Debugf("Loaded %s: status %d, %d bytes", target, resp.StatusCode, len(data))
	return string(data), nil
}

// WithArgs appends args to the query string of rawURL, keeping any query already present.
func WithArgs(rawURL string, args map[string]string) (string, error) {
	if len(args) == 0 {
		return rawURL, nil
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("parse url %q: %w", rawURL, err)
	}

	q := u.Query()
	for k, v := range args {
		q.Set(k, v)
	}
	u.RawQuery = q.Encode()

	return u.String(), nil
}

func encode(m map[string]string) url.Values {
	values := make(url.Values, len(m))
	for k, v := range m {
		values.Set(k, v)
	}
	return values
}
