// Package supabase implements the remote store contract against a
// Supabase-compatible backend: GoTrue for the identity lookup, PostgREST for
// the bookmarks collection.
package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/linkshelf/linkshelf/internal/logger"
	"github.com/linkshelf/linkshelf/internal/store"
	"github.com/linkshelf/linkshelf/internal/utils"
)

// Options configures the remote store client.
type Options struct {
	BaseURL     string        // project base URL, ex: https://xyz.supabase.co
	APIKey      string        // project api key (sent as apikey header)
	AccessToken string        // user access token (sent as bearer)
	Timeout     time.Duration // per-call timeout, 0 = 15s
}

// Client is the HTTP remote store client. It is safe for concurrent use.
type Client struct {
	baseURL string
	apiKey  string
	token   string
	http    *http.Client
	logger  logger.Logger
}

func New(opts Options, log logger.Logger) *Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	transport := &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 20,
		IdleConnTimeout:     30 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
		ForceAttemptHTTP2:   true,
		DialContext: (&net.Dialer{
			Timeout: 10 * time.Second,
		}).DialContext,
	}

	return &Client{
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		apiKey:  opts.APIKey,
		token:   opts.AccessToken,
		http:    &http.Client{Transport: transport, Timeout: timeout},
		logger:  log,
	}
}

// do performs one store call. out may be nil when no response body is
// expected. All failures come back as *store.RemoteError tagged with op.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}, op string) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return &store.RemoteError{Op: op, Err: fmt.Errorf("encode request: %w", err)}
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return &store.RemoteError{Op: op, Err: err}
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &store.RemoteError{Op: op, Err: err}
	}
	defer utils.Close(resp.Body)

	if resp.StatusCode >= http.StatusMultipleChoices {
		return &store.RemoteError{
			Op:     op,
			Status: resp.StatusCode,
			Err:    errors.New(readErrorBody(resp.Body)),
		}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return &store.RemoteError{Op: op, Err: fmt.Errorf("decode response: %w", err)}
		}
	}
	return nil
}

// readErrorBody extracts a short error description from a failed response.
func readErrorBody(r io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(r, 512))
	if err != nil || len(data) == 0 {
		return "request rejected"
	}
	return string(bytes.TrimSpace(data))
}

// parseTimestamp parses the store's ISO-8601 created_at strings. A value
// that cannot be parsed downgrades to the zero time so that one bad row
// never fails a whole load; the activity aggregator skips zero timestamps.
func parseTimestamp(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	for _, layout := range []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02T15:04:05.999999", // postgres timestamp without zone
		"2006-01-02T15:04:05",
	} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
