// Package upstream is the outbound HTTP plumbing shared by the tool adapters.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/xingmcp/toolservers/internal/common"
)

// maxResponseSize caps an upstream response body.
const maxResponseSize = 10 << 20

// Client issues requests against one upstream API.
type Client struct {
	selector   Selector
	httpClient *http.Client
	logger     *common.Logger
	headers    http.Header
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithHeader adds a header sent on every request.
func WithHeader(key, value string) Option {
	return func(c *Client) { c.headers.Set(key, value) }
}

// New creates a Client that resolves its base URL through selector on every call.
func New(selector Selector, logger *common.Logger, opts ...Option) *Client {
	c := &Client{
		selector:   selector,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     logger,
		headers:    make(http.Header),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Request describes one outbound call.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Body   interface{}
	Header http.Header
}

// Get performs a GET request and returns the response body.
func (c *Client) Get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	return c.Do(ctx, Request{Method: http.MethodGet, Path: path, Query: query})
}

// PostJSON performs a POST request with a JSON body and returns the response body.
func (c *Client) PostJSON(ctx context.Context, path string, data interface{}, header http.Header) ([]byte, error) {
	return c.Do(ctx, Request{Method: http.MethodPost, Path: path, Body: data, Header: header})
}

// Do sends req and returns the body of a 2xx response.
// Any other status becomes a *StatusError carrying the upstream's own message when present.
func (c *Client) Do(ctx context.Context, req Request) ([]byte, error) {
	target := strings.TrimRight(c.selector.Pick(), "/") + req.Path
	if len(req.Query) > 0 {
		target += "?" + req.Query.Encode()
	}

	c.logger.Debug().
		Str("method", req.Method).
		Str("url", target).
		Msg("upstream request")

	var bodyReader io.Reader
	if req.Body != nil {
		data, err := json.Marshal(req.Body)
		if err != nil {
			return nil, errors.Wrap(err, "failed to marshal request")
		}
		bodyReader = bytes.NewReader(data)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target, bodyReader)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build request")
	}
	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	for key, vals := range c.headers {
		for _, v := range vals {
			httpReq.Header.Set(key, v)
		}
	}
	for key, vals := range req.Header {
		for _, v := range vals {
			httpReq.Header.Set(key, v)
		}
	}
	// net/http derives Host from the URL; an explicit header must go through the field.
	if host := httpReq.Header.Get("Host"); host != "" {
		httpReq.Host = host
		httpReq.Header.Del("Host")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	duration := time.Since(start)

	if err != nil {
		c.logger.Error().Err(err).Str("url", target).Dur("duration", duration).Msg("upstream request failed")
		return nil, errors.Wrap(err, "upstream request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, errors.Wrap(err, "failed to read response")
	}

	c.logger.Debug().
		Int("status_code", resp.StatusCode).
		Dur("duration", duration).
		Int("bytes", len(body)).
		Msg("upstream response")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{
			StatusCode: resp.StatusCode,
			Message:    ExtractMessage(body),
			Body:       body,
		}
	}

	return body, nil
}
