// Package train searches train tickets through the ly.com booking API.
package train

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/tidwall/gjson"

	"github.com/xingmcp/toolservers/internal/common"
	"github.com/xingmcp/toolservers/internal/config"
	"github.com/xingmcp/toolservers/internal/upstream"
)

const (
	stationCodePath = "/trainbffapi/getCodeByStationName"
	trainSearchPath = "/trainsearchbffapi/trainSearch"
)

// ErrStationCodes is returned when the station names cannot be resolved to codes.
var ErrStationCodes = errors.New("station code resolution failed")

// SearchError reports a search rejected by the booking API.
type SearchError struct {
	Message string
}

func (e *SearchError) Error() string {
	return "train search failed: " + e.Message
}

// Client talks to the booking API with browser-like request headers.
type Client struct {
	http       *upstream.Client
	baseURL    string
	userAgents upstream.Selector
	now        func() time.Time
}

// NewClient creates a client for baseURL. userAgents supplies the User-Agent of each request.
func NewClient(baseURL string, userAgents upstream.Selector, logger *common.Logger, opts ...upstream.Option) *Client {
	return &Client{
		http:       upstream.New(upstream.FixedSelector(baseURL), logger, opts...),
		baseURL:    baseURL,
		userAgents: userAgents,
		now:        time.Now,
	}
}

// NewClientFromConfig creates a client rotating uniformly over the configured User-Agents.
func NewClientFromConfig(cfg config.TrainConfig, logger *common.Logger) *Client {
	return NewClient(cfg.BaseURL,
		upstream.NewRandomSelector(cfg.UserAgents, nil),
		logger,
		upstream.WithTimeout(cfg.GetTimeout()),
	)
}

// WithClock replaces the clock used for trace ids and the system time tool.
func (c *Client) WithClock(now func() time.Time) *Client {
	c.now = now
	return c
}

// Now returns the client's current time.
func (c *Client) Now() time.Time {
	return c.now()
}

func (c *Client) headers() http.Header {
	h := http.Header{}
	h.Set("Content-Type", "application/json")
	if u, err := url.Parse(c.baseURL); err == nil && u.Host != "" {
		h.Set("Host", u.Host)
		h.Set("Origin", u.Scheme+"://"+u.Host)
	}
	if ua := c.userAgents.Pick(); ua != "" {
		h.Set("User-Agent", ua)
	}
	return h
}

// ResolveStations converts departure and arrival station or city names to station codes.
func (c *Client) ResolveStations(ctx context.Context, dep, arr string) (string, string, error) {
	body, err := c.http.PostJSON(ctx, stationCodePath, map[string]interface{}{
		"names": []string{dep, arr},
		"pid":   1,
	}, c.headers())
	if err != nil {
		return "", "", errors.Mark(err, ErrStationCodes)
	}

	parsed := gjson.ParseBytes(body)
	if parsed.Get("code").Int() != 200 {
		return "", "", errors.Wrapf(ErrStationCodes, "code %s", parsed.Get("code").Raw)
	}

	depCode := parsed.Get("data.0").String()
	arrCode := parsed.Get("data.1").String()
	if depCode == "" || arrCode == "" {
		return "", "", errors.Wrapf(ErrStationCodes, "incomplete codes for %q and %q", dep, arr)
	}
	return depCode, arrCode, nil
}

// Search returns the train records running between two station codes on date (yyyy-MM-dd).
// The result is the raw trains array; it may be empty.
func (c *Client) Search(ctx context.Context, depCode, arrCode, date string) (gjson.Result, error) {
	body, err := c.http.PostJSON(ctx, trainSearchPath, map[string]interface{}{
		"depStation": depCode,
		"arrStation": arrCode,
		"depDate":    date,
		"type":       "ADULT",
		"traceId":    strconv.FormatInt(c.now().UnixMilli(), 10),
		"pid":        1,
	}, c.headers())
	if err != nil {
		var statusErr *upstream.StatusError
		if errors.As(err, &statusErr) {
			return gjson.Result{}, &SearchError{Message: statusErr.Message}
		}
		return gjson.Result{}, err
	}

	parsed := gjson.ParseBytes(body)
	if code := parsed.Get("code"); code.Exists() && code.Int() != 200 {
		return gjson.Result{}, &SearchError{Message: parsed.Get("message").String()}
	}
	if !parsed.Get("success").Bool() {
		return gjson.Result{}, &SearchError{Message: parsed.Get("errorMessage").String()}
	}
	return parsed.Get("data.trains"), nil
}
