// Package weather serves today's forecast for a fixed set of Chinese cities.
package weather

import (
	"context"
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/tidwall/gjson"

	"github.com/xingmcp/toolservers/internal/common"
	"github.com/xingmcp/toolservers/internal/config"
	"github.com/xingmcp/toolservers/internal/upstream"
)

// ErrUnexpectedResponse is returned when the provider answers without a usable forecast.
var ErrUnexpectedResponse = errors.New("unexpected weather response")

// Forecast is one day of the provider's forecast array.
type Forecast struct {
	Date          string
	Condition     string
	High          string
	Low           string
	WindDirection string
	WindForce     string
}

// Client fetches forecasts by city code.
type Client struct {
	http *upstream.Client
}

// NewClient creates a client for the provider at baseURL.
func NewClient(baseURL string, logger *common.Logger, opts ...upstream.Option) *Client {
	return &Client{http: upstream.New(upstream.FixedSelector(baseURL), logger, opts...)}
}

// NewClientFromConfig creates a client from the weather section.
func NewClientFromConfig(cfg config.WeatherConfig, logger *common.Logger) *Client {
	return NewClient(cfg.BaseURL, logger, upstream.WithTimeout(cfg.GetTimeout()))
}

// Today returns the first forecast entry for code.
// A body whose status field is not 200, or that carries no forecast, yields ErrUnexpectedResponse.
func (c *Client) Today(ctx context.Context, code string) (Forecast, error) {
	body, err := c.http.Get(ctx, fmt.Sprintf("/api/weather/city/%s", code), nil)
	if err != nil {
		return Forecast{}, err
	}

	parsed := gjson.ParseBytes(body)
	if status := parsed.Get("status"); status.Int() != 200 {
		return Forecast{}, errors.Wrapf(ErrUnexpectedResponse, "status %s", status.Raw)
	}

	today := parsed.Get("data.forecast.0")
	if !today.Exists() {
		return Forecast{}, errors.Wrap(ErrUnexpectedResponse, "missing forecast")
	}

	return Forecast{
		Date:          today.Get("date").String(),
		Condition:     today.Get("type").String(),
		High:          today.Get("high").String(),
		Low:           today.Get("low").String(),
		WindDirection: today.Get("fx").String(),
		WindForce:     today.Get("fl").String(),
	}, nil
}
