// Package crypto exposes Binance public market data as MCP tools.
package crypto

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/xingmcp/toolservers/internal/common"
	"github.com/xingmcp/toolservers/internal/config"
	"github.com/xingmcp/toolservers/internal/upstream"
)

// Client calls the Binance spot market data endpoints.
// Every method returns the raw JSON body of the upstream response.
// Symbols are uppercased; optional parameters are sent only when set.
type Client struct {
	http *upstream.Client
}

// NewClient creates a client that picks its base URL from selector on every call.
func NewClient(selector upstream.Selector, apiKey string, logger *common.Logger, opts ...upstream.Option) *Client {
	if apiKey != "" {
		opts = append(opts, upstream.WithHeader("X-MBX-APIKEY", apiKey))
	}
	return &Client{http: upstream.New(selector, logger, opts...)}
}

// NewClientFromConfig creates a client spreading calls uniformly over the configured hosts.
func NewClientFromConfig(cfg config.CryptoConfig, logger *common.Logger) *Client {
	return NewClient(
		upstream.NewRandomSelector(cfg.BaseURLs, nil),
		cfg.APIKey,
		logger,
		upstream.WithTimeout(cfg.GetTimeout()),
	)
}

// params accumulates query parameters, skipping zero values.
type params url.Values

func (p params) str(key, value string) params {
	if value != "" {
		url.Values(p).Set(key, value)
	}
	return p
}

func (p params) symbol(value string) params {
	return p.str("symbol", strings.ToUpper(strings.TrimSpace(value)))
}

func (p params) int(key string, value int64) params {
	if value != 0 {
		url.Values(p).Set(key, strconv.FormatInt(value, 10))
	}
	return p
}

// list encodes values as a JSON array string, the form Binance expects for multi-symbol filters.
func (p params) list(key string, values []string, upper bool) (params, error) {
	if len(values) == 0 {
		return p, nil
	}
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if upper {
			v = strings.ToUpper(v)
		}
		out = append(out, v)
	}
	data, err := json.Marshal(out)
	if err != nil {
		return p, errors.Wrapf(err, "failed to encode %s", key)
	}
	url.Values(p).Set(key, string(data))
	return p, nil
}

func (c *Client) get(ctx context.Context, path string, q params) ([]byte, error) {
	return c.http.Get(ctx, path, url.Values(q))
}

// Ping tests connectivity.
func (c *Client) Ping(ctx context.Context) ([]byte, error) {
	return c.get(ctx, "/api/v3/ping", nil)
}

// ServerTime returns the exchange clock in milliseconds.
func (c *Client) ServerTime(ctx context.Context) ([]byte, error) {
	return c.get(ctx, "/api/v3/time", nil)
}

// ExchangeInfoParams filters exchange metadata.
type ExchangeInfoParams struct {
	Symbol      string
	Symbols     []string
	Permissions []string
}

// ExchangeInfo returns trading rules and symbol information.
func (c *Client) ExchangeInfo(ctx context.Context, p ExchangeInfoParams) ([]byte, error) {
	q := params{}.symbol(p.Symbol)
	q, err := q.list("symbols", p.Symbols, true)
	if err != nil {
		return nil, err
	}
	q, err = q.list("permissions", p.Permissions, true)
	if err != nil {
		return nil, err
	}
	return c.get(ctx, "/api/v3/exchangeInfo", q)
}

// Depth returns the order book.
func (c *Client) Depth(ctx context.Context, symbol string, limit int64) ([]byte, error) {
	return c.get(ctx, "/api/v3/depth", params{}.symbol(symbol).int("limit", limit))
}

// Trades returns recent trades.
func (c *Client) Trades(ctx context.Context, symbol string, limit int64) ([]byte, error) {
	return c.get(ctx, "/api/v3/trades", params{}.symbol(symbol).int("limit", limit))
}

// HistoricalTrades returns older trades, optionally starting at fromID.
func (c *Client) HistoricalTrades(ctx context.Context, symbol string, limit, fromID int64) ([]byte, error) {
	q := params{}.symbol(symbol).int("limit", limit).int("fromId", fromID)
	return c.get(ctx, "/api/v3/historicalTrades", q)
}

// RangeParams bounds trade and kline queries. Times are epoch milliseconds.
type RangeParams struct {
	FromID    int64
	StartTime int64
	EndTime   int64
	Limit     int64
	TimeZone  string
}

func (p RangeParams) apply(q params) params {
	return q.int("fromId", p.FromID).
		int("startTime", p.StartTime).
		int("endTime", p.EndTime).
		int("limit", p.Limit).
		str("timeZone", p.TimeZone)
}

// AggTrades returns compressed aggregate trades.
func (c *Client) AggTrades(ctx context.Context, symbol string, p RangeParams) ([]byte, error) {
	p.TimeZone = ""
	return c.get(ctx, "/api/v3/aggTrades", p.apply(params{}.symbol(symbol)))
}

// Klines returns candlesticks.
func (c *Client) Klines(ctx context.Context, symbol, interval string, p RangeParams) ([]byte, error) {
	p.FromID = 0
	return c.get(ctx, "/api/v3/klines", p.apply(params{}.symbol(symbol).str("interval", interval)))
}

// UIKlines returns candlesticks tuned for chart presentation.
func (c *Client) UIKlines(ctx context.Context, symbol, interval string, p RangeParams) ([]byte, error) {
	p.FromID = 0
	return c.get(ctx, "/api/v3/uiKlines", p.apply(params{}.symbol(symbol).str("interval", interval)))
}

// AvgPrice returns the current average price.
func (c *Client) AvgPrice(ctx context.Context, symbol string) ([]byte, error) {
	return c.get(ctx, "/api/v3/avgPrice", params{}.symbol(symbol))
}

// Ticker24hr returns 24 hour price change statistics; an empty symbol covers every pair.
func (c *Client) Ticker24hr(ctx context.Context, symbol string) ([]byte, error) {
	return c.get(ctx, "/api/v3/ticker/24hr", params{}.symbol(symbol))
}

// TradingDay returns the current trading day statistics.
func (c *Client) TradingDay(ctx context.Context, symbol string) ([]byte, error) {
	return c.get(ctx, "/api/v3/ticker/tradingDay", params{}.symbol(symbol))
}

// TickerPrice returns the latest price; an empty symbol covers every pair.
func (c *Client) TickerPrice(ctx context.Context, symbol string) ([]byte, error) {
	return c.get(ctx, "/api/v3/ticker/price", params{}.symbol(symbol))
}

// BookTicker returns the best bid and ask; an empty symbol covers every pair.
func (c *Client) BookTicker(ctx context.Context, symbol string) ([]byte, error) {
	return c.get(ctx, "/api/v3/ticker/bookTicker", params{}.symbol(symbol))
}

// TickerParams selects the pairs and window of a rolling ticker.
type TickerParams struct {
	Symbol     string
	Symbols    []string
	WindowSize string
	Type       string
}

// Ticker returns rolling window statistics.
func (c *Client) Ticker(ctx context.Context, p TickerParams) ([]byte, error) {
	q, err := params{}.symbol(p.Symbol).list("symbols", p.Symbols, true)
	if err != nil {
		return nil, err
	}
	q = q.str("windowSize", p.WindowSize).str("type", strings.ToUpper(p.Type))
	return c.get(ctx, "/api/v3/ticker", q)
}
