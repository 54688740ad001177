package crypto

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/xingmcp/toolservers/internal/tools"
)

// defaultLimit applies to the two tools that complete bare asset symbols.
const defaultLimit = 100

// rawResult returns the upstream JSON verbatim, or an error envelope naming the failed call.
func rawResult(name string, body []byte, err error) *mcp.CallToolResult {
	if err != nil {
		return tools.UpstreamErrorResult(fmt.Sprintf("%s 请求 Binance 失败", name), err)
	}
	return tools.TextResult(string(body))
}

func rangeParams(request mcp.CallToolRequest) RangeParams {
	return RangeParams{
		FromID:    tools.GetOptionalInt(request, "fromId"),
		StartTime: tools.GetOptionalInt(request, "startTime"),
		EndTime:   tools.GetOptionalInt(request, "endTime"),
		Limit:     tools.GetOptionalInt(request, "limit"),
		TimeZone:  tools.GetTrimmedString(request, "timeZone", ""),
	}
}

func limitOrDefault(request mcp.CallToolRequest) int64 {
	if limit := tools.GetOptionalInt(request, "limit"); limit > 0 {
		return limit
	}
	return defaultLimit
}

func handleGetCryptoPrice(c *Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		symbol := CompletePair(request.GetString("symbol", ""))
		if symbol == "" {
			return tools.ErrorResult("Error: symbol parameter is required"), nil
		}
		body, err := c.Depth(ctx, symbol, limitOrDefault(request))
		return rawResult("getCryptoPrice", body, err), nil
	}
}

func handleRecentTrades(c *Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		symbol := CompletePair(request.GetString("symbol", ""))
		if symbol == "" {
			return tools.ErrorResult("Error: symbol parameter is required"), nil
		}
		body, err := c.Trades(ctx, symbol, limitOrDefault(request))
		return rawResult("binanceRecentTrades", body, err), nil
	}
}

func handlePing(c *Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		body, err := c.Ping(ctx)
		return rawResult("binancePing", body, err), nil
	}
}

func handleServerTime(c *Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		body, err := c.ServerTime(ctx)
		return rawResult("binanceServerTime", body, err), nil
	}
}

func handleExchangeInfo(c *Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		body, err := c.ExchangeInfo(ctx, ExchangeInfoParams{
			Symbol:      request.GetString("symbol", ""),
			Symbols:     request.GetStringSlice("symbols", nil),
			Permissions: request.GetStringSlice("permissions", nil),
		})
		return rawResult("binanceExchangeInfo", body, err), nil
	}
}

func handleOrderBook(c *Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		symbol, err := request.RequireString("symbol")
		if err != nil {
			return tools.ErrorResult("Error: symbol parameter is required"), nil
		}
		body, err := c.Depth(ctx, symbol, tools.GetOptionalInt(request, "limit"))
		return rawResult("binanceOrderBook", body, err), nil
	}
}

func handleHistoricalTrades(c *Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		symbol, err := request.RequireString("symbol")
		if err != nil {
			return tools.ErrorResult("Error: symbol parameter is required"), nil
		}
		body, err := c.HistoricalTrades(ctx, symbol,
			tools.GetOptionalInt(request, "limit"),
			tools.GetOptionalInt(request, "fromId"),
		)
		return rawResult("binanceHistoricalTrades", body, err), nil
	}
}

func handleAggTrades(c *Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		symbol, err := request.RequireString("symbol")
		if err != nil {
			return tools.ErrorResult("Error: symbol parameter is required"), nil
		}
		body, err := c.AggTrades(ctx, symbol, rangeParams(request))
		return rawResult("binanceAggTrades", body, err), nil
	}
}

func handleKlines(c *Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		symbol, interval, errResult := klineArgs(request)
		if errResult != nil {
			return errResult, nil
		}
		body, err := c.Klines(ctx, symbol, interval, rangeParams(request))
		return rawResult("binanceKlines", body, err), nil
	}
}

func handleUIKlines(c *Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		symbol, interval, errResult := klineArgs(request)
		if errResult != nil {
			return errResult, nil
		}
		body, err := c.UIKlines(ctx, symbol, interval, rangeParams(request))
		return rawResult("binanceUIKlines", body, err), nil
	}
}

func klineArgs(request mcp.CallToolRequest) (string, string, *mcp.CallToolResult) {
	symbol, err := request.RequireString("symbol")
	if err != nil {
		return "", "", tools.ErrorResult("Error: symbol parameter is required")
	}
	interval, err := request.RequireString("interval")
	if err != nil {
		return "", "", tools.ErrorResult("Error: interval parameter is required")
	}
	return symbol, interval, nil
}

func handleAvgPrice(c *Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		symbol, err := request.RequireString("symbol")
		if err != nil {
			return tools.ErrorResult("Error: symbol parameter is required"), nil
		}
		body, err := c.AvgPrice(ctx, symbol)
		return rawResult("binanceAvgPrice", body, err), nil
	}
}

func handleTicker24hr(c *Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		body, err := c.Ticker24hr(ctx, request.GetString("symbol", ""))
		return rawResult("binanceTicker24hr", body, err), nil
	}
}

func handleTradingDay(c *Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		symbol, err := request.RequireString("symbol")
		if err != nil {
			return tools.ErrorResult("Error: symbol parameter is required"), nil
		}
		body, err := c.TradingDay(ctx, symbol)
		return rawResult("binanceTradingDay", body, err), nil
	}
}

func handleTickerPrice(c *Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		body, err := c.TickerPrice(ctx, request.GetString("symbol", ""))
		return rawResult("binanceTickerPrice", body, err), nil
	}
}

func handleBookTicker(c *Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		body, err := c.BookTicker(ctx, request.GetString("symbol", ""))
		return rawResult("binanceBookTicker", body, err), nil
	}
}

func handleTicker(c *Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		p := TickerParams{
			Symbol:     request.GetString("symbol", ""),
			Symbols:    request.GetStringSlice("symbols", nil),
			WindowSize: request.GetString("windowSize", ""),
			Type:       request.GetString("type", ""),
		}
		if p.Symbol == "" && len(p.Symbols) == 0 {
			return tools.ErrorResult("Error: symbol or symbols parameter is required"), nil
		}
		body, err := c.Ticker(ctx, p)
		return rawResult("binanceTicker", body, err), nil
	}
}
