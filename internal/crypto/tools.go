package crypto

import (
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/xingmcp/toolservers/internal/tools"
)

// Instructions describes the server to MCP clients.
const Instructions = `当用户询问虚拟货币价格、交易对信息、最近成交、订单簿、K 线或行情统计时，使用本服务查询 Binance 公共行情数据。
用户只输入币种时（如 "BTC"），getCryptoPrice 与 binanceRecentTrades 会自动补全为 USDT 交易对；其他工具需要完整交易对（如 "BTCUSDT"）。
返回内容为 Binance 接口的原始 JSON。本服务不执行任何下单或撤单操作。`

// RegisterTools publishes every market data tool on reg.
func RegisterTools(reg *tools.Registry, c *Client) error {
	return reg.RegisterAll(
		tools.Entry{Tool: createGetCryptoPriceTool(), Handler: handleGetCryptoPrice(c)},
		tools.Entry{Tool: createRecentTradesTool(), Handler: handleRecentTrades(c)},
		tools.Entry{Tool: createPingTool(), Handler: handlePing(c)},
		tools.Entry{Tool: createServerTimeTool(), Handler: handleServerTime(c)},
		tools.Entry{Tool: createExchangeInfoTool(), Handler: handleExchangeInfo(c)},
		tools.Entry{Tool: createOrderBookTool(), Handler: handleOrderBook(c)},
		tools.Entry{Tool: createHistoricalTradesTool(), Handler: handleHistoricalTrades(c)},
		tools.Entry{Tool: createAggTradesTool(), Handler: handleAggTrades(c)},
		tools.Entry{Tool: createKlinesTool(), Handler: handleKlines(c)},
		tools.Entry{Tool: createUIKlinesTool(), Handler: handleUIKlines(c)},
		tools.Entry{Tool: createAvgPriceTool(), Handler: handleAvgPrice(c)},
		tools.Entry{Tool: createTicker24hrTool(), Handler: handleTicker24hr(c)},
		tools.Entry{Tool: createTradingDayTool(), Handler: handleTradingDay(c)},
		tools.Entry{Tool: createTickerPriceTool(), Handler: handleTickerPrice(c)},
		tools.Entry{Tool: createBookTickerTool(), Handler: handleBookTicker(c)},
		tools.Entry{Tool: createTickerTool(), Handler: handleTicker(c)},
	)
}

// klineIntervals are the candlestick intervals Binance accepts.
var klineIntervals = []string{
	"1s", "1m", "3m", "5m", "15m", "30m",
	"1h", "2h", "4h", "6h", "8h", "12h",
	"1d", "3d", "1w", "1M",
}

func createGetCryptoPriceTool() mcp.Tool {
	return mcp.NewTool("getCryptoPrice",
		mcp.WithDescription(`获取指定虚拟货币的当前价格（订单簿深度，数据源 Binance）。
只输入币种（如 "BTC"）时自动补全为 "BTCUSDT"；查询非 USDT 交易对（如 "ETHBTC"）请输入完整交易对。`),
		mcp.WithString("symbol",
			mcp.Required(),
			mcp.Description("虚拟货币或交易对，例如 'BTC'（默认查询 BTCUSDT）或完整交易对 'ETHBTC'"),
		),
		mcp.WithNumber("limit",
			mcp.Description("返回的订单簿条数（默认 100，最大 5000）"),
		),
	)
}

func createRecentTradesTool() mcp.Tool {
	return mcp.NewTool("binanceRecentTrades",
		mcp.WithDescription(`获取指定交易对的最近成交记录。
只输入币种（如 "BTC"）时自动补全为 "BTCUSDT"；输入完整交易对（如 "ETHBTC"）则查询该交易对。`),
		mcp.WithString("symbol",
			mcp.Required(),
			mcp.Description("虚拟货币或交易对，例如 'BTC'（默认查询 BTCUSDT）或完整交易对 'ETHBTC'"),
		),
		mcp.WithNumber("limit",
			mcp.Description("返回的成交记录条数（默认 100，最大 1000）"),
		),
	)
}

func createPingTool() mcp.Tool {
	return mcp.NewTool("binancePing",
		mcp.WithDescription("测试与 Binance 服务器的连通性。"),
	)
}

func createServerTimeTool() mcp.Tool {
	return mcp.NewTool("binanceServerTime",
		mcp.WithDescription("获取 Binance 服务器时间（毫秒级 Unix 时间戳）。"),
	)
}

func createExchangeInfoTool() mcp.Tool {
	return mcp.NewTool("binanceExchangeInfo",
		mcp.WithDescription("获取交易规则和交易对信息，可按交易对或权限过滤。"),
		mcp.WithString("symbol",
			mcp.Description("可选，单个交易对，例如 'BTCUSDT'"),
		),
		mcp.WithArray("symbols",
			mcp.Description("可选，多个交易对，例如 ['BTCUSDT','ETHUSDT']"),
			mcp.WithStringItems(),
		),
		mcp.WithArray("permissions",
			mcp.Description("可选，按交易权限过滤，例如 ['SPOT']"),
			mcp.WithStringItems(),
		),
	)
}

func createOrderBookTool() mcp.Tool {
	return mcp.NewTool("binanceOrderBook",
		mcp.WithDescription("获取订单簿深度。需要完整交易对。"),
		mcp.WithString("symbol",
			mcp.Required(),
			mcp.Description("交易对，例如 'BTCUSDT'"),
		),
		mcp.WithNumber("limit",
			mcp.Description("可选，返回深度条数，可选 5,10,20,50,100,500,1000,5000"),
		),
	)
}

func createHistoricalTradesTool() mcp.Tool {
	return mcp.NewTool("binanceHistoricalTrades",
		mcp.WithDescription("获取更久远的历史成交记录。"),
		mcp.WithString("symbol",
			mcp.Required(),
			mcp.Description("交易对，例如 'BTCUSDT'"),
		),
		mcp.WithNumber("limit",
			mcp.Description("可选，返回条数，默认 100，最大 1000"),
		),
		mcp.WithNumber("fromId",
			mcp.Description("可选，从指定成交 ID 开始返回"),
		),
	)
}

func createAggTradesTool() mcp.Tool {
	return mcp.NewTool("binanceAggTrades",
		mcp.WithDescription("获取聚合成交数据（压缩后的成交）。"),
		mcp.WithString("symbol",
			mcp.Required(),
			mcp.Description("交易对，例如 'BTCUSDT'"),
		),
		mcp.WithNumber("fromId", mcp.Description("可选，从指定聚合成交 ID 开始")),
		mcp.WithNumber("startTime", mcp.Description("可选，开始时间（毫秒）")),
		mcp.WithNumber("endTime", mcp.Description("可选，结束时间（毫秒）")),
		mcp.WithNumber("limit", mcp.Description("可选，返回条数，默认 500，最大 1000")),
	)
}

func klineOptions(description string) []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithDescription(description),
		mcp.WithString("symbol",
			mcp.Required(),
			mcp.Description("交易对，例如 'BTCUSDT'"),
		),
		mcp.WithString("interval",
			mcp.Required(),
			mcp.Description("K 线间隔，例如 '1m','5m','1h','1d'"),
			mcp.Enum(klineIntervals...),
		),
		mcp.WithNumber("startTime", mcp.Description("可选，开始时间（毫秒）")),
		mcp.WithNumber("endTime", mcp.Description("可选，结束时间（毫秒）")),
		mcp.WithNumber("limit", mcp.Description("可选，返回条数，默认 500，最大 1000")),
		mcp.WithString("timeZone", mcp.Description("可选，时区，例如 '8' 或 '-1:00'，默认 0 (UTC)")),
	}
}

func createKlinesTool() mcp.Tool {
	return mcp.NewTool("binanceKlines", klineOptions("获取 K 线数据（蜡烛图）。")...)
}

func createUIKlinesTool() mcp.Tool {
	return mcp.NewTool("binanceUIKlines", klineOptions("获取适合图表展示的 K 线数据。")...)
}

func createAvgPriceTool() mcp.Tool {
	return mcp.NewTool("binanceAvgPrice",
		mcp.WithDescription("获取指定交易对的当前平均成交价格。"),
		mcp.WithString("symbol",
			mcp.Required(),
			mcp.Description("交易对，例如 'BTCUSDT'"),
		),
	)
}

func createTicker24hrTool() mcp.Tool {
	return mcp.NewTool("binanceTicker24hr",
		mcp.WithDescription("获取指定交易对或全部交易对 24 小时价格变动情况。"),
		mcp.WithString("symbol",
			mcp.Description("可选，交易对，例如 'BTCUSDT'，不传返回全部交易对"),
		),
	)
}

func createTradingDayTool() mcp.Tool {
	return mcp.NewTool("binanceTradingDay",
		mcp.WithDescription("获取指定交易对当日交易统计，包括开盘价、收盘价、最高价、最低价、成交量。"),
		mcp.WithString("symbol",
			mcp.Required(),
			mcp.Description("交易对，例如 'BTCUSDT'"),
		),
	)
}

func createTickerPriceTool() mcp.Tool {
	return mcp.NewTool("binanceTickerPrice",
		mcp.WithDescription("获取指定交易对或所有交易对的最新成交价格。"),
		mcp.WithString("symbol",
			mcp.Description("可选，交易对，例如 'BTCUSDT'，不传返回全部交易对"),
		),
	)
}

func createBookTickerTool() mcp.Tool {
	return mcp.NewTool("binanceBookTicker",
		mcp.WithDescription("获取指定交易对或所有交易对的最优买卖挂单（买一卖一）。"),
		mcp.WithString("symbol",
			mcp.Description("可选，交易对，例如 'BTCUSDT'，不传返回全部交易对"),
		),
	)
}

func createTickerTool() mcp.Tool {
	return mcp.NewTool("binanceTicker",
		mcp.WithDescription(`获取指定交易对或多个交易对在指定时间窗口的统计数据。symbol 与 symbols 二选一。
注意：统计区间比 windowSize 多不超过 59999ms。`),
		mcp.WithString("symbol",
			mcp.Description("单个交易对，例如 'BTCUSDT'"),
		),
		mcp.WithArray("symbols",
			mcp.Description("多个交易对，例如 ['BTCUSDT','BNBUSDT']，最多 100 个"),
			mcp.WithStringItems(),
		),
		mcp.WithString("windowSize",
			mcp.Description("时间窗口，例如 '1m','2h','1d'，默认 '1d'"),
		),
		mcp.WithString("type",
			mcp.Description("FULL 或 MINI，默认 FULL"),
			mcp.Enum("FULL", "MINI"),
		),
	)
}
