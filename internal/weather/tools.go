package weather

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/xingmcp/toolservers/internal/tools"
)

// Instructions describes the server to MCP clients.
const Instructions = `获取中国城市当天的天气信息（日期、天气、最高温度、最低温度、风向、风力）。
适用于旅行规划、日常出行、活动安排等场景。目前支持：北京、上海、广州、深圳、杭州、成都、重庆。`

// RegisterTools publishes the weather tool on reg.
func RegisterTools(reg *tools.Registry, c *Client) error {
	return reg.Register(createWeatherByCityTool(), handleWeatherByCity(c))
}

func createWeatherByCityTool() mcp.Tool {
	return mcp.NewTool("get_weather_by_city",
		mcp.WithDescription("获取中国一座城市的天气信息，比如'北京'、'上海'、'广州'、'深圳'等，返回当天的天气信息。"),
		mcp.WithString("city",
			mcp.Required(),
			mcp.Description("中国城市名称，比如'北京'、'上海'、'广州'、'深圳'等"),
		),
	)
}

// FormatForecast renders the fixed seven line weather report.
func FormatForecast(city string, f Forecast) string {
	return fmt.Sprintf("城市: %s\n日期: %s\n天气: %s\n最高温度: %s\n最低温度: %s\n风向: %s\n风力: %s",
		city, f.Date, f.Condition, f.High, f.Low, f.WindDirection, f.WindForce)
}

func handleWeatherByCity(c *Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		city := strings.TrimSpace(request.GetString("city", ""))
		if city == "" {
			return tools.ErrorResult("Error: city parameter is required"), nil
		}

		// An unknown city is an answer, not a failure.
		code, ok := CityCode(city)
		if !ok {
			return tools.TextResult(fmt.Sprintf("暂不支持城市: %s", city)), nil
		}

		forecast, err := c.Today(ctx, code)
		if err != nil {
			tools.LoggerFrom(ctx, nil).Warn().Str("city", city).Str("error", err.Error()).Msg("weather lookup failed")
			return tools.ErrorResult("获取天气失败"), nil
		}

		return tools.TextResult(FormatForecast(city, forecast)), nil
	}
}
