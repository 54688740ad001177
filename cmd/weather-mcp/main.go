// Command weather-mcp serves today's forecast for supported Chinese cities over MCP.
package main

import (
	"github.com/xingmcp/toolservers/internal/app"
	"github.com/xingmcp/toolservers/internal/weather"
)

func main() {
	app.Main(app.Binary{
		Name:         "weather-mcp",
		Instructions: weather.Instructions,
		DefaultPort:  8083,
		Register: func(a *app.App) error {
			return weather.RegisterTools(a.Registry, weather.NewClientFromConfig(a.Config.Weather, a.Logger))
		},
	})
}
