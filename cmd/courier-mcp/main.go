// Command courier-mcp serves kuaidi100 parcel tracking over MCP.
package main

import (
	"github.com/xingmcp/toolservers/internal/app"
	"github.com/xingmcp/toolservers/internal/courier"
)

func main() {
	app.Main(app.Binary{
		Name:         "courier-mcp",
		Instructions: courier.Instructions,
		DefaultPort:  8084,
		Register: func(a *app.App) error {
			c := courier.NewClientFromConfig(a.Config.Courier, a.Logger)
			if !c.HasKey() {
				a.Logger.Warn().Msg("KUAIDI100_API_KEY is not set; kuaidi100 will reject every call")
			}
			return courier.RegisterTools(a.Registry, c)
		},
	})
}
