// Command train-mcp serves train ticket search and the current system time over MCP.
package main

import (
	"github.com/xingmcp/toolservers/internal/app"
	"github.com/xingmcp/toolservers/internal/train"
)

func main() {
	app.Main(app.Binary{
		Name:         "train-mcp",
		Instructions: train.Instructions,
		DefaultPort:  8081,
		Register: func(a *app.App) error {
			return train.RegisterTools(a.Registry, train.NewClientFromConfig(a.Config.Train, a.Logger))
		},
	})
}
