// Command android-mcp generates Android Activity, ViewModel and layout templates over MCP.
package main

import (
	"github.com/xingmcp/toolservers/internal/android"
	"github.com/xingmcp/toolservers/internal/app"
)

func main() {
	app.Main(app.Binary{
		Name:         "android-mcp",
		Instructions: android.Instructions,
		DefaultPort:  8085,
		Register: func(a *app.App) error {
			g, err := android.NewGenerator(a.Config.Android)
			if err != nil {
				return err
			}
			return android.RegisterTools(a.Registry, g)
		},
	})
}
