// Command crypto-mcp serves Binance public market data over MCP.
package main

import (
	"github.com/xingmcp/toolservers/internal/app"
	"github.com/xingmcp/toolservers/internal/crypto"
)

func main() {
	app.Main(app.Binary{
		Name:         "crypto-mcp",
		Instructions: crypto.Instructions,
		DefaultPort:  8082,
		Register: func(a *app.App) error {
			if err := crypto.RegisterTools(a.Registry, crypto.NewClientFromConfig(a.Config.Crypto, a.Logger)); err != nil {
				return err
			}
			path := a.Config.Crypto.ReferenceDocument
			if path == "" {
				return nil
			}
			if err := crypto.RegisterReferenceDocument(a.MCP, path); err != nil {
				// The market data tools work without it.
				a.Logger.Warn().Err(err).Str("path", path).Msg("reference document not registered")
			}
			return nil
		},
	})
}
