package crypto

import "strings"

// DefaultQuote is appended to a bare asset symbol.
const DefaultQuote = "USDT"

// quoteAssets are the suffixes that mark a symbol as a complete trading pair.
var quoteAssets = []string{"USDT", "FDUSD", "USDC", "BUSD", "BTC", "ETH", "BNB", "TRY", "EUR"}

// CompletePair turns a bare asset such as "btc" into "BTCUSDT".
// Symbols already ending in a known quote asset, such as "ETHBTC", are only uppercased.
func CompletePair(symbol string) string {
	s := strings.ToUpper(strings.TrimSpace(symbol))
	if s == "" || s == DefaultQuote {
		return s
	}
	for _, q := range quoteAssets {
		if len(s) > len(q) && strings.HasSuffix(s, q) {
			return s
		}
	}
	return s + DefaultQuote
}
