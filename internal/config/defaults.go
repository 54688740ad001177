package config

import "github.com/xingmcp/toolservers/internal/common"

// DefaultBinanceBaseURLs lists the equivalent public API hosts of the exchange.
var DefaultBinanceBaseURLs = []string{
	"https://api.binance.com",
	"https://api-gcp.binance.com",
	"https://api1.binance.com",
	"https://api2.binance.com",
	"https://api3.binance.com",
	"https://api4.binance.com",
}

// DefaultUserAgents is the browser User-Agent pool used by the train aggregator client.
var DefaultUserAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:125.0) Gecko/20100101 Firefox/125.0",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10.15; rv:125.0) Gecko/20100101 Firefox/125.0",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.4 Safari/605.1.15",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36 Edg/124.0.2478.67",
	"Mozilla/5.0 (iPhone; CPU iPhone OS 17_4 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.4 Mobile/15E148 Safari/604.1",
	"Mozilla/5.0 (Linux; Android 13; SM-G998B) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Mobile Safari/537.36",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36 OPR/85.0.4341.18",
	"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36 Vivaldi/6.2.3105.47",
}

// NewDefaultConfig creates a configuration with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host: "localhost",
		},
		Logging: common.LoggingConfig{
			Level:   "info",
			Outputs: []string{"console"},
		},
		Train: TrainConfig{
			BaseURL:    "https://www.ly.com",
			Timeout:    "30s",
			UserAgents: append([]string(nil), DefaultUserAgents...),
		},
		Crypto: CryptoConfig{
			BaseURLs: append([]string(nil), DefaultBinanceBaseURLs...),
			Timeout:  "30s",
		},
		Weather: WeatherConfig{
			BaseURL: "http://t.weather.itboy.net",
			Timeout: "30s",
		},
		Courier: CourierConfig{
			BaseURL: "https://api.kuaidi100.com/stdio",
			Timeout: "30s",
		},
		Android: AndroidConfig{
			DefaultPackage:   "com.mathwallet.app",
			DefaultComponent: "Example",
			BindingPackage:   "com.mgx.mathwallet.databinding",
		},
	}
}
