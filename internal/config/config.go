// Package config loads and validates tool server configuration.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"

	"github.com/xingmcp/toolservers/internal/common"
)

// defaultTimeout applies when an upstream timeout is unset or unparsable.
const defaultTimeout = 30 * time.Second

// Config represents the configuration shared by every tool server binary.
// Each binary reads only the sections it needs.
type Config struct {
	Server  ServerConfig         `toml:"server"`
	Logging common.LoggingConfig `toml:"logging"`
	Train   TrainConfig          `toml:"train"`
	Crypto  CryptoConfig         `toml:"crypto"`
	Weather WeatherConfig        `toml:"weather"`
	Courier CourierConfig        `toml:"courier"`
	Android AndroidConfig        `toml:"android"`
}

// ServerConfig contains HTTP transport settings. Port 0 means the binary's own default.
type ServerConfig struct {
	Host string `toml:"host" env:"MCP_SERVER_HOST"`
	Port int    `toml:"port" env:"MCP_SERVER_PORT" validate:"gte=0,lte=65535"`
}

// TrainConfig contains train fare aggregator settings.
type TrainConfig struct {
	BaseURL    string   `toml:"base_url" env:"TRAIN_BASE_URL" validate:"required,url"`
	Timeout    string   `toml:"timeout" env:"TRAIN_TIMEOUT"`
	UserAgents []string `toml:"user_agents" validate:"min=1"`
}

// CryptoConfig contains crypto exchange settings.
type CryptoConfig struct {
	BaseURLs          []string `toml:"base_urls" env:"BINANCE_BASE_URLS" envSeparator:"," validate:"min=1,dive,url"`
	APIKey            string   `toml:"api_key" env:"BINANCE_API_KEY"`
	Timeout           string   `toml:"timeout" env:"BINANCE_TIMEOUT"`
	ReferenceDocument string   `toml:"reference_document" env:"BINANCE_REFERENCE_DOCUMENT"`
}

// WeatherConfig contains weather provider settings.
type WeatherConfig struct {
	BaseURL string `toml:"base_url" env:"WEATHER_BASE_URL" validate:"required,url"`
	Timeout string `toml:"timeout" env:"WEATHER_TIMEOUT"`
}

// CourierConfig contains courier tracker settings.
type CourierConfig struct {
	BaseURL string `toml:"base_url" env:"KUAIDI100_BASE_URL" validate:"required,url"`
	APIKey  string `toml:"api_key" env:"KUAIDI100_API_KEY"`
	Timeout string `toml:"timeout" env:"KUAIDI100_TIMEOUT"`
}

// AndroidConfig contains code generation defaults.
type AndroidConfig struct {
	DefaultPackage   string `toml:"default_package" validate:"required"`
	DefaultComponent string `toml:"default_component" validate:"required"`
	BindingPackage   string `toml:"binding_package" validate:"required"`
}

// GetTimeout parses and returns the train upstream timeout.
func (c TrainConfig) GetTimeout() time.Duration { return parseTimeout(c.Timeout) }

// GetTimeout parses and returns the crypto upstream timeout.
func (c CryptoConfig) GetTimeout() time.Duration { return parseTimeout(c.Timeout) }

// GetTimeout parses and returns the weather upstream timeout.
func (c WeatherConfig) GetTimeout() time.Duration { return parseTimeout(c.Timeout) }

// GetTimeout parses and returns the courier upstream timeout.
func (c CourierConfig) GetTimeout() time.Duration { return parseTimeout(c.Timeout) }

func parseTimeout(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return defaultTimeout
	}
	return d
}

// LoadFromFiles loads configuration with priority:
// defaults -> file1 -> file2 -> ... -> env.
// Later files override earlier files.
func LoadFromFiles(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for i, path := range paths {
		if path == "" {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read config file %s", path)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, errors.Wrapf(err, "failed to parse config file %s (file %d of %d)", path, i+1, len(paths))
		}
	}

	if err := applyEnvOverrides(config); err != nil {
		return nil, err
	}

	return config, nil
}

// applyEnvOverrides overlays environment variables declared in `env` struct tags.
// Unset variables leave the current value untouched.
func applyEnvOverrides(config *Config) error {
	if err := env.Parse(config); err != nil {
		return errors.Wrap(err, "failed to apply environment overrides")
	}
	return nil
}

// ApplyFlagOverrides applies command-line flag overrides to config.
func ApplyFlagOverrides(config *Config, port int, host string) {
	if port > 0 {
		config.Server.Port = port
	}
	if host != "" {
		config.Server.Host = host
	}
}

// Validate checks the configuration and returns one message per problem found.
func (c *Config) Validate() []string {
	var issues []string

	if err := validator.New().Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return []string{err.Error()}
		}
		for _, fe := range verrs {
			issues = append(issues, describeFieldError(fe))
		}
	}

	timeouts := map[string]string{
		"train.timeout":   c.Train.Timeout,
		"crypto.timeout":  c.Crypto.Timeout,
		"weather.timeout": c.Weather.Timeout,
		"courier.timeout": c.Courier.Timeout,
	}
	for _, key := range []string{"train.timeout", "crypto.timeout", "weather.timeout", "courier.timeout"} {
		if v := timeouts[key]; v != "" {
			if _, err := time.ParseDuration(v); err != nil {
				issues = append(issues, fmt.Sprintf("%s: %q is not a valid duration", key, v))
			}
		}
	}

	return issues
}

// describeFieldError renders a validator failure using TOML key names.
func describeFieldError(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		ns = ns[i+1:]
	}
	key := strings.ToLower(ns)
	if fe.Param() != "" {
		return fmt.Sprintf("%s: failed %s=%s (value %v)", key, fe.Tag(), fe.Param(), fe.Value())
	}
	return fmt.Sprintf("%s: failed %s (value %v)", key, fe.Tag(), fe.Value())
}
