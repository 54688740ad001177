package common

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerFromConfig_FluentAPI(t *testing.T) {
	logger := NewLoggerFromConfig(LoggingConfig{Level: "error"})
	require.NotNil(t, logger)

	// Must not panic
	logger.Info().Str("key", "value").Msg("test message")
	logger.Warn().Int("count", 42).Msg("warning")
	logger.Error().Err(nil).Msg("error message")
	logger.Debug().Bool("ok", true).Msg("debug")
}

func TestNewLoggerFromConfig_FileOutput(t *testing.T) {
	path := t.TempDir() + "/tools.log"
	logger := NewLoggerFromConfig(LoggingConfig{
		Level:    "info",
		Outputs:  []string{"file"},
		FilePath: path,
	})
	require.NotNil(t, logger)
	logger.Info().Msg("written to file")
}

func TestNewLoggerFromConfig_DoesNotWriteToStdout(t *testing.T) {
	// stdout is the MCP stdio channel.
	oldStdout := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	logger := NewLoggerFromConfig(LoggingConfig{Level: "info", Outputs: []string{"console"}})
	logger.Info().Str("tool", "test").Msg("this must not go to stdout")
	logger.Error().Msg("neither should this")

	w.Close()
	os.Stdout = oldStdout

	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	r.Close()

	assert.Zero(t, buf.Len(), "logger wrote to stdout: %s", buf.String())
}

func TestNewSilentLogger_DoesNotWriteToGlobalWriters(t *testing.T) {
	var buf bytes.Buffer
	_ = NewLoggerWithOutput("info", &buf)
	buf.Reset()

	silent := NewSilentLogger()
	silent.Info().Str("key", "value").Msg("this should NOT appear")
	silent.Error().Msg("this should NOT appear either")

	assert.Zero(t, buf.Len(), "silent logger wrote: %s", buf.String())
}

func TestWithCorrelationId_ReturnsNewLogger(t *testing.T) {
	logger := NewLoggerFromConfig(LoggingConfig{Level: "error"})
	correlated := logger.WithCorrelationId("req-123")

	require.NotNil(t, correlated)
	assert.NotSame(t, logger, correlated)
	correlated.Info().Str("tool", "query_trace").Msg("handler start")
}

func TestLogLevel_Filtering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithOutput("warn", &buf)

	logger.Info().Msg("info message should not appear")
	logger.Error().Str("tool", "get_weather_by_city").Msg("error message should appear")

	out := buf.String()
	assert.False(t, strings.Contains(out, "info message should not appear"), out)
	assert.Contains(t, out, "error message should appear")
	assert.Contains(t, out, "tool=get_weather_by_city")
}

func TestGetFullVersion(t *testing.T) {
	assert.Contains(t, GetFullVersion(), GetVersion())
}
