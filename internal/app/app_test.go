package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xingmcp/toolservers/internal/common"
	"github.com/xingmcp/toolservers/internal/config"
	"github.com/xingmcp/toolservers/internal/tools"
	"github.com/xingmcp/toolservers/internal/tools/toolstest"
)

func echoBinary() Binary {
	return Binary{
		Name:         "echo-mcp",
		Instructions: "echoes text",
		DefaultPort:  4321,
		Register: func(a *App) error {
			return a.Registry.Register(
				mcp.NewTool("echo", mcp.WithString("text", mcp.Required())),
				func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
					return tools.TextResult(req.GetString("text", "")), nil
				},
			)
		},
	}
}

func TestNew_RegistersTools(t *testing.T) {
	a, err := New(echoBinary(), config.NewDefaultConfig(), common.NewSilentLogger())
	require.NoError(t, err)

	assert.Equal(t, []string{"echo"}, toolstest.ToolNames(t, a.MCP))

	result := toolstest.CallTool(t, a.MCP, "echo", map[string]any{"text": "hi"})
	assert.False(t, result.IsError)
	assert.Equal(t, "hi", toolstest.Text(t, result))
}

func TestNew_RegisterFailure(t *testing.T) {
	b := echoBinary()
	b.Register = func(*App) error { return errors.New("boom") }

	_, err := New(b, config.NewDefaultConfig(), common.NewSilentLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "echo-mcp")
	assert.Contains(t, err.Error(), "boom")
}

func TestRun_Version(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := Run(echoBinary(), []string{"-version"}, &stdout, &stderr)

	assert.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "echo-mcp version ")
}

func TestRun_UnknownFlag(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := Run(echoBinary(), []string{"-bogus"}, &stdout, &stderr)

	assert.Equal(t, 2, code)
	assert.Contains(t, stderr.String(), "bogus")
}

func TestRun_MissingConfigFile(t *testing.T) {
	var stdout, stderr bytes.Buffer
	missing := filepath.Join(t.TempDir(), "nope.toml")
	code := Run(echoBinary(), []string{"-c", missing, "-env", filepath.Join(t.TempDir(), ".env")}, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "failed to load configuration")
}

func TestRun_InvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("[weather]\nbase_url = \"not a url\"\n"), 0644))

	var stdout, stderr bytes.Buffer
	code := Run(echoBinary(), []string{"-config", path, "-env", filepath.Join(t.TempDir(), ".env")}, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "weather.baseurl")
}

func TestParseFlags_ShorthandPortWins(t *testing.T) {
	opts, err := parseFlags("x", []string{"-port", "1000", "-p", "2000", "-c", "a.toml", "-config", "b.toml"}, &bytes.Buffer{})
	require.NoError(t, err)

	assert.Equal(t, 2000, opts.port)
	assert.Equal(t, configPaths{"a.toml", "b.toml"}, opts.configFiles)
}

func TestConfigSearchPaths(t *testing.T) {
	paths := configSearchPaths("train-mcp")

	assert.Contains(t, paths, "train-mcp.toml")
	assert.Contains(t, paths, filepath.Join("config", "train-mcp.toml"))
	assert.Contains(t, paths, filepath.Join("config", "tools.toml"))

	seen := map[string]bool{}
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		require.NoError(t, err)
		assert.False(t, seen[abs], "duplicate path %s", p)
		seen[abs] = true
	}
}
