// Package app wires configuration, logging, the tool registry and the
// transports together for each tool server binary.
package app

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/cockroachdb/errors"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/xingmcp/toolservers/internal/common"
	"github.com/xingmcp/toolservers/internal/config"
	"github.com/xingmcp/toolservers/internal/server"
	"github.com/xingmcp/toolservers/internal/tools"
)

const shutdownTimeout = 10 * time.Second

// Binary describes one tool server executable.
type Binary struct {
	Name         string
	Instructions string
	DefaultPort  int
	// Register adds the binary's tools (and resources) once the App is built.
	Register func(*App) error
}

// App holds all application components and dependencies.
type App struct {
	Config   *config.Config
	Logger   *common.Logger
	MCP      *mcpserver.MCPServer
	Registry *tools.Registry
}

// New builds the MCP server and registry for b and runs its Register hook.
func New(b Binary, cfg *config.Config, logger *common.Logger) (*App, error) {
	s := mcpserver.NewMCPServer(b.Name, common.GetVersion(),
		mcpserver.WithToolCapabilities(true),
		mcpserver.WithResourceCapabilities(false, false),
		mcpserver.WithInstructions(b.Instructions),
		mcpserver.WithRecovery(),
	)

	a := &App{
		Config:   cfg,
		Logger:   logger,
		MCP:      s,
		Registry: tools.NewRegistry(s, logger),
	}

	if b.Register != nil {
		if err := b.Register(a); err != nil {
			return nil, errors.Wrapf(err, "failed to register %s tools", b.Name)
		}
	}

	logger.Info().
		Str("server", b.Name).
		Int("tools", len(a.Registry.List())).
		Msg("application initialization complete")

	return a, nil
}

// configPaths is a custom flag type that allows multiple -config flags.
type configPaths []string

func (c *configPaths) String() string {
	return fmt.Sprintf("%v", *c)
}

func (c *configPaths) Set(value string) error {
	*c = append(*c, value)
	return nil
}

type options struct {
	configFiles configPaths
	port        int
	portShort   int
	host        string
	envFile     string
	stdio       bool
	version     bool
}

func parseFlags(name string, args []string, stderr io.Writer) (*options, error) {
	o := &options{}
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Var(&o.configFiles, "config", "Configuration file path (can be specified multiple times)")
	fs.Var(&o.configFiles, "c", "Configuration file path (shorthand)")
	fs.IntVar(&o.port, "port", 0, "Server port (overrides config)")
	fs.IntVar(&o.portShort, "p", 0, "Server port (shorthand)")
	fs.StringVar(&o.host, "host", "", "Server host (overrides config)")
	fs.StringVar(&o.envFile, "env", ".env", "Dotenv file with credentials (ignored when missing)")
	fs.BoolVar(&o.stdio, "stdio", false, "Serve MCP over stdin/stdout instead of HTTP")
	fs.BoolVar(&o.version, "version", false, "Print version information")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	// Shorthand takes precedence.
	if o.portShort != 0 {
		o.port = o.portShort
	}
	return o, nil
}

// Main runs b with the process arguments and exits with its status.
func Main(b Binary) {
	os.Exit(Run(b, os.Args[1:], os.Stdout, os.Stderr))
}

// Run loads configuration, builds the App and serves until stopped.
// It returns the process exit status.
func Run(b Binary, args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(b.Name, args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if opts.version {
		fmt.Fprintf(stdout, "%s version %s\n", b.Name, common.GetFullVersion())
		return 0
	}

	if err := config.LoadDotEnv(opts.envFile); err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", b.Name, err)
		return 1
	}

	// Auto-discover config file if not specified.
	if len(opts.configFiles) == 0 {
		for _, path := range configSearchPaths(b.Name) {
			if _, err := os.Stat(path); err == nil {
				opts.configFiles = append(opts.configFiles, path)
				break
			}
		}
	}

	cfg, err := config.LoadFromFiles(opts.configFiles...)
	if err != nil {
		fmt.Fprintf(stderr, "%s: failed to load configuration: %v\n", b.Name, err)
		return 1
	}

	config.ApplyFlagOverrides(cfg, opts.port, opts.host)
	if cfg.Server.Port == 0 {
		cfg.Server.Port = b.DefaultPort
	}

	if issues := cfg.Validate(); len(issues) > 0 {
		fmt.Fprintln(stderr, "")
		fmt.Fprintln(stderr, "Configuration error, mandatory fields are missing or invalid:")
		fmt.Fprintln(stderr, "")
		for _, issue := range issues {
			fmt.Fprintf(stderr, "  - %s\n", issue)
		}
		fmt.Fprintln(stderr, "")
		fmt.Fprintln(stderr, "Values can be set via TOML file, environment variables, or CLI flags.")
		fmt.Fprintln(stderr, "")
		return 1
	}

	logger := common.NewLoggerFromConfig(cfg.Logging)

	logger.Info().
		Int("port", cfg.Server.Port).
		Str("host", cfg.Server.Host).
		Bool("stdio", opts.stdio).
		Str("config_files", opts.configFiles.String()).
		Msg("configuration loaded")

	a, err := New(b, cfg, logger)
	if err != nil {
		logger.Error().Err(err).Msg("failed to initialize application")
		return 1
	}

	if opts.stdio {
		if err := mcpserver.ServeStdio(a.MCP); err != nil {
			logger.Error().Err(err).Msg("stdio server failed")
			return 1
		}
		return 0
	}

	return a.serveHTTP(b.Name)
}

// serveHTTP starts the HTTP transport and blocks until SIGINT/SIGTERM.
func (a *App) serveHTTP(name string) int {
	srv := server.New(server.Options{
		Name:  name,
		Host:  a.Config.Server.Host,
		Port:  a.Config.Server.Port,
		MCP:   a.MCP,
		Tools: a.Registry,
	}, a.Logger)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	select {
	case <-sigChan:
		a.Logger.Info().Msg("shutdown signal received")
	case err := <-errCh:
		if err != nil {
			a.Logger.Error().Err(err).Msg("server failed to start")
			return 1
		}
		return 0
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		a.Logger.Error().Err(err).Msg("server shutdown failed")
		return 1
	}

	a.Logger.Info().Msg("server stopped")
	return 0
}

// configSearchPaths returns TOML files to auto-discover (first match wins).
// Binary-relative paths are tried first, then the working directory.
// Paths are deduplicated via filepath.Abs.
func configSearchPaths(name string) []string {
	candidates := []string{
		name + ".toml",
		filepath.Join("config", name+".toml"),
		filepath.Join("config", "tools.toml"),
	}

	var paths []string
	if exe, err := os.Executable(); err == nil {
		binDir := filepath.Dir(exe)
		paths = append(paths,
			filepath.Join(binDir, name+".toml"),
			filepath.Join(binDir, "config", name+".toml"),
		)
	}
	paths = append(paths, candidates...)

	seen := make(map[string]bool, len(paths))
	deduped := make([]string, 0, len(paths))
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			abs = p
		}
		if seen[abs] {
			continue
		}
		seen[abs] = true
		deduped = append(deduped, p)
	}
	return deduped
}
