// Package cli implements the grove command-line interface.
//
// This package provides commands for parsing grove notation into
// forests, sorting and rendering them as text, JSON, DOT, SVG or PNG,
// exploring a forest interactively, and running the HTTP server. The
// CLI is built using cobra and supports verbose logging via the
// charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - parse: Parse notation and print the forest as text, JSON or DOT
//   - render: Rasterize a forest to SVG or PNG via Graphviz
//   - explore: Browse a forest interactively in the terminal
//   - serve: Run the grove HTTP API
//   - cache: Manage the render cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The
// logger is carried on the command context so helpers stay decoupled
// from the CLI struct.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/mvoggen/grove/pkg/buildinfo"
	"github.com/mvoggen/grove/pkg/cache"
)

// appName is the application name used for directories and display.
const appName = "grove"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config *Config
}

// New creates a new CLI instance with a default logger and the config
// file loaded from its default location (missing file means defaults).
func New(w io.Writer, level log.Level) *CLI {
	cfg, err := LoadDefaultConfig()
	logger := newLogger(w, level)
	if err != nil {
		logger.Warnf("Config ignored: %v", err)
		cfg = DefaultConfig()
	}
	return &CLI{Logger: logger, Config: cfg}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "grove",
		Short:        "Grove parses and renders nested name forests",
		Long:         `Grove is a CLI tool for the flat forest notation "a, b(c, d), e": it parses the notation into a tree, sorts it alphabetically at every depth, and renders it as an indented hierarchy, JSON, Graphviz DOT, SVG or PNG.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.parseCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.exploreCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newRenderCache returns the cache used for rasterized artifacts.
// Failure to set up the file cache degrades to no caching.
func (c *CLI) newRenderCache(noCache bool) cache.Cache {
	if noCache {
		return cache.NewNullCache()
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache()
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		c.Logger.Warnf("Render cache disabled: %v", err)
		return cache.NewNullCache()
	}
	return fc
}

// cacheDir returns the render cache directory, honoring XDG_CACHE_HOME.
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
