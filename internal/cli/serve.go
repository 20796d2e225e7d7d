package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mvoggen/grove/pkg/cache"
	"github.com/mvoggen/grove/pkg/server"
	"github.com/mvoggen/grove/pkg/store"
)

// serveCommand creates the serve command, which runs the grove HTTP
// API. Store and cache backends come from the config file; the listen
// address can be overridden with --addr.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the grove HTTP API",
		Long: `Run an HTTP server exposing parsing and rendering of forests.

Saved forests are kept in the configured store (in-memory by default,
MongoDB for multi-instance deployments). Rendered SVG and PNG artifacts
are cached in the configured cache backend.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, addr string) error {
	if addr == "" {
		addr = c.Config.Server.Addr
	}

	st, err := c.newStore(ctx)
	if err != nil {
		return err
	}
	defer st.Close(context.Background())

	artifacts, err := c.newServerCache(ctx)
	if err != nil {
		return err
	}
	defer artifacts.Close()

	return server.New(c.Logger, st, artifacts).ListenAndServe(addr)
}

// newStore builds the forest store named by the config.
func (c *CLI) newStore(ctx context.Context) (store.Store, error) {
	cfg := c.Config.Store
	switch cfg.Backend {
	case "", "memory":
		c.Logger.Warn("Using in-memory store; saved forests are lost on restart")
		return store.NewMemoryStore(), nil
	case "mongo":
		if cfg.MongoURI == "" {
			return nil, fmt.Errorf("store backend mongo requires mongo_uri")
		}
		return store.NewMongoStore(ctx, cfg.MongoURI, cfg.MongoDatabase)
	default:
		return nil, fmt.Errorf("unknown store backend: %s", cfg.Backend)
	}
}

// newServerCache builds the artifact cache named by the config.
func (c *CLI) newServerCache(ctx context.Context) (cache.Cache, error) {
	cfg := c.Config.Cache
	switch cfg.Backend {
	case "none":
		return cache.NewNullCache(), nil
	case "", "file":
		dir, err := cacheDir()
		if err != nil {
			return cache.NewNullCache(), nil
		}
		return cache.NewFileCache(dir)
	case "redis":
		return cache.NewRedisCache(ctx, cfg.RedisAddr)
	default:
		return nil, fmt.Errorf("unknown cache backend: %s", cfg.Backend)
	}
}
