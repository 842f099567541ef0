package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mdimension/mdim/internal/server"
	"github.com/mdimension/mdim/pkg/cache"
	"github.com/mdimension/mdim/pkg/pipeline"
)

// serveCommand creates the serve command for running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr      string
		noCache   bool
		redisAddr string
		mongoURI  string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		Long: `Run the HTTP API server.

The server exposes the geometry pipeline over REST. By default results
are cached on disk; point --redis or --mongo at a backend to share the
cache between instances.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), addr, noCache, redisAddr, mongoURI)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().StringVar(&redisAddr, "redis", "", "Redis address for a shared cache (e.g. localhost:6379)")
	cmd.Flags().StringVar(&mongoURI, "mongo", "", "MongoDB URI for a persistent cache")

	return cmd
}

// runServe builds the cache backend and serves until interrupted.
func (c *CLI) runServe(ctx context.Context, addr string, noCache bool, redisAddr, mongoURI string) error {
	cacheBackend, err := c.serveCache(ctx, noCache, redisAddr, mongoURI)
	if err != nil {
		return fmt.Errorf("initialize cache: %w", err)
	}

	runner := pipeline.NewRunner(cacheBackend, nil, c.Logger)
	defer runner.Close()

	srv := server.New(server.Config{
		Addr:   addr,
		Runner: runner,
		Logger: c.Logger,
	})

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return srv.Start(ctx)
}

// serveCache picks the cache backend: Redis and Mongo for shared
// deployments, the file cache otherwise.
func (c *CLI) serveCache(ctx context.Context, noCache bool, redisAddr, mongoURI string) (cache.Cache, error) {
	switch {
	case noCache:
		return cache.NewNullCache(), nil
	case redisAddr != "":
		c.Logger.Info("using redis cache", "addr", redisAddr)
		return cache.NewRedisCache(ctx, cache.RedisConfig{Addr: redisAddr})
	case mongoURI != "":
		c.Logger.Info("using mongo cache", "uri", mongoURI)
		return cache.NewMongoCache(ctx, cache.MongoConfig{URI: mongoURI})
	default:
		return newCache(false)
	}
}
