package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/draftwise/draftcore/internal/api"
	"github.com/draftwise/draftcore/pkg/cache"
	"github.com/draftwise/draftcore/pkg/pipeline"
	"github.com/draftwise/draftcore/pkg/store"
)

// shutdownGrace is how long in-flight requests get to finish on shutdown.
const shutdownGrace = 10 * time.Second

// serveCommand creates the serve command running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API over the drawing store",
		Long: `Run the HTTP API over the drawing store.

Drawings are served from the local file store by default. Configure a
MongoDB URI to store drawings there instead, and a Redis address to
share the contour and artifact cache between instances. The server
shuts down gracefully on interrupt.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", c.Config.Serve.Addr, "listen address")

	return cmd
}

// runServe assembles the store, cache, and router and serves until the
// context is cancelled.
func (c *CLI) runServe(ctx context.Context, addr string) error {
	st, err := c.serveStore(ctx)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	serveCache, err := c.serveCache(ctx)
	if err != nil {
		return fmt.Errorf("open cache: %w", err)
	}
	var keyer cache.Keyer
	if scope := c.Config.Serve.CacheScope; scope != "" {
		c.Logger.Info("scoping cache keys", "prefix", scope)
		keyer = cache.NewScopedKeyer(nil, scope)
	}
	runner := pipeline.NewRunner(serveCache, keyer, c.Logger)
	defer runner.Close()

	server := &http.Server{
		Addr:              addr,
		Handler:           api.NewServer(st, runner, c.Logger).Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		c.Logger.Info("listening", "addr", addr)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	c.Logger.Info("shutting down", "grace", shutdownGrace)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// serveStore picks MongoDB when configured, the file store otherwise.
func (c *CLI) serveStore(ctx context.Context) (store.Store, error) {
	if c.Config.Mongo.URI == "" {
		return c.newStore()
	}
	c.Logger.Info("using mongodb store", "database", c.Config.Mongo.Database)
	return store.NewMongoStore(ctx, store.MongoConfig{
		URI:        c.Config.Mongo.URI,
		Database:   c.Config.Mongo.Database,
		Collection: c.Config.Mongo.Collection,
	})
}

// serveCache picks Redis when configured, the file cache otherwise.
func (c *CLI) serveCache(ctx context.Context) (cache.Cache, error) {
	if c.Config.Redis.Addr == "" {
		return c.newCache(false)
	}
	c.Logger.Info("using redis cache", "addr", c.Config.Redis.Addr)
	return cache.NewRedisCache(ctx, cache.RedisConfig{
		Addr:     c.Config.Redis.Addr,
		Password: c.Config.Redis.Password,
		DB:       c.Config.Redis.DB,
	})
}
