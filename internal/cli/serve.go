package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sketchwall/sketchwall/internal/config"
	"github.com/sketchwall/sketchwall/internal/server"
	"github.com/sketchwall/sketchwall/internal/store"
	"github.com/sketchwall/sketchwall/pkg/buildinfo"
	"github.com/sketchwall/sketchwall/pkg/cache"
)

// newServeCmd creates the serve command that runs the board server.
// Settings come from an optional TOML config file; the flags below
// override the file when given explicitly.
func newServeCmd() *cobra.Command {
	var (
		configPath string
		host       string
		port       int
		name       string
		mdns       bool
		backend    string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the sketchwall board server",
		Long: `Run the HTTP board server.

The server stores boards, renders them on demand with artifact caching,
exports them, and syncs edits to connected clients over websockets.
When mDNS is enabled the instance announces itself on the local network
so 'sketchwall discover' can find it.

Storage backends: memory (default), file, redis, mongo.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("host") {
				cfg.Server.Host = host
			}
			if flags.Changed("port") {
				cfg.Server.Port = port
			}
			if flags.Changed("name") {
				cfg.Server.Name = name
			}
			if flags.Changed("mdns") {
				cfg.Server.MDNS = mdns
			}
			if flags.Changed("store") {
				cfg.Store.Backend = backend
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return runServe(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to a TOML config file")
	cmd.Flags().StringVar(&host, "host", "", "interface to listen on")
	cmd.Flags().IntVarP(&port, "port", "p", 0, "port to listen on")
	cmd.Flags().StringVar(&name, "name", "", "instance name announced over mdns")
	cmd.Flags().BoolVar(&mdns, "mdns", false, "announce the server on the local network")
	cmd.Flags().StringVar(&backend, "store", "", "storage backend: memory, file, redis, mongo")

	return cmd
}

// runServe wires the configured store and artifact cache into a server
// and runs it until ctx is cancelled.
func runServe(ctx context.Context, cfg config.Config) error {
	logger := loggerFromContext(ctx)

	st, err := newStore(ctx, cfg)
	if err != nil {
		return err
	}
	boards := store.NewManager(st)
	defer boards.Close()

	artifacts, err := newArtifactCache(cfg)
	if err != nil {
		return err
	}

	fmt.Println(StyleTitle.Render(appName) + " " + StyleDim.Render(buildinfo.Version))
	printKeyValue("address", "http://"+cfg.Addr())
	printKeyValue("store", cfg.Store.Backend)
	printKeyValue("cache", cacheLabel(cfg))
	if cfg.Server.MDNS {
		printKeyValue("mdns", cfg.Server.Name)
	}
	printNewline()
	printNextStep("Check it", fmt.Sprintf("curl http://%s/healthz", cfg.Addr()))
	printNewline()

	srv := server.New(cfg, logger, boards, artifacts)
	if err := srv.ListenAndServe(ctx); err != nil {
		return err
	}

	printSuccess("Server stopped")
	return nil
}

// newStore builds the board store the config names. Remote backends
// connect eagerly so a bad address fails at startup, not on first use.
func newStore(ctx context.Context, cfg config.Config) (store.Store, error) {
	switch cfg.Store.Backend {
	case config.StoreMemory:
		return store.NewMemoryStore(), nil
	case config.StoreFile:
		return store.NewFileStore(cfg.Store.Dir)
	case config.StoreRedis:
		return store.NewRedisStore(ctx, store.RedisConfig{
			Addr:     cfg.Store.Redis.Addr,
			Password: cfg.Store.Redis.Password,
			DB:       cfg.Store.Redis.DB,
		})
	case config.StoreMongo:
		return store.NewMongoStore(ctx, store.MongoConfig{
			URI:        cfg.Store.Mongo.URI,
			Database:   cfg.Store.Mongo.Database,
			Collection: cfg.Store.Mongo.Collection,
		})
	default:
		return nil, fmt.Errorf("unknown store backend: %s", cfg.Store.Backend)
	}
}

// newArtifactCache builds the render artifact cache the config names.
// A disabled cache yields the null cache so the server code path stays
// uniform.
func newArtifactCache(cfg config.Config) (cache.Cache, error) {
	if !cfg.Cache.Enabled {
		return cache.NewNullCache(), nil
	}
	switch cfg.Cache.Backend {
	case config.CacheMemory:
		return cache.NewMemoryCache(), nil
	case config.CacheFile:
		dir := cfg.Cache.Dir
		if dir == "" {
			d, err := cacheDir()
			if err != nil {
				return nil, fmt.Errorf("resolve cache dir: %w", err)
			}
			dir = d
		}
		return cache.NewFileCache(dir)
	default:
		return nil, fmt.Errorf("unknown cache backend: %s", cfg.Cache.Backend)
	}
}

// cacheLabel summarizes the artifact cache setup for the startup banner.
func cacheLabel(cfg config.Config) string {
	if !cfg.Cache.Enabled {
		return "disabled"
	}
	return fmt.Sprintf("%s (ttl %s)", cfg.Cache.Backend, cfg.Cache.TTL.Duration)
}
