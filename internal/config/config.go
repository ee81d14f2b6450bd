// Package config loads server configuration.
//
// Configuration is read from a TOML file and merged over built-in
// defaults, so a config file only needs to name the settings it
// changes. The serve command layers its flags on top afterwards.
//
// # Example
//
//	[server]
//	host = "0.0.0.0"
//	port = 8418
//	mdns = true
//
//	[store]
//	backend = "redis"
//
//	[store.redis]
//	addr = "localhost:6379"
//
//	[cache]
//	enabled = true
//	backend = "memory"
//	ttl = "15m"
//
//	[render]
//	max_concurrent_rasters = 4
//	timeout = "30s"
package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/sketchwall/sketchwall/pkg/errors"
)

// Store backend names.
const (
	StoreMemory = "memory"
	StoreFile   = "file"
	StoreRedis  = "redis"
	StoreMongo  = "mongo"
)

// Cache backend names.
const (
	CacheMemory = "memory"
	CacheFile   = "file"
)

// DefaultPort is the port the server listens on when unconfigured.
const DefaultPort = 8418

// Duration wraps time.Duration for TOML decoding from strings like
// "30s" or "15m".
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler for TOML.
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// Config is the root server configuration.
type Config struct {
	Server ServerConfig `toml:"server"`
	Store  StoreConfig  `toml:"store"`
	Cache  CacheConfig  `toml:"cache"`
	Render RenderConfig `toml:"render"`
}

// ServerConfig controls the HTTP listener.
type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`

	// MDNS advertises the server on the local network so other
	// machines can discover it without knowing the address.
	MDNS bool `toml:"mdns"`

	// Name is the instance name announced over mDNS.
	Name string `toml:"name"`
}

// StoreConfig selects and configures the board store.
type StoreConfig struct {
	// Backend is one of memory, file, redis or mongo.
	Backend string `toml:"backend"`

	// Dir is the board directory for the file backend.
	// Empty means ~/.config/sketchwall/boards/
	Dir string `toml:"dir"`

	Redis RedisConfig `toml:"redis"`
	Mongo MongoConfig `toml:"mongo"`
}

// RedisConfig configures the redis store backend.
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// MongoConfig configures the mongo store backend.
type MongoConfig struct {
	URI        string `toml:"uri"`
	Database   string `toml:"database"`
	Collection string `toml:"collection"`
}

// CacheConfig controls render artifact caching.
type CacheConfig struct {
	Enabled bool `toml:"enabled"`

	// Backend is memory or file.
	Backend string `toml:"backend"`

	// Dir is the artifact directory for the file backend.
	Dir string `toml:"dir"`

	// KeyPrefix namespaces artifact keys, for instances sharing one
	// cache directory.
	KeyPrefix string `toml:"key_prefix"`

	// TTL bounds how long an artifact stays valid.
	TTL Duration `toml:"ttl"`
}

// RenderConfig bounds server-side rendering.
type RenderConfig struct {
	// MaxConcurrentRasters caps simultaneous chromium sessions. Raster
	// requests beyond the cap are rejected with Retry-After rather
	// than queued.
	MaxConcurrentRasters int `toml:"max_concurrent_rasters"`

	// Timeout bounds one rasterization.
	Timeout Duration `toml:"timeout"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Host: "127.0.0.1",
			Port: DefaultPort,
			Name: "sketchwall",
		},
		Store: StoreConfig{
			Backend: StoreMemory,
			Redis:   RedisConfig{Addr: "localhost:6379"},
			Mongo:   MongoConfig{URI: "mongodb://localhost:27017"},
		},
		Cache: CacheConfig{
			Enabled: true,
			Backend: CacheMemory,
			TTL:     Duration{15 * time.Minute},
		},
		Render: RenderConfig{
			MaxConcurrentRasters: 2,
			Timeout:              Duration{30 * time.Second},
		},
	}
}

// Load reads a TOML config file over the defaults. An empty path
// returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidInput, err, "load config %s", path)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return cfg, errors.New(errors.ErrCodeInvalidInput, "unknown config key %q in %s", undecoded[0].String(), path)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks cross-field constraints.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return errors.New(errors.ErrCodeInvalidInput, "server port %d out of range", c.Server.Port)
	}

	switch c.Store.Backend {
	case StoreMemory, StoreFile:
	case StoreRedis:
		if c.Store.Redis.Addr == "" {
			return errors.New(errors.ErrCodeInvalidInput, "redis store requires store.redis.addr")
		}
	case StoreMongo:
		if c.Store.Mongo.URI == "" {
			return errors.New(errors.ErrCodeInvalidInput, "mongo store requires store.mongo.uri")
		}
	default:
		return errors.New(errors.ErrCodeInvalidInput, "unknown store backend %q", c.Store.Backend)
	}

	if c.Cache.Enabled {
		switch c.Cache.Backend {
		case CacheMemory, CacheFile:
		default:
			return errors.New(errors.ErrCodeInvalidInput, "unknown cache backend %q", c.Cache.Backend)
		}
	}

	if c.Render.MaxConcurrentRasters < 1 {
		return errors.New(errors.ErrCodeInvalidInput, "render.max_concurrent_rasters must be at least 1")
	}
	if c.Render.Timeout.Duration <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "render.timeout must be positive")
	}
	return nil
}

// Addr returns the host:port the server binds to.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
