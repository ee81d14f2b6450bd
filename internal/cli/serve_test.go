package cli

import (
	"context"
	"testing"

	"github.com/sketchwall/sketchwall/internal/config"
	"github.com/sketchwall/sketchwall/internal/store"
	"github.com/sketchwall/sketchwall/pkg/cache"
)

func TestNewStoreMemory(t *testing.T) {
	cfg := config.Default()

	st, err := newStore(context.Background(), cfg)
	if err != nil {
		t.Fatalf("newStore() error: %v", err)
	}
	defer st.Close()

	if _, ok := st.(*store.MemoryStore); !ok {
		t.Errorf("newStore() = %T, want *store.MemoryStore", st)
	}
}

func TestNewStoreFile(t *testing.T) {
	cfg := config.Default()
	cfg.Store.Backend = config.StoreFile
	cfg.Store.Dir = t.TempDir()

	st, err := newStore(context.Background(), cfg)
	if err != nil {
		t.Fatalf("newStore() error: %v", err)
	}
	defer st.Close()

	fs, ok := st.(*store.FileStore)
	if !ok {
		t.Fatalf("newStore() = %T, want *store.FileStore", st)
	}
	if fs.Path() != cfg.Store.Dir {
		t.Errorf("store dir = %q, want %q", fs.Path(), cfg.Store.Dir)
	}
}

func TestNewStoreUnknownBackend(t *testing.T) {
	cfg := config.Default()
	cfg.Store.Backend = "etcd"

	if _, err := newStore(context.Background(), cfg); err == nil {
		t.Error("newStore() should reject an unknown backend")
	}
}

func TestNewArtifactCacheDisabled(t *testing.T) {
	cfg := config.Default()
	cfg.Cache.Enabled = false

	c, err := newArtifactCache(cfg)
	if err != nil {
		t.Fatalf("newArtifactCache() error: %v", err)
	}
	if _, ok := c.(*cache.NullCache); !ok {
		t.Errorf("newArtifactCache() = %T, want *cache.NullCache", c)
	}
}

func TestNewArtifactCacheMemory(t *testing.T) {
	cfg := config.Default()

	c, err := newArtifactCache(cfg)
	if err != nil {
		t.Fatalf("newArtifactCache() error: %v", err)
	}
	if _, ok := c.(*cache.MemoryCache); !ok {
		t.Errorf("newArtifactCache() = %T, want *cache.MemoryCache", c)
	}
}

func TestNewArtifactCacheFile(t *testing.T) {
	cfg := config.Default()
	cfg.Cache.Backend = config.CacheFile
	cfg.Cache.Dir = t.TempDir()

	c, err := newArtifactCache(cfg)
	if err != nil {
		t.Fatalf("newArtifactCache() error: %v", err)
	}
	defer c.Close()

	if _, ok := c.(*cache.FileCache); !ok {
		t.Errorf("newArtifactCache() = %T, want *cache.FileCache", c)
	}
}

func TestCacheLabel(t *testing.T) {
	cfg := config.Default()
	if got := cacheLabel(cfg); got == "" || got == "disabled" {
		t.Errorf("cacheLabel() = %q for an enabled cache", got)
	}

	cfg.Cache.Enabled = false
	if got := cacheLabel(cfg); got != "disabled" {
		t.Errorf("cacheLabel() = %q, want %q", got, "disabled")
	}
}
