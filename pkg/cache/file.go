package cache

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// FileCache is a directory-backed cache for CLI runs. Artifact bytes
// (PNG screenshots, PDFs) are written raw; expiration metadata lives in
// a sidecar file so binary payloads are never base64-inflated.
type FileCache struct {
	dir string
}

// NewFileCache creates a file-based cache in the given directory.
// The directory will be created if it doesn't exist.
func NewFileCache(dir string) (Cache, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &FileCache{dir: dir}, nil
}

// fileMeta is the sidecar metadata for one cache entry.
type fileMeta struct {
	ExpiresAt time.Time `json:"expires_at"`
}

// Get retrieves a value from the cache.
func (c *FileCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	dataPath, metaPath := c.paths(key)

	meta, err := os.ReadFile(metaPath)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var m fileMeta
	if err := json.Unmarshal(meta, &m); err != nil {
		// Invalid cache entry - treat as miss
		c.remove(key)
		return nil, false, nil
	}

	// Check expiration
	if !m.ExpiresAt.IsZero() && time.Now().After(m.ExpiresAt) {
		c.remove(key)
		return nil, false, nil
	}

	data, err := os.ReadFile(dataPath)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

// Set stores a value in the cache.
func (c *FileCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	var m fileMeta
	if ttl > 0 {
		m.ExpiresAt = time.Now().Add(ttl)
	}

	meta, err := json.Marshal(m)
	if err != nil {
		return err
	}

	dataPath, metaPath := c.paths(key)
	if err := os.MkdirAll(filepath.Dir(dataPath), 0755); err != nil {
		return err
	}
	if err := os.WriteFile(dataPath, data, 0644); err != nil {
		return err
	}
	return os.WriteFile(metaPath, meta, 0644)
}

// Delete removes a value from the cache.
func (c *FileCache) Delete(ctx context.Context, key string) error {
	c.remove(key)
	return nil
}

// Close does nothing for file cache.
func (c *FileCache) Close() error {
	return nil
}

func (c *FileCache) remove(key string) {
	dataPath, metaPath := c.paths(key)
	_ = os.Remove(dataPath)
	_ = os.Remove(metaPath)
}

// paths converts a cache key to data and metadata file paths.
// Uses a hash-based directory structure to avoid too many files in one dir.
func (c *FileCache) paths(key string) (string, string) {
	hash := Hash([]byte(key))
	// Use first 2 chars as subdirectory for distribution
	base := filepath.Join(c.dir, hash[:2], hash[2:])
	return base + ".bin", base + ".meta"
}

// Ensure FileCache implements Cache.
var _ Cache = (*FileCache)(nil)
