package httputil

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// ErrExpired is returned by [Cache.Get] when a cached entry exists but has
// exceeded its time-to-live. The stale data stays on disk; callers should
// fetch fresh data and refresh the entry with [Cache.Set].
var ErrExpired = errors.New("cache entry expired")

// Cache is a file-based cache for JSON-marshalable data.
//
// Each entry is a JSON file named after the SHA-256 of the cache key, so
// arbitrary keys (URLs, package names) are safe. Expiry is based on file
// modification time; a TTL of 0 means entries never expire.
//
// A Cache instance is not goroutine-safe, but multiple instances, even in
// different processes, can share a directory: writes go through a rename,
// so readers never observe a partial entry.
type Cache struct {
	dir    string
	ttl    time.Duration
	prefix string
}

// NewCache creates a Cache that stores entries in dir with the given TTL.
// If dir is empty, ~/.cache/trovegen is used. The directory is created if
// it doesn't exist; directory creation is the only possible failure.
func NewCache(dir string, ttl time.Duration) (*Cache, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		dir = filepath.Join(home, ".cache", "trovegen")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Cache{dir: dir, ttl: ttl}, nil
}

// Dir returns the absolute path to the cache directory.
func (c *Cache) Dir() string { return c.dir }

// TTL returns the time-to-live for cache entries. 0 means no expiry.
func (c *Cache) TTL() time.Duration { return c.ttl }

// Get retrieves the entry for key and unmarshals it into v.
//
// Outcomes:
//   - (true, nil): hit; v holds the cached value.
//   - (false, nil): miss; no entry exists. v is unchanged.
//   - (false, ErrExpired): entry exists but is past its TTL. v is unchanged.
//   - (false, other): I/O or unmarshal failure.
//
// Get never mutates the cache; reads don't refresh TTLs.
func (c *Cache) Get(key string, v any) (bool, error) {
	f, err := os.Open(c.keyPath(key))
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	defer f.Close()

	if c.ttl > 0 {
		info, err := f.Stat()
		if err != nil {
			return false, err
		}
		if time.Since(info.ModTime()) > c.ttl {
			return false, ErrExpired
		}
	}
	return true, json.NewDecoder(f).Decode(v)
}

// Set stores v under key, overwriting any existing entry and resetting its
// TTL. v must be JSON-marshalable. The entry is written to a temporary file
// and renamed into place, so concurrent readers see either the old value or
// the new one.
func (c *Cache) Set(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	path := c.keyPath(key)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// Namespace returns a view of the cache that prefixes every key, keeping
// different endpoints from colliding:
//
//	classifiers := cache.Namespace("classifiers:")
//	version := cache.Namespace("version:")
//
// The view shares the parent's directory and TTL. Calls can be chained.
func (c *Cache) Namespace(prefix string) *Cache {
	return &Cache{
		dir:    c.dir,
		ttl:    c.ttl,
		prefix: c.prefix + prefix,
	}
}

func (c *Cache) keyPath(key string) string {
	sum := sha256.Sum256([]byte(c.prefix + key))
	return filepath.Join(c.dir, hex.EncodeToString(sum[:])+".json")
}
