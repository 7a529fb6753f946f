package cache

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// FileCache stores pipeline results as JSON files under a root directory.
// It is the default backend for the CLI, keeping computed layouts and
// rendered artifacts between runs.
type FileCache struct {
	root string
}

// NewFileCache opens a file cache rooted at dir, creating it if needed.
func NewFileCache(dir string) (Cache, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &FileCache{root: dir}, nil
}

// fileEntry is the on-disk envelope around a cached value. A zero ExpiresAt
// marks an entry that never expires.
type fileEntry struct {
	Data      []byte    `json:"data"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Get returns the cached value for key. Unreadable or expired entries are
// removed and reported as misses rather than errors; a stale layout is
// recomputed, never served.
func (c *FileCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	path := c.entryPath(key)

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var entry fileEntry
	if err := json.Unmarshal(raw, &entry); err != nil {
		_ = os.Remove(path)
		return nil, false, nil
	}
	if !entry.ExpiresAt.IsZero() && time.Now().After(entry.ExpiresAt) {
		_ = os.Remove(path)
		return nil, false, nil
	}
	return entry.Data, true, nil
}

// Set writes a value under key. A zero ttl stores the entry without an
// expiry; any other ttl, negative included, sets an absolute expiration.
func (c *FileCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	entry := fileEntry{Data: data}
	if ttl != 0 {
		entry.ExpiresAt = time.Now().Add(ttl)
	}

	raw, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	path := c.entryPath(key)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0644)
}

// Delete removes the entry for key, if present.
func (c *FileCache) Delete(ctx context.Context, key string) error {
	err := os.Remove(c.entryPath(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Close is a no-op; the cache holds no open handles between calls.
func (c *FileCache) Close() error { return nil }

// entryPath maps a key to a file path, fanning entries out into two-char
// subdirectories so large caches do not pile up in one directory.
func (c *FileCache) entryPath(key string) string {
	sum := Hash([]byte(key))
	return filepath.Join(c.root, sum[:2], sum[2:]+".json")
}

var _ Cache = (*FileCache)(nil)
