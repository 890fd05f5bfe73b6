// Package cache provides best-effort caching for GitHub API responses.
//
// The cache is strictly advisory: a read that fails for any reason (missing
// entry, unreadable file, schema change, expired TTL) reports a miss, and a
// write that fails is dropped. Callers never see a cache error.
package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mosamy007/TrendyRepo/internal/constants"
	"github.com/mosamy007/TrendyRepo/internal/log"
)

// cacheVersion should be incremented when the cache format changes to
// invalidate old entries.
const cacheVersion = 1

// Store is a file-backed key/value store with per-entry expiry. Keys are
// namespaced strings such as "readme:owner:repo"; payloads are opaque JSON.
type Store struct {
	dir string
	ttl time.Duration
	now func() time.Time
}

// Entry is the on-disk envelope around a cached payload.
type Entry struct {
	Payload  json.RawMessage `json:"payload"`
	CachedAt time.Time       `json:"cachedAt"`
	Version  int             `json:"version"`
}

// NewStore creates a store rooted at the user cache directory.
func NewStore() (*Store, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return nil, err
	}

	cacheDir = filepath.Join(cacheDir, "trendyrepo")
	if err := os.MkdirAll(cacheDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	return NewStoreAt(cacheDir), nil
}

// NewStoreAt creates a store rooted at an explicit directory. Used by tests.
func NewStoreAt(dir string) *Store {
	return &Store{
		dir: dir,
		ttl: constants.CacheTTL,
		now: time.Now,
	}
}

// fileName maps a namespaced key to a safe file name, preserving uniqueness.
func (s *Store) fileName(key string) string {
	safe := strings.NewReplacer("/", "_", ":", "_", "\\", "_").Replace(key)
	return safe + ".json"
}

// Get retrieves the cached payload for a key. It reports a miss for entries
// older than the TTL and removes them so a stale payload is never served.
// Deserialization failures also report a miss; the distinction between a miss
// and a broken entry only matters for debug logging.
func (s *Store) Get(key string) (json.RawMessage, bool) {
	if s == nil || key == "" {
		return nil, false
	}

	path := filepath.Join(s.dir, s.fileName(key))

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}

	var entry Entry
	if err := json.Unmarshal(data, &entry); err != nil {
		log.Debug("cache entry unreadable", "key", key, "error", err)
		return nil, false
	}

	// Invalidate if the cache format changed
	if entry.Version != cacheVersion {
		log.Debug("cache version mismatch", "cached", entry.Version, "current", cacheVersion, "key", key)
		return nil, false
	}

	if s.now().Sub(entry.CachedAt) > s.ttl {
		// Expired entries must never be served; evict on read.
		_ = os.Remove(path)
		return nil, false
	}

	return entry.Payload, true
}

// GetJSON retrieves and decodes a cached payload into v.
func (s *Store) GetJSON(key string, v any) bool {
	payload, ok := s.Get(key)
	if !ok {
		return false
	}
	if err := json.Unmarshal(payload, v); err != nil {
		log.Debug("cache payload decode failed", "key", key, "error", err)
		return false
	}
	return true
}

// Set stores a payload under a key. Failures are logged at debug level and
// otherwise ignored; caching must never fail the caller.
func (s *Store) Set(key string, payload json.RawMessage) {
	if s == nil || key == "" || payload == nil {
		return
	}

	entry := Entry{
		Payload:  payload,
		CachedAt: s.now(),
		Version:  cacheVersion,
	}

	data, err := json.Marshal(entry)
	if err != nil {
		log.Debug("cache entry marshal failed", "key", key, "error", err)
		return
	}

	path := filepath.Join(s.dir, s.fileName(key))
	if err := os.WriteFile(path, data, 0600); err != nil {
		log.Debug("cache write failed", "key", key, "error", err)
	}
}

// SetJSON encodes v and stores it under a key.
func (s *Store) SetJSON(key string, v any) {
	payload, err := json.Marshal(v)
	if err != nil {
		log.Debug("cache payload marshal failed", "key", key, "error", err)
		return
	}
	s.Set(key, payload)
}

// Clear removes all cached entries.
func (s *Store) Clear() error {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if err := os.Remove(filepath.Join(s.dir, entry.Name())); err != nil {
			return err
		}
	}

	return nil
}

// Stats returns the total and still-valid entry counts.
func (s *Store) Stats() (total int, valid int, err error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return 0, 0, err
	}

	now := s.now()
	for _, dirEntry := range entries {
		data, err := os.ReadFile(filepath.Join(s.dir, dirEntry.Name()))
		if err != nil {
			continue
		}

		total++
		var entry Entry
		if err := json.Unmarshal(data, &entry); err != nil {
			continue
		}
		if entry.Version == cacheVersion && now.Sub(entry.CachedAt) <= s.ttl {
			valid++
		}
	}

	return total, valid, nil
}
