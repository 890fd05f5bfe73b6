package cache

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// newTestStore returns a store over a temp dir with a controllable clock.
func newTestStore(t *testing.T) (*Store, *time.Time) {
	t.Helper()
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	s := NewStoreAt(t.TempDir())
	s.now = func() time.Time { return now }
	return s, &now
}

func TestRoundTrip(t *testing.T) {
	s, _ := newTestStore(t)

	payload := json.RawMessage(`{"content":"hello"}`)
	s.Set("readme:owner:repo", payload)

	got, ok := s.Get("readme:owner:repo")
	if !ok {
		t.Fatal("expected cache hit")
	}
	if string(got) != string(payload) {
		t.Errorf("expected %s, got %s", payload, got)
	}
}

func TestGetMissingKey(t *testing.T) {
	s, _ := newTestStore(t)

	if _, ok := s.Get("info:owner:repo"); ok {
		t.Error("expected miss for absent key")
	}
}

func TestExpiredEntryIsEvicted(t *testing.T) {
	s, now := newTestStore(t)

	s.Set("readme:owner:repo", json.RawMessage(`"stale"`))

	// Advance past the TTL; the entry must read as absent and be removed.
	*now = now.Add(6 * time.Minute)
	if _, ok := s.Get("readme:owner:repo"); ok {
		t.Fatal("expected expired entry to miss")
	}

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("expected expired entry to be evicted, found %d files", len(entries))
	}
}

func TestEntryValidWithinTTL(t *testing.T) {
	s, now := newTestStore(t)

	s.Set("info:owner:repo", json.RawMessage(`{"topics":["go"]}`))

	*now = now.Add(4 * time.Minute)
	if _, ok := s.Get("info:owner:repo"); !ok {
		t.Error("expected hit within TTL")
	}
}

func TestCorruptEntryReportsMiss(t *testing.T) {
	s, _ := newTestStore(t)

	path := filepath.Join(s.dir, s.fileName("readme:owner:repo"))
	if err := os.WriteFile(path, []byte("not json"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, ok := s.Get("readme:owner:repo"); ok {
		t.Error("expected miss for corrupt entry")
	}
}

func TestVersionMismatchReportsMiss(t *testing.T) {
	s, _ := newTestStore(t)

	entry := Entry{
		Payload:  json.RawMessage(`"old"`),
		CachedAt: s.now(),
		Version:  cacheVersion + 1,
	}
	data, err := json.Marshal(entry)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(s.dir, s.fileName("readme:owner:repo"))
	if err := os.WriteFile(path, data, 0600); err != nil {
		t.Fatal(err)
	}

	if _, ok := s.Get("readme:owner:repo"); ok {
		t.Error("expected miss for version mismatch")
	}
}

func TestGetSetJSON(t *testing.T) {
	s, _ := newTestStore(t)

	type info struct {
		Description string   `json:"description"`
		Topics      []string `json:"topics"`
	}

	s.SetJSON("info:owner:repo", info{Description: "a tool", Topics: []string{"cli", "go"}})

	var got info
	if !s.GetJSON("info:owner:repo", &got) {
		t.Fatal("expected cache hit")
	}
	if got.Description != "a tool" || len(got.Topics) != 2 {
		t.Errorf("unexpected payload: %+v", got)
	}
}

func TestKeySanitization(t *testing.T) {
	s, _ := newTestStore(t)

	// Keys with separators must not escape the cache directory
	s.Set("readme:some/owner:some-repo", json.RawMessage(`"x"`))

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 cache file, got %d", len(entries))
	}
	if filepath.Ext(entries[0].Name()) != ".json" {
		t.Errorf("unexpected cache file name: %s", entries[0].Name())
	}
}

func TestClearAndStats(t *testing.T) {
	s, now := newTestStore(t)

	s.Set("readme:a:b", json.RawMessage(`"1"`))
	s.Set("info:a:b", json.RawMessage(`"2"`))
	*now = now.Add(6 * time.Minute)
	s.Set("readme:c:d", json.RawMessage(`"3"`))

	total, valid, err := s.Stats()
	if err != nil {
		t.Fatal(err)
	}
	if total != 3 || valid != 1 {
		t.Errorf("expected 3 total / 1 valid, got %d / %d", total, valid)
	}

	if err := s.Clear(); err != nil {
		t.Fatal(err)
	}
	total, _, err = s.Stats()
	if err != nil {
		t.Fatal(err)
	}
	if total != 0 {
		t.Errorf("expected empty cache after clear, got %d entries", total)
	}
}
