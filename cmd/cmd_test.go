package cmd

import (
	"testing"
)

func TestNew(t *testing.T) {
	cmd := New()
	if cmd == nil {
		t.Fatal("New() returned nil")
	}
	if cmd.Use != "trendyrepo" {
		t.Errorf("expected Use to be 'trendyrepo', got %q", cmd.Use)
	}
}

func TestNewCmdTrending(t *testing.T) {
	opts := &Options{}
	cmd := NewCmdTrending(opts)
	if cmd == nil {
		t.Fatal("NewCmdTrending() returned nil")
	}
	if cmd.Use != "trending" {
		t.Errorf("expected Use to be 'trending', got %q", cmd.Use)
	}
}

func TestNewCmdConfig(t *testing.T) {
	cmd := NewCmdConfig()
	if cmd == nil {
		t.Fatal("NewCmdConfig() returned nil")
	}
	if cmd.Use != "config" {
		t.Errorf("expected Use to be 'config', got %q", cmd.Use)
	}
}

func TestNewCmdCache(t *testing.T) {
	cmd := NewCmdCache()
	if cmd == nil {
		t.Fatal("NewCmdCache() returned nil")
	}
	if cmd.Use != "cache" {
		t.Errorf("expected Use to be 'cache', got %q", cmd.Use)
	}
}

func TestNewCmdVersion(t *testing.T) {
	cmd := NewCmdVersion()
	if cmd == nil {
		t.Fatal("NewCmdVersion() returned nil")
	}
	if cmd.Use != "version" {
		t.Errorf("expected Use to be 'version', got %q", cmd.Use)
	}
}

func TestSetVersionInfo(t *testing.T) {
	SetVersionInfo("1.0.0", "abc123", "2024-01-01")
	if version != "1.0.0" || commit != "abc123" || date != "2024-01-01" {
		t.Errorf("version info not applied: %s %s %s", version, commit, date)
	}

	// Empty values leave the previous ones in place
	SetVersionInfo("", "", "")
	if version != "1.0.0" {
		t.Errorf("empty version overwrote previous value: %s", version)
	}
}

func TestNewOptions(t *testing.T) {
	opts := NewOptions()
	if opts.Window != "weekly" {
		t.Errorf("default Window = %q, want %q", opts.Window, "weekly")
	}

	opts = NewOptions(
		WithWindow("daily"),
		WithLanguage("go"),
		WithFormat("json"),
		WithLimit(10),
		WithVerbosity(2),
		WithNoCache(true),
	)
	if opts.Window != "daily" {
		t.Errorf("Window = %q, want %q", opts.Window, "daily")
	}
	if opts.Language != "go" {
		t.Errorf("Language = %q, want %q", opts.Language, "go")
	}
	if opts.Format != "json" {
		t.Errorf("Format = %q, want %q", opts.Format, "json")
	}
	if opts.Limit != 10 {
		t.Errorf("Limit = %d, want 10", opts.Limit)
	}
	if opts.Verbosity != 2 {
		t.Errorf("Verbosity = %d, want 2", opts.Verbosity)
	}
	if !opts.NoCache {
		t.Error("NoCache = false, want true")
	}
}

func TestTUIFlag(t *testing.T) {
	opts := &Options{}
	f := newTUIFlag(opts)

	if f.String() != "auto" {
		t.Errorf("default String() = %q, want %q", f.String(), "auto")
	}

	if err := f.Set("true"); err != nil {
		t.Fatalf("Set(true) error = %v", err)
	}
	if opts.TUI == nil || !*opts.TUI {
		t.Error("Set(true) did not force TUI on")
	}

	if err := f.Set("false"); err != nil {
		t.Fatalf("Set(false) error = %v", err)
	}
	if opts.TUI == nil || *opts.TUI {
		t.Error("Set(false) did not force TUI off")
	}

	if err := f.Set("auto"); err != nil {
		t.Fatalf("Set(auto) error = %v", err)
	}
	if opts.TUI != nil {
		t.Error("Set(auto) did not reset to auto-detect")
	}

	if err := f.Set("maybe"); err == nil {
		t.Error("Set(maybe) expected error, got nil")
	}
}

func TestShouldUseTUIVerbosityWins(t *testing.T) {
	force := true
	opts := &Options{Verbosity: 1, TUI: &force}
	if shouldUseTUI(opts) {
		t.Error("verbose mode should disable the TUI even when forced on")
	}
}
