package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	chdir(t, t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.DefaultFormat != "table" {
		t.Errorf("DefaultFormat = %q, want %q", cfg.DefaultFormat, "table")
	}
	if cfg.DefaultWindow != "weekly" {
		t.Errorf("DefaultWindow = %q, want %q", cfg.DefaultWindow, "weekly")
	}
	if cfg.DefaultLanguage != "" {
		t.Errorf("DefaultLanguage = %q, want empty", cfg.DefaultLanguage)
	}
}

func TestLoadGlobalConfig(t *testing.T) {
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)
	chdir(t, t.TempDir())

	dir := filepath.Join(configHome, "trendyrepo")
	if err := os.MkdirAll(dir, 0700); err != nil {
		t.Fatal(err)
	}
	content := "default_format: json\ndefault_window: daily\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.DefaultFormat != "json" {
		t.Errorf("DefaultFormat = %q, want %q", cfg.DefaultFormat, "json")
	}
	if cfg.DefaultWindow != "daily" {
		t.Errorf("DefaultWindow = %q, want %q", cfg.DefaultWindow, "daily")
	}
}

func TestLoadLocalOverridesGlobal(t *testing.T) {
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)

	dir := filepath.Join(configHome, "trendyrepo")
	if err := os.MkdirAll(dir, 0700); err != nil {
		t.Fatal(err)
	}
	global := "default_format: json\ndefault_language: rust\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(global), 0600); err != nil {
		t.Fatal(err)
	}

	workDir := t.TempDir()
	chdir(t, workDir)
	local := "default_language: go\n"
	if err := os.WriteFile(filepath.Join(workDir, ".trendyrepo.yaml"), []byte(local), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	// Local value wins, untouched global values survive.
	if cfg.DefaultLanguage != "go" {
		t.Errorf("DefaultLanguage = %q, want %q", cfg.DefaultLanguage, "go")
	}
	if cfg.DefaultFormat != "json" {
		t.Errorf("DefaultFormat = %q, want %q", cfg.DefaultFormat, "json")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)
	chdir(t, t.TempDir())

	dir := filepath.Join(configHome, "trendyrepo")
	if err := os.MkdirAll(dir, 0700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("{not yaml"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(); err == nil {
		t.Error("Load() expected error for invalid YAML, got nil")
	}
}

func TestSaveAndReload(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	chdir(t, t.TempDir())

	cfg := &Config{DefaultFormat: "json", DefaultWindow: "monthly", DefaultLanguage: "zig"}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.DefaultFormat != "json" || loaded.DefaultWindow != "monthly" || loaded.DefaultLanguage != "zig" {
		t.Errorf("reloaded config = %+v, want original values", loaded)
	}
}

func TestSetDefaultFormat(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	chdir(t, t.TempDir())

	cfg := &Config{}
	if err := cfg.SetDefaultFormat("json"); err != nil {
		t.Fatalf("SetDefaultFormat() error = %v", err)
	}

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		t.Fatalf("reading saved config: %v", err)
	}
	if !strings.Contains(string(data), "default_format: json") {
		t.Errorf("saved config missing format, got:\n%s", data)
	}
}

func TestGetGitHubToken(t *testing.T) {
	cfg := &Config{}

	t.Setenv("GITHUB_TOKEN", "")
	if got := cfg.GetGitHubToken(); got != "" {
		t.Errorf("GetGitHubToken() = %q, want empty", got)
	}

	t.Setenv("GITHUB_TOKEN", "ghp_testtoken")
	if got := cfg.GetGitHubToken(); got != "ghp_testtoken" {
		t.Errorf("GetGitHubToken() = %q, want %q", got, "ghp_testtoken")
	}
}

func TestDefaultConfigDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-test")
	dir := DefaultConfigDir()
	if !strings.HasSuffix(dir, filepath.Join("xdg-test", "trendyrepo")) {
		t.Errorf("DefaultConfigDir() = %q, want suffix trendyrepo under XDG_CONFIG_HOME", dir)
	}
}

// chdir switches the working directory for the duration of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(old) })
}
