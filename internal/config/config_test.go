package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFrom(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `default_site = "main"

[sites]
main = "https://example.com/api/link-registry"
staging = "/tmp/registry.json"

[ui]
accent = "#A78BFA"
code_theme = "dracula"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.DefaultSite != "main" {
		t.Fatalf("DefaultSite = %q", cfg.DefaultSite)
	}
	if len(cfg.Sites) != 2 {
		t.Fatalf("Sites = %v", cfg.Sites)
	}
	if cfg.UI.Accent != "#A78BFA" || cfg.UI.CodeTheme != "dracula" {
		t.Fatalf("UI = %+v", cfg.UI)
	}
}

func TestGetRegistrySource(t *testing.T) {
	cfg := &Config{
		DefaultSite: "main",
		Sites: map[string]string{
			"main":    "https://example.com/registry",
			"staging": "/tmp/registry.json",
		},
	}

	src, err := cfg.GetRegistrySource("staging")
	if err != nil || src != "/tmp/registry.json" {
		t.Fatalf("got %q, %v", src, err)
	}

	src, err = cfg.GetDefaultRegistrySource()
	if err != nil || src != "https://example.com/registry" {
		t.Fatalf("got %q, %v", src, err)
	}

	if _, err := cfg.GetRegistrySource("missing"); err == nil {
		t.Fatal("expected error for unknown site")
	}

	empty := &Config{}
	if _, err := empty.GetDefaultRegistrySource(); err == nil {
		t.Fatal("expected error with no default site")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg := &Config{
		DefaultSite: "main",
		Sites:       map[string]string{"main": "https://example.com/registry"},
		UI:          UIConfig{Accent: "39"},
	}

	if err := SaveTo(path, cfg); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if loaded.DefaultSite != cfg.DefaultSite {
		t.Fatalf("DefaultSite = %q", loaded.DefaultSite)
	}
	if loaded.Sites["main"] != cfg.Sites["main"] {
		t.Fatalf("Sites = %v", loaded.Sites)
	}
	if loaded.UI.Accent != "39" || loaded.UI.CodeTheme != "" {
		t.Fatalf("UI = %+v", loaded.UI)
	}
}

func TestCreateDefault(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("HOME", tmp)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmp, ".config"))

	path, err := CreateDefault()
	if err != nil {
		t.Fatalf("CreateDefault: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file not written: %v", err)
	}

	// The starter file is all comments; it must parse as an empty config.
	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("starter config does not parse: %v", err)
	}
	if cfg.DefaultSite != "" || len(cfg.Sites) != 0 {
		t.Fatalf("starter config not empty: %+v", cfg)
	}

	// A second call must not clobber an existing file.
	if err := os.WriteFile(path, []byte(`default_site = "main"`), 0o644); err != nil {
		t.Fatal(err)
	}
	again, err := CreateDefault()
	if err != nil {
		t.Fatalf("CreateDefault (existing): %v", err)
	}
	if again != path {
		t.Fatalf("path changed: %q vs %q", again, path)
	}
	cfg, err = LoadFrom(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DefaultSite != "main" {
		t.Fatal("existing config was overwritten")
	}
}

func TestResolveStatePath(t *testing.T) {
	configPath := filepath.Join("/etc", "arcana", "config.toml")

	got := ResolveStatePath("/explicit/state.toml", configPath, nil)
	if got != "/explicit/state.toml" {
		t.Fatalf("explicit flag ignored: %q", got)
	}

	got = ResolveStatePath("", configPath, &Config{StateFile: "nested/state.toml"})
	if got != filepath.Join("/etc", "arcana", "nested", "state.toml") {
		t.Fatalf("relative state_file: %q", got)
	}

	got = ResolveStatePath("", configPath, &Config{StateFile: "/var/lib/arcana/state.toml"})
	if got != filepath.Clean("/var/lib/arcana/state.toml") {
		t.Fatalf("absolute state_file: %q", got)
	}

	got = ResolveStatePath("", configPath, &Config{})
	if got != filepath.Join("/etc", "arcana", "state.toml") {
		t.Fatalf("sibling default: %q", got)
	}
}

func TestStateRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.toml")

	// Missing file yields a default state.
	st, err := LoadState(path)
	if err != nil {
		t.Fatalf("LoadState: %v", err)
	}
	if st.Version != StateVersion || st.ActiveSite != "" {
		t.Fatalf("default state = %+v", st)
	}

	st.ActiveSite = "  staging  "
	if err := SaveState(path, st); err != nil {
		t.Fatalf("SaveState: %v", err)
	}

	loaded, err := LoadState(path)
	if err != nil {
		t.Fatalf("LoadState: %v", err)
	}
	if loaded.ActiveSite != "staging" {
		t.Fatalf("ActiveSite = %q", loaded.ActiveSite)
	}
	if loaded.Version != StateVersion {
		t.Fatalf("Version = %d", loaded.Version)
	}
}
