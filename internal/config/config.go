// Package config handles global Arcana configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config represents the global Arcana configuration.
type Config struct {
	// DefaultSite is the name of the default site (from Sites map).
	DefaultSite string `toml:"default_site"`

	// StateFile optionally overrides where state.toml lives. Relative
	// paths are resolved against the config file's directory.
	StateFile string `toml:"state_file"`

	// Sites maps site names to registry sources: either an HTTP(S) URL
	// serving the JSON registry or a path to a local .json/.yaml file.
	Sites map[string]string `toml:"sites"`

	// UI controls optional CLI theming preferences.
	UI UIConfig `toml:"ui"`
}

// UIConfig represents optional CLI theming preferences.
type UIConfig struct {
	// Accent is an optional accent color for CLI output and preview
	// rendering. Supported values are ANSI color codes ("0" to "255") or
	// hex colors ("#RRGGBB").
	Accent string `toml:"accent"`

	// CodeTheme sets the Glamour/Chroma theme used for rendered preview
	// code blocks. Example values: "monokai", "dracula", "github", "nord".
	CodeTheme string `toml:"code_theme"`
}

// GetRegistrySource returns the registry source for a named site.
// If name is empty, returns the default site's source.
func (c *Config) GetRegistrySource(name string) (string, error) {
	if name == "" {
		name = c.DefaultSite
	}

	if c.Sites != nil {
		if source, ok := c.Sites[name]; ok {
			return source, nil
		}
	}

	if name == "" {
		return "", fmt.Errorf("no default site configured")
	}
	return "", fmt.Errorf("site '%s' not found in config", name)
}

// GetDefaultRegistrySource returns the default site's registry source.
func (c *Config) GetDefaultRegistrySource() (string, error) {
	return c.GetRegistrySource("")
}

// ListSites returns all configured sites with their registry sources.
func (c *Config) ListSites() map[string]string {
	result := make(map[string]string)
	for name, source := range c.Sites {
		result[name] = source
	}
	return result
}

// Load loads the configuration from the default location.
// Returns a default config if the file doesn't exist.
func Load() (*Config, error) {
	configPath := DefaultPath()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return &Config{}, nil
	}

	return LoadFrom(configPath)
}

// LoadFrom loads the configuration from a specific path.
func LoadFrom(path string) (*Config, error) {
	var config Config
	if _, err := toml.DecodeFile(path, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return &config, nil
}

// DefaultPath returns the default config file path.
// Checks ~/.config/arcana/config.toml first (XDG style),
// then falls back to OS-specific location.
func DefaultPath() string {
	// Prefer XDG-style ~/.config/arcana/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		xdgPath := filepath.Join(home, ".config", "arcana", "config.toml")
		if _, err := os.Stat(xdgPath); err == nil {
			return xdgPath
		}
	}

	// Fall back to XDG config dir or OS-specific location
	if configDir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(configDir, "arcana", "config.toml")
	}

	// Last resort fallback
	return filepath.Join(".", "config.toml")
}

// CreateDefault creates a default config file if it doesn't exist.
func CreateDefault() (string, error) {
	configPath := DefaultPath()

	if _, err := os.Stat(configPath); err == nil {
		return configPath, nil // Already exists
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	defaultConfig := `# Arcana Configuration

# Default site name (must exist in [sites] below)
# default_site = "main"

# Named sites: registry source is a URL or a local registry file
# [sites]
# main = "https://example.com/api/link-registry"
# staging = "/path/to/registry.json"

# Optional UI accent color for headers/links in terminal output.
# Supports ANSI color codes (0-255) or hex (#RRGGBB).
# [ui]
# accent = "39"
# code_theme = "monokai"
`

	if err := os.WriteFile(configPath, []byte(defaultConfig), 0644); err != nil {
		return "", fmt.Errorf("failed to write config file: %w", err)
	}

	return configPath, nil
}
