// Package cli implements the command-line interface.
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lunabyrd/arcana/internal/config"
	"github.com/lunabyrd/arcana/internal/ui"
)

var (
	// Global flags
	siteName      string // Named site from config
	registryFlag  string // Explicit registry source (URL or file path)
	configPath    string
	statePathFlag string
	offline       bool

	// Resolved values
	resolvedSource     string
	resolvedConfigPath string
	resolvedStatePath  string
	cfg                *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "arcana",
	Short: "Arcana - internal link tooling for tarot content",
	Long: `Arcana scans article drafts for mentions of known entities (tarot cards,
blog posts, spreads, horoscope signs), proposes internal links, and expands
the [[type:slug|text]] shortcode markup into anchor tags at render time.

The link registry comes from a configured site (a URL or a local file) and
is treated as read-only.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip registry resolution for commands that don't need it
		switch cmd.Name() {
		case "completion", "help", "version", "site", "config":
			return nil
		}
		if cmd.Parent() != nil {
			switch cmd.Parent().Name() {
			case "completion", "site", "config":
				return nil
			}
		}

		// Load config
		var err error
		cfg, resolvedConfigPath, err = loadGlobalConfigWithPath()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if cfg == nil {
			cfg = &config.Config{}
		}
		resolvedStatePath = config.ResolveStatePath(statePathFlag, resolvedConfigPath, cfg)
		ui.ConfigureTheme(cfg.UI.Accent)
		ui.ConfigureMarkdownCodeTheme(cfg.UI.CodeTheme)

		// Resolve registry source: explicit source > named site > active state > default
		if registryFlag != "" {
			resolvedSource = registryFlag
		} else if siteName != "" {
			resolvedSource, err = cfg.GetRegistrySource(siteName)
			if err != nil {
				return fmt.Errorf("site '%s' not found\n\nRun 'arcana site list' to see configured sites", siteName)
			}
		} else {
			state, stateErr := config.LoadState(resolvedStatePath)
			if stateErr != nil {
				return fmt.Errorf("failed to load state: %w", stateErr)
			}

			activeSite := strings.TrimSpace(state.ActiveSite)
			if activeSite != "" {
				resolvedSource, err = cfg.GetRegistrySource(activeSite)
				if err != nil {
					return fmt.Errorf("active site '%s' not found in config\n\nRun 'arcana site use <name>' or set default_site in config.toml", activeSite)
				}
			} else {
				resolvedSource, err = cfg.GetDefaultRegistrySource()
				if err != nil {
					return fmt.Errorf(`no registry specified

Either:
  1. Use --site <name> (from config)
  2. Use --registry <url-or-file>
  3. Run 'arcana site use <name>' to set active_site in state.toml
  4. Set default_site in ~/.config/arcana/config.toml`)
				}
			}
		}

		return nil
	},
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&siteName, "site", "s", "", "Named site from config")
	rootCmd.PersistentFlags().StringVar(&registryFlag, "registry", "", "Explicit registry source (URL or file path)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file")
	rootCmd.PersistentFlags().StringVar(&statePathFlag, "state", "", "Path to state file (overrides state_file in config)")
	rootCmd.PersistentFlags().BoolVar(&offline, "offline", false, "Use the registry cache instead of fetching URL sources")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format (for agent/script use)")
}

// getRegistrySource returns the resolved registry source.
func getRegistrySource() string {
	return resolvedSource
}

// getConfig returns the loaded config.
func getConfig() *config.Config {
	return cfg
}

// getStatePath returns the resolved global state path.
func getStatePath() string {
	return resolvedStatePath
}

func loadGlobalConfigWithPath() (*config.Config, string, error) {
	resolvedPath := config.ResolveConfigPath(configPath)

	var loadedCfg *config.Config
	var err error
	if strings.TrimSpace(configPath) != "" {
		loadedCfg, err = config.LoadFrom(configPath)
	} else {
		loadedCfg, err = config.Load()
	}
	if err != nil {
		return nil, "", err
	}
	if loadedCfg == nil {
		loadedCfg = &config.Config{}
	}

	return loadedCfg, resolvedPath, nil
}
