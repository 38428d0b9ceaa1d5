package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lunabyrd/arcana/internal/config"
	"github.com/lunabyrd/arcana/internal/ui"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the Arcana configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a starter config file if none exists",
	Long: `Writes a commented starter config.toml to the default location. An
existing config file is left untouched.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.CreateDefault()
		if err != nil {
			return handleError(ErrConfigInvalid, err, "")
		}

		if isJSONOutput() {
			outputSuccess(map[string]string{"config": path}, nil)
			return nil
		}
		fmt.Println(ui.Successf("config file at %s", path))
		fmt.Println(ui.Hint("Add a [sites] entry, then run 'arcana site use <name>'."))
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the resolved config and state file paths",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		loadedCfg, loadedConfigPath, err := loadGlobalConfigWithPath()
		if err != nil {
			return handleError(ErrConfigInvalid, err, "")
		}
		statePath := config.ResolveStatePath(statePathFlag, loadedConfigPath, loadedCfg)

		if isJSONOutput() {
			outputSuccess(map[string]string{"config": loadedConfigPath, "state": statePath}, nil)
			return nil
		}
		fmt.Printf("%s %s\n", ui.Muted.Render("config:"), loadedConfigPath)
		fmt.Printf("%s %s\n", ui.Muted.Render("state: "), statePath)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}
