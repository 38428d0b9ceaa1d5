package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lunabyrd/arcana/internal/config"
	"github.com/lunabyrd/arcana/internal/ui"
)

var siteCmd = &cobra.Command{
	Use:   "site",
	Short: "Manage configured sites",
}

var siteListCmd = &cobra.Command{
	Use:   "list",
	Short: "List configured sites and their registry sources",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		loadedCfg, loadedConfigPath, err := loadGlobalConfigWithPath()
		if err != nil {
			return handleError(ErrConfigInvalid, err, "")
		}
		statePath := config.ResolveStatePath(statePathFlag, loadedConfigPath, loadedCfg)
		state, err := config.LoadState(statePath)
		if err != nil {
			return handleError(ErrConfigInvalid, err, "")
		}

		sites := loadedCfg.ListSites()

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"sites":        sites,
				"default_site": loadedCfg.DefaultSite,
				"active_site":  state.ActiveSite,
			}, &Meta{Count: len(sites)})
			return nil
		}

		if len(sites) == 0 {
			fmt.Println(ui.Hint("No sites configured. Add a [sites] entry to config.toml."))
			return nil
		}

		names := make([]string, 0, len(sites))
		for name := range sites {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			marker := "  "
			switch name {
			case state.ActiveSite:
				marker = ui.Accent.Render("* ")
			case loadedCfg.DefaultSite:
				marker = ui.Muted.Render("- ")
			}
			fmt.Printf("%s%s %s\n", marker, ui.Bold.Render(name), ui.Muted.Render(sites[name]))
		}
		return nil
	},
}

var siteUseCmd = &cobra.Command{
	Use:   "use <name>",
	Short: "Set the active site in state.toml",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.TrimSpace(args[0])

		loadedCfg, loadedConfigPath, err := loadGlobalConfigWithPath()
		if err != nil {
			return handleError(ErrConfigInvalid, err, "")
		}
		if _, err := loadedCfg.GetRegistrySource(name); err != nil {
			return handleErrorMsg(ErrSiteNotFound,
				fmt.Sprintf("site '%s' not found in config", name),
				"Run 'arcana site list' to see configured sites")
		}

		statePath := config.ResolveStatePath(statePathFlag, loadedConfigPath, loadedCfg)
		state, err := config.LoadState(statePath)
		if err != nil {
			return handleError(ErrConfigInvalid, err, "")
		}
		state.ActiveSite = name
		if err := config.SaveState(statePath, state); err != nil {
			return handleError(ErrFileWriteError, err, "")
		}

		if isJSONOutput() {
			outputSuccess(map[string]string{"active_site": name}, nil)
			return nil
		}
		fmt.Println(ui.Successf("active site set to %s", name))
		return nil
	},
}

func init() {
	siteCmd.AddCommand(siteListCmd)
	siteCmd.AddCommand(siteUseCmd)
	rootCmd.AddCommand(siteCmd)
}
