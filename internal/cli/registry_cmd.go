package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lunabyrd/arcana/internal/registry"
	"github.com/lunabyrd/arcana/internal/store"
	"github.com/lunabyrd/arcana/internal/ui"
)

var registryCmd = &cobra.Command{
	Use:   "registry",
	Short: "Fetch and inspect the link registry",
}

var registryFetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch the registry and store it in the local cache",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		source := getRegistrySource()

		var reg *registry.Registry
		var err error
		if isURLSource(source) {
			reg, err = registry.Fetch(cmd.Context(), source)
		} else {
			reg, err = registry.Load(source)
		}
		if err != nil {
			return handleError(ErrRegistryUnavailable, err, "")
		}

		path, err := store.DefaultPath()
		if err != nil {
			return handleError(ErrCacheError, err, "")
		}
		cache, err := store.Open(path)
		if err != nil {
			return handleError(ErrCacheError, err, "")
		}
		defer cache.Close()

		if err := cache.Save(reg, source); err != nil {
			return handleError(ErrCacheError, err, "")
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{"source": source, "entries": reg.Len(), "cache": path}, nil)
			return nil
		}
		fmt.Println(ui.Successf("cached %d entries from %s", reg.Len(), source))
		return nil
	},
}

var registryShowCmd = &cobra.Command{
	Use:   "show",
	Short: "List registry entries by type",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := loadRegistry(cmd.Context())
		if err != nil {
			return handleError(ErrRegistryUnavailable, err, "Run 'arcana registry fetch' to populate the cache")
		}

		if isJSONOutput() {
			outputSuccess(reg, &Meta{Count: reg.Len()})
			return nil
		}

		for _, t := range registry.AllLinkTypes() {
			entries := reg.Entries(t)
			if len(entries) == 0 {
				continue
			}
			fmt.Printf("%s %s\n", ui.Header(t.String()), ui.Count(len(entries), "entry", "entries"))
			for _, e := range entries {
				fmt.Printf("  %s %s\n", ui.Accent.Render(e.Slug), e.Title)
			}
		}
		return nil
	},
}

var registryStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show registry cache statistics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := store.DefaultPath()
		if err != nil {
			return handleError(ErrCacheError, err, "")
		}
		cache, err := store.Open(path)
		if err != nil {
			return handleError(ErrCacheError, err, "")
		}
		defer cache.Close()

		stats, err := cache.Stats()
		if err != nil {
			return handleError(ErrCacheError, err, "")
		}

		if isJSONOutput() {
			outputSuccess(stats, nil)
			return nil
		}

		fmt.Println(ui.Header("Registry cache"))
		if stats.Source != "" {
			fmt.Printf("%s %s\n", ui.Muted.Render("source:    "), stats.Source)
		}
		if stats.FetchedAt != "" {
			fmt.Printf("%s %s\n", ui.Muted.Render("fetched at:"), stats.FetchedAt)
		}
		for _, t := range registry.AllLinkTypes() {
			fmt.Printf("%s %s\n",
				ui.Muted.Render(fmt.Sprintf("%-11s", t.String()+":")),
				ui.Accent.Render(fmt.Sprintf("%d", stats.Counts[t.String()])))
		}
		fmt.Printf("%s %s\n", ui.Muted.Render("total:     "), ui.Accent.Render(fmt.Sprintf("%d", stats.Total)))
		return nil
	},
}

func init() {
	registryCmd.AddCommand(registryFetchCmd)
	registryCmd.AddCommand(registryShowCmd)
	registryCmd.AddCommand(registryStatsCmd)
	rootCmd.AddCommand(registryCmd)
}
