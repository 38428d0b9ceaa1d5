package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/lunabyrd/arcana/internal/linkscan"
	"github.com/lunabyrd/arcana/internal/ui"
)

var (
	scanAllOccurrences    bool
	scanCaseSensitive     bool
	scanIncludeLinks      bool
	scanIncludeShortcodes bool
	scanSelfSlug          string
)

var scanCmd = &cobra.Command{
	Use:   "scan <file>",
	Short: "Scan a draft for linkable entity mentions",
	Long: `Scans article content for mentions of registry entities and prints link
suggestions. Pass "-" to read from stdin.

Examples:
  arcana scan draft.html
  arcana scan draft.html --self the-fool
  arcana scan draft.html --include-links --json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		start := time.Now()

		content, err := readContentArg(args[0])
		if err != nil {
			return handleError(ErrFileReadError, err, "")
		}

		reg, err := loadRegistry(cmd.Context())
		if err != nil {
			return handleError(ErrRegistryUnavailable, err, "Run 'arcana registry fetch' to populate the cache")
		}

		opts := linkscan.DefaultOptions()
		opts.FirstOccurrenceOnly = !scanAllOccurrences
		opts.CaseSensitive = scanCaseSensitive
		opts.SkipExistingLinks = !scanIncludeLinks
		opts.SkipExistingShortcodes = !scanIncludeShortcodes
		opts.CurrentArticleSlug = scanSelfSlug

		suggestions := linkscan.Scan(content, reg, opts)
		elapsed := time.Since(start).Milliseconds()

		if isJSONOutput() {
			outputSuccess(suggestions, &Meta{Count: len(suggestions), QueryTimeMs: elapsed})
			return nil
		}

		if len(suggestions) == 0 {
			fmt.Println(ui.Hint("No linkable terms found."))
			return nil
		}

		fmt.Printf("%s %s\n", ui.Header("Link suggestions"), ui.Count(len(suggestions), "suggestion", "suggestions"))
		for i, s := range suggestions {
			fmt.Printf("  %2d. %s %s %s\n", i+1,
				ui.Muted.Render(fmt.Sprintf("@%d", s.Position)),
				ui.Bold.Render(content[s.Position:s.Position+s.Length]),
				ui.Accent.Render(s.Shortcode))
		}
		fmt.Println(ui.Hint("Apply with: arcana apply <file> --pick 1,2,..."))

		return nil
	},
}

func init() {
	scanCmd.Flags().BoolVar(&scanAllOccurrences, "all-occurrences", false, "Suggest every occurrence of a term, not just the first")
	scanCmd.Flags().BoolVar(&scanCaseSensitive, "case-sensitive", false, "Match terms case-sensitively")
	scanCmd.Flags().BoolVar(&scanIncludeLinks, "include-links", false, "Propose converting existing <a> tags to shortcodes")
	scanCmd.Flags().BoolVar(&scanIncludeShortcodes, "include-shortcodes", false, "Propose rewriting existing shortcodes")
	scanCmd.Flags().StringVar(&scanSelfSlug, "self", "", "Slug of the article being edited (suppresses self-links)")
	rootCmd.AddCommand(scanCmd)
}
