package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lunabyrd/arcana/internal/atomicfile"
	"github.com/lunabyrd/arcana/internal/linkscan"
	"github.com/lunabyrd/arcana/internal/ui"
)

var (
	applyPick  string
	applyWrite bool
	applySelf  string
)

var applyCmd = &cobra.Command{
	Use:   "apply <file>",
	Short: "Rewrite a draft with accepted link suggestions",
	Long: `Scans the file, applies suggestions as shortcodes, and prints the result
(or rewrites the file in place with --write).

By default every suggestion is applied; --pick selects a subset by the
numbers shown by 'arcana scan'.

Examples:
  arcana apply draft.html
  arcana apply draft.html --pick 1,3 --write`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		content, err := readContentArg(args[0])
		if err != nil {
			return handleError(ErrFileReadError, err, "")
		}

		reg, err := loadRegistry(cmd.Context())
		if err != nil {
			return handleError(ErrRegistryUnavailable, err, "Run 'arcana registry fetch' to populate the cache")
		}

		opts := linkscan.DefaultOptions()
		opts.CurrentArticleSlug = applySelf
		suggestions := linkscan.Scan(content, reg, opts)

		if applyPick != "" {
			picked, err := parsePicks(applyPick, len(suggestions))
			if err != nil {
				return handleError(ErrInvalidInput, err, "Use a comma-separated list of suggestion numbers, e.g. --pick 1,3")
			}
			for i := range suggestions {
				suggestions[i].Selected = picked[i]
			}
		}

		result := linkscan.Apply(content, suggestions)

		applied := 0
		for _, s := range suggestions {
			if s.Selected {
				applied++
			}
		}

		if applyWrite && args[0] != "-" {
			if err := atomicfile.WriteFile(args[0], []byte(result), 0); err != nil {
				return handleError(ErrFileWriteError, err, "")
			}
			if isJSONOutput() {
				outputSuccess(map[string]interface{}{"file": args[0], "applied": applied}, nil)
				return nil
			}
			fmt.Println(ui.Successf("applied %d of %d suggestions to %s", applied, len(suggestions), args[0]))
			return nil
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{"content": result, "applied": applied}, nil)
			return nil
		}
		fmt.Print(result)
		return nil
	},
}

// parsePicks turns "1,3,5" into a selection mask over n suggestions.
func parsePicks(picks string, n int) (map[int]bool, error) {
	selected := make(map[int]bool, n)
	for _, part := range strings.Split(picks, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		idx, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid pick %q", part)
		}
		if idx < 1 || idx > n {
			return nil, fmt.Errorf("pick %d out of range (1-%d)", idx, n)
		}
		selected[idx-1] = true
	}
	return selected, nil
}

func init() {
	applyCmd.Flags().StringVar(&applyPick, "pick", "", "Comma-separated suggestion numbers to apply (default: all)")
	applyCmd.Flags().BoolVar(&applyWrite, "write", false, "Rewrite the file in place (atomic)")
	applyCmd.Flags().StringVar(&applySelf, "self", "", "Slug of the article being edited (suppresses self-links)")
	rootCmd.AddCommand(applyCmd)
}
