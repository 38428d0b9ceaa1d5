package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lunabyrd/arcana/internal/atomicfile"
	"github.com/lunabyrd/arcana/internal/render"
	"github.com/lunabyrd/arcana/internal/shortcode"
	"github.com/lunabyrd/arcana/internal/ui"
)

var (
	renderOut     string
	renderPreview bool
)

var renderCmd = &cobra.Command{
	Use:   "render <file>",
	Short: "Render article source to publishable HTML",
	Long: `Converts a markdown draft to HTML (HTML input passes through) and expands
every shortcode into an internal-link anchor.

--preview instead renders the draft to the terminal with shortcodes
replaced by their display text.

Examples:
  arcana render post.md --out post.html
  arcana render post.md --preview`,
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

		if renderPreview {
			dc := ui.NewDisplayContext()
			plain := shortcode.Strip(content, reg)
			rendered, err := ui.RenderMarkdown(plain, dc.AvailableWidth(ui.MarkdownRenderMargin))
			if err != nil {
				return handleError(ErrRenderFailed, err, "")
			}
			fmt.Print(rendered)
			return nil
		}

		html, err := render.Article(content, args[0], reg)
		if err != nil {
			return handleError(ErrRenderFailed, err, "")
		}

		if renderOut != "" {
			if err := atomicfile.WriteFile(renderOut, []byte(html), 0); err != nil {
				return handleError(ErrFileWriteError, err, "")
			}
			if isJSONOutput() {
				outputSuccess(map[string]string{"file": renderOut}, nil)
				return nil
			}
			fmt.Println(ui.Successf("rendered %s to %s", args[0], renderOut))
			return nil
		}

		if isJSONOutput() {
			outputSuccess(map[string]string{"html": html}, nil)
			return nil
		}
		fmt.Print(html)
		return nil
	},
}

func init() {
	renderCmd.Flags().StringVar(&renderOut, "out", "", "Write rendered HTML to a file (atomic)")
	renderCmd.Flags().BoolVar(&renderPreview, "preview", false, "Render the draft to the terminal instead")
	rootCmd.AddCommand(renderCmd)
}
