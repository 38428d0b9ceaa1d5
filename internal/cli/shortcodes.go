package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lunabyrd/arcana/internal/registry"
	"github.com/lunabyrd/arcana/internal/shortcode"
	"github.com/lunabyrd/arcana/internal/ui"
)

var shortcodesCmd = &cobra.Command{
	Use:   "shortcodes",
	Short: "Inspect shortcodes in article content",
}

// shortcodeView is the JSON shape for a single extracted shortcode.
type shortcodeView struct {
	Type       string `json:"type"`
	Slug       string `json:"slug"`
	CustomText string `json:"custom_text,omitempty"`
	Position   int    `json:"position"`
	Literal    string `json:"literal"`
	URL        string `json:"url"`
}

func viewOf(m shortcode.Match) shortcodeView {
	v := shortcodeView{
		Type:     m.Type.String(),
		Slug:     m.Slug,
		Position: m.Start,
		Literal:  m.Literal,
		URL:      registry.URLFor(m.Type, m.Slug),
	}
	if m.CustomText != nil {
		v.CustomText = *m.CustomText
	}
	return v
}

var shortcodesListCmd = &cobra.Command{
	Use:   "list <file>",
	Short: "List all shortcodes with their positions and URLs",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		content, err := readContentArg(args[0])
		if err != nil {
			return handleError(ErrFileReadError, err, "")
		}

		matches := shortcode.Extract(content)

		if isJSONOutput() {
			views := make([]shortcodeView, 0, len(matches))
			for _, m := range matches {
				views = append(views, viewOf(m))
			}
			outputSuccess(views, &Meta{Count: len(views)})
			return nil
		}

		if len(matches) == 0 {
			fmt.Println(ui.Hint("No shortcodes found."))
			return nil
		}
		for _, m := range matches {
			fmt.Printf("  %s %s %s\n",
				ui.Muted.Render(fmt.Sprintf("@%d", m.Start)),
				ui.Accent.Render(m.Literal),
				ui.Muted.Render(registry.URLFor(m.Type, m.Slug)))
		}
		return nil
	},
}

var shortcodesValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Report shortcodes whose slug is missing from the registry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		content, err := readContentArg(args[0])
		if err != nil {
			return handleError(ErrFileReadError, err, "")
		}

		reg, err := loadRegistry(cmd.Context())
		if err != nil {
			return handleError(ErrRegistryUnavailable, err, "Run 'arcana registry fetch' to populate the cache")
		}

		problems := shortcode.Validate(content, reg)

		if isJSONOutput() {
			type problemView struct {
				shortcodeView
				Reason string `json:"reason"`
			}
			views := make([]problemView, 0, len(problems))
			for _, p := range problems {
				views = append(views, problemView{shortcodeView: viewOf(p.Match), Reason: p.Reason})
			}
			outputSuccess(views, &Meta{Count: len(views)})
			return nil
		}

		if len(problems) == 0 {
			fmt.Println(ui.Success("all shortcodes resolve against the registry"))
			return nil
		}
		for _, p := range problems {
			fmt.Printf("  %s %s %s\n",
				ui.Muted.Render(fmt.Sprintf("@%d", p.Match.Start)),
				ui.Accent.Render(p.Match.Literal),
				p.Reason)
		}
		fmt.Println(ui.Warningf("%d unresolved", len(problems)))
		return nil
	},
}

var shortcodesCountCmd = &cobra.Command{
	Use:   "count <file>",
	Short: "Tally shortcodes by type",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		content, err := readContentArg(args[0])
		if err != nil {
			return handleError(ErrFileReadError, err, "")
		}

		counts := shortcode.Count(content)

		if isJSONOutput() {
			outputSuccess(counts, nil)
			return nil
		}

		fmt.Println(ui.Header("Shortcodes"))
		fmt.Printf("%s %s\n", ui.Muted.Render("tarot:    "), ui.Accent.Render(fmt.Sprintf("%d", counts.Tarot)))
		fmt.Printf("%s %s\n", ui.Muted.Render("blog:     "), ui.Accent.Render(fmt.Sprintf("%d", counts.Blog)))
		fmt.Printf("%s %s\n", ui.Muted.Render("spread:   "), ui.Accent.Render(fmt.Sprintf("%d", counts.Spread)))
		fmt.Printf("%s %s\n", ui.Muted.Render("horoscope:"), ui.Accent.Render(fmt.Sprintf("%d", counts.Horoscope)))
		fmt.Printf("%s %s\n", ui.Muted.Render("total:    "), ui.Accent.Render(fmt.Sprintf("%d", counts.Total)))
		return nil
	},
}

var shortcodesStripCmd = &cobra.Command{
	Use:   "strip <file>",
	Short: "Replace shortcodes with their display text",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		content, err := readContentArg(args[0])
		if err != nil {
			return handleError(ErrFileReadError, err, "")
		}

		// The registry is optional here: without it, tokens lacking custom
		// text fall back to their slug.
		reg, _ := loadRegistry(cmd.Context())
		stripped := shortcode.Strip(content, reg)

		if isJSONOutput() {
			outputSuccess(map[string]string{"content": stripped}, nil)
			return nil
		}
		fmt.Print(stripped)
		return nil
	},
}

func init() {
	shortcodesCmd.AddCommand(shortcodesListCmd)
	shortcodesCmd.AddCommand(shortcodesValidateCmd)
	shortcodesCmd.AddCommand(shortcodesCountCmd)
	shortcodesCmd.AddCommand(shortcodesStripCmd)
	rootCmd.AddCommand(shortcodesCmd)
}
