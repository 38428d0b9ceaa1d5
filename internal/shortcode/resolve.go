package shortcode

import (
	"fmt"
	"html"
	"strings"

	"github.com/lunabyrd/arcana/internal/registry"
)

// Resolve expands every shortcode in content into an anchor tag.
//
// The emitted anchors carry class="internal-link" and data-link-type so the
// downstream sanitizer can allow-list them. Anchors contain no shortcode
// syntax, so resolving already-resolved content is a no-op.
func Resolve(content string, reg *registry.Registry) string {
	if content == "" {
		return ""
	}

	return re.ReplaceAllStringFunc(content, func(literal string) string {
		matches := Extract(literal)
		if len(matches) != 1 {
			// Unparseable despite the regexp match; leave the token alone.
			return literal
		}
		m := matches[0]

		href := registry.URLFor(m.Type, m.Slug)
		label := DisplayText(m, reg)

		return fmt.Sprintf(
			`<a href="%s" class="internal-link" data-link-type="%s" target="_blank" rel="noopener noreferrer">%s</a>`,
			html.EscapeString(href), m.Type, html.EscapeString(label),
		)
	})
}

// Strip replaces every shortcode with its display text, for plain-text
// excerpts. The registry may be nil, in which case tokens without custom
// text fall back to their slug.
func Strip(content string, reg *registry.Registry) string {
	if content == "" {
		return ""
	}

	var b strings.Builder
	cursor := 0
	for _, m := range Extract(content) {
		b.WriteString(content[cursor:m.Start])
		b.WriteString(DisplayText(m, reg))
		cursor = m.End
	}
	b.WriteString(content[cursor:])
	return b.String()
}
