// Package shortcode provides canonical parsing and expansion of internal
// link shortcodes.
//
// Shortcode grammar:
//   [[type:slug]]
//   [[type:slug|custom display text]]
//
// where type is one of tarot, blog, spread, horoscope. The slug cannot
// contain ']', '|', or ':'; the display text cannot contain ']'. There is no
// escape mechanism for either character — a token that needs one simply
// fails to match and is left as literal text.
//
// One token never contains another; nesting is not part of the grammar.
package shortcode

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/lunabyrd/arcana/internal/registry"
)

// Match represents a shortcode found in content.
type Match struct {
	Type       registry.LinkType
	Slug       string
	CustomText *string
	Start      int
	End        int
	Literal    string
}

// re matches [[type:slug]] or [[type:slug|display]]. Unknown types do not
// match at all, leaving the token as literal text. The slug also excludes
// ':' so a malformed token like [[tarot:death:Renewal]] fails to match
// instead of swallowing the second field into the slug.
var re = regexp.MustCompile(`\[\[(tarot|blog|spread|horoscope):([^\]|:]+)(?:\|([^\]]+))?\]\]`)

// Pattern returns the shortcode regexp for callers that only need spans.
func Pattern() *regexp.Regexp {
	return re
}

// Format serializes a shortcode token. An empty display text yields the
// short [[type:slug]] form.
func Format(t registry.LinkType, slug, displayText string) string {
	if displayText == "" {
		return fmt.Sprintf("[[%s:%s]]", t, slug)
	}
	return fmt.Sprintf("[[%s:%s|%s]]", t, slug, displayText)
}

// Extract returns all shortcodes in content, in document order.
func Extract(content string) []Match {
	if content == "" {
		return nil
	}

	var out []Match
	for _, m := range re.FindAllStringSubmatchIndex(content, -1) {
		start, end := m[0], m[1]
		t, ok := registry.ParseLinkType(content[m[2]:m[3]])
		if !ok {
			continue
		}
		slug := strings.TrimSpace(content[m[4]:m[5]])
		if slug == "" {
			continue
		}

		var custom *string
		if m[6] >= 0 && m[7] >= 0 {
			c := strings.TrimSpace(content[m[6]:m[7]])
			custom = &c
		}

		out = append(out, Match{
			Type:       t,
			Slug:       slug,
			CustomText: custom,
			Start:      start,
			End:        end,
			Literal:    content[start:end],
		})
	}
	return out
}

// DisplayText returns the visible label for a match: custom text if
// present, else the registry title, else the bare slug.
func DisplayText(m Match, reg *registry.Registry) string {
	if m.CustomText != nil && *m.CustomText != "" {
		return *m.CustomText
	}
	if reg != nil {
		if title, ok := reg.TitleFor(m.Type, m.Slug); ok {
			return title
		}
	}
	return m.Slug
}
