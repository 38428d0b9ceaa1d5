package linkscan

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/lunabyrd/arcana/internal/registry"
	"github.com/lunabyrd/arcana/internal/shortcode"
	"github.com/lunabyrd/arcana/internal/termindex"
)

// Options control a single scan.
type Options struct {
	// SkipExistingLinks excludes existing <a> spans entirely. When false,
	// a term match inside an anchor instead proposes converting the whole
	// anchor into a shortcode, preserving its visible text.
	SkipExistingLinks bool

	// SkipExistingShortcodes excludes existing shortcode spans entirely.
	// When false, a term match inside a shortcode proposes rewriting the
	// whole token (e.g. to repoint it), preserving its display text.
	SkipExistingShortcodes bool

	// FirstOccurrenceOnly stops scanning a term after its first accepted
	// match.
	FirstOccurrenceOnly bool

	// CaseSensitive matches terms exactly as indexed (lowercase).
	CaseSensitive bool

	// CurrentArticleSlug suppresses suggestions that would link an
	// article to itself.
	CurrentArticleSlug string
}

// DefaultOptions returns the standard authoring-time scan options.
func DefaultOptions() Options {
	return Options{
		SkipExistingLinks:      true,
		SkipExistingShortcodes: true,
		FirstOccurrenceOnly:    true,
	}
}

// Suggestion proposes replacing Length bytes at Position with Shortcode.
//
// Position and Length are valid only against the exact text the scan ran
// over; Apply consumes them in a single ordered pass for that reason.
type Suggestion struct {
	Term      string            `json:"term"`
	Type      registry.LinkType `json:"-"`
	TypeName  string            `json:"type"`
	Slug      string            `json:"slug"`
	Title     string            `json:"title"`
	Shortcode string            `json:"shortcode"`
	Position  int               `json:"position"`
	Length    int               `json:"length"`
	Selected  bool              `json:"selected"`
}

// Scan walks content against the registry term index and returns link
// suggestions ordered by position.
func Scan(content string, reg *registry.Registry, opts Options) []Suggestion {
	if content == "" || reg == nil {
		return nil
	}

	idx := termindex.Build(reg)
	excl := Exclusions(content, opts)
	anchors := findAnchorSpans(content)
	shortcodes := shortcode.Extract(content)

	hay := content
	if !opts.CaseSensitive {
		hay = foldContent(content)
	}

	// Spans that already produced a suggestion. Conversion spans (whole
	// anchors/shortcodes) land here so a term repeated inside one span
	// yields a single suggestion; plain-prose suggestions land here so a
	// shorter term can never overlap a longer accepted match.
	var claimed []Range

	var suggestions []Suggestion
	for _, term := range idx.Terms() {
		if opts.CurrentArticleSlug != "" && term.Info.Slug == opts.CurrentArticleSlug {
			continue
		}

		for from := 0; from < len(hay); {
			i := strings.Index(hay[from:], term.Key)
			if i < 0 {
				break
			}
			pos := from + i
			end := pos + len(term.Key)
			from = end

			s, ok := acceptMatch(content, pos, end, term, excl, claimed, anchors, shortcodes, reg)
			if !ok {
				continue
			}

			claimed = append(claimed, Range{Start: s.Position, End: s.Position + s.Length})
			suggestions = append(suggestions, s)

			if opts.FirstOccurrenceOnly {
				break
			}
		}
	}

	sort.Slice(suggestions, func(i, j int) bool {
		return suggestions[i].Position < suggestions[j].Position
	})
	return suggestions
}

// foldContent lowercases content for matching while keeping every byte
// offset identical to the original. strings.ToLower would shift offsets:
// some uppercase runes lower to a different UTF-8 length (U+212A KELVIN
// SIGN becomes a 1-byte "k"), and a match found past one of those would
// point at the wrong bytes of the original text. Runes whose lowercase
// form changes encoded length are left unfolded instead.
func foldContent(content string) string {
	var b strings.Builder
	b.Grow(len(content))
	for i := 0; i < len(content); {
		r, size := utf8.DecodeRuneInString(content[i:])
		if r == utf8.RuneError && size == 1 {
			b.WriteByte(content[i])
			i++
			continue
		}
		low := unicode.ToLower(r)
		if utf8.RuneLen(low) != size {
			low = r
		}
		b.WriteRune(low)
		i += size
	}
	return b.String()
}

// acceptMatch applies the gate checks to one raw occurrence and, when it
// survives, builds the suggestion for it.
func acceptMatch(content string, pos, end int, term termindex.Term, excl, claimed []Range, anchors []anchorSpan, shortcodes []shortcode.Match, reg *registry.Registry) (Suggestion, bool) {
	if isExcluded(excl, pos, end) || isExcluded(claimed, pos, end) {
		return Suggestion{}, false
	}

	matched := content[pos:end]
	if term.Info.RequiresCapital && !properlyCapitalized(matched) {
		return Suggestion{}, false
	}

	// A match inside an existing anchor converts the whole element,
	// keeping its visible text; likewise for an existing shortcode.
	// Both are reachable only when the corresponding skip flag is off.
	for _, a := range anchors {
		if a.Contains(pos, end) {
			return buildSuggestion(term, a.Range, a.innerText(content)), true
		}
	}
	for _, sc := range shortcodes {
		if (Range{Start: sc.Start, End: sc.End}).Contains(pos, end) {
			display := shortcode.DisplayText(sc, reg)
			return buildSuggestion(term, Range{Start: sc.Start, End: sc.End}, display), true
		}
	}

	// Plain prose: the match must sit on whole-word boundaries.
	if !isWordBoundary(content, pos, end) {
		return Suggestion{}, false
	}
	return buildSuggestion(term, Range{Start: pos, End: end}, matched), true
}

func buildSuggestion(term termindex.Term, span Range, display string) Suggestion {
	return Suggestion{
		Term:      term.Key,
		Type:      term.Info.Type,
		TypeName:  term.Info.Type.String(),
		Slug:      term.Info.Slug,
		Title:     term.Info.Title,
		Shortcode: shortcode.Format(term.Info.Type, term.Info.Slug, display),
		Position:  span.Start,
		Length:    span.End - span.Start,
		Selected:  true,
	}
}

// properlyCapitalized requires every significant word of the matched text
// to start uppercase; "the" and "of" are exempt. This lets "the Emperor"
// match while "the world around me" stays prose.
func properlyCapitalized(matched string) bool {
	for _, word := range strings.Fields(matched) {
		switch strings.ToLower(word) {
		case "the", "of":
			continue
		}
		r, _ := utf8.DecodeRuneInString(word)
		if unicode.IsLetter(r) && !unicode.IsUpper(r) {
			return false
		}
	}
	return true
}

// isWordBoundary reports whether [start, end) is not a substring of a
// larger token: the adjacent runes must be absent or non-alphanumeric.
func isWordBoundary(content string, start, end int) bool {
	if start > 0 {
		r, _ := utf8.DecodeLastRuneInString(content[:start])
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return false
		}
	}
	if end < len(content) {
		r, _ := utf8.DecodeRuneInString(content[end:])
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
