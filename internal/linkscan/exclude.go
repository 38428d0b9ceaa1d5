// Package linkscan detects mentions of registry entities in article HTML
// and rewrites accepted suggestions into shortcodes.
package linkscan

import (
	"regexp"
	"strings"

	"github.com/lunabyrd/arcana/internal/shortcode"
)

// Range is a half-open [Start, End) byte span over the scanned text.
type Range struct {
	Start int
	End   int
}

// Contains reports whether [start, end) lies entirely inside the range.
func (r Range) Contains(start, end int) bool {
	return r.Start <= start && end <= r.End
}

// Overlaps reports whether [start, end) intersects the range at all:
// contained in it, hanging over either edge, or containing it outright.
func (r Range) Overlaps(start, end int) bool {
	return start < r.End && end > r.Start
}

// anchorSpan is an existing <a ...>...</a> element, with the byte span of
// its visible inner text.
type anchorSpan struct {
	Range
	innerStart int
	innerEnd   int
}

func (a anchorSpan) innerText(content string) string {
	return content[a.innerStart:a.innerEnd]
}

var (
	// anchorRe captures whole <a> elements and their inner text.
	anchorRe = regexp.MustCompile(`(?is)<a\b[^>]*>(.*?)</a>`)

	// tagRe matches the markup of any single HTML tag.
	tagRe = regexp.MustCompile(`<[^>]+>`)
)

func findAnchorSpans(content string) []anchorSpan {
	var out []anchorSpan
	for _, m := range anchorRe.FindAllStringSubmatchIndex(content, -1) {
		out = append(out, anchorSpan{
			Range:      Range{Start: m[0], End: m[1]},
			innerStart: m[2],
			innerEnd:   m[3],
		})
	}
	return out
}

// findTagSpans returns the markup span of every tag that is not an opening
// or closing anchor. This keeps term text inside attributes (e.g.
// alt="The Fool") from ever being treated as linkable prose.
func findTagSpans(content string) []Range {
	var out []Range
	for _, m := range tagRe.FindAllStringIndex(content, -1) {
		if isAnchorTag(content[m[0]:m[1]]) {
			continue
		}
		out = append(out, Range{Start: m[0], End: m[1]})
	}
	return out
}

func isAnchorTag(tag string) bool {
	t := strings.ToLower(tag)
	if strings.HasPrefix(t, "</a") {
		return true
	}
	if strings.HasPrefix(t, "<a") && len(t) > 2 {
		switch t[2] {
		case '>', ' ', '\t', '\n', '\r':
			return true
		}
	}
	return false
}

func findShortcodeRanges(content string) []Range {
	var out []Range
	for _, m := range shortcode.Extract(content) {
		out = append(out, Range{Start: m.Start, End: m.End})
	}
	return out
}

// Exclusions computes the ranges the scanner must never report a match
// inside. Tag markup is always excluded; whole link and shortcode spans
// are excluded only while their skip flag is set (clearing a flag turns
// that span class into conversion candidates instead, see Scan).
func Exclusions(content string, opts Options) []Range {
	ranges := findTagSpans(content)
	if opts.SkipExistingLinks {
		for _, a := range findAnchorSpans(content) {
			ranges = append(ranges, a.Range)
		}
	}
	if opts.SkipExistingShortcodes {
		ranges = append(ranges, findShortcodeRanges(content)...)
	}
	return ranges
}

// isExcluded reports whether [start, end) overlaps any exclusion range.
func isExcluded(ranges []Range, start, end int) bool {
	for _, r := range ranges {
		if r.Overlaps(start, end) {
			return true
		}
	}
	return false
}
