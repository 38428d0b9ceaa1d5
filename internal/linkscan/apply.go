package linkscan

import (
	"sort"
	"strings"
)

// Apply rewrites content by substituting each selected suggestion's span
// with its shortcode.
//
// The output is built in one left-to-right fold over the suggestions
// sorted by position, so no replacement can ever shift the offsets of one
// still pending. Suggestions that overlap an earlier replacement or fall
// outside the content are dropped rather than applied at a stale offset.
func Apply(content string, suggestions []Suggestion) string {
	if content == "" {
		return ""
	}

	selected := make([]Suggestion, 0, len(suggestions))
	for _, s := range suggestions {
		if s.Selected {
			selected = append(selected, s)
		}
	}
	if len(selected) == 0 {
		return content
	}

	sort.SliceStable(selected, func(i, j int) bool {
		return selected[i].Position < selected[j].Position
	})

	var b strings.Builder
	cursor := 0
	for _, s := range selected {
		end := s.Position + s.Length
		if s.Position < cursor || s.Position > len(content) || end > len(content) {
			continue
		}
		b.WriteString(content[cursor:s.Position])
		b.WriteString(s.Shortcode)
		cursor = end
	}
	b.WriteString(content[cursor:])
	return b.String()
}
