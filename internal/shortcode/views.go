package shortcode

import (
	"fmt"

	"github.com/lunabyrd/arcana/internal/registry"
)

// Counts is a per-type shortcode tally.
type Counts struct {
	Tarot     int `json:"tarot"`
	Blog      int `json:"blog"`
	Spread    int `json:"spread"`
	Horoscope int `json:"horoscope"`
	Total     int `json:"total"`
}

// Count tallies shortcodes in content by type.
func Count(content string) Counts {
	var c Counts
	for _, m := range Extract(content) {
		switch m.Type {
		case registry.Tarot:
			c.Tarot++
		case registry.Blog:
			c.Blog++
		case registry.Spread:
			c.Spread++
		case registry.Horoscope:
			c.Horoscope++
		}
		c.Total++
	}
	return c
}

// Problem is a shortcode whose slug is missing from the registry.
type Problem struct {
	Match  Match
	Reason string
}

// Validate returns the shortcodes in content whose slug does not exist in
// the matching registry collection. It reports problems as data and never
// fails; an empty result means the content is clean.
func Validate(content string, reg *registry.Registry) []Problem {
	var out []Problem
	for _, m := range Extract(content) {
		if reg.HasSlug(m.Type, m.Slug) {
			continue
		}
		out = append(out, Problem{
			Match:  m,
			Reason: fmt.Sprintf("slug %q not found in %s registry", m.Slug, m.Type),
		})
	}
	return out
}
