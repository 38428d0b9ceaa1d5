// Package registry models the catalog of linkable entities (tarot cards,
// blog posts, spreads, horoscope signs) that the link engine resolves
// against.
//
// A Registry is loaded once per authoring or render session and is
// read-only from then on; nothing in this package mutates it after load.
package registry

import (
	"fmt"
	"strings"
)

// LinkType discriminates the four entity collections.
type LinkType int

const (
	Tarot LinkType = iota
	Blog
	Spread
	Horoscope
)

// linkTypeNames are the wire/shortcode names, indexed by LinkType.
var linkTypeNames = [...]string{"tarot", "blog", "spread", "horoscope"}

// String returns the shortcode name for the type ("tarot", "blog", ...).
func (t LinkType) String() string {
	if t < 0 || int(t) >= len(linkTypeNames) {
		return fmt.Sprintf("LinkType(%d)", int(t))
	}
	return linkTypeNames[t]
}

// ParseLinkType parses a shortcode type name.
func ParseLinkType(s string) (LinkType, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "tarot":
		return Tarot, true
	case "blog":
		return Blog, true
	case "spread":
		return Spread, true
	case "horoscope":
		return Horoscope, true
	}
	return 0, false
}

// AllLinkTypes lists every type in collection order.
func AllLinkTypes() []LinkType {
	return []LinkType{Tarot, Blog, Spread, Horoscope}
}

// Entry is one linkable entity. Slugs are unique within a collection.
type Entry struct {
	Slug  string `json:"slug" yaml:"slug"`
	Title string `json:"title" yaml:"title"`
}

// Registry is the full link catalog, grouped by type.
type Registry struct {
	Tarot     []Entry `json:"tarot" yaml:"tarot"`
	Blog      []Entry `json:"blog" yaml:"blog"`
	Spread    []Entry `json:"spread" yaml:"spread"`
	Horoscope []Entry `json:"horoscope" yaml:"horoscope"`
}

// Entries returns the collection for a type.
func (r *Registry) Entries(t LinkType) []Entry {
	if r == nil {
		return nil
	}
	switch t {
	case Tarot:
		return r.Tarot
	case Blog:
		return r.Blog
	case Spread:
		return r.Spread
	case Horoscope:
		return r.Horoscope
	}
	return nil
}

// TitleFor looks up the canonical title for a slug within a collection.
func (r *Registry) TitleFor(t LinkType, slug string) (string, bool) {
	for _, e := range r.Entries(t) {
		if e.Slug == slug {
			return e.Title, true
		}
	}
	return "", false
}

// HasSlug reports whether a slug exists within a collection.
func (r *Registry) HasSlug(t LinkType, slug string) bool {
	_, ok := r.TitleFor(t, slug)
	return ok
}

// Len returns the total number of entries across all collections.
func (r *Registry) Len() int {
	n := 0
	for _, t := range AllLinkTypes() {
		n += len(r.Entries(t))
	}
	return n
}
