// Package termindex builds the lowercase term lookup the scanner matches
// against.
//
// Tarot entries contribute their canonical title plus derived aliases
// (separator-split prefixes, suffix-stripped core phrases, and digit/word
// rank variants). Blog entries contribute only their exact title. Spread
// and horoscope entries are deliberately absent: they are resolved at
// render time only and are never offered as scan suggestions.
package termindex

import (
	"regexp"
	"sort"
	"strings"

	"github.com/lunabyrd/arcana/internal/registry"
)

// Info is the resolved identity behind a lookup key.
type Info struct {
	Type  registry.LinkType
	Slug  string
	Title string

	// RequiresCapital gates matching for titles like "The World" whose
	// lowercase form collides with ordinary prose.
	RequiresCapital bool
}

// Term pairs a lookup key with its Info.
type Term struct {
	Key  string
	Info Info
}

// Index maps lowercase terms to entity identities.
type Index struct {
	byKey map[string]Info
	terms []Term
}

// ambiguousNouns are card names that double as common prose words when
// preceded by "the".
var ambiguousNouns = map[string]bool{
	"world": true, "sun": true, "moon": true, "star": true,
	"tower": true, "devil": true, "emperor": true, "empress": true,
	"fool": true, "lovers": true, "chariot": true, "hermit": true,
	"wheel": true, "hanged": true,
}

// rankWords maps card ranks 1-10 to their spelled form. Decks use "Ace",
// not "One", so 1 maps to ace; "one" is still accepted on input.
var rankWords = map[string]string{
	"1": "ace", "2": "two", "3": "three", "4": "four", "5": "five",
	"6": "six", "7": "seven", "8": "eight", "9": "nine", "10": "ten",
}

var rankDigits = func() map[string]string {
	m := map[string]string{"one": "1"}
	for d, w := range rankWords {
		m[w] = d
	}
	return m
}()

var (
	// titleSeparator splits "Nine of Pentacles: The Ultimate Guide" style
	// titles into the card phrase and the editorial tail.
	titleSeparator = regexp.MustCompile(`\s*[-–—:]\s*`)

	// cardSuffix strips "(Tarot) Card Meaning|Guide|Interpretation" tails.
	cardSuffix = regexp.MustCompile(`(?i)\s+(?:tarot\s+)?card\s+(?:meaning|guide|interpretation)$`)

	// trailingLabel strips a single trailing "Card|Meaning|Guide|Interpretation".
	trailingLabel = regexp.MustCompile(`(?i)\s+(?:card|meaning|guide|interpretation)$`)

	// rankOfSuit matches "<rank> of <suit>" phrases.
	rankOfSuit = regexp.MustCompile(`(?i)^(\d{1,2}|ace|one|two|three|four|five|six|seven|eight|nine|ten)\s+of\s+(wands|cups|swords|pentacles)$`)
)

// Build constructs the index from a registry. First writer for a key wins,
// so canonical titles can never be shadowed by an alias spelled the same.
func Build(reg *registry.Registry) *Index {
	idx := &Index{byKey: make(map[string]Info)}

	for _, e := range reg.Entries(registry.Tarot) {
		if e.Title == "" {
			continue
		}
		idx.insert(e.Title, registry.Tarot, e)
		for _, alias := range deriveAliases(e.Title) {
			idx.insert(alias, registry.Tarot, e)
		}
	}

	for _, e := range reg.Entries(registry.Blog) {
		if e.Title == "" {
			continue
		}
		idx.insert(e.Title, registry.Blog, e)
	}

	// Longest keys first so multi-word phrases are tried before any
	// substring alias; ties break lexicographically for determinism.
	sort.Slice(idx.terms, func(i, j int) bool {
		a, b := idx.terms[i].Key, idx.terms[j].Key
		if len(a) != len(b) {
			return len(a) > len(b)
		}
		return a < b
	})

	return idx
}

func (idx *Index) insert(term string, t registry.LinkType, e registry.Entry) {
	key := strings.ToLower(strings.TrimSpace(term))
	if key == "" {
		return
	}
	if _, exists := idx.byKey[key]; exists {
		return
	}
	info := Info{
		Type:            t,
		Slug:            e.Slug,
		Title:           e.Title,
		RequiresCapital: requiresCapital(key),
	}
	idx.byKey[key] = info
	idx.terms = append(idx.terms, Term{Key: key, Info: info})
}

// Terms returns all index entries, longest key first.
func (idx *Index) Terms() []Term {
	return idx.terms
}

// Lookup resolves a lowercase key.
func (idx *Index) Lookup(key string) (Info, bool) {
	info, ok := idx.byKey[strings.ToLower(key)]
	return info, ok
}

// Len returns the number of indexed terms.
func (idx *Index) Len() int {
	return len(idx.terms)
}

// deriveAliases expands a tarot title into the alternate phrasings an
// author might actually type.
func deriveAliases(title string) []string {
	seen := make(map[string]bool)
	var out []string
	add := func(s string) {
		s = strings.TrimSpace(s)
		if len(s) < 3 {
			return
		}
		key := strings.ToLower(s)
		if seen[key] {
			return
		}
		seen[key] = true
		out = append(out, s)
	}

	// The phrase left of the first separator, e.g.
	// "The Fool - Tarot Card Meaning" -> "The Fool".
	if loc := titleSeparator.FindStringIndex(title); loc != nil {
		left := strings.TrimSpace(title[:loc[0]])
		if len(left) >= 3 {
			add(left)
			if core := cardSuffix.ReplaceAllString(left, ""); core != left {
				add(core)
			}
			if core := trailingLabel.ReplaceAllString(left, ""); core != left {
				add(core)
			}
		}
	} else if core := trailingLabel.ReplaceAllString(title, ""); core != title {
		// A bare trailing label, e.g. "Death Card" -> "Death".
		add(core)
	}

	// Rank variants: "9 of Pentacles" and "Nine of Pentacles" must both
	// resolve. Applied to every alias gathered so far, plus the title.
	candidates := append([]string{title}, out...)
	for _, c := range candidates {
		if m := rankOfSuit.FindStringSubmatch(strings.TrimSpace(c)); m != nil {
			rank, suit := strings.ToLower(m[1]), strings.ToLower(m[2])
			if word, ok := rankWords[rank]; ok {
				add(word + " of " + suit)
			}
			if digit, ok := rankDigits[rank]; ok {
				add(digit + " of " + suit)
			}
		}
	}

	return out
}

// requiresCapital reports whether a key needs capitalized matching: "the"
// followed by a card name that is also an everyday noun.
func requiresCapital(key string) bool {
	rest, ok := strings.CutPrefix(key, "the ")
	if !ok {
		return false
	}
	first, _, _ := strings.Cut(rest, " ")
	return ambiguousNouns[first]
}
