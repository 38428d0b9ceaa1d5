package termindex

import (
	"testing"

	"github.com/lunabyrd/arcana/internal/registry"
)

func buildIndex(tarot, blog []registry.Entry) *Index {
	return Build(&registry.Registry{Tarot: tarot, Blog: blog})
}

func TestCanonicalTitlesIndexed(t *testing.T) {
	idx := buildIndex(
		[]registry.Entry{{Slug: "the-fool", Title: "The Fool"}},
		[]registry.Entry{{Slug: "daily-tarot-ritual", Title: "Daily Tarot Ritual"}},
	)

	info, ok := idx.Lookup("the fool")
	if !ok {
		t.Fatal("expected 'the fool' to be indexed")
	}
	if info.Type != registry.Tarot || info.Slug != "the-fool" {
		t.Fatalf("unexpected info: %+v", info)
	}

	info, ok = idx.Lookup("Daily Tarot Ritual")
	if !ok {
		t.Fatal("expected blog title to be indexed")
	}
	if info.Type != registry.Blog || info.Slug != "daily-tarot-ritual" {
		t.Fatalf("unexpected info: %+v", info)
	}
}

func TestSeparatorAliases(t *testing.T) {
	tests := []struct {
		title string
		slug  string
		keys  []string
	}{
		{
			title: "The Fool - Tarot Card Meaning",
			slug:  "the-fool",
			keys:  []string{"the fool - tarot card meaning", "the fool"},
		},
		{
			title: "Death – Transformation and Endings",
			slug:  "death",
			keys:  []string{"death – transformation and endings", "death"},
		},
		{
			title: "Strength: Courage in the Cards",
			slug:  "strength",
			keys:  []string{"strength: courage in the cards", "strength"},
		},
		{
			title: "The Moon Card Guide",
			slug:  "the-moon",
			keys:  []string{"the moon card guide", "the moon card"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			idx := buildIndex([]registry.Entry{{Slug: tt.slug, Title: tt.title}}, nil)
			for _, key := range tt.keys {
				info, ok := idx.Lookup(key)
				if !ok {
					t.Fatalf("expected key %q to be indexed", key)
				}
				if info.Slug != tt.slug {
					t.Fatalf("key %q: slug=%q, want %q", key, info.Slug, tt.slug)
				}
			}
		})
	}
}

func TestNumberedRankAliases(t *testing.T) {
	idx := buildIndex([]registry.Entry{
		{Slug: "nine-of-pentacles", Title: "9 of Pentacles: The Ultimate Guide"},
		{Slug: "ten-of-cups", Title: "Ten of Cups"},
	}, nil)

	for _, key := range []string{"9 of pentacles", "nine of pentacles"} {
		info, ok := idx.Lookup(key)
		if !ok {
			t.Fatalf("expected key %q to be indexed", key)
		}
		if info.Slug != "nine-of-pentacles" {
			t.Fatalf("key %q resolved to %q", key, info.Slug)
		}
	}

	for _, key := range []string{"ten of cups", "10 of cups"} {
		info, ok := idx.Lookup(key)
		if !ok {
			t.Fatalf("expected key %q to be indexed", key)
		}
		if info.Slug != "ten-of-cups" {
			t.Fatalf("key %q resolved to %q", key, info.Slug)
		}
	}
}

func TestAceRankAlias(t *testing.T) {
	idx := buildIndex([]registry.Entry{{Slug: "ace-of-wands", Title: "1 of Wands"}}, nil)

	info, ok := idx.Lookup("ace of wands")
	if !ok {
		t.Fatal("expected 'ace of wands' alias")
	}
	if info.Slug != "ace-of-wands" {
		t.Fatalf("slug=%q", info.Slug)
	}
}

func TestFirstWriterWins(t *testing.T) {
	// A later entry whose alias collides with an earlier canonical title
	// must not overwrite it.
	idx := buildIndex([]registry.Entry{
		{Slug: "death", Title: "Death"},
		{Slug: "death-guide", Title: "Death - Tarot Card Meaning"},
	}, nil)

	info, ok := idx.Lookup("death")
	if !ok {
		t.Fatal("expected 'death' to be indexed")
	}
	if info.Slug != "death" {
		t.Fatalf("canonical title overwritten: slug=%q", info.Slug)
	}
}

func TestTermsLongestFirst(t *testing.T) {
	idx := buildIndex([]registry.Entry{
		{Slug: "cups", Title: "Cups"},
		{Slug: "ten-of-cups", Title: "Ten of Cups"},
	}, nil)

	terms := idx.Terms()
	for i := 1; i < len(terms); i++ {
		if len(terms[i-1].Key) < len(terms[i].Key) {
			t.Fatalf("terms not sorted longest-first: %q before %q", terms[i-1].Key, terms[i].Key)
		}
	}
	if terms[0].Key != "ten of cups" {
		t.Fatalf("expected longest key first, got %q", terms[0].Key)
	}
}

func TestRequiresCapital(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{"the world", true},
		{"the sun", true},
		{"the hanged man", true},
		{"the fool", true},
		{"death", false},
		{"nine of pentacles", false},
		{"the high priestess", false},
	}

	for _, tt := range tests {
		if got := requiresCapital(tt.key); got != tt.want {
			t.Errorf("requiresCapital(%q)=%v, want %v", tt.key, got, tt.want)
		}
	}
}

func TestSpreadAndHoroscopeNotIndexed(t *testing.T) {
	idx := Build(&registry.Registry{
		Spread:    []registry.Entry{{Slug: "celtic-cross", Title: "Celtic Cross"}},
		Horoscope: []registry.Entry{{Slug: "aries", Title: "Aries"}},
	})

	if idx.Len() != 0 {
		t.Fatalf("expected empty index, got %d terms", idx.Len())
	}
	if _, ok := idx.Lookup("celtic cross"); ok {
		t.Fatal("spread titles must not be indexed")
	}
	if _, ok := idx.Lookup("aries"); ok {
		t.Fatal("horoscope titles must not be indexed")
	}
}

func TestShortAliasesDropped(t *testing.T) {
	// Left segments under 3 chars are not aliases.
	idx := buildIndex([]registry.Entry{{Slug: "io", Title: "Io - A Short Title"}}, nil)
	if _, ok := idx.Lookup("io"); ok {
		t.Fatal("two-char alias should be dropped")
	}
	if _, ok := idx.Lookup("io - a short title"); !ok {
		t.Fatal("full title should still be indexed")
	}
}
