package shortcode

import (
	"strings"
	"testing"

	"github.com/lunabyrd/arcana/internal/registry"
	"github.com/lunabyrd/arcana/internal/testutil"
)

func TestExtract(t *testing.T) {
	content := "Start [[tarot:the-fool]] middle [[blog:daily-tarot-ritual|my ritual]] end"
	matches := Extract(content)

	if len(matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(matches))
	}

	m := matches[0]
	if m.Type != registry.Tarot || m.Slug != "the-fool" || m.CustomText != nil {
		t.Fatalf("unexpected first match: %+v", m)
	}
	if m.Start != 6 || content[m.Start:m.End] != "[[tarot:the-fool]]" {
		t.Fatalf("bad span: %+v", m)
	}

	m = matches[1]
	if m.Type != registry.Blog || m.Slug != "daily-tarot-ritual" {
		t.Fatalf("unexpected second match: %+v", m)
	}
	if m.CustomText == nil || *m.CustomText != "my ritual" {
		t.Fatalf("custom text not captured: %+v", m)
	}
}

func TestExtractMalformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
	}{
		{"colon instead of pipe", "[[tarot:death:Renewal]]", 0},
		{"valid pipe form", "[[tarot:death|Renewal]]", 1},
		{"unknown type", "[[potion:healing]]", 0},
		{"unclosed", "[[tarot:death", 0},
		{"empty", "", 0},
		{"no shortcodes", "plain text with [brackets]", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matches := Extract(tt.content)
			if len(matches) != tt.want {
				t.Fatalf("got %d matches, want %d: %+v", len(matches), tt.want, matches)
			}
			if tt.want == 1 {
				if matches[0].CustomText == nil || *matches[0].CustomText != "Renewal" {
					t.Fatalf("custom text=%v", matches[0].CustomText)
				}
			}
		})
	}
}

func TestFormat(t *testing.T) {
	if got := Format(registry.Tarot, "the-fool", ""); got != "[[tarot:the-fool]]" {
		t.Fatalf("got %q", got)
	}
	if got := Format(registry.Spread, "celtic-cross", "my spread"); got != "[[spread:celtic-cross|my spread]]" {
		t.Fatalf("got %q", got)
	}
}

func TestResolve(t *testing.T) {
	reg := testutil.TestRegistry()

	got := Resolve("See [[tarot:the-fool]] now", reg)
	want := `See <a href="/tarot/the-fool" class="internal-link" data-link-type="tarot" target="_blank" rel="noopener noreferrer">The Fool</a> now`
	if got != want {
		t.Fatalf("got %q\nwant %q", got, want)
	}
}

func TestResolveCustomText(t *testing.T) {
	got := Resolve("[[tarot:the-fool|a new beginning]]", testutil.TestRegistry())
	if !strings.Contains(got, ">a new beginning</a>") {
		t.Fatalf("custom text not used as label: %q", got)
	}
}

func TestResolveUnknownSlugFallsBackToSlug(t *testing.T) {
	got := Resolve("[[tarot:not-a-card]]", testutil.TestRegistry())
	if !strings.Contains(got, ">not-a-card</a>") {
		t.Fatalf("label should fall back to slug: %q", got)
	}
}

func TestResolveNilRegistry(t *testing.T) {
	got := Resolve("[[blog:some-post]]", nil)
	if !strings.Contains(got, ">some-post</a>") {
		t.Fatalf("got %q", got)
	}
}

func TestResolveIdempotent(t *testing.T) {
	reg := testutil.TestRegistry()
	content := "Read [[tarot:the-fool]] and [[spread:celtic-cross|a classic]]."

	once := Resolve(content, reg)
	twice := Resolve(once, reg)
	if once != twice {
		t.Fatalf("second resolve changed output:\n once: %q\ntwice: %q", once, twice)
	}
}

func TestResolveEscapesLabel(t *testing.T) {
	got := Resolve(`[[blog:a-post|5 < 6 & more]]`, nil)
	if !strings.Contains(got, ">5 &lt; 6 &amp; more</a>") {
		t.Fatalf("label not escaped: %q", got)
	}
}

func TestStrip(t *testing.T) {
	reg := testutil.TestRegistry()

	got := Strip("Meet [[tarot:the-fool|the trickster]] and [[tarot:the-world]].", reg)
	want := "Meet the trickster and The World."
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}

	if got := Strip("", reg); got != "" {
		t.Fatalf("got %q", got)
	}
}

func TestCount(t *testing.T) {
	content := "[[tarot:a]] [[tarot:b]] [[blog:c]] [[spread:d|x]] [[horoscope:e]]"
	c := Count(content)

	if c.Tarot != 2 || c.Blog != 1 || c.Spread != 1 || c.Horoscope != 1 {
		t.Fatalf("unexpected counts: %+v", c)
	}
	if c.Total != 5 {
		t.Fatalf("total=%d", c.Total)
	}
}

func TestValidate(t *testing.T) {
	reg := testutil.TestRegistry()
	content := "[[tarot:the-fool]] [[tarot:missing-card]] [[blog:daily-tarot-ritual]]"

	problems := Validate(content, reg)
	if len(problems) != 1 {
		t.Fatalf("expected 1 problem, got %d: %+v", len(problems), problems)
	}
	if problems[0].Match.Slug != "missing-card" {
		t.Fatalf("wrong problem: %+v", problems[0])
	}
	if !strings.Contains(problems[0].Reason, "missing-card") {
		t.Fatalf("reason should name the slug: %q", problems[0].Reason)
	}
}
