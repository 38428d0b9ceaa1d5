package registry

// cardCategorySlugs are spread slugs that actually name a card category page
// rather than a reading spread.
var cardCategorySlugs = map[string]bool{
	"wands":        true,
	"cups":         true,
	"swords":       true,
	"pentacles":    true,
	"major-arcana": true,
	"minor-arcana": true,
}

// spreadAliases maps known spread slugs (and their common variants) to the
// canonical slug used by reading pages. Unknown spread slugs fall back to
// the bare /reading page.
var spreadAliases = map[string]string{
	"celtic-cross":        "celtic-cross",
	"three-card":          "three-card",
	"past-present-future": "three-card",
	"one-card":            "card-of-the-day",
	"daily":               "card-of-the-day",
	"card-of-the-day":     "card-of-the-day",
	"love":                "love-spread",
	"love-spread":         "love-spread",
	"yes-no":              "yes-no",
	"horseshoe":           "horseshoe",
	"year-ahead":          "year-ahead",
}

// URLFor maps a (type, slug) pair to a site path.
//
// Spread slugs are special: category slugs point at card category pages,
// known spreads at their reading page, anything else at /reading.
func URLFor(t LinkType, slug string) string {
	switch t {
	case Tarot:
		return "/tarot/" + slug
	case Blog:
		return "/blog/" + slug
	case Horoscope:
		return "/horoscopes/" + slug
	case Spread:
		if cardCategorySlugs[slug] {
			return "/tarot/cards/" + slug
		}
		if canonical, ok := spreadAliases[slug]; ok {
			return "/reading/" + canonical
		}
		return "/reading"
	}
	return "/"
}
