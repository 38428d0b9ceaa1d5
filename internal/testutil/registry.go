// Package testutil provides shared fixtures for Arcana tests.
package testutil

import "github.com/lunabyrd/arcana/internal/registry"

// TestRegistry returns a small registry covering every collection, with
// the ambiguous "The World" style titles the capitalization gate needs.
func TestRegistry() *registry.Registry {
	return &registry.Registry{
		Tarot: []registry.Entry{
			{Slug: "the-fool", Title: "The Fool"},
			{Slug: "the-world", Title: "The World"},
			{Slug: "the-emperor", Title: "The Emperor"},
			{Slug: "death", Title: "Death - Tarot Card Meaning"},
			{Slug: "nine-of-pentacles", Title: "9 of Pentacles: The Ultimate Guide"},
			{Slug: "ten-of-cups", Title: "Ten of Cups"},
		},
		Blog: []registry.Entry{
			{Slug: "daily-tarot-ritual", Title: "Daily Tarot Ritual"},
			{Slug: "reading-reversals", Title: "Reading Reversals"},
		},
		Spread: []registry.Entry{
			{Slug: "celtic-cross", Title: "Celtic Cross"},
			{Slug: "three-card", Title: "Three Card Spread"},
		},
		Horoscope: []registry.Entry{
			{Slug: "aries", Title: "Aries"},
			{Slug: "pisces", Title: "Pisces"},
		},
	}
}
