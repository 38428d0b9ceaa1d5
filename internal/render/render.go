// Package render turns stored article source into publishable HTML.
package render

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"

	"github.com/lunabyrd/arcana/internal/registry"
	"github.com/lunabyrd/arcana/internal/shortcode"
)

// MarkdownToHTML converts a markdown draft to HTML. Shortcode tokens pass
// through goldmark untouched (they contain no markdown syntax goldmark
// rewrites) and are expanded afterwards.
func MarkdownToHTML(content string) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.New().Convert([]byte(content), &buf); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}
	return buf.String(), nil
}

// Article renders article source to final HTML: markdown conversion for
// .md/.markdown files (HTML passes through as-is), then shortcode
// resolution against the registry.
func Article(content, filename string, reg *registry.Registry) (string, error) {
	html := content
	if isMarkdownFile(filename) {
		converted, err := MarkdownToHTML(content)
		if err != nil {
			return "", err
		}
		html = converted
	}
	return shortcode.Resolve(html, reg), nil
}

func isMarkdownFile(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".md", ".markdown":
		return true
	}
	return false
}
