package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	goslug "github.com/gosimple/slug"
	"gopkg.in/yaml.v3"
)

// fetchTimeout bounds the single registry GET.
const fetchTimeout = 30 * time.Second

// Load reads a registry from a .json, .yaml, or .yml file.
func Load(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read registry %s: %w", path, err)
	}

	var reg Registry
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &reg); err != nil {
			return nil, fmt.Errorf("parse registry %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(data, &reg); err != nil {
			return nil, fmt.Errorf("parse registry %s: %w", path, err)
		}
	}

	normalize(&reg)
	return &reg, nil
}

// Fetch retrieves a JSON registry from a URL.
func Fetch(ctx context.Context, url string) (*Registry, error) {
	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build registry request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch registry %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch registry %s: unexpected status %s", url, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read registry response: %w", err)
	}

	var reg Registry
	if err := json.Unmarshal(body, &reg); err != nil {
		return nil, fmt.Errorf("parse registry response: %w", err)
	}

	normalize(&reg)
	return &reg, nil
}

// normalize trims titles and derives missing slugs from titles.
func normalize(reg *Registry) {
	for _, entries := range [][]Entry{reg.Tarot, reg.Blog, reg.Spread, reg.Horoscope} {
		for i := range entries {
			entries[i].Title = strings.TrimSpace(entries[i].Title)
			entries[i].Slug = strings.TrimSpace(entries[i].Slug)
			if entries[i].Slug == "" && entries[i].Title != "" {
				entries[i].Slug = goslug.Make(entries[i].Title)
			}
		}
	}
}
