package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lunabyrd/arcana/internal/registry"
	"github.com/lunabyrd/arcana/internal/store"
)

func isURLSource(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// loadRegistry materializes the resolved registry source: local files are
// read directly, URL sources are fetched (or read from the cache with
// --offline).
func loadRegistry(ctx context.Context) (*registry.Registry, error) {
	source := getRegistrySource()
	if source == "" {
		return nil, fmt.Errorf("no registry source resolved")
	}

	if !isURLSource(source) {
		return registry.Load(source)
	}

	if offline {
		return loadCachedRegistry()
	}

	reg, err := registry.Fetch(ctx, source)
	if err != nil {
		// Network trouble: a previously fetched cache is better than failing.
		if cached, cacheErr := loadCachedRegistry(); cacheErr == nil {
			if !isJSONOutput() {
				fmt.Fprintf(os.Stderr, "warning: %v; using cached registry\n", err)
			}
			return cached, nil
		}
		return nil, err
	}
	return reg, nil
}

func loadCachedRegistry() (*registry.Registry, error) {
	path, err := store.DefaultPath()
	if err != nil {
		return nil, err
	}
	cache, err := store.Open(path)
	if err != nil {
		return nil, err
	}
	defer cache.Close()
	return cache.Load()
}

// readContentArg reads the article content for a command: a file path, or
// "-" for stdin.
func readContentArg(arg string) (string, error) {
	if arg == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(arg)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
