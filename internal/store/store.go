// Package store caches a fetched link registry in SQLite so authoring
// commands can run against a URL-backed registry without a network
// round-trip every time.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/lunabyrd/arcana/internal/registry"
)

// schemaVersion is bumped whenever the cache layout changes; an
// incompatible cache is dropped and rebuilt on open.
const schemaVersion = 1

// ErrEmpty indicates the cache has never been populated.
var ErrEmpty = errors.New("registry cache is empty")

// Cache is the SQLite cache handle.
type Cache struct {
	db *sql.DB
}

// DefaultPath returns the cache database path under the user cache dir.
func DefaultPath() (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("resolve cache dir: %w", err)
	}
	return filepath.Join(dir, "arcana", "registry.db"), nil
}

// Open opens or creates the cache database at path.
func Open(path string) (*Cache, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create cache directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open cache database: %w", err)
	}

	c := &Cache{db: db}
	if err := c.initialize(); err != nil {
		db.Close()
		return nil, err
	}
	return c, nil
}

// Close closes the underlying database.
func (c *Cache) Close() error {
	return c.db.Close()
}

func (c *Cache) initialize() error {
	if _, err := c.db.Exec(`
		CREATE TABLE IF NOT EXISTS meta (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS entries (
			type  TEXT NOT NULL,
			slug  TEXT NOT NULL,
			title TEXT NOT NULL,
			PRIMARY KEY (type, slug)
		);
	`); err != nil {
		return fmt.Errorf("initialize cache schema: %w", err)
	}

	version, err := c.metaInt("schema_version")
	if err != nil {
		return err
	}
	if version != 0 && version != schemaVersion {
		// Incompatible cache: drop and start over.
		if _, err := c.db.Exec(`DELETE FROM entries; DELETE FROM meta;`); err != nil {
			return fmt.Errorf("reset incompatible cache: %w", err)
		}
	}
	return c.setMeta("schema_version", fmt.Sprintf("%d", schemaVersion))
}

// Save replaces the cached registry with reg, recording the source it was
// fetched from.
func (c *Cache) Save(reg *registry.Registry, source string) error {
	tx, err := c.db.Begin()
	if err != nil {
		return fmt.Errorf("begin cache write: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM entries`); err != nil {
		return fmt.Errorf("clear cache entries: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO entries (type, slug, title) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare cache insert: %w", err)
	}
	defer stmt.Close()

	for _, t := range registry.AllLinkTypes() {
		for _, e := range reg.Entries(t) {
			if _, err := stmt.Exec(t.String(), e.Slug, e.Title); err != nil {
				return fmt.Errorf("cache %s entry %s: %w", t, e.Slug, err)
			}
		}
	}

	now := time.Now().UTC().Format(time.RFC3339)
	for key, value := range map[string]string{"source": source, "fetched_at": now} {
		if _, err := tx.Exec(
			`INSERT INTO meta (key, value) VALUES (?, ?)
			 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
			key, value,
		); err != nil {
			return fmt.Errorf("record cache meta %s: %w", key, err)
		}
	}

	return tx.Commit()
}

// Load reconstructs the cached registry. Returns ErrEmpty when nothing has
// been cached yet.
func (c *Cache) Load() (*registry.Registry, error) {
	rows, err := c.db.Query(`SELECT type, slug, title FROM entries ORDER BY type, slug`)
	if err != nil {
		return nil, fmt.Errorf("read cache entries: %w", err)
	}
	defer rows.Close()

	reg := &registry.Registry{}
	count := 0
	for rows.Next() {
		var typeName, slug, title string
		if err := rows.Scan(&typeName, &slug, &title); err != nil {
			return nil, fmt.Errorf("scan cache entry: %w", err)
		}
		t, ok := registry.ParseLinkType(typeName)
		if !ok {
			continue
		}
		entry := registry.Entry{Slug: slug, Title: title}
		switch t {
		case registry.Tarot:
			reg.Tarot = append(reg.Tarot, entry)
		case registry.Blog:
			reg.Blog = append(reg.Blog, entry)
		case registry.Spread:
			reg.Spread = append(reg.Spread, entry)
		case registry.Horoscope:
			reg.Horoscope = append(reg.Horoscope, entry)
		}
		count++
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read cache entries: %w", err)
	}
	if count == 0 {
		return nil, ErrEmpty
	}
	return reg, nil
}

// Stats describes the cache contents.
type Stats struct {
	Source    string         `json:"source,omitempty"`
	FetchedAt string         `json:"fetched_at,omitempty"`
	Counts    map[string]int `json:"counts"`
	Total     int            `json:"total"`
}

// Stats reports per-type entry counts and fetch provenance.
func (c *Cache) Stats() (*Stats, error) {
	stats := &Stats{Counts: make(map[string]int)}

	rows, err := c.db.Query(`SELECT type, COUNT(*) FROM entries GROUP BY type`)
	if err != nil {
		return nil, fmt.Errorf("read cache stats: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var typeName string
		var n int
		if err := rows.Scan(&typeName, &n); err != nil {
			return nil, fmt.Errorf("scan cache stats: %w", err)
		}
		stats.Counts[typeName] = n
		stats.Total += n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read cache stats: %w", err)
	}

	stats.Source, _ = c.metaString("source")
	stats.FetchedAt, _ = c.metaString("fetched_at")
	return stats, nil
}

func (c *Cache) metaString(key string) (string, error) {
	var value string
	err := c.db.QueryRow(`SELECT value FROM meta WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read cache meta %s: %w", key, err)
	}
	return value, nil
}

func (c *Cache) metaInt(key string) (int, error) {
	value, err := c.metaString(key)
	if err != nil || value == "" {
		return 0, err
	}
	var n int
	if _, err := fmt.Sscanf(value, "%d", &n); err != nil {
		return 0, nil
	}
	return n, nil
}

func (c *Cache) setMeta(key, value string) error {
	_, err := c.db.Exec(
		`INSERT INTO meta (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("write cache meta %s: %w", key, err)
	}
	return nil
}
