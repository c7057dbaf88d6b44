// Package cache persists probe results so repeated invocations don't have
// to fork loader processes every time. Results are keyed by the identity
// (path, size, mtime) of the file that was probed, so a libc upgrade
// invalidates the cache immediately regardless of TTL.
package cache

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/emiller/platformprobe/internal/libc"
)

//go:embed schema.sql
var schemaSQL string

// Entry is one cached probe result.
type Entry struct {
	ID        string
	Key       string
	Flavor    libc.Flavor
	Version   string
	Source    string
	CreatedAt time.Time
}

// Info converts the entry back to the libc.Info it was recorded from.
func (e Entry) Info() libc.Info {
	return libc.Info{
		Flavor:  e.Flavor,
		Version: e.Version,
		Source:  e.Source,
	}
}

// Stats summarizes cache contents.
type Stats struct {
	Path    string
	Entries int
	Oldest  time.Time
	Newest  time.Time
}

// Store manages the SQLite database holding probe results.
type Store struct {
	db     *sql.DB
	dbPath string
}

// Open opens (creating if needed) the probe cache at dbPath.
func Open(dbPath string) (*Store, error) {
	if dbPath != ":memory:" {
		dir := filepath.Dir(dbPath)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create cache directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open cache database: %w", err)
	}

	// busy_timeout first so the remaining pragmas wait on locks held by a
	// concurrent invocation initializing the same file.
	pragmas := []string{
		"PRAGMA busy_timeout=5000",
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
	}
	for _, pragma := range pragmas {
		if err := execWithRetry(db, pragma, 5, 10*time.Millisecond); err != nil {
			db.Close()
			return nil, fmt.Errorf("set %s: %w", pragma, err)
		}
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("init cache schema: %w", err)
	}

	return &Store{db: db, dbPath: dbPath}, nil
}

// execWithRetry executes a statement with exponential backoff on
// "database is locked" errors.
func execWithRetry(db *sql.DB, stmt string, maxRetries int, baseDelay time.Duration) error {
	var lastErr error
	for attempt := 0; attempt < maxRetries; attempt++ {
		_, err := db.Exec(stmt)
		if err == nil {
			return nil
		}
		if !strings.Contains(err.Error(), "database is locked") {
			return err
		}
		lastErr = err
		time.Sleep(baseDelay * time.Duration(1<<attempt))
	}
	return lastErr
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.dbPath
}

// Get returns the freshest cached entry for key that is younger than ttl,
// or nil when nothing usable is cached.
func (s *Store) Get(ctx context.Context, key string, ttl time.Duration) (*Entry, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, key, flavor, version, source, created_at
		 FROM probes WHERE key = ? ORDER BY created_at DESC LIMIT 1`, key)

	var e Entry
	var flavor string
	if err := row.Scan(&e.ID, &e.Key, &flavor, &e.Version, &e.Source, &e.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("query probe cache: %w", err)
	}
	e.Flavor = libc.Flavor(flavor)

	if time.Since(e.CreatedAt) > ttl {
		return nil, nil
	}
	return &e, nil
}

// Put records a probe result under key and returns the stored entry.
func (s *Store) Put(ctx context.Context, key string, info libc.Info) (*Entry, error) {
	e := &Entry{
		ID:        uuid.NewString(),
		Key:       key,
		Flavor:    info.Flavor,
		Version:   info.Version,
		Source:    info.Source,
		CreatedAt: time.Now().UTC(),
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO probes (id, key, flavor, version, source, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		e.ID, e.Key, string(e.Flavor), e.Version, e.Source, e.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("record probe result: %w", err)
	}
	return e, nil
}

// Clear removes every cached probe result.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM probes`)
	if err != nil {
		return 0, fmt.Errorf("clear probe cache: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("clear probe cache: %w", err)
	}
	return n, nil
}

// Stats reports cache contents.
func (s *Store) Stats(ctx context.Context) (Stats, error) {
	stats := Stats{Path: s.dbPath}

	row := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(MIN(created_at), ''), COALESCE(MAX(created_at), '') FROM probes`)

	var oldest, newest string
	if err := row.Scan(&stats.Entries, &oldest, &newest); err != nil {
		return Stats{}, fmt.Errorf("query cache stats: %w", err)
	}

	if stats.Entries > 0 {
		var err error
		if stats.Oldest, err = parseSQLiteTime(oldest); err != nil {
			return Stats{}, err
		}
		if stats.Newest, err = parseSQLiteTime(newest); err != nil {
			return Stats{}, err
		}
	}
	return stats, nil
}

// parseSQLiteTime handles the formats the driver may hand back for an
// aggregated DATETIME column.
func parseSQLiteTime(s string) (time.Time, error) {
	for _, layout := range []string{
		time.RFC3339Nano,
		"2006-01-02 15:04:05.999999999-07:00",
		"2006-01-02 15:04:05",
	} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparsable cache timestamp %q", s)
}

// Key derives a cache key from the identity of the probed file. Any change
// to the file (a libc upgrade replaces it) changes the key.
func Key(path string) (string, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("stat probe target: %w", err)
	}
	return fmt.Sprintf("%s|%d|%d", path, fi.Size(), fi.ModTime().UnixNano()), nil
}
