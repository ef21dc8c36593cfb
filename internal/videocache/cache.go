package videocache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"watchlog/internal/logging"
)

// Entry is a cached catalog lookup keyed by video ID. A nil DurationMinutes
// together with empty Published/Author records a "not found" outcome, so
// re-runs skip the API for dead links too.
type Entry struct {
	VideoID         string
	DurationMinutes *float64
	Published       string
	Author          string
	CachedAt        time.Time
}

// Store persists catalog lookups in a local SQLite database.
type Store struct {
	db     *sql.DB
	path   string
	logger *slog.Logger
}

// Open initializes or connects to the cache database and applies the schema.
func Open(path string, logger *slog.Logger) (*Store, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("cache path must not be empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("ensure cache directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{
		db:     db,
		path:   path,
		logger: logging.NewComponentLogger(logger, "videocache"),
	}
	if err := store.applySchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

func (s *Store) applySchema(ctx context.Context) error {
	const schema = `
CREATE TABLE IF NOT EXISTS video_lookup (
	video_id         TEXT PRIMARY KEY,
	duration_minutes REAL,
	published        TEXT NOT NULL DEFAULT '',
	author           TEXT NOT NULL DEFAULT '',
	cached_at        TEXT NOT NULL
);`
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("apply cache schema: %w", err)
	}
	return nil
}

// Lookup returns the cached entry for a video ID, if any.
func (s *Store) Lookup(ctx context.Context, videoID string) (Entry, bool, error) {
	videoID = strings.TrimSpace(videoID)
	if videoID == "" {
		return Entry{}, false, nil
	}

	row := s.db.QueryRowContext(ctx,
		`SELECT duration_minutes, published, author, cached_at FROM video_lookup WHERE video_id = ?`,
		videoID)

	var duration sql.NullFloat64
	var published, author, cachedAt string
	if err := row.Scan(&duration, &published, &author, &cachedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Entry{}, false, nil
		}
		return Entry{}, false, fmt.Errorf("query cache: %w", err)
	}

	entry := Entry{
		VideoID:   videoID,
		Published: published,
		Author:    author,
	}
	if duration.Valid {
		value := duration.Float64
		entry.DurationMinutes = &value
	}
	if when, err := time.Parse(time.RFC3339, cachedAt); err == nil {
		entry.CachedAt = when
	}
	return entry, true, nil
}

// Store inserts or replaces a cache entry.
func (s *Store) Store(ctx context.Context, entry Entry) error {
	entry.VideoID = strings.TrimSpace(entry.VideoID)
	if entry.VideoID == "" {
		return errors.New("video id must not be empty")
	}
	if entry.CachedAt.IsZero() {
		entry.CachedAt = time.Now().UTC()
	}

	var duration sql.NullFloat64
	if entry.DurationMinutes != nil {
		duration = sql.NullFloat64{Float64: *entry.DurationMinutes, Valid: true}
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO video_lookup (video_id, duration_minutes, published, author, cached_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(video_id) DO UPDATE SET
			duration_minutes = excluded.duration_minutes,
			published        = excluded.published,
			author           = excluded.author,
			cached_at        = excluded.cached_at`,
		entry.VideoID, duration, entry.Published, entry.Author,
		entry.CachedAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("store cache entry: %w", err)
	}

	s.logger.Debug("cached lookup", logging.String("video_id", entry.VideoID))
	return nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
