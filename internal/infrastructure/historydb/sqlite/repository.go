// Package sqlite provides a SQLite implementation of the HistoryStore port.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/groverneev/editwars/internal/domain/entities"
	"github.com/groverneev/editwars/internal/infrastructure/config"
)

// Repository implements ports.HistoryStore using SQLite. It caches fetched
// revision histories so repeated analyses don't re-hit the remote API;
// analysis results are never stored.
type Repository struct {
	db   *sql.DB
	path string
}

// NewRepository creates a new SQLite repository.
func NewRepository(cfg config.HistoryConfig) (*Repository, error) {
	if cfg.Path == "" {
		return nil, errors.New("history database path is required")
	}

	db, err := sql.Open("sqlite", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}

	// Enable foreign keys for referential integrity
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	// Enable WAL mode for better concurrent read/write performance
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL mode: %w", err)
	}

	// Set busy timeout to avoid "database is locked" errors
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting busy timeout: %w", err)
	}

	return &Repository{
		db:   db,
		path: cfg.Path,
	}, nil
}

// Close closes the database connection.
func (r *Repository) Close() error {
	return r.db.Close()
}

// Path returns the database file path.
func (r *Repository) Path() string {
	return r.path
}

// EnsureSchema creates the database schema if it doesn't exist.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	schema := `
	-- One row per cached page history
	CREATE TABLE IF NOT EXISTS histories (
		page_title TEXT PRIMARY KEY,
		fetched_at TEXT NOT NULL,
		revision_count INTEGER NOT NULL
	);

	-- Cached revisions, ordered by position within their history
	CREATE TABLE IF NOT EXISTS revisions (
		id TEXT PRIMARY KEY,
		page_title TEXT NOT NULL REFERENCES histories(page_title) ON DELETE CASCADE,
		position INTEGER NOT NULL,
		timestamp TEXT NOT NULL,
		editor TEXT NOT NULL,
		comment TEXT,
		size INTEGER,
		rev_id INTEGER,
		parent_id INTEGER,
		UNIQUE(page_title, position)
	);
	CREATE INDEX IF NOT EXISTS idx_revisions_page ON revisions(page_title);
	`

	_, err := r.db.ExecContext(ctx, schema)
	if err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}

// SaveHistory replaces the cached history for a page.
func (r *Repository) SaveHistory(ctx context.Context, title string, revisions []entities.Revision) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	if _, err := tx.ExecContext(ctx, `DELETE FROM histories WHERE page_title = ?`, title); err != nil {
		return fmt.Errorf("clearing old history: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO histories (page_title, fetched_at, revision_count) VALUES (?, ?, ?)`,
		title, time.Now().UTC().Format(time.RFC3339), len(revisions))
	if err != nil {
		return fmt.Errorf("inserting history: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO revisions (id, page_title, position, timestamp, editor, comment, size, rev_id, parent_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i := range revisions {
		rev := &revisions[i]

		var size, parentID sql.NullInt64
		if rev.Size != nil {
			size = sql.NullInt64{Int64: int64(*rev.Size), Valid: true}
		}
		if rev.ParentID != nil {
			parentID = sql.NullInt64{Int64: *rev.ParentID, Valid: true}
		}

		_, err := stmt.ExecContext(ctx,
			uuid.New().String(), title, i,
			rev.Timestamp.UTC().Format(time.RFC3339Nano),
			rev.Editor, rev.Comment, size, rev.RevID, parentID)
		if err != nil {
			return fmt.Errorf("inserting revision %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// FindHistory returns the cached history for a page, oldest revision first,
// or nil when the page has never been cached.
func (r *Repository) FindHistory(ctx context.Context, title string) ([]entities.Revision, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT revision_count FROM histories WHERE page_title = ?`, title).Scan(&count)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("looking up history: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT timestamp, editor, comment, size, rev_id, parent_id
		FROM revisions WHERE page_title = ? ORDER BY position`, title)
	if err != nil {
		return nil, fmt.Errorf("querying revisions: %w", err)
	}
	defer rows.Close()

	revisions := make([]entities.Revision, 0, count)
	for rows.Next() {
		var (
			timestamp      string
			revision       entities.Revision
			comment        sql.NullString
			size, parentID sql.NullInt64
		)
		if err := rows.Scan(&timestamp, &revision.Editor, &comment, &size, &revision.RevID, &parentID); err != nil {
			return nil, fmt.Errorf("scanning revision: %w", err)
		}

		revision.Timestamp, err = time.Parse(time.RFC3339Nano, timestamp)
		if err != nil {
			return nil, fmt.Errorf("parsing cached timestamp %q: %w", timestamp, err)
		}
		revision.Comment = comment.String
		if size.Valid {
			s := int(size.Int64)
			revision.Size = &s
		}
		if parentID.Valid {
			p := parentID.Int64
			revision.ParentID = &p
		}

		revisions = append(revisions, revision)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading revisions: %w", err)
	}

	return revisions, nil
}

// DeleteHistory removes the cached history for a page.
func (r *Repository) DeleteHistory(ctx context.Context, title string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM histories WHERE page_title = ?`, title); err != nil {
		return fmt.Errorf("deleting history: %w", err)
	}
	return nil
}

// ListPages returns the titles of all cached pages.
func (r *Repository) ListPages(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT page_title FROM histories ORDER BY page_title`)
	if err != nil {
		return nil, fmt.Errorf("listing pages: %w", err)
	}
	defer rows.Close()

	var titles []string
	for rows.Next() {
		var title string
		if err := rows.Scan(&title); err != nil {
			return nil, fmt.Errorf("scanning title: %w", err)
		}
		titles = append(titles, title)
	}
	return titles, rows.Err()
}
