// Package store keeps a history of statistics snapshots in SQLite so badges
// can be regenerated without the original snapshot file.
package store

import (
	"context"
	"database/sql"
	stderrors "errors"
	"os"
	"path/filepath"
	"time"

	"github.com/arthur-debert/statbadges/pkg/errors"
	"github.com/arthur-debert/statbadges/pkg/stats"
	_ "modernc.org/sqlite"
)

// Entry summarises one stored snapshot.
type Entry struct {
	ID      int64
	User    string
	TakenAt time.Time
}

// Store wraps a SQLite database of snapshots.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens (or creates) the database at path, creating its directory and
// schema when needed.
func Open(ctx context.Context, path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errors.Wrapf(err, errors.ErrDirCreate, "failed to create store directory for %s", path)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrStoreOpen, "failed to open store %s", path)
	}
	// WAL lets `serve` read while `import` writes; busy_timeout makes writers wait.
	if _, err := db.ExecContext(ctx, `
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
	`); err != nil {
		_ = db.Close()
		return nil, errors.Wrapf(err, errors.ErrStoreOpen, "failed to configure store %s", path)
	}
	db.SetMaxOpenConns(4)

	s := &Store{db: db, now: time.Now}
	if err := s.ensureSchema(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS snapshots (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    user TEXT NOT NULL,
    taken_at TEXT NOT NULL,
    body TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS snapshots_user ON snapshots (user, id);
`)
	if err != nil {
		return errors.Wrap(err, errors.ErrStoreOpen, "failed to create schema")
	}
	return nil
}

// Save stores snap and returns its id. The snapshot must name its user.
func (s *Store) Save(ctx context.Context, snap stats.Snapshot) (int64, error) {
	if snap.User == "" {
		return 0, errors.New(errors.ErrInvalidInput, "snapshot has no user")
	}

	body, err := snap.EncodeJSON()
	if err != nil {
		return 0, errors.Wrap(err, errors.ErrInternal, "failed to encode snapshot")
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO snapshots (user, taken_at, body) VALUES (?, ?, ?)`,
		snap.User, s.now().UTC().Format(time.RFC3339Nano), string(body))
	if err != nil {
		return 0, errors.Wrap(err, errors.ErrStoreQuery, "failed to save snapshot")
	}
	return res.LastInsertId()
}

// Latest returns the most recently saved snapshot of user.
func (s *Store) Latest(ctx context.Context, user string) (stats.Snapshot, error) {
	var body string
	err := s.db.QueryRowContext(ctx,
		`SELECT body FROM snapshots WHERE user = ? ORDER BY id DESC LIMIT 1`, user).Scan(&body)
	if stderrors.Is(err, sql.ErrNoRows) {
		return stats.Snapshot{}, errors.Newf(errors.ErrNotFound, "no snapshot stored for %q", user).
			WithDetail("user", user)
	}
	if err != nil {
		return stats.Snapshot{}, errors.Wrap(err, errors.ErrStoreQuery, "failed to load snapshot")
	}

	snap, err := stats.DecodeSnapshot([]byte(body), stats.FormatJSON)
	if err != nil {
		return stats.Snapshot{}, errors.Wrap(err, errors.ErrSnapshotParse, "stored snapshot is corrupt")
	}
	return snap, nil
}

// List returns the stored snapshots of user, newest first.
func (s *Store) List(ctx context.Context, user string) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, user, taken_at FROM snapshots WHERE user = ? ORDER BY id DESC`, user)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrStoreQuery, "failed to list snapshots")
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var takenAt string
		if err := rows.Scan(&e.ID, &e.User, &takenAt); err != nil {
			return nil, errors.Wrap(err, errors.ErrStoreQuery, "failed to read snapshot row")
		}
		e.TakenAt, err = time.Parse(time.RFC3339Nano, takenAt)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrSnapshotParse, "invalid snapshot timestamp")
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, errors.ErrStoreQuery, "failed to list snapshots")
	}
	return entries, nil
}
