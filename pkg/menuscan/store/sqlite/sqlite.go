package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/platewise/menuscan/pkg/menuscan/internalerr"
	"github.com/platewise/menuscan/pkg/menuscan/store"
)

// sqliteStore implements the Store interface using SQLite
type sqliteStore struct {
	db *sql.DB
}

// Open opens a SQLite database with WAL mode enabled and initializes the
// schema.
func Open(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}

	// Enable foreign keys
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{db: db}, nil
}

// Close closes the database connection
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

// initSchema creates tables if they don't exist
func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS snapshots (
	id TEXT PRIMARY KEY,
	source TEXT NOT NULL,
	taken_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS snapshot_raw (
	snapshot_id TEXT NOT NULL,
	pos INTEGER NOT NULL,
	line TEXT NOT NULL,
	PRIMARY KEY(snapshot_id, pos),
	FOREIGN KEY(snapshot_id) REFERENCES snapshots(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS snapshot_items (
	snapshot_id TEXT NOT NULL,
	pos INTEGER NOT NULL,
	text TEXT NOT NULL,
	norm TEXT NOT NULL,
	confidence REAL NOT NULL,
	selected INTEGER NOT NULL DEFAULT 0,
	PRIMARY KEY(snapshot_id, pos),
	FOREIGN KEY(snapshot_id) REFERENCES snapshots(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_snapshots_taken_at ON snapshots(taken_at);
CREATE INDEX IF NOT EXISTS idx_snapshot_items_norm ON snapshot_items(norm);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}

// SaveSnapshot inserts or replaces a snapshot with all its lines and items.
func (s *sqliteStore) SaveSnapshot(ctx context.Context, snap store.Snapshot) error {
	if snap.ID == "" {
		return fmt.Errorf("save snapshot: %w: empty id", internalerr.ErrInvalidConfig)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`INSERT OR REPLACE INTO snapshots(id, source, taken_at) VALUES(?, ?, ?)`,
		snap.ID, snap.Source, snap.TakenAt.UTC().Format(time.RFC3339),
	); err != nil {
		return err
	}

	// Replace dependent rows wholesale; snapshots are small.
	if _, err := tx.ExecContext(ctx, `DELETE FROM snapshot_raw WHERE snapshot_id = ?`, snap.ID); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM snapshot_items WHERE snapshot_id = ?`, snap.ID); err != nil {
		return err
	}

	for i, line := range snap.Raw {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO snapshot_raw(snapshot_id, pos, line) VALUES(?, ?, ?)`,
			snap.ID, i, line,
		); err != nil {
			return err
		}
	}

	for i, item := range snap.Items {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO snapshot_items(snapshot_id, pos, text, norm, confidence, selected) VALUES(?, ?, ?, ?, ?, ?)`,
			snap.ID, i, item.Text, item.Norm, item.Confidence, boolToInt(item.Selected),
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// GetSnapshot retrieves a snapshot by ID
func (s *sqliteStore) GetSnapshot(ctx context.Context, id string) (store.Snapshot, bool, error) {
	var (
		snap    store.Snapshot
		takenAt string
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT id, source, taken_at FROM snapshots WHERE id = ?`, id,
	).Scan(&snap.ID, &snap.Source, &takenAt)
	if err == sql.ErrNoRows {
		return store.Snapshot{}, false, nil
	}
	if err != nil {
		return store.Snapshot{}, false, err
	}

	snap.TakenAt, err = time.Parse(time.RFC3339, takenAt)
	if err != nil {
		return store.Snapshot{}, false, fmt.Errorf("parse taken_at: %w", err)
	}

	if snap.Raw, err = s.loadRaw(ctx, id); err != nil {
		return store.Snapshot{}, false, err
	}
	if snap.Items, err = s.loadItems(ctx, id); err != nil {
		return store.Snapshot{}, false, err
	}

	return snap, true, nil
}

// ListSnapshots returns the most recent snapshots, newest first.
func (s *sqliteStore) ListSnapshots(ctx context.Context, limit int) ([]store.Snapshot, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id FROM snapshots ORDER BY id DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	snaps := make([]store.Snapshot, 0, len(ids))
	for _, id := range ids {
		snap, ok, err := s.GetSnapshot(ctx, id)
		if err != nil {
			return nil, err
		}
		if ok {
			snaps = append(snaps, snap)
		}
	}
	return snaps, nil
}

// SetSelected toggles an item's selection state, keyed by norm.
func (s *sqliteStore) SetSelected(ctx context.Context, id, norm string, selected bool) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE snapshot_items SET selected = ? WHERE snapshot_id = ? AND norm = ?`,
		boolToInt(selected), id, norm,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("set selected %s/%s: %w", id, norm, internalerr.ErrNotFound)
	}
	return nil
}

func (s *sqliteStore) loadRaw(ctx context.Context, id string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT line FROM snapshot_raw WHERE snapshot_id = ? ORDER BY pos`, id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []string
	for rows.Next() {
		var line string
		if err := rows.Scan(&line); err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, rows.Err()
}

func (s *sqliteStore) loadItems(ctx context.Context, id string) ([]store.Item, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT text, norm, confidence, selected FROM snapshot_items WHERE snapshot_id = ? ORDER BY pos`, id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []store.Item
	for rows.Next() {
		var (
			item     store.Item
			selected int
		)
		if err := rows.Scan(&item.Text, &item.Norm, &item.Confidence, &selected); err != nil {
			return nil, err
		}
		item.Selected = selected != 0
		items = append(items, item)
	}
	return items, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
