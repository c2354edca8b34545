package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/finwise/finance_tracker_app/internal/apperrors"
	portsrepo "github.com/finwise/finance_tracker_app/internal/core/ports/repositories"

	_ "modernc.org/sqlite"
)

// snapshotRepository persists dataset snapshots in a local sqlite file, one
// row per storage key. This is the durable local slot the ledger store writes
// after every mutation.
type snapshotRepository struct {
	db *sql.DB
}

// NewSnapshotRepository opens (creating if needed) the sqlite database at
// dbPath and applies the schema migrations.
func NewSnapshotRepository(dbPath string) (portsrepo.SnapshotRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := runMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &snapshotRepository{db: db}, nil
}

// LoadSnapshot returns the blob stored under key, or apperrors.ErrNotFound.
func (r *snapshotRepository) LoadSnapshot(ctx context.Context, key string) ([]byte, error) {
	query := `SELECT data FROM snapshots WHERE key = ?;`

	var blob []byte
	err := r.db.QueryRowContext(ctx, query, key).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load snapshot %q: %w", key, err)
	}
	return blob, nil
}

// SaveSnapshot upserts the blob under key.
func (r *snapshotRepository) SaveSnapshot(ctx context.Context, key string, blob []byte) error {
	query := `
		INSERT INTO snapshots (key, data, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at;
	`

	now := time.Now().UTC().Format(time.RFC3339)
	if _, err := r.db.ExecContext(ctx, query, key, blob, now); err != nil {
		return fmt.Errorf("save snapshot %q: %w", key, err)
	}
	return nil
}

// DeleteSnapshot removes the row under key. Absent keys are not an error.
func (r *snapshotRepository) DeleteSnapshot(ctx context.Context, key string) error {
	query := `DELETE FROM snapshots WHERE key = ?;`

	if _, err := r.db.ExecContext(ctx, query, key); err != nil {
		return fmt.Errorf("delete snapshot %q: %w", key, err)
	}
	return nil
}

// Close releases the database handle.
func (r *snapshotRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}
