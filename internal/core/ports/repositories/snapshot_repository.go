package repositories

import (
	"context"
)

// SnapshotReader defines read access to persisted dataset snapshots.
type SnapshotReader interface {
	// LoadSnapshot returns the serialized blob stored under key.
	// Returns apperrors.ErrNotFound when no snapshot exists for the key.
	LoadSnapshot(ctx context.Context, key string) ([]byte, error)
}

// SnapshotWriter defines write access to persisted dataset snapshots.
type SnapshotWriter interface {
	// SaveSnapshot stores blob under key, replacing any previous snapshot.
	SaveSnapshot(ctx context.Context, key string, blob []byte) error

	// DeleteSnapshot removes the snapshot stored under key. Deleting an
	// absent key is not an error.
	DeleteSnapshot(ctx context.Context, key string) error
}

// SnapshotRepository combines snapshot read and write access.
type SnapshotRepository interface {
	SnapshotReader
	SnapshotWriter

	// Close releases the underlying storage handle.
	Close() error
}
