package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/sarahbeaino/pharmapos/internal/storage/db"
)

// SnapshotRepository stores the domain snapshot as an opaque JSON blob under
// a fixed key. The repository does not interpret the blob.
type SnapshotRepository interface {
	WithDB(db db.DB) SnapshotRepository
	GetSnapshot(ctx context.Context, key string) (json.RawMessage, bool, error)
	UpsertSnapshot(ctx context.Context, key string, data json.RawMessage) error
}

type snapshotRepository struct {
	db db.DB
}

func NewSnapshotRepository(db db.DB) SnapshotRepository {
	return &snapshotRepository{db: db}
}

func (r snapshotRepository) WithDB(db db.DB) SnapshotRepository {
	return &snapshotRepository{db: db}
}

func (r snapshotRepository) GetSnapshot(ctx context.Context, key string) (json.RawMessage, bool, error) {
	var data json.RawMessage
	err := r.db.QueryRow(ctx, `
		SELECT data FROM snapshots WHERE key = @key;
	`, pgx.NamedArgs{
		"key": key,
	}).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("snapshot get: %w", err)
	}

	return data, true, nil
}

func (r snapshotRepository) UpsertSnapshot(ctx context.Context, key string, data json.RawMessage) error {
	if _, err := r.db.Exec(ctx, `
		INSERT INTO snapshots (key, data, updated_at)
		VALUES (@key, @data, @updated_at)
		ON CONFLICT (key) DO UPDATE
		SET data = EXCLUDED.data, updated_at = EXCLUDED.updated_at;
	`, pgx.NamedArgs{
		"key":        key,
		"data":       data,
		"updated_at": time.Now(),
	}); err != nil {
		return fmt.Errorf("snapshot upsert: %w", err)
	}

	return nil
}
