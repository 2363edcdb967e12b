package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sarahbeaino/pharmapos/internal/event"
	"github.com/sarahbeaino/pharmapos/internal/model"
	"github.com/sarahbeaino/pharmapos/internal/repository"
	"github.com/sarahbeaino/pharmapos/internal/storage/db"
	"github.com/sarahbeaino/pharmapos/pkg/outbox"
)

var _ Store = (*PostgresStore)(nil)

// PostgresStore keeps the snapshot in a single jsonb row and writes domain
// events to the transactional outbox in the same transaction, so a snapshot
// is never persisted without its events or vice versa.
type PostgresStore struct {
	key           string
	db            db.DB
	snapshotRepo  repository.SnapshotRepository
	outboxMsgRepo repository.OutboxMsgRepository
}

func NewPostgresStore(
	key string,
	db db.DB,
	snapshotRepo repository.SnapshotRepository,
	outboxMsgRepo repository.OutboxMsgRepository,
) *PostgresStore {
	return &PostgresStore{
		key:           key,
		db:            db,
		snapshotRepo:  snapshotRepo,
		outboxMsgRepo: outboxMsgRepo,
	}
}

func (s *PostgresStore) Load(ctx context.Context) (model.Snapshot, bool, error) {
	data, ok, err := s.snapshotRepo.GetSnapshot(ctx, s.key)
	if err != nil {
		return model.Snapshot{}, false, fmt.Errorf("snapshot repository get snapshot: %w", err)
	}
	if !ok {
		return model.Snapshot{}, false, nil
	}

	var snapshot model.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return model.Snapshot{}, false, fmt.Errorf("unmarshal snapshot: %w", err)
	}

	return snapshot, true, nil
}

func (s *PostgresStore) Save(ctx context.Context, snapshot model.Snapshot, events []event.Message) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	headers := outbox.BuildHeaders(ctx)

	if err := s.db.WithTx(ctx, func(db db.DB) error {
		if err := s.snapshotRepo.
			WithDB(db).
			UpsertSnapshot(ctx, s.key, data); err != nil {
			return fmt.Errorf("snapshot repository upsert snapshot: %w", err)
		}

		for _, ev := range events {
			if err := s.outboxMsgRepo.
				WithDB(db).
				CreateOutboxMsg(ctx, repository.CreateOutboxMsgParams{
					Topic:        ev.Topic,
					Headers:      headers,
					Payload:      ev.Payload,
					PartitionKey: ev.PartitionKey,
				}); err != nil {
				return fmt.Errorf("outbox msg repository create outbox msg: %w", err)
			}
		}

		return nil
	}); err != nil {
		return fmt.Errorf("db with tx: %w", err)
	}

	return nil
}
