// Package store persists the domain snapshot between processes. The state
// core neither knows nor cares how or where this happens; it only hands the
// replacement snapshot over after every dispatch.
package store

import (
	"context"

	"github.com/sarahbeaino/pharmapos/internal/event"
	"github.com/sarahbeaino/pharmapos/internal/model"
)

// Store loads and saves the snapshot blob under a fixed application key.
// Save also takes the domain events derived from the dispatch so drivers
// that support it (postgres) can store snapshot and outbox rows in one
// transaction.
type Store interface {
	// Load returns the stored snapshot, or ok=false when none exists yet.
	Load(ctx context.Context) (model.Snapshot, bool, error)
	// Save replaces the stored snapshot and records the given events.
	Save(ctx context.Context, snapshot model.Snapshot, events []event.Message) error
}
