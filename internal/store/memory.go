package store

import (
	"context"
	"sync"

	"github.com/sarahbeaino/pharmapos/internal/event"
	"github.com/sarahbeaino/pharmapos/internal/model"
)

var _ Store = (*MemoryStore)(nil)

// MemoryStore keeps the snapshot in process memory. Used by tests and
// ephemeral runs; nothing survives a restart.
type MemoryStore struct {
	mu       sync.Mutex
	snapshot model.Snapshot
	loaded   bool
	events   []event.Message
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load(_ context.Context) (model.Snapshot, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		return model.Snapshot{}, false, nil
	}
	return s.snapshot.Clone(), true, nil
}

func (s *MemoryStore) Save(_ context.Context, snapshot model.Snapshot, events []event.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot = snapshot.Clone()
	s.loaded = true
	s.events = append(s.events, events...)
	return nil
}

// Events returns every event recorded so far.
func (s *MemoryStore) Events() []event.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]event.Message(nil), s.events...)
}
