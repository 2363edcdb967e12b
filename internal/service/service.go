// Package service owns the live domain snapshot. It is the single writer:
// every mutation goes through one mutex-guarded dispatch that applies the
// pure state reducer, persists the replacement snapshot, and derives the
// domain events for downstream consumers. It also performs the checks the
// core deliberately refuses to do (stock sufficiency, payload validation).
package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sarahbeaino/pharmapos/internal/event"
	"github.com/sarahbeaino/pharmapos/internal/model"
	"github.com/sarahbeaino/pharmapos/internal/state"
	"github.com/sarahbeaino/pharmapos/internal/store"
	"github.com/sarahbeaino/pharmapos/pkg/validator"
)

type Pharmacy struct {
	logger    *slog.Logger
	store     store.Store
	validator validator.Validator

	mu       sync.Mutex
	snapshot model.Snapshot
}

// New loads the persisted snapshot, or seeds the built-in dataset when none
// exists and seeding is enabled.
func New(
	ctx context.Context,
	logger *slog.Logger,
	st store.Store,
	v validator.Validator,
	seed bool,
) (*Pharmacy, error) {
	snapshot, ok, err := st.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("store load: %w", err)
	}

	if !ok {
		snapshot = model.Snapshot{
			Products:       []model.Product{},
			Clients:        []model.Client{},
			Sales:          []model.Sale{},
			PurchaseOrders: []model.PurchaseOrder{},
			Notifications:  []string{},
		}
		if seed {
			snapshot = state.Seed(time.Now())
		}
		if err := st.Save(ctx, snapshot, nil); err != nil {
			return nil, fmt.Errorf("store save initial snapshot: %w", err)
		}
		logger.InfoContext(ctx, "initialized snapshot",
			slog.Bool("seeded", seed),
			slog.Int("products", len(snapshot.Products)))
	}

	return &Pharmacy{
		logger:    logger.With(slog.String("service", "pharmacy")),
		store:     st,
		validator: v,
		snapshot:  snapshot,
	}, nil
}

// Snapshot returns a copy of the current domain snapshot.
func (s *Pharmacy) Snapshot() model.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot.Clone()
}

// Dispatch applies a raw action. Operation methods should be preferred; this
// exists for callers that already hold a validated action.
func (s *Pharmacy) Dispatch(ctx context.Context, action state.Action) (model.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.applyAndSave(ctx, action)
}

// applyAndSave runs one action through the reducer, persists the result and
// swaps the in-memory snapshot. Callers must hold s.mu. The in-memory
// snapshot only advances when the persist succeeds, so memory and store
// never diverge.
func (s *Pharmacy) applyAndSave(ctx context.Context, action state.Action) (model.Snapshot, error) {
	next, err := state.Apply(s.snapshot, action)
	if err != nil {
		return s.snapshot, err
	}

	events, err := deriveEvents(s.snapshot, next, action)
	if err != nil {
		return s.snapshot, fmt.Errorf("derive events: %w", err)
	}

	if err := s.store.Save(ctx, next, events); err != nil {
		return s.snapshot, fmt.Errorf("store save: %w", err)
	}

	s.snapshot = next
	s.logger.DebugContext(ctx, "action applied", slog.String("action", fmt.Sprintf("%T", action)))

	return next, nil
}

// deriveEvents turns a dispatch into structured domain events: a sale event
// for every checkout and a low-stock event for every threshold crossing the
// dispatch caused.
func deriveEvents(before, after model.Snapshot, action state.Action) ([]event.Message, error) {
	var events []event.Message

	if a, ok := action.(state.CreateSale); ok {
		msg, err := event.NewMessage(event.TopicSaleCreated, event.SaleCreatedEvent{
			SaleID:   a.Sale.ID,
			ClientID: a.Sale.ClientID,
			Total:    a.Sale.Total,
		}, &a.Sale.ClientID)
		if err != nil {
			return nil, err
		}
		events = append(events, msg)
	}

	for _, p := range state.LowStockCrossings(before, after) {
		msg, err := event.NewMessage(event.TopicLowStock, event.LowStockEvent{
			ProductID: p.ID,
			Name:      p.Name,
			Quantity:  p.Quantity,
			Threshold: p.LowStockThreshold,
		}, &p.ID)
		if err != nil {
			return nil, err
		}
		events = append(events, msg)
	}

	return events, nil
}

func newID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("generate uuid v7: %w", err)
	}
	return id.String(), nil
}
